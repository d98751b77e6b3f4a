// Package weather fetches current conditions for a free-text place using
// Nominatim for geocoding and OpenWeather for the observation.
package weather

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/smarttravellers/internal/httpclient"
)

const (
	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 15 * time.Second

	// DefaultUserAgent identifies the app to Nominatim, which rejects anonymous clients.
	DefaultUserAgent = "smart-travellers"
)

// httpJSON carries what the weather clients share for GET-and-decode calls
type httpJSON struct {
	service    string
	httpClient *http.Client
	userAgent  string
	logger     arbor.ILogger
}

// getJSON decodes the body of baseURL+path into result. The logged URL omits
// the query so API keys stay out of logs.
func (h *httpJSON) getJSON(ctx context.Context, op, baseURL, path string, params url.Values, result interface{}) error {
	endpoint := strings.TrimRight(baseURL, "/") + path

	var header http.Header
	if h.userAgent != "" {
		header = http.Header{"User-Agent": {h.userAgent}}
	}

	h.logger.Debug().
		Str("service", h.service).
		Str("op", op).
		Str("url", endpoint).
		Msg("Weather API request")

	return httpclient.GetJSON(ctx, h.httpClient, h.service, op, endpoint+"?"+params.Encode(), header, result)
}
