package weather

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/smarttravellers/internal/httpclient"
	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/models"
)

// DefaultGeocoderURL is the public Nominatim instance
const DefaultGeocoderURL = "https://nominatim.openstreetmap.org"

// nominatimPlace is one search hit. Nominatim encodes coordinates as strings.
type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Nominatim implements LocationLookup against the OpenStreetMap search API
type Nominatim struct {
	baseURL string
	client  *httpJSON
}

var _ interfaces.LocationLookup = (*Nominatim)(nil)

// NewNominatim creates a Nominatim lookup
func NewNominatim(baseURL, userAgent string, timeout time.Duration, logger arbor.ILogger) *Nominatim {
	if baseURL == "" {
		baseURL = DefaultGeocoderURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Nominatim{
		baseURL: baseURL,
		client: &httpJSON{
			service:    "nominatim",
			httpClient: httpclient.NewDefaultHTTPClient(timeout),
			userAgent:  userAgent,
			logger:     logger,
		},
	}
}

// Lookup returns the best match for query. No match is ErrLocationNotFound.
func (n *Nominatim) Lookup(ctx context.Context, query string) (*interfaces.NamedLocation, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	var places []nominatimPlace
	if err := n.client.getJSON(ctx, "search", n.baseURL, "/search", params, &places); err != nil {
		return nil, err
	}

	if len(places) == 0 {
		return nil, fmt.Errorf("%w: %q", interfaces.ErrLocationNotFound, query)
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, &interfaces.CollaboratorError{Service: "nominatim", Op: "search", Err: fmt.Errorf("invalid latitude %q: %w", places[0].Lat, err)}
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, &interfaces.CollaboratorError{Service: "nominatim", Op: "search", Err: fmt.Errorf("invalid longitude %q: %w", places[0].Lon, err)}
	}

	return &interfaces.NamedLocation{
		DisplayName: places[0].DisplayName,
		Coordinate:  models.Coordinate{Lat: lat, Lng: lon},
	}, nil
}
