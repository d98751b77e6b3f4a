// Package maps provides a client for the Google Maps Platform web services
// used by the discovery pipeline: geocoding, nearby search, directions and photos.
package maps

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/smarttravellers/internal/httpclient"
	"github.com/ternarybob/smarttravellers/internal/interfaces"
)

const (
	// DefaultBaseURL is the root of the Maps Platform web service endpoints.
	DefaultBaseURL = "https://maps.googleapis.com/maps/api"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	serviceName = "maps"
)

// Client is a Google Maps Platform API client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the minimum interval between requests. Zero disables pacing.
func WithRateLimit(interval time.Duration) ClientOption {
	return func(c *Client) {
		c.limiter = newLimiter(interval)
	}
}

func newLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// NewClient creates a new Maps Platform client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: httpclient.NewDefaultHTTPClient(DefaultTimeout),
		limiter: newLimiter(0),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get performs a GET request against path and decodes the JSON body into result.
// Every failure is returned as *interfaces.CollaboratorError.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &interfaces.CollaboratorError{Service: serviceName, Op: op, Err: fmt.Errorf("rate limiter: %w", err)}
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	// Never log the key
	if c.logger != nil {
		c.logger.Debug().
			Str("op", op).
			Str("url", c.baseURL+path).
			Msg("Maps API request")
	}

	return httpclient.GetJSON(ctx, c.httpClient, serviceName, op, reqURL, nil, result)
}
