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

// DefaultBaseURL is the OpenWeather API root
const DefaultBaseURL = "https://api.openweathermap.org"

// currentResponse is the subset of /data/2.5/weather the report uses.
// Main is a pointer so a body without it is detectable.
type currentResponse struct {
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// Service implements WeatherService with OpenWeather current conditions
type Service struct {
	apiKey  string
	baseURL string
	lookup  interfaces.LocationLookup
	client  *httpJSON
	logger  arbor.ILogger
}

var _ interfaces.WeatherService = (*Service)(nil)

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithBaseURL sets a custom OpenWeather root.
func WithBaseURL(baseURL string) ServiceOption {
	return func(s *Service) {
		if baseURL != "" {
			s.baseURL = baseURL
		}
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) ServiceOption {
	return func(s *Service) {
		if timeout > 0 {
			s.client.httpClient = httpclient.NewDefaultHTTPClient(timeout)
		}
	}
}

// NewService creates a weather service
func NewService(apiKey string, lookup interfaces.LocationLookup, logger arbor.ILogger, opts ...ServiceOption) *Service {
	s := &Service{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		lookup:  lookup,
		client: &httpJSON{
			service:    "openweather",
			httpClient: httpclient.NewDefaultHTTPClient(DefaultTimeout),
			logger:     logger,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Current geocodes city and returns the current observation in metric units
func (s *Service) Current(ctx context.Context, city string) (*models.WeatherReport, error) {
	location, err := s.lookup.Lookup(ctx, city)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(location.Coordinate.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(location.Coordinate.Lng, 'f', -1, 64))
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")

	var resp currentResponse
	if err := s.client.getJSON(ctx, "current", s.baseURL, "/data/2.5/weather", params, &resp); err != nil {
		return nil, err
	}

	if resp.Main == nil {
		return nil, fmt.Errorf("%w for %s", interfaces.ErrWeatherUnavailable, location.DisplayName)
	}

	report := &models.WeatherReport{
		Location:    location.DisplayName,
		TempC:       resp.Main.Temp,
		HumidityPct: resp.Main.Humidity,
		WindSpeedMS: resp.Wind.Speed,
	}
	if len(resp.Weather) > 0 {
		report.Condition = resp.Weather[0].Description
	}

	s.logger.Debug().
		Str("city", city).
		Float64("temp_c", report.TempC).
		Str("condition", report.Condition).
		Msg("Weather fetched")

	return report, nil
}
