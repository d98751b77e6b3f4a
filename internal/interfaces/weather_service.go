package interfaces

import (
	"context"

	"github.com/ternarybob/smarttravellers/internal/models"
)

// NamedLocation is a geocoding hit with its display name
type NamedLocation struct {
	DisplayName string
	Coordinate  models.Coordinate
}

// LocationLookup geocodes free text and keeps the provider's display name
type LocationLookup interface {
	Lookup(ctx context.Context, query string) (*NamedLocation, error)
}

// WeatherService fetches current conditions for a city
type WeatherService interface {
	// Current returns ErrWeatherUnavailable when the provider has no data
	Current(ctx context.Context, city string) (*models.WeatherReport, error)
}
