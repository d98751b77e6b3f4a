package interfaces

import (
	"errors"
	"fmt"
)

// ErrEnrichmentUnavailable is used inside price enrichment when no match or no
// parseable rooms were found. It never crosses the PriceEnricher boundary.
var ErrEnrichmentUnavailable = errors.New("enrichment unavailable")

// ErrWeatherUnavailable is returned when the weather provider has no data for a place
var ErrWeatherUnavailable = errors.New("weather data not available")

// ErrLocationNotFound is returned when a weather lookup cannot geocode the place. It wraps ErrWeatherUnavailable.
var ErrLocationNotFound = fmt.Errorf("%w: location not found", ErrWeatherUnavailable)

// ResolutionError is returned when geocoding produced no coordinate for the input text
type ResolutionError struct {
	Query  string
	Status string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not fetch coordinates for '%s' (status %s)", e.Query, e.Status)
}

// DirectionsUnavailableError is returned when the directions provider answered with a non-OK status
type DirectionsUnavailableError struct {
	Mode   string
	Status string
}

func (e *DirectionsUnavailableError) Error() string {
	return fmt.Sprintf("could not fetch directions (%s): %s", e.Mode, e.Status)
}

// CollaboratorError wraps a transport, HTTP status or decoding failure of an external service
type CollaboratorError struct {
	Service    string
	Op         string
	StatusCode int
	Err        error
}

func (e *CollaboratorError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s failed (status %d): %v", e.Service, e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Service, e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
