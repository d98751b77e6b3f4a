package interfaces

import (
	"context"

	"github.com/ternarybob/smarttravellers/internal/models"
)

// Geocoder resolves free text into a coordinate
type Geocoder interface {
	// Resolve returns the first candidate's point for placeName.
	// Returns *ResolutionError when the provider has no usable match.
	Resolve(ctx context.Context, placeName string) (models.Coordinate, error)
}

// PlaceSearcher issues a single nearby search call and returns one page
type PlaceSearcher interface {
	NearbySearch(ctx context.Context, req models.NearbySearchRequest) (*models.SearchPage, error)
}

// PhotoURLBuilder derives a photo retrieval URL from a provider photo reference
type PhotoURLBuilder interface {
	PhotoURL(reference string, maxWidth int) string
}

// DirectionsProvider issues a single directions call
type DirectionsProvider interface {
	Directions(ctx context.Context, query models.DirectionsQuery) (*models.DirectionsResponse, error)
}

// PlacesService runs the discovery pipeline for one query
type PlacesService interface {
	// Discover resolves the location, fetches every page for the query's
	// types, filters, normalizes and ranks the results.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout control
	//   - query: Validated place query
	//
	// Returns:
	//   - *models.DiscoveryResult: Ranked top-N places and run statistics
	//   - error: *ResolutionError, *CollaboratorError or a validation error
	Discover(ctx context.Context, query models.PlaceQuery) (*models.DiscoveryResult, error)
}

// DirectionsService looks up a route between two free-text places
type DirectionsService interface {
	// Lookup returns *DirectionsUnavailableError when the provider has no route
	Lookup(ctx context.Context, req models.DirectionsRequest) (*models.Route, error)
}
