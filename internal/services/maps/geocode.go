package maps

import (
	"context"
	"net/url"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/models"
)

var _ interfaces.Geocoder = (*Client)(nil)

// Resolve geocodes placeName and returns the first candidate's location.
// A non-OK status or an empty result list yields *interfaces.ResolutionError.
func (c *Client) Resolve(ctx context.Context, placeName string) (models.Coordinate, error) {
	params := url.Values{}
	params.Set("address", placeName)

	var resp GeocodeResponse
	if err := c.get(ctx, "geocode", "/geocode/json", params, &resp); err != nil {
		return models.Coordinate{}, err
	}

	if resp.Status != "OK" || len(resp.Results) == 0 {
		status := resp.Status
		if status == "OK" {
			status = "ZERO_RESULTS"
		}
		return models.Coordinate{}, &interfaces.ResolutionError{Query: placeName, Status: status}
	}

	geometry := resp.Results[0].Geometry
	if geometry == nil || geometry.Location == nil {
		return models.Coordinate{}, &interfaces.ResolutionError{Query: placeName, Status: "NO_GEOMETRY"}
	}

	coord := models.Coordinate{Lat: geometry.Location.Lat, Lng: geometry.Location.Lng}

	if c.logger != nil {
		c.logger.Debug().
			Str("query", placeName).
			Str("coordinate", coord.String()).
			Msg("Resolved location")
	}

	return coord, nil
}
