package maps

import (
	"context"
	"net/url"
	"strconv"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/models"
)

var _ interfaces.DirectionsProvider = (*Client)(nil)

// Directions requests a route between two resolved points. The returned
// response carries the provider status; checking it is left to the caller.
func (c *Client) Directions(ctx context.Context, query models.DirectionsQuery) (*models.DirectionsResponse, error) {
	params := url.Values{}
	params.Set("origin", query.Origin.String())
	params.Set("destination", query.Destination.String())
	params.Set("mode", query.Mode)

	if query.Mode == models.TravelModeTransit {
		if query.TransitMode != "" {
			params.Set("transit_mode", query.TransitMode)
		}
		if !query.DepartureTime.IsZero() {
			params.Set("departure_time", strconv.FormatInt(query.DepartureTime.Unix(), 10))
		}
	}

	var resp DirectionsAPIResponse
	if err := c.get(ctx, "directions", "/directions/json", params, &resp); err != nil {
		return nil, err
	}

	return convertToDirectionsResponse(resp), nil
}
