package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ternarybob/smarttravellers/internal/models"
)

// formatDiscoveryResult formats a discovery result as markdown
func formatDiscoveryResult(result *models.DiscoveryResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Top %s in %s (%d results)\n\n", result.Query.Category, result.Query.Location, len(result.Places)))
	sb.WriteString(fmt.Sprintf("Searched %d places over %d pages; %d passed the quality filter.\n\n",
		result.RawCount, result.PagesFetched, result.AdmittedCount))

	if len(result.Places) == 0 {
		sb.WriteString("No places matched the quality filter.\n")
		return sb.String()
	}

	for i, place := range result.Places {
		sb.WriteString(fmt.Sprintf("### %d. %s\n", i+1, place.Name))
		sb.WriteString(fmt.Sprintf("**Rating:** %s (%d reviews)\n", strconv.FormatFloat(place.Rating, 'f', -1, 64), place.Reviews))
		if place.PriceLabel != "" {
			sb.WriteString(fmt.Sprintf("**Price Level:** %s\n", place.PriceLabel))
		}
		if place.Address != "" {
			sb.WriteString(fmt.Sprintf("**Address:** %s\n", place.Address))
		}
		if place.Location != nil {
			sb.WriteString(fmt.Sprintf("**Coordinates:** %s\n", place.Location.String()))
		}
		if place.PhotoURL != "" {
			sb.WriteString(fmt.Sprintf("**Photo:** %s\n", place.PhotoURL))
		}

		if booking := place.Booking; booking != nil {
			sb.WriteString(fmt.Sprintf("\n**Booking.com:** [%s](%s)\n", booking.HotelName, booking.HotelURL))
			for _, room := range booking.Rooms {
				sb.WriteString(fmt.Sprintf("- %s: %s\n", room.RoomType, room.PriceText))
			}
		}
		sb.WriteString("\n---\n\n")
	}

	return sb.String()
}

// formatRoute formats a route as markdown
func formatRoute(req models.DirectionsRequest, route *models.Route) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s to %s (%s)\n\n", req.Origin, req.Destination, route.Mode))
	sb.WriteString(fmt.Sprintf("**Distance:** %s\n**Duration:** %s\n\n", route.Distance, route.Duration))

	if len(route.Steps) == 0 {
		sb.WriteString("No step details available.\n")
		return sb.String()
	}

	for i, step := range route.Steps {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, step))
	}

	return sb.String()
}
