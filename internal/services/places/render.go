package places

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ternarybob/smarttravellers/internal/models"
)

// Render writes the ranked report for a discovery result
func Render(w io.Writer, result *models.DiscoveryResult) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\nTop %s in %s:\n\n", capitalize(result.Query.Category), result.Query.Location))

	if len(result.Places) == 0 {
		sb.WriteString("No places matched the quality filter.\n")
	}

	for i, place := range result.Places {
		writePlace(&sb, i+1, place)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writePlace(sb *strings.Builder, rank int, place models.Place) {
	price := ""
	if place.PriceLabel != "" {
		price = " | Price Level: " + place.PriceLabel
	}
	sb.WriteString(fmt.Sprintf("%d. %s (%s⭐, %d reviews%s)\n",
		rank, place.Name, strconv.FormatFloat(place.Rating, 'f', -1, 64), place.Reviews, price))

	if place.Address != "" {
		sb.WriteString(fmt.Sprintf("   📍 %s\n", place.Address))
	}
	if place.PhotoURL != "" {
		sb.WriteString(fmt.Sprintf("   🖼 Photo: %s\n", place.PhotoURL))
	}

	if booking := place.Booking; booking != nil {
		sb.WriteString(fmt.Sprintf("   Booking.com: %s (%s)\n", booking.HotelName, booking.HotelURL))
		if len(booking.Rooms) > 0 {
			sb.WriteString("   Rooms & Prices from Booking.com:\n")
			for _, room := range booking.Rooms {
				sb.WriteString(fmt.Sprintf("     - %s: %s\n", room.RoomType, room.PriceText))
			}
		}
	}

	sb.WriteString("\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
