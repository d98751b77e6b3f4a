package enrichment

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ternarybob/smarttravellers/internal/models"
)

var digitsRegex = regexp.MustCompile(`\d+`)

// ParsePrice extracts the first run of digits after dropping thousands
// separators and the rupee sign. Returns nil when no digits are present.
func ParsePrice(text string) *int {
	cleaned := strings.NewReplacer(",", "", "₹", "").Replace(text)
	match := digitsRegex.FindString(strings.TrimSpace(cleaned))
	if match == "" {
		return nil
	}
	value, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &value
}

// InBudgetBand reports whether a nightly price falls in the band of a budget tier.
//
//	1: < 2000
//	2: 2000..4000
//	3: > 4000 and <= 8000
//	4: > 8000
func InBudgetBand(price, budget int) bool {
	switch budget {
	case 1:
		return price < 2000
	case 2:
		return price >= 2000 && price <= 4000
	case 3:
		return price > 4000 && price <= 8000
	case 4:
		return price > 8000
	default:
		return true
	}
}

// FilterRoomsByBudget keeps rooms whose parsed price falls in the budget band.
// Rooms without a parsed price are dropped when a budget is set.
func FilterRoomsByBudget(rooms []models.RoomOffer, budget int) []models.RoomOffer {
	if budget <= 0 {
		return rooms
	}

	filtered := make([]models.RoomOffer, 0, len(rooms))
	for _, room := range rooms {
		if room.PriceValue == nil || *room.PriceValue == 0 {
			continue
		}
		if InBudgetBand(*room.PriceValue, budget) {
			filtered = append(filtered, room)
		}
	}
	return filtered
}
