package places

import (
	"strings"

	"github.com/ternarybob/smarttravellers/internal/models"
)

// Thresholds are the admission rules for one run
type Thresholds struct {
	MinRating  float64
	MinReviews int
	Budget     int      // 0 = no budget filter
	Blacklist  []string // lower-case substrings
}

// ThresholdsFor derives the admission rules from a category and query.
// The budget only applies to lodging categories.
func ThresholdsFor(category Category, query models.PlaceQuery) Thresholds {
	t := Thresholds{
		MinRating:  query.MinRating,
		MinReviews: query.MinReviews,
	}
	if category.Lodging {
		t.Budget = query.Budget
	}
	for _, word := range category.Blacklist {
		t.Blacklist = append(t.Blacklist, strings.ToLower(word))
	}
	return t
}

// IsBlacklisted reports whether name contains any blacklisted substring
func IsBlacklisted(name string, blacklist []string) bool {
	lower := strings.ToLower(name)
	for _, word := range blacklist {
		if word != "" && strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// MeetsThresholds checks rating and review count on the raw record, absent values counting as 0.
func MeetsThresholds(record models.RawPlace, minRating float64, minReviews int) bool {
	return record.RatingOrZero() >= minRating && record.ReviewsOrZero() >= minReviews
}

// MatchesBudget keeps records whose price level equals budget or is unknown
func MatchesBudget(record models.RawPlace, budget int) bool {
	if budget <= 0 || record.PriceLevel == nil {
		return true
	}
	return *record.PriceLevel == budget
}

// Admit applies the lexical exclusion, threshold and budget checks in that order
func Admit(records []models.RawPlace, t Thresholds) []models.RawPlace {
	admitted := make([]models.RawPlace, 0, len(records))
	for _, record := range records {
		if IsBlacklisted(record.Name, t.Blacklist) {
			continue
		}
		if !MeetsThresholds(record, t.MinRating, t.MinReviews) {
			continue
		}
		if !MatchesBudget(record, t.Budget) {
			continue
		}
		admitted = append(admitted, record)
	}
	return admitted
}

// Filter admits records and normalizes only the survivors
func Filter(records []models.RawPlace, t Thresholds, normalize func(models.RawPlace) models.Place) []models.Place {
	admitted := Admit(records, t)
	out := make([]models.Place, 0, len(admitted))
	for _, record := range admitted {
		out = append(out, normalize(record))
	}
	return out
}
