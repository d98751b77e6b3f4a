package places

import (
	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/models"
)

// DefaultPhotoMaxWidth is the maxwidth used for photo URLs
const DefaultPhotoMaxWidth = 400

// PriceLabels maps the provider price level to a display label
var PriceLabels = map[int]string{
	1: "Cheap",
	2: "Moderate",
	3: "Expensive",
	4: "Luxury",
}

// PriceLabel returns the label for a price level, or "" when absent or unknown
func PriceLabel(level *int) string {
	if level == nil {
		return ""
	}
	return PriceLabels[*level]
}

// Normalizer converts raw provider records to output places
type Normalizer struct {
	photos   interfaces.PhotoURLBuilder
	maxWidth int
}

// NewNormalizer creates a normalizer. photos may be nil, in which case no photo URLs are built.
func NewNormalizer(photos interfaces.PhotoURLBuilder, maxWidth int) *Normalizer {
	if maxWidth <= 0 {
		maxWidth = DefaultPhotoMaxWidth
	}
	return &Normalizer{photos: photos, maxWidth: maxWidth}
}

// Normalize never fails: absent fields default, out of range values are clamped.
func (n *Normalizer) Normalize(raw models.RawPlace, lodging bool) models.Place {
	place := models.Place{
		Name:     raw.Name,
		Rating:   clampRating(raw.RatingOrZero()),
		Reviews:  raw.ReviewsOrZero(),
		Location: raw.Location,
	}

	if place.Reviews < 0 {
		place.Reviews = 0
	}
	if raw.Vicinity != nil {
		place.Address = *raw.Vicinity
	}
	if n.photos != nil && len(raw.PhotoReferences) > 0 {
		place.PhotoURL = n.photos.PhotoURL(raw.PhotoReferences[0], n.maxWidth)
	}

	if lodging {
		place.PriceLevel = raw.PriceLevel
		place.PriceLabel = PriceLabel(raw.PriceLevel)
	}

	return place
}

// For returns a normalize function bound to a category
func (n *Normalizer) For(category Category) func(models.RawPlace) models.Place {
	return func(raw models.RawPlace) models.Place {
		return n.Normalize(raw, category.Lodging)
	}
}

func clampRating(r float64) float64 {
	switch {
	case r < 0:
		return 0
	case r > 5:
		return 5
	default:
		return r
	}
}
