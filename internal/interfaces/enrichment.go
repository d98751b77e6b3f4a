package interfaces

import (
	"context"

	"github.com/ternarybob/smarttravellers/internal/models"
)

// PriceEnricher looks up room prices for a hotel on a third-party site.
// Enrichment is best-effort: any failure is reported as (nil, false) and is
// never returned as an error.
type PriceEnricher interface {
	Enrich(ctx context.Context, hotelName, city string) (*models.HotelPricing, bool)
}

// PageFetcher returns the HTML of a page
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}
