package places

import (
	"fmt"
	"sort"

	"github.com/ternarybob/smarttravellers/internal/common"
	"github.com/ternarybob/smarttravellers/internal/models"
)

// Category names
const (
	CategoryAttractions = "attractions"
	CategoryRestaurants = "restaurants"
	CategoryHotels      = "hotels"
	CategoryNightlife   = "nightlife"
)

// DietKeywords maps the restaurant menu choice to the search keyword
var DietKeywords = map[string]string{
	"1": "veg",
	"2": "non veg",
	"3": "vegan",
	"4": "jain",
}

// Category is the configuration record that turns the generic pipeline into
// one of the concrete searches.
type Category struct {
	Name       string
	Types      []string
	Keyword    string
	Radius     int
	MinRating  float64
	MinReviews int
	TopN       int
	Blacklist  []string // case-insensitive name substrings dropped before thresholds
	Lodging    bool     // enables price labels, budget filter and enrichment
}

// Query builds the place query for a location using the category defaults
func (c Category) Query(location string) models.PlaceQuery {
	types := make([]string, len(c.Types))
	copy(types, c.Types)

	return models.PlaceQuery{
		Location:   location,
		Category:   c.Name,
		Types:      types,
		Keyword:    c.Keyword,
		Radius:     c.Radius,
		MinRating:  c.MinRating,
		MinReviews: c.MinReviews,
		TopN:       c.TopN,
	}
}

// DefaultCategories returns the built-in category table
func DefaultCategories() map[string]Category {
	return map[string]Category{
		CategoryAttractions: {
			Name:       CategoryAttractions,
			Types:      []string{"tourist_attraction"},
			Keyword:    "museum|park|temple|monument|garden|beach",
			Radius:     4000,
			MinRating:  4,
			MinReviews: 500,
			TopN:       5,
			Blacklist:  []string{"tours", "travel", "agency", "transport"},
		},
		CategoryRestaurants: {
			Name:       CategoryRestaurants,
			Types:      []string{"restaurant"},
			Radius:     4000,
			MinRating:  4,
			MinReviews: 50,
			TopN:       5,
		},
		CategoryHotels: {
			Name:       CategoryHotels,
			Types:      []string{"lodging"},
			Keyword:    "hotel",
			Radius:     4000,
			MinRating:  4,
			MinReviews: 1000,
			TopN:       5,
			Lodging:    true,
		},
		CategoryNightlife: {
			Name:       CategoryNightlife,
			Types:      []string{"night_club", "bar"},
			Radius:     5000,
			MinRating:  4,
			MinReviews: 50,
			TopN:       10,
		},
	}
}

// Catalog holds the effective categories after config overrides
type Catalog struct {
	categories map[string]Category
}

// NewCatalog applies overrides on top of the built-in categories.
// Overrides for unknown names are rejected.
func NewCatalog(overrides map[string]common.CategoryConfig) (*Catalog, error) {
	categories := DefaultCategories()

	for name, override := range overrides {
		category, ok := categories[name]
		if !ok {
			return nil, fmt.Errorf("unknown category in config: %s", name)
		}

		if len(override.Types) > 0 {
			category.Types = append([]string(nil), override.Types...)
		}
		if override.Keyword != nil {
			category.Keyword = *override.Keyword
		}
		if override.Radius > 0 {
			category.Radius = override.Radius
		}
		if override.MinRating != nil {
			category.MinRating = *override.MinRating
		}
		if override.MinReviews != nil {
			category.MinReviews = *override.MinReviews
		}
		if override.TopN > 0 {
			category.TopN = override.TopN
		}

		categories[name] = category
	}

	return &Catalog{categories: categories}, nil
}

// Get returns the category registered under name
func (c *Catalog) Get(name string) (Category, bool) {
	category, ok := c.categories[name]
	return category, ok
}

// Names returns the registered category names in sorted order
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
