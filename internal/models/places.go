package models

import (
	"strconv"
	"time"
)

// Coordinate represents a resolved geographic point
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the coordinate in the "lat,lng" form expected by the Maps APIs,
// at full precision
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// PlaceQuery describes one discovery run. Thresholds are carried on the query
// so that a category's defaults can be overridden per run.
type PlaceQuery struct {
	Location   string   `json:"location" validate:"required"`
	Category   string   `json:"category" validate:"required"`
	Types      []string `json:"types" validate:"required,min=1,dive,required"`
	Keyword    string   `json:"keyword,omitempty"`
	Radius     int      `json:"radius" validate:"gt=0,lte=50000"` // meters
	MinRating  float64  `json:"min_rating" validate:"gte=0,lte=5"`
	MinReviews int      `json:"min_reviews" validate:"gte=0"`
	Budget     int      `json:"budget,omitempty" validate:"gte=0,lte=4"` // 0 = any
	TopN       int      `json:"top_n" validate:"gt=0"`
}

// RawPlace is a single place record as returned by the search provider.
// Optional provider fields are pointers so absence stays distinguishable from zero.
type RawPlace struct {
	PlaceID          string      `json:"place_id,omitempty"`
	Name             string      `json:"name"`
	Rating           *float64    `json:"rating,omitempty"`
	UserRatingsTotal *int        `json:"user_ratings_total,omitempty"`
	Vicinity         *string     `json:"vicinity,omitempty"`
	Location         *Coordinate `json:"location,omitempty"`
	PhotoReferences  []string    `json:"photo_references,omitempty"`
	PriceLevel       *int        `json:"price_level,omitempty"`
	Types            []string    `json:"types,omitempty"`
}

// RatingOrZero returns the rating, or 0 when the provider omitted it
func (p RawPlace) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// ReviewsOrZero returns the review count, or 0 when the provider omitted it
func (p RawPlace) ReviewsOrZero() int {
	if p.UserRatingsTotal == nil {
		return 0
	}
	return *p.UserRatingsTotal
}

// SearchPage is one page of nearby search results
type SearchPage struct {
	Status        string     `json:"status"`
	Results       []RawPlace `json:"results"`
	NextPageToken string     `json:"next_page_token,omitempty"`
}

// NearbySearchRequest holds parameters for a single nearby search call.
// When PageToken is set every other field is ignored.
type NearbySearchRequest struct {
	Location  Coordinate
	Radius    int
	Type      string
	Keyword   string
	PageToken string
}

// Place is the normalized, provider-independent output record
type Place struct {
	Name       string        `json:"name"`
	Rating     float64       `json:"rating"`
	Reviews    int           `json:"reviews"`
	Address    string        `json:"address,omitempty"`
	Location   *Coordinate   `json:"location,omitempty"`
	PhotoURL   string        `json:"photo_url,omitempty"`
	PriceLevel *int          `json:"price_level,omitempty"`
	PriceLabel string        `json:"price_label,omitempty"`
	Booking    *HotelPricing `json:"booking,omitempty"`
}

// DiscoveryResult is the outcome of one pipeline run
type DiscoveryResult struct {
	RunID         string        `json:"run_id"`
	Query         PlaceQuery    `json:"query"`
	Coordinate    Coordinate    `json:"coordinate"`
	RawCount      int           `json:"raw_count"`
	PagesFetched  int           `json:"pages_fetched"`
	AdmittedCount int           `json:"admitted_count"`
	Places        []Place       `json:"places"`
	Duration      time.Duration `json:"duration"`
}
