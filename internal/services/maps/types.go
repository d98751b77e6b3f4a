package maps

import "github.com/ternarybob/smarttravellers/internal/models"

// GeocodeResponse represents the Google Geocoding API response
type GeocodeResponse struct {
	Results      []GeocodeResult `json:"results"`
	Status       string          `json:"status"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

// GeocodeResult represents a single geocoding candidate
type GeocodeResult struct {
	FormattedAddress string    `json:"formatted_address,omitempty"`
	Geometry         *Geometry `json:"geometry,omitempty"`
	PlaceID          string    `json:"place_id,omitempty"`
}

// PlacesNearbySearchResponse represents the Google Places Nearby Search API response
type PlacesNearbySearchResponse struct {
	HTMLAttributions []string      `json:"html_attributions"`
	Results          []PlaceResult `json:"results"`
	Status           string        `json:"status"`
	ErrorMessage     string        `json:"error_message,omitempty"`
	NextPageToken    string        `json:"next_page_token,omitempty"`
}

// PlaceResult represents a single place result from the Places API.
// Optional numeric fields are pointers so that absent values are not read as zero.
type PlaceResult struct {
	BusinessStatus   string    `json:"business_status,omitempty"`
	Geometry         *Geometry `json:"geometry,omitempty"`
	Name             string    `json:"name"`
	Photos           []Photo   `json:"photos,omitempty"`
	PlaceID          string    `json:"place_id"`
	PriceLevel       *int      `json:"price_level,omitempty"`
	Rating           *float64  `json:"rating,omitempty"`
	Types            []string  `json:"types,omitempty"`
	UserRatingsTotal *int      `json:"user_ratings_total,omitempty"`
	Vicinity         *string   `json:"vicinity,omitempty"`
}

// Geometry represents the geometry information of a place
type Geometry struct {
	Location *LatLng `json:"location,omitempty"`
}

// LatLng represents a geographic coordinate
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Photo represents a place photo reference
type Photo struct {
	Height         int    `json:"height"`
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
}

// DirectionsAPIResponse represents the Google Directions API response
type DirectionsAPIResponse struct {
	Routes       []DirectionsRoute `json:"routes"`
	Status       string            `json:"status"`
	ErrorMessage string            `json:"error_message,omitempty"`
}

// DirectionsRoute is one route alternative
type DirectionsRoute struct {
	Summary string         `json:"summary,omitempty"`
	Legs    []DirectionLeg `json:"legs"`
}

// DirectionLeg is one leg of a route
type DirectionLeg struct {
	Distance TextValue       `json:"distance"`
	Duration TextValue       `json:"duration"`
	Steps    []DirectionStep `json:"steps"`
}

// DirectionStep is one step of a leg
type DirectionStep struct {
	TravelMode       string          `json:"travel_mode"`
	HTMLInstructions string          `json:"html_instructions,omitempty"`
	Distance         TextValue       `json:"distance"`
	Duration         TextValue       `json:"duration"`
	TransitDetails   *TransitDetails `json:"transit_details,omitempty"`
}

// TextValue pairs display text with its numeric value
type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// TransitDetails describes a public transport step
type TransitDetails struct {
	DepartureStop Stop         `json:"departure_stop"`
	ArrivalStop   Stop         `json:"arrival_stop"`
	DepartureTime TimeText     `json:"departure_time"`
	ArrivalTime   TimeText     `json:"arrival_time"`
	Line          *TransitLine `json:"line,omitempty"`
}

// Stop is a transit stop
type Stop struct {
	Name string `json:"name"`
}

// TimeText is a localized time
type TimeText struct {
	Text     string `json:"text"`
	TimeZone string `json:"time_zone,omitempty"`
	Value    int64  `json:"value,omitempty"`
}

// TransitLine describes the line serving a transit step
type TransitLine struct {
	Name      string   `json:"name,omitempty"`
	ShortName string   `json:"short_name,omitempty"`
	Vehicle   *Vehicle `json:"vehicle,omitempty"`
}

// Vehicle describes the vehicle type of a transit line
type Vehicle struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// convertToRawPlace converts a Places API result to the provider-independent record
func convertToRawPlace(result PlaceResult) models.RawPlace {
	place := models.RawPlace{
		PlaceID:          result.PlaceID,
		Name:             result.Name,
		Rating:           result.Rating,
		UserRatingsTotal: result.UserRatingsTotal,
		Vicinity:         result.Vicinity,
		PriceLevel:       result.PriceLevel,
		Types:            result.Types,
	}

	if result.Geometry != nil && result.Geometry.Location != nil {
		place.Location = &models.Coordinate{
			Lat: result.Geometry.Location.Lat,
			Lng: result.Geometry.Location.Lng,
		}
	}

	// Only the first photo counts; a blank first reference means no photo
	if len(result.Photos) > 0 && result.Photos[0].PhotoReference != "" {
		place.PhotoReferences = []string{result.Photos[0].PhotoReference}
	}

	return place
}

// convertToDirectionsResponse keeps the legs of the first route
func convertToDirectionsResponse(resp DirectionsAPIResponse) *models.DirectionsResponse {
	out := &models.DirectionsResponse{Status: resp.Status}
	if len(resp.Routes) == 0 {
		return out
	}

	for _, leg := range resp.Routes[0].Legs {
		converted := models.DirectionsLeg{
			Distance: models.TextValue(leg.Distance),
			Duration: models.TextValue(leg.Duration),
		}
		for _, step := range leg.Steps {
			converted.Steps = append(converted.Steps, convertStep(step))
		}
		out.Legs = append(out.Legs, converted)
	}

	return out
}

func convertStep(step DirectionStep) models.DirectionsStep {
	converted := models.DirectionsStep{
		TravelMode:       step.TravelMode,
		HTMLInstructions: step.HTMLInstructions,
		Distance:         models.TextValue(step.Distance),
		Duration:         models.TextValue(step.Duration),
	}

	if td := step.TransitDetails; td != nil {
		transit := &models.TransitDetails{
			DepartureStop: td.DepartureStop.Name,
			ArrivalStop:   td.ArrivalStop.Name,
			DepartureTime: td.DepartureTime.Text,
			ArrivalTime:   td.ArrivalTime.Text,
		}
		if td.Line != nil {
			transit.LineName = td.Line.Name
			transit.LineShortName = td.Line.ShortName
			if td.Line.Vehicle != nil {
				transit.VehicleType = td.Line.Vehicle.Type
			}
		}
		converted.Transit = transit
	}

	return converted
}
