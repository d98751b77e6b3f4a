package models

import "time"

// Travel modes accepted by the directions provider
const (
	TravelModeWalking = "walking"
	TravelModeDriving = "driving"
	TravelModeTransit = "transit"
)

// DirectionsRequest is the user-facing input to a directions lookup
type DirectionsRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Mode        string `json:"mode" validate:"required,oneof=walking driving transit"`
	TransitMode string `json:"transit_mode,omitempty" validate:"omitempty,oneof=bus subway train"`
}

// DirectionsQuery is the provider call built from a resolved request
type DirectionsQuery struct {
	Origin        Coordinate
	Destination   Coordinate
	Mode          string
	TransitMode   string
	DepartureTime time.Time
}

// TextValue pairs a human readable text with its numeric value
type TextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// TransitDetails describes a public transport step
type TransitDetails struct {
	LineName      string `json:"line_name,omitempty"`
	LineShortName string `json:"line_short_name,omitempty"`
	VehicleType   string `json:"vehicle_type,omitempty"`
	DepartureStop string `json:"departure_stop"`
	ArrivalStop   string `json:"arrival_stop"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
}

// DirectionsStep is a single step of a route leg
type DirectionsStep struct {
	TravelMode       string          `json:"travel_mode"`
	HTMLInstructions string          `json:"html_instructions,omitempty"`
	Distance         TextValue       `json:"distance"`
	Duration         TextValue       `json:"duration"`
	Transit          *TransitDetails `json:"transit,omitempty"`
}

// DirectionsLeg is the first leg of the first route returned by the provider
type DirectionsLeg struct {
	Distance TextValue        `json:"distance"`
	Duration TextValue        `json:"duration"`
	Steps    []DirectionsStep `json:"steps"`
}

// DirectionsResponse is the provider answer reduced to what the lookup needs
type DirectionsResponse struct {
	Status string          `json:"status"`
	Legs   []DirectionsLeg `json:"legs"` // legs of routes[0]
}

// Route is the rendered outcome of a directions lookup
type Route struct {
	Mode     string   `json:"mode"`
	Distance string   `json:"distance"`
	Duration string   `json:"duration"`
	Steps    []string `json:"steps"`
}
