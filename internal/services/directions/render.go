package directions

import (
	"fmt"
	"io"
	"strings"

	"github.com/ternarybob/smarttravellers/internal/models"
)

const (
	unknownLine    = "Unknown Line"
	defaultVehicle = "Transit"
)

// Mode menu choices as presented by the CLI
var (
	modeChoices = map[string]string{
		"1": models.TravelModeWalking,
		"2": models.TravelModeDriving,
		"3": models.TravelModeTransit,
	}
	transitChoices = map[string]string{
		"1": "bus",
		"2": "subway",
		"3": "train",
	}
)

// ModeFromChoice maps a menu choice to a travel mode, defaulting to transit
func ModeFromChoice(choice string) string {
	if mode, ok := modeChoices[strings.TrimSpace(choice)]; ok {
		return mode
	}
	return models.TravelModeTransit
}

// TransitFromChoice maps a menu choice to a transit mode. An unknown choice
// is bus; a blank one is "" so the provider picks the vehicles.
func TransitFromChoice(choice string) string {
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return ""
	}
	if mode, ok := transitChoices[choice]; ok {
		return mode
	}
	return "bus"
}

// TransitStep renders a public transport step
func TransitStep(t *models.TransitDetails) string {
	if t == nil {
		t = &models.TransitDetails{}
	}

	line := t.LineName
	if line == "" {
		line = t.LineShortName
	}
	if line == "" {
		line = unknownLine
	}

	vehicle := t.VehicleType
	if vehicle == "" {
		vehicle = defaultVehicle
	}

	return fmt.Sprintf("Take %s %s from %s at %s and get off at %s at %s",
		vehicle, line, t.DepartureStop, t.DepartureTime, t.ArrivalStop, t.ArrivalTime)
}

// MovementStep renders a walking or driving step
func MovementStep(instruction string, distance, duration models.TextValue) string {
	return fmt.Sprintf("Walk/Drive: %s (%s, %s)", instruction, distance.Text, duration.Text)
}

// Render writes a route report
func Render(w io.Writer, route *models.Route) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n--- %s ---\n", capitalize(route.Mode)))
	sb.WriteString(fmt.Sprintf("Distance: %s, Duration: %s\n", route.Distance, route.Duration))
	sb.WriteString("\nStep-by-step directions:\n")
	for _, step := range route.Steps {
		sb.WriteString("- " + step + "\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
