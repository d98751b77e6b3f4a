package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/models"
	"github.com/ternarybob/smarttravellers/internal/services/directions"
)

var directionsCmd = &cobra.Command{
	Use:   "directions",
	Short: "Step-by-step directions between two places",
	Long:  `Resolves origin and destination and prints the first route for walking, driving or public transport.`,
	Args:  cobra.NoArgs,
	RunE:  runDirections,
}

var (
	directionsFrom    string
	directionsTo      string
	directionsMode    string
	directionsTransit string
)

func init() {
	directionsCmd.Flags().StringVar(&directionsFrom, "from", "", "Origin location (prompted when empty)")
	directionsCmd.Flags().StringVar(&directionsTo, "to", "", "Destination location (prompted when empty)")
	directionsCmd.Flags().StringVar(&directionsMode, "mode", "", "walking, driving or transit, or 1/2/3 (prompted when not set)")
	directionsCmd.Flags().StringVar(&directionsTransit, "transit", "", "bus, subway or train, or 1/2/3 (transit mode only)")
}

func runDirections(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	p := newPrompter(cmd.InOrStdin(), out)

	origin, err := p.valueOr(directionsFrom, "Enter origin location: ")
	if err != nil {
		return err
	}
	destination, err := p.valueOr(directionsTo, "Enter destination location: ")
	if err != nil {
		return err
	}

	modeChoice := directionsMode
	if !cmd.Flags().Changed("mode") {
		fmt.Fprintln(out, "\nChoose transport mode:")
		fmt.Fprintln(out, "1 = Walking | 2 = Driving | 3 = Transit")
		if modeChoice, err = p.ask("Enter mode (1/2/3): "); err != nil {
			return err
		}
	}
	mode := resolveMode(modeChoice)

	transit := ""
	if mode == models.TravelModeTransit {
		transitChoice := directionsTransit
		if !cmd.Flags().Changed("transit") {
			fmt.Fprintln(out, "\nChoose transit type (for transit mode only):")
			fmt.Fprintln(out, "1 = Bus | 2 = Subway/Metro | 3 = Train (blank = any)")
			if transitChoice, err = p.ask("Enter transit type (1/2/3): "); err != nil {
				return err
			}
		}
		transit = resolveTransit(transitChoice)
	}

	route, err := application.DirectionsService.Lookup(cmd.Context(), models.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        mode,
		TransitMode: transit,
	})
	if err != nil {
		var unavailable *interfaces.DirectionsUnavailableError
		if errors.As(err, &unavailable) {
			fmt.Fprintf(out, "\nCould not fetch directions (%s): %s\n", unavailable.Mode, unavailable.Status)
			return nil
		}
		return err
	}

	return directions.Render(out, route)
}

// resolveMode accepts a mode name or its menu number
func resolveMode(choice string) string {
	switch choice = strings.ToLower(strings.TrimSpace(choice)); choice {
	case models.TravelModeWalking, models.TravelModeDriving, models.TravelModeTransit:
		return choice
	}
	return directions.ModeFromChoice(choice)
}

// resolveTransit accepts a transit type name or its menu number
func resolveTransit(choice string) string {
	switch choice = strings.ToLower(strings.TrimSpace(choice)); choice {
	case "bus", "subway", "train":
		return choice
	case "metro":
		return "subway"
	}
	return directions.TransitFromChoice(choice)
}
