package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ternarybob/smarttravellers/internal/models"
	"github.com/ternarybob/smarttravellers/internal/services/places"
)

// placesCommand describes one discovery subcommand
type placesCommand struct {
	category      string
	short         string
	locationLabel string
}

var placesCommands = []placesCommand{
	{places.CategoryAttractions, "List top rated tourist attractions near a location", "Enter the place name: "},
	{places.CategoryRestaurants, "List top rated restaurants, optionally by dietary preference", "Enter city/area: "},
	{places.CategoryHotels, "List top rated hotels with Booking.com room prices", "Enter city: "},
	{places.CategoryNightlife, "List top rated night clubs and bars", "Enter city for nightlife search: "},
}

type placesFlags struct {
	location string
	top      int
	radius   int
	diet     string
	budget   string
	json     bool
}

func newPlacesCommand(pc placesCommand) *cobra.Command {
	flags := &placesFlags{}

	cmd := &cobra.Command{
		Use:   pc.category,
		Short: pc.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlaces(cmd, pc, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.location, "location", "l", "", "Location to search around (prompted when empty)")
	cmd.Flags().IntVar(&flags.top, "top", 0, "Number of results to show (default: category setting)")
	cmd.Flags().IntVar(&flags.radius, "radius", 0, "Search radius in meters (default: category setting)")
	cmd.Flags().BoolVar(&flags.json, "json", false, "Print the discovery result as JSON")

	switch pc.category {
	case places.CategoryRestaurants:
		cmd.Flags().StringVar(&flags.diet, "diet", "", "Dietary preference: 1/veg, 2/non veg, 3/vegan, 4/jain (prompted when not set)")
	case places.CategoryHotels:
		cmd.Flags().StringVar(&flags.budget, "budget", "", "Budget: 1=Cheap, 2=Moderate, 3=Expensive, 4=Luxury (prompted when not set)")
	}

	return cmd
}

func runPlaces(cmd *cobra.Command, pc placesCommand, flags *placesFlags) error {
	category, ok := application.Catalog.Get(pc.category)
	if !ok {
		return fmt.Errorf("unknown category: %s", pc.category)
	}

	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	location, err := p.valueOr(flags.location, pc.locationLabel)
	if err != nil {
		return err
	}

	query := category.Query(location)
	if flags.top > 0 {
		query.TopN = flags.top
	}
	if flags.radius > 0 {
		query.Radius = flags.radius
	}

	switch pc.category {
	case places.CategoryRestaurants:
		choice := flags.diet
		if !cmd.Flags().Changed("diet") {
			fmt.Fprintln(cmd.OutOrStdout(), "\nChoose dietary preference:")
			fmt.Fprintln(cmd.OutOrStdout(), "1 = Veg | 2 = Non-Veg | 3 = Vegan | 4 = Jain | Leave empty for all")
			if choice, err = p.ask("Enter choice: "); err != nil {
				return err
			}
		}
		query.Keyword = dietKeyword(choice)

	case places.CategoryHotels:
		choice := flags.budget
		if !cmd.Flags().Changed("budget") {
			if choice, err = p.ask("Choose budget (1=Cheap, 2=Moderate, 3=Expensive, 4=Luxury, leave empty for all): "); err != nil {
				return err
			}
		}
		query.Budget = budgetTier(choice)
	}

	detach := subscribeProgress(application.EventService, cmd.ErrOrStderr())
	defer detach()

	result, err := application.PlacesService.Discover(cmd.Context(), query)
	if err != nil {
		return err
	}

	if flags.json {
		return printJSON(cmd, result)
	}

	return places.Render(cmd.OutOrStdout(), result)
}

// dietKeyword accepts a menu number or the keyword itself. Anything else means no filter.
func dietKeyword(choice string) string {
	choice = strings.ToLower(strings.TrimSpace(choice))
	if keyword, ok := places.DietKeywords[choice]; ok {
		return keyword
	}
	for _, keyword := range places.DietKeywords {
		if keyword == choice {
			return keyword
		}
	}
	return ""
}

// budgetTier maps the budget answer to a tier; empty or invalid answers disable the filter
func budgetTier(choice string) int {
	tier, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || tier < 1 || tier > 4 {
		return 0
	}
	return tier
}

func printJSON(cmd *cobra.Command, result *models.DiscoveryResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
