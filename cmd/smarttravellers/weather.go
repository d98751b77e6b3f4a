package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ternarybob/smarttravellers/internal/services/weather"
)

var weatherCmd = &cobra.Command{
	Use:   "weather <city>",
	Short: "Show current weather for a city",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := application.WeatherService.Current(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), weather.FormatReport(report))
		return nil
	},
}
