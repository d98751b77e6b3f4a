package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/smarttravellers/internal/app"
	"github.com/ternarybob/smarttravellers/internal/common"
)

var (
	// Command-line flags
	configFiles []string // Multiple -config flags supported
	envFiles    []string

	// Global state
	config      *common.Config
	logger      arbor.ILogger
	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "smarttravellers",
	Short: "Find attractions, restaurants, hotels, nightlife and routes for a trip",
	Long: `Smart Travellers queries Google Maps Platform for places around a location,
keeps the well reviewed ones and prints a ranked shortlist. It also looks up
directions and runs a weather-aware travel assistant.`,
	SilenceUsage:      true,
	PersistentPreRunE: startup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if application != nil {
			application.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringSliceVarP(&configFiles, "config", "c", nil, "Configuration file path (can be specified multiple times, later files override earlier ones)")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "Environment files loaded before config (existing variables win)")

	for _, pc := range placesCommands {
		rootCmd.AddCommand(newPlacesCommand(pc))
	}
	rootCmd.AddCommand(directionsCmd, chatCmd, weatherCmd, versionCmd)
}

// startup runs before every subcommand.
//
// Startup sequence (REQUIRED ORDER):
// 1. Load .env files
// 2. Load config (defaults -> file1 -> file2 -> ... -> env)
// 3. Initialize logger
// 4. Print banner
// 5. Build services
func startup(cmd *cobra.Command, args []string) error {
	if cmd == versionCmd {
		return nil
	}

	if err := common.LoadDotEnv(envFiles...); err != nil {
		return err
	}

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("smarttravellers.toml"); err == nil {
			configFiles = append(configFiles, "smarttravellers.toml")
		} else if _, err := os.Stat("deployments/local/smarttravellers.toml"); err == nil {
			configFiles = append(configFiles, "deployments/local/smarttravellers.toml")
		}
	}

	var err error
	config, err = common.LoadFromFiles(configFiles...)
	if err != nil {
		// Global console logger until the configured one exists
		common.GetLogger().Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration files")
		os.Exit(1)
	}

	logger = common.InitLogger(config)

	version := common.LoadVersionFromFile()
	if cmd != chatCmd {
		common.PrintBanner(version, config)
	}

	// Debug: Log final resolved configuration for troubleshooting
	logger.Debug().
		Strs("config_files", configFiles).
		Str("maps_base_url", config.Maps.BaseURL).
		Bool("maps_key_set", config.Maps.APIKey != "").
		Dur("page_delay", time.Duration(config.Maps.PageDelay)).
		Int("max_pages", config.Maps.MaxPages).
		Bool("enrichment_enabled", config.Enrichment.Enabled).
		Bool("weather_key_set", config.Weather.APIKey != "").
		Str("log_level", config.Logging.Level).
		Strs("log_output", config.Logging.Output).
		Msg("Resolved configuration (sanitized)")

	application, err = app.New(config, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize application")
		return err
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
