package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"
	arbor_models "github.com/ternarybob/arbor/models"

	"github.com/ternarybob/smarttravellers/internal/app"
	"github.com/ternarybob/smarttravellers/internal/common"
)

func main() {
	if err := common.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	// Load configuration
	var configFiles []string
	if configPath := os.Getenv("SMARTTRAVELLERS_CONFIG"); configPath != "" {
		configFiles = append(configFiles, configPath)
	} else if _, err := os.Stat("smarttravellers.toml"); err == nil {
		configFiles = append(configFiles, "smarttravellers.toml")
	}

	config, err := common.LoadFromFiles(configFiles...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize minimal logger for MCP server (console only, no file output)
	logger := arbor.NewLogger().WithConsoleWriter(arbor_models.WriterConfiguration{
		Type:             arbor_models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString("warn") // Minimal logging to avoid cluttering MCP stdio

	application, err := app.New(config, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer application.Close()

	// Create MCP server
	mcpServer := server.NewMCPServer(
		"smarttravellers",
		common.LoadVersionFromFile(),
		server.WithToolCapabilities(true),
	)

	// Register discovery tools
	mcpServer.AddTool(createFindPlacesTool(), handleFindPlaces(application.PlacesService, application.Catalog, logger))
	mcpServer.AddTool(createGetDirectionsTool(), handleGetDirections(application.DirectionsService, logger))

	// Register weather and assistant tools
	mcpServer.AddTool(createGetWeatherTool(), handleGetWeather(application.WeatherService, logger))
	mcpServer.AddTool(createAskTravelAssistantTool(), handleAskTravelAssistant(application.Assistant, logger))

	// Start server (blocks on stdio)
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}
}
