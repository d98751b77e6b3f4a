package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/models"
	"github.com/ternarybob/smarttravellers/internal/services/chat"
	"github.com/ternarybob/smarttravellers/internal/services/places"
	"github.com/ternarybob/smarttravellers/internal/services/weather"
)

const maxTopN = 20

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// handleFindPlaces implements the find_places tool
func handleFindPlaces(placesService interfaces.PlacesService, catalog *places.Catalog, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		location, err := request.RequireString("location")
		if err != nil || strings.TrimSpace(location) == "" {
			return textResult("Error: location parameter is required"), nil
		}

		categoryName, err := request.RequireString("category")
		if err != nil || categoryName == "" {
			return textResult("Error: category parameter is required"), nil
		}

		category, ok := catalog.Get(strings.ToLower(strings.TrimSpace(categoryName)))
		if !ok {
			return textResult(fmt.Sprintf("Error: unknown category %q (use one of: %s)",
				categoryName, strings.Join(catalog.Names(), ", "))), nil
		}

		query := category.Query(strings.TrimSpace(location))
		if keyword := request.GetString("keyword", ""); keyword != "" {
			query.Keyword = keyword
		}
		if category.Lodging {
			if budget := request.GetInt("budget", 0); budget >= 1 && budget <= 4 {
				query.Budget = budget
			}
		}
		if topN := request.GetInt("top_n", 0); topN > 0 {
			if topN > maxTopN {
				topN = maxTopN
			}
			query.TopN = topN
		}

		result, err := placesService.Discover(ctx, query)
		if err != nil {
			logger.Error().Err(err).Str("location", query.Location).Str("category", query.Category).Msg("Discovery failed")
			return textResult(fmt.Sprintf("Search error: %v", err)), nil
		}

		return textResult(formatDiscoveryResult(result)), nil
	}
}

// handleGetDirections implements the get_directions tool
func handleGetDirections(directionsService interfaces.DirectionsService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		origin, err := request.RequireString("origin")
		if err != nil || strings.TrimSpace(origin) == "" {
			return textResult("Error: origin parameter is required"), nil
		}

		destination, err := request.RequireString("destination")
		if err != nil || strings.TrimSpace(destination) == "" {
			return textResult("Error: destination parameter is required"), nil
		}

		req := models.DirectionsRequest{
			Origin:      strings.TrimSpace(origin),
			Destination: strings.TrimSpace(destination),
			Mode:        strings.ToLower(request.GetString("mode", models.TravelModeTransit)),
		}
		if req.Mode == models.TravelModeTransit {
			req.TransitMode = strings.ToLower(request.GetString("transit_mode", ""))
		}

		route, err := directionsService.Lookup(ctx, req)
		if err != nil {
			var unavailable *interfaces.DirectionsUnavailableError
			if errors.As(err, &unavailable) {
				return textResult(fmt.Sprintf("No route found (%s): %s", unavailable.Mode, unavailable.Status)), nil
			}
			logger.Error().Err(err).Str("origin", req.Origin).Str("destination", req.Destination).Msg("Directions lookup failed")
			return textResult(fmt.Sprintf("Directions error: %v", err)), nil
		}

		return textResult(formatRoute(req, route)), nil
	}
}

// handleGetWeather implements the get_weather tool
func handleGetWeather(weatherService interfaces.WeatherService, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		city, err := request.RequireString("city")
		if err != nil || strings.TrimSpace(city) == "" {
			return textResult("Error: city parameter is required"), nil
		}

		report, err := weatherService.Current(ctx, strings.TrimSpace(city))
		if err != nil {
			logger.Warn().Err(err).Str("city", city).Msg("Weather lookup failed")
			return textResult(fmt.Sprintf("Weather error: %v", err)), nil
		}

		return textResult(weather.FormatReport(report)), nil
	}
}

// handleAskTravelAssistant implements the ask_travel_assistant tool
func handleAskTravelAssistant(assistant *chat.Assistant, logger arbor.ILogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		question, err := request.RequireString("question")
		if err != nil || strings.TrimSpace(question) == "" {
			return textResult("Error: question parameter is required"), nil
		}

		reply, err := assistant.Reply(ctx, nil, question)
		if err != nil {
			logger.Error().Err(err).Msg("Assistant reply failed")
			return textResult(fmt.Sprintf("⚠️ Oops! Something went wrong: %v", err)), nil
		}

		return textResult(reply), nil
	}
}
