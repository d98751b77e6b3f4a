package main

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createFindPlacesTool returns the find_places tool definition
func createFindPlacesTool() mcp.Tool {
	return mcp.NewTool("find_places",
		mcp.WithDescription("Find the top rated attractions, restaurants, hotels or nightlife around a location"),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("City, area or landmark to search around (e.g. 'Jaipur')"),
		),
		mcp.WithString("category",
			mcp.Required(),
			mcp.Description("One of: attractions, restaurants, hotels, nightlife"),
		),
		mcp.WithString("keyword",
			mcp.Description("Overrides the category keyword (restaurants: veg, non veg, vegan, jain)"),
		),
		mcp.WithNumber("budget",
			mcp.Description("Hotels only: 1=Cheap, 2=Moderate, 3=Expensive, 4=Luxury (default: any)"),
		),
		mcp.WithNumber("top_n",
			mcp.Description("Maximum results to return (default: category setting, max: 20)"),
		),
	)
}

// createGetDirectionsTool returns the get_directions tool definition
func createGetDirectionsTool() mcp.Tool {
	return mcp.NewTool("get_directions",
		mcp.WithDescription("Step-by-step directions between two places"),
		mcp.WithString("origin",
			mcp.Required(),
			mcp.Description("Start location"),
		),
		mcp.WithString("destination",
			mcp.Required(),
			mcp.Description("End location"),
		),
		mcp.WithString("mode",
			mcp.Description("walking, driving or transit (default: transit)"),
		),
		mcp.WithString("transit_mode",
			mcp.Description("Transit only: bus, subway or train (omit to allow any vehicle)"),
		),
	)
}

// createGetWeatherTool returns the get_weather tool definition
func createGetWeatherTool() mcp.Tool {
	return mcp.NewTool("get_weather",
		mcp.WithDescription("Current weather for a city"),
		mcp.WithString("city",
			mcp.Required(),
			mcp.Description("City name"),
		),
	)
}

// createAskTravelAssistantTool returns the ask_travel_assistant tool definition
func createAskTravelAssistantTool() mcp.Tool {
	return mcp.NewTool("ask_travel_assistant",
		mcp.WithDescription("Ask the travel planner a question. End the question with the city name to include its current weather."),
		mcp.WithString("question",
			mcp.Required(),
			mcp.Description("Travel question (e.g. 'Plan 3 days in Goa')"),
		),
	)
}
