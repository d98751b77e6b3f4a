package chat

import "fmt"

// travelPlannerPersona sets the assistant's role and tone
const travelPlannerPersona = `You are Smart Travellers, an advanced AI-powered travel planner.
Always provide detailed, engaging and practical travel guidance.
Personalize recommendations based on user needs like budget, trip duration, themes and interests.
Respond with a friendly, professional tone and enrich answers with local insights and cultural tips.`

// weatherGuidance asks for indoor alternatives when conditions are poor
const weatherGuidance = `If the weather is unsuitable for outdoor plans (rain, storm, heavy snow, extreme heat),
clearly mention the reason and suggest indoor or alternate activities.`

// Degraded weather notices shown in place of a report
const (
	noticeLocationNotFound  = "⚠️ Could not fetch location details."
	noticeWeatherMissing    = "⚠️ Weather data not available."
	noticeWeatherFetchError = "⚠️ Error fetching weather."
)

// buildSystemPrompt combines the persona, the weather block for city and the weather guidance
func buildSystemPrompt(city, weatherText string) string {
	place := city
	if place == "" {
		place = "destination"
	}

	return fmt.Sprintf("%s\n\nCurrent weather details for %s:\n%s\n\n%s",
		travelPlannerPersona, place, weatherText, weatherGuidance)
}
