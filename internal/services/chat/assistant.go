// Package chat implements the weather-aware travel assistant.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/services/weather"
)

// Assistant answers travel questions with the current weather of the city named in the prompt
type Assistant struct {
	completer interfaces.ChatCompleter
	weather   interfaces.WeatherService
	logger    arbor.ILogger
}

// NewAssistant creates a travel assistant. weather may be nil, in which case
// every reply carries the missing-weather notice.
func NewAssistant(completer interfaces.ChatCompleter, weather interfaces.WeatherService, logger arbor.ILogger) *Assistant {
	return &Assistant{
		completer: completer,
		weather:   weather,
		logger:    logger,
	}
}

// ExtractCity returns the last whitespace-separated word of prompt with
// surrounding punctuation removed.
func ExtractCity(prompt string) string {
	words := strings.Fields(prompt)
	if len(words) == 0 {
		return ""
	}
	return strings.TrimFunc(words[len(words)-1], func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}

// Reply answers prompt given the prior conversation. Weather is best-effort;
// only a failing model call is returned as an error.
func (a *Assistant) Reply(ctx context.Context, history []interfaces.Message, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	city := ExtractCity(prompt)
	weatherText := ""
	if city != "" {
		weatherText = a.weatherText(ctx, city)
	}

	messages := make([]interfaces.Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, interfaces.Message{Role: "user", Content: prompt})

	answer, err := a.completer.Complete(ctx, buildSystemPrompt(city, weatherText), messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	if city == "" {
		return answer, nil
	}
	return weatherText + "\n\n" + answer, nil
}

func (a *Assistant) weatherText(ctx context.Context, city string) string {
	if a.weather == nil {
		return noticeWeatherMissing
	}

	report, err := a.weather.Current(ctx, city)
	if err == nil {
		return weather.FormatReport(report)
	}

	a.logger.Warn().
		Str("city", city).
		Err(err).
		Msg("Weather lookup failed, continuing without it")

	switch {
	case errors.Is(err, interfaces.ErrLocationNotFound):
		return noticeLocationNotFound
	case errors.Is(err, interfaces.ErrWeatherUnavailable):
		return noticeWeatherMissing
	default:
		return noticeWeatherFetchError
	}
}

// Session keeps the in-memory history of one conversation
type Session struct {
	assistant *Assistant
	mu        sync.Mutex
	history   []interfaces.Message
}

// NewSession starts an empty conversation
func NewSession(assistant *Assistant) *Session {
	return &Session{assistant: assistant}
}

// Ask sends prompt and records both turns when the reply succeeds
func (s *Session) Ask(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply, err := s.assistant.Reply(ctx, s.history, prompt)
	if err != nil {
		return "", err
	}

	s.history = append(s.history,
		interfaces.Message{Role: "user", Content: strings.TrimSpace(prompt)},
		interfaces.Message{Role: "assistant", Content: reply},
	)
	return reply, nil
}

// History returns a copy of the recorded turns
func (s *Session) History() []interfaces.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]interfaces.Message, len(s.history))
	copy(out, s.history)
	return out
}
