// Package directions looks up a single route between two free-text places
// and renders its steps.
package directions

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/models"
)

const transitTravelMode = "TRANSIT"

// Service resolves both ends of a request and fetches one route
type Service struct {
	geocoder  interfaces.Geocoder
	provider  interfaces.DirectionsProvider
	converter *InstructionConverter
	logger    arbor.ILogger
	now       func() time.Time
}

var _ interfaces.DirectionsService = (*Service)(nil)

// NewService creates a directions service
func NewService(geocoder interfaces.Geocoder, provider interfaces.DirectionsProvider, logger arbor.ILogger) *Service {
	return &Service{
		geocoder:  geocoder,
		provider:  provider,
		converter: NewInstructionConverter(logger),
		logger:    logger,
		now:       time.Now,
	}
}

// Lookup returns the first leg of the first route. A non-OK provider status
// is returned as *interfaces.DirectionsUnavailableError.
func (s *Service) Lookup(ctx context.Context, req models.DirectionsRequest) (*models.Route, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	origin, err := s.geocoder.Resolve(ctx, req.Origin)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve origin: %w", err)
	}

	destination, err := s.geocoder.Resolve(ctx, req.Destination)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination: %w", err)
	}

	query := models.DirectionsQuery{
		Origin:      origin,
		Destination: destination,
		Mode:        req.Mode,
	}
	// Without a transit type neither transit_mode nor departure_time is sent
	if req.Mode == models.TravelModeTransit && req.TransitMode != "" {
		query.TransitMode = req.TransitMode
		query.DepartureTime = s.now()
	}

	s.logger.Debug().
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Str("mode", req.Mode).
		Str("transit_mode", query.TransitMode).
		Msg("Requesting directions")

	resp, err := s.provider.Directions(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch directions: %w", err)
	}

	if resp.Status != "OK" {
		s.logger.Warn().
			Str("mode", req.Mode).
			Str("status", resp.Status).
			Msg("Directions unavailable")
		return nil, &interfaces.DirectionsUnavailableError{Mode: req.Mode, Status: resp.Status}
	}
	if len(resp.Legs) == 0 {
		return nil, &interfaces.DirectionsUnavailableError{Mode: req.Mode, Status: "NO_ROUTE"}
	}

	leg := resp.Legs[0]
	route := &models.Route{
		Mode:     req.Mode,
		Distance: leg.Distance.Text,
		Duration: leg.Duration.Text,
		Steps:    make([]string, 0, len(leg.Steps)),
	}

	for _, step := range leg.Steps {
		if step.TravelMode == transitTravelMode {
			route.Steps = append(route.Steps, TransitStep(step.Transit))
			continue
		}
		route.Steps = append(route.Steps, MovementStep(s.converter.Convert(step.HTMLInstructions), step.Distance, step.Duration))
	}

	s.logger.Info().
		Str("mode", route.Mode).
		Str("distance", route.Distance).
		Str("duration", route.Duration).
		Int("steps", len(route.Steps)).
		Msg("Directions resolved")

	return route, nil
}
