package places

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/models"
	"github.com/ternarybob/smarttravellers/internal/services/enrichment"
)

// DefaultMaxEnrichedHotels is the number of ranked hotels sent to the price enricher
const DefaultMaxEnrichedHotels = 5

// Service implements the PlacesService interface
type Service struct {
	geocoder     interfaces.Geocoder
	fetcher      *Fetcher
	normalizer   *Normalizer
	catalog      *Catalog
	enricher     interfaces.PriceEnricher
	maxEnrich    int
	eventService interfaces.EventService
	logger       arbor.ILogger
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithEnricher attaches best-effort price enrichment for lodging results.
func WithEnricher(enricher interfaces.PriceEnricher, maxHotels int) ServiceOption {
	return func(s *Service) {
		s.enricher = enricher
		if maxHotels > 0 {
			s.maxEnrich = maxHotels
		}
	}
}

// WithEventService publishes run progress.
func WithEventService(eventService interfaces.EventService) ServiceOption {
	return func(s *Service) {
		s.eventService = eventService
	}
}

// NewService creates a new discovery pipeline
func NewService(
	geocoder interfaces.Geocoder,
	fetcher *Fetcher,
	normalizer *Normalizer,
	catalog *Catalog,
	logger arbor.ILogger,
	opts ...ServiceOption,
) *Service {
	s := &Service{
		geocoder:   geocoder,
		fetcher:    fetcher,
		normalizer: normalizer,
		catalog:    catalog,
		maxEnrich:  DefaultMaxEnrichedHotels,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

var _ interfaces.PlacesService = (*Service)(nil)

// Discover runs one pipeline: resolve, fetch, filter, normalize, rank and
// optionally enrich lodging results.
func (s *Service) Discover(ctx context.Context, query models.PlaceQuery) (*models.DiscoveryResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	category, ok := s.catalog.Get(query.Category)
	if !ok {
		return nil, fmt.Errorf("invalid query: unknown category %q", query.Category)
	}

	started := time.Now()
	runID := uuid.New().String()

	s.logger.Info().
		Str("run_id", runID).
		Str("location", query.Location).
		Str("category", query.Category).
		Strs("types", query.Types).
		Int("radius", query.Radius).
		Msg("Starting place discovery")

	s.publishEvent(ctx, interfaces.EventDiscoveryStarted, map[string]interface{}{
		"run_id":   runID,
		"location": query.Location,
		"category": query.Category,
	})

	coord, err := s.geocoder.Resolve(ctx, query.Location)
	if err != nil {
		s.fail(ctx, runID, err)
		return nil, fmt.Errorf("failed to resolve location: %w", err)
	}

	s.publishEvent(ctx, interfaces.EventLocationResolved, map[string]interface{}{
		"run_id":     runID,
		"coordinate": coord.String(),
	})

	records, pages, err := s.fetcher.Fetch(ctx, coord, query.Types, query.Keyword, query.Radius)
	if err != nil {
		s.fail(ctx, runID, err)
		return nil, fmt.Errorf("failed to search places: %w", err)
	}

	admitted := Filter(records, ThresholdsFor(category, query), s.normalizer.For(category))
	ranked := Rank(admitted, query.TopN)

	if category.Lodging && s.enricher != nil {
		s.enrich(ctx, runID, query, ranked)
	}

	result := &models.DiscoveryResult{
		RunID:         runID,
		Query:         query,
		Coordinate:    coord,
		RawCount:      len(records),
		PagesFetched:  pages,
		AdmittedCount: len(admitted),
		Places:        ranked,
		Duration:      time.Since(started),
	}

	s.announce(ctx, interfaces.EventDiscoveryCompleted, map[string]interface{}{
		"run_id":   runID,
		"raw":      result.RawCount,
		"admitted": result.AdmittedCount,
		"returned": len(result.Places),
	})

	s.logger.Info().
		Str("run_id", runID).
		Int("raw_count", result.RawCount).
		Int("pages", result.PagesFetched).
		Int("admitted", result.AdmittedCount).
		Int("returned", len(result.Places)).
		Dur("duration", result.Duration).
		Msg("Place discovery completed")

	return result, nil
}

// enrich attaches booking data in place. Failures never abort the run.
func (s *Service) enrich(ctx context.Context, runID string, query models.PlaceQuery, ranked []models.Place) {
	for i := range ranked {
		if i >= s.maxEnrich || ctx.Err() != nil {
			return
		}

		pricing, ok := s.enricher.Enrich(ctx, ranked[i].Name, query.Location)
		if !ok {
			continue
		}

		if query.Budget > 0 {
			pricing.Rooms = enrichment.FilterRoomsByBudget(pricing.Rooms, query.Budget)
		}
		ranked[i].Booking = pricing

		s.publishEvent(ctx, interfaces.EventHotelEnriched, map[string]interface{}{
			"run_id": runID,
			"hotel":  ranked[i].Name,
			"rooms":  len(pricing.Rooms),
		})
	}
}

func (s *Service) fail(ctx context.Context, runID string, err error) {
	s.logger.Error().
		Str("run_id", runID).
		Err(err).
		Msg("Place discovery failed")

	s.announce(ctx, interfaces.EventDiscoveryFailed, map[string]interface{}{
		"run_id": runID,
		"error":  err.Error(),
	})
}

func (s *Service) publishEvent(ctx context.Context, eventType interfaces.EventType, data map[string]interface{}) {
	publishEvent(ctx, s.eventService, s.logger, eventType, data)
}

// announce publishes a run outcome asynchronously. Nothing after it in the run
// depends on subscribers having seen it.
func (s *Service) announce(ctx context.Context, eventType interfaces.EventType, data map[string]interface{}) {
	if s.eventService == nil {
		return
	}

	data["timestamp"] = time.Now().Format(time.RFC3339)
	event := interfaces.Event{
		Type:    eventType,
		Payload: data,
	}
	if err := s.eventService.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.logger.Warn().
			Err(err).
			Str("event_type", string(eventType)).
			Msg("Failed to publish event")
	}
}

// publishEvent publishes synchronously so subscribers see events in pipeline order
func publishEvent(ctx context.Context, eventService interfaces.EventService, logger arbor.ILogger, eventType interfaces.EventType, data map[string]interface{}) {
	if eventService == nil {
		return
	}

	data["timestamp"] = time.Now().Format(time.RFC3339)
	event := interfaces.Event{
		Type:    eventType,
		Payload: data,
	}
	if err := eventService.PublishSync(ctx, event); err != nil {
		logger.Warn().
			Err(err).
			Str("event_type", string(eventType)).
			Msg("Failed to publish event")
	}
}
