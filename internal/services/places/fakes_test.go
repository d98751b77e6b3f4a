package places

import (
	"context"
	"sync"
	"time"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/models"
)

type fakeGeocoder struct {
	coord models.Coordinate
	err   error
	calls []string
}

func (g *fakeGeocoder) Resolve(ctx context.Context, placeName string) (models.Coordinate, error) {
	g.calls = append(g.calls, placeName)
	return g.coord, g.err
}

// fakeSearcher serves first pages by type and continuation pages by token
type fakeSearcher struct {
	firstPages map[string]*models.SearchPage
	tokenPages map[string]*models.SearchPage
	err        error
	requests   []models.NearbySearchRequest
}

func (s *fakeSearcher) NearbySearch(ctx context.Context, req models.NearbySearchRequest) (*models.SearchPage, error) {
	s.requests = append(s.requests, req)
	if s.err != nil {
		return nil, s.err
	}
	if req.PageToken != "" {
		if page, ok := s.tokenPages[req.PageToken]; ok {
			return page, nil
		}
		return &models.SearchPage{Status: "INVALID_REQUEST"}, nil
	}
	if page, ok := s.firstPages[req.Type]; ok {
		return page, nil
	}
	return &models.SearchPage{Status: "ZERO_RESULTS"}, nil
}

type fakePhotos struct{}

func (fakePhotos) PhotoURL(reference string, maxWidth int) string {
	if reference == "" {
		return ""
	}
	return "https://photos.test/" + reference
}

// recordingWaiter captures delays instead of sleeping
type recordingWaiter struct {
	waits []time.Duration
}

func (w *recordingWaiter) wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.waits = append(w.waits, d)
	return nil
}

type fakeEnricher struct {
	pricing map[string]*models.HotelPricing
	calls   []string
}

func (e *fakeEnricher) Enrich(ctx context.Context, hotelName, city string) (*models.HotelPricing, bool) {
	e.calls = append(e.calls, hotelName+"|"+city)
	p, ok := e.pricing[hotelName]
	return p, ok
}

// recordingEvents implements EventService by appending published event types
type recordingEvents struct {
	mu     sync.Mutex
	events []interfaces.Event
	async  []interfaces.EventType
}

func (r *recordingEvents) Subscribe(interfaces.EventType, interfaces.EventHandler) error   { return nil }
func (r *recordingEvents) Unsubscribe(interfaces.EventType, interfaces.EventHandler) error { return nil }
func (r *recordingEvents) Publish(ctx context.Context, event interfaces.Event) error {
	r.mu.Lock()
	r.async = append(r.async, event.Type)
	r.mu.Unlock()
	return r.PublishSync(ctx, event)
}
func (r *recordingEvents) PublishSync(ctx context.Context, event interfaces.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}
func (r *recordingEvents) Close() error { return nil }

func (r *recordingEvents) types() []interfaces.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]interfaces.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func (r *recordingEvents) asyncTypes() []interfaces.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]interfaces.EventType(nil), r.async...)
}

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }
func ptrStr(v string) *string     { return &v }

func rawPlace(name string, rating float64, reviews int) models.RawPlace {
	return models.RawPlace{
		Name:             name,
		Rating:           ptrFloat(rating),
		UserRatingsTotal: ptrInt(reviews),
		Vicinity:         ptrStr(name + " Road"),
	}
}
