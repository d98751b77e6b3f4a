package places

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/models"
)

const (
	// DefaultPageDelay is the wait before a continuation token becomes valid
	DefaultPageDelay = 2 * time.Second

	// DefaultMaxPages caps the pages fetched per type tag
	DefaultMaxPages = 5
)

// Waiter blocks for d or until ctx is done
type Waiter func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Fetcher walks nearby search pages for every type tag of a query
type Fetcher struct {
	searcher     interfaces.PlaceSearcher
	eventService interfaces.EventService
	logger       arbor.ILogger
	pageDelay    time.Duration
	maxPages     int
	wait         Waiter
}

// FetcherOption configures the Fetcher.
type FetcherOption func(*Fetcher)

// WithPageDelay sets the wait between a page and its continuation.
func WithPageDelay(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.pageDelay = d
	}
}

// WithMaxPages sets the page cap per type tag. Zero or less means no cap.
func WithMaxPages(n int) FetcherOption {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// WithWaiter replaces the delay implementation.
func WithWaiter(w Waiter) FetcherOption {
	return func(f *Fetcher) {
		f.wait = w
	}
}

// WithFetcherEvents publishes page progress to the event service.
func WithFetcherEvents(eventService interfaces.EventService) FetcherOption {
	return func(f *Fetcher) {
		f.eventService = eventService
	}
}

// NewFetcher creates a paginated category fetcher
func NewFetcher(searcher interfaces.PlaceSearcher, logger arbor.ILogger, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		searcher:  searcher,
		logger:    logger,
		pageDelay: DefaultPageDelay,
		maxPages:  DefaultMaxPages,
		wait:      sleepContext,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch returns every record for every type tag in arrival order, plus the
// number of pages requested. Records are not de-duplicated across type tags.
func (f *Fetcher) Fetch(ctx context.Context, coord models.Coordinate, types []string, keyword string, radius int) ([]models.RawPlace, int, error) {
	var records []models.RawPlace
	pages := 0

	for _, placeType := range types {
		typeRecords, typePages, err := f.fetchType(ctx, coord, placeType, keyword, radius)
		pages += typePages
		if err != nil {
			return nil, pages, err
		}
		records = append(records, typeRecords...)
	}

	return records, pages, nil
}

func (f *Fetcher) fetchType(ctx context.Context, coord models.Coordinate, placeType, keyword string, radius int) ([]models.RawPlace, int, error) {
	var records []models.RawPlace
	token := ""

	for page := 1; ; page++ {
		req := models.NearbySearchRequest{
			Location: coord,
			Radius:   radius,
			Type:     placeType,
			Keyword:  keyword,
		}
		if token != "" {
			req = models.NearbySearchRequest{PageToken: token}
		}

		resp, err := f.searcher.NearbySearch(ctx, req)
		if err != nil {
			return nil, page - 1, fmt.Errorf("nearby search for %s (page %d): %w", placeType, page, err)
		}

		if resp.Status != "" && resp.Status != "OK" && resp.Status != "ZERO_RESULTS" {
			f.logger.Warn().
				Str("type", placeType).
				Int("page", page).
				Str("status", resp.Status).
				Msg("Nearby search returned unexpected status, keeping page as-is")
		}

		records = append(records, resp.Results...)

		f.logger.Debug().
			Str("type", placeType).
			Int("page", page).
			Int("results", len(resp.Results)).
			Bool("has_next", resp.NextPageToken != "").
			Msg("Fetched nearby search page")

		publishEvent(ctx, f.eventService, f.logger, interfaces.EventPageFetched, map[string]interface{}{
			"type":     placeType,
			"page":     page,
			"results":  len(resp.Results),
			"has_next": resp.NextPageToken != "",
		})

		token = resp.NextPageToken
		if token == "" {
			return records, page, nil
		}

		if f.maxPages > 0 && page >= f.maxPages {
			f.logger.Warn().
				Str("type", placeType).
				Int("max_pages", f.maxPages).
				Msg("Page cap reached, keeping results fetched so far")
			publishEvent(ctx, f.eventService, f.logger, interfaces.EventPageCapReached, map[string]interface{}{
				"type":      placeType,
				"max_pages": f.maxPages,
			})
			return records, page, nil
		}

		if err := f.wait(ctx, f.pageDelay); err != nil {
			return nil, page, fmt.Errorf("waiting for next page of %s: %w", placeType, err)
		}
	}
}
