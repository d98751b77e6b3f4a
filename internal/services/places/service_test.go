package places

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/models"
)

var jaipur = models.Coordinate{Lat: 26.9124, Lng: 75.7873}

func jaipurAttractions() *fakeSearcher {
	unrated := models.RawPlace{Name: "Unrated Shrine", UserRatingsTotal: ptrInt(900)}

	return &fakeSearcher{
		firstPages: map[string]*models.SearchPage{
			"tourist_attraction": {
				Status: "OK",
				Results: []models.RawPlace{
					rawPlace("Amber Fort", 4.6, 60000),
					rawPlace("Hawa Mahal", 4.4, 120000),
					rawPlace("City Palace", 4.5, 40000),
					rawPlace("City Tours & Travel Agency", 4.9, 800),
					rawPlace("Small Temple", 4.2, 300),
					rawPlace("Tiny Park", 3.9, 1000),
					rawPlace("Local Museum", 4.7, 120),
					unrated,
					rawPlace("Roadside Garden", 3.5, 5000),
					rawPlace("Jantar Mantar", 4.5, 35000),
				},
				NextPageToken: "page-2",
			},
		},
		tokenPages: map[string]*models.SearchPage{
			"page-2": {
				Status: "OK",
				Results: []models.RawPlace{
					rawPlace("Nahargarh Fort", 4.4, 30000),
					rawPlace("Old Step Well", 4.0, 499),
					rawPlace("Gallery", 3.8, 800),
					rawPlace("Lake View", 4.1, 100),
					rawPlace("Jal Mahal", 3.9, 20000),
				},
			},
		},
	}
}

type serviceFixture struct {
	geocoder *fakeGeocoder
	searcher *fakeSearcher
	waiter   *recordingWaiter
	events   *recordingEvents
	service  *Service
}

func newServiceFixture(t *testing.T, searcher *fakeSearcher, opts ...ServiceOption) *serviceFixture {
	t.Helper()

	logger := arbor.NewLogger()
	catalog, err := NewCatalog(nil)
	require.NoError(t, err)

	f := &serviceFixture{
		geocoder: &fakeGeocoder{coord: jaipur},
		searcher: searcher,
		waiter:   &recordingWaiter{},
		events:   &recordingEvents{},
	}

	fetcher := NewFetcher(searcher, logger,
		WithWaiter(f.waiter.wait),
		WithFetcherEvents(f.events),
	)
	opts = append([]ServiceOption{WithEventService(f.events)}, opts...)
	f.service = NewService(f.geocoder, fetcher, NewNormalizer(fakePhotos{}, 400), catalog, logger, opts...)

	return f
}

func attractionsQuery(t *testing.T, location string) models.PlaceQuery {
	t.Helper()
	catalog, err := NewCatalog(nil)
	require.NoError(t, err)
	category, ok := catalog.Get(CategoryAttractions)
	require.True(t, ok)
	return category.Query(location)
}

func names(places []models.Place) []string {
	out := make([]string, 0, len(places))
	for _, p := range places {
		out = append(out, p.Name)
	}
	return out
}

func TestDiscover_JaipurAttractions(t *testing.T) {
	f := newServiceFixture(t, jaipurAttractions())

	result, err := f.service.Discover(context.Background(), attractionsQuery(t, "Jaipur"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Jaipur"}, f.geocoder.calls)
	assert.Equal(t, jaipur, result.Coordinate)
	assert.Equal(t, 15, result.RawCount)
	assert.Equal(t, 2, result.PagesFetched)
	assert.Equal(t, 5, result.AdmittedCount)
	assert.NotEmpty(t, result.RunID)

	assert.Equal(t, []string{
		"Amber Fort",
		"City Palace",
		"Jantar Mantar",
		"Hawa Mahal",
		"Nahargarh Fort",
	}, names(result.Places))

	first := result.Places[0]
	assert.Equal(t, 4.6, first.Rating)
	assert.Equal(t, 60000, first.Reviews)
	assert.Equal(t, "Amber Fort Road", first.Address)
	assert.Empty(t, first.PriceLabel)
	assert.Nil(t, first.Booking)

	require.Len(t, f.searcher.requests, 2)
	firstReq := f.searcher.requests[0]
	assert.Equal(t, jaipur, firstReq.Location)
	assert.Equal(t, "tourist_attraction", firstReq.Type)
	assert.Equal(t, 4000, firstReq.Radius)
	assert.Equal(t, "museum|park|temple|monument|garden|beach", firstReq.Keyword)
	assert.Equal(t, models.NearbySearchRequest{PageToken: "page-2"}, f.searcher.requests[1])

	assert.Equal(t, []time.Duration{DefaultPageDelay}, f.waiter.waits)
}

func TestDiscover_EventOrder(t *testing.T) {
	f := newServiceFixture(t, jaipurAttractions())

	_, err := f.service.Discover(context.Background(), attractionsQuery(t, "Jaipur"))
	require.NoError(t, err)

	assert.Equal(t, []interfaces.EventType{
		interfaces.EventDiscoveryStarted,
		interfaces.EventLocationResolved,
		interfaces.EventPageFetched,
		interfaces.EventPageFetched,
		interfaces.EventDiscoveryCompleted,
	}, f.events.types())
	assert.Equal(t, []interfaces.EventType{interfaces.EventDiscoveryCompleted}, f.events.asyncTypes(),
		"only the run outcome is published off the pipeline path")
}

func TestDiscover_UnresolvableLocationSkipsSearch(t *testing.T) {
	f := newServiceFixture(t, jaipurAttractions())
	f.geocoder.err = &interfaces.ResolutionError{Query: "Atlantis", Status: "ZERO_RESULTS"}

	result, err := f.service.Discover(context.Background(), attractionsQuery(t, "Atlantis"))
	require.Error(t, err)
	assert.Nil(t, result)

	var resErr *interfaces.ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, "ZERO_RESULTS", resErr.Status)
	assert.Contains(t, err.Error(), "could not fetch coordinates for 'Atlantis'")

	assert.Empty(t, f.searcher.requests)
	assert.Equal(t, []interfaces.EventType{
		interfaces.EventDiscoveryStarted,
		interfaces.EventDiscoveryFailed,
	}, f.events.types())
	assert.Equal(t, []interfaces.EventType{interfaces.EventDiscoveryFailed}, f.events.asyncTypes())
}

func TestDiscover_SearchFailureAborts(t *testing.T) {
	searcher := jaipurAttractions()
	searcher.err = &interfaces.CollaboratorError{Service: "maps", Op: "nearby search", StatusCode: 500, Err: errors.New("server error")}
	f := newServiceFixture(t, searcher)

	_, err := f.service.Discover(context.Background(), attractionsQuery(t, "Jaipur"))
	require.Error(t, err)

	var collabErr *interfaces.CollaboratorError
	assert.True(t, errors.As(err, &collabErr))
	assert.Contains(t, f.events.types(), interfaces.EventDiscoveryFailed)
}

func TestDiscover_InvalidQuery(t *testing.T) {
	f := newServiceFixture(t, jaipurAttractions())

	tests := []struct {
		name  string
		query func(q models.PlaceQuery) models.PlaceQuery
	}{
		{"empty location", func(q models.PlaceQuery) models.PlaceQuery { q.Location = ""; return q }},
		{"no types", func(q models.PlaceQuery) models.PlaceQuery { q.Types = nil; return q }},
		{"zero radius", func(q models.PlaceQuery) models.PlaceQuery { q.Radius = 0; return q }},
		{"rating above five", func(q models.PlaceQuery) models.PlaceQuery { q.MinRating = 5.5; return q }},
		{"unknown category", func(q models.PlaceQuery) models.PlaceQuery { q.Category = "spas"; return q }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Discover(context.Background(), tt.query(attractionsQuery(t, "Jaipur")))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid query")
		})
	}

	assert.Empty(t, f.geocoder.calls)
}

func TestDiscover_EmptyResultIsNotAnError(t *testing.T) {
	searcher := &fakeSearcher{
		firstPages: map[string]*models.SearchPage{
			"tourist_attraction": {Status: "OK", Results: []models.RawPlace{rawPlace("Quiet Corner", 3.1, 10)}},
		},
	}
	f := newServiceFixture(t, searcher)

	result, err := f.service.Discover(context.Background(), attractionsQuery(t, "Jaipur"))
	require.NoError(t, err)
	assert.Empty(t, result.Places)
	assert.Equal(t, 1, result.RawCount)
	assert.Empty(t, f.waiter.waits)
}

func hotelsFixture(t *testing.T, enricher *fakeEnricher, maxHotels int) *serviceFixture {
	t.Helper()

	h1 := rawPlace("Heritage Haveli", 4.5, 2000)
	h1.PriceLevel = ptrInt(2)
	h2 := rawPlace("Lake Palace Inn", 4.3, 1500)
	h3 := rawPlace("Royal Suites", 4.8, 5000)
	h3.PriceLevel = ptrInt(3)

	searcher := &fakeSearcher{
		firstPages: map[string]*models.SearchPage{
			"lodging": {Status: "OK", Results: []models.RawPlace{h1, h2, h3}},
		},
	}
	return newServiceFixture(t, searcher, WithEnricher(enricher, maxHotels))
}

func hotelsQuery(t *testing.T, budget int) models.PlaceQuery {
	t.Helper()
	category, ok := DefaultCategories()[CategoryHotels]
	require.True(t, ok)
	q := category.Query("Udaipur")
	q.Budget = budget
	return q
}

func TestDiscover_HotelsBudgetAndEnrichment(t *testing.T) {
	enricher := &fakeEnricher{
		pricing: map[string]*models.HotelPricing{
			"Heritage Haveli": {
				HotelName: "Heritage Haveli Udaipur",
				HotelURL:  "https://www.booking.com/hotel/in/heritage-haveli.html",
				Rooms: []models.RoomOffer{
					{RoomType: "Standard", PriceText: "₹ 1,500", PriceValue: ptrInt(1500)},
					{RoomType: "Deluxe", PriceText: "₹ 3,000", PriceValue: ptrInt(3000)},
				},
			},
		},
	}
	f := hotelsFixture(t, enricher, 5)

	result, err := f.service.Discover(context.Background(), hotelsQuery(t, 2))
	require.NoError(t, err)

	require.Equal(t, []string{"Heritage Haveli", "Lake Palace Inn"}, names(result.Places))

	haveli := result.Places[0]
	assert.Equal(t, "Moderate", haveli.PriceLabel)
	require.NotNil(t, haveli.Booking)
	require.Len(t, haveli.Booking.Rooms, 1)
	assert.Equal(t, "Deluxe", haveli.Booking.Rooms[0].RoomType)

	inn := result.Places[1]
	assert.Empty(t, inn.PriceLabel)
	assert.Nil(t, inn.PriceLevel)
	assert.Nil(t, inn.Booking)

	assert.Equal(t, []string{"Heritage Haveli|Udaipur", "Lake Palace Inn|Udaipur"}, enricher.calls)
	assert.Contains(t, f.events.types(), interfaces.EventHotelEnriched)
}

func TestDiscover_EnrichmentCap(t *testing.T) {
	enricher := &fakeEnricher{}
	f := hotelsFixture(t, enricher, 1)

	result, err := f.service.Discover(context.Background(), hotelsQuery(t, 0))
	require.NoError(t, err)

	assert.Len(t, result.Places, 3)
	assert.Equal(t, []string{"Royal Suites|Udaipur"}, enricher.calls)
}

func TestDiscover_BudgetIgnoredOutsideLodging(t *testing.T) {
	pricey := rawPlace("Rooftop Grill", 4.6, 900)
	pricey.PriceLevel = ptrInt(4)
	searcher := &fakeSearcher{
		firstPages: map[string]*models.SearchPage{
			"restaurant": {Status: "OK", Results: []models.RawPlace{pricey}},
		},
	}
	enricher := &fakeEnricher{}
	f := newServiceFixture(t, searcher, WithEnricher(enricher, 5))

	q := DefaultCategories()[CategoryRestaurants].Query("Jaipur")
	q.Budget = 1

	result, err := f.service.Discover(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, result.Places, 1)
	assert.Empty(t, result.Places[0].PriceLabel)
	assert.Empty(t, enricher.calls)
}
