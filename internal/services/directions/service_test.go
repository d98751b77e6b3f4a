package directions

import (
	"bytes"
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

type mapGeocoder map[string]models.Coordinate

func (g mapGeocoder) Resolve(ctx context.Context, placeName string) (models.Coordinate, error) {
	coord, ok := g[placeName]
	if !ok {
		return models.Coordinate{}, &interfaces.ResolutionError{Query: placeName, Status: "ZERO_RESULTS"}
	}
	return coord, nil
}

type fakeProvider struct {
	resp    *models.DirectionsResponse
	err     error
	queries []models.DirectionsQuery
}

func (p *fakeProvider) Directions(ctx context.Context, q models.DirectionsQuery) (*models.DirectionsResponse, error) {
	p.queries = append(p.queries, q)
	return p.resp, p.err
}

var (
	hawaMahal = models.Coordinate{Lat: 26.9239, Lng: 75.8267}
	amberFort = models.Coordinate{Lat: 26.9855, Lng: 75.8513}
	geocoder  = mapGeocoder{"Hawa Mahal": hawaMahal, "Amber Fort": amberFort}
	fixedNow  = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
)

func newTestService(provider *fakeProvider) *Service {
	s := NewService(geocoder, provider, arbor.NewLogger())
	s.now = func() time.Time { return fixedNow }
	return s
}

func transitResponse() *models.DirectionsResponse {
	return &models.DirectionsResponse{
		Status: "OK",
		Legs: []models.DirectionsLeg{{
			Distance: models.TextValue{Text: "11.2 km", Value: 11200},
			Duration: models.TextValue{Text: "42 mins", Value: 2520},
			Steps: []models.DirectionsStep{
				{
					TravelMode:       "WALKING",
					HTMLInstructions: "Walk to <b>Badi Chaupar</b>",
					Distance:         models.TextValue{Text: "0.4 km"},
					Duration:         models.TextValue{Text: "5 mins"},
				},
				{
					TravelMode: "TRANSIT",
					Transit: &models.TransitDetails{
						LineShortName: "AC-5",
						VehicleType:   "BUS",
						DepartureStop: "Badi Chaupar",
						ArrivalStop:   "Amer",
						DepartureTime: "9:40 AM",
						ArrivalTime:   "10:10 AM",
					},
				},
			},
		}},
	}
}

func TestLookup_Transit(t *testing.T) {
	provider := &fakeProvider{resp: transitResponse()}

	route, err := newTestService(provider).Lookup(context.Background(), models.DirectionsRequest{
		Origin:      "Hawa Mahal",
		Destination: "Amber Fort",
		Mode:        models.TravelModeTransit,
		TransitMode: "bus",
	})
	require.NoError(t, err)

	assert.Equal(t, "transit", route.Mode)
	assert.Equal(t, "11.2 km", route.Distance)
	assert.Equal(t, "42 mins", route.Duration)
	assert.Equal(t, []string{
		"Walk/Drive: Walk to **Badi Chaupar** (0.4 km, 5 mins)",
		"Take BUS AC-5 from Badi Chaupar at 9:40 AM and get off at Amer at 10:10 AM",
	}, route.Steps)

	require.Len(t, provider.queries, 1)
	q := provider.queries[0]
	assert.Equal(t, hawaMahal, q.Origin)
	assert.Equal(t, amberFort, q.Destination)
	assert.Equal(t, "bus", q.TransitMode)
	assert.Equal(t, fixedNow, q.DepartureTime)
}

func TestLookup_WalkingSendsNoTransitParameters(t *testing.T) {
	provider := &fakeProvider{resp: &models.DirectionsResponse{
		Status: "OK",
		Legs:   []models.DirectionsLeg{{Distance: models.TextValue{Text: "7 km"}, Duration: models.TextValue{Text: "1 hour"}}},
	}}

	route, err := newTestService(provider).Lookup(context.Background(), models.DirectionsRequest{
		Origin:      "Hawa Mahal",
		Destination: "Amber Fort",
		Mode:        models.TravelModeWalking,
	})
	require.NoError(t, err)
	assert.Empty(t, route.Steps)

	q := provider.queries[0]
	assert.Empty(t, q.TransitMode)
	assert.True(t, q.DepartureTime.IsZero())
}

func TestLookup_TransitWithoutTypeLeavesVehiclesToProvider(t *testing.T) {
	provider := &fakeProvider{resp: transitResponse()}

	_, err := newTestService(provider).Lookup(context.Background(), models.DirectionsRequest{
		Origin:      "Hawa Mahal",
		Destination: "Amber Fort",
		Mode:        models.TravelModeTransit,
	})
	require.NoError(t, err)

	q := provider.queries[0]
	assert.Equal(t, models.TravelModeTransit, q.Mode)
	assert.Empty(t, q.TransitMode)
	assert.True(t, q.DepartureTime.IsZero())
}

func TestLookup_Unavailable(t *testing.T) {
	provider := &fakeProvider{resp: &models.DirectionsResponse{Status: "ZERO_RESULTS"}}

	route, err := newTestService(provider).Lookup(context.Background(), models.DirectionsRequest{
		Origin:      "Hawa Mahal",
		Destination: "Amber Fort",
		Mode:        models.TravelModeDriving,
	})
	assert.Nil(t, route)

	var unavailable *interfaces.DirectionsUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, "driving", unavailable.Mode)
	assert.Equal(t, "ZERO_RESULTS", unavailable.Status)
	assert.Equal(t, "could not fetch directions (driving): ZERO_RESULTS", err.Error())
}

func TestLookup_Failures(t *testing.T) {
	tests := []struct {
		name     string
		req      models.DirectionsRequest
		provider *fakeProvider
		contains string
	}{
		{
			name:     "invalid mode",
			req:      models.DirectionsRequest{Origin: "Hawa Mahal", Destination: "Amber Fort", Mode: "flying"},
			provider: &fakeProvider{},
			contains: "invalid request",
		},
		{
			name:     "missing origin",
			req:      models.DirectionsRequest{Destination: "Amber Fort", Mode: "walking"},
			provider: &fakeProvider{},
			contains: "invalid request",
		},
		{
			name:     "unknown destination",
			req:      models.DirectionsRequest{Origin: "Hawa Mahal", Destination: "Atlantis", Mode: "walking"},
			provider: &fakeProvider{},
			contains: "failed to resolve destination",
		},
		{
			name:     "provider error",
			req:      models.DirectionsRequest{Origin: "Hawa Mahal", Destination: "Amber Fort", Mode: "walking"},
			provider: &fakeProvider{err: &interfaces.CollaboratorError{Service: "maps", Op: "directions", StatusCode: 500, Err: errors.New("boom")}},
			contains: "failed to fetch directions",
		},
		{
			name:     "no legs",
			req:      models.DirectionsRequest{Origin: "Hawa Mahal", Destination: "Amber Fort", Mode: "walking"},
			provider: &fakeProvider{resp: &models.DirectionsResponse{Status: "OK"}},
			contains: "NO_ROUTE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestService(tt.provider).Lookup(context.Background(), tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestTransitStep_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		details *models.TransitDetails
		want    string
	}{
		{
			name:    "full name preferred",
			details: &models.TransitDetails{LineName: "Pink Line", LineShortName: "PL", VehicleType: "SUBWAY", DepartureStop: "A", ArrivalStop: "B", DepartureTime: "1 PM", ArrivalTime: "2 PM"},
			want:    "Take SUBWAY Pink Line from A at 1 PM and get off at B at 2 PM",
		},
		{
			name:    "no line or vehicle",
			details: &models.TransitDetails{DepartureStop: "A", ArrivalStop: "B", DepartureTime: "1 PM", ArrivalTime: "2 PM"},
			want:    "Take Transit Unknown Line from A at 1 PM and get off at B at 2 PM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransitStep(tt.details))
		})
	}
}

func TestModeMenus(t *testing.T) {
	assert.Equal(t, "walking", ModeFromChoice("1"))
	assert.Equal(t, "driving", ModeFromChoice(" 2 "))
	assert.Equal(t, "transit", ModeFromChoice("3"))
	assert.Equal(t, "transit", ModeFromChoice("x"))

	assert.Equal(t, "bus", TransitFromChoice("1"))
	assert.Equal(t, "subway", TransitFromChoice("2"))
	assert.Equal(t, "train", TransitFromChoice("3"))
	assert.Equal(t, "bus", TransitFromChoice("9"))
	assert.Empty(t, TransitFromChoice(""))
	assert.Empty(t, TransitFromChoice("  "))
}

func TestInstructionConverter_StripFallback(t *testing.T) {
	assert.Equal(t, "Turn left & continue", stripTags("Turn <b>left</b> &amp; continue"))
	assert.Empty(t, NewInstructionConverter(arbor.NewLogger()).Convert("   "))
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, &models.Route{
		Mode:     "walking",
		Distance: "7 km",
		Duration: "1 hour",
		Steps:    []string{"Walk/Drive: Head **north** (7 km, 1 hour)"},
	}))

	assert.Equal(t, "\n--- Walking ---\nDistance: 7 km, Duration: 1 hour\n\nStep-by-step directions:\n- Walk/Drive: Head **north** (7 km, 1 hour)\n", buf.String())
}
