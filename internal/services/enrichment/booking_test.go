package enrichment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

const searchPage = `<html><body>
<div data-testid="property-card-container">
  <a data-testid="property-card-desktop-single-image" href="/hotel/in/rambagh.html?aid=123&label=x">img</a>
  <div data-testid="title">Rambagh Palace</div>
</div>
<div data-testid="property-card-container">
  <a data-testid="property-card-desktop-single-image" href="/hotel/in/other.html">img</a>
  <div data-testid="title">Other Hotel</div>
</div>
</body></html>`

const hotelPageLegacy = `<html><body>
<h2 id="hp_hotel_name">  Rambagh   Palace Jaipur </h2>
<table class="hprt-table">
  <tr><th>Room</th><th>Price</th></tr>
  <tr>
    <td><a class="hprt-roomtype-icon-link">Deluxe Room</a></td>
    <td><span class="bui-price-display__value">₹ 1,850</span></td>
  </tr>
  <tr>
    <td><a class="hprt-roomtype-icon-link">Palace Suite</a></td>
    <td><span class="bui-price-display__value">₹ 12,400</span></td>
  </tr>
</table>
</body></html>`

const hotelPageModern = `<html><body>
<div data-testid="room-row">
  <span data-testid="room-name">Standard Double</span>
  <span data-testid="price-and-discounted-price">₹ 3,200</span>
</div>
<div data-testid="room-row">
  <span data-testid="room-name">Family Room</span>
  <span data-testid="price-and-discounted-price">Sold out</span>
</div>
</body></html>`

func newBookingServer(t *testing.T, hotelPage string) (*httptest.Server, *[]string) {
	t.Helper()
	var requested []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.RequestURI())
		switch {
		case r.URL.Path == "/searchresults.html":
			_, _ = w.Write([]byte(searchPage))
		case strings.HasPrefix(r.URL.Path, "/hotel/"):
			_, _ = w.Write([]byte(hotelPage))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server, &requested
}

func newTestEnricher(baseURL string) *BookingEnricher {
	logger := arbor.NewLogger()
	fetcher := NewHTTPFetcher("test-agent", 5*time.Second, logger)
	return NewBookingEnricher(fetcher, logger, WithBookingBaseURL(baseURL))
}

func TestBookingEnricher_SearchURLEncodesSpaces(t *testing.T) {
	e := NewBookingEnricher(nil, arbor.NewLogger())
	assert.Equal(t, "https://www.booking.com/searchresults.html?ss=Rambagh%20Palace%20Jaipur", e.SearchURL("Rambagh Palace", "Jaipur"))
}

func TestBookingEnricher_LegacyLayout(t *testing.T) {
	server, requested := newBookingServer(t, hotelPageLegacy)
	e := newTestEnricher(server.URL + "/")

	pricing, ok := e.Enrich(context.Background(), "Rambagh Palace", "Jaipur")
	require.True(t, ok)
	require.NotNil(t, pricing)

	assert.Equal(t, "Rambagh Palace Jaipur", pricing.HotelName)
	assert.Equal(t, server.URL+"/hotel/in/rambagh.html", pricing.HotelURL)
	require.Len(t, pricing.Rooms, 2)
	assert.Equal(t, "Deluxe Room", pricing.Rooms[0].RoomType)
	assert.Equal(t, "₹ 1,850", pricing.Rooms[0].PriceText)
	require.NotNil(t, pricing.Rooms[0].PriceValue)
	assert.Equal(t, 1850, *pricing.Rooms[0].PriceValue)
	assert.Equal(t, 12400, *pricing.Rooms[1].PriceValue)

	require.Len(t, *requested, 2)
	assert.Equal(t, "/searchresults.html?ss=Rambagh%20Palace%20Jaipur", (*requested)[0])
	assert.Equal(t, "/hotel/in/rambagh.html", (*requested)[1])
}

func TestBookingEnricher_ModernLayoutFallsBackToCardName(t *testing.T) {
	server, _ := newBookingServer(t, hotelPageModern)
	e := newTestEnricher(server.URL)

	pricing, ok := e.Enrich(context.Background(), "Rambagh Palace", "Jaipur")
	require.True(t, ok)

	assert.Equal(t, "Rambagh Palace", pricing.HotelName)
	require.Len(t, pricing.Rooms, 2)
	assert.Equal(t, "Standard Double", pricing.Rooms[0].RoomType)
	assert.Equal(t, 3200, *pricing.Rooms[0].PriceValue)
	assert.Nil(t, pricing.Rooms[1].PriceValue)
}

func TestBookingEnricher_Unavailable(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "no search results",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html><body><p>No properties found</p></body></html>`))
			},
		},
		{
			name: "no rooms on hotel page",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/searchresults.html" {
					_, _ = w.Write([]byte(searchPage))
					return
				}
				_, _ = w.Write([]byte(`<html><body><h2>Rambagh Palace</h2></body></html>`))
			},
		},
		{
			name: "blocked",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			pricing, ok := newTestEnricher(server.URL).Enrich(context.Background(), "Rambagh Palace", "Jaipur")
			assert.False(t, ok)
			assert.Nil(t, pricing)
		})
	}
}

func TestBookingEnricher_AbsoluteLinksKept(t *testing.T) {
	e := NewBookingEnricher(nil, arbor.NewLogger())
	assert.Equal(t, "https://cdn.example/hotel.html", e.absolute("https://cdn.example/hotel.html"))
	assert.Equal(t, "https://www.booking.com/hotel/in/x.html", e.absolute("hotel/in/x.html"))
}
