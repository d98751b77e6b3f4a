// Package enrichment attaches best-effort room prices to lodging results by
// scraping a booking site. Nothing in here may fail the surrounding listing.
package enrichment

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/models"
)

// DefaultBookingBaseURL is the booking site root
const DefaultBookingBaseURL = "https://www.booking.com"

// Page selectors. The site serves two layouts; each list is tried in order.
var (
	searchResultSelectors = []string{
		"div[data-testid='property-card-container'] a[data-testid='property-card-desktop-single-image']",
		"a[data-testid='title-link']",
	}
	cardTitleSelector = "div[data-testid='title']"
	cardSelector      = "div[data-testid='property-card-container']"
	hotelNameSelector = []string{"h2#hp_hotel_name", "h2"}
	roomRowSelectors  = []string{"table.hprt-table tr", "div[data-testid='room-row']"}
	roomTypeSelectors = []string{".hprt-roomtype-icon-link", "span[data-testid='room-name']"}
	priceSelectors    = []string{".bui-price-display__value", "span[data-testid='price-and-discounted-price']"}
)

// BookingEnricher implements PriceEnricher against Booking.com pages
type BookingEnricher struct {
	fetcher interfaces.PageFetcher
	baseURL string
	logger  arbor.ILogger
}

var _ interfaces.PriceEnricher = (*BookingEnricher)(nil)

// BookingOption configures the BookingEnricher.
type BookingOption func(*BookingEnricher)

// WithBookingBaseURL sets a custom site root.
func WithBookingBaseURL(baseURL string) BookingOption {
	return func(e *BookingEnricher) {
		if baseURL != "" {
			e.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// NewBookingEnricher creates a Booking.com price enricher
func NewBookingEnricher(fetcher interfaces.PageFetcher, logger arbor.ILogger, opts ...BookingOption) *BookingEnricher {
	e := &BookingEnricher{
		fetcher: fetcher,
		baseURL: DefaultBookingBaseURL,
		logger:  logger,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Enrich looks up room prices for a hotel. Any failure returns (nil, false).
func (e *BookingEnricher) Enrich(ctx context.Context, hotelName, city string) (*models.HotelPricing, bool) {
	pricing, err := e.lookup(ctx, hotelName, city)
	if err != nil {
		if errors.Is(err, interfaces.ErrEnrichmentUnavailable) {
			e.logger.Debug().
				Str("hotel", hotelName).
				Str("city", city).
				Err(err).
				Msg("No booking data for hotel")
		} else {
			e.logger.Warn().
				Str("hotel", hotelName).
				Str("city", city).
				Err(err).
				Msg("Booking lookup failed, continuing without prices")
		}
		return nil, false
	}

	e.logger.Debug().
		Str("hotel", pricing.HotelName).
		Int("rooms", len(pricing.Rooms)).
		Msg("Booking data attached")

	return pricing, true
}

// SearchURL builds the site search URL for a hotel in a city
func (e *BookingEnricher) SearchURL(hotelName, city string) string {
	query := strings.TrimSpace(hotelName + " " + city)
	return fmt.Sprintf("%s/searchresults.html?ss=%s", e.baseURL, strings.ReplaceAll(url.QueryEscape(query), "+", "%20"))
}

func (e *BookingEnricher) lookup(ctx context.Context, hotelName, city string) (*models.HotelPricing, error) {
	searchHTML, err := e.fetcher.Fetch(ctx, e.SearchURL(hotelName, city))
	if err != nil {
		return nil, fmt.Errorf("search page: %w", err)
	}

	hotelURL, cardName, err := e.firstResult(searchHTML)
	if err != nil {
		return nil, err
	}

	hotelHTML, err := e.fetcher.Fetch(ctx, hotelURL)
	if err != nil {
		return nil, fmt.Errorf("hotel page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(hotelHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse hotel page: %w", err)
	}

	name := firstText(doc.Selection, hotelNameSelector)
	if name == "" {
		name = cardName
	}
	if name == "" {
		name = hotelName
	}

	rooms := parseRooms(doc)
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: no rooms on %s", interfaces.ErrEnrichmentUnavailable, hotelURL)
	}

	return &models.HotelPricing{
		HotelName: name,
		HotelURL:  hotelURL,
		Rooms:     rooms,
	}, nil
}

// firstResult returns the absolute URL (query string removed) and card title of the top search hit
func (e *BookingEnricher) firstResult(searchHTML string) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(searchHTML))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse search page: %w", err)
	}

	for _, selector := range searchResultSelectors {
		link := doc.Find(selector).First()
		if link.Length() == 0 {
			continue
		}

		href, ok := link.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			continue
		}
		href = strings.SplitN(strings.TrimSpace(href), "?", 2)[0]

		title := cleanText(link.Find(cardTitleSelector).First().Text())
		if title == "" {
			title = cleanText(link.Closest(cardSelector).Find(cardTitleSelector).First().Text())
		}

		return e.absolute(href), title, nil
	}

	return "", "", fmt.Errorf("%w: no search results", interfaces.ErrEnrichmentUnavailable)
}

func (e *BookingEnricher) absolute(href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return e.baseURL + href
}

func parseRooms(doc *goquery.Document) []models.RoomOffer {
	var rows *goquery.Selection
	for _, selector := range roomRowSelectors {
		rows = doc.Find(selector)
		if rows.Length() > 0 {
			break
		}
	}

	var rooms []models.RoomOffer
	rows.Each(func(_ int, row *goquery.Selection) {
		roomType := firstText(row, roomTypeSelectors)
		priceText := firstText(row, priceSelectors)
		if roomType == "" || priceText == "" {
			return
		}
		rooms = append(rooms, models.RoomOffer{
			RoomType:   roomType,
			PriceText:  priceText,
			PriceValue: ParsePrice(priceText),
		})
	})

	return rooms
}

// firstText returns the text of the first selector that matches under s
func firstText(s *goquery.Selection, selectors []string) string {
	for _, selector := range selectors {
		match := s.Find(selector).First()
		if match.Length() == 0 {
			continue
		}
		if text := cleanText(match.Text()); text != "" {
			return text
		}
	}
	return ""
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
