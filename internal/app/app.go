package app

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/smarttravellers/internal/common"
	"github.com/ternarybob/smarttravellers/internal/httpclient"
	"github.com/ternarybob/smarttravellers/internal/interfaces"
	"github.com/ternarybob/smarttravellers/internal/services/chat"
	"github.com/ternarybob/smarttravellers/internal/services/directions"
	"github.com/ternarybob/smarttravellers/internal/services/enrichment"
	"github.com/ternarybob/smarttravellers/internal/services/events"
	"github.com/ternarybob/smarttravellers/internal/services/llm"
	"github.com/ternarybob/smarttravellers/internal/services/maps"
	"github.com/ternarybob/smarttravellers/internal/services/places"
	"github.com/ternarybob/smarttravellers/internal/services/weather"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Event-driven services
	EventService interfaces.EventService

	// Google Maps Platform client shared by discovery and directions
	MapsClient *maps.Client

	// Discovery pipeline
	Catalog       *places.Catalog
	PlacesService *places.Service
	PageFetcher   interfaces.PageFetcher

	// Directions lookup
	DirectionsService *directions.Service

	// Weather and travel assistant
	WeatherService  *weather.Service
	ProviderFactory *llm.ProviderFactory
	Assistant       *chat.Assistant
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	if err := app.initServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	logger.Debug().
		Strs("categories", app.Catalog.Names()).
		Bool("enrichment_enabled", cfg.Enrichment.Enabled).
		Bool("enrichment_javascript", cfg.Enrichment.EnableJavaScript).
		Str("llm_provider", string(cfg.LLM.DefaultProvider)).
		Msg("Application initialized")

	return app, nil
}

func (a *App) initServices() error {
	cfg := a.Config

	// 1. Event service
	a.EventService = events.NewService(a.Logger)
	if err := events.SubscribeLoggerToAllEvents(a.EventService, a.Logger); err != nil {
		return fmt.Errorf("failed to subscribe event logger: %w", err)
	}

	// 2. Maps client
	mapsOpts := []maps.ClientOption{
		maps.WithBaseURL(cfg.Maps.BaseURL),
		maps.WithLogger(a.Logger),
		maps.WithRateLimit(time.Duration(cfg.Maps.RateLimit)),
	}
	if cfg.Maps.RequestTimeout > 0 {
		mapsOpts = append(mapsOpts, maps.WithHTTPClient(httpclient.NewDefaultHTTPClient(time.Duration(cfg.Maps.RequestTimeout))))
	}
	a.MapsClient = maps.NewClient(cfg.Maps.APIKey, mapsOpts...)

	// 3. Discovery pipeline
	catalog, err := places.NewCatalog(cfg.Categories)
	if err != nil {
		return fmt.Errorf("failed to build category catalog: %w", err)
	}
	a.Catalog = catalog

	fetcher := places.NewFetcher(a.MapsClient, a.Logger,
		places.WithPageDelay(time.Duration(cfg.Maps.PageDelay)),
		places.WithMaxPages(cfg.Maps.MaxPages),
		places.WithFetcherEvents(a.EventService),
	)
	normalizer := places.NewNormalizer(a.MapsClient, cfg.Maps.PhotoMaxWidth)

	placesOpts := []places.ServiceOption{places.WithEventService(a.EventService)}
	if cfg.Enrichment.Enabled {
		a.PageFetcher = a.newPageFetcher()
		enricher := enrichment.NewBookingEnricher(a.PageFetcher, a.Logger,
			enrichment.WithBookingBaseURL(cfg.Enrichment.BaseURL),
		)
		placesOpts = append(placesOpts, places.WithEnricher(enricher, cfg.Enrichment.MaxHotels))
	}
	a.PlacesService = places.NewService(a.MapsClient, fetcher, normalizer, catalog, a.Logger, placesOpts...)

	// 4. Directions
	a.DirectionsService = directions.NewService(a.MapsClient, a.MapsClient, a.Logger)

	// 5. Weather
	nominatim := weather.NewNominatim(cfg.Weather.GeocoderURL, cfg.Weather.UserAgent, time.Duration(cfg.Weather.RequestTimeout), a.Logger)
	a.WeatherService = weather.NewService(cfg.Weather.APIKey, nominatim, a.Logger,
		weather.WithBaseURL(cfg.Weather.BaseURL),
		weather.WithTimeout(time.Duration(cfg.Weather.RequestTimeout)),
	)

	// 6. LLM provider and travel assistant
	a.ProviderFactory = llm.NewProviderFactory(&cfg.Gemini, &cfg.Claude, &cfg.LLM, a.Logger)
	a.Assistant = chat.NewAssistant(a.ProviderFactory, a.WeatherService, a.Logger)

	return nil
}

// newPageFetcher selects the enrichment page fetcher from config
func (a *App) newPageFetcher() interfaces.PageFetcher {
	cfg := a.Config.Enrichment
	timeout := time.Duration(cfg.RequestTimeout)
	if cfg.EnableJavaScript {
		wait := time.Duration(cfg.JavaScriptWaitTime)
		a.Logger.Debug().Dur("wait", wait).Msg("Booking pages rendered with chromedp")
		return enrichment.NewChromeFetcher(cfg.UserAgent, wait, timeout, a.Logger)
	}
	return enrichment.NewHTTPFetcher(cfg.UserAgent, timeout, a.Logger)
}

// Close releases application resources
func (a *App) Close() error {
	if a.ProviderFactory != nil {
		if err := a.ProviderFactory.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close LLM providers")
		}
	}

	if a.EventService != nil {
		if err := a.EventService.Close(); err != nil {
			a.Logger.Warn().Err(err).Msg("Failed to close event service")
		}
	}

	a.Logger.Debug().Msg("Application closed")
	return nil
}
