package common

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Logging    LoggingConfig             `toml:"logging"`
	Maps       MapsConfig                `toml:"maps"`
	Categories map[string]CategoryConfig `toml:"categories"` // Per-category overrides keyed by category name
	Enrichment EnrichmentConfig          `toml:"enrichment"`
	Weather    WeatherConfig             `toml:"weather"`
	Gemini     GeminiConfig              `toml:"gemini"`
	Claude     ClaudeConfig              `toml:"claude"`
	LLM        LLMConfig                 `toml:"llm"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`  // "debug", "info", "warn", "error"
	Output []string `toml:"output"` // "stdout", "file"
}

// MapsConfig contains Google Maps Platform configuration
type MapsConfig struct {
	APIKey         string   `toml:"api_key"`         // Google Maps Platform API key
	BaseURL        string   `toml:"base_url"`        // API root, e.g. https://maps.googleapis.com/maps/api
	RateLimit      Duration `toml:"rate_limit"`      // Minimum time between API requests (0 = unlimited)
	RequestTimeout Duration `toml:"request_timeout"` // HTTP request timeout
	PageDelay      Duration `toml:"page_delay"`      // Wait before requesting a continuation page
	MaxPages       int      `toml:"max_pages"`       // Page cap per type tag
	PhotoMaxWidth  int      `toml:"photo_max_width"` // maxwidth parameter for photo URLs
}

// CategoryConfig overrides category defaults. Unset fields keep the built-in values.
type CategoryConfig struct {
	Types      []string `toml:"types"`
	Keyword    *string  `toml:"keyword"`
	Radius     int      `toml:"radius"`
	MinRating  *float64 `toml:"min_rating"`
	MinReviews *int     `toml:"min_reviews"`
	TopN       int      `toml:"top_n"`
}

// EnrichmentConfig contains Booking.com price enrichment configuration
type EnrichmentConfig struct {
	Enabled            bool     `toml:"enabled"`
	BaseURL            string   `toml:"base_url"`
	MaxHotels          int      `toml:"max_hotels"`           // Number of ranked hotels to enrich
	UserAgent          string   `toml:"user_agent"`           // User agent sent with page requests
	RequestTimeout     Duration `toml:"request_timeout"`      // HTTP request timeout
	EnableJavaScript   bool     `toml:"enable_javascript"`    // Render pages with chromedp instead of plain HTTP
	JavaScriptWaitTime Duration `toml:"javascript_wait_time"` // Time to wait for JavaScript to render
}

// WeatherConfig contains OpenWeather and Nominatim configuration
type WeatherConfig struct {
	APIKey         string   `toml:"api_key"`         // OpenWeather API key
	BaseURL        string   `toml:"base_url"`        // OpenWeather API root
	GeocoderURL    string   `toml:"geocoder_url"`    // Nominatim root
	UserAgent      string   `toml:"user_agent"`      // Required by Nominatim usage policy
	RequestTimeout Duration `toml:"request_timeout"` // HTTP request timeout
}

// GeminiConfig contains Google Gemini API configuration
type GeminiConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Timeout     string  `toml:"timeout"`     // Operation timeout as duration string (default: "2m")
	Temperature float32 `toml:"temperature"` // Chat completion temperature (default: 0.7)
}

// ClaudeConfig contains Anthropic Claude API configuration
type ClaudeConfig struct {
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	MaxTokens   int     `toml:"max_tokens"`
	Timeout     string  `toml:"timeout"`
	Temperature float32 `toml:"temperature"`
}

// LLMProvider represents the AI provider type
type LLMProvider string

const (
	// LLMProviderGemini uses Google Gemini API
	LLMProviderGemini LLMProvider = "gemini"
	// LLMProviderClaude uses Anthropic Claude API
	LLMProviderClaude LLMProvider = "claude"
)

// LLMConfig selects the provider used by the travel assistant
type LLMConfig struct {
	DefaultProvider LLMProvider `toml:"default_provider"` // "gemini" or "claude" (default: "gemini")
	Model           string      `toml:"model"`            // Optional; a "claude-" or "gemini-" prefix selects the provider
}

// NewDefaultConfig creates a configuration with default values
func NewDefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
		Maps: MapsConfig{
			BaseURL:        "https://maps.googleapis.com/maps/api",
			RateLimit:      0,
			RequestTimeout: Duration(30 * time.Second),
			PageDelay:      Duration(2 * time.Second), // next_page_token becomes valid after a short delay
			MaxPages:       5,
			PhotoMaxWidth:  400,
		},
		Categories: map[string]CategoryConfig{},
		Enrichment: EnrichmentConfig{
			Enabled:            true,
			BaseURL:            "https://www.booking.com",
			MaxHotels:          5,
			UserAgent:          "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			RequestTimeout:     Duration(20 * time.Second),
			EnableJavaScript:   false,
			JavaScriptWaitTime: Duration(3 * time.Second),
		},
		Weather: WeatherConfig{
			BaseURL:        "https://api.openweathermap.org",
			GeocoderURL:    "https://nominatim.openstreetmap.org",
			UserAgent:      "smart-travellers",
			RequestTimeout: Duration(15 * time.Second),
		},
		Gemini: GeminiConfig{
			Model:       "gemini-2.0-flash",
			Timeout:     "2m",
			Temperature: 0.7,
		},
		Claude: ClaudeConfig{
			Model:       "claude-3-5-haiku-20241022",
			MaxTokens:   2048,
			Timeout:     "2m",
			Temperature: 0.7,
		},
		LLM: LLMConfig{
			DefaultProvider: LLMProviderGemini,
		},
	}
}

// LoadFromFiles loads configuration with priority: default -> file1 -> file2 -> ... -> env
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadDotEnv loads KEY=value files into the process environment.
// Variables already present in the environment are left untouched; missing files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	// Logging configuration
	if level := os.Getenv("SMARTTRAVELLERS_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if output := os.Getenv("SMARTTRAVELLERS_LOG_OUTPUT"); output != "" {
		var outputs []string
		for _, o := range strings.Split(output, ",") {
			if o = strings.TrimSpace(o); o != "" {
				outputs = append(outputs, o)
			}
		}
		if len(outputs) > 0 {
			config.Logging.Output = outputs
		}
	}

	// Maps configuration (SMARTTRAVELLERS_ prefix takes priority)
	if apiKey := os.Getenv("GOOGLE_API_KEY"); apiKey != "" {
		config.Maps.APIKey = apiKey
	}
	if apiKey := os.Getenv("SMARTTRAVELLERS_MAPS_API_KEY"); apiKey != "" {
		config.Maps.APIKey = apiKey
	}
	if baseURL := os.Getenv("SMARTTRAVELLERS_MAPS_BASE_URL"); baseURL != "" {
		config.Maps.BaseURL = baseURL
	}
	if pageDelay := os.Getenv("SMARTTRAVELLERS_MAPS_PAGE_DELAY"); pageDelay != "" {
		if d, err := time.ParseDuration(pageDelay); err == nil {
			config.Maps.PageDelay = Duration(d)
		}
	}
	if maxPages := os.Getenv("SMARTTRAVELLERS_MAPS_MAX_PAGES"); maxPages != "" {
		if mp, err := strconv.Atoi(maxPages); err == nil {
			config.Maps.MaxPages = mp
		}
	}

	// Enrichment configuration
	if enabled := os.Getenv("SMARTTRAVELLERS_ENRICHMENT_ENABLED"); enabled != "" {
		if e, err := strconv.ParseBool(enabled); err == nil {
			config.Enrichment.Enabled = e
		}
	}
	if js := os.Getenv("SMARTTRAVELLERS_ENRICHMENT_ENABLE_JAVASCRIPT"); js != "" {
		if e, err := strconv.ParseBool(js); err == nil {
			config.Enrichment.EnableJavaScript = e
		}
	}

	// Weather configuration
	if apiKey := os.Getenv("OPENWEATHER_API_KEY"); apiKey != "" {
		config.Weather.APIKey = apiKey
	}

	// Gemini configuration
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if apiKey := os.Getenv("SMARTTRAVELLERS_GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if model := os.Getenv("SMARTTRAVELLERS_GEMINI_MODEL"); model != "" {
		config.Gemini.Model = model
	}
	if temperature := os.Getenv("SMARTTRAVELLERS_GEMINI_TEMPERATURE"); temperature != "" {
		if t, err := strconv.ParseFloat(temperature, 32); err == nil {
			config.Gemini.Temperature = float32(t)
		}
	}

	// Claude configuration
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		config.Claude.APIKey = apiKey
	}
	if apiKey := os.Getenv("SMARTTRAVELLERS_CLAUDE_API_KEY"); apiKey != "" {
		config.Claude.APIKey = apiKey
	}
	if model := os.Getenv("SMARTTRAVELLERS_CLAUDE_MODEL"); model != "" {
		config.Claude.Model = model
	}
	if maxTokens := os.Getenv("SMARTTRAVELLERS_CLAUDE_MAX_TOKENS"); maxTokens != "" {
		if mt, err := strconv.Atoi(maxTokens); err == nil {
			config.Claude.MaxTokens = mt
		}
	}

	// LLM provider configuration
	if provider := os.Getenv("SMARTTRAVELLERS_LLM_DEFAULT_PROVIDER"); provider != "" {
		config.LLM.DefaultProvider = LLMProvider(provider)
	}
	if model := os.Getenv("SMARTTRAVELLERS_LLM_MODEL"); model != "" {
		config.LLM.Model = model
	}
}

// HasOutput reports whether the named log output is enabled
func (c LoggingConfig) HasOutput(name string) bool {
	for _, output := range c.Output {
		if output == name || (name == "stdout" && output == "console") {
			return true
		}
	}
	return false
}
