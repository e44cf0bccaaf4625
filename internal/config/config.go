package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the environment driven configuration for the beta API.
type Config struct {
	// Service Configuration
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"beta-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"BETA_API_PORT" envDefault:"8787"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Database (required, no default)
	DatabaseURL string `env:"DATABASE_URL,notEmpty"`

	// Database Connection Pool
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	// Instagram Graph API. The credentials are secrets supplied by the
	// hosting environment; when unset the hashtag endpoints answer 500
	// instead of failing startup.
	InstagramAccessToken string `env:"INSTAGRAM_ACCESS_TOKEN"`
	InstagramUserID      string `env:"INSTAGRAM_USER_ID"`
	GraphAPIBaseURL      string `env:"GRAPH_API_BASE_URL" envDefault:"https://graph.facebook.com/v21.0"`
	OEmbedBaseURL        string `env:"OEMBED_BASE_URL" envDefault:"https://graph.instagram.com"`

	// CORS
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`

	// Hashtag search behaviour
	HashtagCacheTTL    time.Duration `env:"HASHTAG_CACHE_TTL" envDefault:"24h"`
	MediaPageLimit     int           `env:"MEDIA_PAGE_LIMIT" envDefault:"30"`
	RemoteFetchTimeout time.Duration `env:"REMOTE_FETCH_TIMEOUT" envDefault:"10s"`
}

// Load parses environment variables into Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	cfg.InstagramAccessToken = strings.TrimSpace(cfg.InstagramAccessToken)
	cfg.InstagramUserID = strings.TrimSpace(cfg.InstagramUserID)
	cfg.GraphAPIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.GraphAPIBaseURL), "/")
	cfg.OEmbedBaseURL = strings.TrimRight(strings.TrimSpace(cfg.OEmbedBaseURL), "/")
	if strings.TrimSpace(cfg.AllowedOrigin) == "" {
		cfg.AllowedOrigin = "*"
	}
	if cfg.MediaPageLimit <= 0 {
		cfg.MediaPageLimit = 30
	}
	return cfg, nil
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// InstagramConfigured reports whether the Graph API credentials are present.
func (c *Config) InstagramConfigured() bool {
	return c.InstagramAccessToken != "" && c.InstagramUserID != ""
}
