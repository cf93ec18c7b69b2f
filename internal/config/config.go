// Package config handles application configuration and environment loading.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// SessionTTL is the fixed lifetime of a signed-in session.
	SessionTTL = 24 * time.Hour

	insecureDevSecret = "dev-session-secret-change-in-production"
	minSecretLength   = 32
)

// InventoryConfig holds settings for the outbound inventory endpoint.
type InventoryConfig struct {
	BaseURL   string        `env:"INVENTORY_BASE_URL" yaml:"base_url"`
	AppID     int           `env:"INVENTORY_APP_ID" yaml:"app_id"`
	ContextID int           `env:"INVENTORY_CONTEXT_ID" yaml:"context_id"`
	Count     int           `env:"INVENTORY_COUNT" yaml:"count"`
	Timeout   time.Duration `env:"INVENTORY_TIMEOUT" yaml:"timeout"`
}

// Config is built once at startup and passed to the components that need it.
type Config struct {
	SessionSecret string `env:"SESSION_SECRET" yaml:"session_secret"`
	// AppURL is the deployment base URL, also used as the OpenID realm.
	AppURL      string `env:"APP_URL" yaml:"app_url"`
	SteamAPIKey string `env:"STEAM_API_KEY" yaml:"steam_api_key"`
	// Env is "development" (default) or "production".
	Env      string `env:"ENV" yaml:"env"`
	Port     int    `env:"PORT" yaml:"port"`
	LogLevel string `env:"LOG_LEVEL" yaml:"log_level"`

	Inventory InventoryConfig `yaml:"inventory"`

	// Rate limiting
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" yaml:"rate_limit_rps"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" yaml:"rate_limit_burst"`

	MetricsEnabled *bool `env:"METRICS_ENABLED" yaml:"metrics_enabled"`

	// OTelEndpoint is the OTLP/HTTP trace collector URL. Tracing is off when empty.
	OTelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" yaml:"otel_endpoint"`

	// Warnings collects non-fatal warnings generated during config loading.
	// These are logged by the caller after the logger is initialised.
	Warnings []string `yaml:"-"`
}

// Overrides are command-line values applied after the file and environment.
// Zero values leave the loaded setting untouched.
type Overrides struct {
	Port     int
	Env      string
	LogLevel string
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction returns true when the server is running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// IsDevelopment returns true when verbose logging and debug panels are on.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// ListenAddr is the HTTP listen address derived from Port.
func (c *Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}

// CallbackURL is where the identity provider returns the browser.
func (c *Config) CallbackURL() string {
	return c.AppURL + "/auth/steam/return"
}

// MetricsOn reports whether /metrics is mounted.
func (c *Config) MetricsOn() bool {
	return c.MetricsEnabled == nil || *c.MetricsEnabled
}

// LoadDotEnv reads a .env file and sets any variables not already in the
// environment. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load builds the configuration from an optional YAML file, then the
// environment, then the overrides, and finally fills defaults and validates.
func Load(path string, o Overrides) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if o.Port != 0 {
		cfg.Port = o.Port
	}
	if o.Env != "" {
		cfg.Env = o.Env
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if err := cfg.finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path) //nolint:gosec // path is operator-controlled
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	return nil
}

func (c *Config) finalize() error {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	if c.Env == "" {
		c.Env = "development"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
		if c.IsDevelopment() {
			c.LogLevel = "debug"
		}
	}
	if c.Port == 0 {
		c.Port = 3000
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}

	c.AppURL = strings.TrimRight(strings.TrimSpace(c.AppURL), "/")
	if c.AppURL == "" {
		c.AppURL = "http://localhost:" + strconv.Itoa(c.Port)
	}
	u, err := url.Parse(c.AppURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("APP_URL must be an absolute URL, got %q", c.AppURL)
	}

	// Inventory defaults
	c.Inventory.BaseURL = strings.TrimRight(c.Inventory.BaseURL, "/")
	if c.Inventory.BaseURL == "" {
		c.Inventory.BaseURL = "https://steamcommunity.com/inventory"
	}
	if c.Inventory.AppID == 0 {
		c.Inventory.AppID = 730
	}
	if c.Inventory.ContextID == 0 {
		c.Inventory.ContextID = 2
	}
	if c.Inventory.Count == 0 {
		c.Inventory.Count = 2000
	}
	if c.Inventory.Timeout == 0 {
		c.Inventory.Timeout = 10 * time.Second
	}

	if c.RateLimitRPS == 0 {
		c.RateLimitRPS = 100
	}
	if c.RateLimitBurst == 0 {
		c.RateLimitBurst = 200
	}

	// Production mode: insecure defaults are fatal errors.
	if c.IsProduction() {
		if len(c.SessionSecret) < minSecretLength {
			return fmt.Errorf("SESSION_SECRET must be at least %d bytes in production", minSecretLength)
		}
		if c.SteamAPIKey == "" {
			return fmt.Errorf("STEAM_API_KEY must be set in production")
		}
		return nil
	}
	if c.SessionSecret == "" {
		c.SessionSecret = insecureDevSecret
		c.Warnings = append(c.Warnings, "SESSION_SECRET not set, using insecure default. Set SESSION_SECRET in production!")
	}
	if c.SteamAPIKey == "" {
		c.Warnings = append(c.Warnings, "STEAM_API_KEY not set, Steam sign-in will fail to load profiles")
	}
	return nil
}
