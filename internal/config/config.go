// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Amadeus AmadeusConfig
	Trip    TripConfig
	Cache   CacheConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"120s"`
}

// AmadeusConfig holds credentials and endpoints for the Amadeus flight API.
type AmadeusConfig struct {
	APIKey    string        `env:"AMADEUS_API_KEY"`
	APISecret string        `env:"AMADEUS_API_SECRET"`
	BaseURL   string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	Timeout   time.Duration `env:"AMADEUS_TIMEOUT" envDefault:"15s"`
}

// TripConfig holds tuning knobs for the trip-duration planner.
type TripConfig struct {
	// DayBudget is how many successive departure dates the planner tries
	// before giving up.
	DayBudget int `env:"TRIP_DAY_BUDGET" envDefault:"30"`

	// WindowRadiusDays is the return-date tolerance around the target
	// return date, in calendar days on each side.
	WindowRadiusDays int `env:"TRIP_WINDOW_RADIUS_DAYS" envDefault:"2"`

	// NonstopPenaltyHours is the ranking penalty applied to non-nonstop
	// trips when nonstop is preferred.
	NonstopPenaltyHours float64 `env:"TRIP_NONSTOP_PENALTY_HOURS" envDefault:"2.0"`

	// MaxResults is the page size of the caller-visible result list.
	MaxResults int `env:"TRIP_MAX_RESULTS" envDefault:"20"`
}

// CacheConfig holds response cache settings.
type CacheConfig struct {
	TTL time.Duration `env:"CACHE_TTL" envDefault:"1h"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Amadeus.Timeout <= 0 {
		return fmt.Errorf("AMADEUS_TIMEOUT must be positive")
	}

	if cfg.Trip.DayBudget < 1 {
		return fmt.Errorf("TRIP_DAY_BUDGET must be at least 1, got %d", cfg.Trip.DayBudget)
	}
	if cfg.Trip.WindowRadiusDays < 0 {
		return fmt.Errorf("TRIP_WINDOW_RADIUS_DAYS must be non-negative, got %d", cfg.Trip.WindowRadiusDays)
	}
	if cfg.Trip.NonstopPenaltyHours < 0 {
		return fmt.Errorf("TRIP_NONSTOP_PENALTY_HOURS must be non-negative, got %v", cfg.Trip.NonstopPenaltyHours)
	}
	if cfg.Trip.MaxResults < 1 {
		return fmt.Errorf("TRIP_MAX_RESULTS must be at least 1, got %d", cfg.Trip.MaxResults)
	}

	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// AmadeusConfigured reports whether Amadeus API credentials are present.
func (c *Config) AmadeusConfigured() bool {
	return c.Amadeus.APIKey != "" && c.Amadeus.APISecret != ""
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
