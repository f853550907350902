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
	Server   ServerConfig
	Timeouts TimeoutConfig
	Provider ProviderConfig
	Search   SearchConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// TimeoutConfig holds timeout settings for itinerary searches.
type TimeoutConfig struct {
	GlobalSearch time.Duration `env:"TIMEOUT_GLOBAL_SEARCH" envDefault:"30s"`
	PerRoute     time.Duration `env:"TIMEOUT_PER_ROUTE" envDefault:"10s"`
}

// ProviderConfig holds flight data provider settings.
type ProviderConfig struct {
	// Name selects the provider implementation registered at startup.
	Name string `env:"PROVIDER_NAME" envDefault:"googleflights"`

	// DataDir is the directory holding per-route feed files.
	DataDir string `env:"PROVIDER_DATA_DIR" envDefault:"./data/routes"`
}

// SearchConfig holds defaults applied to search requests.
type SearchConfig struct {
	DefaultMinLayoverMinutes int `env:"SEARCH_DEFAULT_MIN_LAYOVER_MINUTES" envDefault:"90"`
	DefaultResultLimit       int `env:"SEARCH_DEFAULT_RESULT_LIMIT" envDefault:"10"`
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
	if cfg.Timeouts.GlobalSearch <= 0 {
		return fmt.Errorf("TIMEOUT_GLOBAL_SEARCH must be positive")
	}
	if cfg.Timeouts.PerRoute <= 0 {
		return fmt.Errorf("TIMEOUT_PER_ROUTE must be positive")
	}

	// Every route fetch has to fit inside the overall search budget
	if cfg.Timeouts.PerRoute >= cfg.Timeouts.GlobalSearch {
		return fmt.Errorf("TIMEOUT_PER_ROUTE (%s) should be less than TIMEOUT_GLOBAL_SEARCH (%s)",
			cfg.Timeouts.PerRoute, cfg.Timeouts.GlobalSearch)
	}

	if cfg.Provider.Name == "" {
		return fmt.Errorf("PROVIDER_NAME must not be empty")
	}
	if cfg.Provider.DataDir == "" {
		return fmt.Errorf("PROVIDER_DATA_DIR must not be empty")
	}

	if cfg.Search.DefaultMinLayoverMinutes < 0 {
		return fmt.Errorf("SEARCH_DEFAULT_MIN_LAYOVER_MINUTES must be non-negative")
	}
	if cfg.Search.DefaultResultLimit < 0 {
		return fmt.Errorf("SEARCH_DEFAULT_RESULT_LIMIT must be non-negative")
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

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
