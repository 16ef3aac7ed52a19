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

// Storage drivers.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Catalog CatalogConfig
	Session SessionConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// StorageConfig selects where tickets and sold seats are persisted.
type StorageConfig struct {
	// Driver is one of memory, file, sqlite
	Driver string `env:"STORAGE_DRIVER" envDefault:"file"`

	// Path is the directory for the file driver or the database file for sqlite
	Path string `env:"STORAGE_PATH" envDefault:"data"`

	// SaveAttempts is the number of tries per durable write
	SaveAttempts int `env:"STORAGE_SAVE_ATTEMPTS" envDefault:"3"`
}

// CatalogConfig points at an optional replacement catalog file.
type CatalogConfig struct {
	// Path is empty for the embedded catalog
	Path string `env:"CATALOG_PATH"`
}

// SessionConfig holds booking session settings.
type SessionConfig struct {
	// TTL evicts sessions idle for longer; zero keeps them forever
	TTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`
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

	validDrivers := map[string]bool{StorageMemory: true, StorageFile: true, StorageSQLite: true}
	if !validDrivers[cfg.Storage.Driver] {
		return fmt.Errorf("STORAGE_DRIVER must be one of: memory, file, sqlite; got %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Driver != StorageMemory && cfg.Storage.Path == "" {
		return fmt.Errorf("STORAGE_PATH is required for the %s driver", cfg.Storage.Driver)
	}
	if cfg.Storage.SaveAttempts < 1 {
		return fmt.Errorf("STORAGE_SAVE_ATTEMPTS must be at least 1, got %d", cfg.Storage.SaveAttempts)
	}

	if cfg.Session.TTL < 0 {
		return fmt.Errorf("SESSION_TTL must not be negative")
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
