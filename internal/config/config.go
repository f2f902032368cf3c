package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application.
// Following 12-factor app principles, all config is loaded from
// environment variables.
type Config struct {
	Server          ServerConfig
	Database        DatabaseConfig
	OpenAI          OpenAIConfig
	ClientOriginURL string `envconfig:"CLIENT_ORIGIN_URL"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port            string `envconfig:"PORT" default:"5000"`
	Host            string `envconfig:"HOST" default:"0.0.0.0"`
	ReadTimeout     int    `envconfig:"READ_TIMEOUT" default:"15"`
	WriteTimeout    int    `envconfig:"WRITE_TIMEOUT" default:"15"`
	ShutdownTimeout int    `envconfig:"SHUTDOWN_TIMEOUT" default:"30"`
}

type DatabaseConfig struct {
	// Driver selects the backing store: sqlite for development,
	// postgres for production.
	Driver string `envconfig:"DB_DRIVER" default:"sqlite"`
	Path   string `envconfig:"DB_PATH" default:"shopping-list.sqlite"`
	URL    string `envconfig:"DATABASE_URL"`
}

type OpenAIConfig struct {
	APIKey         string `envconfig:"OPENAI_API_KEY"`
	BaseURL        string `envconfig:"OPENAI_BASE_URL" default:"https://api.openai.com/v1"`
	Model          string `envconfig:"OPENAI_MODEL" default:"gpt-3.5-turbo"`
	TimeoutSeconds int    `envconfig:"OPENAI_TIMEOUT" default:"30"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER: %s (must be sqlite or postgres)", c.Database.Driver)
	}

	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}
