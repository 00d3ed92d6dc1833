// Package config handles application configuration from environment variables
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const appName = "addic7ed-downloader"

// Config represents the application configuration
type Config struct {
	BaseURL          string        `env:"ADDIC7ED_BASE_URL" envDefault:"https://www.addic7ed.com/"`
	Languages        []string      `env:"ADDIC7ED_LANGUAGES" envSeparator:","`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"warn"`
	DatabasePath     string        `env:"DATABASE_PATH"`
	HistoryRetention time.Duration `env:"HISTORY_RETENTION" envDefault:"1440h"`
	HTTPTimeout      time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	UserAgent        string        `env:"USER_AGENT" envDefault:"addic7ed-downloader"`
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = DefaultDatabasePath()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// DefaultDatabasePath places the history database in the user cache
// directory, or in the working directory when there is none
func DefaultDatabasePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return appName + ".db"
	}
	return filepath.Join(dir, appName, "history.db")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	logLevel := strings.ToLower(c.LogLevel)
	isValidLevel := false
	for _, level := range validLogLevels {
		if logLevel == level {
			isValidLevel = true
			break
		}
	}
	if !isValidLevel {
		return fmt.Errorf("invalid log level %q, must be one of: %v", c.LogLevel, validLogLevels)
	}

	base, err := url.Parse(c.BaseURL)
	if err != nil || !base.IsAbs() || base.Host == "" {
		return fmt.Errorf("ADDIC7ED_BASE_URL must be an absolute URL, got: %q", c.BaseURL)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return fmt.Errorf("ADDIC7ED_BASE_URL must use http or https, got: %s", base.Scheme)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got: %s", c.HTTPTimeout)
	}

	if c.HistoryRetention < 0 {
		return fmt.Errorf("HISTORY_RETENTION cannot be negative, got: %s", c.HistoryRetention)
	}

	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH cannot be empty")
	}

	// Drop blanks left by stray separators
	languages := c.Languages[:0]
	for _, language := range c.Languages {
		if language = strings.TrimSpace(language); language != "" {
			languages = append(languages, language)
		}
	}
	c.Languages = languages

	return nil
}
