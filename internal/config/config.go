// Package config provides configuration management for the application.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cineflow/catalogd/internal/constants"
	"github.com/cineflow/catalogd/internal/errors"
)

const defaultConfigFile = "config.json"

// Config holds the application configuration.
// It supports loading from environment variables and JSON files.
type Config struct {
	// Upstream catalog API
	APIBaseURL   string `json:"API_BASE_URL"`
	ImageBaseURL string `json:"IMAGE_BASE_URL"`

	// HTTP server
	Port string `json:"PORT"`

	// Listing behavior
	PageSize         int `json:"PAGE_SIZE"`
	SearchDebounceMs int `json:"SEARCH_DEBOUNCE_MS"`

	// Storage settings
	DatabasePath string        `json:"DATABASE_PATH"`
	CacheSize    int           `json:"CACHE_SIZE"`
	CacheTTL     time.Duration `json:"CACHE_TTL"`

	// Logging
	LogLevel string `json:"LOG_LEVEL"`
}

// Load reads configuration from environment variables and an optional JSON
// file. Environment variables take precedence over file values. Returns an
// error if the configuration is invalid.
func Load() (*Config, error) {
	cfg := &Config{
		APIBaseURL:       constants.DefaultAPIBaseURL,
		Port:             constants.DefaultPort,
		PageSize:         constants.DefaultPageSize,
		SearchDebounceMs: constants.DefaultSearchDebounceMs,
		CacheSize:        constants.DefaultCacheSize,
		CacheTTL:         time.Duration(constants.DefaultCacheTTL) * time.Hour,
		LogLevel:         constants.DefaultLogLevel,
	}

	configFile := getEnvOrDefault("CONFIG_FILE", defaultConfigFile)
	if err := cfg.loadFromFile(configFile); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFromEnv() {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("IMAGE_BASE_URL"); v != "" {
		c.ImageBaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PageSize = n
		}
	}
	if v := os.Getenv("CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.CacheSize = n
		}
	}
}

func (c *Config) loadFromFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, c)
}

// Validate checks the configuration and fills derived defaults: the image
// base URL defaults to the API host's uploads path.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return errors.NewConfigurationError("API base URL must not be empty", nil)
	}
	if _, err := url.Parse(c.APIBaseURL); err != nil {
		return errors.NewConfigurationError("API base URL is not a valid URL", err)
	}
	c.APIBaseURL = strings.TrimSuffix(c.APIBaseURL, "/")

	if c.ImageBaseURL == "" {
		c.ImageBaseURL = c.APIBaseURL + constants.UploadsPath
	}

	if c.PageSize <= 0 {
		c.PageSize = constants.DefaultPageSize
	}
	if c.SearchDebounceMs <= 0 {
		c.SearchDebounceMs = constants.DefaultSearchDebounceMs
	}
	if c.CacheSize <= 0 {
		c.CacheSize = constants.DefaultCacheSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = time.Duration(constants.DefaultCacheTTL) * time.Hour
	}

	return nil
}

// SearchDebounce returns the search quiet period as a duration.
func (c *Config) SearchDebounce() time.Duration {
	return time.Duration(c.SearchDebounceMs) * time.Millisecond
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
