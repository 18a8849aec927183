// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

// Package config defines the application configuration and loads it from
// layered sources: built-in defaults, an optional YAML file, and
// environment variables, with later layers overriding earlier ones.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/AryanPatani/cinemind-ai/internal/recommend"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Catalog   CatalogConfig    `koanf:"catalog"`
	Recommend recommend.Config `koanf:"recommend"`
	API       APIConfig        `koanf:"api"`
	Security  SecurityConfig   `koanf:"security"`
	Logging   LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port"`

	// ReadTimeout and WriteTimeout bound request handling.
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// CatalogConfig holds catalog source settings.
type CatalogConfig struct {
	// Path is an optional JSON catalog file. When empty the built-in seed
	// catalog is used.
	Path string `koanf:"path"`
}

// APIConfig holds API behaviour settings.
type APIConfig struct {
	// DefaultLimit is the result count used when a request omits limit.
	DefaultLimit int `koanf:"default_limit"`

	// MaxSearchResults caps the search endpoint's limit.
	MaxSearchResults int `koanf:"max_search_results"`
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	// RateLimitReqs is the allowed requests per window per client.
	RateLimitReqs int `koanf:"rate_limit_reqs"`

	// RateLimitWindow is the rate limit window.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// RateLimitDisabled turns rate limiting off entirely.
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`

	// CORSOrigins lists the allowed CORS origins.
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate reports the first problem with the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server port %d outside [1,65535]", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("config: server timeouts must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: shutdown timeout must be positive")
	}
	if c.API.DefaultLimit < 1 {
		return fmt.Errorf("config: api default_limit must be positive, got %d", c.API.DefaultLimit)
	}
	if c.API.MaxSearchResults < 1 {
		return fmt.Errorf("config: api max_search_results must be positive, got %d", c.API.MaxSearchResults)
	}
	if c.API.DefaultLimit > c.Recommend.MaxResults {
		return fmt.Errorf("config: api default_limit %d exceeds recommend max_results %d",
			c.API.DefaultLimit, c.Recommend.MaxResults)
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("config: rate_limit_reqs must be positive, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("config: rate_limit_window must be positive")
		}
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console", "":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Logging.Format)
	}
	if err := c.Recommend.Validate(); err != nil {
		return err
	}
	return nil
}

// Addr returns the server's listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
