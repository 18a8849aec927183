// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := defaultConfig().Validate(); err != nil {
		t.Fatalf("defaultConfig().Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"zero read timeout", func(c *Config) { c.Server.ReadTimeout = 0 }},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }},
		{"zero default limit", func(c *Config) { c.API.DefaultLimit = 0 }},
		{"default limit above engine cap", func(c *Config) { c.API.DefaultLimit = c.Recommend.MaxResults + 1 }},
		{"zero rate limit", func(c *Config) { c.Security.RateLimitReqs = 0 }},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"invalid engine config", func(c *Config) { c.Recommend.GenreWeight = 0.9 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestValidateAllowsDisabledRateLimit(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil when rate limiting is disabled", err)
	}
}

func TestServerAddr(t *testing.T) {
	sc := ServerConfig{Host: "127.0.0.1", Port: 9090}
	if got := sc.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9090", got)
	}
}

func TestLoadWithKoanfDefaults(t *testing.T) {
	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.API.DefaultLimit != 8 {
		t.Errorf("default limit = %d, want 8", cfg.API.DefaultLimit)
	}
}

func TestLoadWithKoanfEnvOverride(t *testing.T) {
	t.Setenv("HTTP_PORT", "9191")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RECOMMEND_MAX_RESULTS", "25")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("port = %d, want 9191 from env", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug from env", cfg.Logging.Level)
	}
	if cfg.Recommend.MaxResults != 25 {
		t.Errorf("max results = %d, want 25 from env", cfg.Recommend.MaxResults)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "server:\n  port: 9999\napi:\n  default_limit: 12\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port = %d, want 9999 from file", cfg.Server.Port)
	}
	if cfg.API.DefaultLimit != 12 {
		t.Errorf("default limit = %d, want 12 from file", cfg.API.DefaultLimit)
	}
	// Untouched sections keep their defaults.
	if cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("rate limit window = %v, want 1m default", cfg.Security.RateLimitWindow)
	}
}

func TestEnvTransformFuncDropsUnknownKeys(t *testing.T) {
	if got := envTransformFunc("RANDOM_VAR"); got != "" {
		t.Errorf("envTransformFunc(RANDOM_VAR) = %q, want empty", got)
	}
	if got := envTransformFunc("HTTP_PORT"); got != "server.port" {
		t.Errorf("envTransformFunc(HTTP_PORT) = %q, want server.port", got)
	}
}

func TestCORSOriginsFromEnv(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error: %v", err)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != 2 {
		t.Fatalf("cors origins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i, origin := range want {
		if cfg.Security.CORSOrigins[i] != origin {
			t.Errorf("origin[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], origin)
		}
	}
}
