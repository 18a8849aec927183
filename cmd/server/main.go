// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

// Package main is the entry point for the CineMind server.
//
// CineMind serves movie discovery and recommendation APIs over an
// in-memory catalog. The server initializes components in order:
//
//  1. Configuration: layered defaults, YAML file, environment (Koanf v2)
//  2. Logging: global zerolog logger per the configured level and format
//  3. Catalog: JSON file when catalog.path is set, built-in seed otherwise
//  4. Recommendation engine: content-based, collaborative, hybrid, genre
//  5. HTTP API: Chi router with rate limiting, CORS, and Prometheus metrics
//  6. Supervisor tree: suture keeps the HTTP server running
//
// Configuration sources (highest priority wins):
//   - Environment variables (HTTP_PORT, CATALOG_PATH, LOG_LEVEL, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting connections and drains in-flight requests within the
// configured shutdown timeout.
//
// Example usage:
//
//	export HTTP_PORT=8080
//	export LOG_LEVEL=debug
//	./cinemind
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AryanPatani/cinemind-ai/internal/api"
	"github.com/AryanPatani/cinemind-ai/internal/catalog"
	"github.com/AryanPatani/cinemind-ai/internal/config"
	"github.com/AryanPatani/cinemind-ai/internal/logging"
	"github.com/AryanPatani/cinemind-ai/internal/metrics"
	"github.com/AryanPatani/cinemind-ai/internal/recommend"
	"github.com/AryanPatani/cinemind-ai/internal/supervisor"
	"github.com/AryanPatani/cinemind-ai/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("catalog_path", cfg.Catalog.Path).
		Msg("Starting CineMind")

	store, err := loadCatalog(cfg.Catalog)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
	}
	metrics.SetCatalogSize(store.Len(), store.RatingCount())
	logging.Info().
		Int("movies", store.Len()).
		Int("ratings", store.RatingCount()).
		Msg("Catalog loaded")

	engine, err := recommend.NewEngine(store, cfg.Recommend, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	handler := api.NewHandler(store, engine, cfg.API)
	router := api.NewRouter(handler, cfg.Security)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel until the supervisor finishes.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// loadCatalog reads the configured catalog file, falling back to the
// built-in seed catalog when no path is set.
func loadCatalog(cfg config.CatalogConfig) (*catalog.Store, error) {
	if cfg.Path == "" {
		return catalog.Seed(), nil
	}
	return catalog.LoadFile(cfg.Path)
}
