// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AryanPatani/cinemind-ai/internal/config"
	"github.com/AryanPatani/cinemind-ai/internal/metrics"
	"github.com/AryanPatani/cinemind-ai/internal/middleware"
)

// Router builds the HTTP handler tree.
type Router struct {
	handler  *Handler
	security config.SecurityConfig
}

// NewRouter creates a router around the endpoint handlers.
func NewRouter(handler *Handler, security config.SecurityConfig) *Router {
	return &Router{
		handler:  handler,
		security: security,
	}
}

// Setup configures all routes and returns the root handler.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.security.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	// Health endpoints skip rate limiting so monitors are never rejected.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.rateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Get("/movies", router.handler.ListMovies)
		r.Get("/movies/{movieID}", router.handler.GetMovie)
		r.Get("/search", router.handler.Search)

		r.Route("/recommendations", func(r chi.Router) {
			r.Get("/content/{movieID}", router.handler.RecommendContent)
			r.Get("/collaborative/{userID}", router.handler.RecommendCollaborative)
			r.Get("/hybrid/{movieID}/{userID}", router.handler.RecommendHybrid)
			r.Get("/genre/{genre}", router.handler.RecommendGenre)
			r.Get("/config", router.handler.RecommendConfig)
		})
	})

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}

// rateLimit returns the IP-based rate limiting middleware, or a no-op
// when disabled by configuration.
func (router *Router) rateLimit() func(http.Handler) http.Handler {
	if router.security.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		router.security.RateLimitReqs,
		router.security.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.APIRateLimitHits.WithLabelValues(r.URL.Path).Inc()
			NewResponseWriter(w, r).Error(http.StatusTooManyRequests, ErrCodeTooManyRequests, "rate limit exceeded")
		}),
	)
}
