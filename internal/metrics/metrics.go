// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

// Package metrics exposes Prometheus instrumentation for the API surface,
// the recommendation engine, and catalog search.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation engine metrics.
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommendation requests served, by strategy",
		},
		[]string{"strategy"},
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Recommendation computation duration in seconds, by strategy",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05},
		},
		[]string{"strategy"},
	)

	RecommendationResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_result_count",
			Help:    "Number of results returned per recommendation request, by strategy",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
		[]string{"strategy"},
	)

	RecommendationEmpty = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_empty_total",
			Help: "Total number of recommendation requests that returned no results",
		},
		[]string{"strategy"},
	)

	// Catalog metrics.
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	CatalogRatings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_ratings",
			Help: "Number of user ratings in the loaded catalog",
		},
	)

	SearchQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_queries_total",
			Help: "Total number of catalog search queries",
		},
	)

	SearchNoResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_no_results_total",
			Help: "Total number of search queries that matched nothing",
		},
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation request for a strategy.
func RecordRecommendation(strategy string, results int, duration time.Duration) {
	RecommendationsServed.WithLabelValues(strategy).Inc()
	RecommendationDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	RecommendationResults.WithLabelValues(strategy).Observe(float64(results))
	if results == 0 {
		RecommendationEmpty.WithLabelValues(strategy).Inc()
	}
}

// RecordSearch records one catalog search.
func RecordSearch(results int) {
	SearchQueries.Inc()
	if results == 0 {
		SearchNoResults.Inc()
	}
}

// SetCatalogSize publishes the loaded catalog's dimensions.
func SetCatalogSize(movies, ratings int) {
	CatalogMovies.Set(float64(movies))
	CatalogRatings.Set(float64(ratings))
}
