// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AryanPatani/cinemind-ai/internal/catalog"
	"github.com/AryanPatani/cinemind-ai/internal/config"
	"github.com/AryanPatani/cinemind-ai/internal/logging"
	"github.com/AryanPatani/cinemind-ai/internal/metrics"
	"github.com/AryanPatani/cinemind-ai/internal/recommend"
)

// Handler implements the API endpoints over the catalog store and the
// recommendation engine.
type Handler struct {
	store     *catalog.Store
	engine    *recommend.Engine
	apiCfg    config.APIConfig
	startTime time.Time
}

// NewHandler wires the endpoint handlers.
func NewHandler(store *catalog.Store, engine *recommend.Engine, apiCfg config.APIConfig) *Handler {
	return &Handler{
		store:     store,
		engine:    engine,
		apiCfg:    apiCfg,
		startTime: time.Now(),
	}
}

// ListMovies handles GET /api/v1/movies.
// Returns the catalog ordered by rating, honouring the shared filter
// parameters and limit.
func (h *Handler) ListMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	filters, err := parseFilters(r)
	if err != nil {
		writeParseError(rw, err)
		return
	}
	limit, err := parseLimit(r, h.apiCfg.MaxSearchResults, h.apiCfg.MaxSearchResults)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	movies := h.store.Filter(filters)
	catalog.SortByRating(movies)
	if len(movies) > limit {
		movies = movies[:limit]
	}

	rw.SuccessWithMeta(map[string]interface{}{"movies": movies}, &APIMeta{Count: len(movies)})
}

// GetMovie handles GET /api/v1/movies/{movieID}.
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	movieID, err := strconv.Atoi(chi.URLParam(r, "movieID"))
	if err != nil {
		rw.BadRequest("invalid movie id")
		return
	}

	movie, ok := h.store.FindByID(movieID)
	if !ok {
		rw.NotFound("movie not found")
		return
	}
	rw.Success(movie)
}

// Search handles GET /api/v1/search?q=...
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		rw.BadRequest("missing query parameter q")
		return
	}
	limit, err := parseLimit(r, h.apiCfg.MaxSearchResults, h.apiCfg.MaxSearchResults)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	movies := h.store.Search(query, limit)
	metrics.RecordSearch(len(movies))

	rw.SuccessWithMeta(map[string]interface{}{"movies": movies}, &APIMeta{Count: len(movies)})
}

// RecommendContent handles GET /api/v1/recommendations/content/{movieID}.
func (h *Handler) RecommendContent(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	movieID, err := strconv.Atoi(chi.URLParam(r, "movieID"))
	if err != nil {
		rw.BadRequest("invalid movie id")
		return
	}
	limit, filters, ok := h.recommendParams(rw, r)
	if !ok {
		return
	}

	start := time.Now()
	results := h.engine.ContentBased(r.Context(), movieID, limit, filters)
	h.finishRecommendation(r, recommend.StrategyContent, results, start)

	rw.SuccessWithMeta(map[string]interface{}{"results": results}, &APIMeta{Count: len(results)})
}

// RecommendCollaborative handles GET /api/v1/recommendations/collaborative/{userID}.
func (h *Handler) RecommendCollaborative(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		rw.BadRequest("invalid user id")
		return
	}
	limit, filters, ok := h.recommendParams(rw, r)
	if !ok {
		return
	}

	start := time.Now()
	results := h.engine.Collaborative(r.Context(), userID, limit, filters)
	h.finishRecommendation(r, recommend.StrategyCollaborative, results, start)

	rw.SuccessWithMeta(map[string]interface{}{"results": results}, &APIMeta{Count: len(results)})
}

// RecommendHybrid handles GET /api/v1/recommendations/hybrid/{movieID}/{userID}.
func (h *Handler) RecommendHybrid(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	movieID, err := strconv.Atoi(chi.URLParam(r, "movieID"))
	if err != nil {
		rw.BadRequest("invalid movie id")
		return
	}
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		rw.BadRequest("invalid user id")
		return
	}
	limit, filters, ok := h.recommendParams(rw, r)
	if !ok {
		return
	}

	start := time.Now()
	results := h.engine.Hybrid(r.Context(), movieID, userID, limit, filters)
	h.finishRecommendation(r, recommend.StrategyHybrid, results, start)

	rw.SuccessWithMeta(map[string]interface{}{"results": results}, &APIMeta{Count: len(results)})
}

// RecommendGenre handles GET /api/v1/recommendations/genre/{genre}.
func (h *Handler) RecommendGenre(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	genre := strings.TrimSpace(chi.URLParam(r, "genre"))
	if genre == "" {
		rw.BadRequest("missing genre")
		return
	}
	limit, filters, ok := h.recommendParams(rw, r)
	if !ok {
		return
	}

	start := time.Now()
	results := h.engine.GenreBased(r.Context(), genre, limit, filters)
	h.finishRecommendation(r, recommend.StrategyGenre, results, start)

	rw.SuccessWithMeta(map[string]interface{}{"results": results}, &APIMeta{Count: len(results)})
}

// RecommendConfig handles GET /api/v1/recommendations/config.
// Exposes the engine's active tuning for debugging and client display.
func (h *Handler) RecommendConfig(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.engine.Config())
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int64(time.Since(h.startTime).Seconds()),
		"catalog": map[string]int{
			"movies":  h.store.Len(),
			"ratings": h.store.RatingCount(),
		},
	})
}

// HealthLive handles GET /api/v1/health/live.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready.
// The service is ready once the catalog is loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.store.Len() == 0 {
		rw.Error(http.StatusServiceUnavailable, ErrCodeInternalError, "catalog not loaded")
		return
	}
	rw.Success(map[string]string{"status": "ready"})
}

// recommendParams parses the limit and filter parameters shared by the
// recommendation endpoints, writing the error response itself on failure.
func (h *Handler) recommendParams(rw *ResponseWriter, r *http.Request) (int, catalog.Filters, bool) {
	limit, err := parseLimit(r, h.apiCfg.DefaultLimit, h.engine.Config().MaxResults)
	if err != nil {
		rw.BadRequest(err.Error())
		return 0, catalog.Filters{}, false
	}
	filters, err := parseFilters(r)
	if err != nil {
		writeParseError(rw, err)
		return 0, catalog.Filters{}, false
	}
	return limit, filters, true
}

func (h *Handler) finishRecommendation(r *http.Request, strategy string, results []recommend.Result, start time.Time) {
	duration := time.Since(start)
	metrics.RecordRecommendation(strategy, len(results), duration)
	logging.Ctx(r.Context()).Debug().
		Str("strategy", strategy).
		Int("results", len(results)).
		Dur("duration", duration).
		Msg("recommendations served")
}
