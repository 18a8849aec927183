// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/AryanPatani/cinemind-ai/internal/catalog"
)

// Engine runs the four recommendation strategies over a catalog store.
// It is safe for concurrent use; the store is immutable and the config is
// fixed at construction.
type Engine struct {
	store  *catalog.Store
	cfg    Config
	logger zerolog.Logger
}

// NewEngine validates the config and wires the engine to a catalog store.
func NewEngine(store *catalog.Store, cfg Config, logger zerolog.Logger) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("recommend: nil catalog store")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		store:  store,
		cfg:    cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns the engine's active tuning.
func (e *Engine) Config() Config { return e.cfg }

// ContentBased recommends movies similar to the given reference movie.
// Candidates are filtered before scoring, the reference movie is excluded,
// and movies scoring at or below the include threshold are dropped. An
// unknown movie id yields an empty result.
func (e *Engine) ContentBased(ctx context.Context, movieID, limit int, f catalog.Filters) []Result {
	if err := ctx.Err(); err != nil {
		return nil
	}
	limit = e.cfg.clampLimit(limit)
	if limit == 0 {
		return nil
	}

	ref, ok := e.store.FindByID(movieID)
	if !ok {
		e.logger.Debug().Int("movie_id", movieID).Msg("content-based: unknown reference movie")
		return nil
	}

	var results []Result
	for _, cand := range e.store.Filter(f) {
		if cand.ID == ref.ID {
			continue
		}
		sim := e.cfg.movieSimilarity(ref, cand)
		if sim.score <= e.cfg.IncludeThreshold {
			continue
		}
		results = append(results, Result{
			Movie:  cand,
			Score:  sim.score,
			Reason: contentReason(ref, cand, sim),
		})
	}

	sortResults(results)
	return truncate(results, limit)
}

// Collaborative recommends movies the given user has not rated, predicted
// from the ratings of users whose taste correlates with theirs. An unknown
// user, or one with no positively correlated neighbours, yields an empty
// result.
func (e *Engine) Collaborative(ctx context.Context, userID, limit int, f catalog.Filters) []Result {
	if err := ctx.Err(); err != nil {
		return nil
	}
	limit = e.cfg.clampLimit(limit)
	if limit == 0 {
		return nil
	}

	target := userRatingMap(e.store.RatingsByUser(userID))
	if len(target) == 0 {
		e.logger.Debug().Int("user_id", userID).Msg("collaborative: user has no ratings")
		return nil
	}

	// Weighted sums of neighbour ratings for movies the target has not
	// seen, keyed by movie id. bestSim is the strongest contributing
	// neighbour's correlation, kept for the explanation.
	type vote struct {
		weighted float64
		voters   int
		bestSim  float64
	}
	votes := make(map[int]*vote)

	for _, otherID := range e.store.AllUserIDs() {
		if otherID == userID {
			continue
		}
		other := userRatingMap(e.store.RatingsByUser(otherID))
		sim := pearsonSimilarity(target, other)
		if sim <= e.cfg.MinUserSimilarity {
			continue
		}
		for movieID, rating := range other {
			if _, seen := target[movieID]; seen {
				continue
			}
			v := votes[movieID]
			if v == nil {
				v = &vote{}
				votes[movieID] = v
			}
			v.weighted += sim * rating
			v.voters++
			if sim > v.bestSim {
				v.bestSim = sim
			}
		}
	}

	var results []Result
	for movieID, v := range votes {
		movie, ok := e.store.FindByID(movieID)
		if !ok || !f.Match(movie) {
			continue
		}
		// Similarity-weighted ratings averaged over the contributing
		// ratings, so a strongly correlated neighbour's vote carries its
		// full trust and a weak one's is discounted.
		predicted := v.weighted / float64(v.voters)
		results = append(results, Result{
			Movie:  movie,
			Score:  predicted / catalog.MaxUserRating,
			Reason: collaborativeReason(predicted, v.voters, v.bestSim),
		})
	}

	sortResults(results)
	return truncate(results, limit)
}

// Hybrid blends the content-based and collaborative strategies. Each
// strategy is asked for a widened candidate pool, the pools are merged per
// movie with the configured blend weights, and a movie surfaced by only
// one strategy keeps that strategy's weighted score. Explanations carry
// the content clause first.
func (e *Engine) Hybrid(ctx context.Context, movieID, userID, limit int, f catalog.Filters) []Result {
	if err := ctx.Err(); err != nil {
		return nil
	}
	limit = e.cfg.clampLimit(limit)
	if limit == 0 {
		return nil
	}

	pool := limit * hybridOverfetch
	content := e.ContentBased(ctx, movieID, pool, f)
	collab := e.Collaborative(ctx, userID, pool, f)

	type blend struct {
		movie         catalog.Movie
		score         float64
		contentReason string
		collabReason  string
	}
	merged := make(map[int]*blend, len(content)+len(collab))

	for _, r := range content {
		merged[r.Movie.ID] = &blend{
			movie:         r.Movie,
			score:         e.cfg.HybridContentWeight * r.Score,
			contentReason: r.Reason,
		}
	}
	for _, r := range collab {
		b := merged[r.Movie.ID]
		if b == nil {
			b = &blend{movie: r.Movie}
			merged[r.Movie.ID] = b
		}
		b.score += e.cfg.HybridCollabWeight * r.Score
		b.collabReason = r.Reason
	}

	results := make([]Result, 0, len(merged))
	for _, b := range merged {
		reason := b.contentReason
		switch {
		case reason == "":
			reason = b.collabReason
		case b.collabReason != "":
			reason += hybridSep + b.collabReason
		}
		results = append(results, Result{Movie: b.movie, Score: b.score, Reason: reason})
	}

	sortResults(results)
	return truncate(results, limit)
}

// GenreBased returns the highest rated movies carrying the given genre
// tag. Scores are the catalog rating rescaled to [0,1]. An unknown genre
// yields an empty result.
func (e *Engine) GenreBased(ctx context.Context, genre string, limit int, f catalog.Filters) []Result {
	if err := ctx.Err(); err != nil {
		return nil
	}
	limit = e.cfg.clampLimit(limit)
	if limit == 0 || genre == "" {
		return nil
	}

	var results []Result
	for _, m := range e.store.Filter(f) {
		if !m.HasGenre(genre) {
			continue
		}
		results = append(results, Result{
			Movie:  m,
			Score:  m.Rating / catalog.MaxMovieRating,
			Reason: fmt.Sprintf("top rated %s movie", genre),
		})
	}

	// Genre results order by raw catalog rating, which the rescaled score
	// preserves.
	sortResults(results)
	return truncate(results, limit)
}

// userRatingMap indexes a user's ratings by movie id.
func userRatingMap(ratings []catalog.UserRating) map[int]float64 {
	m := make(map[int]float64, len(ratings))
	for _, r := range ratings {
		m[r.MovieID] = r.Rating
	}
	return m
}

// collaborativeReason explains a collaborative pick from its prediction,
// supporting neighbour count, and the best neighbour's correlation.
func collaborativeReason(predicted float64, voters int, bestSim float64) string {
	pct := bestSim * 100
	if voters == 1 {
		return fmt.Sprintf("predicted %.1f/5 from a viewer with %.0f%% similar taste", predicted, pct)
	}
	return fmt.Sprintf("predicted %.1f/5 from %d viewers with up to %.0f%% similar taste", predicted, voters, pct)
}

// sortResults orders by score descending, breaking ties by ascending
// movie id so equal-scored results come back in a stable order.
func sortResults(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Movie.ID < results[j].Movie.ID
	})
}

func truncate(results []Result, limit int) []Result {
	if len(results) > limit {
		return results[:limit]
	}
	return results
}
