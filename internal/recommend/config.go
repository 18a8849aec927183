// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package recommend

import (
	"fmt"
	"math"
)

// Default scoring constants. The five similarity weights sum to 1.0 so a
// perfect match scores exactly 1.0.
const (
	// DefaultGenreWeight scales genre overlap, the strongest signal.
	DefaultGenreWeight = 0.40

	// DefaultDirectorWeight is granted in full on an exact director match.
	DefaultDirectorWeight = 0.20

	// DefaultCastWeight scales shared-actor overlap. It contributes only
	// when at least one actor is shared.
	DefaultCastWeight = 0.15

	// DefaultYearWeight scales release-year proximity.
	DefaultYearWeight = 0.10

	// DefaultRatingWeight scales rating proximity.
	DefaultRatingWeight = 0.15

	// DefaultYearWindow is the gap in years at which the year component
	// decays to zero.
	DefaultYearWindow = 10

	// DefaultRatingSpan is the rating gap at which the rating component
	// decays to zero.
	DefaultRatingSpan = 2.0

	// DefaultIncludeThreshold is the minimum content similarity a movie
	// needs to appear in content-based results.
	DefaultIncludeThreshold = 0.1

	// DefaultMinUserSimilarity is the minimum Pearson correlation a
	// neighbour needs to contribute to collaborative predictions.
	DefaultMinUserSimilarity = 0.1

	// DefaultHybridContentWeight and DefaultHybridCollabWeight blend the
	// two strategies in hybrid mode.
	DefaultHybridContentWeight = 0.6
	DefaultHybridCollabWeight  = 0.4

	// DefaultMaxResults caps a single recommendation response.
	DefaultMaxResults = 50

	// hybridOverfetch widens the per-strategy candidate pool before the
	// hybrid merge so a movie surfaced by only one strategy still ranks.
	hybridOverfetch = 2
)

// Config holds the engine's tuning. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// Similarity weights for the content-based strategy.
	GenreWeight    float64 `koanf:"genre_weight" json:"genre_weight" validate:"gte=0,lte=1"`
	DirectorWeight float64 `koanf:"director_weight" json:"director_weight" validate:"gte=0,lte=1"`
	CastWeight     float64 `koanf:"cast_weight" json:"cast_weight" validate:"gte=0,lte=1"`
	YearWeight     float64 `koanf:"year_weight" json:"year_weight" validate:"gte=0,lte=1"`
	RatingWeight   float64 `koanf:"rating_weight" json:"rating_weight" validate:"gte=0,lte=1"`

	// YearWindow is the year gap at which year proximity reaches zero.
	YearWindow int `koanf:"year_window" json:"year_window" validate:"gt=0"`

	// RatingSpan is the rating gap at which rating proximity reaches zero.
	RatingSpan float64 `koanf:"rating_span" json:"rating_span" validate:"gt=0"`

	// IncludeThreshold drops content-based candidates scoring below it.
	IncludeThreshold float64 `koanf:"include_threshold" json:"include_threshold" validate:"gte=0,lte=1"`

	// MinUserSimilarity drops collaborative neighbours correlating at or
	// below it.
	MinUserSimilarity float64 `koanf:"min_user_similarity" json:"min_user_similarity" validate:"gte=0,lte=1"`

	// HybridContentWeight and HybridCollabWeight blend strategy scores in
	// hybrid mode. They must sum to 1.0.
	HybridContentWeight float64 `koanf:"hybrid_content_weight" json:"hybrid_content_weight" validate:"gte=0,lte=1"`
	HybridCollabWeight  float64 `koanf:"hybrid_collab_weight" json:"hybrid_collab_weight" validate:"gte=0,lte=1"`

	// MaxResults caps the limit a caller may request.
	MaxResults int `koanf:"max_results" json:"max_results" validate:"gt=0"`
}

// DefaultConfig returns the tuning the engine ships with.
func DefaultConfig() Config {
	return Config{
		GenreWeight:         DefaultGenreWeight,
		DirectorWeight:      DefaultDirectorWeight,
		CastWeight:          DefaultCastWeight,
		YearWeight:          DefaultYearWeight,
		RatingWeight:        DefaultRatingWeight,
		YearWindow:          DefaultYearWindow,
		RatingSpan:          DefaultRatingSpan,
		IncludeThreshold:    DefaultIncludeThreshold,
		MinUserSimilarity:   DefaultMinUserSimilarity,
		HybridContentWeight: DefaultHybridContentWeight,
		HybridCollabWeight:  DefaultHybridCollabWeight,
		MaxResults:          DefaultMaxResults,
	}
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	weights := map[string]float64{
		"genre_weight":    c.GenreWeight,
		"director_weight": c.DirectorWeight,
		"cast_weight":     c.CastWeight,
		"year_weight":     c.YearWeight,
		"rating_weight":   c.RatingWeight,
	}
	sum := 0.0
	for name, w := range weights {
		if w < 0 || w > 1 {
			return fmt.Errorf("recommend: %s %.3f outside [0,1]", name, w)
		}
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("recommend: similarity weights sum to %.3f, want 1.0", sum)
	}
	if c.YearWindow <= 0 {
		return fmt.Errorf("recommend: year_window must be positive, got %d", c.YearWindow)
	}
	if c.RatingSpan <= 0 {
		return fmt.Errorf("recommend: rating_span must be positive, got %.3f", c.RatingSpan)
	}
	if c.IncludeThreshold < 0 || c.IncludeThreshold > 1 {
		return fmt.Errorf("recommend: include_threshold %.3f outside [0,1]", c.IncludeThreshold)
	}
	if c.MinUserSimilarity < 0 || c.MinUserSimilarity > 1 {
		return fmt.Errorf("recommend: min_user_similarity %.3f outside [0,1]", c.MinUserSimilarity)
	}
	if math.Abs(c.HybridContentWeight+c.HybridCollabWeight-1.0) > 1e-9 {
		return fmt.Errorf("recommend: hybrid weights sum to %.3f, want 1.0",
			c.HybridContentWeight+c.HybridCollabWeight)
	}
	if c.MaxResults <= 0 {
		return fmt.Errorf("recommend: max_results must be positive, got %d", c.MaxResults)
	}
	return nil
}

// clampLimit bounds a caller-supplied limit to [0, MaxResults], treating
// non-positive limits as zero.
func (c Config) clampLimit(limit int) int {
	if limit <= 0 {
		return 0
	}
	if limit > c.MaxResults {
		return c.MaxResults
	}
	return limit
}
