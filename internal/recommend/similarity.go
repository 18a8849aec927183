// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/AryanPatani/cinemind-ai/internal/catalog"
)

// similarity carries the content score together with the overlap facts the
// reason rules explain from.
type similarity struct {
	score        float64
	sharedGenres []string
	sharedCast   []string
	sameDirector bool
}

// movieSimilarity computes the weighted content similarity between a
// reference movie and a candidate. Each component is normalized to [0,1]
// before weighting, so the total stays within [0,1].
func (c Config) movieSimilarity(ref, cand catalog.Movie) similarity {
	sim := similarity{
		sharedGenres: intersect(ref.Genres, cand.Genres),
		sharedCast:   intersect(ref.Cast, cand.Cast),
		sameDirector: ref.Director != "" && ref.Director == cand.Director,
	}

	if n := max(len(ref.Genres), len(cand.Genres)); n > 0 {
		sim.score += c.GenreWeight * float64(len(sim.sharedGenres)) / float64(n)
	}
	if sim.sameDirector {
		sim.score += c.DirectorWeight
	}
	// Cast contributes only when the movies actually share an actor.
	if len(sim.sharedCast) > 0 {
		n := max(len(ref.Cast), len(cand.Cast))
		sim.score += c.CastWeight * float64(len(sim.sharedCast)) / float64(n)
	}
	yearGap := math.Abs(float64(ref.Year - cand.Year))
	sim.score += c.YearWeight * math.Max(0, 1-yearGap/float64(c.YearWindow))

	ratingGap := math.Abs(ref.Rating - cand.Rating)
	sim.score += c.RatingWeight * math.Max(0, 1-ratingGap/c.RatingSpan)

	return sim
}

// intersect returns the elements of a that also appear in b, preserving
// a's order.
func intersect(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[s] = struct{}{}
	}
	var out []string
	for _, s := range a {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// reasonRule produces one explanation clause, or ok=false when the rule
// does not apply to this pair.
type reasonRule func(ref, cand catalog.Movie, sim similarity) (clause string, ok bool)

// contentReasonRules is evaluated in order; every matching rule
// contributes a clause. eraWindow bounds the "same era" clause.
const eraWindow = 5

var contentReasonRules = []reasonRule{
	func(_, _ catalog.Movie, sim similarity) (string, bool) {
		if len(sim.sharedGenres) == 0 {
			return "", false
		}
		return "shares " + strings.Join(sim.sharedGenres, ", ") + " genre", true
	},
	func(ref, _ catalog.Movie, sim similarity) (string, bool) {
		if !sim.sameDirector {
			return "", false
		}
		return "directed by " + ref.Director, true
	},
	func(_, _ catalog.Movie, sim similarity) (string, bool) {
		if len(sim.sharedCast) == 0 {
			return "", false
		}
		names := sim.sharedCast
		if len(names) > 2 {
			names = names[:2]
		}
		return "features " + strings.Join(names, ", "), true
	},
	func(ref, cand catalog.Movie, _ similarity) (string, bool) {
		gap := ref.Year - cand.Year
		if gap < 0 {
			gap = -gap
		}
		if gap > eraWindow {
			return "", false
		}
		return "from the same era", true
	},
	func(_, cand catalog.Movie, _ similarity) (string, bool) {
		if cand.Rating < 8.0 {
			return "", false
		}
		return fmt.Sprintf("highly rated (%.1f)", cand.Rating), true
	},
}

// contentReason renders the explanation for a content-based match. When no
// rule fires it falls back to a generic clause so a result is never
// unexplained.
func contentReason(ref, cand catalog.Movie, sim similarity) string {
	var clauses []string
	for _, rule := range contentReasonRules {
		if clause, ok := rule(ref, cand, sim); ok {
			clauses = append(clauses, clause)
		}
	}
	if len(clauses) == 0 {
		return "similar style"
	}
	return strings.Join(clauses, reasonSep)
}
