// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package catalog

// Filters is the optional predicate bundle applied to recommendation
// candidates. The zero value of each field means "no constraint"; a movie
// passes iff every present field matches.
type Filters struct {
	// Genre requires the movie to carry this exact genre tag.
	Genre string `json:"genre,omitempty" validate:"omitempty,min=1,max=64"`

	// YearFrom is the inclusive lower release-year bound.
	YearFrom int `json:"year_from,omitempty" validate:"omitempty,min=1870,max=2100"`

	// YearTo is the inclusive upper release-year bound.
	YearTo int `json:"year_to,omitempty" validate:"omitempty,min=1870,max=2100"`

	// MinRating is the inclusive critic-rating floor on the 0-10 scale.
	MinRating float64 `json:"min_rating,omitempty" validate:"omitempty,min=0,max=10"`

	// Director requires an exact director-name match.
	Director string `json:"director,omitempty" validate:"omitempty,min=1,max=128"`
}

// IsZero reports whether no constraint is set.
func (f Filters) IsZero() bool {
	return f == Filters{}
}

// Match reports whether the movie satisfies every present constraint.
// Absent fields are vacuously true.
func (f Filters) Match(m Movie) bool {
	if f.Genre != "" && !m.HasGenre(f.Genre) {
		return false
	}
	if f.YearFrom != 0 && m.Year < f.YearFrom {
		return false
	}
	if f.YearTo != 0 && m.Year > f.YearTo {
		return false
	}
	if f.MinRating != 0 && m.Rating < f.MinRating {
		return false
	}
	if f.Director != "" && m.Director != f.Director {
		return false
	}
	return true
}

// Filter returns the movies from the catalog that satisfy the bundle,
// in catalog order.
func (s *Store) Filter(f Filters) []Movie {
	out := make([]Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if f.Match(m) {
			out = append(out, m.clone())
		}
	}
	return out
}
