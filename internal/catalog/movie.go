// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package catalog

// Rating scales. Movie ratings are aggregate critic scores on a 0-10
// scale; user ratings are personal scores on a 1-5 scale.
const (
	MaxMovieRating = 10.0
	MinUserRating  = 1.0
	MaxUserRating  = 5.0
)

// Movie is a single catalog entry. Immutable after catalog load.
type Movie struct {
	// ID is the unique, stable movie identifier.
	ID int `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Year is the release year.
	Year int `json:"year"`

	// Genres is the ordered set of genre tags. Never empty.
	Genres []string `json:"genres"`

	// Director is the director's name.
	Director string `json:"director"`

	// Cast is the ordered list of principal cast names.
	Cast []string `json:"cast"`

	// Rating is the aggregate critic rating on a 0-10 scale.
	Rating float64 `json:"rating"`

	// Votes is the number of votes behind Rating.
	Votes int `json:"votes,omitempty"`

	// Runtime is the running time in minutes.
	Runtime int `json:"runtime"`

	// Description is the synopsis text.
	Description string `json:"description"`

	// Poster is an optional poster image reference.
	Poster string `json:"poster,omitempty"`
}

// HasGenre reports whether the movie carries the given genre tag exactly.
func (m Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// clone returns a deep copy of the movie so callers can never reach the
// store's backing slices.
func (m Movie) clone() Movie {
	c := m
	c.Genres = append([]string(nil), m.Genres...)
	c.Cast = append([]string(nil), m.Cast...)
	return c
}

// UserRating is one user's rating of one movie on a 1-5 scale.
// It is the many-to-many join between users (identified only by integer id)
// and movies.
type UserRating struct {
	// UserID is the rating user's identifier.
	UserID int `json:"user_id"`

	// MovieID references a Movie.ID in the same snapshot.
	MovieID int `json:"movie_id"`

	// Rating is the user's rating on a 1-5 scale.
	Rating float64 `json:"rating"`
}
