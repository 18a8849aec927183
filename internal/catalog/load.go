// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package catalog

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// File is the on-disk catalog document: a movie list plus a user rating set.
type File struct {
	Movies  []Movie      `json:"movies"`
	Ratings []UserRating `json:"ratings"`
}

// LoadFile reads a catalog snapshot from a JSON file.
// Rating values must be on the 1-5 scale; the loader validates ranges but
// does not deduplicate (user, movie) pairs.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse builds a catalog snapshot from JSON bytes.
func Parse(data []byte) (*Store, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	for _, r := range f.Ratings {
		if r.Rating < MinUserRating || r.Rating > MaxUserRating {
			return nil, fmt.Errorf("rating %.1f by user %d for movie %d outside 1-5 scale",
				r.Rating, r.UserID, r.MovieID)
		}
		if _, ok := findMovie(f.Movies, r.MovieID); !ok {
			return nil, fmt.Errorf("rating by user %d references unknown movie %d", r.UserID, r.MovieID)
		}
	}

	return NewStore(f.Movies, f.Ratings)
}

func findMovie(movies []Movie, id int) (Movie, bool) {
	for _, m := range movies {
		if m.ID == id {
			return m, true
		}
	}
	return Movie{}, false
}
