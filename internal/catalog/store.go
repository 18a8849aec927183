// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package catalog

import (
	"fmt"
	"sort"
)

// Store is an immutable snapshot of the movie catalog and rating set.
// It is safe for concurrent use: all state is fixed at construction and
// every accessor returns copies.
type Store struct {
	movies []Movie

	// byID maps Movie.ID to its index in movies.
	byID map[int]int

	// ratingsByUser groups the rating set by user id.
	ratingsByUser map[int][]UserRating

	// userIDs is the sorted set of distinct user ids in the rating set.
	userIDs []int
}

// NewStore builds a catalog snapshot from the given movies and ratings.
// It rejects duplicate movie ids and movies without genre tags, since the
// scoring engine relies on both invariants.
func NewStore(movies []Movie, ratings []UserRating) (*Store, error) {
	s := &Store{
		movies:        make([]Movie, 0, len(movies)),
		byID:          make(map[int]int, len(movies)),
		ratingsByUser: make(map[int][]UserRating),
	}

	for _, m := range movies {
		if _, dup := s.byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate movie id %d (%q)", m.ID, m.Title)
		}
		if len(m.Genres) == 0 {
			return nil, fmt.Errorf("movie %d (%q) has no genre tags", m.ID, m.Title)
		}
		s.byID[m.ID] = len(s.movies)
		s.movies = append(s.movies, m.clone())
	}

	for _, r := range ratings {
		s.ratingsByUser[r.UserID] = append(s.ratingsByUser[r.UserID], r)
	}

	s.userIDs = make([]int, 0, len(s.ratingsByUser))
	for id := range s.ratingsByUser {
		s.userIDs = append(s.userIDs, id)
	}
	sort.Ints(s.userIDs)

	return s, nil
}

// FindByID returns the movie with the given id.
func (s *Store) FindByID(id int) (Movie, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Movie{}, false
	}
	return s.movies[idx].clone(), true
}

// All returns a snapshot copy of every movie in catalog order.
func (s *Store) All() []Movie {
	out := make([]Movie, len(s.movies))
	for i, m := range s.movies {
		out[i] = m.clone()
	}
	return out
}

// Len returns the number of movies in the catalog.
func (s *Store) Len() int {
	return len(s.movies)
}

// RatingCount returns the total number of user ratings in the snapshot.
func (s *Store) RatingCount() int {
	n := 0
	for _, rs := range s.ratingsByUser {
		n += len(rs)
	}
	return n
}

// RatingsByUser returns the ratings the given user has submitted.
// Returns an empty slice for unknown users.
func (s *Store) RatingsByUser(userID int) []UserRating {
	return append([]UserRating(nil), s.ratingsByUser[userID]...)
}

// AllUserIDs returns the distinct user ids present in the rating set,
// sorted ascending for deterministic iteration.
func (s *Store) AllUserIDs() []int {
	return append([]int(nil), s.userIDs...)
}

// TopRated returns up to limit movies sorted by critic rating descending,
// ties broken by movie id ascending.
func (s *Store) TopRated(limit int) []Movie {
	out := s.All()
	SortByRating(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SortByRating orders movies by critic rating descending, ties broken by
// movie id ascending.
func SortByRating(movies []Movie) {
	sort.Slice(movies, func(i, j int) bool {
		if movies[i].Rating != movies[j].Rating {
			return movies[i].Rating > movies[j].Rating
		}
		return movies[i].ID < movies[j].ID
	})
}
