// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

// Package catalog holds the in-memory movie catalog and user rating set.
//
// The catalog is a fixed, hand-curated collection loaded once at startup,
// either from the embedded seed data or from a JSON file. After construction
// the Store is read-only: every accessor returns copies, so callers can never
// mutate the snapshot the recommendation engine scores against. This is what
// makes concurrent recommendation requests safe without any locking.
//
// # Contents
//
//   - Movie and UserRating: the data model (movie ratings on a 0-10 critic
//     scale, user ratings on a 1-5 scale)
//   - Store: lookup and filter primitives (FindByID, All, RatingsByUser,
//     AllUserIDs, TopRated)
//   - Filters: the optional predicate bundle shared by all recommenders
//   - Search: case-insensitive substring search over title, director,
//     cast and genres
//
// # Invariants
//
// Movie IDs are unique within a snapshot and genre lists are non-empty;
// NewStore rejects catalogs that violate either. At most one rating per
// (user, movie) pair is meaningful - the loader does not deduplicate, that
// is the data author's responsibility.
package catalog
