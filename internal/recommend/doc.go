// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

// Package recommend implements the CineMind recommendation engine.
//
// Four strategies are exposed through Engine:
//
//   - ContentBased: ranks movies by weighted similarity to a reference
//     movie (genres, director, cast, release year, rating proximity).
//   - Collaborative: user-based collaborative filtering with Pearson
//     correlation over the catalog's rating set.
//   - Hybrid: a weighted blend of the content and collaborative scores.
//   - GenreBased: the highest rated movies in a genre.
//
// All strategies filter candidates before scoring, exclude the
// reference movie from its own results, and order ties by ascending
// movie id so repeated calls return identical slices. Unknown movie,
// user, or genre identifiers yield empty results rather than errors.
//
// Scoring weights and thresholds live in Config; DefaultConfig returns
// the tuning the engine ships with.
package recommend
