// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package catalog

import "strings"

// Search performs a case-insensitive substring search over title, director,
// cast members and genre tags. A match on any field qualifies. Results keep
// catalog order (no relevance ranking) and are truncated to limit.
// An empty or whitespace-only query matches nothing.
func (s *Store) Search(query string, limit int) []Movie {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Movie{}
	}

	out := make([]Movie, 0, limit)
	for _, m := range s.movies {
		if !movieMatches(m, q) {
			continue
		}
		out = append(out, m.clone())
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func movieMatches(m Movie, q string) bool {
	if strings.Contains(strings.ToLower(m.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(m.Director), q) {
		return true
	}
	for _, actor := range m.Cast {
		if strings.Contains(strings.ToLower(actor), q) {
			return true
		}
	}
	for _, genre := range m.Genres {
		if strings.Contains(strings.ToLower(genre), q) {
			return true
		}
	}
	return false
}
