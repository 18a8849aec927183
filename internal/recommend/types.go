// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package recommend

import "github.com/AryanPatani/cinemind-ai/internal/catalog"

// Reason separators. reasonSep joins the clauses of a single strategy's
// explanation; hybridSep joins the content and collaborative explanations
// of a hybrid result, content first.
const (
	reasonSep = " • "
	hybridSep = " | "
)

// Result is one recommended movie with its score and a human-readable
// explanation of why it was picked.
type Result struct {
	Movie  catalog.Movie `json:"movie"`
	Score  float64       `json:"score"`
	Reason string        `json:"reason"`
}

// Strategy names, used in logs and metrics labels.
const (
	StrategyContent       = "content"
	StrategyCollaborative = "collaborative"
	StrategyHybrid        = "hybrid"
	StrategyGenre         = "genre"
)
