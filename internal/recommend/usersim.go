// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package recommend

import "math"

// pearsonSimilarity computes the Pearson correlation between two users'
// ratings over their commonly rated movies, clamped to [0,1]. It returns 0
// when the users share no movies or when either user's common ratings have
// zero variance, so a neighbour is never trusted on degenerate evidence.
func pearsonSimilarity(a, b map[int]float64) float64 {
	var common []int
	for movieID := range a {
		if _, ok := b[movieID]; ok {
			common = append(common, movieID)
		}
	}
	if len(common) == 0 {
		return 0
	}

	var meanA, meanB float64
	for _, id := range common {
		meanA += a[id]
		meanB += b[id]
	}
	n := float64(len(common))
	meanA /= n
	meanB /= n

	var num, varA, varB float64
	for _, id := range common {
		da := a[id] - meanA
		db := b[id] - meanB
		num += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return 0
	}

	r := num / math.Sqrt(varA*varB)
	if r < 0 {
		return 0
	}
	if r > 1 {
		// Guard against floating point drift just past 1.
		return 1
	}
	return r
}
