// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRecommendation(t *testing.T) {
	before := testutil.ToFloat64(RecommendationsServed.WithLabelValues("content"))
	emptyBefore := testutil.ToFloat64(RecommendationEmpty.WithLabelValues("content"))

	RecordRecommendation("content", 5, 2*time.Millisecond)
	RecordRecommendation("content", 0, time.Millisecond)

	if got := testutil.ToFloat64(RecommendationsServed.WithLabelValues("content")); got != before+2 {
		t.Errorf("served counter = %v, want %v", got, before+2)
	}
	if got := testutil.ToFloat64(RecommendationEmpty.WithLabelValues("content")); got != emptyBefore+1 {
		t.Errorf("empty counter = %v, want %v", got, emptyBefore+1)
	}
}

func TestRecordSearch(t *testing.T) {
	queriesBefore := testutil.ToFloat64(SearchQueries)
	noneBefore := testutil.ToFloat64(SearchNoResults)

	RecordSearch(3)
	RecordSearch(0)

	if got := testutil.ToFloat64(SearchQueries); got != queriesBefore+2 {
		t.Errorf("query counter = %v, want %v", got, queriesBefore+2)
	}
	if got := testutil.ToFloat64(SearchNoResults); got != noneBefore+1 {
		t.Errorf("no-result counter = %v, want %v", got, noneBefore+1)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != base+1 {
		t.Errorf("gauge after inc = %v, want %v", got, base+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != base {
		t.Errorf("gauge after dec = %v, want %v", got, base)
	}
}

func TestSetCatalogSize(t *testing.T) {
	SetCatalogSize(12, 27)

	if got := testutil.ToFloat64(CatalogMovies); got != 12 {
		t.Errorf("catalog movies gauge = %v, want 12", got)
	}
	if got := testutil.ToFloat64(CatalogRatings); got != 27 {
		t.Errorf("catalog ratings gauge = %v, want 27", got)
	}
}
