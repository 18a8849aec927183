// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package api

import (
	"net/http/httptest"
	"testing"

	"github.com/AryanPatani/cinemind-ai/internal/catalog"
)

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    catalog.Filters
		wantErr bool
	}{
		{
			name:  "no parameters",
			query: "",
			want:  catalog.Filters{},
		},
		{
			name:  "all parameters",
			query: "genre=Sci-Fi&year_from=2000&year_to=2020&min_rating=7.5&director=Nolan",
			want: catalog.Filters{
				Genre: "Sci-Fi", YearFrom: 2000, YearTo: 2020,
				MinRating: 7.5, Director: "Nolan",
			},
		},
		{
			name:  "whitespace trimmed",
			query: "genre=%20Drama%20",
			want:  catalog.Filters{Genre: "Drama"},
		},
		{name: "bad year", query: "year_from=abc", wantErr: true},
		{name: "bad rating", query: "min_rating=high", wantErr: true},
		{name: "rating above scale", query: "min_rating=11", wantErr: true},
		{name: "inverted year range", query: "year_from=2020&year_to=2000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/?"+tt.query, nil)
			got, err := parseFilters(r)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFilters() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseFilters() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    int
		wantErr bool
	}{
		{name: "default when absent", query: "", want: 8},
		{name: "explicit", query: "limit=5", want: 5},
		{name: "capped at max", query: "limit=100", want: 50},
		{name: "zero rejected", query: "limit=0", wantErr: true},
		{name: "negative rejected", query: "limit=-3", wantErr: true},
		{name: "non-numeric rejected", query: "limit=ten", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/?"+tt.query, nil)
			got, err := parseLimit(r, 8, 50)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLimit() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseLimit() = %d, want %d", got, tt.want)
			}
		})
	}
}
