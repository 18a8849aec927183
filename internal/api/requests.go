// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/AryanPatani/cinemind-ai/internal/catalog"
	"github.com/AryanPatani/cinemind-ai/internal/validation"
)

// writeParseError writes a 400 for a request parsing failure. Validation
// failures get the VALIDATION_FAILED envelope with per-field details;
// everything else is a plain bad request.
func writeParseError(rw *ResponseWriter, err error) {
	var verr *validation.RequestValidationError
	if errors.As(err, &verr) {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}
	rw.BadRequest(err.Error())
}

// filterParams is the validated shape of the shared filter query
// parameters.
type filterParams struct {
	Genre     string  `validate:"omitempty,min=1,max=64"`
	YearFrom  int     `validate:"omitempty,gte=1870,lte=2100"`
	YearTo    int     `validate:"omitempty,gte=1870,lte=2100"`
	MinRating float64 `validate:"gte=0,lte=10"`
	Director  string  `validate:"omitempty,max=128"`
}

// parseFilters reads the optional filter query parameters shared by the
// listing and recommendation endpoints: genre, year_from, year_to,
// min_rating, director.
func parseFilters(r *http.Request) (catalog.Filters, error) {
	q := r.URL.Query()
	params := filterParams{
		Genre:    strings.TrimSpace(q.Get("genre")),
		Director: strings.TrimSpace(q.Get("director")),
	}

	var err error
	if params.YearFrom, err = intParam(q.Get("year_from")); err != nil {
		return catalog.Filters{}, fmt.Errorf("invalid year_from: %w", err)
	}
	if params.YearTo, err = intParam(q.Get("year_to")); err != nil {
		return catalog.Filters{}, fmt.Errorf("invalid year_to: %w", err)
	}
	if params.MinRating, err = floatParam(q.Get("min_rating")); err != nil {
		return catalog.Filters{}, fmt.Errorf("invalid min_rating: %w", err)
	}
	if params.YearFrom != 0 && params.YearTo != 0 && params.YearFrom > params.YearTo {
		return catalog.Filters{}, fmt.Errorf("year_from %d after year_to %d", params.YearFrom, params.YearTo)
	}

	if verr := validation.ValidateStruct(&params); verr != nil {
		return catalog.Filters{}, verr
	}

	return catalog.Filters{
		Genre:     params.Genre,
		YearFrom:  params.YearFrom,
		YearTo:    params.YearTo,
		MinRating: params.MinRating,
		Director:  params.Director,
	}, nil
}

// parseLimit reads the limit query parameter, falling back to def and
// capping at max.
func parseLimit(r *http.Request, def, max int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid limit: %w", err)
	}
	if limit < 1 {
		return 0, fmt.Errorf("limit must be positive, got %d", limit)
	}
	if limit > max {
		return max, nil
	}
	return limit, nil
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func floatParam(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
