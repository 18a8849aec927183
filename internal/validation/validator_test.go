// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package validation

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Limit     int     `validate:"min=1,max=50"`
	MinRating float64 `validate:"gte=0,lte=10"`
	Genre     string  `validate:"omitempty,min=1,max=64"`
}

func TestValidateStructPasses(t *testing.T) {
	req := sampleRequest{Limit: 10, MinRating: 7.5, Genre: "Sci-Fi"}
	if err := ValidateStruct(&req); err != nil {
		t.Errorf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStructSingleFailure(t *testing.T) {
	req := sampleRequest{Limit: 100, MinRating: 5}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 1 {
		t.Fatalf("got %d errors, want 1", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "Limit") {
		t.Errorf("message %q does not name the field", apiErr.Message)
	}
}

func TestValidateStructMultipleFailures(t *testing.T) {
	req := sampleRequest{Limit: 0, MinRating: 11}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("got %d errors, want 2", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("multi-failure details missing fields list")
	}
}

func TestGetValidatorIsSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator returned different instances")
	}
}
