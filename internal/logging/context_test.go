// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestGenerateRequestID(t *testing.T) {
	t.Parallel()

	id1 := GenerateRequestID()
	id2 := GenerateRequestID()

	if id1 == "" {
		t.Error("expected non-empty request ID")
	}
	if len(id1) != 36 { // UUID format
		t.Errorf("expected 36-character request ID, got %d", len(id1))
	}
	if id1 == id2 {
		t.Error("expected unique request IDs")
	}
}

func TestRequestIDContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	if id := RequestIDFromContext(ctx); id != "" {
		t.Errorf("expected empty request ID, got %s", id)
	}

	ctx = ContextWithRequestID(ctx, "req-123")
	if id := RequestIDFromContext(ctx); id != "req-123" {
		t.Errorf("expected req-123, got %s", id)
	}
}

func TestLoggerContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	custom := zerolog.New(&buf).With().Str("source", "test").Logger()

	ctx := ContextWithLogger(context.Background(), custom)
	got := LoggerFromContext(ctx)

	got.Info().Msg("from context")
	if !strings.Contains(buf.String(), `"source":"test"`) {
		t.Errorf("expected context logger in use, got: %s", buf.String())
	}
}

func TestLoggerFromContext_Fallback(t *testing.T) {
	t.Parallel()

	// A context without a stored logger falls back to the global logger.
	logger := LoggerFromContext(context.Background())
	if logger.GetLevel() == zerolog.Disabled {
		t.Error("expected usable fallback logger")
	}
}

func TestCtx_AttachesRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger()
	SetLogger(zerolog.New(&buf))
	defer SetLogger(prev)

	ctx := ContextWithRequestID(context.Background(), "req-456")
	Ctx(ctx).Info().Msg("handled")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-456"`) {
		t.Errorf("expected request_id in output: %s", out)
	}
}

func TestCtx_UsesStoredLoggerAsIs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	bound := zerolog.New(&buf).With().Str("request_id", "req-789").Logger()
	ctx := ContextWithLogger(context.Background(), bound)
	ctx = ContextWithRequestID(ctx, "req-789")

	Ctx(ctx).Info().Msg("handled")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-789"`) {
		t.Errorf("expected request_id in output: %s", out)
	}
	if strings.Count(out, "req-789") != 1 {
		t.Errorf("request_id emitted more than once: %s", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger()
	SetLogger(zerolog.New(&buf))
	defer SetLogger(prev)

	logger := WithComponent("catalog")
	logger.Info().Msg("loaded")

	if !strings.Contains(buf.String(), `"component":"catalog"`) {
		t.Errorf("expected component field in output: %s", buf.String())
	}
}
