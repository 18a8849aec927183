// CineMind - Movie Discovery and Recommendation Engine
// Copyright 2026 Aryan Patani (AryanPatani)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/AryanPatani/cinemind-ai

// Package middleware provides the HTTP middleware the API router composes
// around its handlers.
package middleware

import (
	"context"
	"net/http"

	"github.com/AryanPatani/cinemind-ai/internal/logging"
)

type contextKey string

// RequestIDKey is the context key carrying the request id.
const RequestIDKey contextKey = "request_id"

// RequestID assigns each request a unique id, honouring an X-Request-ID
// header set by an upstream proxy. The id is echoed in the response header
// and propagated through the context, along with a logger bound to it, so
// logging.Ctx picks up the id anywhere downstream.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set("X-Request-ID", requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		ctx = logging.ContextWithRequestID(ctx, requestID)
		ctx = logging.ContextWithLogger(ctx, logging.With().Str("request_id", requestID).Logger())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request id from context, or "" when absent.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
