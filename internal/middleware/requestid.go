// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package middleware

import (
	"context"
	"net/http"

	"github.com/tomtom215/fpminer/internal/logging"
)

// Header names for request tracing.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// maxTraceIDLength bounds client supplied IDs before they reach log lines.
const maxTraceIDLength = 128

// RequestID assigns every request a request ID and a correlation ID and
// stores both in the logging context. IDs supplied by an upstream proxy are
// kept when they look sane. Both are echoed in the response headers.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if !validTraceID(requestID) {
			requestID = logging.GenerateRequestID()
		}

		correlationID := r.Header.Get(HeaderCorrelationID)
		if !validTraceID(correlationID) {
			correlationID = logging.GenerateCorrelationID()
		}

		w.Header().Set(HeaderRequestID, requestID)
		w.Header().Set(HeaderCorrelationID, correlationID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithCorrelationID(ctx, correlationID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	return logging.RequestIDFromContext(ctx)
}

// validTraceID accepts non-empty printable ASCII up to maxTraceIDLength.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
