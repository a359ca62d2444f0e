// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/fpminer/internal/logging"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		requestID         string
		correlationID     string
		wantRequestID     string
		wantCorrelationID string
	}{
		{
			name: "generates both IDs",
		},
		{
			name:              "preserves upstream IDs",
			requestID:         "req-12345",
			correlationID:     "corr-67890",
			wantRequestID:     "req-12345",
			wantCorrelationID: "corr-67890",
		},
		{
			name:              "replaces ID with whitespace",
			requestID:         "bad id",
			correlationID:     "corr-1",
			wantCorrelationID: "corr-1",
		},
		{
			name:      "replaces oversized ID",
			requestID: strings.Repeat("x", maxTraceIDLength+1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var ctxRequestID, ctxCorrelationID string
			handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxRequestID = GetRequestID(r.Context())
				ctxCorrelationID = logging.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil)
			if tt.requestID != "" {
				req.Header.Set(HeaderRequestID, tt.requestID)
			}
			if tt.correlationID != "" {
				req.Header.Set(HeaderCorrelationID, tt.correlationID)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			gotRequestID := rec.Header().Get(HeaderRequestID)
			gotCorrelationID := rec.Header().Get(HeaderCorrelationID)

			if gotRequestID != ctxRequestID {
				t.Errorf("header request ID %q != context %q", gotRequestID, ctxRequestID)
			}
			if gotCorrelationID != ctxCorrelationID {
				t.Errorf("header correlation ID %q != context %q", gotCorrelationID, ctxCorrelationID)
			}

			if tt.wantRequestID != "" {
				if gotRequestID != tt.wantRequestID {
					t.Errorf("request ID = %q, want %q", gotRequestID, tt.wantRequestID)
				}
			} else if _, err := uuid.Parse(gotRequestID); err != nil {
				t.Errorf("generated request ID %q is not a UUID: %v", gotRequestID, err)
			}

			if tt.wantCorrelationID != "" {
				if gotCorrelationID != tt.wantCorrelationID {
					t.Errorf("correlation ID = %q, want %q", gotCorrelationID, tt.wantCorrelationID)
				}
			} else if !isShortHexID(gotCorrelationID) {
				t.Errorf("generated correlation ID %q is not 8 hex characters", gotCorrelationID)
			}
		})
	}
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	handler := RequestID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	seen := make(map[string]bool)
	for range 50 {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get(HeaderRequestID)
		if seen[id] {
			t.Fatalf("duplicate request ID %q", id)
		}
		seen[id] = true
	}
}

func TestGetRequestID_Empty(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := GetRequestID(req.Context()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
}

func isShortHexID(id string) bool {
	if len(id) != 8 {
		return false
	}
	for _, c := range id {
		if !strings.ContainsRune("0123456789abcdef", c) {
			return false
		}
	}
	return true
}
