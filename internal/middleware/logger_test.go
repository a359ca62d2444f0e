// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/fpminer/internal/logging"
)

func TestAccessLog_ServerError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logging.NewTestLogger(&buf)

	handler := RequestID(AccessLog(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/mine", nil)
	req = req.WithContext(logging.ContextWithLogger(req.Context(), logger))
	req.Header.Set(HeaderRequestID, "req-access-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("no access log line written")
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("access log is not JSON: %v\n%s", err, line)
	}

	want := map[string]any{
		"level":      "error",
		"method":     "POST",
		"path":       "/api/v1/mine",
		"status":     float64(500),
		"request_id": "req-access-1",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
	if _, ok := entry["correlation_id"]; !ok {
		t.Error("access log missing correlation_id")
	}
}
