// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// TestRecordMiningRun verifies run outcome counters and per-run histograms
func TestRecordMiningRun(t *testing.T) {
	before := testutil.ToFloat64(MiningRunsTotal.WithLabelValues("success"))
	beforeErr := testutil.ToFloat64(MiningRunsTotal.WithLabelValues("error"))
	beforeCount := histogramCount(t, ItemsetsFound)

	RecordMiningRun("success", 20*time.Millisecond, 12, 40)
	RecordMiningRun("error", time.Millisecond, 0, 0)

	if got := testutil.ToFloat64(MiningRunsTotal.WithLabelValues("success")) - before; got != 1 {
		t.Errorf("success runs increased by %v, want 1", got)
	}
	if got := testutil.ToFloat64(MiningRunsTotal.WithLabelValues("error")) - beforeErr; got != 1 {
		t.Errorf("error runs increased by %v, want 1", got)
	}
	if got := histogramCount(t, ItemsetsFound) - beforeCount; got != 1 {
		t.Errorf("itemsets histogram observed %d samples, want 1 (errors are not observed)", got)
	}
}

func TestRecordTree(t *testing.T) {
	RecordTree(17, 5)

	if got := testutil.ToFloat64(TreeNodes); got != 17 {
		t.Errorf("TreeNodes = %v, want 17", got)
	}
	if got := testutil.ToFloat64(TransactionsLoaded); got != 5 {
		t.Errorf("TransactionsLoaded = %v, want 5", got)
	}
}

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		err       error
		wantErrs  float64
	}{
		{name: "successful load", operation: "load_records", wantErrs: 0},
		{name: "failed load", operation: "load_records_fail", err: errors.New("file not found"), wantErrs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation))
			RecordDBQuery(tt.operation, 5*time.Millisecond, tt.err)
			if got := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation)) - before; got != tt.wantErrs {
				t.Errorf("errors increased by %v, want %v", got, tt.wantErrs)
			}
		})
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("POST", "/api/v1/mine", "201")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("POST", "/api/v1/mine", 201, 30*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("api requests increased by %v, want 1", got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 2 {
		t.Errorf("active requests = %v after two increments, want 2", got)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v after decrements, want %v", got, before)
	}
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheHits.WithLabelValues("test"))
	misses := testutil.ToFloat64(CacheMisses.WithLabelValues("test"))

	RecordCacheLookup("test", true)
	RecordCacheLookup("test", false)
	RecordCacheLookup("test", false)

	if got := testutil.ToFloat64(CacheHits.WithLabelValues("test")) - hits; got != 1 {
		t.Errorf("hits increased by %v, want 1", got)
	}
	if got := testutil.ToFloat64(CacheMisses.WithLabelValues("test")) - misses; got != 2 {
		t.Errorf("misses increased by %v, want 2", got)
	}
}

func TestRecordStoreAndEvents(t *testing.T) {
	saveErr := StoreOperations.WithLabelValues("save", "error")
	before := testutil.ToFloat64(saveErr)
	RecordStoreOperation("save", errors.New("disk full"))
	if got := testutil.ToFloat64(saveErr) - before; got != 1 {
		t.Errorf("store errors increased by %v, want 1", got)
	}

	published := EventsPublished.WithLabelValues("test.topic")
	before = testutil.ToFloat64(published)
	RecordEventPublished("test.topic")
	if got := testutil.ToFloat64(published) - before; got != 1 {
		t.Errorf("events published increased by %v, want 1", got)
	}

	consumed := EventsConsumed.WithLabelValues("test.topic", "success")
	before = testutil.ToFloat64(consumed)
	RecordEventConsumed("test.topic", nil)
	if got := testutil.ToFloat64(consumed) - before; got != 1 {
		t.Errorf("events consumed increased by %v, want 1", got)
	}
}

// TestMetricGathering checks that every collector is registered and lints cleanly
func TestMetricGathering(t *testing.T) {
	RecordMiningRun("success", time.Millisecond, 1, 1)
	RecordAPIRequest("GET", "/api/v1/health", 200, time.Millisecond)

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	found := 0
	for _, mf := range families {
		if strings.HasPrefix(mf.GetName(), "fpminer_") {
			found++
		}
	}
	if found == 0 {
		t.Fatal("no fpminer_ metric families registered")
	}

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		if strings.HasPrefix(p.Metric, "fpminer_") {
			t.Logf("Metric lint problem: %s: %s", p.Metric, p.Text)
		}
	}
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}
