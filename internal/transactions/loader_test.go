// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package transactions

import (
	"context"
	"errors"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
)

func TestBreakerLoader_PassesThrough(t *testing.T) {
	t.Parallel()

	want := []Record{{Person: "p1", Item: "milk"}}
	loader := NewBreakerLoader(LoaderFunc(func(_ context.Context, src Source) ([]Record, error) {
		if src.Path != "groceries.csv" {
			t.Errorf("Path = %q, want groceries.csv", src.Path)
		}
		return want, nil
	}), BreakerSettings{Name: "test-pass", MaxFailures: 2, Timeout: time.Minute})

	got, err := loader.LoadRecords(context.Background(), Source{Path: "groceries.csv"})
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("LoadRecords() = %v, want %v", got, want)
	}
}

func TestBreakerLoader_OpensAfterFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	errMissing := errors.New("file not found")
	loader := NewBreakerLoader(LoaderFunc(func(context.Context, Source) ([]Record, error) {
		calls++
		return nil, errMissing
	}), BreakerSettings{Name: "test-open", MaxFailures: 2, Timeout: time.Hour})

	for i := 0; i < 2; i++ {
		if _, err := loader.LoadRecords(context.Background(), Source{}); !errors.Is(err, errMissing) {
			t.Fatalf("call %d: error = %v, want errMissing", i, err)
		}
	}

	if loader.State() != gobreaker.StateOpen {
		t.Fatalf("State() = %v, want open", loader.State())
	}

	_, err := loader.LoadRecords(context.Background(), Source{Path: "x.csv"})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("error = %v, want ErrOpenState", err)
	}
	if calls != 2 {
		t.Errorf("underlying loader called %d times, want 2", calls)
	}
}

func TestBreakerLoader_CancellationDoesNotTrip(t *testing.T) {
	t.Parallel()

	loader := NewBreakerLoader(LoaderFunc(func(ctx context.Context, _ Source) ([]Record, error) {
		return nil, ctx.Err()
	}), BreakerSettings{Name: "test-cancel", MaxFailures: 1, Timeout: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 3; i++ {
		_, _ = loader.LoadRecords(ctx, Source{})
	}
	if loader.State() != gobreaker.StateClosed {
		t.Errorf("State() = %v, want closed", loader.State())
	}
}

func TestBreakerLoader_Defaults(t *testing.T) {
	t.Parallel()

	loader := NewBreakerLoader(LoaderFunc(func(context.Context, Source) ([]Record, error) {
		return nil, nil
	}), BreakerSettings{})
	if loader.name != DefaultBreakerSettings().Name {
		t.Errorf("name = %q, want default", loader.name)
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		state gobreaker.State
		want  string
	}{
		{gobreaker.StateClosed, "closed"},
		{gobreaker.StateHalfOpen, "half-open"},
		{gobreaker.StateOpen, "open"},
		{gobreaker.State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := StateString(tt.state); got != tt.want {
			t.Errorf("StateString(%v) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
