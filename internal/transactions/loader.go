// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package transactions

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/tomtom215/fpminer/internal/logging"
	"github.com/tomtom215/fpminer/internal/metrics"
)

// Source identifies where rows are read from and which columns hold the
// person and item values.
type Source struct {
	Path         string
	PersonColumn string
	ItemColumn   string
}

// Loader reads purchase rows.
type Loader interface {
	LoadRecords(ctx context.Context, src Source) ([]Record, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, src Source) ([]Record, error)

// LoadRecords calls f.
func (f LoaderFunc) LoadRecords(ctx context.Context, src Source) ([]Record, error) {
	return f(ctx, src)
}

// BreakerSettings configures BreakerLoader.
type BreakerSettings struct {
	Name string

	// MaxFailures consecutive failures open the circuit.
	MaxFailures uint32

	// Timeout is how long the circuit stays open before a trial load.
	Timeout time.Duration
}

// DefaultBreakerSettings returns the settings used by the scheduled miner.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:        "transaction-loader",
		MaxFailures: 3,
		Timeout:     time.Minute,
	}
}

// BreakerLoader wraps a Loader with a circuit breaker.
type BreakerLoader struct {
	next Loader
	cb   *gobreaker.CircuitBreaker[[]Record]
	name string
}

var _ Loader = (*BreakerLoader)(nil)

// NewBreakerLoader returns next guarded by a circuit breaker.
func NewBreakerLoader(next Loader, settings BreakerSettings) *BreakerLoader {
	if settings.MaxFailures == 0 {
		settings.MaxFailures = DefaultBreakerSettings().MaxFailures
	}
	if settings.Name == "" {
		settings.Name = DefaultBreakerSettings().Name
	}
	maxFailures := settings.MaxFailures

	metrics.CircuitBreakerState.WithLabelValues(settings.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]Record](gobreaker.Settings{
		Name:        settings.Name,
		MaxRequests: 1,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// Cancellation is the caller giving up, not the source failing.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", StateString(from)).
				Str("to", StateString(to)).
				Msg("Transaction loader circuit breaker state changed")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, StateString(from), StateString(to)).Inc()
		},
	})

	return &BreakerLoader{next: next, cb: cb, name: settings.Name}
}

// LoadRecords loads through the circuit breaker.
func (b *BreakerLoader) LoadRecords(ctx context.Context, src Source) ([]Record, error) {
	records, err := b.cb.Execute(func() ([]Record, error) {
		return b.next.LoadRecords(ctx, src)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			return nil, fmt.Errorf("load %s: %w", src.Path, err)
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return records, nil
}

// State reports the current breaker state.
func (b *BreakerLoader) State() gobreaker.State {
	return b.cb.State()
}

// StateString converts a breaker state for logs and metric labels.
func StateString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
