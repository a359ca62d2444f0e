// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package mining

import (
	"context"
	"fmt"

	"github.com/tomtom215/fpminer/internal/cache"
	"github.com/tomtom215/fpminer/internal/metrics"
	"github.com/tomtom215/fpminer/internal/models"
	"github.com/tomtom215/fpminer/internal/rules"
	"github.com/tomtom215/fpminer/internal/transactions"
)

// Run returns a stored run, reading through the run cache.
func (e *Engine) Run(ctx context.Context, id string) (*models.Run, error) {
	if run, ok := e.runCache.Get(id); ok {
		metrics.RecordCacheLookup(cacheTypeRuns, true)
		return run, nil
	}
	metrics.RecordCacheLookup(cacheTypeRuns, false)

	run, err := e.runs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	e.runCache.Add(id, run)
	return run, nil
}

// Runs lists stored runs, newest first.
func (e *Engine) Runs(ctx context.Context, limit int) ([]models.RunSummary, error) {
	return e.runs.List(ctx, limit)
}

// DeleteRun removes a run from the store and the run cache. Request cache
// entries pointing at it are dropped lazily on their next lookup.
func (e *Engine) DeleteRun(ctx context.Context, id string) error {
	e.runCache.Remove(id)
	return e.runs.Delete(ctx, id)
}

// Rules expands the stored itemsets of a run into association rules.
func (e *Engine) Rules(ctx context.Context, id string) ([]rules.Rule, error) {
	run, err := e.Run(ctx, id)
	if err != nil {
		return nil, err
	}
	return RulesFor(run), nil
}

// RulesFor expands the itemsets of run into association rules.
func RulesFor(run *models.Run) []rules.Rule {
	return rules.FromItemsets(run.All())
}

// ItemFrequencies reports per-item support of the configured input, counted
// by the SQL engine. minSupport of zero uses the configured default.
func (e *Engine) ItemFrequencies(ctx context.Context, minSupport int) ([]transactions.ItemSupport, error) {
	if e.freq == nil {
		return nil, ErrNoFrequencySource
	}
	if e.cfg.InputPath == "" {
		return nil, ErrNoSource
	}
	minSupport, _ = e.resolve(Request{MinSupport: minSupport})

	items, err := e.freq.ItemFrequencies(ctx, e.source(), minSupport)
	if err != nil {
		return nil, fmt.Errorf("item frequencies: %w", err)
	}
	return items, nil
}

// CleanupCaches drops expired cache entries and refreshes the cache size
// gauges. It returns the number of entries removed.
func (e *Engine) CleanupCaches() int {
	removed := e.runCache.CleanupExpired() + e.requestCache.CleanupExpired()
	metrics.CacheSize.WithLabelValues(cacheTypeRuns).Set(float64(e.runCache.Len()))
	metrics.CacheSize.WithLabelValues(cacheTypeRequests).Set(float64(e.requestCache.Len()))
	return removed
}

// CacheStats holds counters for both engine caches.
type CacheStats struct {
	Runs     cache.Stats `json:"runs"`
	Requests cache.Stats `json:"requests"`
}

// CacheStats returns hit, miss and eviction counters for both engine caches.
func (e *Engine) CacheStats() CacheStats {
	return CacheStats{
		Runs:     e.runCache.Stats(),
		Requests: e.requestCache.Stats(),
	}
}
