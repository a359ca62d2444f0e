// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package mining

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/fpminer/internal/cache"
	"github.com/tomtom215/fpminer/internal/config"
	"github.com/tomtom215/fpminer/internal/events"
	"github.com/tomtom215/fpminer/internal/fpgrowth"
	"github.com/tomtom215/fpminer/internal/logging"
	"github.com/tomtom215/fpminer/internal/metrics"
	"github.com/tomtom215/fpminer/internal/models"
	"github.com/tomtom215/fpminer/internal/rules"
	"github.com/tomtom215/fpminer/internal/store"
	"github.com/tomtom215/fpminer/internal/transactions"
)

var (
	// ErrNoTransactions is returned when no transaction survives the
	// minimum support filter.
	ErrNoTransactions = errors.New("no transactions meet the minimum support")

	// ErrNoSource is returned by MineSource when no input path is configured.
	ErrNoSource = errors.New("no input source configured")

	// ErrNoFrequencySource is returned by ItemFrequencies when the engine
	// has no SQL-backed source.
	ErrNoFrequencySource = errors.New("item frequencies unavailable")
)

// Cache types reported in metrics.
const (
	cacheTypeRuns     = "runs"
	cacheTypeRequests = "requests"
)

// ctx is checked once per this many emitted itemsets.
const cancelCheckInterval = 1024

// Request describes one mining run. Exactly one of Records or Transactions
// is normally set; if both are, Transactions wins.
type Request struct {
	Records      []transactions.Record
	Transactions [][]string

	MinSupport int
	MaxLength  int

	// Source tags the stored run (models.SourceAPI and friends).
	Source string

	// SkipCache bypasses the request cache in both directions.
	SkipCache bool
}

// FrequencySource reports per-item support straight from the input, without
// building transactions. Implemented by *database.DB.
type FrequencySource interface {
	ItemFrequencies(ctx context.Context, src transactions.Source, minSupport int) ([]transactions.ItemSupport, error)
}

// Engine coordinates transaction preparation, mining and persistence.
type Engine struct {
	cfg config.MiningConfig

	runs      store.RunStore
	loader    transactions.Loader
	freq      FrequencySource
	publisher events.Publisher

	// runCache holds recently read or created runs by id. requestCache maps a
	// request fingerprint to the id of the run it produced.
	runCache     *cache.LRU[string, *models.Run]
	requestCache *cache.LRU[string, string]

	now func() time.Time
}

// NewEngine creates an engine backed by runs. Loader, frequency source and
// publisher are optional and set with the SetX methods.
func NewEngine(cfg config.MiningConfig, cacheCfg config.CacheConfig, runs store.RunStore) *Engine {
	return &Engine{
		cfg:  cfg,
		runs: runs,
		runCache: cache.NewLRU(cacheCfg.Capacity, cacheCfg.TTL,
			cache.WithEvictCallback(evictionRecorder[*models.Run](cacheTypeRuns))),
		requestCache: cache.NewLRU(cacheCfg.Capacity, cacheCfg.TTL,
			cache.WithEvictCallback(evictionRecorder[string](cacheTypeRequests))),
		now: time.Now,
	}
}

func evictionRecorder[V any](cacheType string) func(string, V, cache.EvictReason) {
	return func(string, V, cache.EvictReason) {
		metrics.CacheEvictions.WithLabelValues(cacheType).Inc()
	}
}

// SetLoader sets the loader used by MineSource.
func (e *Engine) SetLoader(l transactions.Loader) {
	e.loader = l
}

// SetFrequencySource sets the source used by ItemFrequencies.
func (e *Engine) SetFrequencySource(f FrequencySource) {
	e.freq = f
}

// SetPublisher sets the publisher notified after each stored run.
func (e *Engine) SetPublisher(p events.Publisher) {
	e.publisher = p
}

// Config returns the mining configuration.
func (e *Engine) Config() config.MiningConfig {
	return e.cfg
}

// Mine runs one request. The second return value reports whether the run
// was served from the request cache.
func (e *Engine) Mine(ctx context.Context, req Request) (*models.Run, bool, error) {
	minSupport, maxLength := e.resolve(req)

	var key string
	if !req.SkipCache {
		key = cache.GenerateKey("mine", fingerprint{
			Records:      req.Records,
			Transactions: req.Transactions,
			MinSupport:   minSupport,
			MaxLength:    maxLength,
			ResultLimit:  e.cfg.ResultLimit,
		})
		if run, ok := e.cachedRequest(ctx, key); ok {
			return run, true, nil
		}
	}

	run, err := e.mine(ctx, req, minSupport, maxLength)
	if err != nil {
		return nil, false, err
	}

	if key != "" {
		e.requestCache.Add(key, run.ID)
	}
	return run, false, nil
}

// MineSource loads the configured input and mines it with the configured
// parameters.
func (e *Engine) MineSource(ctx context.Context, source string) (*models.Run, error) {
	if e.cfg.InputPath == "" {
		return nil, ErrNoSource
	}
	if e.loader == nil {
		return nil, fmt.Errorf("mine %s: no loader configured", e.cfg.InputPath)
	}

	records, err := e.loader.LoadRecords(ctx, e.source())
	if err != nil {
		metrics.RecordMiningRun("error", 0, 0, 0)
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	run, _, err := e.Mine(ctx, Request{
		Records:   records,
		Source:    source,
		SkipCache: true,
	})
	return run, err
}

type fingerprint struct {
	Records      []transactions.Record `json:"records,omitempty"`
	Transactions [][]string            `json:"transactions,omitempty"`
	MinSupport   int                   `json:"min_support"`
	MaxLength    int                   `json:"max_length"`
	ResultLimit  int                   `json:"result_limit"`
}

func (e *Engine) resolve(req Request) (minSupport, maxLength int) {
	minSupport = req.MinSupport
	if minSupport == 0 {
		minSupport = e.cfg.MinSupport
	}
	minSupport = max(minSupport, 1)

	maxLength = req.MaxLength
	if maxLength == 0 {
		maxLength = e.cfg.MaxLength
	}
	return minSupport, max(maxLength, 0)
}

func (e *Engine) source() transactions.Source {
	return transactions.Source{
		Path:         e.cfg.InputPath,
		PersonColumn: e.cfg.PersonColumn,
		ItemColumn:   e.cfg.ItemColumn,
	}
}

// cachedRequest resolves a request fingerprint to its run. A fingerprint
// whose run has since been deleted counts as a miss.
func (e *Engine) cachedRequest(ctx context.Context, key string) (*models.Run, bool) {
	id, ok := e.requestCache.Get(key)
	metrics.RecordCacheLookup(cacheTypeRequests, ok)
	if !ok {
		return nil, false
	}

	run, err := e.Run(ctx, id)
	if err != nil {
		e.requestCache.Remove(key)
		return nil, false
	}
	return run, true
}

func (e *Engine) mine(ctx context.Context, req Request, minSupport, maxLength int) (_ *models.Run, err error) {
	start := e.now()
	status := "success"
	var itemsetCount, ruleCount int
	defer func() {
		if err != nil {
			status = "error"
			if errors.Is(err, ErrNoTransactions) {
				status = "empty"
			}
		}
		metrics.RecordMiningRun(status, time.Since(start), itemsetCount, ruleCount)
	}()

	var ds *transactions.Dataset
	if req.Transactions != nil {
		ds, err = transactions.FromBaskets(req.Transactions, minSupport)
	} else {
		ds, err = transactions.Prepare(req.Records, minSupport)
	}
	if err != nil {
		return nil, fmt.Errorf("prepare transactions: %w", err)
	}
	if ds.Len() == 0 {
		return nil, ErrNoTransactions
	}

	tree, err := fpgrowth.Build(ds.Transactions)
	if err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}
	metrics.RecordTree(tree.Len(), ds.Len())

	itemsets, truncated, err := e.collect(ctx, tree, minSupport, maxLength)
	if err != nil {
		return nil, err
	}
	itemsetCount = len(itemsets)
	for _, is := range itemsets {
		ruleCount += rules.Count(len(is.Items))
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}

	source := req.Source
	if source == "" {
		source = models.SourceAPI
	}

	run := &models.Run{
		ID:           id.String(),
		CreatedAt:    start.UTC(),
		Source:       source,
		MinSupport:   minSupport,
		MaxLength:    maxLength,
		Persons:      ds.Persons,
		Transactions: ds.Len(),
		DroppedItems: ds.DroppedItems,
		TreeNodes:    tree.Len(),
		DurationMS:   time.Since(start).Milliseconds(),
		Itemsets:     itemsets,
		Truncated:    truncated,
	}

	if err := e.runs.Save(ctx, run); err != nil {
		return nil, fmt.Errorf("save run: %w", err)
	}
	e.runCache.Add(run.ID, run)

	logging.Ctx(ctx).Info().
		Str("run_id", run.ID).
		Str("source", run.Source).
		Int("transactions", run.Transactions).
		Int("itemsets", itemsetCount).
		Int("rules", ruleCount).
		Bool("truncated", truncated).
		Int64("duration_ms", run.DurationMS).
		Msg("Mining run completed")

	e.publish(ctx, run, ruleCount)
	return run, nil
}

// collect drains the miner, stopping at the configured result limit.
func (e *Engine) collect(ctx context.Context, tree *fpgrowth.Tree[string], minSupport, maxLength int) ([]models.Itemset, bool, error) {
	miner := fpgrowth.Mine(tree, minSupport, fpgrowth.WithMaxLength(maxLength))
	limit := e.cfg.ResultLimit

	itemsets := make([]models.Itemset, 0)
	truncated := false
	for itemset, support := range miner.All() {
		if limit > 0 && len(itemsets) >= limit {
			truncated = true
			break
		}
		itemsets = append(itemsets, models.Itemset{Items: itemset, Support: support})

		if len(itemsets)%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, false, err
			}
		}
	}
	if err := miner.Err(); err != nil {
		return nil, false, fmt.Errorf("mine itemsets: %w", err)
	}
	return itemsets, truncated, nil
}

// publish announces a stored run. Failures are logged; the run is already
// durable.
func (e *Engine) publish(ctx context.Context, run *models.Run, ruleCount int) {
	if e.publisher == nil {
		return
	}
	event := models.RunCompletedEvent{
		RunID:        run.ID,
		Source:       run.Source,
		CompletedAt:  e.now().UTC(),
		Transactions: run.Transactions,
		Itemsets:     len(run.Itemsets),
		Rules:        ruleCount,
		DurationMS:   run.DurationMS,
	}
	if err := e.publisher.PublishRunCompleted(ctx, event); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("run_id", run.ID).Msg("Failed to publish run completed event")
	}
}
