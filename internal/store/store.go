// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/fpminer/internal/config"
	"github.com/tomtom215/fpminer/internal/logging"
	"github.com/tomtom215/fpminer/internal/metrics"
	"github.com/tomtom215/fpminer/internal/models"
)

// Key prefixes for BadgerDB storage
const (
	runKeyPrefix     = "run:"
	summaryKeyPrefix = "summary:"
)

// ErrRunNotFound is returned when no run has the requested ID.
var ErrRunNotFound = errors.New("run not found")

// RunStore persists mining runs.
type RunStore interface {
	Save(ctx context.Context, run *models.Run) error
	Get(ctx context.Context, id string) (*models.Run, error)
	List(ctx context.Context, limit int) ([]models.RunSummary, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close() error
}

// BadgerStore implements RunStore on BadgerDB.
type BadgerStore struct {
	db *badger.DB
}

var _ RunStore = (*BadgerStore)(nil)

// Open opens (or creates) the run store described by cfg.
func Open(cfg config.StoreConfig) (*BadgerStore, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("store path is required unless in-memory")
		}
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create store directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
		opts.SyncWrites = cfg.SyncWrites
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}

	logging.Debug().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Msg("Run store opened")

	return &BadgerStore{db: db}, nil
}

// Save stores run and its summary, replacing any run with the same ID.
func (s *BadgerStore) Save(_ context.Context, run *models.Run) (err error) {
	defer func() { metrics.RecordStoreOperation("save", err) }()

	if run == nil || run.ID == "" {
		return errors.New("run with an ID is required")
	}

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	summary, err := json.Marshal(run.Summary())
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(runKeyPrefix+run.ID), data); err != nil {
			return fmt.Errorf("set run: %w", err)
		}
		if err := txn.Set([]byte(summaryKeyPrefix+run.ID), summary); err != nil {
			return fmt.Errorf("set summary: %w", err)
		}
		return nil
	})
}

// Get retrieves a run by ID.
func (s *BadgerStore) Get(_ context.Context, id string) (_ *models.Run, err error) {
	defer func() {
		if !errors.Is(err, ErrRunNotFound) {
			metrics.RecordStoreOperation("get", err)
		}
	}()

	var run models.Run
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(runKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrRunNotFound
		}
		if err != nil {
			return fmt.Errorf("get run: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &run)
		})
	})
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// List returns up to limit run summaries, newest first. A limit of zero
// or less returns all runs.
func (s *BadgerStore) List(ctx context.Context, limit int) (_ []models.RunSummary, err error) {
	defer func() { metrics.RecordStoreOperation("list", err) }()

	summaries := []models.RunSummary{}
	err = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Reverse = true
		opts.Prefix = []byte(summaryKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		// In reverse mode Seek lands on the last key <= the seek key.
		seek := append([]byte(summaryKeyPrefix), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(opts.Prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var summary models.RunSummary
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &summary)
			}); err != nil {
				return fmt.Errorf("decode summary %s: %w", it.Item().Key(), err)
			}
			summaries = append(summaries, summary)
			if limit > 0 && len(summaries) >= limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return summaries, nil
}

// Delete removes a run. Deleting a missing run returns ErrRunNotFound.
func (s *BadgerStore) Delete(_ context.Context, id string) (err error) {
	defer func() {
		if !errors.Is(err, ErrRunNotFound) {
			metrics.RecordStoreOperation("delete", err)
		}
	}()

	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(runKeyPrefix + id)
		if _, err := txn.Get(key); errors.Is(err, badger.ErrKeyNotFound) {
			return ErrRunNotFound
		} else if err != nil {
			return fmt.Errorf("get run: %w", err)
		}
		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("delete run: %w", err)
		}
		if err := txn.Delete([]byte(summaryKeyPrefix + id)); err != nil {
			return fmt.Errorf("delete summary: %w", err)
		}
		return nil
	})
}

// Ping reports whether the store is open.
func (s *BadgerStore) Ping(_ context.Context) error {
	if s.db == nil || s.db.IsClosed() {
		return errors.New("run store is closed")
	}
	return nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
