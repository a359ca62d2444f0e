// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"time"

	"github.com/tomtom215/fpminer/internal/config"
	"github.com/tomtom215/fpminer/internal/database"
	"github.com/tomtom215/fpminer/internal/fpgrowth"
	"github.com/tomtom215/fpminer/internal/logging"
	"github.com/tomtom215/fpminer/internal/rules"
	"github.com/tomtom215/fpminer/internal/transactions"
)

var errNoInput = errors.New("--input is required")

func (o *options) source() transactions.Source {
	return transactions.Source{
		Path:         o.input,
		PersonColumn: o.personColumn,
		ItemColumn:   o.itemColumn,
	}
}

// openDB opens an in-memory DuckDB used only to read the CSV.
func openDB() (*database.DB, error) {
	return database.New(&config.DatabaseConfig{MaxMemory: "1GB"})
}

func closeDB(db *database.DB) {
	if err := db.Close(); err != nil {
		logging.Warn().Err(err).Msg("Error closing database")
	}
}

// runMine loads the input, mines it and writes the rules to opts.output.
func runMine(ctx context.Context, opts *options, stdout io.Writer) error {
	if opts.input == "" {
		return errNoInput
	}
	start := time.Now()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	records, err := db.LoadRecords(ctx, opts.source())
	if err != nil {
		return err
	}

	ds, err := transactions.Prepare(records, opts.minSupport)
	if err != nil {
		return err
	}
	logging.Info().
		Int("records", len(records)).
		Int("persons", ds.Persons).
		Int("transactions", ds.Len()).
		Int("frequent_items", len(ds.Ranking)).
		Msg("Transactions prepared")

	tree, err := fpgrowth.Build(ds.Transactions)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}
	miner := fpgrowth.Mine(tree, max(opts.minSupport, 1), fpgrowth.WithMaxLength(opts.maxLength))

	count, err := writeRules(opts, stdout, itemsets(miner.All()))
	if err != nil {
		return err
	}
	if err := miner.Err(); err != nil {
		return fmt.Errorf("mine: %w", err)
	}

	logging.Info().
		Int("tree_nodes", tree.Len()).
		Int("rules", count).
		Str("output", opts.output).
		Dur("duration", time.Since(start)).
		Msg("Mining complete")
	return nil
}

// itemsets adapts a miner sequence to the plain slices rules expects.
func itemsets(seq iter.Seq2[fpgrowth.Itemset[string], int]) iter.Seq2[[]string, int] {
	return func(yield func([]string, int) bool) {
		for items, support := range seq {
			if !yield(items, support) {
				return
			}
		}
	}
}

func writeRules(opts *options, stdout io.Writer, seq iter.Seq2[[]string, int]) (int, error) {
	if opts.output == "-" {
		return encodeRules(stdout, opts.json, seq)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return 0, fmt.Errorf("create output: %w", err)
	}
	n, err := encodeRules(f, opts.json, seq)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	return n, err
}

func encodeRules(w io.Writer, asJSON bool, seq iter.Seq2[[]string, int]) (int, error) {
	if asJSON {
		all := rules.FromItemsets(seq)
		return len(all), rules.WriteJSON(w, all)
	}

	rw := rules.NewReportWriter(w)
	if err := rules.ExpandAll(seq, rw); err != nil {
		return 0, err
	}
	return rw.Count(), rw.Flush()
}
