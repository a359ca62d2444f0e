// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

// Package database reads purchase rows through an embedded DuckDB engine.
//
// # Overview
//
// DuckDB's read_csv_auto table function sniffs delimiters, headers and
// column types, so a raw export such as groceries.csv can be queried
// without a schema:
//
//	db, err := database.New(&cfg.Database)
//	records, err := db.LoadRecords(ctx, transactions.Source{
//	    Path:         "groceries.csv",
//	    PersonColumn: "Person",
//	    ItemColumn:   "item",
//	})
//
// LoadRecords deduplicates (person, item) pairs in SQL and returns them
// in first-seen order, which keeps transaction order stable between runs.
// ItemFrequencies computes per-item support directly in DuckDB for quick
// inspection of a dataset before mining it.
//
// # Files
//
//   - database.go: Connection lifecycle (New, Ping, Close)
//   - records.go: CSV queries
//   - errors.go: Close helpers
//
// # Thread Safety
//
// DB is safe for concurrent use; database/sql pools the DuckDB connections.
package database
