// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/fpminer/internal/metrics"
	"github.com/tomtom215/fpminer/internal/transactions"
)

// ErrMissingColumn is returned when a Source does not name both columns.
var ErrMissingColumn = errors.New("person and item columns are required")

var _ transactions.Loader = (*DB)(nil)

// LoadRecords reads distinct (person, item) rows from a CSV file. Rows with
// a NULL or blank person or item are skipped. Pairs come back in the order
// they first appear in the file.
func (db *DB) LoadRecords(ctx context.Context, src transactions.Source) ([]transactions.Record, error) {
	if src.PersonColumn == "" || src.ItemColumn == "" {
		return nil, ErrMissingColumn
	}

	person := quoteIdentifier(src.PersonColumn)
	item := quoteIdentifier(src.ItemColumn)

	// GROUP BY is SELECT DISTINCT with an order key: min(rn) keeps first-seen order.
	query := fmt.Sprintf(`
		WITH source AS (
			SELECT
				trim(CAST(%[1]s AS VARCHAR)) AS person,
				trim(CAST(%[2]s AS VARCHAR)) AS item,
				row_number() OVER () AS rn
			FROM read_csv_auto(%[3]s, header = true)
		)
		SELECT person, item
		FROM source
		WHERE person IS NOT NULL AND item IS NOT NULL
		  AND person <> '' AND item <> ''
		GROUP BY person, item
		ORDER BY min(rn)`, person, item, quoteLiteral(src.Path))

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		metrics.RecordDBQuery("load_records", time.Since(start), err)
		return nil, fmt.Errorf("failed to read %s: %w", src.Path, err)
	}
	defer closeWithLog(rows, "rows")

	var records []transactions.Record
	for rows.Next() {
		var r transactions.Record
		if err := rows.Scan(&r.Person, &r.Item); err != nil {
			metrics.RecordDBQuery("load_records", time.Since(start), err)
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, r)
	}
	err = rows.Err()
	metrics.RecordDBQuery("load_records", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// ItemFrequencies returns the number of distinct persons per item, most
// frequent first. Items with fewer than minSupport persons are omitted.
func (db *DB) ItemFrequencies(ctx context.Context, src transactions.Source, minSupport int) ([]transactions.ItemSupport, error) {
	if src.PersonColumn == "" || src.ItemColumn == "" {
		return nil, ErrMissingColumn
	}

	query := fmt.Sprintf(`
		WITH source AS (
			SELECT DISTINCT
				trim(CAST(%[1]s AS VARCHAR)) AS person,
				trim(CAST(%[2]s AS VARCHAR)) AS item
			FROM read_csv_auto(%[3]s, header = true)
		)
		SELECT item, count(*) AS support
		FROM source
		WHERE person IS NOT NULL AND item IS NOT NULL
		  AND person <> '' AND item <> ''
		GROUP BY item
		HAVING count(*) >= ?
		ORDER BY support DESC, item ASC`,
		quoteIdentifier(src.PersonColumn), quoteIdentifier(src.ItemColumn), quoteLiteral(src.Path))

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query, max(minSupport, 1))
	if err != nil {
		metrics.RecordDBQuery("item_frequencies", time.Since(start), err)
		return nil, fmt.Errorf("failed to read %s: %w", src.Path, err)
	}
	defer closeWithLog(rows, "rows")

	var result []transactions.ItemSupport
	for rows.Next() {
		var is transactions.ItemSupport
		var support int64
		if err := rows.Scan(&is.Item, &support); err != nil {
			metrics.RecordDBQuery("item_frequencies", time.Since(start), err)
			return nil, fmt.Errorf("failed to scan item frequency: %w", err)
		}
		is.Support = int(support)
		result = append(result, is)
	}
	err = rows.Err()
	metrics.RecordDBQuery("item_frequencies", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to iterate item frequencies: %w", err)
	}
	return result, nil
}

// quoteIdentifier quotes a column name for DuckDB.
func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteLiteral quotes a string literal for DuckDB. Table function arguments
// cannot be bound as parameters.
func quoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
