// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package database

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tomtom215/fpminer/internal/config"
	"github.com/tomtom215/fpminer/internal/transactions"
)

// testDBSemaphore serializes DuckDB tests; concurrent CGO connections can
// hang under CI resource pressure.
var testDBSemaphore = make(chan struct{}, 1)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	db, err := New(&config.DatabaseConfig{MaxMemory: "256MB", Threads: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "purchases.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write CSV: %v", err)
	}
	return path
}

const groceries = `Person,item,Date
1000,whole milk,2015-07-21
1000,pastry,2015-07-21
1001,whole milk,2015-01-20
1000,whole milk,2015-05-15
1002,sausage,2015-01-20
1001,soda,2015-04-12
1003,,2015-02-01
1002,whole milk,2015-01-20
`

func TestNew_InMemory(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	if db.Conn() == nil {
		t.Error("Conn() returned nil")
	}
}

func TestNew_FileCreatesDirectory(t *testing.T) {
	testDBSemaphore <- struct{}{}
	defer func() { <-testDBSemaphore }()

	path := filepath.Join(t.TempDir(), "nested", "fpminer.duckdb")
	db, err := New(&config.DatabaseConfig{Path: path, Threads: 1})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer closeQuietly(db)

	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("database directory not created: %v", err)
	}
}

func TestPing_Nil(t *testing.T) {
	var db *DB
	if err := db.Ping(context.Background()); err == nil {
		t.Error("Ping() on nil DB should fail")
	}
}

func TestLoadRecords(t *testing.T) {
	db := setupTestDB(t)
	path := writeCSV(t, groceries)

	records, err := db.LoadRecords(context.Background(), transactions.Source{
		Path:         path,
		PersonColumn: "Person",
		ItemColumn:   "item",
	})
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}

	want := []transactions.Record{
		{Person: "1000", Item: "whole milk"},
		{Person: "1000", Item: "pastry"},
		{Person: "1001", Item: "whole milk"},
		{Person: "1002", Item: "sausage"},
		{Person: "1001", Item: "soda"},
		{Person: "1002", Item: "whole milk"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("LoadRecords() =\n%v\nwant\n%v", records, want)
	}
}

func TestLoadRecords_FeedsPrepare(t *testing.T) {
	db := setupTestDB(t)
	path := writeCSV(t, groceries)

	records, err := db.LoadRecords(context.Background(), transactions.Source{
		Path: path, PersonColumn: "Person", ItemColumn: "item",
	})
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}

	ds, err := transactions.Prepare(records, 2)
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if ds.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ds.Len())
	}
	if ds.Support["whole milk"] != 3 {
		t.Errorf("Support[whole milk] = %d, want 3", ds.Support["whole milk"])
	}
}

func TestLoadRecords_Errors(t *testing.T) {
	db := setupTestDB(t)
	path := writeCSV(t, groceries)

	tests := []struct {
		name    string
		src     transactions.Source
		wantErr error
	}{
		{
			name:    "missing column names",
			src:     transactions.Source{Path: path, PersonColumn: "Person"},
			wantErr: ErrMissingColumn,
		},
		{
			name: "missing file",
			src: transactions.Source{
				Path: filepath.Join(t.TempDir(), "absent.csv"), PersonColumn: "Person", ItemColumn: "item",
			},
		},
		{
			name: "unknown column",
			src:  transactions.Source{Path: path, PersonColumn: "Customer", ItemColumn: "item"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.LoadRecords(context.Background(), tt.src)
			if err == nil {
				t.Fatal("LoadRecords() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadRecords() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRecords_QuotedPath(t *testing.T) {
	db := setupTestDB(t)

	dir := filepath.Join(t.TempDir(), "o'brien")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("Customer ID,Product Name\na,x\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	records, err := db.LoadRecords(context.Background(), transactions.Source{
		Path: path, PersonColumn: "Customer ID", ItemColumn: "Product Name",
	})
	if err != nil {
		t.Fatalf("LoadRecords() error = %v", err)
	}
	if len(records) != 1 || records[0].Item != "x" {
		t.Errorf("LoadRecords() = %v", records)
	}
}

func TestItemFrequencies(t *testing.T) {
	db := setupTestDB(t)
	path := writeCSV(t, groceries)

	got, err := db.ItemFrequencies(context.Background(), transactions.Source{
		Path: path, PersonColumn: "Person", ItemColumn: "item",
	}, 1)
	if err != nil {
		t.Fatalf("ItemFrequencies() error = %v", err)
	}

	want := []transactions.ItemSupport{
		{Item: "whole milk", Support: 3},
		{Item: "pastry", Support: 1},
		{Item: "sausage", Support: 1},
		{Item: "soda", Support: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ItemFrequencies() = %v, want %v", got, want)
	}

	got, err = db.ItemFrequencies(context.Background(), transactions.Source{
		Path: path, PersonColumn: "Person", ItemColumn: "item",
	}, 2)
	if err != nil {
		t.Fatalf("ItemFrequencies() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("ItemFrequencies(min 2) = %v, want only whole milk", got)
	}
}

func TestQuoting(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"identifier", quoteIdentifier, "Person", `"Person"`},
		{"identifier with quote", quoteIdentifier, `a"b`, `"a""b"`},
		{"literal", quoteLiteral, "/data/groceries.csv", "'/data/groceries.csv'"},
		{"literal with quote", quoteLiteral, "o'brien.csv", "'o''brien.csv'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}
