// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/fpminer/internal/config"
	"github.com/tomtom215/fpminer/internal/models"
)

func openTestStore(t *testing.T) *BadgerStore {
	t.Helper()

	s, err := Open(config.StoreConfig{InMemory: true})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newRun(t *testing.T, created time.Time) *models.Run {
	t.Helper()

	id, err := uuid.NewV7()
	if err != nil {
		t.Fatalf("NewV7() error = %v", err)
	}
	return &models.Run{
		ID:           id.String(),
		CreatedAt:    created,
		Source:       models.SourceAPI,
		MinSupport:   2,
		Transactions: 5,
		Itemsets: []models.Itemset{
			{Items: []string{"a"}, Support: 3},
			{Items: []string{"a", "b"}, Support: 2},
		},
	}
}

func TestBadgerStore_SaveGet(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()
	run := newRun(t, time.Now().UTC())

	if err := s.Save(ctx, run); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Get(ctx, run.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != run.ID || got.MinSupport != 2 || len(got.Itemsets) != 2 {
		t.Errorf("Get() = %+v", got)
	}
	if got.Itemsets[1].Support != 2 || got.Itemsets[1].Items[1] != "b" {
		t.Errorf("itemsets not round-tripped: %+v", got.Itemsets)
	}
}

func TestBadgerStore_SaveInvalid(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	if err := s.Save(context.Background(), &models.Run{}); err == nil {
		t.Error("Save() without ID should fail")
	}
	if err := s.Save(context.Background(), nil); err == nil {
		t.Error("Save(nil) should fail")
	}
}

func TestBadgerStore_GetNotFound(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	if _, err := s.Get(context.Background(), "missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Get() error = %v, want ErrRunNotFound", err)
	}
}

func TestBadgerStore_List(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()

	var ids []string
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		run := newRun(t, base.Add(time.Duration(i)*time.Second))
		if err := s.Save(ctx, run); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		ids = append(ids, run.ID)
	}

	all, err := s.List(ctx, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 5 {
		t.Fatalf("List(0) returned %d summaries, want 5", len(all))
	}
	for i, summary := range all {
		if want := ids[len(ids)-1-i]; summary.ID != want {
			t.Errorf("List()[%d].ID = %s, want %s (newest first)", i, summary.ID, want)
		}
		if summary.ItemsetCount != 2 {
			t.Errorf("ItemsetCount = %d, want 2", summary.ItemsetCount)
		}
	}

	limited, err := s.List(ctx, 2)
	if err != nil {
		t.Fatalf("List(2) error = %v", err)
	}
	if len(limited) != 2 || limited[0].ID != ids[4] {
		t.Errorf("List(2) = %v", limited)
	}
}

func TestBadgerStore_ListEmpty(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	got, err := s.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("List() = %v, want empty non-nil slice", got)
	}
}

func TestBadgerStore_Delete(t *testing.T) {
	t.Parallel()

	s := openTestStore(t)
	ctx := context.Background()
	run := newRun(t, time.Now())
	if err := s.Save(ctx, run); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := s.Delete(ctx, run.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get(ctx, run.ID); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrRunNotFound", err)
	}
	if list, _ := s.List(ctx, 0); len(list) != 0 {
		t.Errorf("summary not deleted: %v", list)
	}
	if err := s.Delete(ctx, run.ID); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("second Delete() error = %v, want ErrRunNotFound", err)
	}
}

func TestBadgerStore_PersistsToDisk(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()
	run := newRun(t, time.Now())

	s, err := Open(config.StoreConfig{Path: dir, SyncWrites: true})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s.Save(ctx, run); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(config.StoreConfig{Path: dir})
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	if _, err := reopened.Get(ctx, run.ID); err != nil {
		t.Errorf("Get() after reopen error = %v", err)
	}
}

func TestBadgerStore_Ping(t *testing.T) {
	t.Parallel()

	s, err := Open(config.StoreConfig{InMemory: true})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	_ = s.Close()
	if err := s.Ping(context.Background()); err == nil {
		t.Error("Ping() after Close should fail")
	}
}

func TestOpen_RequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(config.StoreConfig{}); err == nil {
		t.Error("Open() without path should fail")
	}
}

func ExampleBadgerStore_List() {
	s, err := Open(config.StoreConfig{InMemory: true})
	if err != nil {
		panic(err)
	}
	defer s.Close()

	ctx := context.Background()
	for _, id := range []string{"0001", "0002"} {
		_ = s.Save(ctx, &models.Run{ID: id, Source: models.SourceCLI})
	}

	runs, _ := s.List(ctx, 0)
	for _, r := range runs {
		fmt.Println(r.ID, r.Source)
	}
	// Output:
	// 0002 cli
	// 0001 cli
}
