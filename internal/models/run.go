// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package models

import (
	"iter"
	"time"
)

// Run sources
const (
	SourceAPI      = "api"
	SourceSchedule = "schedule"
	SourceCLI      = "cli"
)

// Itemset is one frequent itemset and its support.
type Itemset struct {
	Items   []string `json:"items"`
	Support int      `json:"support"`
}

// Run is the stored outcome of one mining run.
type Run struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Source    string    `json:"source"`

	// Parameters
	MinSupport int `json:"min_support"`
	MaxLength  int `json:"max_length,omitempty"`

	// Input statistics
	Persons      int `json:"persons"`
	Transactions int `json:"transactions"`
	DroppedItems int `json:"dropped_items"`
	TreeNodes    int `json:"tree_nodes"`

	DurationMS int64 `json:"duration_ms"`

	// Itemsets in discovery order. Truncated is set when the engine's
	// result limit cut the list short.
	Itemsets  []Itemset `json:"itemsets"`
	Truncated bool      `json:"truncated,omitempty"`
}

// RunSummary is the listing view of a Run.
type RunSummary struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Source       string    `json:"source"`
	MinSupport   int       `json:"min_support"`
	Transactions int       `json:"transactions"`
	ItemsetCount int       `json:"itemset_count"`
	DurationMS   int64     `json:"duration_ms"`
}

// Summary returns the listing view of r.
func (r *Run) Summary() RunSummary {
	return RunSummary{
		ID:           r.ID,
		CreatedAt:    r.CreatedAt,
		Source:       r.Source,
		MinSupport:   r.MinSupport,
		Transactions: r.Transactions,
		ItemsetCount: len(r.Itemsets),
		DurationMS:   r.DurationMS,
	}
}

// MaxItemsetLength returns the size of the largest itemset in r.
func (r *Run) MaxItemsetLength() int {
	longest := 0
	for _, is := range r.Itemsets {
		longest = max(longest, len(is.Items))
	}
	return longest
}

// RunCompletedEvent is published on the event bus after a run is stored.
type RunCompletedEvent struct {
	RunID        string    `json:"run_id"`
	Source       string    `json:"source"`
	CompletedAt  time.Time `json:"completed_at"`
	Transactions int       `json:"transactions"`
	Itemsets     int       `json:"itemsets"`
	Rules        int       `json:"rules"`
	DurationMS   int64     `json:"duration_ms"`
}

// All yields the items and support of every itemset in r.
func (r *Run) All() iter.Seq2[[]string, int] {
	return func(yield func([]string, int) bool) {
		for _, is := range r.Itemsets {
			if !yield(is.Items, is.Support) {
				return
			}
		}
	}
}
