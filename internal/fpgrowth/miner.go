// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package fpgrowth

import (
	"fmt"
	"iter"
	"slices"
)

// Itemset is a set of items in discovery order: the most recently added item
// comes first.
type Itemset[T comparable] []T

// Contains reports whether item is a member of the set.
func (s Itemset[T]) Contains(item T) bool {
	return slices.Contains(s, item)
}

// Result pairs a frequent itemset with its support.
type Result[T comparable] struct {
	Itemset Itemset[T] `json:"itemset"`
	Support int        `json:"support"`
}

// Option configures a Miner.
type Option func(*options)

type options struct {
	maxLength int
}

// WithMaxLength stops the search from extending itemsets beyond n items.
// Zero or a negative n leaves the length unbounded.
func WithMaxLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLength = n
		}
	}
}

// frame is one level of the mining recursion: a tree, the suffix that
// produced it, and the position of the next item to examine.
type frame[T comparable] struct {
	tree   *Tree[T]
	suffix Itemset[T]
	next   int
}

// Miner lazily enumerates the frequent itemsets of a tree. Each call to Next
// does a bounded amount of work and the consumer may stop at any time.
//
// A Miner is not safe for concurrent use.
type Miner[T comparable] struct {
	minSupport int
	maxLength  int
	stack      []*frame[T]
	err        error
}

// Mine returns a Miner over tree. A minSupport below 1 is treated as 1, so
// every itemset that occurs in at least one transaction is reported.
func Mine[T comparable](tree *Tree[T], minSupport int, opts ...Option) *Miner[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if minSupport < 1 {
		minSupport = 1
	}

	m := &Miner[T]{
		minSupport: minSupport,
		maxLength:  o.maxLength,
	}
	if tree != nil {
		m.stack = []*frame[T]{{tree: tree}}
	}
	return m
}

// MinSupport returns the effective support threshold.
func (m *Miner[T]) MinSupport() int {
	return m.minSupport
}

// Next returns the next frequent itemset and its support. The boolean is
// false once the search is exhausted or an error stopped it; check Err.
func (m *Miner[T]) Next() (Itemset[T], int, bool) {
	for m.err == nil && len(m.stack) > 0 {
		top := m.stack[len(m.stack)-1]
		if top.next >= len(top.tree.items) {
			m.stack[len(m.stack)-1] = nil
			m.stack = m.stack[:len(m.stack)-1]
			continue
		}

		item := top.tree.items[top.next]
		top.next++

		support := 0
		for node := range top.tree.NodesFor(item) {
			support += node.count
		}
		// Conditional trees keep the condition item's own nodes at their
		// leaves, so the suffix check is what stops [x, x].
		if support < m.minSupport || top.suffix.Contains(item) {
			continue
		}

		found := make(Itemset[T], 0, len(top.suffix)+1)
		found = append(found, item)
		found = append(found, top.suffix...)

		if m.maxLength == 0 || len(found) < m.maxLength {
			conditional, err := BuildConditional(slices.Collect(top.tree.PrefixPaths(item)))
			if err != nil {
				m.err = fmt.Errorf("conditional tree for %v: %w", item, err)
				return nil, 0, false
			}
			m.stack = append(m.stack, &frame[T]{tree: conditional, suffix: found})
		}
		return slices.Clone(found), support, true
	}
	return nil, 0, false
}

// Err returns the invariant violation that stopped the search, if any.
func (m *Miner[T]) Err() error {
	return m.err
}

// All adapts the Miner to a range-over-func sequence.
func (m *Miner[T]) All() iter.Seq2[Itemset[T], int] {
	return func(yield func(Itemset[T], int) bool) {
		for {
			itemset, support, ok := m.Next()
			if !ok || !yield(itemset, support) {
				return
			}
		}
	}
}

// Collect drains the Miner into a slice.
func (m *Miner[T]) Collect() ([]Result[T], error) {
	var results []Result[T]
	for itemset, support := range m.All() {
		results = append(results, Result[T]{Itemset: itemset, Support: support})
	}
	return results, m.Err()
}

// Build inserts every transaction into a new tree. All transactions must
// share one global item order, usually descending support; see Tree.Insert.
func Build[T comparable](transactions [][]T) (*Tree[T], error) {
	tree := NewTree[T]()
	for i, tx := range transactions {
		if err := tree.Insert(tx); err != nil {
			return nil, fmt.Errorf("insert transaction %d: %w", i, err)
		}
	}
	return tree, nil
}
