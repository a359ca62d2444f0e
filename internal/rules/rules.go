// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package rules

import (
	"iter"
	"slices"
	"strings"
)

// MaxItemsetSize bounds the itemsets Expand accepts. At 12 items an
// itemset already yields over eight million rules.
const MaxItemsetSize = 12

// Rule pairs two subsets of one frequent itemset.
type Rule struct {
	Antecedent []string `json:"antecedent"`
	Consequent []string `json:"consequent"`
	Support    int      `json:"support"`
}

// String formats the rule as a report line without the trailing newline.
func (r Rule) String() string {
	var b strings.Builder
	writeRule(&b, r)
	return b.String()
}

// Count returns the number of rules Expand produces for an itemset of n items.
func Count(n int) int {
	if n < 2 || n > MaxItemsetSize {
		return 0
	}
	subsets := (1 << n) - 1
	return subsets * (subsets - 1) / 2
}

// Expand returns the rules for one itemset. Itemsets with fewer than two
// items, or more than MaxItemsetSize, produce none. The input is not modified.
func Expand(itemset []string, support int) []Rule {
	n := len(itemset)
	if n < 2 || n > MaxItemsetSize {
		return nil
	}

	items := slices.Clone(itemset)
	slices.Sort(items)

	subsets := powerset(items)
	out := make([]Rule, 0, Count(n))
	for i := 0; i < len(subsets); i++ {
		for j := i + 1; j < len(subsets); j++ {
			out = append(out, Rule{
				Antecedent: subsets[i],
				Consequent: subsets[j],
				Support:    support,
			})
		}
	}
	return out
}

// powerset lists the non-empty subsets of items by size, each size in
// lexicographic index order.
func powerset(items []string) [][]string {
	n := len(items)
	out := make([][]string, 0, (1<<n)-1)
	idx := make([]int, 0, n)

	for size := 1; size <= n; size++ {
		idx = idx[:size]
		for i := range idx {
			idx[i] = i
		}
		for {
			subset := make([]string, size)
			for i, at := range idx {
				subset[i] = items[at]
			}
			out = append(out, subset)

			// advance to the next combination
			i := size - 1
			for i >= 0 && idx[i] == n-size+i {
				i--
			}
			if i < 0 {
				break
			}
			idx[i]++
			for k := i + 1; k < size; k++ {
				idx[k] = idx[k-1] + 1
			}
		}
	}
	return out
}

// FromItemsets expands every itemset yielded by seq. Itemsets are
// processed in ascending lexicographic order of their sorted items, so the
// output does not depend on discovery order.
func FromItemsets(seq iter.Seq2[[]string, int]) []Rule {
	var out []Rule
	_ = ExpandAll(seq, SinkFunc(func(r Rule) error {
		out = append(out, r)
		return nil
	}))
	return out
}

// ExpandAll writes the rules of every itemset yielded by seq to sink, in
// the same order as FromItemsets. Only one itemset's rules are held in
// memory at a time. It stops at the first sink error.
func ExpandAll(seq iter.Seq2[[]string, int], sink Sink) error {
	for _, e := range sortedItemsets(seq) {
		for _, rule := range Expand(e.items, e.support) {
			if err := sink.Write(rule); err != nil {
				return err
			}
		}
	}
	return nil
}

type sortedItemset struct {
	items   []string
	support int
}

// sortedItemsets collects the itemsets that produce rules, each sorted,
// in lexicographic order.
func sortedItemsets(seq iter.Seq2[[]string, int]) []sortedItemset {
	var entries []sortedItemset
	for itemset, support := range seq {
		if len(itemset) < 2 || len(itemset) > MaxItemsetSize {
			continue
		}
		items := slices.Clone(itemset)
		slices.Sort(items)
		entries = append(entries, sortedItemset{items, support})
	}

	slices.SortStableFunc(entries, func(a, b sortedItemset) int {
		return slices.Compare(a.items, b.items)
	})
	return entries
}
