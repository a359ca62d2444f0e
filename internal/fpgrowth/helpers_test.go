// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package fpgrowth

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
)

// scenarioTransactions is the canonical five-basket example, already ordered
// by descending support.
var scenarioTransactions = [][]string{
	{"a", "b"},
	{"a", "b", "c"},
	{"a"},
	{"b", "c"},
	{"b"},
}

func mustBuild(t *testing.T, transactions [][]string) *Tree[string] {
	t.Helper()
	tree, err := Build(transactions)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	return tree
}

func itemsOf(nodes []*Node[string]) []string {
	items := make([]string, 0, len(nodes))
	for _, n := range nodes {
		item, _ := n.Item()
		items = append(items, item)
	}
	return items
}

func countsOf(nodes []*Node[string]) []int {
	counts := make([]int, 0, len(nodes))
	for _, n := range nodes {
		counts = append(counts, n.Count())
	}
	return counts
}

// key renders an itemset independent of discovery order.
func key(items []string) string {
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	return strings.Join(sorted, ",")
}

// randomTransactions generates a deterministic dataset over universe and
// orders every transaction by descending support, ties by item name.
func randomTransactions(seed uint64, universe []string, n int, density float64) [][]string {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	raw := make([][]string, 0, n)
	support := make(map[string]int)
	for i := 0; i < n; i++ {
		var tx []string
		for _, item := range universe {
			if rng.Float64() < density {
				tx = append(tx, item)
				support[item]++
			}
		}
		raw = append(raw, tx)
	}

	for _, tx := range raw {
		slices.SortFunc(tx, func(a, b string) int {
			if c := cmp.Compare(support[b], support[a]); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
	}
	return raw
}

// bruteForce counts the support of every non-empty subset of universe.
func bruteForce(transactions [][]string, universe []string) map[string]int {
	sets := make([]map[string]bool, len(transactions))
	for i, tx := range transactions {
		sets[i] = make(map[string]bool, len(tx))
		for _, item := range tx {
			sets[i][item] = true
		}
	}

	counts := make(map[string]int)
	for mask := 1; mask < 1<<len(universe); mask++ {
		var subset []string
		for i, item := range universe {
			if mask&(1<<i) != 0 {
				subset = append(subset, item)
			}
		}
		n := 0
		for _, set := range sets {
			all := true
			for _, item := range subset {
				if !set[item] {
					all = false
					break
				}
			}
			if all {
				n++
			}
		}
		counts[key(subset)] = n
	}
	return counts
}

// allNodes walks the tree depth first, excluding the root.
func allNodes[T comparable](tree *Tree[T]) []*Node[T] {
	var nodes []*Node[T]
	var walk func(*Node[T])
	walk = func(n *Node[T]) {
		for child := range n.Children() {
			nodes = append(nodes, child)
			walk(child)
		}
	}
	walk(tree.Root())
	return nodes
}
