// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

// Package fpgrowth implements the FP-growth frequent itemset mining algorithm.
//
// # Architecture
//
// Transactions are compressed into a prefix-sharing tree (an FP-tree). Every
// node records one item occurrence on one path together with the number of
// transactions that pass through it. Nodes carrying the same item are chained
// into a Route so that all occurrences of an item can be visited without
// walking the whole tree.
//
// Mining is recursive in structure:
//
//   - For every item in the tree, sum the counts along its Route to get support
//   - If support meets the threshold, report [item] + suffix
//   - Collect the item's prefix paths and build a conditional tree from them
//   - Mine the conditional tree with the extended suffix
//
// The recursion is replayed on an explicit work stack, so results are produced
// lazily and depth is bounded by memory rather than by the goroutine stack.
//
// # Input Contract
//
// Transactions should contain distinct items, filtered to the global minimum
// support and ordered by descending global support. Every transaction must
// follow the same global item order. Which order is chosen only affects how
// well prefixes are shared, never the mined result.
//
// # Usage
//
//	tree := fpgrowth.NewTree[string]()
//	for _, tx := range transactions {
//	    if err := tree.Insert(tx); err != nil {
//	        return err
//	    }
//	}
//
//	miner := fpgrowth.Mine(tree, 2)
//	for itemset, support := range miner.All() {
//	    fmt.Println(itemset, support)
//	}
//	if err := miner.Err(); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// Trees are not safe for concurrent mutation. A tree is written during its
// build phase and only read while it is being mined, so independent mining
// calls on independent trees need no locking.
package fpgrowth
