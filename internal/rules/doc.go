// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

// Package rules expands frequent itemsets into rule pairs and writes them
// as a plain text report or JSON.
//
// For an itemset of two or more items, the items are sorted and every
// non-empty subset is listed in powerset order (by size, then by position).
// Each unordered pair of distinct subsets becomes one Rule carrying the
// itemset's support. Pairs may overlap: for {a, b} the subsets are (a),
// (b), (a, b) and the rules are (a)-->(b), (a)-->(a, b), (b)-->(a, b).
//
// An itemset of n items yields (2^n - 1) choose 2 rules, so itemsets are
// capped at MaxItemsetSize items; larger sets are skipped with a warning.
// Confidence and lift are not computed.
package rules
