// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

/*
Package transactions turns raw purchase rows into the ordered transactions
the FP-growth tree is built from.

A purchase row is a (person, item) pair. Preparation mirrors the classic
basket pipeline:

 1. Duplicate (person, item) pairs are removed.
 2. Rows are grouped by person in first-seen order; each person becomes
    one transaction.
 3. Global per-item support (number of persons that bought the item) is
    counted.
 4. Items below the minimum support are removed, and transactions left
    empty are dropped.
 5. Each transaction is sorted by descending support, ties broken by
    ascending item name.

Step 5 gives every transaction the same global item order, which the tree
relies on for correct mining.

# Loading

Loader abstracts where rows come from. The DuckDB CSV reader in
internal/database satisfies it, and BreakerLoader wraps any Loader in a
sony/gobreaker circuit breaker so that repeated failures (a missing input
file on a scheduled run, for example) fail fast instead of re-reading.
*/
package transactions
