// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

/*
Package mining runs frequent itemset mining end to end.

The Engine turns raw purchase records (or pre-grouped baskets) into a
transaction Dataset, builds an FP-tree, drains the miner and persists the
outcome as a models.Run. Completed runs are cached by request fingerprint,
stored in the run store and announced on the event bus.

# Request Flow

	records ─► transactions.Prepare ─► fpgrowth.Build ─► fpgrowth.Mine
	                                                        │
	             events.Publisher ◄─ cache ◄─ store.Save ◄──┘

A request that leaves MinSupport or MaxLength at zero inherits the
configured defaults. Minimum support below 1 is treated as 1.

# Batch Source

MineSource loads the configured CSV through a transactions.Loader, which
in production is a circuit breaker around the DuckDB loader. Batch runs
skip the request cache since the file may change between runs.

# Thread Safety

Engine is safe for concurrent use. Every call builds its own tree.
*/
package mining
