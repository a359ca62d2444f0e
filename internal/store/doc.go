// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

/*
Package store persists mining runs in an embedded BadgerDB.

Each run is written twice in one transaction:

	run:<id>      full run (itemsets included), JSON
	summary:<id>  RunSummary, JSON

Run IDs are UUIDv7, so keys sort by creation time and List walks the
summary prefix in reverse to return the newest runs first without decoding
any itemsets.

Open with StoreConfig.InMemory set for tests and ephemeral deployments.
*/
package store
