// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

/*
Package models defines the data structures shared between the mining
engine, the run store, the event bus and the HTTP API.

Key Components:

  - Run: A stored mining run (parameters, input statistics, itemsets)
  - RunSummary: The listing view of a run
  - RunCompletedEvent: Event payload published after each run
  - APIResponse, APIError, Metadata: The HTTP response envelope

All types serialize with snake_case JSON field names.
*/
package models
