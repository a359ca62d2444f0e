// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto at
package initialization, so importing the package is enough to expose them on
the /metrics endpoint:

	curl http://localhost:3857/metrics

# Available Metrics

Mining:
  - fpminer_mining_runs_total: Runs by outcome (counter)
    Labels: status (success, error, cached)
  - fpminer_mining_duration_seconds: Tree build plus mining plus rule expansion (histogram)
  - fpminer_itemsets_found: Frequent itemsets per run (histogram)
  - fpminer_rules_generated: Rules per run (histogram)
  - fpminer_tree_nodes: Nodes in the latest master tree (gauge)
  - fpminer_transactions_loaded: Transactions in the latest dataset (gauge)

Database:
  - fpminer_duckdb_query_duration_seconds: Query time (histogram)
    Labels: operation
  - fpminer_duckdb_query_errors_total: Failed queries (counter)

API:
  - fpminer_api_requests_total: Requests (counter)
    Labels: method, path, status
  - fpminer_api_request_duration_seconds: Latency (histogram)
  - fpminer_api_active_requests: In-flight requests (gauge)
  - fpminer_api_rate_limit_hits_total: Rejections by httprate (counter)

Cache, store, events:
  - fpminer_cache_hits_total / fpminer_cache_misses_total
  - fpminer_cache_entries, fpminer_cache_evictions_total
  - fpminer_store_operations_total: Labels operation, result
  - fpminer_events_published_total / fpminer_events_consumed_total

Circuit Breaker:
  - fpminer_circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - fpminer_circuit_breaker_requests_total: Labels name, result
  - fpminer_circuit_breaker_state_transitions_total: Labels name, from_state, to_state

# Usage

	start := time.Now()
	// ... mine ...
	metrics.RecordMiningRun("success", time.Since(start), len(itemsets), len(rules))

Path labels are taken from the chi route pattern (for example
/api/v1/runs/{id}) so that label cardinality stays bounded.
*/
package metrics
