// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for the mining engine and its surroundings:
// - Mining runs (duration, itemsets, rules, tree size)
// - Transaction loading through DuckDB
// - API endpoint latency and throughput
// - Result cache efficiency
// - Run store and event bus activity
// - Circuit breaker state

var (
	// Mining Metrics
	MiningRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpminer_mining_runs_total",
			Help: "Total number of mining runs",
		},
		[]string{"status"}, // "success", "error", "cached"
	)

	MiningDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fpminer_mining_duration_seconds",
			Help:    "Duration of a mining run (tree build, mining and rule expansion) in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
	)

	ItemsetsFound = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fpminer_itemsets_found",
			Help:    "Number of frequent itemsets found per run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	RulesGenerated = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fpminer_rules_generated",
			Help:    "Number of rules generated per run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		},
	)

	TreeNodes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fpminer_tree_nodes",
			Help: "Node count of the most recently built master tree",
		},
	)

	TransactionsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fpminer_transactions_loaded",
			Help: "Number of transactions in the most recently prepared dataset",
		},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fpminer_duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpminer_duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpminer_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fpminer_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fpminer_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpminer_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"path"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpminer_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_type"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpminer_cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_type"},
	)

	CacheSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fpminer_cache_entries",
			Help: "Current number of cached entries",
		},
		[]string{"cache_type"},
	)

	CacheEvictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpminer_cache_evictions_total",
			Help: "Total number of cache evictions (capacity or TTL)",
		},
		[]string{"cache_type"},
	)

	// Run Store Metrics
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpminer_store_operations_total",
			Help: "Total number of run store operations",
		},
		[]string{"operation", "result"},
	)

	// Event Bus Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpminer_events_published_total",
			Help: "Total number of events published to the bus",
		},
		[]string{"topic"},
	)

	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpminer_events_consumed_total",
			Help: "Total number of events consumed from the bus",
		},
		[]string{"topic", "result"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fpminer_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpminer_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fpminer_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "fpminer_app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordMiningRun records the outcome of one mining run.
// status is "success", "error" or "cached".
func RecordMiningRun(status string, duration time.Duration, itemsets, rules int) {
	MiningRunsTotal.WithLabelValues(status).Inc()
	if status != "success" {
		return
	}
	MiningDuration.Observe(duration.Seconds())
	ItemsetsFound.Observe(float64(itemsets))
	RulesGenerated.Observe(float64(rules))
}

// RecordTree records the size of a freshly built master tree and the
// number of transactions that went into it.
func RecordTree(nodes, transactions int) {
	TreeNodes.Set(float64(nodes))
	TransactionsLoaded.Set(float64(transactions))
}

// RecordDBQuery records a database query metric
func RecordDBQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, path string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(path string) {
	APIRateLimitHits.WithLabelValues(path).Inc()
}

// RecordCacheLookup records a cache hit or miss for the given cache.
func RecordCacheLookup(cacheType string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cacheType).Inc()
	} else {
		CacheMisses.WithLabelValues(cacheType).Inc()
	}
}

// RecordStoreOperation records a run store operation and whether it failed.
func RecordStoreOperation(operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	StoreOperations.WithLabelValues(operation, result).Inc()
}

// RecordEventPublished records an event published on topic.
func RecordEventPublished(topic string) {
	EventsPublished.WithLabelValues(topic).Inc()
}

// RecordEventConsumed records the handling outcome of a consumed event.
func RecordEventConsumed(topic string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	EventsConsumed.WithLabelValues(topic, result).Inc()
}
