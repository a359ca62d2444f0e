// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

/*
Package config provides centralized configuration management for FPMiner.

Configuration is assembled by Koanf v2 from three layers, each overriding the
one before it:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file (CONFIG_PATH, or config.yaml in the working directory)
 3. Environment variables, mapped explicitly by envTransformFunc

Unmapped environment variables are ignored so that unrelated process state
cannot leak into the configuration.

# Environment Variables

Mining:
  - MINING_INPUT_PATH: CSV of (person, item) rows mined by the batch service
  - MINING_OUTPUT_PATH: Report file written after each batch run (default: Output.txt)
  - MINING_PERSON_COLUMN: CSV column naming the transaction owner (default: Person)
  - MINING_ITEM_COLUMN: CSV column naming the item (default: item)
  - MIN_SUPPORT: Minimum number of transactions for a frequent itemset (default: 100)
  - MINING_MAX_LENGTH: Upper bound on itemset length, 0 for unbounded (default: 0)
  - MINING_INTERVAL: Batch re-run interval, 0 to run once (default: 0)
  - MINING_RUN_ON_STARTUP: Run the batch as soon as the service starts (default: true)
  - MINING_RESULT_LIMIT: Maximum itemsets kept per stored run (default: 10000)

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 3857)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging or production (default: development)

Storage:
  - DUCKDB_PATH: DuckDB database used for CSV ingestion (default: in-memory)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
  - DUCKDB_THREADS: DuckDB worker threads, 0 for NumCPU (default: 0)
  - STORE_PATH: BadgerDB directory for mining runs (default: /data/runs)
  - STORE_IN_MEMORY: Keep mining runs in memory only (default: false)
  - STORE_SYNC_WRITES: fsync every run write (default: true)

Cache:
  - CACHE_CAPACITY: Cached mining results (default: 128)
  - CACHE_TTL: Result lifetime (default: 10m)

Security:
  - RATE_LIMIT_REQUESTS: Requests per window and client IP (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller file:line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(cfg.Mining.MinSupport)
*/
package config
