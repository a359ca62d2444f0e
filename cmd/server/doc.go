// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

/*
Package main is the entry point for the fpminer server.

fpminer mines frequent itemsets from purchase data with FP-growth and
serves the resulting association rules over a REST API. A batch service
can mine a configured CSV file on startup or on a schedule and write the
rule report to disk.

# Application Architecture

	RootSupervisor ("fpminer")
	├── DataSupervisor ("data-layer")
	│   ├── MiningService (when MINING_INPUT_PATH is set)
	│   └── CacheJanitorService
	├── MessagingSupervisor ("messaging-layer")
	│   └── Event bus (Watermill GoChannel, run audit consumer)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (Chi)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON or console output
 3. Database: DuckDB, used to read CSV input and count item frequencies
 4. Run store: BadgerDB holding completed mining runs
 5. Event bus and audit consumer
 6. Mining engine with a circuit-breaking transaction loader
 7. HTTP server and supervisor tree

# Configuration

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	MINING_INPUT_PATH=purchases.csv  # CSV with Person and item columns
	MINING_OUTPUT_PATH=Output.txt    # rule report of each batch run
	MIN_SUPPORT=100                  # minimum transactions per itemset
	MINING_INTERVAL=1h               # re-mine periodically (0 = once)
	HTTP_PORT=3857
	STORE_PATH=/data/runs            # or STORE_IN_MEMORY=true
	LOG_LEVEL=info                   # trace, debug, info, warn, error
	LOG_FORMAT=json                  # json or console

CONFIG_PATH points at an optional YAML file using the same keys.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for up to 10 seconds, then the run store and DuckDB
are closed.
*/
package main
