// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

/*
Package supervisor runs the long-lived parts of the fpminer server under a
suture v4 supervisor tree.

# Layout

	RootSupervisor ("fpminer")
	├── DataSupervisor ("data-layer")
	│   ├── MiningService (when mining.input_path is set)
	│   └── CacheJanitorService (when cache.cleanup_interval > 0)
	├── MessagingSupervisor ("messaging-layer")
	│   └── events.Bus
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures on its own, so a batch run that keeps failing
on a bad input file backs off inside the data layer while the API keeps
answering from stored runs.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewMiningService(engine, cfg))
	tree.AddMessagingService(bus)
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	errCh := tree.ServeBackground(ctx)

Lifecycle events (start, failure, backoff, restart) are logged through
sutureslog, which the caller usually points at the zerolog slog adapter.

# Restart Behavior

A service that returns nil is not restarted. A service that returns an
error is restarted; once the decayed failure count passes
FailureThreshold the supervisor waits FailureBackoff before the next
attempt. Services must return promptly when their context is cancelled;
UnstoppedServiceReport lists those that did not within ShutdownTimeout.

DuckDB and BadgerDB are not supervised. They are embedded libraries owned
by main and closed after the tree stops.
*/
package supervisor
