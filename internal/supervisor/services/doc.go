// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

/*
Package services adapts fpminer components to suture.Service so the
supervisor tree can start, restart and stop them.

  - HTTPServerService wraps *http.Server. Context cancellation drains
    in-flight requests within the shutdown timeout.
  - MiningService mines the configured CSV once or on an interval and
    writes the association rule report atomically to the output path.
  - CacheJanitorService sweeps expired entries from the engine's result
    caches.

Every service names itself through String for sutureslog events. Services
that have nothing left to do return suture.ErrDoNotRestart.
*/
package services
