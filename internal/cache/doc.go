// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

/*
Package cache provides a generic, thread-safe LRU cache with TTL expiry.

The mining engine caches complete run results keyed by a fingerprint of
the request (GenerateKey over the normalized input and parameters), so an
identical POST /api/v1/mine inside the TTL is answered without rebuilding
the tree.

	c := cache.NewLRU[string, *Run](128, 10*time.Minute,
	    cache.WithEvictCallback(func(key string, _ *Run, reason cache.EvictReason) {
	        metrics.CacheEvictions.WithLabelValues("runs").Inc()
	    }))
	c.Add(cache.GenerateKey("mine", req), run)

Expired entries are dropped lazily on Get and in bulk by CleanupExpired.
*/
package cache
