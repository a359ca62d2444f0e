// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

/*
Package middleware provides HTTP middleware shared by the API router.

All middleware uses the chi signature func(http.Handler) http.Handler.

Key Components:

  - RequestID: request and correlation IDs for tracing, stored in the
    logging context so every log line of a request carries them
  - PrometheusMetrics: request counters, latency and in-flight gauge,
    labelled by chi route pattern
  - AccessLog: one structured zerolog line per request

Middleware Stack:

The router installs them in this order:

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)

RequestID must come before AccessLog so the access line carries the IDs.

Path Labels:

PrometheusMetrics labels requests with the matched route pattern
(/api/v1/runs/{id}) rather than the raw path, which keeps label
cardinality bounded. Requests that match no route are labelled
"unmatched".
*/
package middleware
