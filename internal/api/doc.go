// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

/*
Package api provides the HTTP interface for FPMiner.

Routing uses chi v5 with production middleware from the chi ecosystem
(go-chi/cors, go-chi/httprate). All JSON responses share the
models.APIResponse envelope:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "request_id": "...", "query_time_ms": 12}
	}

Endpoints:

	POST   /api/v1/mine              mine records or baskets, store the run
	GET    /api/v1/runs              recent run summaries (?limit=N)
	GET    /api/v1/runs/{id}         one stored run with its itemsets
	GET    /api/v1/runs/{id}/rules   association rules (?format=text for the report)
	DELETE /api/v1/runs/{id}         delete a run
	GET    /api/v1/dataset/items     per-item support of the configured CSV
	GET    /api/v1/events/recent     recently completed runs seen on the event bus
	GET    /api/v1/health            store and DuckDB status
	GET    /api/v1/health/live       liveness probe
	GET    /api/v1/health/ready      readiness probe
	GET    /metrics                  Prometheus metrics

Error Mapping:

Handlers translate domain errors into status codes in one place
(writeDomainError):

  - validation failures: 400 VALIDATION_ERROR
  - store.ErrRunNotFound: 404 NOT_FOUND
  - mining.ErrNoTransactions: 422 NO_TRANSACTIONS
  - mining.ErrNoSource: 503 SOURCE_NOT_CONFIGURED
  - anything else: 500 INTERNAL_ERROR
*/
package api
