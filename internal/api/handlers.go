// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package api

import (
	"context"
	"time"

	"github.com/tomtom215/fpminer/internal/events"
	"github.com/tomtom215/fpminer/internal/mining"
)

// Pinger is a dependency whose health can be checked.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthCheck struct {
	name   string
	pinger Pinger
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_mine.go: mining requests
//   - handlers_runs.go: stored runs and their rules
//   - handlers_dataset.go: item frequencies of the configured input
//   - handlers_events.go: recent event bus activity
//   - handlers_health.go: health and probes
type Handler struct {
	engine    *mining.Engine
	audit     *events.AuditHandler
	checks    []healthCheck
	startTime time.Time
	version   string
}

// NewHandler creates a handler serving engine.
//
//	handler := api.NewHandler(engine)
//	handler.AddHealthCheck("store", runStore)
//	router := api.NewRouter(handler, nil)
//	http.ListenAndServe(":3857", router.SetupChi())
func NewHandler(engine *mining.Engine) *Handler {
	return &Handler{
		engine:    engine,
		startTime: time.Now(),
		version:   "dev",
	}
}

// AddHealthCheck registers a dependency reported by the health endpoints.
func (h *Handler) AddHealthCheck(name string, p Pinger) {
	h.checks = append(h.checks, healthCheck{name: name, pinger: p})
}

// SetAudit sets the event audit handler behind /events/recent.
func (h *Handler) SetAudit(a *events.AuditHandler) {
	h.audit = a
}

// SetVersion sets the version reported by /health.
func (h *Handler) SetVersion(v string) {
	h.version = v
}
