// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package api

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/tomtom215/fpminer/internal/mining"
)

// healthCheckTimeout bounds each dependency ping.
const healthCheckTimeout = 2 * time.Second

// HealthStatus is the data of GET /api/v1/health.
type HealthStatus struct {
	Status    string            `json:"status"` // healthy or degraded
	Version   string            `json:"version"`
	GoVersion string            `json:"go_version"`
	Uptime    float64           `json:"uptime_seconds"`
	Checks    map[string]string `json:"checks"`
	Cache     mining.CacheStats `json:"cache"`
}

// Health reports every registered dependency. It always answers 200;
// degraded dependencies show in the body.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	checks, healthy := h.runChecks(r.Context())

	status := "healthy"
	if !healthy {
		status = "degraded"
	}

	respondSuccess(w, r, http.StatusOK, HealthStatus{
		Status:    status,
		Version:   h.version,
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Seconds(),
		Checks:    checks,
		Cache:     h.engine.CacheStats(),
	}, time.Time{}, false)
}

// HealthLive handles liveness probe requests (Kubernetes-style).
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, time.Time{}, false)
}

// HealthReady handles readiness probe requests (Kubernetes-style).
// Returns 503 while any registered dependency is failing.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	checks, healthy := h.runChecks(r.Context())
	if !healthy {
		respondError(w, r, http.StatusServiceUnavailable, "NOT_READY", "Service is not ready", nil)
		return
	}
	respondSuccess(w, r, http.StatusOK, map[string]interface{}{
		"ready":  true,
		"checks": checks,
	}, time.Time{}, false)
}

func (h *Handler) runChecks(ctx context.Context) (map[string]string, bool) {
	results := make(map[string]string, len(h.checks))
	healthy := true
	for _, c := range h.checks {
		checkCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		err := c.pinger.Ping(checkCtx)
		cancel()

		if err != nil {
			results[c.name] = "error: " + err.Error()
			healthy = false
			continue
		}
		results[c.name] = "ok"
	}
	return results, healthy
}
