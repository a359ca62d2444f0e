// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/fpminer/internal/events"
	"github.com/tomtom215/fpminer/internal/models"
)

// RecentEventsResponse is the data of GET /api/v1/events/recent.
type RecentEventsResponse struct {
	Events []models.RunCompletedEvent `json:"events"`
	Stats  events.AuditStats          `json:"stats"`
}

// RecentEvents handles GET /api/v1/events/recent, ordered by completion time.
func (h *Handler) RecentEvents(w http.ResponseWriter, r *http.Request) {
	if h.audit == nil {
		respondError(w, r, http.StatusServiceUnavailable, "EVENTS_DISABLED", "Event auditing is not enabled", nil)
		return
	}
	respondSuccess(w, r, http.StatusOK, RecentEventsResponse{
		Events: h.audit.Recent(),
		Stats:  h.audit.Stats(),
	}, time.Time{}, false)
}
