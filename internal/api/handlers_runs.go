// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/fpminer/internal/logging"
	"github.com/tomtom215/fpminer/internal/mining"
	"github.com/tomtom215/fpminer/internal/rules"
)

// ListRuns handles GET /api/v1/runs?limit=N, newest first.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, ok := getIntParam(r, "limit", defaultRunsLimit)
	req := ListRunsRequest{Limit: limit}
	if !ok {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "limit must be an integer", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	summaries, err := h.engine.Runs(r.Context(), req.Limit)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, summaries, start, false)
}

// GetRun handles GET /api/v1/runs/{id}.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := RunIDRequest{ID: chi.URLParam(r, "id")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	run, err := h.engine.Run(r.Context(), req.ID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, run, start, false)
}

// DeleteRun handles DELETE /api/v1/runs/{id}.
func (h *Handler) DeleteRun(w http.ResponseWriter, r *http.Request) {
	req := RunIDRequest{ID: chi.URLParam(r, "id")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	if err := h.engine.DeleteRun(r.Context(), req.ID); err != nil {
		writeDomainError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("run_id", req.ID).Msg("Run deleted")
	respondSuccess(w, r, http.StatusOK, map[string]string{"deleted": req.ID}, time.Time{}, false)
}

// RunRules handles GET /api/v1/runs/{id}/rules. With format=text the
// rules are streamed in the report file format instead of JSON.
func (h *Handler) RunRules(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, ok := getIntParam(r, "limit", maxResponseRules)
	if !ok {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "limit must be an integer", nil)
		return
	}
	req := RulesRequest{
		ID:     chi.URLParam(r, "id"),
		Format: r.URL.Query().Get("format"),
		Limit:  limit,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	run, err := h.engine.Run(r.Context(), req.ID)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	all := mining.RulesFor(run)

	if req.Format == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := rules.WriteReport(w, all); err != nil {
			logging.Ctx(r.Context()).Warn().Err(err).Str("run_id", run.ID).Msg("Failed to stream rule report")
		}
		return
	}

	page, truncated := capRules(all, req.Limit)
	respondSuccess(w, r, http.StatusOK, RulesResponse{
		RunID:     run.ID,
		Total:     len(all),
		Rules:     page,
		Truncated: truncated,
	}, start, false)
}
