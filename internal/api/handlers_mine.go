// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/fpminer/internal/logging"
	"github.com/tomtom215/fpminer/internal/mining"
	"github.com/tomtom215/fpminer/internal/models"
	"github.com/tomtom215/fpminer/internal/rules"
)

// Mine handles POST /api/v1/mine. A new run answers 201; a repeat of an
// earlier request answers 200 with the cached run.
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req MineRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "Invalid JSON body", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	run, cached, err := h.engine.Mine(r.Context(), mining.Request{
		Records:      req.Records,
		Transactions: req.Transactions,
		MinSupport:   req.MinSupport,
		MaxLength:    req.MaxLength,
		Source:       models.SourceAPI,
	})
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	resp := MineResponse{Run: run}
	if req.IncludeRules {
		resp.Rules, resp.RulesTruncated = capRules(mining.RulesFor(run), maxResponseRules)
	}

	logging.Ctx(r.Context()).Debug().
		Str("run_id", run.ID).
		Bool("cached", cached).
		Msg("Mine request served")

	status := http.StatusCreated
	if cached {
		status = http.StatusOK
	}
	respondSuccess(w, r, status, resp, start, cached)
}

func capRules(all []rules.Rule, limit int) ([]rules.Rule, bool) {
	if len(all) > limit {
		return all[:limit], true
	}
	return all, false
}
