// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package api

import (
	"net/http"
	"time"
)

// ItemFrequencies handles GET /api/v1/dataset/items?min_support=N. Support
// is counted by DuckDB over the configured CSV without building
// transactions, which makes it a cheap way to choose a threshold.
func (h *Handler) ItemFrequencies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	minSupport, ok := getIntParam(r, "min_support", 0)
	if !ok {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "min_support must be an integer", nil)
		return
	}
	req := ItemFrequenciesRequest{MinSupport: minSupport}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	items, err := h.engine.ItemFrequencies(r.Context(), req.MinSupport)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, items, start, false)
}
