// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/fpminer/internal/mining"
	"github.com/tomtom215/fpminer/internal/store"
	"github.com/tomtom215/fpminer/internal/transactions"
)

// Error codes for API responses
const (
	ErrCodeValidation          = "VALIDATION_ERROR"
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeNoTransactions      = "NO_TRANSACTIONS"
	ErrCodeSourceNotConfigured = "SOURCE_NOT_CONFIGURED"
	ErrCodeSourceUnavailable   = "SOURCE_UNAVAILABLE"
	ErrCodeRateLimited         = "RATE_LIMIT_EXCEEDED"
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// writeDomainError maps engine and store errors to HTTP responses.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrRunNotFound):
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Run not found", nil)
	case errors.Is(err, transactions.ErrInvalidRecord):
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
	case errors.Is(err, mining.ErrNoTransactions):
		respondError(w, r, http.StatusUnprocessableEntity, ErrCodeNoTransactions, "No transactions meet the minimum support", nil)
	case errors.Is(err, mining.ErrNoSource), errors.Is(err, mining.ErrNoFrequencySource):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeSourceNotConfigured, "No input source is configured", nil)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeSourceUnavailable, "Input source is temporarily unavailable", err)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, r, http.StatusGatewayTimeout, ErrCodeTimeout, "Request timed out", err)
	default:
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternal, "Internal server error", err)
	}
}
