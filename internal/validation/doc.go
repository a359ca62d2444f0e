// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator is initialized once with:
//   - WithRequiredStructEnabled (v11 compatibility)
//   - JSON tag names in error fields, so clients see "min_support" rather
//     than "MinSupport"
//   - The custom "itemname" tag: trimmed, non-empty, no control characters
//
// # Quick Start
//
//	type MineRequest struct {
//	    Transactions [][]string `json:"transactions" validate:"required,min=1,dive,min=1,dive,itemname"`
//	    MinSupport   int        `json:"min_support" validate:"gte=0"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// # Error Format
//
// A single failure produces its message directly with the field, tag and
// value in Details. Several failures are joined with "; " and listed under
// Details["fields"]. Field names inside slices carry their index, for
// example "transactions[2][0]".
package validation
