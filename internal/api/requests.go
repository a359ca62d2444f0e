// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

// Request structs validated with go-playground/validator before they
// reach the engine.
package api

import (
	"github.com/tomtom215/fpminer/internal/models"
	"github.com/tomtom215/fpminer/internal/rules"
	"github.com/tomtom215/fpminer/internal/transactions"
)

// Response size defaults
const (
	defaultRunsLimit = 20
	maxResponseRules = 10_000
)

// MineRequest is the body of POST /api/v1/mine. Exactly one of Records or
// Transactions must be set.
//
//	{"transactions": [["bread", "milk"], ["bread", "eggs"]], "min_support": 2}
type MineRequest struct {
	Records      []transactions.Record `json:"records,omitempty" validate:"required_without=Transactions,excluded_with=Transactions,omitempty,max=1000000,dive"`
	Transactions [][]string            `json:"transactions,omitempty" validate:"omitempty,max=100000,dive,min=1,max=1000,dive,itemname"`
	MinSupport   int                   `json:"min_support" validate:"gte=0"`
	MaxLength    int                   `json:"max_length" validate:"gte=0,lte=64"`
	IncludeRules bool                  `json:"include_rules"`
}

// MineResponse is the data of a successful mine call.
type MineResponse struct {
	Run            *models.Run  `json:"run"`
	Rules          []rules.Rule `json:"rules,omitempty"`
	RulesTruncated bool         `json:"rules_truncated,omitempty"`
}

// RunIDRequest validates a run id path parameter.
type RunIDRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

// ListRunsRequest validates GET /api/v1/runs query parameters.
type ListRunsRequest struct {
	Limit int `json:"limit" validate:"min=1,max=1000"`
}

// RulesRequest validates GET /api/v1/runs/{id}/rules query parameters.
type RulesRequest struct {
	ID     string `json:"id" validate:"required,uuid"`
	Format string `json:"format" validate:"omitempty,oneof=json text"`
	Limit  int    `json:"limit" validate:"min=1,max=10000"`
}

// RulesResponse is the JSON form of a run's rules.
type RulesResponse struct {
	RunID     string       `json:"run_id"`
	Total     int          `json:"total"`
	Rules     []rules.Rule `json:"rules"`
	Truncated bool         `json:"truncated,omitempty"`
}

// ItemFrequenciesRequest validates GET /api/v1/dataset/items.
type ItemFrequenciesRequest struct {
	MinSupport int `json:"min_support" validate:"gte=0"`
}
