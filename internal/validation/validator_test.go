// FPMiner - Frequent Itemset Mining and Association Rules
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpminer

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

type testRecord struct {
	Person string `json:"person" validate:"required,itemname"`
	Item   string `json:"item" validate:"required,itemname"`
}

// testMineRequest mirrors the shape of the API mining request.
type testMineRequest struct {
	Records      []testRecord `json:"records" validate:"required_without=Transactions,excluded_with=Transactions,omitempty,max=100,dive"`
	Transactions [][]string   `json:"transactions" validate:"omitempty,max=100,dive,min=1,dive,itemname"`
	MinSupport   int          `json:"min_support" validate:"gte=0,lte=1000"`
	Mode         string       `json:"mode" validate:"omitempty,oneof=itemsets rules"`
	Internal     string       `json:"-" validate:"omitempty,max=1"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input testMineRequest
	}{
		{
			name:  "records",
			input: testMineRequest{Records: []testRecord{{Person: "p1", Item: "milk"}}, MinSupport: 2},
		},
		{
			name:  "transactions",
			input: testMineRequest{Transactions: [][]string{{"milk", "bread"}, {"eggs"}}, Mode: "rules"},
		},
		{
			name:  "unicode item names",
			input: testMineRequest{Transactions: [][]string{{"crème fraîche", "pão"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() unexpected error = %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     testMineRequest
		wantField string
		wantTag   string
	}{
		{
			name:      "neither records nor transactions",
			input:     testMineRequest{},
			wantField: "records",
			wantTag:   "required_without",
		},
		{
			name: "both records and transactions",
			input: testMineRequest{
				Records:      []testRecord{{Person: "p", Item: "i"}},
				Transactions: [][]string{{"i"}},
			},
			wantField: "records",
			wantTag:   "excluded_with",
		},
		{
			name:      "negative support",
			input:     testMineRequest{Transactions: [][]string{{"a"}}, MinSupport: -1},
			wantField: "min_support",
			wantTag:   "gte",
		},
		{
			name:      "empty transaction",
			input:     testMineRequest{Transactions: [][]string{{"a"}, {}}},
			wantField: "transactions[1]",
			wantTag:   "min",
		},
		{
			name:      "control character in item",
			input:     testMineRequest{Transactions: [][]string{{"a", "b\x00"}}},
			wantField: "transactions[0][1]",
			wantTag:   "itemname",
		},
		{
			name:      "padded item",
			input:     testMineRequest{Transactions: [][]string{{" milk"}}},
			wantField: "transactions[0][0]",
			wantTag:   "itemname",
		},
		{
			name:      "record without person",
			input:     testMineRequest{Records: []testRecord{{Item: "milk"}}},
			wantField: "records[0].person",
			wantTag:   "required",
		},
		{
			name:      "unknown mode",
			input:     testMineRequest{Transactions: [][]string{{"a"}}, Mode: "lift"},
			wantField: "mode",
			wantTag:   "oneof",
		},
		{
			name:      "json dash keeps struct field name",
			input:     testMineRequest{Transactions: [][]string{{"a"}}, Internal: "xx"},
			wantField: "Internal",
			wantTag:   "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}

			found := false
			for _, e := range err.Errors() {
				if e.Tag() == tt.wantTag && (tt.wantField == "" || e.Field() == tt.wantField) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Expected error on field %q with tag %s, got: %v", tt.wantField, tt.wantTag, err.Errors())
			}
		})
	}
}

// ===================================================================================================
// ToAPIError Tests
// ===================================================================================================

func TestToAPIError_SingleError(t *testing.T) {
	err := ValidateStruct(&testMineRequest{Transactions: [][]string{{"a"}}, MinSupport: 5000})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Expected code VALIDATION_ERROR, got %s", apiErr.Code)
	}
	if apiErr.Message != "min_support must be less than or equal to 1000" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "min_support" {
		t.Errorf("Details[field] = %v, want min_support", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&testMineRequest{Transactions: [][]string{{}}, MinSupport: -1})
	if err == nil {
		t.Fatal("Expected validation error")
	}

	apiErr := err.ToAPIError()
	if _, ok := apiErr.Details["fields"]; !ok {
		t.Error("Expected details to contain 'fields' key")
	}
	if !strings.Contains(apiErr.Message, "; ") {
		t.Errorf("Message should join errors: %q", apiErr.Message)
	}
	if !strings.Contains(err.Error(), "transactions[0] must contain at least 1 entries") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" || apiErr.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", apiErr)
	}
}

// ===================================================================================================
// Error Message Tests
// ===================================================================================================

func TestErrorMessages(t *testing.T) {
	type lengths struct {
		Name string   `json:"name" validate:"min=2,max=4"`
		Tags []string `json:"tags" validate:"max=1"`
	}

	tests := []struct {
		name  string
		input lengths
		want  string
	}{
		{"string too short", lengths{Name: "a"}, "name must be at least 2 characters"},
		{"string too long", lengths{Name: "abcdef"}, "name must be at most 4 characters"},
		{"list too long", lengths{Name: "ab", Tags: []string{"x", "y"}}, "tags must contain at most 1 entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.input)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}
