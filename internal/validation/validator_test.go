// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package validation

import (
	"strings"
	"testing"
)

type similarRequest struct {
	Item string  `json:"item" validate:"productname,max=512"`
	N    int     `json:"n" validate:"min=1,max=100"`
	Sort string  `json:"sort" validate:"omitempty,oneof=relevance rating_desc price_asc price_desc"`
	Min  float64 `json:"min_rating" validate:"gte=0,lte=5"`
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     similarRequest
		wantErr   bool
		wantField string
		wantTag   string
	}{
		{name: "valid", input: similarRequest{Item: "Bubble Bath", N: 10}},
		{name: "valid with sort", input: similarRequest{Item: "Soap", N: 1, Sort: "price_asc", Min: 4.5}},
		{name: "blank item", input: similarRequest{Item: "   ", N: 10}, wantErr: true, wantField: "item", wantTag: "productname"},
		{name: "control char item", input: similarRequest{Item: "Soap\n", N: 10}, wantErr: true, wantField: "item", wantTag: "productname"},
		{name: "n too small", input: similarRequest{Item: "Soap", N: 0}, wantErr: true, wantField: "n", wantTag: "min"},
		{name: "n too large", input: similarRequest{Item: "Soap", N: 101}, wantErr: true, wantField: "n", wantTag: "max"},
		{name: "bad sort", input: similarRequest{Item: "Soap", N: 5, Sort: "newest"}, wantErr: true, wantField: "sort", wantTag: "oneof"},
		{name: "rating out of range", input: similarRequest{Item: "Soap", N: 5, Min: 7}, wantErr: true, wantField: "min_rating", wantTag: "lte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(&tt.input)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	t.Parallel()

	single := ValidateStruct(&similarRequest{Item: "Soap", N: 0})
	apiErr := single.ToAPIError()
	if apiErr.Code != CodeValidationError {
		t.Errorf("Code = %q, want %q", apiErr.Code, CodeValidationError)
	}
	if apiErr.Message != "n must be at least 1" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "n" {
		t.Errorf("Details[field] = %v, want n", apiErr.Details["field"])
	}

	multi := ValidateStruct(&similarRequest{Item: "", N: 500})
	apiErr = multi.ToAPIError()
	if !strings.Contains(apiErr.Message, ";") {
		t.Errorf("expected joined message, got %q", apiErr.Message)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Errorf("Details[fields] = %v, want 2 entries", apiErr.Details["fields"])
	}
}
