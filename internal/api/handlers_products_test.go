// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package api

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/models"
)

func TestSearchProducts(t *testing.T) {
	s := newTestServer(t, true)

	tests := []struct {
		name         string
		path         string
		wantNames    []string
		wantFallback bool
	}{
		{
			name:      "text match",
			path:      "/api/v1/products/search?q=shampoo",
			wantNames: []string{"Gentle Shampoo", "Volume Shampoo"},
		},
		{
			name:      "brand filter",
			path:      "/api/v1/products/search?brand=glam,dewy&min_rating=4",
			wantNames: []string{"Face Cream", "Nail Polish", "Body Lotion"},
		},
		{
			name:      "category and limit",
			path:      "/api/v1/products/search?category=skin&n=1",
			wantNames: []string{"Face Cream"},
		},
		{
			name:      "price sort keeps every match",
			path:      "/api/v1/products/search?q=shampoo&sort=price_asc",
			wantNames: []string{"Gentle Shampoo", "Volume Shampoo"},
		},
		{
			name:         "no match falls back to recommendations",
			path:         "/api/v1/products/search?q=zzz&user_id=1",
			wantNames:    []string{"Nail Polish"},
			wantFallback: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := s.get(t, tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
			}
			res := decodeData[models.SearchResult](t, env)
			if res.Fallback != tt.wantFallback {
				t.Errorf("fallback = %v, want %v", res.Fallback, tt.wantFallback)
			}
			if tt.wantFallback {
				for _, name := range tt.wantNames {
					if !containsName(res.Items, name) {
						t.Errorf("items = %v, want to contain %s", itemNames(res.Items), name)
					}
				}
				return
			}
			if res.Count != len(tt.wantNames) {
				t.Fatalf("items = %v, want %v", itemNames(res.Items), tt.wantNames)
			}
			for _, name := range tt.wantNames {
				if !containsName(res.Items, name) {
					t.Errorf("items = %v, missing %s", itemNames(res.Items), name)
				}
			}
			for _, item := range res.Items {
				if item.UserID != 0 {
					t.Errorf("search row %s has user id %d, want 0", item.ProductName, item.UserID)
				}
			}
		})
	}
}

func TestSearchProducts_Deals(t *testing.T) {
	s := newTestServer(t, true)
	table := catalog.NewTable([]catalog.Record{
		{UserID: 1, ProductID: "1", ProductName: "Big Palette", Rating: 5, Price: 80},
		{UserID: 1, ProductID: "2", ProductName: "Lip Balm", Rating: 4, Price: 6},
		{UserID: 2, ProductID: "3", ProductName: "Travel Shampoo", Rating: 4, Price: 4},
		{UserID: 2, ProductID: "4", ProductName: "Cotton Pads", Rating: 3, Price: 2},
	}, nil)
	s.holder.Swap(table, "test")

	_, env := s.get(t, "/api/v1/products/search?max_price=50&sort=deals")
	res := decodeData[models.SearchResult](t, env)
	want := []string{"Travel Shampoo", "Lip Balm", "Cotton Pads"}
	if got := itemNames(res.Items); !reflect.DeepEqual(got, want) {
		t.Errorf("deals = %v, want %v", got, want)
	}
	if res.Fallback {
		t.Error("deals listing should not fall back")
	}
}

func TestSearchProducts_EmptyQueryNoFallback(t *testing.T) {
	s := newTestServer(t, true)

	_, env := s.get(t, "/api/v1/products/search?brand=nobody")
	res := decodeData[models.SearchResult](t, env)
	if res.Count != 0 || res.Fallback || res.Items == nil {
		t.Errorf("got %+v, want empty non-fallback result", res)
	}
}

func TestSearchProducts_Validation(t *testing.T) {
	s := newTestServer(t, true)

	tests := []struct {
		name     string
		path     string
		wantCode string
	}{
		{"bad sort", "/api/v1/products/search?sort=random", ErrCodeValidation},
		{"rating too high", "/api/v1/products/search?min_rating=6", ErrCodeValidation},
		{"rating not a number", "/api/v1/products/search?min_rating=high", ErrCodeInvalidParameter},
		{"negative user", "/api/v1/products/search?user_id=-1", ErrCodeValidation},
		{"negative max price", "/api/v1/products/search?max_price=-5", ErrCodeValidation},
		{"max price not a number", "/api/v1/products/search?max_price=cheap", ErrCodeInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := s.get(t, tt.path)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestUserHistory(t *testing.T) {
	s := newTestServer(t, true)

	_, env := s.get(t, "/api/v1/users/2/history?n=2")
	res := decodeData[models.UserHistoryResult](t, env)
	if res.UserID != 2 || res.Count != 2 {
		t.Fatalf("got %+v, want 2 items for user 2", res)
	}
	// Most recent rating first.
	if res.Items[0].ProductName != "Nail Polish" {
		t.Errorf("first = %s, want Nail Polish", res.Items[0].ProductName)
	}

	_, env = s.get(t, "/api/v1/users/77/history")
	if res := decodeData[models.UserHistoryResult](t, env); res.Count != 0 {
		t.Errorf("unknown user count = %d, want 0", res.Count)
	}

	rec, env := s.get(t, "/api/v1/users/me/history")
	if rec.Code != http.StatusBadRequest || env.Error.Code != ErrCodeInvalidParameter {
		t.Errorf("got %d %+v, want 400 %s", rec.Code, env.Error, ErrCodeInvalidParameter)
	}
}
