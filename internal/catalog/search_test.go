// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package catalog

import (
	"testing"
)

func storefront() *Table {
	return NewTable([]Record{
		{UserID: 1, ProductID: "1", ProductName: "OPI Nail Lacquer", Brand: "OPI", Category: "Nail Polish", Rating: 5, Price: 12},
		{UserID: 2, ProductID: "1", ProductName: "OPI Nail Lacquer", Brand: "OPI", Category: "Nail Polish", Rating: 3, Price: 12},
		{UserID: 1, ProductID: "2", ProductName: "Essie Nail Color", Brand: "Essie", Category: "Nail Polish", Rating: 4.5, Price: 9},
		{UserID: 3, ProductID: "3", ProductName: "Herbal Shampoo", Brand: "Herbal", Category: "Hair Care", Rating: 2, Price: 7},
		{UserID: 1, ProductID: "4", ProductName: "Matte Lipstick", Brand: "OPI", Category: "Makeup Lips", Rating: 4, Price: 20},
	}, nil)
}

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ProductName
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query SearchQuery
		want  []string
	}{
		{
			name:  "substring case insensitive",
			query: SearchQuery{Text: "nail"},
			want:  []string{"Essie Nail Color", "OPI Nail Lacquer"},
		},
		{
			name:  "brand filter",
			query: SearchQuery{Brands: []string{"opi"}},
			want:  []string{"OPI Nail Lacquer", "Matte Lipstick"},
		},
		{
			name:  "category filter",
			query: SearchQuery{Category: "hair"},
			want:  []string{"Herbal Shampoo"},
		},
		{
			name:  "min rating uses product mean",
			query: SearchQuery{MinRating: 4.2},
			want:  []string{"Essie Nail Color"},
		},
		{
			name:  "price ascending",
			query: SearchQuery{Sort: SortPriceAsc},
			want:  []string{"Herbal Shampoo", "Essie Nail Color", "OPI Nail Lacquer", "Matte Lipstick"},
		},
		{
			name:  "price descending with limit",
			query: SearchQuery{Sort: SortPriceDesc, Limit: 2},
			want:  []string{"Matte Lipstick", "OPI Nail Lacquer"},
		},
		{
			name:  "no match",
			query: SearchQuery{Text: "perfume"},
			want:  []string{},
		},
		{
			name:  "deals under a price",
			query: SearchQuery{MaxPrice: 15, Sort: SortDeals},
			want:  []string{"Essie Nail Color", "OPI Nail Lacquer", "Herbal Shampoo"},
		},
		{
			name:  "deals break rating ties by price",
			query: SearchQuery{MaxPrice: 25, Sort: SortDeals},
			want:  []string{"Essie Nail Color", "OPI Nail Lacquer", "Matte Lipstick", "Herbal Shampoo"},
		},
		{
			name:  "max price is exclusive",
			query: SearchQuery{MaxPrice: 12, Sort: SortPriceAsc},
			want:  []string{"Herbal Shampoo", "Essie Nail Color"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := names(Search(storefront(), tt.query))
			if !equalStrings(got, tt.want) {
				t.Errorf("Search(%+v) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestSearch_AggregatesRating(t *testing.T) {
	t.Parallel()

	got := Search(storefront(), SearchQuery{Text: "OPI Nail"})
	if len(got) != 1 {
		t.Fatalf("got %d results, want 1", len(got))
	}
	if got[0].Rating != 4 {
		t.Errorf("Rating = %v, want mean 4", got[0].Rating)
	}
	if got[0].UserID != 0 {
		t.Errorf("UserID = %d, want 0 for product rows", got[0].UserID)
	}
}

func TestUserHistory(t *testing.T) {
	t.Parallel()

	table := NewTable([]Record{
		{UserID: 1, ProductID: "1", ProductName: "A"},
		{UserID: 1, ProductID: "2", ProductName: "B"},
		{UserID: 2, ProductID: "3", ProductName: "C"},
		{UserID: 1, ProductID: "1", ProductName: "A"},
		{UserID: 1, ProductID: "", ProductName: "D"},
	}, nil)

	tests := []struct {
		name   string
		userID int
		n      int
		want   []string
	}{
		{name: "most recent first and distinct", userID: 1, n: 10, want: []string{"D", "A", "B"}},
		{name: "bounded", userID: 1, n: 2, want: []string{"D", "A"}},
		{name: "unknown user", userID: 9, n: 5, want: []string{}},
		{name: "non-positive n", userID: 1, n: 0, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := names(UserHistory(table, tt.userID, tt.n))
			if !equalStrings(got, tt.want) {
				t.Errorf("UserHistory(%d, %d) = %v, want %v", tt.userID, tt.n, got, tt.want)
			}
		})
	}
}

func TestReindex(t *testing.T) {
	t.Parallel()

	table := NewTable([]Record{
		{UserID: 1, ProductID: "100", ProductName: "Soap", Brand: "Dove"},
		{UserID: 2, ProductID: "100", ProductName: "Shampoo", Brand: "Dove"},
		{UserID: 3, ProductID: "7", ProductName: " soap ", Brand: "DOVE"},
		{UserID: 4, ProductID: "", ProductName: "Argan Oil", Brand: ""},
	}, []string{ColUserID, ColProductName, ColBrand})

	out, mapping := Reindex(table)

	wantIDs := []string{"3", "2", "3", "1"}
	for i, r := range out.Rows() {
		if r.ProductID != wantIDs[i] {
			t.Errorf("row %d ProductID = %q, want %q", i, r.ProductID, wantIDs[i])
		}
	}
	if mapping["100"] != "3" || mapping["7"] != "3" {
		t.Errorf("mapping = %v", mapping)
	}
	if _, ok := mapping[""]; ok {
		t.Error("mapping should not contain the empty id")
	}
	if !out.HasColumn(ColProductID) {
		t.Error("reindexed table should report a ProductID column")
	}
	if table.Rows()[0].ProductID != "100" {
		t.Error("Reindex mutated its input")
	}
}

func TestTableStats(t *testing.T) {
	t.Parallel()

	s := storefront().Stats()
	if s.Rows != 5 || s.Users != 3 || s.Products != 4 {
		t.Errorf("Stats() = %+v", s)
	}
	var nilTable *Table
	if nilTable.Len() != 0 || nilTable.HasUser(1) {
		t.Error("nil table should behave as empty")
	}
}

func TestSearch_MaxPriceSkipsUnpriced(t *testing.T) {
	t.Parallel()

	table := NewTable([]Record{
		{UserID: 1, ProductID: "1", ProductName: "Sample Sachet", Rating: 5},
		{UserID: 1, ProductID: "2", ProductName: "Hand Cream", Rating: 4, Price: 8},
	}, nil)

	got := names(Search(table, SearchQuery{MaxPrice: 50, Sort: SortDeals}))
	if want := []string{"Hand Cream"}; !equalStrings(got, want) {
		t.Errorf("Search() = %v, want %v", got, want)
	}
	if got := Search(table, SearchQuery{}); len(got) != 2 {
		t.Errorf("without max price got %d products, want 2", len(got))
	}
}
