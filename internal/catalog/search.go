// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package catalog

import (
	"sort"
	"strings"
)

// Search sort orders.
const (
	SortRelevance  = "relevance"
	SortRatingDesc = "rating_desc"
	SortPriceAsc   = "price_asc"
	SortPriceDesc  = "price_desc"
	// SortDeals orders by mean rating descending, then price ascending.
	SortDeals = "deals"
)

// SearchQuery filters the storefront product listing.
type SearchQuery struct {
	// Text matches product names case-insensitively as a substring. Empty matches all.
	Text string
	// Brands keeps only these brands (case-insensitive). Empty keeps all.
	Brands []string
	// Category matches the category case-insensitively as a substring.
	Category string
	// MinRating drops products whose mean rating is below it.
	MinRating float64
	// MaxPrice keeps only products priced below it. Products without a
	// price never match. Zero disables the filter.
	MaxPrice float64
	// Sort is one of the Sort* constants; "" means SortRelevance.
	Sort string
	// Limit caps the result; <= 0 means no cap.
	Limit int
}

// Search returns one row per matching product (ProductID, ProductName) with
// the product's mean rating, UserID zeroed, ordered by q.Sort. Relevance
// ordering is mean rating descending; ties keep first-seen order.
func Search(t *Table, q SearchQuery) []Record {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	category := strings.ToLower(strings.TrimSpace(q.Category))
	brands := make(map[string]bool, len(q.Brands))
	for _, b := range q.Brands {
		if b = strings.ToLower(strings.TrimSpace(b)); b != "" {
			brands[b] = true
		}
	}

	type group struct {
		rec   Record
		sum   float64
		count int
	}
	type key struct{ id, name string }

	var order []key
	groups := make(map[key]*group)
	for _, r := range t.Rows() {
		if text != "" && !strings.Contains(strings.ToLower(r.ProductName), text) {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(r.Category), category) {
			continue
		}
		if len(brands) > 0 && !brands[strings.ToLower(r.Brand)] {
			continue
		}
		if q.MaxPrice > 0 && (r.Price <= 0 || r.Price >= q.MaxPrice) {
			continue
		}
		k := key{r.ProductID, r.ProductName}
		g, ok := groups[k]
		if !ok {
			g = &group{rec: r}
			g.rec.UserID = 0
			groups[k] = g
			order = append(order, k)
		}
		g.sum += r.Rating
		g.count++
	}

	out := make([]Record, 0, len(order))
	for _, k := range order {
		g := groups[k]
		g.rec.Rating = g.sum / float64(g.count)
		if g.rec.Rating < q.MinRating {
			continue
		}
		out = append(out, g.rec)
	}

	switch q.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortDeals:
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Rating != out[j].Rating {
				return out[i].Rating > out[j].Rating
			}
			return out[i].Price < out[j].Price
		})
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

// UserHistory returns up to n distinct products rated by userID, most recent
// (latest row) first. Products are distinguished by ProductID, or by name
// when the id is empty. n <= 0 or an unknown user yields an empty result.
func UserHistory(t *Table, userID, n int) []Record {
	if n <= 0 {
		return []Record{}
	}
	rows := t.Rows()
	seen := make(map[string]bool)
	out := make([]Record, 0, n)
	for i := len(rows) - 1; i >= 0 && len(out) < n; i-- {
		r := rows[i]
		if r.UserID != userID {
			continue
		}
		key := "id:" + r.ProductID
		if r.ProductID == "" {
			key = "name:" + r.ProductName
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}
