// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

// Package catalog holds the canonical product-rating data model and the
// normalizer that produces it from loosely-typed tabular input.
//
// A Table is a denormalized event log: one Record per (user, product) rating
// event, so the same product appears once per rating. Anything that reports
// product-level values must group by product identity first.
//
// Tables are immutable after construction and safe for concurrent readers.
package catalog

// Canonical column names.
const (
	ColUserID      = "UserID"
	ColProductID   = "ProductID"
	ColProductName = "ProductName"
	ColBrand       = "Brand"
	ColCategory    = "Category"
	ColRating      = "Rating"
	ColReviewCount = "ReviewCount"
	ColImageURL    = "ImageURL"
	ColPrice       = "Price"
)

// CanonicalColumns lists the canonical schema in output order.
var CanonicalColumns = []string{
	ColUserID, ColProductID, ColProductName, ColBrand, ColCategory,
	ColRating, ColReviewCount, ColImageURL, ColPrice,
}

// Rating bounds. Unparseable ratings become MinRating.
const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Record is one user-product rating event.
//
// Record is comparable; two rows are exact duplicates when == holds.
type Record struct {
	UserID      int     `json:"user_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"review_count"`
	ImageURL    string  `json:"image_url"`
	Price       float64 `json:"price,omitempty"`
}

// Table is an ordered, read-only collection of Records.
type Table struct {
	records []Record
	columns []string
	skipped int
}

// NewTable builds a Table from records. The slice is copied.
// columns lists the canonical columns present in the source; nil means all.
func NewTable(records []Record, columns []string) *Table {
	if columns == nil {
		columns = CanonicalColumns
	}
	recs := make([]Record, len(records))
	copy(recs, records)
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{records: recs, columns: cols}
}

// Len returns the number of rows. A nil table has zero rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Rows returns the backing rows. Callers must not modify the returned slice.
func (t *Table) Rows() []Record {
	if t == nil {
		return nil
	}
	return t.records
}

// Columns returns the canonical columns that were present in the source.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// HasColumn reports whether the source provided the named canonical column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns() {
		if c == name {
			return true
		}
	}
	return false
}

// Skipped returns how many source rows the normalizer dropped for lacking a product name.
func (t *Table) Skipped() int {
	if t == nil {
		return 0
	}
	return t.skipped
}

// HasUser reports whether any row belongs to userID.
func (t *Table) HasUser(userID int) bool {
	for i := range t.Rows() {
		if t.records[i].UserID == userID {
			return true
		}
	}
	return false
}

// Stats summarizes a table for health reporting.
type Stats struct {
	Rows     int `json:"rows"`
	Users    int `json:"users"`
	Products int `json:"products"`
	Skipped  int `json:"skipped"`
}

// Stats counts rows, distinct users, and distinct product names.
func (t *Table) Stats() Stats {
	users := make(map[int]struct{})
	products := make(map[string]struct{})
	for _, r := range t.Rows() {
		users[r.UserID] = struct{}{}
		products[r.ProductName] = struct{}{}
	}
	return Stats{Rows: t.Len(), Users: len(users), Products: len(products), Skipped: t.Skipped()}
}
