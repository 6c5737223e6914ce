// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package catalog

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// RawTable is loosely-typed tabular input as returned by a loader.
// Rows may be shorter than Columns; missing cells read as "".
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// FromMaps builds a RawTable from document-style rows. Columns are the union
// of all keys: the first row's keys sorted, then later new keys sorted.
// Values are rendered with FormatCell.
func FromMaps(docs []map[string]any) RawTable {
	var columns []string
	index := make(map[string]int)
	for _, doc := range docs {
		var fresh []string
		for k := range doc {
			if _, ok := index[k]; !ok {
				fresh = append(fresh, k)
			}
		}
		sort.Strings(fresh)
		for _, k := range fresh {
			index[k] = len(columns)
			columns = append(columns, k)
		}
	}

	rows := make([][]string, len(docs))
	for i, doc := range docs {
		row := make([]string, len(columns))
		for k, v := range doc {
			row[index[k]] = FormatCell(v)
		}
		rows[i] = row
	}
	return RawTable{Columns: columns, Rows: rows}
}

// FormatCell renders a loosely-typed cell as text. nil becomes "" and byte
// slices are read as UTF-8.
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// columnAliases maps folded source header names to canonical columns.
// Keys are compared after foldHeader.
var columnAliases = map[string]string{
	"id":           ColUserID,
	"userid":       ColUserID,
	"user":         ColUserID,
	"customerid":   ColUserID,
	"prodid":       ColProductID,
	"productid":    ColProductID,
	"itemid":       ColProductID,
	"sku":          ColProductID,
	"name":         ColProductName,
	"productname":  ColProductName,
	"title":        ColProductName,
	"brand":        ColBrand,
	"manufacturer": ColBrand,
	"category":     ColCategory,
	"categories":   ColCategory,
	"tags":         ColCategory,
	"rating":       ColRating,
	"score":        ColRating,
	"stars":        ColRating,
	"reviewcount":  ColReviewCount,
	"reviews":      ColReviewCount,
	"numreviews":   ColReviewCount,
	"imageurl":     ColImageURL,
	"image":        ColImageURL,
	"img":          ColImageURL,
	"price":        ColPrice,
	"cost":         ColPrice,
}

// foldHeader lower-cases a header and strips spaces, underscores, and hyphens.
func foldHeader(h string) string {
	var b strings.Builder
	b.Grow(len(h))
	for _, r := range strings.ToLower(strings.TrimSpace(h)) {
		switch r {
		case ' ', '_', '-', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// resolveColumns maps canonical column -> source index. The first matching
// source column wins.
func resolveColumns(headers []string) map[string]int {
	resolved := make(map[string]int)
	for i, h := range headers {
		canonical, ok := columnAliases[foldHeader(h)]
		if !ok {
			continue
		}
		if _, seen := resolved[canonical]; !seen {
			resolved[canonical] = i
		}
	}
	return resolved
}

// NormalizeOptions tunes Normalize.
type NormalizeOptions struct {
	// PlaceholderImages replaces empty or placeholder image URLs with a
	// deterministic stock image chosen from the product name.
	PlaceholderImages bool
}

// Normalize maps raw into the canonical schema using default options.
func Normalize(raw RawTable) (*Table, error) {
	return NormalizeWithOptions(raw, NormalizeOptions{})
}

// NormalizeWithOptions maps raw into the canonical schema.
//
// Known column aliases are renamed. Ratings that fail to parse become
// MinRating and all ratings are clamped to [MinRating, MaxRating]. Missing
// Brand, Category, and ImageURL become "". Rows whose product name is blank
// are skipped and counted in Table.Skipped. A missing product name column
// yields a *SchemaError. raw is not modified.
func NormalizeWithOptions(raw RawTable, opts NormalizeOptions) (*Table, error) {
	cols := resolveColumns(raw.Columns)
	if _, ok := cols[ColProductName]; !ok {
		return nil, &SchemaError{Missing: []string{ColProductName}, Columns: append([]string(nil), raw.Columns...)}
	}

	present := make([]string, 0, len(cols))
	for _, c := range CanonicalColumns {
		if _, ok := cols[c]; ok {
			present = append(present, c)
		}
	}

	cell := func(row []string, col string) string {
		i, ok := cols[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]Record, 0, len(raw.Rows))
	skipped := 0
	for _, row := range raw.Rows {
		name := cell(row, ColProductName)
		if name == "" {
			skipped++
			continue
		}
		rec := Record{
			UserID:      parseInt(cell(row, ColUserID)),
			ProductID:   canonicalID(cell(row, ColProductID)),
			ProductName: name,
			Brand:       cell(row, ColBrand),
			Category:    cell(row, ColCategory),
			Rating:      parseRating(cell(row, ColRating)),
			ReviewCount: parseInt(cell(row, ColReviewCount)),
			ImageURL:    cell(row, ColImageURL),
			Price:       parsePrice(cell(row, ColPrice)),
		}
		if opts.PlaceholderImages && needsPlaceholder(rec.ImageURL) {
			rec.ImageURL = PlaceholderImage(rec.ProductName, rec.ProductID)
		}
		records = append(records, rec)
	}

	return &Table{records: records, columns: present, skipped: skipped}, nil
}

// parseRating coerces s to a rating. Invalid values become MinRating.
func parseRating(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return MinRating
	}
	return math.Min(MaxRating, math.Max(MinRating, v))
}

// parseInt accepts integers, integral floats ("5.0"), and thousands separators.
// Anything else is 0.
func parseInt(s string) int {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

func parsePrice(s string) float64 {
	s = strings.TrimPrefix(strings.ReplaceAll(s, ",", ""), "$")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// canonicalID turns float-rendered integer ids ("12.0") into "12".
func canonicalID(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return s
	}
	return strconv.FormatInt(int64(f), 10)
}
