// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package catalog

import (
	"sort"
	"strconv"
	"strings"
)

type productKey struct {
	name  string
	brand string
}

func cleanKey(r *Record) productKey {
	return productKey{
		name:  strings.ToLower(strings.TrimSpace(r.ProductName)),
		brand: strings.ToLower(strings.TrimSpace(r.Brand)),
	}
}

// Reindex assigns fresh sequential product ids "1".."N" to the distinct
// products in t, where a product is identified by its lower-cased, trimmed
// (name, brand). Ids are assigned in (name, brand) order.
//
// The returned mapping sends each old ProductID to the new id of the first
// row that carried it, which keeps references such as wishlists resolvable
// when one old id was reused for several products. Rows without an old id
// are not represented in the mapping.
func Reindex(t *Table) (*Table, map[string]string) {
	rows := t.Rows()
	seen := make(map[productKey]struct{})
	keys := make([]productKey, 0)
	for i := range rows {
		k := cleanKey(&rows[i])
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].name != keys[j].name {
			return keys[i].name < keys[j].name
		}
		return keys[i].brand < keys[j].brand
	})

	ids := make(map[productKey]string, len(keys))
	for i, k := range keys {
		ids[k] = strconv.Itoa(i + 1)
	}

	mapping := make(map[string]string)
	out := make([]Record, len(rows))
	for i := range rows {
		rec := rows[i]
		newID := ids[cleanKey(&rec)]
		if rec.ProductID != "" {
			if _, ok := mapping[rec.ProductID]; !ok {
				mapping[rec.ProductID] = newID
			}
		}
		rec.ProductID = newID
		out[i] = rec
	}

	columns := t.Columns()
	if !t.HasColumn(ColProductID) {
		columns = withColumn(columns, ColProductID)
	}
	return &Table{records: out, columns: columns, skipped: t.Skipped()}, mapping
}

// withColumn inserts col into columns keeping CanonicalColumns order.
func withColumn(columns []string, col string) []string {
	has := make(map[string]bool, len(columns)+1)
	for _, c := range columns {
		has[c] = true
	}
	has[col] = true
	out := make([]string, 0, len(has))
	for _, c := range CanonicalColumns {
		if has[c] {
			out = append(out, c)
		}
	}
	return out
}
