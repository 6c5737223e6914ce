// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package recommend

import (
	"sort"
	"strings"

	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/recommend/algorithms"
)

// SimilarItems returns up to n products whose descriptive text is most
// similar to itemName. Every other product is a candidate, so products
// sharing no terms with the item still fill the tail in first-seen order.
// The item is matched exactly after trimming surrounding whitespace; an
// unknown item yields an empty result.
func SimilarItems(t *catalog.Table, itemName string, n int, opts ContentOptions) []catalog.Record {
	return records(similarItems(t, itemName, n, opts))
}

func similarItems(t *catalog.Table, itemName string, n int, opts ContentOptions) []scored {
	name := strings.TrimSpace(itemName)
	if n <= 0 || name == "" || t.Len() == 0 {
		return nil
	}

	products := buildProductRows(t, byName)
	target := -1
	docs := make([]string, len(products.keys))
	for i, key := range products.keys {
		if key == name {
			target = i
		}
		rec := products.rows[key]
		docs[i] = featureText(&rec, opts)
	}
	if target < 0 {
		return nil
	}

	model := algorithms.FitTFIDF(docs)
	sims := model.Similarities(target)

	candidates := make([]algorithms.Neighbor, 0, len(sims))
	for i, s := range sims {
		if i == target {
			continue
		}
		candidates = append(candidates, algorithms.Neighbor{Index: i, Similarity: s})
	}
	algorithms.SortNeighbors(candidates)
	if len(candidates) > n {
		candidates = candidates[:n]
	}

	out := make([]scored, len(candidates))
	for i, c := range candidates {
		out[i] = scored{record: products.rows[products.keys[c.Index]], score: c.Similarity}
	}
	return out
}

// featureText builds the document for one product. Rating is never part of it.
func featureText(r *catalog.Record, opts ContentOptions) string {
	parts := []string{r.Category}
	if opts.IncludeBrand {
		parts = append(parts, r.Brand)
	}
	if opts.IncludeName {
		parts = append(parts, r.ProductName)
	}
	return strings.Join(parts, " ")
}

// sortScored orders by score descending, keeping input order for ties.
func sortScored(items []scored) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})
}
