// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package recommend

import (
	"strings"

	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/recommend/algorithms"
)

// SimilarByPurchase returns up to n products rated by the same users as
// productID, ranked by cosine similarity of their rating columns. Rows
// without a ProductID take no part. An unknown product, or one that shares
// no raters with any other, yields an empty result.
func SimilarByPurchase(t *catalog.Table, productID string, n int) []catalog.Record {
	return records(similarByPurchase(t, productID, n))
}

func similarByPurchase(t *catalog.Table, productID string, n int) []scored {
	id := strings.TrimSpace(productID)
	if n <= 0 || id == "" || t.Len() == 0 {
		return nil
	}

	rows := t.Rows()
	eligible := make([]int, 0, len(rows))
	for i := range rows {
		if rows[i].ProductID != "" {
			eligible = append(eligible, i)
		}
	}

	userItem := algorithms.BuildRatingMatrix(len(eligible), func(i int) (int, string, float64) {
		r := &rows[eligible[i]]
		return r.UserID, r.ProductID, r.Rating
	})
	itemUser := userItem.Transpose()

	target, ok := itemUser.RowIndex(id)
	if !ok {
		return nil
	}

	neighbors := algorithms.SimilarRows(itemUser, target, n, 0)
	products := buildProductRows(t, byID)
	out := make([]scored, 0, len(neighbors))
	for _, nb := range neighbors {
		rec, ok := products.get(itemUser.RowKey(nb.Index))
		if !ok {
			continue
		}
		out = append(out, scored{record: rec, score: nb.Similarity})
	}
	return out
}
