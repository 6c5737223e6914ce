// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package recommend

import (
	"sort"

	"github.com/tomtom215/shopwise/internal/catalog"
)

// topRatedKey is the grouping identity for TopRated. Rows of one product
// that disagree on any of these fields form separate groups.
type topRatedKey struct {
	productID   string
	productName string
	reviewCount int
	brand       string
	imageURL    string
}

type ratingGroup struct {
	first catalog.Record
	sum   float64
	count int
	order int
}

func (g *ratingGroup) mean() float64 { return g.sum / float64(g.count) }

// TopRated returns the n highest rated products by mean rating. Ties go to
// the higher ReviewCount, then to the product seen first.
func TopRated(t *catalog.Table, n int) []catalog.Record {
	if n <= 0 || t.Len() == 0 {
		return []catalog.Record{}
	}

	rows := t.Rows()
	groups := make(map[topRatedKey]*ratingGroup)
	ordered := make([]*ratingGroup, 0)
	for i := range rows {
		r := &rows[i]
		key := topRatedKey{
			productID:   r.ProductID,
			productName: r.ProductName,
			reviewCount: r.ReviewCount,
			brand:       r.Brand,
			imageURL:    r.ImageURL,
		}
		g, ok := groups[key]
		if !ok {
			g = &ratingGroup{first: *r, order: len(ordered)}
			groups[key] = g
			ordered = append(ordered, g)
		}
		g.sum += r.Rating
		g.count++
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if ma, mb := a.mean(), b.mean(); ma != mb {
			return ma > mb
		}
		if a.first.ReviewCount != b.first.ReviewCount {
			return a.first.ReviewCount > b.first.ReviewCount
		}
		return a.order < b.order
	})

	if len(ordered) > n {
		ordered = ordered[:n]
	}
	out := make([]catalog.Record, len(ordered))
	for i, g := range ordered {
		rec := g.first
		rec.UserID = 0
		rec.Rating = g.mean()
		out[i] = rec
	}
	return out
}
