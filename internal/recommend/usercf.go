// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package recommend

import (
	"sort"

	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/recommend/algorithms"
)

// userItemMatrix builds the user x product-name matrix. Duplicate
// (user, product) pairs are averaged.
func userItemMatrix(t *catalog.Table) *algorithms.RatingMatrix[int, string] {
	rows := t.Rows()
	return algorithms.BuildRatingMatrix(len(rows), func(i int) (int, string, float64) {
		return rows[i].UserID, rows[i].ProductName, rows[i].Rating
	})
}

// RecommendForUser returns up to n products the user has not rated, taken
// from what the user's nearest neighbours rated highly. Products more
// neighbours liked rank first, then higher average neighbour rating, then
// first-seen order. An unknown user yields an empty result.
func RecommendForUser(t *catalog.Table, userID int, n int, opts CFOptions) []catalog.Record {
	return records(recommendForUser(t, userID, n, opts))
}

type vote struct {
	col   int
	count int
	sum   float64
}

func (v *vote) avg() float64 { return v.sum / float64(v.count) }

func recommendForUser(t *catalog.Table, userID int, n int, opts CFOptions) []scored {
	if n <= 0 || t.Len() == 0 {
		return nil
	}

	m := userItemMatrix(t)
	target, ok := m.RowIndex(userID)
	if !ok || m.Rows() < 2 {
		return nil
	}

	neighbors := algorithms.SimilarRows(m, target, opts.Neighbors, 0)
	if len(neighbors) == 0 {
		return nil
	}

	votes := make([]vote, 0)
	for j := 0; j < m.Cols(); j++ {
		if m.Rated(target, j) {
			continue
		}
		v := vote{col: j}
		for _, nb := range neighbors {
			if m.Rated(nb.Index, j) && m.Value(nb.Index, j) >= opts.HighRating {
				v.count++
				v.sum += m.Value(nb.Index, j)
			}
		}
		if v.count > 0 {
			votes = append(votes, v)
		}
	}

	sort.SliceStable(votes, func(i, j int) bool {
		if votes[i].count != votes[j].count {
			return votes[i].count > votes[j].count
		}
		if ai, aj := votes[i].avg(), votes[j].avg(); ai != aj {
			return ai > aj
		}
		return votes[i].col < votes[j].col
	})
	if len(votes) > n {
		votes = votes[:n]
	}

	products := buildProductRows(t, byName)
	out := make([]scored, 0, len(votes))
	for _, v := range votes {
		rec, ok := products.get(m.ColKey(v.col))
		if !ok {
			continue
		}
		out = append(out, scored{record: rec, score: voteScore(&v)})
	}
	return out
}

// voteScore folds (count, avg) into one number that sorts the same way:
// avg/10 is below 1, so it never outweighs a whole extra vote.
func voteScore(v *vote) float64 {
	return float64(v.count) + v.avg()/(catalog.MaxRating*2)
}
