// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package algorithms

import "sort"

// Neighbor is a row index paired with its similarity to a target row.
type Neighbor struct {
	Index      int
	Similarity float64
}

// SimilarRows computes the cosine similarity between row target and every
// other row of m, keeping rows whose similarity is strictly greater than
// minSimilarity. Results are sorted by similarity descending, ties by row
// index ascending. k > 0 caps the result length.
func SimilarRows[R, C comparable](m *RatingMatrix[R, C], target int, k int, minSimilarity float64) []Neighbor {
	if target < 0 || target >= m.Rows() {
		return nil
	}

	vec := m.Row(target)
	neighbors := make([]Neighbor, 0, m.Rows())
	for i := 0; i < m.Rows(); i++ {
		if i == target {
			continue
		}
		sim := Cosine(vec, m.Row(i))
		if sim > minSimilarity {
			neighbors = append(neighbors, Neighbor{Index: i, Similarity: sim})
		}
	}

	SortNeighbors(neighbors)
	if k > 0 && len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors
}

// SortNeighbors orders by similarity descending, then index ascending.
func SortNeighbors(neighbors []Neighbor) {
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].Similarity != neighbors[j].Similarity {
			return neighbors[i].Similarity > neighbors[j].Similarity
		}
		return neighbors[i].Index < neighbors[j].Index
	})
}
