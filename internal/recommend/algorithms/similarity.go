// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package algorithms

import "math"

// Cosine computes the cosine similarity of two equal-length dense vectors.
// Mismatched lengths, empty vectors, and zero vectors yield 0.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SparseVector maps a term to its weight.
type SparseVector map[string]float64

// Norm returns the Euclidean norm of v.
func (v SparseVector) Norm() float64 {
	var sum float64
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// SparseCosine computes cosine similarity of two sparse vectors.
func SparseCosine(a, b SparseVector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			dot += wa * wb
		}
	}
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (na * nb)
}

// NormalizeScores rescales scores in place to [0, 1] with min-max
// normalisation. When every score is equal each becomes 1, so a list with
// a single candidate keeps full weight.
func NormalizeScores[K comparable](scores map[K]float64) map[K]float64 {
	if len(scores) == 0 {
		return scores
	}

	minScore, maxScore := math.Inf(1), math.Inf(-1)
	for _, s := range scores {
		minScore = math.Min(minScore, s)
		maxScore = math.Max(maxScore, s)
	}

	span := maxScore - minScore
	for k, s := range scores {
		if span == 0 {
			scores[k] = 1
			continue
		}
		scores[k] = (s - minScore) / span
	}
	return scores
}
