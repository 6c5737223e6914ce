// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package recommend

import (
	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/recommend/algorithms"
)

// Hybrid merges SimilarItems for itemName with RecommendForUser for userID.
//
// With StrategyConcat the content results come first, then the
// collaborative ones, exact duplicate rows are dropped, and the list is cut
// to n. With StrategyWeighted each side's scores are min-max normalised,
// weighted, and summed per product before ranking. Either side coming back
// empty leaves the other side's results.
func Hybrid(t *catalog.Table, itemName string, userID int, n int, opts HybridOptions) []catalog.Record {
	if n <= 0 {
		return []catalog.Record{}
	}

	content := similarItems(t, itemName, n, opts.Content)
	collaborative := recommendForUser(t, userID, n, opts.Collaborative)

	if opts.Strategy == StrategyWeighted {
		return records(weightedMerge(content, collaborative, n, opts.Weights.Normalize()))
	}
	return concatMerge(content, collaborative, n)
}

func concatMerge(content, collaborative []scored, n int) []catalog.Record {
	out := make([]catalog.Record, 0, n)
	seen := make(map[catalog.Record]struct{}, len(content)+len(collaborative))
	for _, side := range [][]scored{content, collaborative} {
		for _, s := range side {
			if len(out) == n {
				return out
			}
			if _, dup := seen[s.record]; dup {
				continue
			}
			seen[s.record] = struct{}{}
			out = append(out, s.record)
		}
	}
	return out
}

func weightedMerge(content, collaborative []scored, n int, w HybridWeights) []scored {
	contentScores := sideScores(content)
	collabScores := sideScores(collaborative)

	merged := make([]scored, 0, len(content)+len(collaborative))
	index := make(map[string]int)
	add := func(items []scored, scores map[string]float64, weight float64) {
		for _, s := range items {
			name := s.record.ProductName
			i, ok := index[name]
			if !ok {
				i = len(merged)
				index[name] = i
				merged = append(merged, scored{record: s.record})
			}
			merged[i].score += weight * scores[name]
		}
	}
	add(content, contentScores, w.Content)
	add(collaborative, collabScores, w.Collaborative)

	sortScored(merged)
	if len(merged) > n {
		merged = merged[:n]
	}
	return merged
}

func sideScores(items []scored) map[string]float64 {
	scores := make(map[string]float64, len(items))
	for _, s := range items {
		scores[s.record.ProductName] = s.score
	}
	return algorithms.NormalizeScores(scores)
}
