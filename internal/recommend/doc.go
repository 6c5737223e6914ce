// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

// Package recommend implements the product recommendation engines.
//
// # Engines
//
//   - TopRated: popularity baseline, mean rating per product
//   - SimilarItems: content-based, TF-IDF over category/brand/name text
//   - RecommendForUser: user-based collaborative filtering
//   - SimilarByPurchase: item-based collaborative filtering
//   - Hybrid: content plus collaborative, concatenated or score-weighted
//
// Every engine is a pure function of a *catalog.Table. Nothing is trained or
// cached between calls, so a table swapped in by a catalog reload is picked
// up by the next request. A lookup that finds nothing returns an empty
// slice, never an error.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	recs := engine.Hybrid(ctx, table, "Nail Polish", 42, 10)
//
// # Thread Safety
//
// Engines only read the table. Any number of goroutines may call them
// concurrently as long as the table is not mutated, which catalog.Table
// does not allow.
package recommend
