// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package recommend

import "github.com/tomtom215/shopwise/internal/catalog"

// Algorithm names, used as metric labels and API identifiers.
const (
	AlgorithmTopRated = "top_rated"
	AlgorithmContent  = "content"
	AlgorithmUserCF   = "user_cf"
	AlgorithmItemCF   = "item_cf"
	AlgorithmHybrid   = "hybrid"
)

// AlgorithmInfo describes an available algorithm.
type AlgorithmInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Input       string `json:"input"`
	Personal    bool   `json:"personal"`
}

var algorithmInfo = []AlgorithmInfo{
	{
		Name:        AlgorithmTopRated,
		DisplayName: "Top Rated",
		Description: "Products ranked by mean rating, ties broken by review count.",
		Input:       "none",
	},
	{
		Name:        AlgorithmContent,
		DisplayName: "Similar Items",
		Description: "Products whose category and brand text is closest to a given product (TF-IDF cosine).",
		Input:       "item",
	},
	{
		Name:        AlgorithmUserCF,
		DisplayName: "Users Like You",
		Description: "Products rated highly by the users whose ratings most resemble yours.",
		Input:       "user_id",
		Personal:    true,
	},
	{
		Name:        AlgorithmItemCF,
		DisplayName: "Bought Together",
		Description: "Products rated by the same users as a given product.",
		Input:       "product_id",
	},
	{
		Name:        AlgorithmHybrid,
		DisplayName: "Hybrid",
		Description: "Similar items merged with user-based recommendations.",
		Input:       "item, user_id",
		Personal:    true,
	},
}

// Algorithms returns descriptions of every available algorithm.
func Algorithms() []AlgorithmInfo {
	out := make([]AlgorithmInfo, len(algorithmInfo))
	copy(out, algorithmInfo)
	return out
}

// scored pairs an output row with the score it was ranked by.
type scored struct {
	record catalog.Record
	score  float64
}

func records(items []scored) []catalog.Record {
	out := make([]catalog.Record, len(items))
	for i := range items {
		out[i] = items[i].record
	}
	return out
}

// productRows holds one representative row per product, in first-seen order.
// The row is the product's first record with UserID cleared and Rating set
// to the product's mean rating, so every engine emits identical rows for the
// same product.
type productRows struct {
	keys []string
	rows map[string]catalog.Record
}

func (p *productRows) get(key string) (catalog.Record, bool) {
	r, ok := p.rows[key]
	return r, ok
}

// buildProductRows groups t by key. Rows whose key is empty are skipped.
func buildProductRows(t *catalog.Table, key func(*catalog.Record) string) *productRows {
	rows := t.Rows()
	p := &productRows{rows: make(map[string]catalog.Record)}
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for i := range rows {
		k := key(&rows[i])
		if k == "" {
			continue
		}
		if _, seen := p.rows[k]; !seen {
			p.keys = append(p.keys, k)
			p.rows[k] = rows[i]
		}
		sums[k] += rows[i].Rating
		counts[k]++
	}

	for _, k := range p.keys {
		r := p.rows[k]
		r.UserID = 0
		r.Rating = sums[k] / float64(counts[k])
		p.rows[k] = r
	}
	return p
}

func byName(r *catalog.Record) string { return r.ProductName }

func byID(r *catalog.Record) string { return r.ProductID }
