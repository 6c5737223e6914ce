// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package algorithms

import (
	"math"
	"strings"
	"unicode"
)

// stopWords are dropped during tokenization. Product titles repeat these
// heavily and they carry no similarity signal.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "the": {}, "of": {}, "for": {},
	"with": {}, "in": {}, "on": {}, "to": {}, "by": {}, "or": {},
}

// Tokenize lower-cases text, splits it on anything that is not a letter or
// digit, and drops stop words and single-rune tokens.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < 2 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// TFIDF is a fitted term-frequency / inverse-document-frequency model over
// a fixed corpus. It is built per call and never updated.
//
// Weights use raw term counts and smoothed idf, ln((1+N)/(1+df)) + 1, and
// each document vector is l2-normalised so cosine reduces to a dot product.
type TFIDF struct {
	idf     map[string]float64
	vectors []SparseVector
}

// FitTFIDF tokenizes docs and builds one vector per document, in order.
// Documents with no tokens get an empty vector.
func FitTFIDF(docs []string) *TFIDF {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tc := make(map[string]int)
		for _, tok := range Tokenize(doc) {
			tc[tok]++
		}
		for term := range tc {
			df[term]++
		}
		counts[i] = tc
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for term, d := range df {
		idf[term] = math.Log((1+n)/(1+float64(d))) + 1
	}

	vectors := make([]SparseVector, len(docs))
	for i, tc := range counts {
		vec := make(SparseVector, len(tc))
		for term, c := range tc {
			vec[term] = float64(c) * idf[term]
		}
		if norm := vec.Norm(); norm > 0 {
			for term := range vec {
				vec[term] /= norm
			}
		}
		vectors[i] = vec
	}

	return &TFIDF{idf: idf, vectors: vectors}
}

// Similarities returns the cosine similarity between document i and every
// document, including i itself.
func (t *TFIDF) Similarities(i int) []float64 {
	out := make([]float64, len(t.vectors))
	for j := range t.vectors {
		out[j] = SparseCosine(t.vectors[i], t.vectors[j])
	}
	return out
}
