// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

// Package algorithms holds the numeric building blocks behind the
// recommendation engines: the dense rating matrix, vector similarity,
// neighbour selection, and the TF-IDF vectorizer.
//
// Nothing here knows about products or users; the recommend package maps
// catalog rows onto these structures and back.
//
// # Scaling
//
// RatingMatrix is dense: memory and build time are O(rows × cols). That is
// fine for catalogs in the low tens of thousands of rows. Larger catalogs
// need a sparse replacement; keep callers going through BuildRatingMatrix and
// the accessor methods so the representation can change in one place.
package algorithms

// RatingMatrix is a dense matrix of mean ratings keyed by row and column
// identifiers of any comparable type. Row and column order is the order in
// which keys were first seen, so builds over the same input are identical.
//
// A cell that was never rated holds 0 and reports Rated == false; a genuine
// 0 rating holds 0 and reports Rated == true.
type RatingMatrix[R, C comparable] struct {
	rowKeys  []R
	colKeys  []C
	rowIndex map[R]int
	colIndex map[C]int
	values   [][]float64
	rated    [][]bool
}

// BuildRatingMatrix builds a matrix from n observations. at(i) returns the
// row key, column key, and rating of observation i. Duplicate (row, col)
// observations are averaged.
func BuildRatingMatrix[R, C comparable](n int, at func(i int) (R, C, float64)) *RatingMatrix[R, C] {
	m := &RatingMatrix[R, C]{
		rowIndex: make(map[R]int),
		colIndex: make(map[C]int),
	}

	type cell struct{ r, c int }
	sums := make(map[cell]float64)
	counts := make(map[cell]int)

	for i := 0; i < n; i++ {
		rk, ck, v := at(i)
		ri, ok := m.rowIndex[rk]
		if !ok {
			ri = len(m.rowKeys)
			m.rowIndex[rk] = ri
			m.rowKeys = append(m.rowKeys, rk)
		}
		ci, ok := m.colIndex[ck]
		if !ok {
			ci = len(m.colKeys)
			m.colIndex[ck] = ci
			m.colKeys = append(m.colKeys, ck)
		}
		sums[cell{ri, ci}] += v
		counts[cell{ri, ci}]++
	}

	m.values = make([][]float64, len(m.rowKeys))
	m.rated = make([][]bool, len(m.rowKeys))
	for i := range m.values {
		m.values[i] = make([]float64, len(m.colKeys))
		m.rated[i] = make([]bool, len(m.colKeys))
	}
	for c, sum := range sums {
		m.values[c.r][c.c] = sum / float64(counts[c])
		m.rated[c.r][c.c] = true
	}
	return m
}

// Rows returns the number of rows.
func (m *RatingMatrix[R, C]) Rows() int { return len(m.rowKeys) }

// Cols returns the number of columns.
func (m *RatingMatrix[R, C]) Cols() int { return len(m.colKeys) }

// RowKey returns the key of row i.
func (m *RatingMatrix[R, C]) RowKey(i int) R { return m.rowKeys[i] }

// ColKey returns the key of column j.
func (m *RatingMatrix[R, C]) ColKey(j int) C { return m.colKeys[j] }

// RowIndex looks up the row for key.
func (m *RatingMatrix[R, C]) RowIndex(key R) (int, bool) {
	i, ok := m.rowIndex[key]
	return i, ok
}

// ColIndex looks up the column for key.
func (m *RatingMatrix[R, C]) ColIndex(key C) (int, bool) {
	j, ok := m.colIndex[key]
	return j, ok
}

// Row returns row i. The slice is shared; callers must not modify it.
func (m *RatingMatrix[R, C]) Row(i int) []float64 { return m.values[i] }

// Value returns the mean rating at (i, j), 0 when unrated.
func (m *RatingMatrix[R, C]) Value(i, j int) float64 { return m.values[i][j] }

// Rated reports whether (i, j) had at least one observation.
func (m *RatingMatrix[R, C]) Rated(i, j int) bool { return m.rated[i][j] }

// Transpose returns the column-oriented view as a new matrix.
func (m *RatingMatrix[R, C]) Transpose() *RatingMatrix[C, R] {
	t := &RatingMatrix[C, R]{
		rowKeys:  append([]C(nil), m.colKeys...),
		colKeys:  append([]R(nil), m.rowKeys...),
		rowIndex: make(map[C]int, len(m.colKeys)),
		colIndex: make(map[R]int, len(m.rowKeys)),
		values:   make([][]float64, len(m.colKeys)),
		rated:    make([][]bool, len(m.colKeys)),
	}
	for j, k := range t.rowKeys {
		t.rowIndex[k] = j
	}
	for i, k := range t.colKeys {
		t.colIndex[k] = i
	}
	for j := range t.values {
		t.values[j] = make([]float64, len(m.rowKeys))
		t.rated[j] = make([]bool, len(m.rowKeys))
		for i := range m.rowKeys {
			t.values[j][i] = m.values[i][j]
			t.rated[j][i] = m.rated[i][j]
		}
	}
	return t
}
