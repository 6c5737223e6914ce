// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tomtom215/shopwise/internal/catalog"
)

const utf8BOM = "\ufeff"

// CSVLoader reads a delimited ratings file with a header row.
type CSVLoader struct {
	path  string
	comma rune
}

// NewCSVLoader returns a loader for path. Files ending in .tsv or .tab are
// read tab-separated.
func NewCSVLoader(path string) *CSVLoader {
	comma := ','
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		comma = '\t'
	}
	return &CSVLoader{path: path, comma: comma}
}

// Name implements Loader.
func (l *CSVLoader) Name() string { return "csv" }

// Load implements Loader.
func (l *CSVLoader) Load(ctx context.Context) (catalog.RawTable, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return catalog.RawTable{}, fmt.Errorf("open ratings file: %w", err)
	}
	defer f.Close()

	return l.read(ctx, f)
}

func (l *CSVLoader) read(ctx context.Context, r io.Reader) (catalog.RawTable, error) {
	cr := csv.NewReader(r)
	cr.Comma = l.comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return catalog.RawTable{}, fmt.Errorf("ratings file %s is empty", l.path)
	}
	if err != nil {
		return catalog.RawTable{}, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	var rows [][]string
	for {
		// Large files get a cancellation check every few thousand rows.
		if len(rows)%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return catalog.RawTable{}, err
			}
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return catalog.RawTable{}, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, rec)
	}

	return catalog.RawTable{Columns: header, Rows: rows}, nil
}
