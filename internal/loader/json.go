// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package loader

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shopwise/internal/catalog"
)

// JSONLoader reads a file holding a JSON array of rating objects.
type JSONLoader struct {
	path string
}

// NewJSONLoader returns a loader for path.
func NewJSONLoader(path string) *JSONLoader {
	return &JSONLoader{path: path}
}

// Name implements Loader.
func (l *JSONLoader) Name() string { return "json" }

// Load implements Loader.
func (l *JSONLoader) Load(ctx context.Context) (catalog.RawTable, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return catalog.RawTable{}, fmt.Errorf("open ratings file: %w", err)
	}
	defer f.Close()

	return decodeJSON(ctx, f)
}

func decodeJSON(ctx context.Context, r io.Reader) (catalog.RawTable, error) {
	dec := json.NewDecoder(r)
	// Keep ids like 1234567890123 exact instead of routing them through float64.
	dec.UseNumber()

	var docs []map[string]any
	if err := dec.DecodeContext(ctx, &docs); err != nil {
		return catalog.RawTable{}, fmt.Errorf("decode ratings JSON: %w", err)
	}
	return catalog.FromMaps(docs), nil
}
