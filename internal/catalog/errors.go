// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSchema is matched by every *SchemaError via errors.Is.
var ErrSchema = errors.New("catalog schema error")

// SchemaError reports mandatory identity columns missing from the input.
// It is fatal to the call and is not retried.
type SchemaError struct {
	Missing []string
	Columns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("catalog schema error: missing column(s) %s (have: %s)",
		strings.Join(e.Missing, ", "), strings.Join(e.Columns, ", "))
}

// Is makes errors.Is(err, ErrSchema) succeed.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}
