// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package loader

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// DuckDB driver - in-memory or file databases, and direct reads of
	// CSV/Parquet files through read_csv_auto/read_parquet
	_ "github.com/duckdb/duckdb-go/v2"
	// PostgreSQL driver
	_ "github.com/lib/pq"

	"github.com/tomtom215/shopwise/internal/catalog"
)

// SQLLoader reads the ratings table with a single query over database/sql.
type SQLLoader struct {
	db     *sql.DB
	driver string
	query  string
}

// OpenSQL opens a connection pool for driver ("duckdb" or "postgres").
// sql.Open does not connect; the first Load does.
func OpenSQL(driver, dsn, query string) (*SQLLoader, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == "duckdb" {
		// Reloads run one at a time; a single connection keeps an
		// in-memory database alive between them.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(4)
		db.SetConnMaxIdleTime(5 * time.Minute)
	}
	return NewSQLLoader(db, driver, query), nil
}

// NewSQLLoader wraps an existing pool. The loader takes ownership of db.
func NewSQLLoader(db *sql.DB, driver, query string) *SQLLoader {
	return &SQLLoader{db: db, driver: driver, query: query}
}

// Name implements Loader.
func (l *SQLLoader) Name() string { return "sql:" + l.driver }

// Load implements Loader.
func (l *SQLLoader) Load(ctx context.Context) (catalog.RawTable, error) {
	rows, err := l.db.QueryContext(ctx, l.query)
	if err != nil {
		return catalog.RawTable{}, fmt.Errorf("query ratings: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return catalog.RawTable{}, fmt.Errorf("read columns: %w", err)
	}

	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}

	var out [][]string
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return catalog.RawTable{}, fmt.Errorf("scan row %d: %w", len(out)+1, err)
		}
		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = sqlCell(v)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return catalog.RawTable{}, fmt.Errorf("iterate rows: %w", err)
	}

	return catalog.RawTable{Columns: columns, Rows: out}, nil
}

func sqlCell(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return catalog.FormatCell(v)
}

// Close releases the pool.
func (l *SQLLoader) Close() error {
	return l.db.Close()
}
