// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

/*
Package loader reads the raw ratings table from the configured source.

Every loader returns a catalog.RawTable; column mapping and type coercion
happen later in catalog.Normalize, so loaders only move cells.

# Sources

  - csv: a delimited file (comma, or tab for .tsv/.tab)
  - json: a file holding an array of objects
  - sql: any query over database/sql, with the duckdb or postgres driver
  - mongo: every document of a MongoDB collection
  - badger: a snapshot previously written by BadgerStore.Save

DuckDB can also read files directly, which makes the sql source useful for
Parquet data:

	CATALOG_SOURCE=sql
	CATALOG_DRIVER=duckdb
	CATALOG_QUERY="SELECT * FROM read_parquet('ratings.parquet')"

# Snapshots

WithSnapshot wraps any loader so that each good load is persisted to
Badger and a failed load falls back to the last snapshot.
*/
package loader
