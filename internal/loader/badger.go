// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package loader

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/shopwise/internal/catalog"
)

// Key layout for BadgerDB storage
const (
	snapshotMetaKey   = "catalog:meta"
	snapshotRowPrefix = "catalog:rows:"

	// snapshotChunkRows bounds the size of a single value.
	snapshotChunkRows = 1000
)

// SnapshotMeta describes the stored catalog.
type SnapshotMeta struct {
	Source  string    `json:"source"`
	Columns []string  `json:"columns"`
	Rows    int       `json:"rows"`
	Chunks  int       `json:"chunks"`
	SavedAt time.Time `json:"saved_at"`
}

// BadgerStore persists raw catalog tables in BadgerDB. It is also a Loader,
// serving the last saved table.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (or creates) a store in dir.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // zerolog handles our logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}
	return NewBadgerStore(db), nil
}

// NewBadgerStore wraps an open database. The store takes ownership of db.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Name implements Loader.
func (s *BadgerStore) Name() string { return "badger" }

// Save replaces the stored snapshot with raw.
func (s *BadgerStore) Save(ctx context.Context, source string, raw catalog.RawTable) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.db.DropPrefix([]byte(snapshotRowPrefix)); err != nil {
		return fmt.Errorf("drop old snapshot rows: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	chunks := 0
	for start := 0; start < len(raw.Rows); start += snapshotChunkRows {
		end := min(start+snapshotChunkRows, len(raw.Rows))
		data, err := json.Marshal(raw.Rows[start:end])
		if err != nil {
			return fmt.Errorf("marshal snapshot rows: %w", err)
		}
		if err := wb.Set(chunkKey(chunks), data); err != nil {
			return fmt.Errorf("set snapshot rows: %w", err)
		}
		chunks++
	}

	meta := SnapshotMeta{
		Source:  source,
		Columns: raw.Columns,
		Rows:    len(raw.Rows),
		Chunks:  chunks,
		SavedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("marshal snapshot meta: %w", err)
	}
	if err := wb.Set([]byte(snapshotMetaKey), data); err != nil {
		return fmt.Errorf("set snapshot meta: %w", err)
	}

	return wb.Flush()
}

// Meta returns the stored snapshot's description, or ErrNoSnapshot.
func (s *BadgerStore) Meta() (SnapshotMeta, error) {
	var meta SnapshotMeta
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, []byte(snapshotMetaKey), &meta)
	})
	return meta, err
}

// Load implements Loader, returning the stored snapshot.
func (s *BadgerStore) Load(ctx context.Context) (catalog.RawTable, error) {
	var raw catalog.RawTable
	err := s.db.View(func(txn *badger.Txn) error {
		var meta SnapshotMeta
		if err := getJSON(txn, []byte(snapshotMetaKey), &meta); err != nil {
			return err
		}

		rows := make([][]string, 0, meta.Rows)
		for i := 0; i < meta.Chunks; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			var chunk [][]string
			if err := getJSON(txn, chunkKey(i), &chunk); err != nil {
				if errors.Is(err, ErrNoSnapshot) {
					return fmt.Errorf("snapshot chunk %d missing", i)
				}
				return err
			}
			rows = append(rows, chunk...)
		}
		raw = catalog.RawTable{Columns: meta.Columns, Rows: rows}
		return nil
	})
	if err != nil {
		return catalog.RawTable{}, err
	}
	return raw, nil
}

// Close closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func chunkKey(i int) []byte {
	return []byte(fmt.Sprintf("%s%08d", snapshotRowPrefix, i))
}

func getJSON(txn *badger.Txn, key []byte, v any) error {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNoSnapshot
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}
