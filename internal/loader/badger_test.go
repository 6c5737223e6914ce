// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package loader

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/shopwise/internal/catalog"
)

// createTestStore opens a Badger store in a temp directory.
func createTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := OpenBadgerStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleTable(n int) catalog.RawTable {
	raw := catalog.RawTable{Columns: []string{"ID", "Name", "Rating"}}
	for i := 0; i < n; i++ {
		raw.Rows = append(raw.Rows, []string{fmt.Sprint(i), fmt.Sprintf("Product %d", i), "4"})
	}
	return raw
}

func TestBadgerStore_Empty(t *testing.T) {
	store := createTestStore(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
	_, err = store.Meta()
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestBadgerStore_SaveLoad(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	// Spans three chunks.
	raw := sampleTable(2500)
	require.NoError(t, store.Save(ctx, "csv", raw))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, raw.Columns, got.Columns)
	assert.Equal(t, raw.Rows, got.Rows)

	meta, err := store.Meta()
	require.NoError(t, err)
	assert.Equal(t, "csv", meta.Source)
	assert.Equal(t, 2500, meta.Rows)
	assert.Equal(t, 3, meta.Chunks)
	assert.False(t, meta.SavedAt.IsZero())
}

func TestBadgerStore_SaveReplaces(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "csv", sampleTable(1500)))
	require.NoError(t, store.Save(ctx, "csv", sampleTable(3)))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Rows, 3)
}

type stubLoader struct {
	raw    catalog.RawTable
	err    error
	closed bool
}

func (s *stubLoader) Load(context.Context) (catalog.RawTable, error) { return s.raw, s.err }
func (s *stubLoader) Name() string { return "stub" }
func (s *stubLoader) Close() error {
	s.closed = true
	return nil
}

func TestSnapshotLoader(t *testing.T) {
	ctx := context.Background()

	t.Run("success saves snapshot", func(t *testing.T) {
		store := createTestStore(t)
		primary := &stubLoader{raw: sampleTable(2)}

		got, err := WithSnapshot(primary, store).Load(ctx)
		require.NoError(t, err)
		assert.Len(t, got.Rows, 2)

		meta, err := store.Meta()
		require.NoError(t, err)
		assert.Equal(t, "stub", meta.Source)
	})

	t.Run("failure falls back to snapshot", func(t *testing.T) {
		store := createTestStore(t)
		require.NoError(t, store.Save(ctx, "stub", sampleTable(4)))
		primary := &stubLoader{err: errors.New("source down")}

		got, err := WithSnapshot(primary, store).Load(ctx)
		require.NoError(t, err)
		assert.Len(t, got.Rows, 4)
	})

	t.Run("failure without snapshot returns source error", func(t *testing.T) {
		store := createTestStore(t)
		sourceErr := errors.New("source down")

		_, err := WithSnapshot(&stubLoader{err: sourceErr}, store).Load(ctx)
		assert.ErrorIs(t, err, sourceErr)
	})

	t.Run("close closes primary", func(t *testing.T) {
		store, err := OpenBadgerStore(t.TempDir())
		require.NoError(t, err)
		primary := &stubLoader{}

		require.NoError(t, WithSnapshot(primary, store).Close())
		assert.True(t, primary.closed)
	})
}
