// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package loader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/config"
)

var (
	// ErrUnknownSource is returned by New for an unsupported catalog source.
	ErrUnknownSource = errors.New("unknown catalog source")

	// ErrNoSnapshot is returned when a snapshot store holds no catalog yet.
	ErrNoSnapshot = errors.New("no catalog snapshot")
)

// Loader reads the raw ratings table from one source. Implementations that
// hold connections also implement io.Closer.
type Loader interface {
	// Load reads the whole table. It honours ctx cancellation where the
	// underlying source allows it.
	Load(ctx context.Context) (catalog.RawTable, error)

	// Name identifies the source in logs, metrics, and health output.
	Name() string
}

// New builds the loader selected by cfg.Source. Network-backed loaders
// connect lazily; the badger source opens its directory here.
func New(cfg config.CatalogConfig) (Loader, error) {
	switch cfg.Source {
	case config.SourceCSV:
		return NewCSVLoader(cfg.Path), nil
	case config.SourceJSON:
		return NewJSONLoader(cfg.Path), nil
	case config.SourceSQL:
		return nonNil(OpenSQL(cfg.Driver, cfg.DSN, cfg.Query))
	case config.SourceMongo:
		return nonNil(NewMongoLoader(cfg.Mongo))
	case config.SourceBadger:
		return nonNil(OpenBadgerStore(cfg.SnapshotPath))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

// FromConfig builds the loader for cfg. When cfg.SnapshotPath is set for a
// source other than badger, the loader is wrapped so every good load is
// snapshotted there and the snapshot serves while the source is down.
func FromConfig(cfg config.CatalogConfig) (Loader, error) {
	primary, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.SnapshotPath == "" || cfg.Source == config.SourceBadger {
		return primary, nil
	}

	store, err := OpenBadgerStore(cfg.SnapshotPath)
	if err != nil {
		if c, ok := primary.(io.Closer); ok {
			c.Close() //nolint:errcheck // best-effort cleanup
		}
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	return WithSnapshot(primary, store), nil
}

// nonNil keeps a failed constructor from yielding a non-nil Loader that
// wraps a nil pointer.
func nonNil[L Loader](l L, err error) (Loader, error) {
	if err != nil {
		return nil, err
	}
	return l, nil
}
