// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package loader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/config"
)

// MongoLoader reads every document of one collection as a rating row.
type MongoLoader struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoLoader creates a client for cfg. The driver connects lazily.
func NewMongoLoader(cfg config.MongoConfig) (*MongoLoader, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opt := options.Client().ApplyURI(cfg.URI).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(opt)
	if err != nil {
		return nil, fmt.Errorf("mongo: connect: %w", err)
	}
	return &MongoLoader{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Name implements Loader.
func (l *MongoLoader) Name() string { return "mongo" }

// Ping checks that the server is reachable.
func (l *MongoLoader) Ping(ctx context.Context) error {
	return l.client.Ping(ctx, nil)
}

// Load implements Loader. The document _id is never part of the table: it
// would otherwise fold onto the "id" alias and be read as a user id.
func (l *MongoLoader) Load(ctx context.Context) (catalog.RawTable, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 0}})
	cursor, err := l.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return catalog.RawTable{}, fmt.Errorf("mongo: find: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck // read-only cursor

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return catalog.RawTable{}, fmt.Errorf("mongo: decode: %w", err)
	}
	return tableFromDocuments(docs), nil
}

func tableFromDocuments(docs []bson.M) catalog.RawTable {
	maps := make([]map[string]any, len(docs))
	for i, doc := range docs {
		m := make(map[string]any, len(doc))
		for k, v := range doc {
			if k == "_id" {
				continue
			}
			m[k] = mongoCell(v)
		}
		maps[i] = m
	}
	return catalog.FromMaps(maps)
}

// mongoCell flattens BSON values that do not render usefully by default.
func mongoCell(v any) any {
	switch x := v.(type) {
	case bson.ObjectID:
		return x.Hex()
	case bson.DateTime:
		return x.Time().UTC().Format(time.RFC3339)
	case bson.A:
		parts := make([]string, 0, len(x))
		for _, p := range x {
			parts = append(parts, catalog.FormatCell(mongoCell(p)))
		}
		// Array fields (typically categories) become the comma-joined text
		// the content engine tokenizes.
		return strings.Join(parts, ", ")
	default:
		return v
	}
}

// Close disconnects the client.
func (l *MongoLoader) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return l.client.Disconnect(ctx)
}
