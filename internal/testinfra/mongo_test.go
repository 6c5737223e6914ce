// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

//go:build integration

package testinfra

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/tomtom215/shopwise/internal/catalog"
	"github.com/tomtom215/shopwise/internal/config"
	"github.com/tomtom215/shopwise/internal/loader"
	"github.com/tomtom215/shopwise/internal/recommend"
)

// TestMongoLoader_Integration seeds a collection and serves recommendations
// from it.
func TestMongoLoader_Integration(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	mongoC := Start(t, ctx, NewMongoContainer)

	cfg := config.MongoConfig{URI: mongoC.URI, Database: "shopwise", Collection: "ratings"}
	seedRatings(ctx, t, cfg)

	l, err := loader.NewMongoLoader(cfg)
	if err != nil {
		t.Fatalf("NewMongoLoader() error = %v", err)
	}
	defer l.Close()

	if err := l.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	raw, err := l.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	table, err := catalog.Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if table.Len() != 4 {
		t.Fatalf("table.Len() = %d, want 4", table.Len())
	}
	if !table.HasUser(1) {
		t.Error("user 1 missing; _id may have been read as the user id")
	}

	top := recommend.TopRated(table, 1)
	if len(top) != 1 || top[0].ProductName != "Gel" {
		t.Errorf("TopRated() = %v, want Gel first", top)
	}
}

func seedRatings(ctx context.Context, t *testing.T, cfg config.MongoConfig) {
	t.Helper()

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Disconnect(ctx) //nolint:errcheck

	docs := []any{
		bson.D{{Key: "ID", Value: 1}, {Key: "ProdID", Value: "10"}, {Key: "Name", Value: "Soap"}, {Key: "Category", Value: bson.A{"Bath", "Body"}}, {Key: "Rating", Value: 3.0}},
		bson.D{{Key: "ID", Value: 2}, {Key: "ProdID", Value: "10"}, {Key: "Name", Value: "Soap"}, {Key: "Category", Value: bson.A{"Bath", "Body"}}, {Key: "Rating", Value: 4.0}},
		bson.D{{Key: "ID", Value: 1}, {Key: "ProdID", Value: "11"}, {Key: "Name", Value: "Gel"}, {Key: "Category", Value: bson.A{"Bath"}}, {Key: "Rating", Value: 5.0}},
		bson.D{{Key: "ID", Value: 3}, {Key: "ProdID", Value: "11"}, {Key: "Name", Value: "Gel"}, {Key: "Category", Value: bson.A{"Bath"}}, {Key: "Rating", Value: 4.0}},
	}
	coll := client.Database(cfg.Database).Collection(cfg.Collection)
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		t.Fatalf("seed ratings: %v", err)
	}
}
