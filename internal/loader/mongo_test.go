// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package loader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/tomtom215/shopwise/internal/catalog"
)

func TestTableFromDocuments(t *testing.T) {
	oid := bson.NewObjectID()
	when := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)

	docs := []bson.M{
		{
			"_id":          oid,
			"user_id":      int32(7),
			"product_id":   oid,
			"product_name": "Soap",
			"category":     bson.A{"Bath", "Body"},
			"rating":       4.5,
			"added":        bson.NewDateTimeFromTime(when),
		},
	}

	raw := tableFromDocuments(docs)
	assert.NotContains(t, raw.Columns, "_id")

	col := func(name string) string {
		for i, c := range raw.Columns {
			if c == name {
				return raw.Rows[0][i]
			}
		}
		t.Fatalf("column %q missing from %v", name, raw.Columns)
		return ""
	}
	assert.Equal(t, "7", col("user_id"))
	assert.Equal(t, oid.Hex(), col("product_id"))
	assert.Equal(t, "Bath, Body", col("category"))
	assert.Equal(t, "2026-02-03T04:05:06Z", col("added"))

	table, err := catalog.Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, 7, table.Rows()[0].UserID, "user id must not come from _id")
}
