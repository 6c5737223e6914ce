// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// compressionLevel trades a little CPU for roughly 5x smaller item lists.
const compressionLevel = 5

// jsonCompressor only touches API payloads; /metrics negotiates its own
// encoding.
var jsonCompressor = chimw.NewCompressor(compressionLevel, "application/json")

// Compression gzips (or deflates) JSON responses for clients that accept it.
func Compression(next http.Handler) http.Handler {
	return jsonCompressor.Handler(next)
}
