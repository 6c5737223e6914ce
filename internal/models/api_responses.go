// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package models

import (
	"time"
)

// Envelope status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the envelope around every JSON response.
//
//	{
//	  "status": "success",
//	  "data": {"algorithm": "top_rated", "count": 10, "items": [...]},
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z", "query_time_ms": 4}
//	}
//
// On failure Data is null and Error is set:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-03-02T12:00:00Z"},
//	  "error": {"code": "CATALOG_UNAVAILABLE", "message": "Catalog not loaded yet"}
//	}
type APIResponse struct {
	Status   string    `json:"status"`
	Data     any       `json:"data"`
	Metadata Metadata  `json:"metadata"`
	Error    *APIError `json:"error,omitempty"`
}

// Metadata describes how a response was produced. QueryTimeMS covers the
// handler from parameter parsing to encoding; Cached marks a result served
// from the result cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is the machine-readable part of a failed response. Details
// carries field-level context such as the offending parameter.
type APIError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// NewSuccessResponse wraps data, timing the request from start.
func NewSuccessResponse(data any, start time.Time, cached bool) *APIResponse {
	now := time.Now()
	return &APIResponse{
		Status: StatusSuccess,
		Data:   data,
		Metadata: Metadata{
			Timestamp:   now.UTC(),
			QueryTimeMS: now.Sub(start).Milliseconds(),
			Cached:      cached,
		},
	}
}

// NewErrorResponse wraps apiErr.
func NewErrorResponse(apiErr *APIError) *APIResponse {
	return &APIResponse{
		Status:   StatusError,
		Metadata: Metadata{Timestamp: time.Now().UTC()},
		Error:    apiErr,
	}
}
