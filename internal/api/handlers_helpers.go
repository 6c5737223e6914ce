// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/shopwise/internal/logging"
	"github.com/tomtom215/shopwise/internal/models"
	"github.com/tomtom215/shopwise/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers. Successful
// responses are publicly cacheable unless the handler already chose a
// Cache-Control policy; everything else is no-store.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case status < 200 || status >= 300:
		w.Header().Set("Cache-Control", "no-store")
	case w.Header().Get("Cache-Control") == "":
		w.Header().Set("Cache-Control", "public, max-age=60")
	}

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, data interface{}, start time.Time, cached bool) {
	respondJSON(w, http.StatusOK, models.NewSuccessResponse(data, start, cached))
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().Str("code", sanitizeLogValue(code)).Str("error", sanitizeLogValue(err.Error())).Msg("API Error")
	}

	respondJSON(w, status, models.NewErrorResponse(&models.APIError{Code: code, Message: message}))
}

// respondAPIError sends a prepared APIError as a 400.
func respondAPIError(w http.ResponseWriter, apiErr *models.APIError) {
	respondJSON(w, http.StatusBadRequest, models.NewErrorResponse(apiErr))
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes.
//
// Example:
//
//	req := TopRatedRequest{N: n}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondAPIError(w, apiErr)
//	    return
//	}
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// validateWithN runs validateRequest and then bounds n by the engine's
// configured maximum, which may be lower than MaxResults.
func (h *Handler) validateWithN(v interface{}, n int) *models.APIError {
	if apiErr := validateRequest(v); apiErr != nil {
		return apiErr
	}
	if n > h.maxN {
		return &models.APIError{
			Code:    ErrCodeValidation,
			Message: fmt.Sprintf("n must be at most %d", h.maxN),
			Details: map[string]interface{}{"field": "n", "tag": "max", "value": n},
		}
	}
	return nil
}

// paramError describes a query or path parameter that could not be parsed.
type paramError struct {
	name  string
	value string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.name, e.value)
}

func (e *paramError) apiError() *models.APIError {
	return &models.APIError{
		Code:    ErrCodeInvalidParameter,
		Message: e.Error(),
		Details: map[string]interface{}{"parameter": e.name},
	}
}

// intQuery reads an integer query parameter. Absent or blank values yield
// defaultValue; anything else must parse.
func intQuery(r *http.Request, key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &paramError{name: key, value: value}
	}
	return n, nil
}

// floatQuery reads a float query parameter like intQuery.
func floatQuery(r *http.Request, key string, defaultValue float64) (float64, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &paramError{name: key, value: value}
	}
	return f, nil
}

// intPath parses a non-negative integer path segment.
func intPath(value, name string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, &paramError{name: name, value: value}
	}
	return n, nil
}

// parseCommaSeparated parses a comma-separated string into a slice
func parseCommaSeparated(value string) []string {
	if value == "" {
		return nil
	}

	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
