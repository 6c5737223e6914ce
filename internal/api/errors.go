// Shopwise - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shopwise

package api

import "github.com/tomtom215/shopwise/internal/validation"

// Error codes returned in models.APIError.
const (
	ErrCodeValidation         = validation.CodeValidationError
	ErrCodeInvalidParameter   = "INVALID_PARAMETER"
	ErrCodeCatalogUnavailable = "CATALOG_UNAVAILABLE"
	ErrCodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
)
