// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: dev@inkwell.app

/*
Package apperr defines the centralized error handling framework for Inkwell.

It provides a rich error type that bridges the gap between low-level Domain/Storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing machine-readable ErrorCode and user-friendly messages.
  - Taxonomy: The authentication failure kinds form a closed set of codes that the
    HTTP mapping layer can switch on exhaustively — no substring matching on
    error text anywhere in the codebase.
  - Mapping: Explicit mapping from AppError to standard HTTP Status Codes.

Every error that leaves the service layer should be wrapped as an [AppError] to ensure
consistent API responses.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// # Error Codes

// The closed set of machine-readable codes for the authentication and
// authorization domain. Handlers and middleware branch on these values.
const (
	CodeConfigInvalid          = "CONFIG_INVALID"
	CodeUserNotFound           = "USER_NOT_FOUND"
	CodeCredentialsInvalid     = "CREDENTIALS_INVALID"
	CodeTokenIssuanceFailed    = "TOKEN_ISSUANCE_FAILED"
	CodeAuthorizationMissing   = "AUTHORIZATION_MISSING"
	CodeAuthorizationMalformed = "AUTHORIZATION_MALFORMED"
	CodeAuthorizationInvalid   = "AUTHORIZATION_INVALID"
	CodeTokenExpired           = "TOKEN_EXPIRED"
)

// AppError is the canonical error type for the Inkwell API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND", "CONFLICT").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Authentication Taxonomy

// UserNotFound reports that no live user record matched the lookup.
func UserNotFound() *AppError {
	return &AppError{
		Code:       CodeUserNotFound,
		Message:    "User not found",
		HTTPStatus: http.StatusBadRequest,
	}
}

// CredentialsInvalid reports that the presented password did not match.
//
// Distinct from [UserNotFound] by policy; both map to HTTP 400 and neither
// message echoes the attempted username.
func CredentialsInvalid() *AppError {
	return &AppError{
		Code:       CodeCredentialsInvalid,
		Message:    "Username and password verification failed",
		HTTPStatus: http.StatusBadRequest,
	}
}

// TokenIssuanceFailed wraps a signing failure during token pair creation.
func TokenIssuanceFailed(cause error) *AppError {
	return &AppError{
		Code:       CodeTokenIssuanceFailed,
		Message:    "Failed to issue authentication tokens",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// AuthorizationMissing reports an absent Authorization header.
func AuthorizationMissing() *AppError {
	return &AppError{
		Code:       CodeAuthorizationMissing,
		Message:    "Authorization header is required",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// AuthorizationMalformed reports a structurally invalid Authorization header.
func AuthorizationMalformed() *AppError {
	return &AppError{
		Code:       CodeAuthorizationMalformed,
		Message:    "Authorization header is malformed",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// AuthorizationInvalid reports a token whose signature, structure, or subject
// could not be verified.
func AuthorizationInvalid() *AppError {
	return &AppError{
		Code:       CodeAuthorizationInvalid,
		Message:    "Authorization token is invalid",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// TokenExpired reports a token whose embedded expiry has passed.
func TokenExpired() *AppError {
	return &AppError{
		Code:       CodeTokenExpired,
		Message:    "Your token has expired, please login again",
		HTTPStatus: http.StatusUnauthorized,
	}
}

// # Client Errors (4xx)

// NotFound creates a 404 [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Note") // Returns "Note not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403 [AppError].
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// Conflict creates a 409 [AppError] for duplicate or unique-constraint violations.
func Conflict(msg string) *AppError {
	return &AppError{
		Code:       "CONFLICT",
		Message:    msg,
		HTTPStatus: http.StatusConflict,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       "RATE_LIMITED",
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// ConfigInvalid reports an unusable runtime configuration.
//
// It is only produced during startup; the process must refuse to start
// rather than serve requests with a broken signing configuration.
func ConfigInvalid(msg string) *AppError {
	return &AppError{
		Code:       CodeConfigInvalid,
		Message:    msg,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err is an [*AppError] carrying the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
