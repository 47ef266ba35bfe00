// Package apperrors defines the error classes the API maps to HTTP responses.
package apperrors

import "errors"

var (
	// ErrValidation marks bad or missing input.
	ErrValidation = errors.New("invalid input")
	// ErrConflict marks a write rejected by a store constraint, e.g. a duplicate username.
	ErrConflict = errors.New("already exists")
	// ErrAuthentication marks missing or invalid credentials or tokens. It is
	// always rendered as "Invalid Login"; the wrapped detail never reaches clients.
	ErrAuthentication = errors.New("invalid login")
	// ErrNotFound marks an unknown record id or an unmatched route.
	ErrNotFound = errors.New("not found")
)
