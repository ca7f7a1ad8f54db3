// Package common defines shared constants and sentinel errors used across
// gophtodo components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Credential store errors.
	ErrDuplicateUser      = errors.New("username already exists")
	ErrWeakPassword       = errors.New("password must be at least 4 characters")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Validation errors (empty required fields and the like).
	ErrValidation = errors.New("validation error")

	// Session errors for operations that require a logged-in user.
	ErrNoSession = errors.New("no active session")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)
