// Package common defines shared constants and sentinel errors used across
// WellNest layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Registration errors.
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateEmail    = errors.New("email already registered")

	// Login errors. A wrong password for an existing account must never be
	// reported as ErrNotFound.
	ErrWrongPassword = errors.New("incorrect password")

	// Boundary validation errors (missing field, short password, etc).
	ErrValidation = errors.New("validation error")

	// Operations that require an active session.
	ErrUnauthorized = errors.New("unauthorized")
)
