// Package common defines shared constants and sentinel errors used across
// the notekeeper application layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository/service-level errors.
	ErrNotFound = errors.New("not found")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Validation errors for user-supplied fields.
	ErrValidation = errors.New("validation error")
)
