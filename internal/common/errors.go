// Package common defines shared constants and sentinel errors used across
// the server and client layers of the adventure tracker. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Backend availability. An unconfigured store and an unreachable one
	// surface identically; callers are expected to fall back locally.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation / request errors.
	ErrValidation         = errors.New("validation error")
	ErrInvalidImageFormat = errors.New("invalid image format")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
