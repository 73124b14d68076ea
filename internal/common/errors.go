// Package common defines shared constants and sentinel errors used across
// the client and server layers of Atelier. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")

	// Local validation failed, no network call was made.
	ErrInvalidInput = errors.New("invalid input")

	// Authentication was attempted and rejected by the server.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// The server could not be reached (transport-level failure).
	ErrUnreachable = errors.New("server unreachable")

	// A previously accepted credential was rejected mid-session.
	ErrUnauthorized = errors.New("unauthorized")

	// The request was valid but the server failed to process it.
	ErrServerError = errors.New("server error")

	// An authentication attempt is already in flight.
	ErrAuthInProgress = errors.New("authentication already in progress")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
