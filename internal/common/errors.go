// Package common defines shared constants and sentinel errors used across
// client and server layers of skillboard. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Account directory errors.
	ErrDuplicateAccount   = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Profile store errors.
	ErrProfileNotFound = errors.New("profile not found")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired also matches ErrInvalidToken.
	ErrTokenExpired = fmt.Errorf("%w: expired", ErrInvalidToken)

	// Object storage is not configured on this server.
	ErrStorageNotConfigured = errors.New("object storage not configured")
)
