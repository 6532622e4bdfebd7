package domain

import (
	"github.com/winwin/textproc/internal/errors"
)

// Authentication errors.
var (
	// ErrInvalidCredentials indicates a login attempt with an unknown email or
	// a wrong password. Both cases map to the same error so responses cannot
	// be used to probe which emails are registered.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrInvalidSessionToken indicates a session token that is malformed,
	// carries a bad signature, or was signed with an unexpected algorithm.
	ErrInvalidSessionToken = errors.Wrap(errors.ErrUnauthorized, "invalid session token")

	// ErrExpiredSessionToken indicates a session token past its expiration.
	ErrExpiredSessionToken = errors.Wrap(errors.ErrUnauthorized, "expired session token")
)
