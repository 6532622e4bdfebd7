// Package domain defines the core text processing domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/winwin/textproc/internal/errors"
)

// ProcessingLog is an append-only record of one successful transformation.
// Records are never updated or deleted.
type ProcessingLog struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	InputText  string
	OutputText string
	CreatedAt  time.Time
}

// Processing errors.
var (
	// ErrTransformUnavailable indicates the downstream transform service
	// could not be reached or answered with an unexpected status.
	ErrTransformUnavailable = errors.Wrap(errors.ErrUnavailable, "transform service unavailable")

	// ErrUnknownSubject indicates a session token whose subject no longer
	// maps to a registered account. Surfaced as an authentication failure,
	// not a not-found, so callers cannot distinguish a revoked identity
	// from a bad token.
	ErrUnknownSubject = errors.Wrap(errors.ErrUnauthorized, "unknown subject")
)
