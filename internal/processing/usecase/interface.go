// Package usecase implements the text processing business logic.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/winwin/textproc/internal/processing/domain"
)

// ProcessingLogRepository defines persistence operations for processing logs.
// The log is append-only: there is no update or delete.
type ProcessingLogRepository interface {
	// Create stores a new processing log entry.
	Create(ctx context.Context, log *domain.ProcessingLog) error

	// List retrieves a user's entries, newest first, with pagination and
	// optional inclusive time bounds (nil means unbounded).
	List(
		ctx context.Context,
		userID uuid.UUID,
		offset, limit int,
		createdAtFrom, createdAtTo *time.Time,
	) ([]*domain.ProcessingLog, error)
}

// ProcessUseCase defines the business logic for orchestrated text transformation.
type ProcessUseCase interface {
	// Process transforms inputText via the downstream transform service on
	// behalf of the subject and records a processing log entry on success.
	Process(ctx context.Context, subject, inputText string) (string, error)

	// History lists the subject's past transformations, newest first.
	History(
		ctx context.Context,
		subject string,
		offset, limit int,
		createdAtFrom, createdAtTo *time.Time,
	) ([]*domain.ProcessingLog, error)
}
