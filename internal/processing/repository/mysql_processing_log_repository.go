package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/winwin/textproc/internal/database"
	apperrors "github.com/winwin/textproc/internal/errors"
	"github.com/winwin/textproc/internal/processing/domain"
)

// MySQLProcessingLogRepository implements ProcessingLog persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLProcessingLogRepository struct {
	db *sql.DB
}

// Create inserts a new ProcessingLog into the MySQL database using BINARY(16) for UUIDs.
// The table is append-only; there are no update or delete operations.
func (m *MySQLProcessingLogRepository) Create(ctx context.Context, log *domain.ProcessingLog) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO processing_log (id, user_id, input_text, output_text, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	id, err := log.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal processing log id")
	}

	userID, err := log.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal processing log user_id")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		userID,
		log.InputText,
		log.OutputText,
		log.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create processing log")
	}

	return nil
}

// List retrieves a user's processing logs ordered by created_at descending
// (newest first) with pagination and optional time-based filtering. Accepts
// createdAtFrom and createdAtTo as optional filters (nil means no filter);
// both boundaries are inclusive. All timestamps are expected in UTC.
// UUIDs are stored as BINARY(16) and must be unmarshaled.
func (m *MySQLProcessingLogRepository) List(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*domain.ProcessingLog, error) {
	querier := database.GetTx(ctx, m.db)

	userIDBinary, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user_id")
	}

	// Build dynamic WHERE clause based on provided filters
	conditions := []string{"user_id = ?"}
	args := []interface{}{userIDBinary}

	if createdAtFrom != nil {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, *createdAtFrom)
	}

	if createdAtTo != nil {
		conditions = append(conditions, "created_at <= ?")
		args = append(args, *createdAtTo)
	}

	query := `SELECT id, user_id, input_text, output_text, created_at
			  FROM processing_log WHERE ` + strings.Join(conditions, " AND ")

	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list processing logs")
	}
	defer func() {
		_ = rows.Close()
	}()

	// Initialize empty slice to avoid returning nil for empty results
	logs := make([]*domain.ProcessingLog, 0)
	for rows.Next() {
		var log domain.ProcessingLog
		var idBinary, userIDScanned []byte

		err := rows.Scan(
			&idBinary,
			&userIDScanned,
			&log.InputText,
			&log.OutputText,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan processing log")
		}

		// Unmarshal UUIDs from BINARY(16)
		if err := log.ID.UnmarshalBinary(idBinary); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal processing log id")
		}

		if err := log.UserID.UnmarshalBinary(userIDScanned); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal processing log user_id")
		}

		logs = append(logs, &log)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate processing logs")
	}

	return logs, nil
}

// NewMySQLProcessingLogRepository creates a new MySQL ProcessingLog repository.
func NewMySQLProcessingLogRepository(db *sql.DB) *MySQLProcessingLogRepository {
	return &MySQLProcessingLogRepository{db: db}
}
