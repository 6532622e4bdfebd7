// Package repository provides data persistence implementations for processing log entries.
package repository

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/winwin/textproc/internal/database"
	apperrors "github.com/winwin/textproc/internal/errors"
	"github.com/winwin/textproc/internal/processing/domain"
)

// PostgreSQLProcessingLogRepository implements ProcessingLog persistence for PostgreSQL.
// Uses native UUID types with transaction support via database.GetTx().
type PostgreSQLProcessingLogRepository struct {
	db *sql.DB
}

// Create inserts a new ProcessingLog into the PostgreSQL database.
// The table is append-only; there are no update or delete operations.
func (p *PostgreSQLProcessingLogRepository) Create(ctx context.Context, log *domain.ProcessingLog) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO processing_log (id, user_id, input_text, output_text, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		log.ID,
		log.UserID,
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
// Returns empty slice if no logs found.
func (p *PostgreSQLProcessingLogRepository) List(
	ctx context.Context,
	userID uuid.UUID,
	offset, limit int,
	createdAtFrom, createdAtTo *time.Time,
) ([]*domain.ProcessingLog, error) {
	querier := database.GetTx(ctx, p.db)

	// Build dynamic WHERE clause based on provided filters
	conditions := []string{"user_id = $1"}
	args := []interface{}{userID}

	if createdAtFrom != nil {
		args = append(args, *createdAtFrom)
		conditions = append(conditions, "created_at >= $"+strconv.Itoa(len(args)))
	}

	if createdAtTo != nil {
		args = append(args, *createdAtTo)
		conditions = append(conditions, "created_at <= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT id, user_id, input_text, output_text, created_at
			  FROM processing_log WHERE ` + strings.Join(conditions, " AND ")

	args = append(args, limit)
	query += " ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

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

		err := rows.Scan(
			&log.ID,
			&log.UserID,
			&log.InputText,
			&log.OutputText,
			&log.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan processing log")
		}

		logs = append(logs, &log)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate processing logs")
	}

	return logs, nil
}

// NewPostgreSQLProcessingLogRepository creates a new PostgreSQL ProcessingLog repository.
func NewPostgreSQLProcessingLogRepository(db *sql.DB) *PostgreSQLProcessingLogRepository {
	return &PostgreSQLProcessingLogRepository{db: db}
}
