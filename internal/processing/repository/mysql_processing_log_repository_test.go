package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winwin/textproc/internal/processing/domain"
)

func mustUUIDBytes(t *testing.T, id uuid.UUID) []byte {
	t.Helper()

	b, err := id.MarshalBinary()
	require.NoError(t, err)
	return b
}

func TestMySQLProcessingLogRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMySQLProcessingLogRepository(db)

	log := &domain.ProcessingLog{
		ID:         uuid.Must(uuid.NewV7()),
		UserID:     uuid.Must(uuid.NewV7()),
		InputText:  "abc",
		OutputText: "CBA",
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO processing_log`)).
		WithArgs(mustUUIDBytes(t, log.ID), mustUUIDBytes(t, log.UserID), log.InputText, log.OutputText, log.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), log)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLProcessingLogRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMySQLProcessingLogRepository(db)

	userID := uuid.Must(uuid.NewV7())
	logID := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()

	t.Run("Success_NoTimeFilters", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "input_text", "output_text", "created_at"}).
			AddRow(mustUUIDBytes(t, logID), mustUUIDBytes(t, userID), "abc", "CBA", now)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, input_text, output_text, created_at`)).
			WithArgs(mustUUIDBytes(t, userID), 50, 0).
			WillReturnRows(rows)

		logs, err := repo.List(context.Background(), userID, 0, 50, nil, nil)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, logID, logs[0].ID)
		assert.Equal(t, userID, logs[0].UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_WithTimeFilters", func(t *testing.T) {
		from := now.Add(-2 * time.Hour)

		rows := sqlmock.NewRows([]string{"id", "user_id", "input_text", "output_text", "created_at"})

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, input_text, output_text, created_at`)).
			WithArgs(mustUUIDBytes(t, userID), from, 10, 0).
			WillReturnRows(rows)

		logs, err := repo.List(context.Background(), userID, 0, 10, &from, nil)
		require.NoError(t, err)
		assert.Empty(t, logs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
