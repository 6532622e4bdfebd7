package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winwin/textproc/internal/processing/domain"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return db, mock
}

func TestPostgreSQLProcessingLogRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgreSQLProcessingLogRepository(db)

	log := &domain.ProcessingLog{
		ID:         uuid.Must(uuid.NewV7()),
		UserID:     uuid.Must(uuid.NewV7()),
		InputText:  "abc",
		OutputText: "CBA",
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO processing_log`)).
		WithArgs(log.ID, log.UserID, log.InputText, log.OutputText, log.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), log)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLProcessingLogRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgreSQLProcessingLogRepository(db)

	userID := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()

	t.Run("Success_NoTimeFilters", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "input_text", "output_text", "created_at"}).
			AddRow(uuid.Must(uuid.NewV7()), userID, "abc", "CBA", now).
			AddRow(uuid.Must(uuid.NewV7()), userID, "hello", "OLLEH", now.Add(-time.Hour))

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, input_text, output_text, created_at`)).
			WithArgs(userID, 50, 0).
			WillReturnRows(rows)

		logs, err := repo.List(context.Background(), userID, 0, 50, nil, nil)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, "CBA", logs[0].OutputText)
		assert.Equal(t, userID, logs[0].UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_WithTimeFilters", func(t *testing.T) {
		from := now.Add(-2 * time.Hour)
		to := now

		rows := sqlmock.NewRows([]string{"id", "user_id", "input_text", "output_text", "created_at"}).
			AddRow(uuid.Must(uuid.NewV7()), userID, "abc", "CBA", now.Add(-time.Hour))

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, input_text, output_text, created_at`)).
			WithArgs(userID, from, to, 10, 0).
			WillReturnRows(rows)

		logs, err := repo.List(context.Background(), userID, 0, 10, &from, &to)
		require.NoError(t, err)
		assert.Len(t, logs, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_EmptyResultIsNotNil", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "input_text", "output_text", "created_at"})

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, user_id, input_text, output_text, created_at`)).
			WithArgs(userID, 50, 0).
			WillReturnRows(rows)

		logs, err := repo.List(context.Background(), userID, 0, 50, nil, nil)
		require.NoError(t, err)
		assert.NotNil(t, logs)
		assert.Empty(t, logs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
