package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpMocks "github.com/winwin/textproc/internal/auth/http/mocks"
	"github.com/winwin/textproc/internal/auth/usecase"
	userDomain "github.com/winwin/textproc/internal/user/domain"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics to avoid dependency issues.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func TestAuthUseCaseWithMetrics(t *testing.T) {
	mockNext := &httpMocks.MockAuthUseCase{}
	mockMetrics := &mockBusinessMetrics{}
	uc := usecase.NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

	ctx := context.Background()

	t.Run("Register success", func(t *testing.T) {
		input := usecase.RegisterInput{Email: "john@example.com", Password: "SecurePass123!"}
		user := &userDomain.User{ID: uuid.Must(uuid.NewV7()), Email: input.Email}

		mockNext.On("Register", ctx, input).Return(user, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "register", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "register", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Register(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, user, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Register error", func(t *testing.T) {
		input := usecase.RegisterInput{Email: "john@example.com", Password: "SecurePass123!"}
		expectedErr := errors.New("error")

		mockNext.On("Register", ctx, input).Return(nil, expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "register", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "register", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Register(ctx, input)
		assert.Error(t, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Login success", func(t *testing.T) {
		input := usecase.LoginInput{Email: "john@example.com", Password: "SecurePass123!"}
		output := &usecase.LoginOutput{Token: "signed.session.token", ExpiresAt: time.Now().Add(time.Hour)}

		mockNext.On("Login", ctx, input).Return(output, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Login(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Login error", func(t *testing.T) {
		input := usecase.LoginInput{Email: "john@example.com", Password: "bad"}
		expectedErr := errors.New("error")

		mockNext.On("Login", ctx, input).Return(nil, expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Login(ctx, input)
		assert.Error(t, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
