package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/winwin/textproc/internal/auth/domain"
	"github.com/winwin/textproc/internal/auth/http/mocks"
	authUseCase "github.com/winwin/textproc/internal/auth/usecase"
	userDomain "github.com/winwin/textproc/internal/user/domain"
)

func setupAuthRouter(useCase *mocks.MockAuthUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	handler := NewAuthHandler(useCase, logger)

	router := gin.New()
	router.POST("/api/auth/register", handler.RegisterHandler)
	router.POST("/api/auth/login", handler.LoginHandler)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_RegisterHandler(t *testing.T) {
	t.Run("Success_Returns201WithEmptyBody", func(t *testing.T) {
		useCase := &mocks.MockAuthUseCase{}
		user := &userDomain.User{ID: uuid.Must(uuid.NewV7()), Email: "john@example.com"}
		useCase.On("Register", mock.Anything, authUseCase.RegisterInput{
			Email:    "john@example.com",
			Password: "SecurePass123!",
		}).Return(user, nil)

		router := setupAuthRouter(useCase)
		w := postJSON(t, router, "/api/auth/register", gin.H{
			"email":    "john@example.com",
			"password": "SecurePass123!",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, w.Body.String())
		useCase.AssertExpectations(t)
	})

	t.Run("Failure_DuplicateEmailReturns409", func(t *testing.T) {
		useCase := &mocks.MockAuthUseCase{}
		useCase.On("Register", mock.Anything, mock.Anything).
			Return(nil, userDomain.ErrUserAlreadyExists)

		router := setupAuthRouter(useCase)
		w := postJSON(t, router, "/api/auth/register", gin.H{
			"email":    "john@example.com",
			"password": "SecurePass123!",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "conflict")
	})

	t.Run("Failure_MissingFieldsReturns422", func(t *testing.T) {
		useCase := &mocks.MockAuthUseCase{}
		router := setupAuthRouter(useCase)

		w := postJSON(t, router, "/api/auth/register", gin.H{"email": "john@example.com"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Failure_MalformedJSONReturns400", func(t *testing.T) {
		useCase := &mocks.MockAuthUseCase{}
		router := setupAuthRouter(useCase)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		useCase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestAuthHandler_LoginHandler(t *testing.T) {
	t.Run("Success_ReturnsTokenAndExpiration", func(t *testing.T) {
		useCase := &mocks.MockAuthUseCase{}
		expiresAt := time.Date(2025, 6, 15, 13, 0, 0, 0, time.UTC)
		useCase.On("Login", mock.Anything, authUseCase.LoginInput{
			Email:    "john@example.com",
			Password: "SecurePass123!",
		}).Return(&authUseCase.LoginOutput{
			Token:     "signed.session.token",
			ExpiresAt: expiresAt,
		}, nil)

		router := setupAuthRouter(useCase)
		w := postJSON(t, router, "/api/auth/login", gin.H{
			"email":    "john@example.com",
			"password": "SecurePass123!",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "signed.session.token", resp["token"])
		assert.Equal(t, "2025-06-15T13:00:00Z", resp["expires_at"])
		useCase.AssertExpectations(t)
	})

	t.Run("Failure_InvalidCredentialsReturns401", func(t *testing.T) {
		useCase := &mocks.MockAuthUseCase{}
		useCase.On("Login", mock.Anything, mock.Anything).
			Return(nil, authDomain.ErrInvalidCredentials)

		router := setupAuthRouter(useCase)
		w := postJSON(t, router, "/api/auth/login", gin.H{
			"email":    "john@example.com",
			"password": "WrongPass123!",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "unauthorized")
	})

	t.Run("Failure_UnknownEmailAndWrongPasswordSameResponse", func(t *testing.T) {
		// Both failure modes surface the same sentinel, so the HTTP responses
		// are byte-identical.
		useCase := &mocks.MockAuthUseCase{}
		useCase.On("Login", mock.Anything, mock.Anything).
			Return(nil, authDomain.ErrInvalidCredentials)

		router := setupAuthRouter(useCase)

		wUnknown := postJSON(t, router, "/api/auth/login", gin.H{
			"email":    "ghost@example.com",
			"password": "SecurePass123!",
		})
		wWrong := postJSON(t, router, "/api/auth/login", gin.H{
			"email":    "john@example.com",
			"password": "WrongPass123!",
		})

		assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
		assert.Equal(t, wUnknown.Code, wWrong.Code)
		assert.Equal(t, wUnknown.Body.String(), wWrong.Body.String())
	})

	t.Run("Failure_MissingFieldsReturns422", func(t *testing.T) {
		useCase := &mocks.MockAuthUseCase{}
		router := setupAuthRouter(useCase)

		w := postJSON(t, router, "/api/auth/login", gin.H{"password": "SecurePass123!"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		useCase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}
