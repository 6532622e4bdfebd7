// Package http provides HTTP handlers and middleware for authentication operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/winwin/textproc/internal/auth/http/dto"
	authUseCase "github.com/winwin/textproc/internal/auth/usecase"
	"github.com/winwin/textproc/internal/httputil"
	customValidation "github.com/winwin/textproc/internal/validation"
)

// AuthHandler handles HTTP requests for account registration and login.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(authUseCase authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// RegisterHandler creates a new account.
// POST /api/auth/register - Returns 201 Created with an empty body,
// or 409 Conflict when the email is already taken.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := authUseCase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	}

	// Call use case
	if _, err := h.authUseCase.Register(c.Request.Context(), input); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusCreated)
}

// LoginHandler verifies credentials and issues a session token.
// POST /api/auth/login - Returns 200 OK with the token and expiration,
// or 401 Unauthorized for unknown email or wrong password alike.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := authUseCase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	// Call use case
	output, err := h.authUseCase.Login(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.LoginResponse{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	}

	c.JSON(http.StatusOK, response)
}
