// Package http provides HTTP handlers for text processing operations.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/winwin/textproc/internal/auth/http"
	apperrors "github.com/winwin/textproc/internal/errors"
	"github.com/winwin/textproc/internal/httputil"
	"github.com/winwin/textproc/internal/processing/http/dto"
	processUseCase "github.com/winwin/textproc/internal/processing/usecase"
	customValidation "github.com/winwin/textproc/internal/validation"
)

// ProcessHandler handles HTTP requests for text transformation operations.
// It must be mounted behind the session middleware: the authenticated subject
// is read from the request context.
type ProcessHandler struct {
	processUseCase processUseCase.ProcessUseCase
	logger         *slog.Logger
}

// NewProcessHandler creates a new process handler with required dependencies.
func NewProcessHandler(
	processUseCase processUseCase.ProcessUseCase,
	logger *slog.Logger,
) *ProcessHandler {
	return &ProcessHandler{
		processUseCase: processUseCase,
		logger:         logger,
	}
}

// ProcessHandler transforms text on behalf of the authenticated caller.
// POST /api/process - Returns 200 OK with the result, 401 when the subject is
// unknown, 503 when the transform service is unavailable.
func (h *ProcessHandler) ProcessHandler(c *gin.Context) {
	subject, ok := authHTTP.GetSubject(c.Request.Context())
	if !ok {
		// Session middleware not run or misconfigured
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.ProcessRequest

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

	// Call use case
	result, err := h.processUseCase.Process(c.Request.Context(), subject, req.Text)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ProcessResponse{Result: result})
}

// HistoryHandler retrieves the caller's past transformations with pagination
// and optional time-based filtering.
// GET /api/history?offset=0&limit=50&created_at_from=...&created_at_to=...
// Returns 200 OK with entries ordered by created_at descending (newest first).
// Accepts optional created_at_from and created_at_to query parameters in
// RFC3339 format; timestamps are converted to UTC and both boundaries are
// inclusive.
func (h *ProcessHandler) HistoryHandler(c *gin.Context) {
	subject, ok := authHTTP.GetSubject(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	// Parse offset and limit query parameters
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Parse optional created_at_from query parameter
	var createdAtFrom *time.Time
	if fromStr := c.Query("created_at_from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			httputil.HandleBadRequestGin(c,
				fmt.Errorf("invalid created_at_from format: must be RFC3339 (e.g., 2026-02-01T00:00:00Z)"),
				h.logger)
			return
		}
		utcTime := parsed.UTC()
		createdAtFrom = &utcTime
	}

	// Parse optional created_at_to query parameter
	var createdAtTo *time.Time
	if toStr := c.Query("created_at_to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			httputil.HandleBadRequestGin(c,
				fmt.Errorf("invalid created_at_to format: must be RFC3339 (e.g., 2026-02-14T23:59:59Z)"),
				h.logger)
			return
		}
		utcTime := parsed.UTC()
		createdAtTo = &utcTime
	}

	// Validate that created_at_from is before or equal to created_at_to
	if createdAtFrom != nil && createdAtTo != nil && createdAtFrom.After(*createdAtTo) {
		httputil.HandleBadRequestGin(c,
			fmt.Errorf("created_at_from must be before or equal to created_at_to"),
			h.logger)
		return
	}

	// Call use case
	logs, err := h.processUseCase.History(c.Request.Context(), subject, offset, limit, createdAtFrom, createdAtTo)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapLogsToHistoryResponse(logs))
}
