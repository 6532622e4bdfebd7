package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/winwin/textproc/internal/httputil"
	"github.com/winwin/textproc/internal/transform/http/dto"
	transformService "github.com/winwin/textproc/internal/transform/service"
	customValidation "github.com/winwin/textproc/internal/validation"
)

// TransformHandler handles transformation requests from internal callers.
// It must be mounted behind InternalAuthMiddleware.
type TransformHandler struct {
	transformer transformService.Transformer
	logger      *slog.Logger
}

// NewTransformHandler creates a new transform handler with required dependencies.
func NewTransformHandler(transformer transformService.Transformer, logger *slog.Logger) *TransformHandler {
	return &TransformHandler{
		transformer: transformer,
		logger:      logger,
	}
}

// TransformHandler reverses and uppercases the submitted text.
// POST /api/transform - Returns 200 OK with the result.
func (h *TransformHandler) TransformHandler(c *gin.Context) {
	var req dto.TransformRequest

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

	result := h.transformer.Transform(req.Text)

	c.JSON(http.StatusOK, dto.TransformResponse{Result: result})
}
