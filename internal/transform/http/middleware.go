// Package http provides the HTTP surface of the internal transform service.
package http

import (
	"crypto/sha256"
	"crypto/subtle"
	"log/slog"

	"github.com/gin-gonic/gin"

	apperrors "github.com/winwin/textproc/internal/errors"
	"github.com/winwin/textproc/internal/httputil"
)

// internalTokenHeader carries the shared secret that authenticates
// service-to-service callers.
const internalTokenHeader = "X-Internal-Token"

// InternalAuthMiddleware authenticates service-to-service calls via the
// X-Internal-Token header.
//
// The middleware rejects the request with 403 Forbidden BEFORE the body is
// read or bound: a caller without the shared secret triggers no work at all.
// The comparison is constant-time over SHA-256 digests of both values, so
// neither the length nor the content of the configured token leaks through
// timing.
func InternalAuthMiddleware(internalToken string, logger *slog.Logger) gin.HandlerFunc {
	expected := sha256.Sum256([]byte(internalToken))

	return func(c *gin.Context) {
		provided := sha256.Sum256([]byte(c.GetHeader(internalTokenHeader)))

		if subtle.ConstantTimeCompare(expected[:], provided[:]) != 1 {
			logger.Warn("internal auth failed: missing or invalid token",
				slog.String("remote_addr", c.ClientIP()))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
