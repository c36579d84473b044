package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"placehub/internal/auth"
	"placehub/internal/logger"
	"placehub/internal/models"

	"github.com/gin-gonic/gin"
)

// TokenHeader carries the manager session token.
const TokenHeader = "X-Manager-Token"

const managerKey = "manager"

// RequestLogger logs every completed request with a generated request id.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := logger.NewRequestID()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		latency := time.Since(start)
		logFields := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if m, ok := ManagerFromContext(c); ok {
			logFields = append(logFields, "manager", m.Username)
		}

		if c.Writer.Status() >= 400 {
			if len(c.Errors) > 0 {
				logFields = append(logFields, "error", c.Errors.String())
			}
			slog.Error("Request completed with error", logFields...)
			return
		}
		slog.Info("Request completed", logFields...)
	}
}

// Recovery turns panics into 500 responses with detailed logging.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("PANIC recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"client_ip", c.ClientIP(),
		)

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
	})
}

// RequireManager resolves the session token from the X-Manager-Token header
// and stores the manager in the request context. Requests without a valid
// session never reach the handler. Per-place authorization stays with the
// services, which know the target place.
func RequireManager(sessions *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		manager, ok := sessions.Resolve(c.GetHeader(TokenHeader))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing manager token"})
			return
		}
		c.Set(managerKey, manager)
		c.Next()
	}
}

// ManagerFromContext returns the manager attached by RequireManager.
func ManagerFromContext(c *gin.Context) (*models.Manager, bool) {
	v, exists := c.Get(managerKey)
	if !exists {
		return nil, false
	}
	m, ok := v.(*models.Manager)
	return m, ok
}
