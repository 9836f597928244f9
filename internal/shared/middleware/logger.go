package middleware

import (
	"log/slog"
	"time"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// LoggerMiddleware binds a request logger to the context and writes one line per request
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		// request_id is attached to every log line of this request
		reqLogger := slog.Default().With("request_id", GetRequestID(c))
		ctx := logger.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"route", c.FullPath(),
			"status", status,
			"latency", time.Since(start).String(),
			"ip", c.ClientIP(),
		}

		if raw != "" {
			fields = append(fields, "query", raw)
		}

		// original errors are only logged, never sent to the client
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		msg := "Request processed"

		switch {
		case status >= 500:
			reqLogger.Error(msg, fields...)
		case status >= 400:
			reqLogger.Warn(msg, fields...)
		case path == "/health":
			reqLogger.Debug(msg, fields...)
		default:
			reqLogger.Info(msg, fields...)
		}
	}
}
