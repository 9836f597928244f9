package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	sharedError "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/error"
	"github.com/gin-gonic/gin"
)

const DefaultTimeout = 30 * time.Second

var requestTimeout = sharedError.ErrorResponse{
	Status:  http.StatusServiceUnavailable,
	Code:    "ERROR-004",
	Message: "요청 처리 시간이 초과되었습니다. 잠시 후 다시 시도해 주세요.",
}

// Timeout puts a deadline on the request context. Store calls observe it
// through WithContext; when the handler gave up without writing, a 503 is sent.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() != context.DeadlineExceeded {
			return
		}

		slog.Warn("Request deadline exceeded",
			"request_id", GetRequestID(c),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"timeout", timeout.String(),
			"status", c.Writer.Status(),
		)

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(requestTimeout.Status, requestTimeout)
		}
	}
}
