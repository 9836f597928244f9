package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	sharedContext "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/context"
	sharedError "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken     = "MISSING_TOKEN"
	invalidToken     = "INVALID_TOKEN"
	expiredToken     = "EXPIRED_TOKEN"
	missingAdmin     = "MISSING_ADMIN_TOKEN"
	invalidAdmin     = "INVALID_ADMIN_TOKEN"
	editSessionScope = "EDIT"
	adminScope       = "ADMIN"
)

// Domain errors
var (
	ErrMissingToken      = sharedError.NewDomainError(missingToken)
	ErrInvalidToken      = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken      = sharedError.NewDomainError(expiredToken)
	ErrMissingAdminToken = sharedError.NewDomainError(missingAdmin)
	ErrInvalidAdminToken = sharedError.NewDomainError(invalidAdmin)
)

// Register JWT error responses
func init() {
	sharedError.RegisterDomainErrorResponse(missingToken, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-001",
		Message: "비밀번호를 먼저 확인해 주세요.",
	})

	sharedError.RegisterDomainErrorResponse(invalidToken, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-001",
		Message: "비밀번호를 먼저 확인해 주세요.",
	})

	sharedError.RegisterDomainErrorResponse(expiredToken, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-002",
		Message: "수정 가능 시간이 지났습니다. 비밀번호를 다시 입력해 주세요.",
	})

	sharedError.RegisterDomainErrorResponse(missingAdmin, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "ADMIN-000",
		Message: "관리자 로그인이 필요합니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidAdmin, sharedError.ErrorResponse{
		Status:  http.StatusForbidden,
		Code:    "ADMIN-001",
		Message: "관리자 권한이 없습니다.",
	})
}

// EditSession requires an edit token obtained by verifying a listing password.
// The verified listing id is stored in the context; handlers compare it with the path.
func EditSession(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c, editSessionScope)
		if err != nil {
			handleJWTError(c, err)
			return
		}

		claims, err := tokenManager.ValidateEditToken(tokenString)
		if err != nil {
			logTokenFailure(c, editSessionScope, err)
			handleJWTError(c, mapTokenError(err))
			return
		}

		c.Set(sharedContext.EditListingIDKey, claims.ListingID)
		c.Next()
	}
}

// Admin requires an admin token signed with the shared secret.
func Admin(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c, adminScope)
		if err != nil {
			handleJWTError(c, err)
			return
		}

		claims, err := tokenManager.ValidateAdminToken(tokenString)
		if err != nil {
			logTokenFailure(c, adminScope, err)
			handleJWTError(c, ErrInvalidAdminToken)
			return
		}

		c.Set(sharedContext.AdminSubjectKey, claims.Subject)
		c.Next()
	}
}

// handleJWTError handles JWT errors using the standardized error response format
func handleJWTError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		c.JSON(resp.Status, resp)
	} else {
		// 예상치 못한 에러 → Fallback 응답
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-999",
			Message: "인증에 실패했습니다.",
		})
	}
	c.Abort()
}

func logTokenFailure(c *gin.Context, scope string, err error) {
	slog.Warn("JWT 토큰 검증 실패",
		"scope", scope,
		"error", err.Error(),
		"client_ip", c.ClientIP(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"request_id", GetRequestID(c),
	)
}

func extractToken(c *gin.Context, scope string) (string, error) {
	missing, invalid := ErrMissingToken, ErrInvalidToken
	if scope == adminScope {
		missing, invalid = ErrMissingAdminToken, ErrInvalidAdminToken
	}

	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", missing
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) {
		return "", invalid
	}

	return parts[1], nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	default:
		return ErrInvalidToken
	}
}
