package admin

import (
	"net/http"

	sharedError "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/error"
)

const (
	invalidRetention = "INVALID_RETENTION" // errInfo
)

var (
	ErrInvalidRetention = sharedError.NewDomainError(invalidRetention)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidRetention, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ADMIN-002",
		Message: "보관 기간 형식이 올바르지 않습니다. (예: 720h)",
	})
}
