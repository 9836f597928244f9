package board

import (
	"net/http"

	sharedError "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/error"
)

const (
	boardNotFound = "BOARD_NOT_FOUND" // errInfo
)

var (
	ErrBoardNotFound = sharedError.NewDomainError(boardNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(boardNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "BOARD-001",
		Message: "게시판을 찾을 수 없습니다.",
	})
}
