package listing

import (
	"fmt"
	"net/http"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/wizard"

	sharedError "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/error"
)

const (
	listingNotFound         = "LISTING_NOT_FOUND"         // errInfo
	incorrectPassword       = "INCORRECT_PASSWORD"        // errInfo
	invalidStatus           = "INVALID_STATUS"            // errInfo
	feedbackNotAllowed      = "FEEDBACK_NOT_ALLOWED"      // errInfo
	feedbackAlreadyRecorded = "FEEDBACK_ALREADY_RECORDED" // errInfo
	invalidFeedback         = "INVALID_FEEDBACK"          // errInfo
	invalidFormat           = "INVALID_FORMAT"            // errInfo
)

var (
	ErrListingNotFound = sharedError.NewDomainError(listingNotFound)
	// ErrIncorrectPassword covers wrong password, unknown listing and a listing
	// without a stored credential. Callers cannot tell them apart.
	ErrIncorrectPassword       = sharedError.NewDomainError(incorrectPassword)
	ErrInvalidStatus           = sharedError.NewDomainError(invalidStatus)
	ErrFeedbackNotAllowed      = sharedError.NewDomainError(feedbackNotAllowed)
	ErrFeedbackAlreadyRecorded = sharedError.NewDomainError(feedbackAlreadyRecorded)
	ErrInvalidFeedback         = sharedError.NewDomainError(invalidFeedback)
	ErrInvalidFormat           = sharedError.NewDomainError(invalidFormat)
)

func init() {
	sharedError.RegisterDomainErrorResponse(listingNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "LISTING-001",
		Message: "글을 찾을 수 없습니다.",
	})

	sharedError.RegisterDomainErrorResponse(incorrectPassword, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "LISTING-002",
		Message: "비밀번호가 올바르지 않습니다",
	})

	sharedError.RegisterDomainErrorResponse(invalidStatus, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "LISTING-003",
		Message: "상태는 OPEN 또는 CLOSED만 가능합니다.",
	})

	sharedError.RegisterDomainErrorResponse(feedbackNotAllowed, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "LISTING-004",
		Message: "마감된 글에만 응답할 수 있습니다.",
	})

	sharedError.RegisterDomainErrorResponse(feedbackAlreadyRecorded, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "LISTING-005",
		Message: "이미 응답한 글입니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidFeedback, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "LISTING-006",
		Message: "응답은 예(yes), 아니요(no), 건너뛰기(skip) 중 하나여야 합니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidFormat, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "LISTING-007",
		Message: "수업 방식은 online, offline, either 중 하나여야 합니다.",
	})
}

// ValidationError is a rejected wizard step or edit field. Reason is shown to
// the user as is.
type ValidationError struct {
	Step   wizard.StepKind
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("입력값 검증 실패 step=%s: %s", e.Step, e.Reason)
}

func (e *ValidationError) Response() sharedError.ErrorResponse {
	return sharedError.ValidationFailed.WithMessage(e.Reason).WithField(string(e.Step))
}

func newValidationError(step wizard.StepKind, reason string) error {
	return &ValidationError{Step: step, Reason: reason}
}
