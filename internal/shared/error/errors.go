package error

import (
	"errors"
	"net/http"
	"sync"
)

// DomainError is a sentinel whose Info key selects the client response.
type DomainError interface {
	error
	Info() string
}

type domainSentinel struct {
	errInfo string
}

func (e *domainSentinel) Error() string { return e.errInfo }
func (e *domainSentinel) Info() string  { return e.errInfo }

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"` // 위반한 입력 단계/필드 (검증 오류에만 사용)
}

// WithMessage returns a copy with a more specific client message.
func (r ErrorResponse) WithMessage(message string) ErrorResponse {
	r.Message = message
	return r
}

// WithField returns a copy pointing at the offending field or wizard step.
func (r ErrorResponse) WithField(field string) ErrorResponse {
	r.Field = field
	return r
}

var (
	mu                   sync.RWMutex
	domainErrorResponses = map[string]ErrorResponse{}
)

var (
	ValidationFailed = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-001",
		Message: "잘못된 요청입니다.",
	}

	// JSON 파싱 실패 등 요청 형식 오류
	InvalidRequest = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-002",
		Message: "잘못된 요청 형식입니다.",
	}

	InternalServerError = ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "ERROR-003",
		Message: "일시적인 오류가 발생했습니다. 잠시 후 다시 시도해 주세요.",
	}

	RouteNotFound = ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "ERROR-404",
		Message: "요청한 경로를 찾을 수 없습니다.",
	}
)

func NewDomainError(errInfo string) DomainError {
	return &domainSentinel{errInfo: errInfo}
}

// RegisterDomainErrorResponse is called from each package's init().
func RegisterDomainErrorResponse(errInfo string, resp ErrorResponse) {
	mu.Lock()
	defer mu.Unlock()
	domainErrorResponses[errInfo] = resp
}

// ResolveDomainError finds the response registered for the first DomainError
// in err's chain.
func ResolveDomainError(err error) (ErrorResponse, bool) {
	var domainErr DomainError
	if err == nil || !errors.As(err, &domainErr) {
		return ErrorResponse{}, false
	}

	mu.RLock()
	defer mu.RUnlock()
	resp, ok := domainErrorResponses[domainErr.Info()]
	return resp, ok
}
