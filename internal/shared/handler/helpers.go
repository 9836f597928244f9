package handler

import (
	"net/http"

	sharedError "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/validator"
	"github.com/gin-gonic/gin"
)

// BindJSON parses and validates JSON request body
// Returns true if binding succeeded, false if failed (response already sent)
//
// Usage:
//
//	var req CreateListingRequest
//	if !handler.BindJSON(c, &req) {
//	    return
//	}
func BindJSON(c *gin.Context, obj any) bool {
	return bind(c, obj, c.ShouldBindJSON)
}

// BindQuery is BindJSON for query-string parameters.
func BindQuery(c *gin.Context, obj any) bool {
	return bind(c, obj, c.ShouldBindQuery)
}

func bind(c *gin.Context, obj any, fn func(any) error) bool {
	if err := fn(obj); err != nil {
		// Add error to context for middleware logging
		c.Error(err)

		// Check if it's a validation error
		if resp, ok := validator.ToErrorResponse(err); ok {
			c.JSON(http.StatusBadRequest, resp)
		} else {
			// JSON parsing error or other binding errors
			c.JSON(sharedError.InvalidRequest.Status, sharedError.InvalidRequest)
		}
		return false
	}
	return true
}

// RespondError sends an error response with logging
//
// Usage:
//
//	if err := service.DoSomething(); err != nil {
//	    handler.RespondError(c, err, sharedError.InternalServerError)
//	    return
//	}
func RespondError(c *gin.Context, err error, errResp sharedError.ErrorResponse) {
	// Add error to context for middleware logging
	c.Error(err)

	// Send error response
	c.JSON(errResp.Status, errResp)
}

// RespondDomainError resolves a registered domain error, falling back to a
// generic internal error whose cause is only logged.
func RespondDomainError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		RespondError(c, err, resp)
		return
	}
	RespondError(c, err, sharedError.InternalServerError)
}
