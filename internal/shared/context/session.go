package context

import (
	"net/http"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/logger"

	sharedError "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/error"
	"github.com/gin-gonic/gin"
)

// Context keys for storing edit-session / admin information
const (
	EditListingIDKey = "edit_listing_id"
	AdminSubjectKey  = "admin_subject"
)

var editSessionRequired = sharedError.ErrorResponse{
	Status:  http.StatusUnauthorized,
	Code:    "AUTH-001",
	Message: "비밀번호를 먼저 확인해 주세요.",
}

func GetEditListingID(c *gin.Context) (string, bool) {
	v, exists := c.Get(EditListingIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// RequireEditSession checks that the verified edit session belongs to listingID.
// If not, an error response is sent and false is returned.
func RequireEditSession(c *gin.Context, listingID string) bool {
	sessionID, ok := GetEditListingID(c)
	if !ok || sessionID != listingID {
		c.JSON(editSessionRequired.Status, editSessionRequired)
		c.Abort()
		logger.FromContext(c.Request.Context()).Warn("[API] 수정 세션이 없거나 다른 글의 세션입니다.",
			"listing_id", listingID,
		)
		return false
	}
	c.Request = c.Request.WithContext(logger.With(c.Request.Context(), "edit_listing_id", sessionID))
	return true
}

func GetAdminSubject(c *gin.Context) string {
	return c.GetString(AdminSubjectKey)
}
