package admin

import (
	"net/http"

	sharedContext "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/handler"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *AdminService
}

func NewAdminHandler(adminService *AdminService) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	response, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AdminHandler) Purge(c *gin.Context) {
	var req PurgeRequest
	// body is optional
	if c.Request.ContentLength > 0 && !handler.BindJSON(c, &req) {
		return
	}

	logger.FromContext(c.Request.Context()).Info("[ADMIN] 수동 정리 요청",
		"admin", sharedContext.GetAdminSubject(c),
		"retention", req.Retention,
	)

	response, err := h.adminService.Purge(c.Request.Context(), req.Retention)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
