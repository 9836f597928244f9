package board

import (
	"fmt"
	"net/http"

	sharedError "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	registry *Registry
}

func NewBoardHandler(registry *Registry) *BoardHandler {
	return &BoardHandler{
		registry: registry,
	}
}

func (h *BoardHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"boards": h.registry.All()})
}

func (h *BoardHandler) Get(c *gin.Context) {
	key := c.Param("board")
	b, ok := h.registry.Get(key)
	if !ok {
		err := fmt.Errorf("board=%s %w", key, ErrBoardNotFound)
		resp, _ := sharedError.ResolveDomainError(err)
		handler.RespondError(c, err, resp)
		return
	}
	c.JSON(http.StatusOK, b)
}
