package wizard

import (
	"fmt"
	"net/http"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/board"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type StepsRequest struct {
	Answers Answers `json:"answers"`
}

type StepsResponse struct {
	Total int    `json:"total"`
	Steps []Step `json:"steps"`
}

type AdvanceRequest struct {
	Step      int     `json:"step" binding:"min=0"`
	Direction string  `json:"direction" binding:"required,oneof=next back"`
	Answers   Answers `json:"answers"`
}

type AdvanceResponse struct {
	Step     int    `json:"step"`
	Total    int    `json:"total"`
	Current  Step   `json:"current"`
	Advanced bool   `json:"advanced"`
	Reason   string `json:"reason,omitempty"`
	Last     bool   `json:"last"`
}

// WizardHandler runs the step sequencer for clients that do not embed it.
// The session itself lives on the client; every call posts it back whole.
type WizardHandler struct {
	registry *board.Registry
}

func NewWizardHandler(registry *board.Registry) *WizardHandler {
	return &WizardHandler{
		registry: registry,
	}
}

func (h *WizardHandler) Steps(c *gin.Context) {
	b, ok := h.board(c)
	if !ok {
		return
	}

	var req StepsRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	steps := ComputeSteps(b, &req.Answers)
	c.JSON(http.StatusOK, StepsResponse{Total: len(steps), Steps: steps})
}

// Advance moves the posted session one step. A rejected "next" is not an HTTP
// error: the pointer stays and the reason is returned for display.
func (h *WizardHandler) Advance(c *gin.Context) {
	b, ok := h.board(c)
	if !ok {
		return
	}

	var req AdvanceRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	session := ResumeSession(b, req.Step, req.Answers)
	resp := AdvanceResponse{}
	switch req.Direction {
	case "next":
		resp.Advanced, resp.Reason = session.Next()
	case "back":
		before := session.Step
		session.Back()
		resp.Advanced = session.Step != before
	}

	resp.Step = session.Step
	resp.Total = session.Total()
	resp.Current = session.Current()
	resp.Last = session.IsLast()
	c.JSON(http.StatusOK, resp)
}

func (h *WizardHandler) board(c *gin.Context) (*board.Board, bool) {
	key := c.Param("board")
	b, ok := h.registry.Get(key)
	if !ok {
		handler.RespondDomainError(c, fmt.Errorf("board=%s %w", key, board.ErrBoardNotFound))
		return nil, false
	}
	return b, true
}
