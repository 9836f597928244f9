package listing

import (
	"errors"
	"net/http"

	sharedContext "github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/tutor-board/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingService *ListingService
}

func NewListingHandler(listingService *ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

func (h *ListingHandler) Create(c *gin.Context) {
	var req CreateListingRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	response, err := h.listingService.Create(c.Request.Context(), c.Param("board"), req.Answers)
	if err != nil {
		respond(c, err)
		return
	}

	c.Header("Location", response.Location)
	c.JSON(http.StatusCreated, response)
}

func (h *ListingHandler) Search(c *gin.Context) {
	var req SearchListingsRequest
	if !handler.BindQuery(c, &req) {
		return
	}

	response, err := h.listingService.Search(c.Request.Context(), c.Param("board"), req)
	if err != nil {
		respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ListingHandler) Get(c *gin.Context) {
	response, err := h.listingService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ListingHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	response, err := h.listingService.Verify(c.Request.Context(), c.Param("id"), req.Password)
	if err != nil {
		respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ListingHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if !sharedContext.RequireEditSession(c, id) {
		return
	}

	var req UpdateListingRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	response, err := h.listingService.Update(c.Request.Context(), id, req)
	if err != nil {
		respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ListingHandler) ChangeStatus(c *gin.Context) {
	id := c.Param("id")
	if !sharedContext.RequireEditSession(c, id) {
		return
	}

	var req ChangeStatusRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	response, err := h.listingService.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ListingHandler) SubmitFeedback(c *gin.Context) {
	id := c.Param("id")
	if !sharedContext.RequireEditSession(c, id) {
		return
	}

	var req FeedbackRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	response, err := h.listingService.SubmitFeedback(c.Request.Context(), id, req.Answer)
	if err != nil {
		respond(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func respond(c *gin.Context, err error) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		handler.RespondError(c, err, validationErr.Response())
		return
	}
	handler.RespondDomainError(c, err)
}
