package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/agent-match/internal/model"
	"github.com/d60-Lab/agent-match/internal/service"
	"github.com/d60-Lab/agent-match/pkg/response"
)

type requestActionRequest struct {
	Category         string `json:"category"`
	RecommendationID string `json:"recommendation_id" binding:"required"`
	RequesterEmail   string `json:"requester_email" binding:"required,email"`
	RequesterName    string `json:"requester_name"`
	Note             string `json:"note"`
}

type transitionRequest struct {
	Command    string `json:"command" binding:"required,oneof=accept reject confirm cancel"`
	ActorEmail string `json:"actor_email" binding:"required,email"`
	Note       string `json:"note"`
}

type listActionsQuery struct {
	Category    string `form:"category"`
	ViewerEmail string `form:"viewer_email" binding:"omitempty,email"`
}

// writeActionError maps the service error taxonomy onto HTTP statuses. The
// four failure classes stay distinguishable on the wire.
func writeActionError(c *gin.Context, err error) {
	var invalid *service.InvalidTransitionError
	switch {
	case errors.Is(err, service.ErrActionNotFound), errors.Is(err, service.ErrListingNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		response.Forbidden(c, err.Error())
	case errors.As(err, &invalid):
		response.Conflict(c, err.Error(), gin.H{"allowed": invalid.Allowed})
	default:
		response.BadRequest(c, err.Error())
	}
}

// RequestAction opens (or returns the already-active) match request.
// @Summary Request a match
// @Tags actions
// @Accept json
// @Produce json
// @Param request body requestActionRequest true "match request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/actions [post]
func (h *Handler) RequestAction(c *gin.Context) {
	var req requestActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	view, err := h.actionSvc.Request(c.Request.Context(), req.Category, req.RecommendationID, req.RequesterEmail, req.RequesterName, req.Note)
	if err != nil {
		writeActionError(c, err)
		return
	}
	response.Success(c, view)
}

// TransitionAction advances an action's lifecycle.
// @Summary Transition an action
// @Tags actions
// @Accept json
// @Produce json
// @Param id path string true "action id"
// @Param request body transitionRequest true "command and actor"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/actions/{id}/transition [post]
func (h *Handler) TransitionAction(c *gin.Context) {
	var req transitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	view, err := h.actionSvc.Transition(c.Request.Context(), c.Param("id"), model.ActionCommand(req.Command), req.ActorEmail, req.Note)
	if err != nil {
		writeActionError(c, err)
		return
	}
	response.Success(c, view)
}

// ListActions lists actions, serialized for the viewer.
// @Summary List actions
// @Tags actions
// @Param category query string false "category id"
// @Param viewer_email query string false "viewer identity"
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/actions [get]
func (h *Handler) ListActions(c *gin.Context) {
	var req listActionsQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	views := h.actionSvc.List(c.Request.Context(), req.Category, req.ViewerEmail)
	response.Success(c, gin.H{"count": len(views), "actions": views})
}
