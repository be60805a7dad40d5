package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/agent-match/pkg/response"
)

type publishRequest struct {
	Category   string `json:"category"`
	Message    string `json:"message" binding:"required"`
	OwnerName  string `json:"owner_name"`
	OwnerEmail string `json:"owner_email" binding:"omitempty,email"`
	OwnerPhone string `json:"owner_phone"`
}

// PublishListing posts (or updates) the caller's listing on a category board.
// @Summary Publish a listing
// @Tags matching
// @Accept json
// @Produce json
// @Param request body publishRequest true "listing text and owner identity"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/listings [post]
func (h *Handler) PublishListing(c *gin.Context) {
	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	rec, updated := h.publishSvc.Publish(c.Request.Context(), req.Category, req.Message, req.OwnerName, req.OwnerEmail, req.OwnerPhone)
	response.Success(c, gin.H{"listing": rec, "updated": updated})
}
