package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/agent-match/internal/catalog"
	"github.com/d60-Lab/agent-match/internal/model"
	"github.com/d60-Lab/agent-match/pkg/response"
)

// Categories returns the static catalog.
// @Summary List categories
// @Tags catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c *gin.Context) {
	response.Success(c, catalog.Categories())
}

// Bootstrap returns the category welcome pack plus an initial recommendation
// set so a client can render the first screen with one call.
// @Summary Bootstrap a category session
// @Tags catalog
// @Param id path string true "category id"
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/categories/{id}/bootstrap [get]
func (h *Handler) Bootstrap(c *gin.Context) {
	id := c.Param("id")
	if _, ok := catalog.ByID(id); !ok {
		response.NotFound(c, "category not found")
		return
	}
	pack, _ := catalog.PackFor(id)
	// Empty query: the first screen ranks the whole board on the no-query
	// base instead of tokenizing a greeting, which would suppress market
	// categories to zero results.
	recs := h.recommendSvc.Recommend(c.Request.Context(), id, "", model.ModeFind)
	response.Success(c, gin.H{
		"welcome_message": pack.Welcome,
		"prompt_hint":     pack.PromptHint,
		"recommendations": recs,
	})
}
