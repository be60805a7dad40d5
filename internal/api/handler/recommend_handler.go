package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/agent-match/pkg/response"
)

type recommendQuery struct {
	Category string `form:"category"`
	Query    string `form:"q"`
	Mode     string `form:"mode" binding:"omitempty,matchmode"`
}

// Recommend ranks candidates for a category query.
// @Summary Recommend candidates
// @Tags matching
// @Param category query string false "category id"
// @Param q query string false "free-text query"
// @Param mode query string false "find or publish"
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/recommendations [get]
func (h *Handler) Recommend(c *gin.Context) {
	var req recommendQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	recs := h.recommendSvc.Recommend(c.Request.Context(), req.Category, req.Query, req.Mode)
	response.Success(c, gin.H{"count": len(recs), "recommendations": recs})
}
