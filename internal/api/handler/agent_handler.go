package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/agent-match/internal/catalog"
	"github.com/d60-Lab/agent-match/internal/service"
	"github.com/d60-Lab/agent-match/pkg/logger"
	"github.com/d60-Lab/agent-match/pkg/response"
)

type askRequest struct {
	Category string `json:"category"`
	Message  string `json:"message" binding:"required"`
	Mode     string `json:"mode" binding:"omitempty,matchmode"`
}

type routeRequest struct {
	Message string `json:"message" binding:"required"`
	Limit   int    `json:"limit" binding:"omitempty,min=1,max=10"`
}

// Ask runs a recommendation pass and asks the reply generator to narrate it.
// When the generator is unavailable the canned per-category fallback is used;
// that substitution is a policy of this layer, not of the matching core.
// @Summary Ask the category agent
// @Tags agent
// @Accept json
// @Produce json
// @Param request body askRequest true "user message"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/agent/ask [post]
func (h *Handler) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	ctx := c.Request.Context()
	recs := h.recommendSvc.Recommend(ctx, req.Category, req.Message, req.Mode)

	text, err := h.reply.Generate(ctx, req.Category, req.Mode, req.Message, service.RecommendationContext(recs))
	if err != nil {
		if !errors.Is(err, service.ErrReplyUnavailable) {
			logger.Warn("reply generation failed", zap.Error(err))
		}
		text = catalog.FallbackReply(req.Category, req.Mode)
	}
	response.Success(c, gin.H{
		"assistant_message": text,
		"recommendations":   recs,
	})
}

// Route suggests categories for a message before one is chosen.
// @Summary Route a message to categories
// @Tags agent
// @Accept json
// @Produce json
// @Param request body routeRequest true "free text to route"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/agent/route [post]
func (h *Handler) Route(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	suggestions := h.routerSvc.Route(c.Request.Context(), req.Message, req.Limit)
	response.Success(c, gin.H{"suggestions": suggestions})
}
