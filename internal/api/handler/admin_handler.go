package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/agent-match/pkg/response"
)

// SeedBoard idempotently seeds the demo rows. reset=true clears the board
// and the action ledger first.
// @Summary Seed the demo board
// @Tags admin
// @Param reset query bool false "clear all state first"
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/admin/seed [post]
func (h *Handler) SeedBoard(c *gin.Context) {
	reset, _ := strconv.ParseBool(c.DefaultQuery("reset", "false"))
	if reset {
		h.actions.Reset(c.Request.Context())
	}
	counts := h.board.Seed(c.Request.Context(), reset)
	response.Success(c, gin.H{"inserted": counts})
}

// BoardCounts reports per-category board sizes.
// @Summary Board sizes
// @Tags admin
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/admin/board/counts [get]
func (h *Handler) BoardCounts(c *gin.Context) {
	response.Success(c, gin.H{"counts": h.board.Counts(c.Request.Context())})
}
