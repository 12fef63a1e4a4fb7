package handlers

import (
	"net/http"

	"riftrank/api/filters"
	leaderboardservice "riftrank/api/services/leaderboard"

	"github.com/gin-gonic/gin"
)

// Leaderboard handler.
type LeaderboardHandler struct {
	leaderboardService *leaderboardservice.LeaderboardService
}

type LeaderboardHandlerDependencies struct {
	LeaderboardService *leaderboardservice.LeaderboardService
}

// NewLeaderboardHandler creates a new instance of the leaderboard handler.
func NewLeaderboardHandler(deps *LeaderboardHandlerDependencies) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: deps.LeaderboardService,
	}
}

// GetLeaderboard handles getting the rating ladder.
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	var qp filters.LeaderboardQueryParams

	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := filters.NewLeaderboardFilter(&qp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.leaderboardService.GetLeaderboard(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
