package handlers

import (
	"errors"
	"net/http"

	"riftrank/api/filters"
	playerservice "riftrank/api/services/player"

	"github.com/gin-gonic/gin"
)

// Player handler.
type PlayerHandler struct {
	playerService *playerservice.PlayerService
}

type PlayerHandlerDependencies struct {
	PlayerService *playerservice.PlayerService
}

// NewPlayerHandler creates a new instance of the player handler.
func NewPlayerHandler(deps *PlayerHandlerDependencies) *PlayerHandler {
	return &PlayerHandler{
		playerService: deps.PlayerService,
	}
}

// GetRating handles getting the full rating row of one player.
func (h *PlayerHandler) GetRating(c *gin.Context) {
	var pp filters.PlayerURIParams

	if err := c.ShouldBindUri(&pp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.playerService.GetRating(c.Request.Context(), pp.Puuid)
	if err != nil {
		if errors.Is(err, playerservice.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

// GetRatingHistory handles getting the rating timeline of one player.
func (h *PlayerHandler) GetRatingHistory(c *gin.Context) {
	var pp filters.PlayerURIParams
	var qp filters.RatingHistoryQueryParams

	if err := c.ShouldBindUri(&pp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := filters.NewRatingHistoryFilter(&pp, &qp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.playerService.GetRatingHistory(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
