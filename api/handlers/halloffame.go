package handlers

import (
	"net/http"

	halloffameservice "riftrank/api/services/halloffame"

	"github.com/gin-gonic/gin"
)

// Hall of fame handler.
type HallOfFameHandler struct {
	hallOfFameService *halloffameservice.HallOfFameService
}

type HallOfFameHandlerDependencies struct {
	HallOfFameService *halloffameservice.HallOfFameService
}

// NewHallOfFameHandler creates a new instance of the hall of fame handler.
func NewHallOfFameHandler(deps *HallOfFameHandlerDependencies) *HallOfFameHandler {
	return &HallOfFameHandler{
		hallOfFameService: deps.HallOfFameService,
	}
}

// GetHallOfFame handles getting the holder of every title.
func (h *HallOfFameHandler) GetHallOfFame(c *gin.Context) {
	result, err := h.hallOfFameService.GetHallOfFame(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
