package handlers

import (
	"net/http"

	"riftrank/api/filters"
	duoservice "riftrank/api/services/duos"

	"github.com/gin-gonic/gin"
)

// Duos handler.
type DuoHandler struct {
	duoService *duoservice.DuoService
}

type DuoHandlerDependencies struct {
	DuoService *duoservice.DuoService
}

// NewDuoHandler creates a new instance of the duos handler.
func NewDuoHandler(deps *DuoHandlerDependencies) *DuoHandler {
	return &DuoHandler{
		duoService: deps.DuoService,
	}
}

// GetDuos handles getting the duo summary of every player.
func (h *DuoHandler) GetDuos(c *gin.Context) {
	var qp filters.DuoQueryParams

	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := filters.NewDuoFilter(&qp)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.duoService.GetDuos(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
