package handlers

import (
	"net/http"

	"triptix/internal/models"

	"github.com/gin-gonic/gin"
)

// Search - POST /api/search
// Generate ticket offers for a route/date/mode query
func (h *Handlers) Search(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Search.Search(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err, "Failed to search tickets")
		return
	}

	c.JSON(http.StatusOK, response)
}

// OpenSeatMap - POST /api/seatmap/open
// Initialize seat occupancy for one ticket of the current search
func (h *Handlers) OpenSeatMap(c *gin.Context) {
	var req models.OpenSeatMapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Search.OpenSeatMap(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err, "Failed to open seat map")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ToggleSeat - PATCH /api/seatmap/toggle
// Select or deselect one seat in the open seat map
func (h *Handlers) ToggleSeat(c *gin.Context) {
	var req models.ToggleSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Search.ToggleSeat(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err, "Failed to toggle seat")
		return
	}

	c.JSON(http.StatusOK, response)
}
