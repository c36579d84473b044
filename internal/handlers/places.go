package handlers

import (
	"net/http"

	"placehub/internal/middleware"
	"placehub/internal/models"

	"github.com/gin-gonic/gin"
)

// Places handlers

// ListPlaces - GET /api/places
// Return every place with live seat availability.
func (h *Handlers) ListPlaces(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Places.List(c.Request.Context()))
}

// UpdateSeats - PUT /api/places/:id/seats
// Replace a place's free seat count. Manager session required.
func (h *Handlers) UpdateSeats(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	mgr, ok := middleware.ManagerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "manager session required"})
		return
	}

	var req models.UpdateSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	place, err := h.services.Places.UpdateSeats(c.Request.Context(), mgr, id, *req.FreeSeats)
	if err != nil {
		h.respondError(c, err, "Failed to update seats")
		return
	}

	c.JSON(http.StatusOK, place)
}
