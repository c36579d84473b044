package handlers

import (
	"net/http"

	"placehub/internal/models"

	"github.com/gin-gonic/gin"
)

// Ratings handlers

// CreateRating - POST /api/places/:id/ratings
// Record an anonymous occupancy report. Open to the public.
func (h *Handlers) CreateRating(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.services.Ratings.Create(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, "Failed to create rating")
		return
	}

	c.JSON(http.StatusOK, rating)
}

// ListPlaceRatings - GET /api/places/:id/ratings
// Return one place's ratings in submission order.
func (h *Handlers) ListPlaceRatings(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.services.Ratings.ListByPlace(c.Request.Context(), id))
}

// RatingsSummary - GET /api/ratings/summary
// Derived per-place aggregates; places without ratings are absent.
func (h *Handlers) RatingsSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Ratings.Summarize(c.Request.Context()))
}
