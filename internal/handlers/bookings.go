package handlers

import (
	"net/http"

	"placehub/internal/middleware"
	"placehub/internal/models"

	"github.com/gin-gonic/gin"
)

// Bookings handlers

// CreateBooking - POST /api/places/:id/bookings
// Register a pending booking for a place. Open to the public.
func (h *Handlers) CreateBooking(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Bookings.Create(c.Request.Context(), id, &req)
	if err != nil {
		h.respondError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ListPlaceBookings - GET /api/places/:id/bookings
// Return one place's bookings to its manager or the admin.
func (h *Handlers) ListPlaceBookings(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	mgr, ok := middleware.ManagerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "manager session required"})
		return
	}

	bookings, err := h.services.Bookings.ListByPlace(c.Request.Context(), mgr, id)
	if err != nil {
		h.respondError(c, err, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ListAllBookings - GET /api/admin/bookings
// Admin-only view across every place.
func (h *Handlers) ListAllBookings(c *gin.Context) {
	mgr, ok := middleware.ManagerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "manager session required"})
		return
	}

	bookings, err := h.services.Bookings.ListAll(c.Request.Context(), mgr)
	if err != nil {
		h.respondError(c, err, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus - PUT /api/bookings/:id/status
// Move a booking to a new lifecycle status. Owning manager or admin only.
func (h *Handlers) UpdateBookingStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	mgr, ok := middleware.ManagerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "manager session required"})
		return
	}

	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Bookings.UpdateStatus(c.Request.Context(), mgr, id, req.Status)
	if err != nil {
		h.respondError(c, err, "Failed to update booking status")
		return
	}

	c.JSON(http.StatusOK, booking)
}
