package handlers

import (
	"net/http"
	"time"

	"triptix/internal/models"
	"triptix/internal/payment"

	"github.com/gin-gonic/gin"
)

// ConfirmBooking - POST /api/bookings/confirm
// Validate the mock card form and persist the booking
func (h *Handlers) ConfirmBooking(c *gin.Context) {
	var req models.ConfirmBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Card checks belong to the boundary, not the booking core.
	if err := payment.ValidateCard(&req.Card, time.Now()); err != nil {
		h.handleServiceError(c, err, "Invalid card details")
		return
	}

	booking, err := h.services.Bookings.Confirm(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err, "Failed to confirm booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListBookings - GET /api/bookings
// Return the ledger in insertion order
func (h *Handlers) ListBookings(c *gin.Context) {
	response, err := h.services.Bookings.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, response)
}

// CancelBooking - PATCH /api/bookings/cancel
// Remove a booking from the ledger
func (h *Handlers) CancelBooking(c *gin.Context) {
	var req models.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Bookings.Cancel(c.Request.Context(), &req); err != nil {
		h.handleServiceError(c, err, "Failed to cancel booking")
		return
	}

	c.Status(http.StatusOK)
}
