// File: handlers/booking.go
package handlers

import (
	"net/http"

	bookingRepo "roomdesk/database/repository/booking"
	"roomdesk/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves read access to persisted bookings.
type BookingHandler struct {
	Repo bookingRepo.BookingRepository
}

// NewBookingHandler returns a BookingHandler backed by the given repository.
func NewBookingHandler(repo bookingRepo.BookingRepository) *BookingHandler {
	return &BookingHandler{Repo: repo}
}

// ListMine returns the caller's persisted bookings.
func (h *BookingHandler) ListMine(c *gin.Context) {
	logger := getLogger(c)
	email := c.GetString("userEmail")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookings, err := h.Repo.GetByRequestor(c.Request.Context(), email)
	if err != nil {
		logger.Error("Failed to fetch bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.PersistedBooking{}
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetByID returns one persisted booking. Only the requestor can read it; a
// booking belonging to someone else reads as not found.
func (h *BookingHandler) GetByID(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	email := c.GetString("userEmail")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	booking, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		logger.Warn("Booking lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if booking.RequestorMail != email {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, booking)
}
