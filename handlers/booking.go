package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"facilityai/models"
	"facilityai/services/booking"
)

// BookingHandler serves the availability query and booking creation flow.
type BookingHandler struct {
	BookingSvc booking.BookingService
	Logger     *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{BookingSvc: svc, Logger: logger}
}

// CheckAvailability handles POST /api/availability.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	slots, err := h.BookingSvc.CheckAvailability(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("CheckAvailability: query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch availability",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	result, err := h.BookingSvc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, booking.ErrSlotUnavailable) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Slot not available"})
			return
		}
		h.Logger.Error("CreateBooking: creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create booking",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
