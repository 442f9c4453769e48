package handlers

import (
	"errors"
	"net/http"

	bookingRepo "medibook/database/repository/booking"
	"medibook/models"
	"medibook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the reservation endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler reserves a slot.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateBooking(input)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrDoctorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		case errors.Is(err, booking.ErrInvalidSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Slot is no longer available"})
		default:
			logger.Error("Failed to create booking", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListPatientBookingsHandler returns a patient's bookings.
func (h *BookingHandler) ListPatientBookingsHandler(c *gin.Context) {
	logger := getLogger(c)
	patientID := c.Param("patientId")
	bookings, err := h.Service.ListPatientBookings(patientID)
	if err != nil {
		logger.Error("Failed to list patient bookings", zap.String("patientId", patientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListDoctorBookingsHandler returns the bookings held against a doctor.
func (h *BookingHandler) ListDoctorBookingsHandler(c *gin.Context) {
	logger := getLogger(c)
	doctorID := c.Param("doctorId")
	bookings, err := h.Service.ListDoctorBookings(doctorID)
	if err != nil {
		logger.Error("Failed to list doctor bookings", zap.String("doctorId", doctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatusHandler applies a status transition (accept, reject, complete).
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	var input struct {
		Status string `json:"status" binding:"required"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.UpdateBookingStatus(id, input.Status, input.Reason)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, booking.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update booking status", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CancelBookingHandler cancels a pending or accepted booking.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	cancelled, err := h.Service.CancelBooking(id)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, booking.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to cancel booking", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}
	c.JSON(http.StatusOK, cancelled)
}
