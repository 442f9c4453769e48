package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"medibook/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes the slot resolver over HTTP.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetDoctorAvailabilityHandler handles
// GET /api/availability/:doctorId?date=YYYY-MM-DD&blockPending=true|false.
func (h *AvailabilityHandler) GetDoctorAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	doctorID := c.Param("doctorId")

	var targetDate time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		targetDate = parsed
	}

	blockPending := true
	if raw := c.Query("blockPending"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid blockPending, expected true or false"})
			return
		}
		blockPending = parsed
	}

	result, err := h.Service.Resolve(doctorID, targetDate, blockPending)
	if err != nil {
		if errors.Is(err, availability.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		logger.Error("Failed to resolve availability", zap.String("doctorId", doctorID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute availability"})
		return
	}

	resp := gin.H{
		"success":        true,
		"available":      result.Available,
		"date":           result.Date,
		"dayOfWeek":      result.DayOfWeek,
		"timeSlots":      result.TimeSlots,
		"weeklySchedule": result.WeeklySchedule,
	}
	if result.Message != "" {
		resp["message"] = result.Message
	}
	c.JSON(http.StatusOK, resp)
}
