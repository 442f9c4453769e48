package handlers

import (
	"errors"
	"net/http"

	doctorRepo "medibook/database/repository/doctor"
	"medibook/models"
	"medibook/services/doctor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler exposes the doctor directory endpoints.
type DoctorHandler struct {
	Service doctor.DoctorService
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// ListDoctorsHandler returns the directory, optionally filtered by specialty.
func (h *DoctorHandler) ListDoctorsHandler(c *gin.Context) {
	logger := getLogger(c)
	doctors, err := h.Service.ListDoctors(c.Query("specialty"))
	if err != nil {
		logger.Error("Failed to list doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list doctors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// GetDoctorByIDHandler returns a single directory entry.
func (h *DoctorHandler) GetDoctorByIDHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	doc, err := h.Service.GetDoctorByID(id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		logger.Error("Failed to fetch doctor", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get doctor"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// CreateDoctorHandler registers a new doctor.
func (h *DoctorHandler) CreateDoctorHandler(c *gin.Context) {
	logger := getLogger(c)
	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	created, err := h.Service.CreateDoctor(&doc)
	if err != nil {
		logger.Error("Failed to create doctor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create doctor"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateDoctorHandler updates a doctor's profile.
func (h *DoctorHandler) UpdateDoctorHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	var doc models.Doctor
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	doc.ID = id // Ensure the ID is set.
	updated, err := h.Service.UpdateDoctor(&doc)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		logger.Error("Failed to update doctor", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update doctor"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateWeeklyAvailabilityHandler replaces the doctor's weekly template.
func (h *DoctorHandler) UpdateWeeklyAvailabilityHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	var weekly models.WeeklyAvailability
	if err := c.ShouldBindJSON(&weekly); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	updated, err := h.Service.UpdateWeeklyAvailability(id, weekly)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		logger.Error("Failed to update weekly availability", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteDoctorHandler removes a doctor from the directory.
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")
	if err := h.Service.DeleteDoctor(id); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		logger.Error("Failed to delete doctor", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete doctor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctor deleted"})
}
