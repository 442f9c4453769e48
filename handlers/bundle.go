package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates the handlers used when registering routes.
type HandlerBundle struct {
	// Availability endpoints.
	GetDoctorAvailabilityHandler gin.HandlerFunc

	// Doctor directory endpoints.
	ListDoctorsHandler              gin.HandlerFunc
	GetDoctorByIDHandler            gin.HandlerFunc
	CreateDoctorHandler             gin.HandlerFunc
	UpdateDoctorHandler             gin.HandlerFunc
	UpdateWeeklyAvailabilityHandler gin.HandlerFunc
	DeleteDoctorHandler             gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler       gin.HandlerFunc
	ListPatientBookingsHandler gin.HandlerFunc
	ListDoctorBookingsHandler  gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	CancelBookingHandler       gin.HandlerFunc
}
