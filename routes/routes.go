package routes

import (
	"net/http"
	"time"

	"medibook/handlers"
	"medibook/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the slot resolver endpoint.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/:doctorId", hb.GetDoctorAvailabilityHandler)
	}
}

// RegisterDoctorRoutes registers doctor directory endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.GET("", hb.ListDoctorsHandler)
		api.GET("/:id", hb.GetDoctorByIDHandler)
		api.POST("", hb.CreateDoctorHandler)
		api.PATCH("/:id", hb.UpdateDoctorHandler)
		api.PUT("/:id/weekly-availability", hb.UpdateWeeklyAvailabilityHandler)
		api.DELETE("/:id", hb.DeleteDoctorHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the reservation flow.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.CreateBookingHandler)
		api.GET("/patient/:patientId", hb.ListPatientBookingsHandler)
		api.GET("/doctor/:doctorId", hb.ListDoctorBookingsHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
