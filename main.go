package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	bookingRepoPkg "medibook/database/repository/booking"
	doctorRepoPkg "medibook/database/repository/doctor"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	"medibook/services/availability"
	"medibook/services/booking"
	"medibook/services/doctor"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	doctorService := &doctor.DefaultDoctorService{
		Repo:  doctorRepo,
		Cache: utils.GetCacheClient(),
	}
	availabilityService := &availability.DefaultAvailabilityService{
		Doctors:    doctorRepo,
		Bookings:   bookingRepo,
		WindowDays: config.AppConfig.BookingWindowDays,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:       bookingRepo,
		Doctors:    doctorRepo,
		WindowDays: config.AppConfig.BookingWindowDays,
	}

	// handlers.
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Availability endpoints.
		GetDoctorAvailabilityHandler: availabilityHandler.GetDoctorAvailabilityHandler,

		// Doctor directory endpoints.
		ListDoctorsHandler:              doctorHandler.ListDoctorsHandler,
		GetDoctorByIDHandler:            doctorHandler.GetDoctorByIDHandler,
		CreateDoctorHandler:             doctorHandler.CreateDoctorHandler,
		UpdateDoctorHandler:             doctorHandler.UpdateDoctorHandler,
		UpdateWeeklyAvailabilityHandler: doctorHandler.UpdateWeeklyAvailabilityHandler,
		DeleteDoctorHandler:             doctorHandler.DeleteDoctorHandler,

		// Booking endpoints.
		CreateBookingHandler:       bookingHandler.CreateBookingHandler,
		ListPatientBookingsHandler: bookingHandler.ListPatientBookingsHandler,
		ListDoctorBookingsHandler:  bookingHandler.ListDoctorBookingsHandler,
		UpdateBookingStatusHandler: bookingHandler.UpdateBookingStatusHandler,
		CancelBookingHandler:       bookingHandler.CancelBookingHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the completion sweeper.
	sweeper := cron.StartCompletionSweeper(bookingRepo)
	defer sweeper.Stop()

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
