// File: facilityai/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"facilityai/config"
	"facilityai/database"
	bookingRepo "facilityai/database/repository/booking"
	paymentRepo "facilityai/database/repository/payment"
	recordsRepo "facilityai/database/repository/records"
	slotRepo "facilityai/database/repository/slot"
	"facilityai/handlers"
	"facilityai/middleware"
	"facilityai/routes"
	"facilityai/services/booking"
	"facilityai/services/payment"
	"facilityai/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	client, err := database.Connect(ctx, config.AppConfig.DatabaseURL)
	cancel()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := client.Database(config.AppConfig.DatabaseName)

	cacheClient := utils.NewCacheClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	slots := slotRepo.NewMongoSlotRepo(db)
	bookings := bookingRepo.NewMongoBookingRepo(db)
	links := paymentRepo.NewMongoPaymentRepo(db)
	records := recordsRepo.NewMongoRecordRepo(db)

	// services.
	bookingService := &booking.DefaultBookingService{
		Slots:    slots,
		Bookings: bookings,
		Cache:    cacheClient,
		CacheTTL: time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
		Logger:   logger,
	}
	paymentService := &payment.DefaultPaymentService{
		Links:  links,
		Logger: logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Health:  handlers.NewHealthHandler(records),
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Payment: handlers.NewPaymentHandler(paymentService, logger),
		Records: handlers.NewRecordsHandler(slots, records, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Sugar().Warnf("main: error closing MongoDB connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
