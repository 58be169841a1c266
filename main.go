package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hive-backend/config"
	"hive-backend/controllers"
	"hive-backend/routes"
	"hive-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Sessions cannot be signed without a secret, so refuse to start.
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot sign session tokens.")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Initialize services; the activity recorder comes first so every
	// other service can log through it.
	activityService := services.NewActivityService(db)
	requestService := services.NewRequestService(db, activityService)
	utilityService := services.NewUtilityService(db, activityService)
	roomService := services.NewRoomService(db, activityService)
	tenantService := services.NewTenantService(db, activityService)
	noticeService := services.NewNoticeService(db, activityService)
	fixService := services.NewFixService(db, activityService)
	eventService := services.NewEventService(db, activityService)
	feedbackService := services.NewFeedbackService(db, activityService)

	// Initialize controllers
	authController := controllers.NewAuthController(db, activityService)
	requestController := controllers.NewRequestController(requestService)
	utilityController := controllers.NewUtilityController(utilityService)
	activityController := controllers.NewActivityController(activityService)
	roomController := controllers.NewRoomController(roomService)
	tenantController := controllers.NewTenantController(tenantService)
	noticeController := controllers.NewNoticeController(noticeService)
	fixController := controllers.NewFixController(fixService)
	eventController := controllers.NewEventController(eventService)
	feedbackController := controllers.NewFeedbackController(feedbackService)
	dashboardController := controllers.NewDashboardController(
		roomService, tenantService, requestService, utilityService, fixService, noticeService)

	router := routes.SetupRouter(
		authController,
		requestController,
		utilityController,
		activityController,
		roomController,
		tenantController,
		noticeController,
		fixController,
		eventController,
		feedbackController,
		dashboardController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
