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

	"hotel-management/config"
	"hotel-management/controllers"
	"hotel-management/routes"
	"hotel-management/services"
	"hotel-management/session"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	if err := config.ConnectRedis(); err != nil {
		log.Fatalf("❌ Redis connect failed: %v", err)
	}
	log.Println("✅ Redis connection established")

	sessions := session.NewManager(session.NewRedisStore(config.Redis))

	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	paymentService := services.NewPaymentService(db)
	staffService := services.NewStaffService(db)
	userService := services.NewUserService(db)
	settingsService := services.NewSettingsService(db)
	dashboardService := services.NewDashboardService(db)

	handlers := routes.Handlers{
		Rooms:     controllers.NewRoomController(roomService),
		Bookings:  controllers.NewBookingController(bookingService, roomService),
		Payments:  controllers.NewPaymentController(paymentService),
		Staff:     controllers.NewStaffController(staffService),
		Users:     controllers.NewUserController(userService),
		Settings:  controllers.NewSettingsController(settingsService),
		Dashboard: controllers.NewDashboardController(dashboardService),
		Auth:      controllers.NewAuthController(userService, sessions),
	}

	router := routes.SetupRouter(handlers, sessions)

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

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	if err := config.Redis.Close(); err != nil {
		log.Printf("⚠️  Redis close: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
