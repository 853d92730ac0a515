package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"cabin-backend/config"
	"cabin-backend/controllers"
	"cabin-backend/repository"
	"cabin-backend/routes"
	"cabin-backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	ctx := context.Background()
	rdb := config.ConnectRedis(ctx)

	store := repository.NewStore(config.DB)
	cache := services.NewCache(rdb, 5*time.Minute)

	bookingSvc := services.NewBookingService(store)
	availabilitySvc := services.NewAvailabilityService(store)
	cabinSvc := services.NewCabinService(store, cache)
	guestRegistry := services.NewGuestRegistry(store)

	router := routes.SetupRouter(
		store,
		controllers.NewBookingController(bookingSvc, availabilitySvc),
		controllers.NewCabinController(cabinSvc),
		controllers.NewGuestController(guestRegistry),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
