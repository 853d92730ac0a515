package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cabin-backend/controllers"
	"cabin-backend/middleware"
	"cabin-backend/services"
)

// SetupRouter wires the HTTP surface: CORS, API key, identity resolution, and
// the resource routes.
func SetupRouter(
	store services.Store,
	bookingCtl *controllers.BookingController,
	cabinCtl *controllers.CabinController,
	guestCtl *controllers.GuestController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-API-Key", "X-User-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if origins := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	api.Use(middleware.APIKey(os.Getenv("API_KEY")))
	api.Use(middleware.Identity(store))
	{
		api.GET("/cabins", cabinCtl.ListCabins)
		api.POST("/cabins", cabinCtl.CreateCabin)
		api.GET("/cabins/:id", cabinCtl.GetCabin)
		api.PUT("/cabins/:id", cabinCtl.UpdateCabin)
		api.DELETE("/cabins/:id", cabinCtl.DeactivateCabin)
		api.GET("/cabins/:id/availability", bookingCtl.CheckAvailability)

		api.GET("/bookings", bookingCtl.ListBookings)
		api.POST("/bookings", bookingCtl.CreateBooking)
		api.GET("/bookings/counts", bookingCtl.BookingCounts)
		api.GET("/bookings/:id", bookingCtl.GetBooking)
		api.PUT("/bookings/:id", bookingCtl.UpdateBooking)
		api.DELETE("/bookings/:id", bookingCtl.CancelBooking)

		api.GET("/guests", guestCtl.ListGuests)
		api.GET("/guests/by-phone", guestCtl.GetGuestByPhone)
	}

	return r
}
