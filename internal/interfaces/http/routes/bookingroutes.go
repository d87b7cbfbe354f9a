package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/http/handlers"
	"github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/http/middleware"
)

// BookingRouteConfig holds dependencies for booking routes.
type BookingRouteConfig struct {
	BookingHandler *handlers.BookingHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupBookingRoutes configures booking management routes. All of them
// require an authenticated back-office user.
func SetupBookingRoutes(engine *gin.Engine, cfg *BookingRouteConfig) {
	bookings := engine.Group("/api/bookings")
	bookings.Use(cfg.AuthMiddleware.RequireAuth())
	{
		bookings.POST("", cfg.BookingHandler.Create)
		bookings.GET("", cfg.BookingHandler.List)

		// Specific named endpoints must come before /:id
		bookings.GET("/no/:bookingNo", cfg.BookingHandler.GetByBookingNo)
		bookings.GET("/hotel/:hotelID", cfg.BookingHandler.ListByHotel)
		bookings.GET("/user/:userID", cfg.BookingHandler.ListByUser)
		bookings.PATCH("/status/:id", cfg.BookingHandler.UpdateStatus)
		bookings.PATCH("/cancel/:id", cfg.BookingHandler.Cancel)

		bookings.GET("/:id", cfg.BookingHandler.Get)
		bookings.PUT("/:id", cfg.BookingHandler.Update)
		bookings.DELETE("/:id", cfg.BookingHandler.Delete)
	}
}
