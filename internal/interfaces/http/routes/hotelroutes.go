package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/http/handlers"
	"github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/http/middleware"
)

// HotelRouteConfig holds dependencies for the hotel catalog routes.
type HotelRouteConfig struct {
	HotelHandler      *handlers.HotelHandler
	DetailsHandler    *handlers.HotelDetailsHandler
	RoomNumberHandler *handlers.RoomNumberHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupHotelRoutes configures hotel catalog, hotel details and room number
// routes. Reads are public so the booking site can browse the catalog;
// writes require an authenticated back-office user.
func SetupHotelRoutes(engine *gin.Engine, cfg *HotelRouteConfig) {
	hotels := engine.Group("/api/web-hotels")
	{
		// Specific named endpoints must come before /:id
		hotels.GET("/search", cfg.HotelHandler.Search)
		hotels.GET("/top-selling", cfg.HotelHandler.TopSelling)

		hotels.GET("", cfg.HotelHandler.List)
		hotels.GET("/:id", cfg.HotelHandler.Get)

		hotels.POST("", cfg.AuthMiddleware.RequireAuth(), cfg.HotelHandler.Create)
		hotels.PUT("/:id", cfg.AuthMiddleware.RequireAuth(), cfg.HotelHandler.Update)
		hotels.DELETE("/:id", cfg.AuthMiddleware.RequireAuth(), cfg.HotelHandler.Delete)
	}

	details := engine.Group("/api/web-hotel-details")
	{
		details.GET("", cfg.DetailsHandler.List)
		details.GET("/hotel/:hotelID", cfg.DetailsHandler.GetByHotel)
		details.GET("/hotel/:hotelID/categories", cfg.DetailsHandler.Categories)
		details.GET("/:id", cfg.DetailsHandler.Get)
		details.GET("/:id/categories", cfg.DetailsHandler.CategoriesByID)

		details.POST("", cfg.AuthMiddleware.RequireAuth(), cfg.DetailsHandler.Create)
		details.PUT("/:id", cfg.AuthMiddleware.RequireAuth(), cfg.DetailsHandler.Update)
		details.DELETE("/:id", cfg.AuthMiddleware.RequireAuth(), cfg.DetailsHandler.Delete)
	}

	rooms := engine.Group("/api/room-numbers")
	{
		rooms.GET("", cfg.RoomNumberHandler.List)
		rooms.GET("/category/:categoryName", cfg.RoomNumberHandler.ListByCategory)
		rooms.GET("/hotel/:hotelID", cfg.RoomNumberHandler.ListByHotel)
		rooms.GET("/hotel/:hotelID/category/:categoryName", cfg.RoomNumberHandler.ListByHotelAndCategory)
		rooms.GET("/:id", cfg.RoomNumberHandler.Get)

		rooms.POST("", cfg.AuthMiddleware.RequireAuth(), cfg.RoomNumberHandler.Create)
		rooms.PUT("/:id", cfg.AuthMiddleware.RequireAuth(), cfg.RoomNumberHandler.Update)
		rooms.DELETE("/:id", cfg.AuthMiddleware.RequireAuth(), cfg.RoomNumberHandler.Delete)
	}
}
