package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/ratelimit"
	"github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/http/handlers"
	"github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    ratelimit.Limiter // may be nil if Redis is not configured
}

// SetupAuthRoutes configures registration, login and profile routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/api/auth")
	if cfg.RateLimiter != nil {
		auth.Use(middleware.RateLimit(cfg.RateLimiter, "auth", 20, time.Minute))
	}
	{
		auth.POST("/web-register", cfg.AuthHandler.Register)
		auth.POST("/web-login", cfg.AuthHandler.Login)
		auth.GET("/profile", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Profile)
	}
}
