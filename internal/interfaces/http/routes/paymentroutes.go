package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/ratelimit"
	"github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/http/handlers"
	"github.com/anisurarzu/FTB-Server-Demo/internal/interfaces/http/middleware"
)

// PaymentRouteConfig holds dependencies for payment routes.
type PaymentRouteConfig struct {
	PaymentHandler *handlers.PaymentHandler
	RateLimiter    ratelimit.Limiter // may be nil if Redis is not configured
}

// SetupPaymentRoutes configures the bKash checkout routes. The callback
// endpoints stay unauthenticated because the gateway calls them directly.
func SetupPaymentRoutes(engine *gin.Engine, cfg *PaymentRouteConfig) {
	payment := engine.Group("/api/payment")
	if cfg.RateLimiter != nil {
		payment.Use(middleware.RateLimit(cfg.RateLimiter, "payment", 30, time.Minute))
	}
	{
		payment.POST("/initiate", cfg.PaymentHandler.Initiate)
		payment.POST("/execute", cfg.PaymentHandler.Execute)
		payment.POST("/verify", cfg.PaymentHandler.Verify)
		payment.POST("/callback", cfg.PaymentHandler.Callback)
		payment.GET("/callback", cfg.PaymentHandler.Callback)
	}
}
