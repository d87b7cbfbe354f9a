package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/ratelimit"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/utils"
)

// RateLimit returns a Gin middleware that enforces a per-IP request limit
// over a sliding window. The key scope keeps limits independent across
// route groups.
func RateLimit(limiter ratelimit.Limiter, scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil || allowed {
			c.Next()
			return
		}

		utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
		c.Abort()
	}
}
