package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anisurarzu/FTB-Server-Demo/internal/infrastructure/auth"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/logger"
	"github.com/anisurarzu/FTB-Server-Demo/internal/shared/utils"
)

const contextKeyUserID = "user_id"

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth rejects requests without a valid Bearer token and stores the
// authenticated user ID in the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Validate(parts[1])
		if err != nil {
			m.logger.Warnw("failed to validate token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Next()
	}
}

// UserIDFromContext returns the user ID set by RequireAuth.
func UserIDFromContext(c *gin.Context) (uint, bool) {
	v, exists := c.Get(contextKeyUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
