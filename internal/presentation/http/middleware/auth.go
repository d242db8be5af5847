package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/application/services"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/user"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
)

// AuthCookieName is the httpOnly cookie carrying the admin session token.
const AuthCookieName = "admin-token"

const adminUserKey = "adminUser"

// AuthMiddleware guards admin routes. The token comes from the session
// cookie or an Authorization bearer header; every verification failure
// yields the same 401. The token is re-verified on each request, so there
// is no session state to invalidate server-side.
func AuthMiddleware(authService *services.AuthService, logger *logging.ChanneledLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		identity, err := authService.ValidateToken(token)
		if err != nil {
			logger.Auth().Warn("Unauthorized access attempt", "path", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		c.Set(adminUserKey, identity)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetAdminUser returns the identity attached by AuthMiddleware.
func GetAdminUser(c *gin.Context) (*user.AdminUser, bool) {
	value, exists := c.Get(adminUserKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*user.AdminUser)
	return identity, ok
}
