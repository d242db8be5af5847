package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/asikrahman/swe-portfolio-server/internal/application/services"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/presentation/http/middleware"
)

// AuthHandlers serves login, session introspection, and logout.
type AuthHandlers struct {
	authService *services.AuthService
	logger      *logging.ChanneledLogger
}

// NewAuthHandlers creates auth handlers with dependency injection
func NewAuthHandlers(authService *services.AuthService, logger *logging.ChanneledLogger) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		logger:      logger,
	}
}

// PostLogin handles POST /api/auth/login. On success the session token is
// set as an httpOnly cookie and also returned in the body for clients that
// prefer the Authorization header.
func (h *AuthHandlers) PostLogin(c *gin.Context) {
	var loginReq struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := decodeStrict(c, &loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if loginReq.Email == "" || loginReq.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	account, token, err := h.authService.Login(c.Request.Context(), loginReq.Email, loginReq.Password)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		respondServiceError(c, h.logger, err)
		return
	}

	maxAge := int(h.authService.TokenTTL().Seconds())
	c.SetCookie(
		middleware.AuthCookieName, // name
		token,                     // value
		maxAge,                    // maxAge
		"/",                       // path
		"",                        // domain (empty for current domain)
		false,                     // secure (set to true in production)
		true,                      // httpOnly
	)

	respondData(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    account.ID,
			"email": account.Email,
			"name":  account.Name,
			"role":  account.Role,
		},
	})
}

// GetMe handles GET /api/auth/me - returns the identity carried by the
// current session token.
func (h *AuthHandlers) GetMe(c *gin.Context) {
	identity, ok := middleware.GetAdminUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"id":    identity.ID,
		"email": identity.Email,
		"name":  identity.Name,
		"role":  identity.Role,
	})
}

// PostLogout handles POST /api/auth/logout - clears the session cookie.
// The token itself stays valid until expiry; there is no revocation list.
func (h *AuthHandlers) PostLogout(c *gin.Context) {
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", false, true)
	respondData(c, http.StatusOK, gin.H{"message": "Logged out"})
}
