// Package security provides JWT, password hashing, and identifier utilities
package security

import (
	"errors"
	"time"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/user"
	"github.com/golang-jwt/jwt/v4"
)

// ValidateJWT validates a session token and returns the claims. Every
// failure mode (malformed, bad signature, expired) collapses into the same
// error so callers cannot leak which check failed.
func ValidateJWT(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, errors.New("invalid token")
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GenerateSessionToken creates a signed session token for an admin user,
// valid for the supplied ttl from now.
func GenerateSessionToken(u *user.AdminUser, jwtSecret string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"userId": u.ID,
		"email":  u.Email,
		"name":   u.Name,
		"role":   u.Role,
		"iat":    now.Unix(),
		"exp":    now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// IdentityFromClaims extracts the admin identity carried by a verified token.
func IdentityFromClaims(claims jwt.MapClaims) *user.AdminUser {
	u := &user.AdminUser{}
	if v, ok := claims["userId"].(string); ok {
		u.ID = v
	}
	if v, ok := claims["email"].(string); ok {
		u.Email = v
	}
	if v, ok := claims["name"].(string); ok {
		u.Name = v
	}
	if v, ok := claims["role"].(string); ok {
		u.Role = v
	}
	if u.ID == "" || u.Email == "" {
		return nil
	}
	return u
}
