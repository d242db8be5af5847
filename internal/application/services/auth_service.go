package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/repositories"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/user"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/performance"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/security"
)

// AuthService handles admin authentication workflows and session tokens.
type AuthService struct {
	users       user.Repository
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
	jwtSecret   string
	tokenTTL    time.Duration
	dummyHash   string
}

// NewAuthService creates a new authentication service. bcryptCost must match
// the cost used for stored account hashes; the dummy hash derived from it
// keeps the unknown-account login path as expensive as a real password check.
func NewAuthService(users user.Repository, logger *logging.ChanneledLogger, perfTracker *performance.Tracker, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	dummyHash, err := security.HashPassword("timing-equalization-only", bcryptCost)
	if err != nil {
		dummyHash, _ = security.HashPassword("timing-equalization-only", 12)
	}
	return &AuthService{
		users:       users,
		logger:      logger,
		perfTracker: perfTracker,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		dummyHash:   dummyHash,
	}
}

// Login verifies credentials and issues a session token. Unknown accounts
// and wrong passwords produce the same ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*user.AdminUser, string, error) {
	marker := s.perfTracker.StartOperation("auth:login")
	defer marker.Complete()

	account, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			marker.SetError(err)
			return nil, "", fmt.Errorf("failed to look up account: %w", err)
		}
		// Burn a bcrypt verification so an unknown account costs the same
		// as a wrong password; without it the miss returns in microseconds.
		security.CheckPassword(s.dummyHash, password)
		s.logger.Auth().Warn("Login attempt for unknown account", "email", email)
		marker.SetSuccess(false)
		return nil, "", ErrInvalidCredentials
	}

	if !security.CheckPassword(account.PasswordHash, password) {
		s.logger.Auth().Warn("Login attempt with wrong password", "email", account.Email)
		marker.SetSuccess(false)
		return nil, "", ErrInvalidCredentials
	}

	token, err := security.GenerateSessionToken(account, s.jwtSecret, s.tokenTTL)
	if err != nil {
		marker.SetError(err)
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	s.logger.Auth().Info("Admin login", "email", account.Email)
	return account, token, nil
}

// ValidateToken verifies a session token and returns the identity it
// carries, without a storage round trip.
func (s *AuthService) ValidateToken(token string) (*user.AdminUser, error) {
	claims, err := security.ValidateJWT(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}
	identity := security.IdentityFromClaims(claims)
	if identity == nil {
		return nil, errors.New("invalid token")
	}
	return identity, nil
}

// TokenTTL exposes the configured session lifetime for cookie expiry.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}
