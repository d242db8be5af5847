package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/repositories"
	"github.com/asikrahman/swe-portfolio-server/internal/domain/user"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/logging"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/observability/performance"
	"github.com/asikrahman/swe-portfolio-server/internal/infrastructure/security"
)

const testBcryptCost = 10

// fakeUserRepo serves a single seeded account from memory.
type fakeUserRepo struct {
	account *user.AdminUser
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.AdminUser, error) {
	if r.account != nil && r.account.Email == email {
		return r.account, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*user.AdminUser, error) {
	if r.account != nil && r.account.ID == id {
		return r.account, nil
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) Store(_ context.Context, u *user.AdminUser) error {
	r.account = u
	return nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int, error) {
	if r.account == nil {
		return 0, nil
	}
	return 1, nil
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToConsole: false,
		OutputToFile:    false,
		DefaultLevel:    slog.LevelError,
	})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	hash, err := security.HashPassword("correct-horse", testBcryptCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo := &fakeUserRepo{account: &user.AdminUser{
		ID:           "01A",
		Email:        "admin@portfolio.com",
		PasswordHash: hash,
		Name:         "Admin",
		Role:         "admin",
	}}

	return NewAuthService(repo, logger, performance.NewTracker(logger), "test-secret", time.Hour, testBcryptCost)
}

func TestLoginSuccess(t *testing.T) {
	svc := newTestAuthService(t)

	account, token, err := svc.Login(context.Background(), "admin@portfolio.com", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || account.Email != "admin@portfolio.com" {
		t.Fatalf("unexpected result: token=%q account=%+v", token, account)
	}

	identity, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if identity.ID != "01A" || identity.Role != "admin" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, _, errWrongPassword := svc.Login(ctx, "admin@portfolio.com", "wrong")
	_, _, errUnknownEmail := svc.Login(ctx, "nobody@portfolio.com", "wrong")

	if !errors.Is(errWrongPassword, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v", errWrongPassword)
	}
	if !errors.Is(errUnknownEmail, ErrInvalidCredentials) {
		t.Fatalf("unknown email: got %v", errUnknownEmail)
	}
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errWrongPassword, errUnknownEmail)
	}
}

// Both failure paths must cost a bcrypt verification; a repository miss that
// returns in microseconds would let a caller enumerate account emails.
func TestLoginFailureTimingIsUniform(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	const rounds = 3
	var wrongPassword, unknownEmail time.Duration
	for i := 0; i < rounds; i++ {
		start := time.Now()
		svc.Login(ctx, "admin@portfolio.com", "wrong")
		wrongPassword += time.Since(start)

		start = time.Now()
		svc.Login(ctx, "nobody@portfolio.com", "wrong")
		unknownEmail += time.Since(start)
	}

	// Generous bound: the paths hash at the same cost, so anything below a
	// fifth of the known-account time means the dummy compare is gone.
	if unknownEmail < wrongPassword/5 {
		t.Fatalf("unknown-email path too fast: %s vs %s for a wrong password", unknownEmail/rounds, wrongPassword/rounds)
	}
}
