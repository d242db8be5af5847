package security

import (
	"strings"
	"testing"
	"time"

	"github.com/asikrahman/swe-portfolio-server/internal/domain/user"
)

const testSecret = "test-secret"

func testUser() *user.AdminUser {
	return &user.AdminUser{
		ID:    "01HTESTUSER000000000000000",
		Email: "admin@portfolio.com",
		Name:  "Admin",
		Role:  "admin",
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateJWT(token, testSecret)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	identity := IdentityFromClaims(claims)
	if identity == nil {
		t.Fatal("expected identity from valid claims")
	}
	if identity.Email != "admin@portfolio.com" || identity.Role != "admin" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateSessionToken(testUser(), testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateJWT(token, testSecret); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := GenerateSessionToken(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := ValidateJWT(token, "other-secret"); err == nil {
		t.Fatal("expected token signed with a different secret to fail")
	}
	if _, err := ValidateJWT("not-a-token", testSecret); err == nil {
		t.Fatal("expected malformed token to fail")
	}
}

func TestValidationErrorIsUniform(t *testing.T) {
	expired, _ := GenerateSessionToken(testUser(), testSecret, -time.Minute)

	_, errExpired := ValidateJWT(expired, testSecret)
	_, errGarbage := ValidateJWT("garbage", testSecret)

	if errExpired == nil || errGarbage == nil {
		t.Fatal("expected both validations to fail")
	}
	if errExpired.Error() != errGarbage.Error() {
		t.Fatalf("failure modes leak detail: %q vs %q", errExpired, errGarbage)
	}
}

func TestIdentityFromClaimsMissingFields(t *testing.T) {
	token, err := GenerateSessionToken(&user.AdminUser{Name: "ghost"}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ValidateJWT(token, testSecret)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if identity := IdentityFromClaims(claims); identity != nil {
		t.Fatalf("expected nil identity without id and email, got %+v", identity)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret", 4)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPassword(hash, "s3cret") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}

func TestGenerateULID(t *testing.T) {
	a := GenerateULID()
	b := GenerateULID()
	if len(a) != 26 || len(b) != 26 {
		t.Fatalf("unexpected ULID lengths: %d, %d", len(a), len(b))
	}
	if a == b {
		t.Fatal("consecutive ULIDs must differ")
	}
}

func TestGenerateSecureKey(t *testing.T) {
	key, err := GenerateSecureKey(64)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(key) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(key))
	}
	if strings.ToLower(key) != key {
		t.Fatal("expected lowercase hex")
	}
}
