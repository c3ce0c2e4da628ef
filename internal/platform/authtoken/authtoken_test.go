package authtoken

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
)

func testConfig(now time.Time) Config {
	return Config{
		Secret: []byte("test-secret-value"),
		Issuer: "tppb-backoffice",
		Now:    func() time.Time { return now },
	}
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	cfg := testConfig(now)

	token, err := Issue(cfg, "siti", "", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := Verify(cfg, token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Operator != "siti" {
		t.Fatalf("operator = %q, want %q", claims.Operator, "siti")
	}
	if claims.Role != DefaultRole {
		t.Fatalf("role = %q, want %q", claims.Role, DefaultRole)
	}
	if !claims.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("expires = %v", claims.ExpiresAt)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	issued := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	token, err := Issue(testConfig(issued), "siti", "admin", time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	_, err = Verify(testConfig(issued.Add(time.Hour)), token)
	if !errors.Is(err, apperrors.New(apperrors.CodeUnauthenticated, "")) {
		t.Fatalf("err = %v, want unauthenticated", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	token, err := Issue(testConfig(now), "siti", "admin", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	other := testConfig(now)
	other.Secret = []byte("another-secret")
	if _, err := Verify(other, token); apperrors.CodeOf(err) != apperrors.CodeUnauthenticated {
		t.Fatalf("err = %v, want unauthenticated", err)
	}
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	token, err := Issue(testConfig(now), "siti", "admin", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	other := testConfig(now)
	other.Issuer = "someone-else"
	if _, err := Verify(other, token); err == nil {
		t.Fatal("expected issuer mismatch")
	}
}

func TestIssueValidation(t *testing.T) {
	t.Parallel()

	cfg := testConfig(time.Now())
	if _, err := Issue(cfg, " ", "", time.Hour); err == nil {
		t.Fatal("expected operator error")
	}
	if _, err := Issue(cfg, "siti", "", 0); err == nil {
		t.Fatal("expected ttl error")
	}
	if _, err := Issue(Config{}, "siti", "", time.Hour); err == nil {
		t.Fatal("expected secret error")
	}
	if _, err := Verify(cfg, ""); apperrors.CodeOf(err) != apperrors.CodeUnauthenticated {
		t.Fatalf("empty token err = %v", err)
	}
}
