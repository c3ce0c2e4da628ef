// Package authtoken issues and verifies HS256 operator session tokens.
package authtoken

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/tppb-bridge/backoffice/internal/platform/errors"
	"github.com/tppb-bridge/backoffice/internal/platform/id"
)

// DefaultRole is assigned when a token is minted without a role.
const DefaultRole = "admin"

// Config holds signing inputs.
type Config struct {
	Secret []byte
	Issuer string
	Now    func() time.Time
}

// Enabled reports whether a signing secret is configured.
func (c Config) Enabled() bool {
	return len(c.Secret) > 0
}

// Claims are the validated operator claims.
type Claims struct {
	Operator  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Operator string `json:"operator"`
	Role     string `json:"role,omitempty"`
}

// Issue mints a token for operator valid for ttl.
func Issue(cfg Config, operator, role string, ttl time.Duration) (string, error) {
	operator = strings.TrimSpace(operator)
	if operator == "" {
		return "", errors.New("operator is required")
	}
	if !cfg.Enabled() {
		return "", errors.New("session secret is not configured")
	}
	if ttl <= 0 {
		return "", errors.New("ttl must be positive")
	}
	role = strings.TrimSpace(role)
	if role == "" {
		role = DefaultRole
	}
	now := cfg.now()
	jti, err := id.NewID()
	if err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   operator,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Operator: operator,
		Role:     role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates token and returns its claims. All failures carry
// CodeUnauthenticated.
func Verify(cfg Config, token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, apperrors.New(apperrors.CodeUnauthenticated, "token is required")
	}
	if !cfg.Enabled() {
		return Claims{}, errors.New("session secret is not configured")
	}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(cfg.now),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return cfg.Secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, apperrors.Wrap(apperrors.CodeUnauthenticated, "token expired", err)
		}
		return Claims{}, apperrors.Wrap(apperrors.CodeUnauthenticated, "token invalid", err)
	}
	if strings.TrimSpace(parsed.Operator) == "" {
		return Claims{}, apperrors.New(apperrors.CodeUnauthenticated, "token operator is required")
	}
	claims := Claims{Operator: parsed.Operator, Role: parsed.Role}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	return claims, nil
}

func (c Config) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
