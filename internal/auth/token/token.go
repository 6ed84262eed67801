// Package token issues and verifies the signed bearer tokens that stand in
// for sessions. Verification is pure: signature plus expiry, no storage
// lookup, so any handler can authenticate a request in O(1).
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shivam-rawat-4927/auth-service/internal/auth"
)

// DefaultTTL is the absolute lifetime of an issued token.
const DefaultTTL = 24 * time.Hour

// Claims binds an account identifier to the standard time claims.
type Claims struct {
	AccountID string `json:"userId"`
	jwt.RegisteredClaims
}

// Service signs and verifies bearer tokens with a process-wide HMAC key.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service. An empty secret is a configuration
// error: there is deliberately no fallback key.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}, nil
}

// Issue mints a signed token for the account, expiring ttl from now.
func (s *Service) Issue(accountID string) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks the signature and expiry and returns the embedded account
// identifier. Expired tokens are distinguishable from malformed ones.
func (s *Service) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", auth.ErrTokenMissing
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", auth.ErrTokenExpired
		}
		return "", auth.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.AccountID == "" {
		return "", auth.ErrTokenInvalid
	}

	return claims.AccountID, nil
}
