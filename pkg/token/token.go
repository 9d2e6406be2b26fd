package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for any token that cannot be
// accepted: bad signature, malformed string, or expired.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the authenticated user id alongside the registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"id"`
}

// Service issues and verifies signed bearer tokens using a process-wide
// HMAC secret loaded at startup.
type Service struct {
	secret   []byte
	validity time.Duration
}

// Config holds token service configuration.
type Config struct {
	Secret       string
	ValidityMins int
}

// NewService creates a token service. The secret must be non-empty.
func NewService(cfg Config) (*Service, error) {
	if cfg.Secret == "" {
		return nil, errors.New("token secret is required")
	}
	validity := time.Duration(cfg.ValidityMins) * time.Minute
	if validity <= 0 {
		validity = time.Hour
	}
	return &Service{
		secret:   []byte(cfg.Secret),
		validity: validity,
	}, nil
}

// Issue signs a token for the given user id, expiring after the configured
// validity window.
func (s *Service) Issue(userID int64) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.validity)),
		},
		UserID: userID,
	})

	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiration and returns the subject user id.
// Every failure mode collapses to ErrInvalidToken; callers have no reason
// to distinguish them.
func (s *Service) Verify(tokenString string) (int64, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// Validity returns the configured token lifetime.
func (s *Service) Validity() time.Duration {
	return s.validity
}
