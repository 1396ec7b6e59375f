package jwtutil

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrNoSecret = errors.New("jwt secret is empty")

// Sign returns (tokenString, jti).
func Sign(cfg Config, subject string, ttl time.Duration) (string, string, error) {
	if len(cfg.Secret) == 0 {
		return "", "", ErrNoSecret
	}
	jti := uuid.NewString()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, NewWriteClaims(subject, jti, ttl))
	s, err := t.SignedString(cfg.Secret)
	return s, jti, err
}

// Parse verifies the HS256 signature and expiry (with leeway) and returns the claims.
func Parse(cfg Config, tokenStr string) (*WriteClaims, error) {
	if len(cfg.Secret) == 0 {
		return nil, ErrNoSecret
	}
	parser := jwt.NewParser(jwt.WithLeeway(cfg.ClockSkew), jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	token, err := parser.ParseWithClaims(tokenStr, &WriteClaims{}, func(t *jwt.Token) (any, error) {
		return cfg.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*WriteClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
