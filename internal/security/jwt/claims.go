package jwtutil

import (
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ScopeWrite allows creating, changing and deleting books.
const ScopeWrite = "books:write"

// WriteClaims is the payload of a write token. Scope is space-separated.
type WriteClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

func NewWriteClaims(subject, jti string, ttl time.Duration) WriteClaims {
	now := time.Now()
	return WriteClaims{
		Scope: ScopeWrite,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}

func (c WriteClaims) HasScope(s string) bool {
	return slices.Contains(strings.Fields(c.Scope), s)
}
