package jwtutil_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtutil "github.com/5w1tchy/isbn-books/internal/security/jwt"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestSignParse(t *testing.T) {
	cfg := jwtutil.NewConfig(secret, 0)
	tok, jti, err := jwtutil.Sign(cfg, "deploy-bot", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	claims, err := jwtutil.Parse(cfg, tok)
	require.NoError(t, err)
	assert.Equal(t, "deploy-bot", claims.Subject)
	assert.Equal(t, jti, claims.ID)
	assert.True(t, claims.HasScope(jwtutil.ScopeWrite))
}

func TestParse_Expired(t *testing.T) {
	cfg := jwtutil.NewConfig(secret, 0)
	tok, _, err := jwtutil.Sign(cfg, "s", -time.Minute)
	require.NoError(t, err)

	_, err = jwtutil.Parse(cfg, tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	// within leeway
	_, err = jwtutil.Parse(jwtutil.NewConfig(secret, 5*time.Minute), tok)
	assert.NoError(t, err)
}

func TestParse_RejectsOtherAlgorithms(t *testing.T) {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwtutil.NewWriteClaims("s", "j", time.Hour)).
		SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = jwtutil.Parse(jwtutil.NewConfig(secret, 0), tok)
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, _, err := jwtutil.Sign(jwtutil.Config{}, "s", time.Hour)
	assert.ErrorIs(t, err, jwtutil.ErrNoSecret)
	_, err = jwtutil.Parse(jwtutil.Config{}, "x.y.z")
	assert.ErrorIs(t, err, jwtutil.ErrNoSecret)
}

func TestHasScope(t *testing.T) {
	c := jwtutil.WriteClaims{Scope: "books:read books:write"}
	assert.True(t, c.HasScope("books:write"))
	assert.False(t, c.HasScope("books"))
}
