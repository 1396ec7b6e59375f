package jwtutil

import (
	"time"
)

// Config is the HS256 key and how much expiry skew to tolerate.
type Config struct {
	Secret    []byte
	ClockSkew time.Duration
}

func NewConfig(secret string, skew time.Duration) Config {
	return Config{Secret: []byte(secret), ClockSkew: skew}
}

// DefaultTTL is used by the token command when no --ttl is given.
const DefaultTTL = time.Hour
