package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/5w1tchy/isbn-books/internal/config"
	jwtutil "github.com/5w1tchy/isbn-books/internal/security/jwt"
)

type TokenCmd struct {
	Subject string        `required:"" help:"Who the token is for (sub claim)"`
	TTL     time.Duration `name:"ttl" default:"1h" help:"Lifetime of the token"`
	Secret  string        `name:"jwt-secret" env:"AUTH_JWT_SECRET" required:"" help:"HS256 secret shared with serve"`
}

func (c *TokenCmd) Run(log *slog.Logger) error {
	return issueToken(os.Stdout, log, c.Secret, c.Subject, c.TTL)
}

// issueToken prints a signed write token to w.
func issueToken(w io.Writer, log *slog.Logger, secret, subject string, ttl time.Duration) error {
	if len(secret) < config.MinSecretLen {
		return fmt.Errorf("AUTH_JWT_SECRET must be at least %d characters", config.MinSecretLen)
	}
	if ttl <= 0 {
		return fmt.Errorf("--ttl must be positive, got %s", ttl)
	}
	tok, jti, err := jwtutil.Sign(jwtutil.NewConfig(secret, 0), subject, ttl)
	if err != nil {
		return err
	}
	log.Info("issued write token", "subject", subject, "jti", jti, "expires_in", ttl)
	_, err = fmt.Fprintln(w, tok)
	return err
}
