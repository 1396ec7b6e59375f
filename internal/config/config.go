package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database selects the backing store.
type Database struct {
	URL string `name:"database-url" env:"DATABASE_URL" required:"" help:"postgres://... or sqlite:<path> (sqlite::memory: for a throwaway DB)"`
}

// Log controls the process logger.
type Log struct {
	Level  string `name:"log-level" env:"LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Minimum log level"`
	Format string `name:"log-format" env:"LOG_FORMAT" default:"text" enum:"text,json" help:"text for terminals, json for collectors"`
}

// Server holds everything serve needs besides the database.
type Server struct {
	Addr            string        `name:"addr" env:"APP_ADDR" default:":3000" help:"Listen address"`
	TLSCert         string        `name:"tls-cert" env:"TLS_CERT" help:"PEM certificate; enables TLS together with --tls-key"`
	TLSKey          string        `name:"tls-key" env:"TLS_KEY" help:"PEM private key"`
	MaxBodySize     int64         `name:"max-body-size" env:"MAX_BODY_SIZE" default:"1048576" help:"Request body limit in bytes"`
	CORSOrigins     []string      `name:"cors-origins" env:"CORS_ORIGINS" help:"Allowed browser origins"`
	RedisURL        string        `name:"redis-url" env:"REDIS_URL" help:"Enables per-IP rate limiting when set"`
	RateLimitRPS    float64       `name:"rate-limit-rps" env:"RATE_LIMIT_RPS" default:"5" help:"Token refill rate per second"`
	RateLimitBurst  int           `name:"rate-limit-burst" env:"RATE_LIMIT_BURST" default:"20" help:"Token bucket capacity"`
	JWTSecret       string        `name:"jwt-secret" env:"AUTH_JWT_SECRET" help:"Requires a bearer write token on mutating routes when set"`
	ClockSkew       time.Duration `name:"clock-skew" env:"AUTH_CLOCK_SKEW" default:"60s" help:"Leeway for token expiry"`
	ShutdownTimeout time.Duration `name:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"10s" help:"Grace period for in-flight requests"`
	Migrate         bool          `name:"migrate" help:"Create the books table before serving"`
}

// S3 is the snapshot destination. Endpoint is optional for AWS proper.
type S3 struct {
	Endpoint        string `name:"s3-endpoint" env:"AWS_ENDPOINT" help:"S3-compatible endpoint URL"`
	Region          string `name:"s3-region" env:"AWS_REGION" default:"us-east-1"`
	Bucket          string `name:"s3-bucket" env:"AWS_BUCKET" required:""`
	AccessKeyID     string `name:"s3-access-key-id" env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `name:"s3-secret-access-key" env:"AWS_SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `name:"s3-path-style" env:"AWS_S3_PATH_STYLE" help:"Path-style addressing (MinIO and friends)"`
}

// MinSecretLen is the shortest accepted HS256 secret.
const MinSecretLen = 32

// LoadDotenv loads the first of files that exists. Missing files are not an error.
func LoadDotenv(files ...string) error {
	for _, f := range files {
		err := godotenv.Load(f)
		if err == nil {
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Validate fails fast on settings serve cannot run with.
func (s Server) Validate() error {
	if s.JWTSecret != "" && len(s.JWTSecret) < MinSecretLen {
		return fmt.Errorf("AUTH_JWT_SECRET must be at least %d characters", MinSecretLen)
	}
	if (s.TLSCert == "") != (s.TLSKey == "") {
		return errors.New("TLS_CERT and TLS_KEY must be set together")
	}
	if s.MaxBodySize <= 0 {
		return errors.New("MAX_BODY_SIZE must be > 0")
	}
	if s.RedisURL != "" {
		if s.RateLimitRPS <= 0 {
			return errors.New("RATE_LIMIT_RPS must be > 0")
		}
		if s.RateLimitBurst < 1 {
			return errors.New("RATE_LIMIT_BURST must be >= 1")
		}
	}
	if s.ClockSkew < 0 {
		return errors.New("AUTH_CLOCK_SKEW must not be negative")
	}
	return nil
}

// HardeningWarnings returns non-fatal warnings worth logging at start-up.
func (s Server) HardeningWarnings() []string {
	var warns []string
	if s.JWTSecret == "" {
		warns = append(warns, "AUTH_JWT_SECRET not set; POST/PUT/PATCH/DELETE /books are unauthenticated")
	}
	if strings.HasPrefix(s.RedisURL, "redis://") {
		warns = append(warns, "REDIS_URL uses redis:// (no TLS). Prefer rediss:// outside localhost")
	}
	if s.TLSCert == "" {
		warns = append(warns, "serving plain HTTP; terminate TLS in front of this process")
	}
	if s.ClockSkew > 5*time.Minute {
		warns = append(warns, fmt.Sprintf("AUTH_CLOCK_SKEW=%s is > 5m; expired tokens stay usable that long", s.ClockSkew))
	}
	for _, o := range s.CORSOrigins {
		if o == "*" {
			warns = append(warns, "CORS_ORIGINS contains *; any site can call the API from a browser")
			break
		}
	}
	return warns
}
