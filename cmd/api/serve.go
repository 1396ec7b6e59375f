package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/5w1tchy/isbn-books/internal/api/handlers/books"
	mw "github.com/5w1tchy/isbn-books/internal/api/middlewares"
	"github.com/5w1tchy/isbn-books/internal/api/router"
	"github.com/5w1tchy/isbn-books/internal/config"
	"github.com/5w1tchy/isbn-books/internal/repository/sqlconnect"
	jwtutil "github.com/5w1tchy/isbn-books/internal/security/jwt"
	bookstore "github.com/5w1tchy/isbn-books/internal/store/books"
	"github.com/5w1tchy/isbn-books/pkg/utils"
)

type ServeCmd struct {
	config.Database `embed:""`
	config.Server   `embed:""`
}

func (c *ServeCmd) Run(log *slog.Logger) error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	for _, w := range c.Server.HardeningWarnings() {
		log.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, dialect, err := sqlconnect.ConnectDB(ctx, c.URL)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("connected to database", "dialect", dialect)

	if c.Migrate {
		if err := sqlconnect.Migrate(ctx, db); err != nil {
			return err
		}
		log.Info("books table ready")
	}

	var rdb *redis.Client
	if c.RedisURL != "" {
		if rdb, err = connectRedis(ctx, c.RedisURL); err != nil {
			return err
		}
		defer rdb.Close()
		log.Info("connected to redis", "rps", c.RateLimitRPS, "burst", c.RateLimitBurst)
	}

	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           buildHandler(db, dialect, c.Server, rdb, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelWarn),
	}
	return run(ctx, srv, c.TLSCert, c.TLSKey, c.ShutdownTimeout, log)
}

// buildHandler assembles store, router and middleware. rdb may be nil.
func buildHandler(db *sqlx.DB, dialect string, s config.Server, rdb *redis.Client, log *slog.Logger) http.Handler {
	h := books.New(bookstore.New(db, dialect), log)

	var guard router.Middleware
	if s.JWTSecret != "" {
		guard = mw.RequireWriteToken(jwtutil.NewConfig(s.JWTSecret, s.ClockSkew), log)
	}

	var limit utils.Middleware
	if rdb != nil {
		limit = mw.NewRedisTokenBucket(rdb, s.RateLimitRPS, s.RateLimitBurst, mw.PerIPKey("tb"), log).Middleware
	}

	// innermost first
	return utils.ApplyMiddleware(
		router.Router(h, db, guard),
		mw.Compression,
		mw.ResponseTime,
		mw.BodySizeLimit(s.MaxBodySize),
		limit,
		mw.Cors(s.CORSOrigins, log),
		mw.SecurityHeaders,
		mw.Recovery(log),
		mw.AccessLog(log),
		mw.RequestID,
	)
}

func connectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	opt.DialTimeout = 2 * time.Second
	opt.ReadTimeout = 500 * time.Millisecond
	opt.WriteTimeout = 500 * time.Millisecond
	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return rdb, nil
}

// run serves until ctx is cancelled, then drains in-flight requests.
func run(ctx context.Context, srv *http.Server, cert, key string, grace time.Duration, log *slog.Logger) error {
	errc := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr, "tls", cert != "")
		if cert != "" {
			errc <- srv.ListenAndServeTLS(cert, key)
		} else {
			errc <- srv.ListenAndServe()
		}
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", "grace", grace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
