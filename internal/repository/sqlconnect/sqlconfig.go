package sqlconnect

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Goqu dialect names understood by the books store.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// Target is a parsed DATABASE_URL.
type Target struct {
	Driver  string
	Dialect string
	DSN     string
}

// ParseURL picks the driver from the URL scheme. postgres:// and
// postgresql:// go to pgx; sqlite:<path> and sqlite::memory: go to modernc sqlite.
func ParseURL(url string) (Target, error) {
	switch {
	case url == "":
		return Target{}, fmt.Errorf("DATABASE_URL not set")
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return Target{Driver: "pgx", Dialect: DialectPostgres, DSN: url}, nil
	case strings.HasPrefix(url, "sqlite:"):
		dsn := strings.TrimPrefix(strings.TrimPrefix(url, "sqlite:"), "//")
		if dsn == "" {
			return Target{}, fmt.Errorf("sqlite DATABASE_URL has no path")
		}
		return Target{Driver: "sqlite", Dialect: DialectSQLite, DSN: dsn}, nil
	default:
		return Target{}, fmt.Errorf("unsupported DATABASE_URL scheme in %q", redact(url))
	}
}

// ConnectDB opens and pings the database. The returned dialect is passed
// to the books store.
func ConnectDB(ctx context.Context, url string) (*sqlx.DB, string, error) {
	t, err := ParseURL(url)
	if err != nil {
		return nil, "", err
	}

	db, err := sqlx.Open(t.Driver, t.DSN)
	if err != nil {
		return nil, "", err
	}

	if t.Driver == "sqlite" {
		// one connection, or every :memory: connection gets its own database
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pctx); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("ping %s: %w", redact(url), err)
	}
	return db, t.Dialect, nil
}

// redact hides the password of a URL-style DSN.
func redact(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
