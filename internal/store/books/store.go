package books

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/jmoiron/sqlx"

	"github.com/5w1tchy/isbn-books/internal/store/dbx"
)

const table = "books"

var columns = []any{"isbn", "amazon_url", "author", "language", "pages", "publisher", "title", "year"}

// Store is the record store for the books table. It performs no
// validation; callers hand it data that already passed the schema.
type Store struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
}

// New binds a store to db. dialect is a goqu dialect name ("postgres" or "sqlite3").
func New(db *sqlx.DB, dialect string) *Store {
	return &Store{db: db, dialect: goqu.Dialect(dialect)}
}

func byISBN(isbn string) goqu.Ex { return goqu.Ex{"isbn": isbn} }

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Kind: dbx.Classify(err), Err: err}
}
