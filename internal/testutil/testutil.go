package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/5w1tchy/isbn-books/internal/models"
	"github.com/5w1tchy/isbn-books/internal/repository/sqlconnect"
	"github.com/5w1tchy/isbn-books/internal/store/books"
)

// B1 is the seed book every route test starts from.
var B1 = models.Book{
	ISBN:      "0691161519",
	AmazonURL: "http://a.co/eobPtX2",
	Author:    "Matthew Lane",
	Language:  "english",
	Pages:     264,
	Publisher: "Princeton University Press",
	Title:     "Power-Up: Unlocking Hidden Math in Vide",
	Year:      2017,
}

// B2 is not seeded; tests create it.
var B2 = models.Book{
	ISBN:      "0691161520",
	AmazonURL: "http://a.co/eosdfads",
	Author:    "John Doe",
	Language:  "french",
	Pages:     222,
	Publisher: "Albertsons University Press",
	Title:     "Once Upon a Time",
	Year:      2020,
}

// OpenDB returns a migrated in-memory sqlite database closed at test end.
func OpenDB(t testing.TB) (*sqlx.DB, string) {
	t.Helper()
	db, dialect, err := sqlconnect.ConnectDB(t.Context(), "sqlite::memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := sqlconnect.Migrate(t.Context(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db, dialect
}

// NewStore returns a store over a fresh database seeded with the given books.
func NewStore(t testing.TB, seed ...models.Book) *books.Store {
	t.Helper()
	db, dialect := OpenDB(t)
	s := books.New(db, dialect)
	for _, b := range seed {
		if _, err := s.Create(t.Context(), b); err != nil {
			t.Fatalf("seed %s: %v", b.ISBN, err)
		}
	}
	return s
}
