package books

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/5w1tchy/isbn-books/internal/models"
)

// Create inserts b and returns the stored row. A duplicate ISBN comes back
// as a *StoreError of kind dbx.ErrUniqueViolation.
func (s *Store) Create(ctx context.Context, b models.Book) (models.Book, error) {
	q, args, err := s.dialect.Insert(table).Rows(goqu.Record{
		"isbn":       b.ISBN,
		"amazon_url": b.AmazonURL,
		"author":     b.Author,
		"language":   b.Language,
		"pages":      b.Pages,
		"publisher":  b.Publisher,
		"title":      b.Title,
		"year":       b.Year,
	}).Prepared(true).ToSQL()
	if err != nil {
		return models.Book{}, storeErr("create", err)
	}
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return models.Book{}, storeErr("create", err)
	}
	return s.FindOne(ctx, b.ISBN)
}
