package books

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/5w1tchy/isbn-books/internal/models"
)

// Update replaces every mutable field of the row. b.ISBN is ignored.
func (s *Store) Update(ctx context.Context, isbn string, b models.Book) (models.Book, error) {
	return s.set(ctx, "update", isbn, models.PatchFrom(b))
}

// Patch sets only the fields present in p. An empty patch just reads the row.
func (s *Store) Patch(ctx context.Context, isbn string, p models.BookPatch) (models.Book, error) {
	if p.Empty() {
		return s.FindOne(ctx, isbn)
	}
	return s.set(ctx, "patch", isbn, p)
}

func (s *Store) set(ctx context.Context, op, isbn string, p models.BookPatch) (models.Book, error) {
	q, args, err := s.dialect.Update(table).
		Set(goqu.Record(p.Columns())).
		Where(byISBN(isbn)).
		Prepared(true).ToSQL()
	if err != nil {
		return models.Book{}, storeErr(op, err)
	}
	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return models.Book{}, storeErr(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Book{}, storeErr(op, err)
	}
	if n == 0 {
		return models.Book{}, &NotFoundError{ISBN: isbn}
	}
	return s.FindOne(ctx, isbn)
}
