package books

import (
	"context"
	"database/sql"
	"errors"

	"github.com/doug-martin/goqu/v9"

	"github.com/5w1tchy/isbn-books/internal/models"
)

// FindAll returns every book ordered by ISBN. The slice is never nil.
func (s *Store) FindAll(ctx context.Context) ([]models.Book, error) {
	q, args, err := s.dialect.From(table).Select(columns...).Order(goqu.I("isbn").Asc()).Prepared(true).ToSQL()
	if err != nil {
		return nil, storeErr("find all", err)
	}
	out := []models.Book{}
	if err := s.db.SelectContext(ctx, &out, q, args...); err != nil {
		return nil, storeErr("find all", err)
	}
	return out, nil
}

// FindOne returns the book with the given ISBN or a *NotFoundError.
func (s *Store) FindOne(ctx context.Context, isbn string) (models.Book, error) {
	q, args, err := s.dialect.From(table).Select(columns...).Where(byISBN(isbn)).Prepared(true).ToSQL()
	if err != nil {
		return models.Book{}, storeErr("find one", err)
	}
	var b models.Book
	if err := s.db.GetContext(ctx, &b, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, &NotFoundError{ISBN: isbn}
		}
		return models.Book{}, storeErr("find one", err)
	}
	return b, nil
}

// Exists reports whether a row with the ISBN is present.
func (s *Store) Exists(ctx context.Context, isbn string) (bool, error) {
	q, args, err := s.dialect.From(table).Select(goqu.COUNT("*")).Where(byISBN(isbn)).Prepared(true).ToSQL()
	if err != nil {
		return false, storeErr("exists", err)
	}
	var n int
	if err := s.db.GetContext(ctx, &n, q, args...); err != nil {
		return false, storeErr("exists", err)
	}
	return n > 0, nil
}
