package books

import (
	"context"
)

// Remove deletes the row with the ISBN or returns a *NotFoundError.
func (s *Store) Remove(ctx context.Context, isbn string) error {
	q, args, err := s.dialect.Delete(table).Where(byISBN(isbn)).Prepared(true).ToSQL()
	if err != nil {
		return storeErr("remove", err)
	}
	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return storeErr("remove", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErr("remove", err)
	}
	if n == 0 {
		return &NotFoundError{ISBN: isbn}
	}
	return nil
}

// DeleteAll empties the table.
func (s *Store) DeleteAll(ctx context.Context) error {
	q, args, err := s.dialect.Delete(table).Prepared(true).ToSQL()
	if err != nil {
		return storeErr("delete all", err)
	}
	if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
		return storeErr("delete all", err)
	}
	return nil
}
