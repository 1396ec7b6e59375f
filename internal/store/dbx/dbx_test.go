package dbx_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/5w1tchy/isbn-books/internal/store/dbx"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"pg unique", &pgconn.PgError{Code: "23505", ConstraintName: "books_pkey"}, dbx.ErrUniqueViolation},
		{"pg unique wrapped", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), dbx.ErrUniqueViolation},
		{"pg not null", &pgconn.PgError{Code: "23502"}, dbx.ErrDriver},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: books.isbn (1555)"), dbx.ErrUniqueViolation},
		{"other", errors.New("connection refused"), dbx.ErrDriver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dbx.Classify(tt.err))
		})
	}
}
