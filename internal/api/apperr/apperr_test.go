package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/5w1tchy/isbn-books/internal/api/apperr"
	"github.com/5w1tchy/isbn-books/internal/api/httpx"
	"github.com/5w1tchy/isbn-books/internal/store/books"
	"github.com/5w1tchy/isbn-books/internal/store/dbx"
	"github.com/5w1tchy/isbn-books/internal/validate"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message any
	}{
		{"not found", &books.NotFoundError{ISBN: "1234"}, 404, "There is no book with an isbn '1234"},
		{"wrapped not found", fmt.Errorf("get: %w", &books.NotFoundError{ISBN: "1"}), 404, "There is no book with an isbn '1"},
		{"validation", &validate.ValidationError{Messages: []string{`instance requires property "book"`}}, 400, []string{`instance requires property "book"`}},
		{"bad json", httpx.ErrInvalidJSON, 400, "invalid JSON body"},
		{"too big", &http.MaxBytesError{Limit: 10}, 413, "request body too large"},
		{"store", &books.StoreError{Op: "create", Kind: dbx.ErrUniqueViolation, Err: errors.New("dup")}, 500, apperr.GenericMessage},
		{"anything", errors.New("boom"), 500, apperr.GenericMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := apperr.FromError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestWriteError_Body(t *testing.T) {
	rec := httptest.NewRecorder()

	status := apperr.WriteError(rec, &books.NotFoundError{ISBN: "1234"})

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t,
		`{"error":{"message":"There is no book with an isbn '1234","status":404},"message":"There is no book with an isbn '1234"}`,
		rec.Body.String())
}

func TestWrite_ListMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	apperr.Write(rec, http.StatusBadRequest, []string{"a", "b"})
	assert.JSONEq(t, `{"error":{"message":["a","b"],"status":400},"message":["a","b"]}`, rec.Body.String())
}
