package books

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("book not found")

// NotFoundError is returned when no row has the requested ISBN.
type NotFoundError struct {
	ISBN string
}

// Error keeps the historical message, unmatched quote included.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("There is no book with an isbn '%s", e.ISBN)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// StoreError wraps a persistence failure. Kind is one of the dbx kinds.
type StoreError struct {
	Op   string
	Kind error
	Err  error
}

func (e *StoreError) Error() string {
	return "books store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() []error { return []error{e.Kind, e.Err} }
