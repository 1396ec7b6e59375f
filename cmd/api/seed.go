package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/5w1tchy/isbn-books/internal/api/httpx"
	"github.com/5w1tchy/isbn-books/internal/config"
	"github.com/5w1tchy/isbn-books/internal/models"
	"github.com/5w1tchy/isbn-books/internal/repository/sqlconnect"
	"github.com/5w1tchy/isbn-books/internal/store/books"
	"github.com/5w1tchy/isbn-books/internal/validate"
)

type SeedCmd struct {
	config.Database `embed:""`

	Reset bool   `help:"Delete every book before inserting"`
	File  string `arg:"" type:"existingfile" help:"JSON array of books"`
}

func (c *SeedCmd) Run(log *slog.Logger) error {
	f, err := os.Open(c.File)
	if err != nil {
		return err
	}
	defer f.Close()

	list, err := readSeed(f)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	ctx := context.Background()
	db, dialect, err := sqlconnect.ConnectDB(ctx, c.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := seed(ctx, books.New(db, dialect), list, c.Reset)
	if err != nil {
		return err
	}
	log.Info("seeded books", "count", n, "reset", c.Reset)
	return nil
}

// readSeed decodes a JSON array and checks every element the same way
// POST /books checks its "book" field.
func readSeed(r io.Reader) ([]models.Book, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	v, err := httpx.DecodeGeneric(raw)
	if err != nil {
		return nil, err
	}
	items, ok := v.([]any)
	if !ok {
		return nil, errors.New("expected a JSON array of books")
	}

	out := make([]models.Book, 0, len(items))
	for i, item := range items {
		if err := validate.Check(validate.Book, item); err != nil {
			return nil, fmt.Errorf("book %d: %w", i, err)
		}
		out = append(out, models.BookFromFields(item.(map[string]any)))
	}
	return out, nil
}

func seed(ctx context.Context, s *books.Store, list []models.Book, reset bool) (int, error) {
	if reset {
		if err := s.DeleteAll(ctx); err != nil {
			return 0, err
		}
	}
	for i, b := range list {
		if _, err := s.Create(ctx, b); err != nil {
			return i, fmt.Errorf("insert %s: %w", b.ISBN, err)
		}
	}
	return len(list), nil
}
