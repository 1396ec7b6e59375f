package main

import (
	"context"
	"log/slog"

	"github.com/5w1tchy/isbn-books/internal/config"
	"github.com/5w1tchy/isbn-books/internal/repository/sqlconnect"
)

type MigrateCmd struct {
	config.Database `embed:""`
}

func (c *MigrateCmd) Run(log *slog.Logger) error {
	ctx := context.Background()
	db, _, err := sqlconnect.ConnectDB(ctx, c.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqlconnect.Migrate(ctx, db); err != nil {
		return err
	}
	log.Info("books table ready")
	return nil
}
