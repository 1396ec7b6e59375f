package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/5w1tchy/isbn-books/internal/config"
	"github.com/5w1tchy/isbn-books/internal/repository/sqlconnect"
	"github.com/5w1tchy/isbn-books/internal/storage/s3"
	"github.com/5w1tchy/isbn-books/internal/store/books"
)

type SnapshotCmd struct {
	config.Database `embed:""`
	config.S3       `embed:""`

	Key        string        `help:"Object key (default snapshots/books-<UTC timestamp>.json)"`
	PresignTTL time.Duration `name:"presign-ttl" default:"0s" help:"Also log a presigned download URL valid this long"`
}

func (c *SnapshotCmd) Run(log *slog.Logger) error {
	ctx := context.Background()
	db, dialect, err := sqlconnect.ConnectDB(ctx, c.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	client, err := s3.NewClient(ctx, c.S3)
	if err != nil {
		return err
	}
	return snapshot(ctx, log, books.New(db, dialect), client, c.Key, c.PresignTTL, time.Now())
}

func snapshot(ctx context.Context, log *slog.Logger, store *books.Store, client *s3.S3Client, key string, presign time.Duration, now time.Time) error {
	all, err := store.FindAll(ctx)
	if err != nil {
		return err
	}
	if key == "" {
		key = s3.SnapshotKey(now)
	}
	if err := client.PutSnapshot(ctx, key, all, now); err != nil {
		return err
	}
	log.Info("snapshot uploaded", "bucket", client.Bucket, "key", key, "books", len(all))

	if presign > 0 {
		url, err := client.PresignedDownloadURL(ctx, key, presign)
		if err != nil {
			return err
		}
		log.Info("snapshot download link", "url", url, "expires_in", presign)
	}
	return nil
}
