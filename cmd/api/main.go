package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/5w1tchy/isbn-books/internal/config"
	"github.com/5w1tchy/isbn-books/internal/logging"
)

// CLI is the books-api command tree.
type CLI struct {
	config.Log `embed:""`

	Serve    ServeCmd    `cmd:"" default:"withargs" help:"Run the HTTP API"`
	Migrate  MigrateCmd  `cmd:"" help:"Create the books table"`
	Seed     SeedCmd     `cmd:"" help:"Insert books from a JSON file"`
	Snapshot SnapshotCmd `cmd:"" help:"Upload every book to S3 as one JSON object"`
	Token    TokenCmd    `cmd:"" help:"Print a bearer token for the write routes"`
}

func main() {
	if err := config.LoadDotenv(".env", "../../.env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("books-api"),
		kong.Description("CRUD service for books keyed by ISBN."),
		kong.UsageOnError(),
	)

	log := logging.New(os.Stderr, cli.Log.Level, cli.Log.Format)
	slog.SetDefault(log)

	if err := ctx.Run(log); err != nil {
		log.Error("command failed", "cmd", ctx.Command(), "err", err)
		os.Exit(1)
	}
}
