package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ramy-ahmed/bikeshare/internal/cli"
	"github.com/ramy-ahmed/bikeshare/internal/config"
	"github.com/ramy-ahmed/bikeshare/internal/db"
	"github.com/ramy-ahmed/bikeshare/internal/explorer"
	"github.com/ramy-ahmed/bikeshare/internal/logging"
	"github.com/ramy-ahmed/bikeshare/internal/trips"
)

func main() {
	if err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		cli.Exit(err)
	}
}

// run wires the explorer to its trip source and optional history. Ctrl+C is
// left to terminate the process.
func run(in io.Reader, out, errOut io.Writer, args []string) (err error) {
	cfg := config.Load()

	fs := flag.NewFlagSet("bikeshare", flag.ContinueOnError)
	fs.SetOutput(errOut)
	dataDir := fs.String("data-dir", cfg.DataDir, "Directory containing the city CSV files")
	source := fs.String("source", cfg.Source, "Trip source: csv or sqlite")
	dbPath := fs.String("db", cfg.DatabasePath, "Path to SQLite database")
	history := fs.Bool("history", cfg.HistoryEnabled, "Record each session in the database")
	logLevel := fs.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")

	stop, err := cli.ParseFlags(fs, args)
	if stop || err != nil {
		return err
	}

	logger := logging.NewLogger(errOut, *logLevel)
	slog.SetDefault(logger)

	ctx := context.Background()
	opts := explorer.Options{Logger: logger}
	kind := strings.ToLower(*source)

	var database *db.DB
	if kind == config.SourceSQLite || *history {
		database, err = db.Open(ctx, *dbPath)
		if err != nil {
			return err
		}
		defer logging.HandleDeferredError(&err, database.Close, logger, "close database")
	}

	var src trips.Source
	switch kind {
	case config.SourceCSV:
		src = trips.NewCSVSource(*dataDir)
	case config.SourceSQLite:
		src = database
	default:
		return &cli.ExitError{Code: 2, Message: fmt.Sprintf("unknown source %q, expected csv or sqlite", *source)}
	}

	if *history {
		opts.History = database
		if _, err := database.Cleanup(ctx, cfg.HistoryRetention); err != nil {
			logging.LogError(logger, "history cleanup failed", err)
		}
	}

	err = explorer.New(src, in, out, opts).Run(ctx)
	if errors.Is(err, trips.ErrMissingFile) {
		fmt.Fprintln(out, err.Error())
		return &cli.ExitError{Code: 1}
	}
	return err
}
