package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ramy-ahmed/bikeshare/internal/cli"
	"github.com/ramy-ahmed/bikeshare/internal/config"
	"github.com/ramy-ahmed/bikeshare/internal/db"
	"github.com/ramy-ahmed/bikeshare/internal/logging"
	"github.com/ramy-ahmed/bikeshare/internal/trips"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stderr, os.Args[1:]); err != nil {
		stop()
		cli.Exit(err)
	}
}

// run loads every city file into the trip store. A city that fails to import
// does not stop the others, but makes the run fail.
func run(ctx context.Context, logOut io.Writer, args []string) (err error) {
	cfg := config.Load()

	fs := flag.NewFlagSet("import-trips", flag.ContinueOnError)
	fs.SetOutput(logOut)
	dataDir := fs.String("data-dir", cfg.DataDir, "Directory containing the city CSV files")
	dbPath := fs.String("db", cfg.DatabasePath, "Path to SQLite database")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn, error")

	stop, err := cli.ParseFlags(fs, args)
	if stop || err != nil {
		return err
	}

	logger := logging.NewLogger(logOut, *logLevel)
	slog.SetDefault(logger)

	src := trips.NewCSVSource(*dataDir)
	if err := src.CheckDataFiles(); err != nil {
		return err
	}

	database, err := db.Open(ctx, *dbPath)
	if err != nil {
		return err
	}
	defer logging.HandleDeferredError(&err, database.Close, logger, "close database")
	logger.Info("connected to database", "path", *dbPath)

	failed := 0
	for _, city := range trips.AllCities() {
		if err := importCity(ctx, logger, database, src, city); err != nil {
			logging.LogError(logger, "import failed", err, slog.String("city", string(city)))
			failed++
			continue
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d cities failed to import", failed, len(trips.AllCities()))
	}
	logger.Info("import complete")
	return nil
}

func importCity(ctx context.Context, logger *slog.Logger, database *db.DB, src *trips.CSVSource, city trips.City) error {
	return logging.Timed(logger, "city_imported", func() error {
		table, err := src.LoadTrips(ctx, city)
		if err != nil {
			return err
		}
		if err := database.ReplaceCityTrips(ctx, table); err != nil {
			return err
		}
		logger.Info("parsed city file",
			"city", string(city),
			"rows", table.Len(),
			"skipped", table.Skipped,
			"gender", table.Schema.HasGender,
			"birth_year", table.Schema.HasBirthYear)
		return nil
	}, slog.String("city", string(city)))
}
