package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/ramy-ahmed/bikeshare/internal/cli"
	"github.com/ramy-ahmed/bikeshare/internal/config"
	"github.com/ramy-ahmed/bikeshare/internal/db"
	"github.com/ramy-ahmed/bikeshare/internal/logging"
	"github.com/ramy-ahmed/bikeshare/internal/report"
	"github.com/ramy-ahmed/bikeshare/internal/trips"
)

// Output formats
const (
	formatJSON = "json"
	formatPDF  = "pdf"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		cli.Exit(err)
	}
}

// run computes the statistics for one selection and writes them as a report
// file, or to stdout when the output is "-".
func run(ctx context.Context, stdout, logOut io.Writer, args []string) (err error) {
	cfg := config.Load()

	fs := flag.NewFlagSet("export-report", flag.ContinueOnError)
	fs.SetOutput(logOut)
	cityFlag := fs.String("city", "", "City: chicago, new york city or washington")
	monthFlag := fs.String("month", trips.All, "Month name (january..june) or all")
	dayFlag := fs.String("day", trips.All, "Weekday name, number (1=Sunday) or all")
	format := fs.String("format", formatJSON, "Report format: json or pdf")
	output := fs.String("output", "", "Output file, - for stdout (default <report-dir>/<city>_<month>_<day>.<format>)")
	dataDir := fs.String("data-dir", cfg.DataDir, "Directory containing the city CSV files")
	source := fs.String("source", cfg.Source, "Trip source: csv or sqlite")
	dbPath := fs.String("db", cfg.DatabasePath, "Path to SQLite database")
	logLevel := fs.String("log-level", "info", "Log level: debug, info, warn, error")

	stop, err := cli.ParseFlags(fs, args)
	if stop || err != nil {
		return err
	}

	sel, err := parseSelection(*cityFlag, *monthFlag, *dayFlag)
	if err != nil {
		return cli.UsageError(err)
	}
	*format = strings.ToLower(*format)
	if *format != formatJSON && *format != formatPDF {
		return cli.UsageError(fmt.Errorf("unknown format %q, expected json or pdf", *format))
	}

	logger := logging.NewLogger(logOut, *logLevel)
	slog.SetDefault(logger)

	var src trips.Source
	switch strings.ToLower(*source) {
	case config.SourceCSV:
		src = trips.NewCSVSource(*dataDir)
	case config.SourceSQLite:
		database, err := db.Open(ctx, *dbPath)
		if err != nil {
			return err
		}
		defer logging.SafeCloseWithLogging(database, logger, "close database")
		src = database
	default:
		return cli.UsageError(fmt.Errorf("unknown source %q, expected csv or sqlite", *source))
	}

	if err := src.Check(ctx); err != nil {
		if errors.Is(err, trips.ErrMissingFile) {
			return &cli.ExitError{Code: 1, Message: err.Error()}
		}
		return err
	}

	var table *trips.Table
	err = logging.Timed(logger, "trips_loaded", func() error {
		var loadErr error
		table, loadErr = trips.Load(ctx, src, sel)
		return loadErr
	}, slog.String("city", string(sel.City)), slog.String("month", sel.Month), slog.String("day", sel.Day))
	if err != nil {
		return err
	}

	r := report.Build(table, sel)

	if *output == "-" {
		return write(stdout, *format, r)
	}

	path := *output
	if path == "" {
		path = defaultPath(cfg.ReportDir, sel, *format)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "close report")

	if err := write(f, *format, r); err != nil {
		return err
	}

	logger.Info("report written", "path", path, "format", *format, "trips", r.TripCount)
	return nil
}

func parseSelection(city, month, day string) (trips.Selection, error) {
	var sel trips.Selection
	var err error

	if sel.City, err = trips.ParseCity(city); err != nil {
		return sel, fmt.Errorf("%w: %q", err, city)
	}
	if sel.Month, err = trips.ParseMonth(month); err != nil {
		return sel, fmt.Errorf("%w: %q", err, month)
	}
	if sel.Day, err = trips.ParseWeekday(day); err != nil {
		return sel, fmt.Errorf("%w: %q", err, day)
	}
	sel.Mode = trips.ModeFor(sel.Month, sel.Day)
	return sel, nil
}

func defaultPath(dir string, sel trips.Selection, format string) string {
	name := fmt.Sprintf("%s_%s_%s.%s",
		strings.TrimSuffix(sel.City.FileName(), ".csv"), sel.Month, strings.ToLower(sel.Day), format)
	return filepath.Join(dir, name)
}

func write(w io.Writer, format string, r report.Report) error {
	if format == formatPDF {
		return report.WritePDF(w, r)
	}
	return report.WriteJSON(w, r)
}
