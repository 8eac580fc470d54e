// Package explorer runs the interactive bikeshare session: it asks for a
// city and time filters, prints the trip statistics and offers the raw
// records page by page.
package explorer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/ramy-ahmed/bikeshare/internal/console"
	"github.com/ramy-ahmed/bikeshare/internal/db"
	"github.com/ramy-ahmed/bikeshare/internal/logging"
	"github.com/ramy-ahmed/bikeshare/internal/report"
	"github.com/ramy-ahmed/bikeshare/internal/stats"
	"github.com/ramy-ahmed/bikeshare/internal/trips"
)

const (
	greeting = "Hello! Let's explore some US bikeshare data!"
	exitHint = "You can exit at any time by pressing Ctrl+C !"
	rule     = "----------------------------------------"

	invalidCity   = "Invalid city kindly try again \n"
	invalidFilter = "Invalid filter kindly try again \n"
	invalidMonth  = "Invalid month kindly try again \n"
	invalidDay    = "Invalid day kindly try again \n"
	invalidAnswer = "\nInvalid answer try again. Type 'yes' or 'no'  \n"
)

// SessionRecorder stores completed sessions
type SessionRecorder interface {
	RecordSession(ctx context.Context, s db.Session) error
}

// Options configures an Explorer. Every field is optional.
type Options struct {
	History SessionRecorder
	Logger  *slog.Logger
}

// Explorer is the interactive controller
type Explorer struct {
	source  trips.Source
	prompt  *console.Prompter
	history SessionRecorder
	logger  *slog.Logger
}

// New creates an explorer reading answers from in and printing to out
func New(source trips.Source, in io.Reader, out io.Writer, opts Options) *Explorer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Explorer{
		source:  source,
		prompt:  console.NewPrompter(in, out),
		history: opts.History,
		logger:  logger,
	}
}

// Run checks the data source, then runs sessions until the user declines to
// restart or the input ends. A missing city file is returned before any
// prompt; closed input is a normal end.
func (e *Explorer) Run(ctx context.Context) error {
	e.prompt.Println(greeting)

	if err := e.source.Check(ctx); err != nil {
		return err
	}
	e.prompt.Println(exitHint)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		restart, err := e.session(ctx)
		if errors.Is(err, console.ErrInputClosed) {
			e.prompt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// session runs one pass of the state machine and reports whether the user
// asked to restart.
func (e *Explorer) session(ctx context.Context) (bool, error) {
	sel, err := e.AskSelection()
	if err != nil {
		return false, err
	}

	var table *trips.Table
	err = logging.Timed(e.logger, "trips_loaded", func() error {
		var loadErr error
		table, loadErr = trips.Load(ctx, e.source, sel)
		return loadErr
	}, slog.String("city", string(sel.City)), slog.String("month", sel.Month), slog.String("day", sel.Day))
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", sel.City.Title(), err)
	}

	if line := report.SkippedLine(table.Skipped); line != "" {
		e.prompt.Println(line)
	}
	e.PrintStatistics(table, sel)

	if err := console.Page(e.prompt, table.Trips, func(batch []trips.Trip) error {
		return printRecords(e.prompt.Out(), table.Schema, batch)
	}); err != nil {
		return false, err
	}

	e.recordSession(ctx, sel, table.Len())

	return console.AskYesNo(e.prompt, "\nWould you like to restart? Enter yes or no.\n", invalidAnswer)
}

// AskSelection prompts for city, filter mode and, as the mode requires, the
// month and weekday.
func (e *Explorer) AskSelection() (trips.Selection, error) {
	sel := trips.Selection{Month: trips.All, Day: trips.All}
	var err error

	names := make([]string, 0, len(trips.AllCities()))
	for _, c := range trips.AllCities() {
		names = append(names, c.Title())
	}
	cityQuestion := fmt.Sprintf("Would you like to see the data for %s, %s, or %s? \n", names[0], names[1], names[2])

	sel.City, err = console.Ask(e.prompt, cityQuestion, invalidCity, trips.ParseCity)
	if err != nil {
		return sel, err
	}

	sel.Mode, err = console.Ask(e.prompt,
		"\nWould you like to filter the data by month, day, both, or not at all? type \"none\" for no time filter. \n",
		invalidFilter, parseFilterMode)
	if err != nil {
		return sel, err
	}

	if sel.Mode.WantsMonth() {
		titles := make([]string, len(trips.Months))
		for i := range trips.Months {
			titles[i] = trips.MonthTitle(i + 1)
		}
		question := fmt.Sprintf("\nWhich month? %s, or %s? \n",
			strings.Join(titles[:len(titles)-1], ", "), titles[len(titles)-1])

		sel.Month, err = console.Ask(e.prompt, question, invalidMonth, parseMonth)
		if err != nil {
			return sel, err
		}
	}

	if sel.Mode.WantsDay() {
		sel.Day, err = console.Ask(e.prompt,
			"\nWhich day? Please type your response as an integer (e.g., 1=Sunday).\n",
			invalidDay, parseDay)
		if err != nil {
			return sel, err
		}
	}

	e.prompt.Println(rule)
	return sel, nil
}

// PrintStatistics prints the four statistic sections in order, each with
// the time it took.
func (e *Explorer) PrintStatistics(table *trips.Table, sel trips.Selection) {
	sections := []struct {
		title string
		lines func() []string
	}{
		{report.TitleTime, func() []string {
			return report.TimeLines(stats.ComputeTime(table, sel.Mode))
		}},
		{report.TitleStations, func() []string {
			return report.StationLines(stats.ComputeStations(table), sel.Mode)
		}},
		{report.TitleDuration, func() []string {
			return report.DurationLines(stats.ComputeDuration(table), sel.Mode)
		}},
		{report.TitleUsers, func() []string {
			return report.UserLines(stats.ComputeUsers(table), sel.Mode)
		}},
	}

	for _, s := range sections {
		start := time.Now()
		e.prompt.Println("\n" + s.title)
		for _, line := range s.lines() {
			e.prompt.Println(line)
		}
		e.prompt.Printf("\nThis took %s seconds.\n", strconv.FormatFloat(time.Since(start).Seconds(), 'f', 6, 64))
		e.prompt.Println(rule)
	}
}

func (e *Explorer) recordSession(ctx context.Context, sel trips.Selection, tripCount int) {
	if e.history == nil {
		return
	}
	s := db.NewSession(sel, tripCount)
	if err := e.history.RecordSession(ctx, s); err != nil {
		logging.LogError(e.logger, "failed to record session", err, slog.String("session_id", s.ID.String()))
		return
	}
	e.logger.Debug("session recorded", "session_id", s.ID.String())
}

var errInvalidChoice = errors.New("invalid choice")

func parseFilterMode(s string) (trips.FilterMode, error) {
	mode, ok := trips.ParseFilterMode(s)
	if !ok {
		return "", errInvalidChoice
	}
	return mode, nil
}

// parseMonth accepts a month name; "all" is not a choice at this prompt.
func parseMonth(s string) (string, error) {
	month, err := trips.ParseMonth(s)
	if err != nil {
		return "", err
	}
	if month == trips.All {
		return "", errInvalidChoice
	}
	return month, nil
}

func parseDay(s string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return trips.WeekdayByNumber(n)
}
