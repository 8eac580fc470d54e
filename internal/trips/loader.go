package trips

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Source yields every trip recorded for a city. Check reports a missing city
// before any prompt is shown.
type Source interface {
	Check(ctx context.Context) error
	LoadTrips(ctx context.Context, city City) (*Table, error)
}

// MissingFileError names the city file that could not be found
type MissingFileError struct {
	File string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("Sorry, File %s is missing, kindly add the file and try again", e.File)
}

func (e *MissingFileError) Unwrap() error {
	return ErrMissingFile
}

// CSVSource reads city files from a directory
type CSVSource struct {
	Dir string
}

// NewCSVSource creates a source rooted at dir
func NewCSVSource(dir string) *CSVSource {
	return &CSVSource{Dir: dir}
}

// Path returns the location of a city's file
func (s *CSVSource) Path(city City) string {
	return filepath.Join(s.Dir, city.FileName())
}

// CheckDataFiles returns a *MissingFileError for the first city file that is
// not present.
func (s *CSVSource) CheckDataFiles() error {
	for _, city := range AllCities() {
		info, err := os.Stat(s.Path(city))
		if err != nil || info.IsDir() {
			return &MissingFileError{File: city.FileName()}
		}
	}
	return nil
}

// Check implements Source
func (s *CSVSource) Check(ctx context.Context) error {
	return s.CheckDataFiles()
}

// LoadTrips parses the whole city file
func (s *CSVSource) LoadTrips(ctx context.Context, city City) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.Path(city))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &MissingFileError{File: city.FileName()}
		}
		return nil, fmt.Errorf("failed to open %s: %w", city.FileName(), err)
	}
	defer f.Close()

	table, err := Parse(f, city)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", city.FileName(), err)
	}
	return table, nil
}

// Load reads the selected city from src and applies the month and day filters.
func Load(ctx context.Context, src Source, sel Selection) (*Table, error) {
	if _, err := ParseCity(string(sel.City)); err != nil {
		return nil, fmt.Errorf("%w: %q", err, sel.City)
	}

	table, err := src.LoadTrips(ctx, sel.City)
	if err != nil {
		return nil, err
	}

	return Filter(table, sel.Month, sel.Day)
}

// Filter returns a new table holding only the trips that started in month
// (a month name, or All) and on day (a weekday name, or All).
func Filter(table *Table, month, day string) (*Table, error) {
	monthNum := 0
	if month != "" && month != All {
		monthNum = MonthNumber(month)
		if monthNum == 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMonth, month)
		}
	}
	if day != "" && day != All && !isWeekday(day) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}

	filtered := &Table{
		City:    table.City,
		Schema:  table.Schema,
		Skipped: table.Skipped,
		Trips:   make([]Trip, 0, len(table.Trips)),
	}
	for _, t := range table.Trips {
		if monthNum != 0 && t.Month != monthNum {
			continue
		}
		if day != "" && day != All && t.Weekday != day {
			continue
		}
		filtered.Trips = append(filtered.Trips, t)
	}
	return filtered, nil
}

func isWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
