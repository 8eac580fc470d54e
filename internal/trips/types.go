package trips

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the timestamp format used by the city files
const TimeLayout = "2006-01-02 15:04:05"

// All selects every month or every weekday
const All = "all"

var (
	ErrUnknownCity  = errors.New("unknown city")
	ErrUnknownMonth = errors.New("unknown month")
	ErrUnknownDay   = errors.New("unknown day")
	ErrMissingFile  = errors.New("data file missing")
)

// City identifies one of the supported bike-share systems
type City string

const (
	Chicago     City = "chicago"
	NewYorkCity City = "new york city"
	Washington  City = "washington"
)

// AllCities returns the supported cities in prompt order
func AllCities() []City {
	return []City{Chicago, NewYorkCity, Washington}
}

// FileName returns the CSV file holding the city's trips
func (c City) FileName() string {
	return strings.ReplaceAll(string(c), " ", "_") + ".csv"
}

// Title returns the display name, e.g. "New York City"
func (c City) Title() string {
	words := strings.Fields(string(c))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ParseCity matches user input against the supported cities, ignoring case
// and surrounding whitespace.
func ParseCity(s string) (City, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllCities() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrUnknownCity
}

// Months covered by the data, index+1 is the calendar month number.
var Months = []string{"january", "february", "march", "april", "may", "june"}

// ParseMonth returns the lower-case month name, or All.
func ParseMonth(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == All {
		return All, nil
	}
	for _, m := range Months {
		if m == s {
			return m, nil
		}
	}
	return "", ErrUnknownMonth
}

// MonthNumber returns the 1-based calendar number of a month name, 0 if unknown.
func MonthNumber(month string) int {
	for i, m := range Months {
		if m == month {
			return i + 1
		}
	}
	return 0
}

// MonthTitle returns "January" for 1. Numbers outside the calendar fall back
// to time.Month formatting.
func MonthTitle(n int) string {
	return time.Month(n).String()
}

// Weekdays in prompt order, index+1 is the number the user types.
var Weekdays = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// WeekdayByNumber maps 1=Sunday .. 7=Saturday.
func WeekdayByNumber(n int) (string, error) {
	if n < 1 || n > len(Weekdays) {
		return "", ErrUnknownDay
	}
	return Weekdays[n-1], nil
}

// ParseWeekday accepts a weekday name in any case, a number 1=Sunday .. 7=Saturday, or All.
func ParseWeekday(s string) (string, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, All) {
		return All, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return WeekdayByNumber(n)
	}
	for _, d := range Weekdays {
		if strings.EqualFold(d, s) {
			return d, nil
		}
	}
	return "", ErrUnknownDay
}

// FilterMode selects which time dimensions are prompted for and reported
type FilterMode string

const (
	FilterMonth FilterMode = "month"
	FilterDay   FilterMode = "day"
	FilterBoth  FilterMode = "both"
	FilterNone  FilterMode = "none"
)

// AllFilterModes returns the modes in prompt order
func AllFilterModes() []FilterMode {
	return []FilterMode{FilterMonth, FilterDay, FilterBoth, FilterNone}
}

// ParseFilterMode matches user input against the filter modes
func ParseFilterMode(s string) (FilterMode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range AllFilterModes() {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// ModeFor returns the filter mode implied by a month and day selection
func ModeFor(month, day string) FilterMode {
	byMonth := month != "" && month != All
	byDay := day != "" && day != All
	switch {
	case byMonth && byDay:
		return FilterBoth
	case byMonth:
		return FilterMonth
	case byDay:
		return FilterDay
	}
	return FilterNone
}

// WantsMonth reports whether the mode filters by month
func (m FilterMode) WantsMonth() bool {
	return m == FilterMonth || m == FilterBoth
}

// WantsDay reports whether the mode filters by weekday
func (m FilterMode) WantsDay() bool {
	return m == FilterDay || m == FilterBoth
}

// Selection is what the user picked for one session
type Selection struct {
	City  City
	Mode  FilterMode
	Month string // month name or All
	Day   string // weekday name or All
}

// Trip is one row of a city file plus its derived calendar fields
type Trip struct {
	StartTime    time.Time
	EndTime      time.Time
	StartStation string
	EndStation   string
	Duration     float64 // seconds
	UserType     string
	Gender       string // empty when absent
	BirthYear    int    // 0 when absent

	Hour    int
	Month   int
	Weekday string
	Label   string // "<start station> - <end station>"
}

// Schema records which optional columns a city file carries
type Schema struct {
	HasGender    bool
	HasBirthYear bool
}

// Table is the set of trips for one session
type Table struct {
	City    City
	Schema  Schema
	Trips   []Trip
	Skipped int // rows dropped because their start time did not parse
}

// Len returns the number of trips
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Trips)
}
