package stats

import "github.com/ramy-ahmed/bikeshare/internal/trips"

// TimeStats holds the most frequent times of travel
type TimeStats struct {
	Mode    trips.FilterMode
	Empty   bool
	Hour    Popular[int]
	Weekday Popular[string]
	Month   Popular[int]
}

// ComputeTime finds the modal start hour, weekday and month.
func ComputeTime(table *trips.Table, mode trips.FilterMode) TimeStats {
	s := TimeStats{Mode: mode}
	if table.Len() == 0 {
		s.Empty = true
		return s
	}

	hours := make([]int, 0, table.Len())
	days := make([]string, 0, table.Len())
	months := make([]int, 0, table.Len())
	for _, t := range table.Trips {
		hours = append(hours, t.Hour)
		days = append(days, t.Weekday)
		months = append(months, t.Month)
	}

	s.Hour, _ = Mode(hours)
	s.Weekday, _ = Mode(days)
	s.Month, _ = Mode(months)
	return s
}

// ShowsDay reports whether the weekday is worth printing. A day filter
// makes it constant.
func (s TimeStats) ShowsDay() bool {
	return s.Mode == trips.FilterMonth || s.Mode == trips.FilterNone
}

// ShowsMonth reports whether the month is worth printing.
func (s TimeStats) ShowsMonth() bool {
	return s.Mode == trips.FilterDay || s.Mode == trips.FilterNone
}

// MonthName returns the title-case name of the modal month
func (s TimeStats) MonthName() string {
	return trips.MonthTitle(s.Month.Value)
}
