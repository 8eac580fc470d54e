// Package report gathers the trip statistics of one selection and renders
// them as text lines, JSON or PDF.
package report

import (
	"time"

	"github.com/ramy-ahmed/bikeshare/internal/stats"
	"github.com/ramy-ahmed/bikeshare/internal/trips"
)

// Section titles, in the order the statistics are computed
const (
	TitleTime     = "Calculating The Most Frequent Times of Travel..."
	TitleStations = "Calculating The Most Popular Stations and Trip..."
	TitleDuration = "Calculating Trip Duration..."
	TitleUsers    = "Calculating User Stats..."
)

// Report holds every statistic for one selection
type Report struct {
	GeneratedAt time.Time
	Selection   trips.Selection
	TripCount   int
	Skipped     int

	Time     stats.TimeStats
	Stations stats.StationStats
	Duration stats.DurationStats
	Users    stats.UserStats
}

// Section is a titled block of report lines
type Section struct {
	Title string
	Lines []string
}

// Build computes all four statistics over table
func Build(table *trips.Table, sel trips.Selection) Report {
	return Report{
		GeneratedAt: time.Now().UTC(),
		Selection:   sel,
		TripCount:   table.Len(),
		Skipped:     table.Skipped,
		Time:        stats.ComputeTime(table, sel.Mode),
		Stations:    stats.ComputeStations(table),
		Duration:    stats.ComputeDuration(table),
		Users:       stats.ComputeUsers(table),
	}
}

// Sections returns the report as titled text blocks
func (r Report) Sections() []Section {
	mode := r.Selection.Mode
	return []Section{
		{Title: TitleTime, Lines: TimeLines(r.Time)},
		{Title: TitleStations, Lines: StationLines(r.Stations, mode)},
		{Title: TitleDuration, Lines: DurationLines(r.Duration, mode)},
		{Title: TitleUsers, Lines: UserLines(r.Users, mode)},
	}
}

// Heading describes the selection, e.g.
// "Chicago, month: march, day: all, filter: month"
func Heading(sel trips.Selection) string {
	return sel.City.Title() + ", month: " + sel.Month + ", day: " + sel.Day + ", filter: " + string(sel.Mode)
}
