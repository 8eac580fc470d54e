package report

import (
	"fmt"
	"strconv"

	"github.com/ramy-ahmed/bikeshare/internal/stats"
	"github.com/ramy-ahmed/bikeshare/internal/trips"
)

// NoTrips is printed in place of statistics that need at least one trip
const NoTrips = "No trips match the selected filters."

// SkippedLine reports rows of the city file dropped because their start
// time could not be read. It is empty when nothing was skipped.
func SkippedLine(skipped int) string {
	if skipped <= 0 {
		return ""
	}
	return fmt.Sprintf("Skipped %d row(s) whose start time could not be read.", skipped)
}

// TimeLines renders the popular times. The hour is always shown; day and
// month only when the filter mode leaves them open.
func TimeLines(s stats.TimeStats) []string {
	if s.Empty {
		return []string{NoTrips}
	}

	lines := []string{
		fmt.Sprintf("Most popular hour:%d, Count:%d, Filter:%s", s.Hour.Value, s.Hour.Count, s.Mode),
	}
	if s.ShowsDay() {
		lines = append(lines, fmt.Sprintf("Most popular day of week:%s, Count:%d, Filter:%s",
			s.Weekday.Value, s.Weekday.Count, s.Mode))
	}
	if s.ShowsMonth() {
		lines = append(lines, fmt.Sprintf("Most popular month:%s, Count:%d, Filter:%s",
			s.MonthName(), s.Month.Count, s.Mode))
	}
	return lines
}

// StationLines renders the popular stations and trip
func StationLines(s stats.StationStats, mode trips.FilterMode) []string {
	if s.Empty {
		return []string{NoTrips}
	}
	return []string{
		fmt.Sprintf("Start Station:%s, Count:%d - End Station:%s, Count:%d, Filter:%s",
			s.Start.Value, s.Start.Count, s.End.Value, s.End.Count, mode),
		fmt.Sprintf("Most popular trip:('%s'), Count:%d, Filter:%s", s.Trip.Value, s.Trip.Count, mode),
	}
}

// DurationLines renders total and average travel time
func DurationLines(s stats.DurationStats, mode trips.FilterMode) []string {
	lines := []string{
		fmt.Sprintf("Total Duration:%s sec (%s), Count:%d, Avg Duration:%s sec (%s), Filter:%s",
			FormatSeconds(s.Total), s.TotalBreakdown, s.Count, FormatSeconds(s.Mean), s.MeanBreakdown, mode),
	}
	if s.Count > 0 {
		lines = append(lines, fmt.Sprintf("Shortest trip:%s sec, Longest trip:%s sec, Std Dev:%s sec",
			FormatSeconds(s.Shortest), FormatSeconds(s.Longest), FormatSeconds(s.StdDev)))
	}
	return lines
}

// UserLines renders user types and, where the city records them, genders
// and birth years.
func UserLines(s stats.UserStats, mode trips.FilterMode) []string {
	lines := []string{
		fmt.Sprintf("Number of Subscribers:%d, Number of Customers:%d, Filter:%s", s.Subscribers, s.Customers, mode),
	}
	if s.HasGender {
		lines = append(lines, fmt.Sprintf("Number of Male:%d, Number of Female:%d, Filter:%s", s.Male, s.Female, mode))
	}
	if s.HasBirthYear {
		if s.BirthYearKnown {
			lines = append(lines, fmt.Sprintf(
				"Earliest year of birth:%d, Most recent year of birth:%d, Most common year of birth:%d, Count:%d, Filter:%s",
				s.Earliest, s.MostRecent, s.MostCommon.Value, s.MostCommon.Count, mode))
		} else {
			lines = append(lines, fmt.Sprintf("No year of birth recorded, Filter:%s", mode))
		}
	}
	return lines
}

// FormatSeconds prints at most two decimals and drops trailing zeros
func FormatSeconds(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	for s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
