package stats

import (
	"fmt"
	"math"
)

const (
	secondsPerDay    = 24 * 3600
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// Breakdown is a whole number of seconds split into calendar units
type Breakdown struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Decompose splits floor(seconds) into days and hour/minute/second
// remainders. Negative, NaN and infinite input is treated as zero.
func Decompose(seconds float64) Breakdown {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 1) {
		return Breakdown{}
	}
	n := int64(math.Floor(seconds))

	day := n / secondsPerDay
	n %= secondsPerDay
	hour := n / secondsPerHour
	n %= secondsPerHour
	minutes := n / secondsPerMinute
	n %= secondsPerMinute

	return Breakdown{Days: day, Hours: hour, Minutes: minutes, Seconds: n}
}

// Total converts the breakdown back into seconds
func (b Breakdown) Total() int64 {
	return b.Days*secondsPerDay + b.Hours*secondsPerHour + b.Minutes*secondsPerMinute + b.Seconds
}

func (b Breakdown) String() string {
	return fmt.Sprintf("%d Day(s), %d Hour(s), %d Minute(s), %d Second(s)", b.Days, b.Hours, b.Minutes, b.Seconds)
}
