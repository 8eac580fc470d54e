package stats

import "github.com/ramy-ahmed/bikeshare/internal/trips"

// DurationStats holds total and average trip duration
type DurationStats struct {
	Count          int
	Total          float64 // seconds
	Mean           float64 // seconds
	StdDev         float64
	Shortest       float64
	Longest        float64
	TotalBreakdown Breakdown
	MeanBreakdown  Breakdown
}

// ComputeDuration sums the trip durations of the table.
func ComputeDuration(table *trips.Table) DurationStats {
	var acc Accumulator
	if table != nil {
		for _, t := range table.Trips {
			acc.Update(t.Duration)
		}
	}

	return DurationStats{
		Count:          acc.Count(),
		Total:          acc.Sum(),
		Mean:           acc.Mean(),
		StdDev:         acc.StdDev(),
		Shortest:       acc.Min(),
		Longest:        acc.Max(),
		TotalBreakdown: Decompose(acc.Sum()),
		MeanBreakdown:  Decompose(acc.Mean()),
	}
}
