package stats

import "github.com/ramy-ahmed/bikeshare/internal/trips"

// StationStats holds the most popular stations and trip
type StationStats struct {
	Empty bool
	Start Popular[string]
	End   Popular[string]
	Trip  Popular[string]
}

// ComputeStations finds the modal start station, end station and trip label.
func ComputeStations(table *trips.Table) StationStats {
	var s StationStats
	if table.Len() == 0 {
		s.Empty = true
		return s
	}

	starts := make([]string, 0, table.Len())
	ends := make([]string, 0, table.Len())
	labels := make([]string, 0, table.Len())
	for _, t := range table.Trips {
		starts = append(starts, t.StartStation)
		ends = append(ends, t.EndStation)
		labels = append(labels, t.Label)
	}

	s.Start, _ = Mode(starts)
	s.End, _ = Mode(ends)
	s.Trip, _ = Mode(labels)
	return s
}
