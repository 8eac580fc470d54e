package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/ramy-ahmed/bikeshare/internal/stats"
)

type popularJSON struct {
	Value any `json:"value"`
	Count int `json:"count"`
}

type timeJSON struct {
	Hour    popularJSON  `json:"hour"`
	Weekday *popularJSON `json:"weekday,omitempty"`
	Month   *popularJSON `json:"month,omitempty"`
}

type stationsJSON struct {
	Start popularJSON `json:"start"`
	End   popularJSON `json:"end"`
	Trip  popularJSON `json:"trip"`
}

type reportJSON struct {
	GeneratedAt string `json:"generatedAt"`
	City        string `json:"city"`
	Filter      string `json:"filter"`
	Month       string `json:"month"`
	Day         string `json:"day"`
	TripCount   int    `json:"tripCount"`
	Skipped     int    `json:"skippedRows,omitempty"`

	Time     *timeJSON     `json:"time,omitempty"`
	Stations *stationsJSON `json:"stations,omitempty"`

	Duration struct {
		Count        int     `json:"count"`
		TotalSeconds float64 `json:"totalSeconds"`
		Total        string  `json:"total"`
		MeanSeconds  float64 `json:"meanSeconds"`
		Mean         string  `json:"mean"`
		StdDev       float64 `json:"stdDevSeconds"`
		Shortest     float64 `json:"shortestSeconds"`
		Longest      float64 `json:"longestSeconds"`
	} `json:"duration"`

	Users struct {
		Subscribers int          `json:"subscribers"`
		Customers   int          `json:"customers"`
		Male        *int         `json:"male,omitempty"`
		Female      *int         `json:"female,omitempty"`
		Earliest    *int         `json:"earliestBirthYear,omitempty"`
		MostRecent  *int         `json:"mostRecentBirthYear,omitempty"`
		MostCommon  *popularJSON `json:"mostCommonBirthYear,omitempty"`
	} `json:"users"`
}

func popular[T int | string](p stats.Popular[T]) popularJSON {
	return popularJSON{Value: p.Value, Count: p.Count}
}

// WriteJSON writes the report as an indented JSON document. Statistics that
// are hidden on the console for the selection are omitted.
func WriteJSON(w io.Writer, r Report) error {
	out := reportJSON{
		GeneratedAt: r.GeneratedAt.Format(time.RFC3339),
		City:        string(r.Selection.City),
		Filter:      string(r.Selection.Mode),
		Month:       r.Selection.Month,
		Day:         r.Selection.Day,
		TripCount:   r.TripCount,
		Skipped:     r.Skipped,
	}

	if !r.Time.Empty {
		out.Time = &timeJSON{Hour: popular(r.Time.Hour)}
		if r.Time.ShowsDay() {
			p := popular(r.Time.Weekday)
			out.Time.Weekday = &p
		}
		if r.Time.ShowsMonth() {
			p := popularJSON{Value: r.Time.MonthName(), Count: r.Time.Month.Count}
			out.Time.Month = &p
		}
	}

	if !r.Stations.Empty {
		out.Stations = &stationsJSON{
			Start: popular(r.Stations.Start),
			End:   popular(r.Stations.End),
			Trip:  popular(r.Stations.Trip),
		}
	}

	d := r.Duration
	out.Duration.Count = d.Count
	out.Duration.TotalSeconds = d.Total
	out.Duration.Total = d.TotalBreakdown.String()
	out.Duration.MeanSeconds = d.Mean
	out.Duration.Mean = d.MeanBreakdown.String()
	out.Duration.StdDev = d.StdDev
	out.Duration.Shortest = d.Shortest
	out.Duration.Longest = d.Longest

	u := r.Users
	out.Users.Subscribers = u.Subscribers
	out.Users.Customers = u.Customers
	if u.HasGender {
		out.Users.Male = &u.Male
		out.Users.Female = &u.Female
	}
	if u.HasBirthYear && u.BirthYearKnown {
		out.Users.Earliest = &u.Earliest
		out.Users.MostRecent = &u.MostRecent
		p := popular(u.MostCommon)
		out.Users.MostCommon = &p
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
