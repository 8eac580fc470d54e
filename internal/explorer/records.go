package explorer

import (
	"encoding/json"
	"io"

	"github.com/ramy-ahmed/bikeshare/internal/trips"
)

// recordView is one trip as shown by the pager, in file column order
// followed by the derived fields.
type recordView struct {
	StartTime    string  `json:"Start Time"`
	EndTime      string  `json:"End Time,omitempty"`
	Duration     float64 `json:"Trip Duration"`
	StartStation string  `json:"Start Station"`
	EndStation   string  `json:"End Station"`
	UserType     string  `json:"User Type"`
	Gender       *string `json:"Gender,omitempty"`
	BirthYear    *int    `json:"Birth Year,omitempty"`
	Hour         int     `json:"start_hour"`
	Month        int     `json:"start_month"`
	Weekday      string  `json:"start_day_of_week"`
	Trip         string  `json:"trip"`
}

func newRecordView(t trips.Trip, schema trips.Schema) recordView {
	v := recordView{
		StartTime:    t.StartTime.Format(trips.TimeLayout),
		Duration:     t.Duration,
		StartStation: t.StartStation,
		EndStation:   t.EndStation,
		UserType:     t.UserType,
		Hour:         t.Hour,
		Month:        t.Month,
		Weekday:      t.Weekday,
		Trip:         t.Label,
	}
	if !t.EndTime.IsZero() {
		v.EndTime = t.EndTime.Format(trips.TimeLayout)
	}
	if schema.HasGender {
		gender := t.Gender
		v.Gender = &gender
	}
	if schema.HasBirthYear && t.BirthYear != 0 {
		year := t.BirthYear
		v.BirthYear = &year
	}
	return v
}

// printRecords writes a batch of trips as indented JSON objects
func printRecords(w io.Writer, schema trips.Schema, batch []trips.Trip) error {
	views := make([]recordView, 0, len(batch))
	for _, t := range batch {
		views = append(views, newRecordView(t, schema))
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}
