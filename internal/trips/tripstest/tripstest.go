// Package tripstest builds trip fixtures for tests.
package tripstest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ramy-ahmed/bikeshare/internal/trips"
)

// Header is the full column set used by Chicago and New York City files.
const Header = ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year\n"

// WashingtonHeader lacks the demographic columns.
const WashingtonHeader = ",Start Time,End Time,Trip Duration,Start Station,End Station,User Type\n"

// Trip builds a derived trip starting at start ("2006-01-02 15:04:05").
func Trip(start, from, to string, duration float64, userType string) trips.Trip {
	st, err := time.Parse(trips.TimeLayout, start)
	if err != nil {
		panic(err)
	}
	t := trips.Trip{
		StartTime:    st,
		EndTime:      st.Add(time.Duration(duration) * time.Second),
		StartStation: from,
		EndStation:   to,
		Duration:     duration,
		UserType:     userType,
	}
	t.Derive()
	return t
}

// WithDemographics sets gender and birth year on a copy of t.
func WithDemographics(t trips.Trip, gender string, birthYear int) trips.Trip {
	t.Gender = gender
	t.BirthYear = birthYear
	return t
}

// Table wraps trips into a table with the full schema.
func Table(city trips.City, ts ...trips.Trip) *trips.Table {
	return &trips.Table{
		City:   city,
		Schema: trips.Schema{HasGender: true, HasBirthYear: true},
		Trips:  ts,
	}
}

// WriteCityFiles writes a file for every city into dir. Cities missing from
// contents get a header-only file.
func WriteCityFiles(t testing.TB, dir string, contents map[trips.City]string) {
	t.Helper()
	for _, city := range trips.AllCities() {
		body, ok := contents[city]
		if !ok {
			body = Header
		}
		if err := os.WriteFile(filepath.Join(dir, city.FileName()), []byte(body), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", city.FileName(), err)
		}
	}
}
