package trips_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramy-ahmed/bikeshare/internal/trips"
	"github.com/ramy-ahmed/bikeshare/internal/trips/tripstest"
)

const chicagoCSV = tripstest.Header +
	"1,2017-01-01 09:07:57,2017-01-01 09:20:53,776,Canal St & Adams St,Clinton St & Madison St,Subscriber,Male,1992.0\n" +
	"2,2017-01-02 18:00:00,2017-01-02 18:10:00,600,Canal St & Adams St,State St & Harrison St,Customer,,\n" +
	"3,2017-02-06 08:30:00,2017-02-06 08:35:00,300,Lake Shore Dr & Monroe St,Canal St & Adams St,Subscriber,Female,1985\n" +
	"4,2017-02-05 12:00:00,2017-02-05 12:30:00,1800.5,Canal St & Adams St,Clinton St & Madison St,Subscriber,Male,1985\n" +
	"5,not a date,2017-02-05 12:30:00,10,Nowhere,Nowhere,Subscriber,Male,1985\n" +
	"6,2017-06-04 07:00:00,2017-06-04 07:05:00,300,Clinton St & Madison St,Canal St & Adams St,Subscriber,Female,1970\n"

const washingtonCSV = tripstest.WashingtonHeader +
	"1,2017-03-04 10:00:00,2017-03-04 10:10:00,600.25,Lincoln Memorial,Jefferson Dr & 14th St SW,Customer\n" +
	"2,2017-03-05 11:00:00,2017-03-05 11:10:00,489.066,Lincoln Memorial,Lincoln Memorial,Subscriber\n"

func newSource(t *testing.T) *trips.CSVSource {
	t.Helper()
	dir := t.TempDir()
	tripstest.WriteCityFiles(t, dir, map[trips.City]string{
		trips.Chicago:    chicagoCSV,
		trips.Washington: washingtonCSV,
	})
	return trips.NewCSVSource(dir)
}

func TestParseDerivesCalendarFields(t *testing.T) {
	table, err := trips.Parse(strings.NewReader(chicagoCSV), trips.Chicago)
	require.NoError(t, err)

	require.Equal(t, 5, table.Len())
	assert.Equal(t, 1, table.Skipped)
	assert.True(t, table.Schema.HasGender)
	assert.True(t, table.Schema.HasBirthYear)

	first := table.Trips[0]
	assert.Equal(t, 9, first.Hour)
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, "Sunday", first.Weekday)
	assert.Equal(t, "Canal St & Adams St - Clinton St & Madison St", first.Label)
	assert.Equal(t, 776.0, first.Duration)
	assert.Equal(t, 1992, first.BirthYear)
	assert.Equal(t, "Male", first.Gender)

	second := table.Trips[1]
	assert.Equal(t, "", second.Gender)
	assert.Equal(t, 0, second.BirthYear)
}

func TestParseWithoutDemographicColumns(t *testing.T) {
	table, err := trips.Parse(strings.NewReader(washingtonCSV), trips.Washington)
	require.NoError(t, err)

	assert.False(t, table.Schema.HasGender)
	assert.False(t, table.Schema.HasBirthYear)
	assert.Equal(t, 2, table.Len())
	assert.InDelta(t, 489.066, table.Trips[1].Duration, 1e-9)
}

func TestParseRequiresStartTime(t *testing.T) {
	_, err := trips.Parse(strings.NewReader("Trip Duration\n10\n"), trips.Chicago)
	assert.Error(t, err)
}

func TestLoadAllKeepsEveryRow(t *testing.T) {
	src := newSource(t)

	table, err := trips.Load(context.Background(), src, trips.Selection{
		City: trips.Chicago, Mode: trips.FilterNone, Month: trips.All, Day: trips.All,
	})
	require.NoError(t, err)

	// one row of six has an unparseable start time
	assert.Equal(t, 5, table.Len())
}

func TestLoadFilters(t *testing.T) {
	src := newSource(t)

	tests := []struct {
		name     string
		month    string
		day      string
		expected int
	}{
		{"january", "january", trips.All, 2},
		{"february", "february", trips.All, 2},
		{"march is empty", "march", trips.All, 0},
		{"sunday", trips.All, "Sunday", 3},
		{"monday", trips.All, "Monday", 2},
		{"february mondays", "february", "Monday", 1},
		{"june sundays", "june", "Sunday", 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table, err := trips.Load(context.Background(), src, trips.Selection{
				City: trips.Chicago, Month: tc.month, Day: tc.day,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, table.Len())

			for _, trip := range table.Trips {
				if tc.month != trips.All {
					assert.Equal(t, trips.MonthNumber(tc.month), int(trip.StartTime.Month()))
				}
				if tc.day != trips.All {
					assert.Equal(t, tc.day, trip.StartTime.Weekday().String())
				}
			}
		})
	}
}

func TestFilterRejectsUnknownValues(t *testing.T) {
	table := tripstest.Table(trips.Chicago)

	_, err := trips.Filter(table, "july", trips.All)
	assert.ErrorIs(t, err, trips.ErrUnknownMonth)

	_, err = trips.Filter(table, trips.All, "Funday")
	assert.ErrorIs(t, err, trips.ErrUnknownDay)
}

func TestCheckDataFiles(t *testing.T) {
	src := newSource(t)
	require.NoError(t, src.CheckDataFiles())

	require.NoError(t, os.Remove(filepath.Join(src.Dir, "new_york_city.csv")))

	err := src.CheckDataFiles()
	require.Error(t, err)
	assert.True(t, errors.Is(err, trips.ErrMissingFile))

	var missing *trips.MissingFileError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "new_york_city.csv", missing.File)
	assert.Equal(t, "Sorry, File new_york_city.csv is missing, kindly add the file and try again", err.Error())
}

func TestParseCity(t *testing.T) {
	tests := []struct {
		input    string
		expected trips.City
		wantErr  bool
	}{
		{"chicago", trips.Chicago, false},
		{"  New York City ", trips.NewYorkCity, false},
		{"WASHINGTON", trips.Washington, false},
		{"boston", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			city, err := trips.ParseCity(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, trips.ErrUnknownCity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, city)
		})
	}
}

func TestCityNames(t *testing.T) {
	assert.Equal(t, "new_york_city.csv", trips.NewYorkCity.FileName())
	assert.Equal(t, "New York City", trips.NewYorkCity.Title())
	assert.Equal(t, "chicago.csv", trips.Chicago.FileName())
}

func TestMonthsAndWeekdays(t *testing.T) {
	assert.Equal(t, 1, trips.MonthNumber("january"))
	assert.Equal(t, 6, trips.MonthNumber("june"))
	assert.Equal(t, 0, trips.MonthNumber("july"))
	assert.Equal(t, "March", trips.MonthTitle(3))

	m, err := trips.ParseMonth(" May ")
	require.NoError(t, err)
	assert.Equal(t, "may", m)
	_, err = trips.ParseMonth("july")
	assert.ErrorIs(t, err, trips.ErrUnknownMonth)

	day, err := trips.WeekdayByNumber(1)
	require.NoError(t, err)
	assert.Equal(t, "Sunday", day)
	day, err = trips.WeekdayByNumber(7)
	require.NoError(t, err)
	assert.Equal(t, "Saturday", day)
	_, err = trips.WeekdayByNumber(8)
	assert.ErrorIs(t, err, trips.ErrUnknownDay)
	_, err = trips.WeekdayByNumber(0)
	assert.ErrorIs(t, err, trips.ErrUnknownDay)
}

func TestFilterModes(t *testing.T) {
	tests := []struct {
		mode      trips.FilterMode
		wantMonth bool
		wantDay   bool
	}{
		{trips.FilterMonth, true, false},
		{trips.FilterDay, false, true},
		{trips.FilterBoth, true, true},
		{trips.FilterNone, false, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.mode), func(t *testing.T) {
			assert.Equal(t, tc.wantMonth, tc.mode.WantsMonth())
			assert.Equal(t, tc.wantDay, tc.mode.WantsDay())
		})
	}

	_, ok := trips.ParseFilterMode("weekly")
	assert.False(t, ok)
	mode, ok := trips.ParseFilterMode("BOTH")
	assert.True(t, ok)
	assert.Equal(t, trips.FilterBoth, mode)
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		wantErr  bool
	}{
		{"friday", "Friday", false},
		{" SUNDAY ", "Sunday", false},
		{"2", "Monday", false},
		{"All", trips.All, false},
		{"0", "", true},
		{"funday", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			day, err := trips.ParseWeekday(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, trips.ErrUnknownDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, day)
		})
	}
}

func TestModeFor(t *testing.T) {
	assert.Equal(t, trips.FilterNone, trips.ModeFor(trips.All, trips.All))
	assert.Equal(t, trips.FilterNone, trips.ModeFor("", ""))
	assert.Equal(t, trips.FilterMonth, trips.ModeFor("may", trips.All))
	assert.Equal(t, trips.FilterDay, trips.ModeFor(trips.All, "Friday"))
	assert.Equal(t, trips.FilterBoth, trips.ModeFor("may", "Friday"))
}
