package trips

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Column headers of the city files
const (
	colStartTime    = "Start Time"
	colEndTime      = "End Time"
	colDuration     = "Trip Duration"
	colStartStation = "Start Station"
	colEndStation   = "End Station"
	colUserType     = "User Type"
	colGender       = "Gender"
	colBirthYear    = "Birth Year"
)

// Parse reads a city file. Rows whose start time does not parse are skipped
// and counted in Table.Skipped; other malformed fields fall back to zero values.
func Parse(r io.Reader, city City) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx := makeIndex(header)
	if _, ok := idx[colStartTime]; !ok {
		return nil, fmt.Errorf("missing %q column", colStartTime)
	}
	_, hasGender := idx[colGender]
	_, hasBirthYear := idx[colBirthYear]

	table := &Table{
		City: city,
		Schema: Schema{
			HasGender:    hasGender,
			HasBirthYear: hasBirthYear,
		},
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			table.Skipped++
			continue
		}

		start, err := time.Parse(TimeLayout, getField(record, idx, colStartTime))
		if err != nil {
			table.Skipped++
			continue
		}
		end, _ := time.Parse(TimeLayout, getField(record, idx, colEndTime))
		duration, _ := strconv.ParseFloat(getField(record, idx, colDuration), 64)

		trip := Trip{
			StartTime:    start,
			EndTime:      end,
			StartStation: getField(record, idx, colStartStation),
			EndStation:   getField(record, idx, colEndStation),
			Duration:     duration,
			UserType:     getField(record, idx, colUserType),
			Gender:       getField(record, idx, colGender),
			BirthYear:    parseYear(getField(record, idx, colBirthYear)),
		}
		trip.Derive()
		table.Trips = append(table.Trips, trip)
	}

	if table.Skipped > 0 {
		slog.Warn("skipped unparseable rows", "city", string(city), "skipped", table.Skipped)
	}

	return table, nil
}

// Derive fills the calendar fields and trip label from the raw columns.
func (t *Trip) Derive() {
	t.Hour = t.StartTime.Hour()
	t.Month = int(t.StartTime.Month())
	t.Weekday = t.StartTime.Weekday().String()
	t.Label = t.StartStation + " - " + t.EndStation
}

// parseYear accepts "1992" and the float form "1992.0"; blanks are 0.
func parseYear(s string) int {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

func makeIndex(header []string) map[string]int {
	idx := make(map[string]int)
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return idx
}

func getField(record []string, idx map[string]int, field string) string {
	if i, ok := idx[field]; ok && i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}
