package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ramy-ahmed/bikeshare/internal/trips"
)

// Import describes the last import of one city
type Import struct {
	City       trips.City
	RowCount   int
	Skipped    int
	Schema     trips.Schema
	ImportedAt time.Time
}

// ReplaceCityTrips replaces every stored trip of the table's city with the
// table's trips and records the import, in one transaction.
func (db *DB) ReplaceCityTrips(ctx context.Context, table *trips.Table) error {
	db.LockWrite()
	defer db.UnlockWrite()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trips WHERE city = ?`, string(table.City)); err != nil {
		return fmt.Errorf("failed to clear trips for %s: %w", table.City, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trips (city, start_time, end_time, duration_seconds,
			start_station, end_station, user_type, gender, birth_year)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare trip insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range table.Trips {
		var endTime sql.NullString
		if !t.EndTime.IsZero() {
			endTime = sql.NullString{String: t.EndTime.Format(trips.TimeLayout), Valid: true}
		}
		gender := sql.NullString{String: t.Gender, Valid: t.Gender != ""}
		birthYear := sql.NullInt64{Int64: int64(t.BirthYear), Valid: t.BirthYear != 0}

		_, err := stmt.ExecContext(ctx,
			string(table.City),
			t.StartTime.Format(trips.TimeLayout),
			endTime,
			t.Duration,
			t.StartStation,
			t.EndStation,
			t.UserType,
			gender,
			birthYear,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip for %s: %w", table.City, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO trip_imports (city, row_count, skipped_count, has_gender, has_birth_year, imported_at_utc)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (city) DO UPDATE SET
			row_count = excluded.row_count,
			skipped_count = excluded.skipped_count,
			has_gender = excluded.has_gender,
			has_birth_year = excluded.has_birth_year,
			imported_at_utc = excluded.imported_at_utc
	`, string(table.City), len(table.Trips), table.Skipped,
		table.Schema.HasGender, table.Schema.HasBirthYear, formatUTC(time.Now()))
	if err != nil {
		return fmt.Errorf("failed to record import for %s: %w", table.City, err)
	}

	return tx.Commit()
}

// GetImport returns the import record of a city, or nil if the city was
// never imported.
func (db *DB) GetImport(ctx context.Context, city trips.City) (*Import, error) {
	var imp Import
	var importedAt string

	err := db.conn.QueryRowContext(ctx, `
		SELECT row_count, skipped_count, has_gender, has_birth_year, imported_at_utc
		FROM trip_imports
		WHERE city = ?
	`, string(city)).Scan(&imp.RowCount, &imp.Skipped, &imp.Schema.HasGender, &imp.Schema.HasBirthYear, &importedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read import for %s: %w", city, err)
	}

	imp.City = city
	imp.ImportedAt, _ = time.Parse(time.RFC3339, importedAt)
	return &imp, nil
}

// Check implements trips.Source. Every city must have been imported.
func (db *DB) Check(ctx context.Context) error {
	for _, city := range trips.AllCities() {
		imp, err := db.GetImport(ctx, city)
		if err != nil {
			return err
		}
		if imp == nil {
			return fmt.Errorf("%w: %s has not been imported into %s, run import-trips first",
				trips.ErrMissingFile, city.FileName(), db.path)
		}
	}
	return nil
}

// LoadTrips implements trips.Source. Trips come back in import order.
func (db *DB) LoadTrips(ctx context.Context, city trips.City) (*trips.Table, error) {
	imp, err := db.GetImport(ctx, city)
	if err != nil {
		return nil, err
	}
	if imp == nil {
		return nil, fmt.Errorf("%w: %s has not been imported", trips.ErrMissingFile, city.FileName())
	}

	rows, err := db.conn.QueryContext(ctx, `
		SELECT start_time, end_time, duration_seconds, start_station, end_station,
			user_type, gender, birth_year
		FROM trips
		WHERE city = ?
		ORDER BY id
	`, string(city))
	if err != nil {
		return nil, fmt.Errorf("failed to query trips for %s: %w", city, err)
	}
	defer rows.Close()

	table := &trips.Table{
		City:    city,
		Schema:  imp.Schema,
		Skipped: imp.Skipped,
		Trips:   make([]trips.Trip, 0, imp.RowCount),
	}

	for rows.Next() {
		var (
			start     string
			end       sql.NullString
			userType  sql.NullString
			gender    sql.NullString
			birthYear sql.NullInt64
			t         trips.Trip
		)
		if err := rows.Scan(&start, &end, &t.Duration, &t.StartStation, &t.EndStation,
			&userType, &gender, &birthYear); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}

		t.StartTime, err = time.Parse(trips.TimeLayout, start)
		if err != nil {
			return nil, fmt.Errorf("invalid start time %q: %w", start, err)
		}
		if end.Valid {
			t.EndTime, _ = time.Parse(trips.TimeLayout, end.String)
		}
		t.UserType = userType.String
		t.Gender = gender.String
		t.BirthYear = int(birthYear.Int64)
		t.Derive()

		table.Trips = append(table.Trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trips for %s: %w", city, err)
	}

	return table, nil
}
