// Package store reads earthquake events and felt reports from the SQLite
// database produced by the early-warning app backend.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/quakewatch/feltmaps/internal/domain"
)

// ErrEventNotFound is returned when the requested event id is absent, or
// when no default row exists at all.
var ErrEventNotFound = errors.New("event not found")

// DB wraps the report database.
type DB struct {
	db *sqlx.DB
}

// Open connects to the SQLite file at path. The file must already exist
// for reading; Open creates it when seeding a new database.
func Open(path string) (*DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %s: %w", path, err)
	}
	// SQLite handles one writer at a time; a single pooled connection also
	// keeps :memory: databases visible across queries.
	db.SetMaxOpenConns(1)
	return &DB{db: db}, nil
}

// Close releases the underlying connection.
func (s *DB) Close() error {
	return s.db.Close()
}

// eventRow mirrors one eventinfo record. Origin time is stored as
// ISO-8601 text with a UTC offset.
type eventRow struct {
	EventID    string  `db:"eventid"`
	OriginTime string  `db:"origintime"`
	Latitude   float64 `db:"latitude"`
	Longitude  float64 `db:"longitude"`
	Magnitude  float64 `db:"magnitude"`
}

// Event returns the event with the given id, or the first available row
// when id is empty. Returns ErrEventNotFound when no matching row exists.
func (s *DB) Event(ctx context.Context, id string) (domain.Event, error) {
	const columns = `SELECT eventid, origintime, latitude, longitude, magnitude FROM eventinfo`

	var row eventRow
	var err error
	if id == "" {
		err = s.db.GetContext(ctx, &row, columns+` LIMIT 1`)
	} else {
		err = s.db.GetContext(ctx, &row, columns+` WHERE eventid = ?`, id)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Event{}, ErrEventNotFound
	}
	if err != nil {
		return domain.Event{}, fmt.Errorf("query event: %w", err)
	}

	origin, err := time.Parse(time.RFC3339, row.OriginTime)
	if err != nil {
		return domain.Event{}, fmt.Errorf("parse origin time %q: %w", row.OriginTime, err)
	}

	return domain.Event{
		ID:         row.EventID,
		OriginTime: origin,
		Latitude:   row.Latitude,
		Longitude:  row.Longitude,
		Magnitude:  row.Magnitude,
	}, nil
}

type reportRow struct {
	UserID    string  `db:"userid"`
	Lat       float64 `db:"lat"`
	Lon       float64 `db:"lon"`
	Intensity int     `db:"intensity"`
}

// ReportsForEvent returns all reports for the event that carry non-null
// coordinates, in store order. An empty slice is a valid result; callers
// decide whether that is fatal.
func (s *DB) ReportsForEvent(ctx context.Context, eventID string) ([]domain.Report, error) {
	const query = `
		SELECT userid, lat, lon, intensity
		FROM intensityreports
		WHERE eventid = ? AND lat IS NOT NULL AND lon IS NOT NULL`

	var rows []reportRow
	if err := s.db.SelectContext(ctx, &rows, query, eventID); err != nil {
		return nil, fmt.Errorf("query reports for event %s: %w", eventID, err)
	}

	reports := make([]domain.Report, len(rows))
	for i, r := range rows {
		reports[i] = domain.Report{
			UserID:    r.UserID,
			Lat:       r.Lat,
			Lon:       r.Lon,
			Intensity: r.Intensity,
		}
	}
	return reports, nil
}
