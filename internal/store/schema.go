package store

import (
	"context"
	"fmt"
	"time"

	"github.com/quakewatch/feltmaps/internal/domain"
)

// schema matches the tables written by the early-warning app backend.
const schema = `
CREATE TABLE IF NOT EXISTS eventinfo (
	eventid    TEXT PRIMARY KEY,
	origintime TEXT NOT NULL,
	latitude   REAL NOT NULL,
	longitude  REAL NOT NULL,
	magnitude  REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS intensityreports (
	eventid   TEXT NOT NULL,
	userid    TEXT NOT NULL,
	lat       REAL,
	lon       REAL,
	intensity INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_intensityreports_eventid ON intensityreports (eventid);
`

// CreateSchema creates the event and report tables when missing. Used by
// the seeder and by tests; the generator itself only reads.
func (s *DB) CreateSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// InsertEvent writes one eventinfo row.
func (s *DB) InsertEvent(ctx context.Context, ev domain.Event) error {
	const query = `
		INSERT INTO eventinfo (eventid, origintime, latitude, longitude, magnitude)
		VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		ev.ID, ev.OriginTime.UTC().Format(time.RFC3339),
		ev.Latitude, ev.Longitude, ev.Magnitude,
	)
	if err != nil {
		return fmt.Errorf("insert event %s: %w", ev.ID, err)
	}
	return nil
}

// InsertReports writes felt reports for the given event in one transaction.
func (s *DB) InsertReports(ctx context.Context, eventID string, reports []domain.Report) error {
	const query = `
		INSERT INTO intensityreports (eventid, userid, lat, lon, intensity)
		VALUES (?, ?, ?, ?, ?)`

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert reports: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for _, r := range reports {
		if _, err := tx.ExecContext(ctx, query, eventID, r.UserID, r.Lat, r.Lon, r.Intensity); err != nil {
			return fmt.Errorf("insert report for %s: %w", eventID, err)
		}
	}
	return tx.Commit()
}
