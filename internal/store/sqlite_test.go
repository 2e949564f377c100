package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quakewatch/feltmaps/internal/domain"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.CreateSchema(context.Background()))
	return db
}

func testEvent() domain.Event {
	return domain.Event{
		ID:         "insi2025otmk",
		OriginTime: time.Date(2025, 2, 10, 14, 30, 5, 0, time.UTC),
		Latitude:   14.5,
		Longitude:  -90.5,
		Magnitude:  6.0,
	}
}

func TestEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("lookup by id", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, db.InsertEvent(ctx, testEvent()))

		got, err := db.Event(ctx, "insi2025otmk")
		require.NoError(t, err)
		assert.Equal(t, testEvent(), got)
	})

	t.Run("first available when id is empty", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, db.InsertEvent(ctx, testEvent()))

		got, err := db.Event(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, "insi2025otmk", got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, db.InsertEvent(ctx, testEvent()))

		_, err := db.Event(ctx, "nope")
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("empty table", func(t *testing.T) {
		db := openTestDB(t)

		_, err := db.Event(ctx, "")
		assert.ErrorIs(t, err, ErrEventNotFound)
	})

	t.Run("origin time round-trips with UTC offset", func(t *testing.T) {
		db := openTestDB(t)
		ev := testEvent()
		require.NoError(t, db.InsertEvent(ctx, ev))

		got, err := db.Event(ctx, ev.ID)
		require.NoError(t, err)
		assert.True(t, got.OriginTime.Equal(ev.OriginTime))
	})
}

func TestReportsForEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("returns all reports with coordinates", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, db.InsertEvent(ctx, testEvent()))
		reports := []domain.Report{
			{UserID: "u1", Lat: 14.6, Lon: -90.4, Intensity: 5},
			{UserID: "u2", Lat: 14.2, Lon: -90.9, Intensity: 3},
		}
		require.NoError(t, db.InsertReports(ctx, "insi2025otmk", reports))

		got, err := db.ReportsForEvent(ctx, "insi2025otmk")
		require.NoError(t, err)
		assert.Equal(t, reports, got)
	})

	t.Run("filters null coordinates", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, db.InsertEvent(ctx, testEvent()))
		_, err := db.db.ExecContext(ctx,
			`INSERT INTO intensityreports (eventid, userid, lat, lon, intensity) VALUES
				('insi2025otmk', 'u1', 14.6, -90.4, 5),
				('insi2025otmk', 'u2', NULL, -90.9, 3),
				('insi2025otmk', 'u3', 14.2, NULL, 4)`)
		require.NoError(t, err)

		got, err := db.ReportsForEvent(ctx, "insi2025otmk")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "u1", got[0].UserID)
	})

	t.Run("empty result for unknown event", func(t *testing.T) {
		db := openTestDB(t)

		got, err := db.ReportsForEvent(ctx, "insi2025otmk")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("reports for other events excluded", func(t *testing.T) {
		db := openTestDB(t)
		require.NoError(t, db.InsertReports(ctx, "other", []domain.Report{
			{UserID: "ux", Lat: 14.0, Lon: -90.0, Intensity: 2},
		}))

		got, err := db.ReportsForEvent(ctx, "insi2025otmk")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
