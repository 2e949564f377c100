// Package integration exercises the full path from a SQLite report
// database to the two rendered HTML artifacts.
package integration

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quakewatch/feltmaps/internal/domain"
	"github.com/quakewatch/feltmaps/internal/observability"
	"github.com/quakewatch/feltmaps/internal/pipeline"
	"github.com/quakewatch/feltmaps/internal/store"
)

func seedDatabase(t *testing.T) *store.DB {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "sismo_test.db")
	db, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.CreateSchema(ctx))
	require.NoError(t, db.InsertEvent(ctx, domain.Event{
		ID:         "insi2025otmk",
		OriginTime: time.Date(2025, 2, 10, 14, 30, 5, 0, time.UTC),
		Latitude:   14.5,
		Longitude:  -90.5,
		Magnitude:  6.0,
	}))
	require.NoError(t, db.InsertReports(ctx, "insi2025otmk", []domain.Report{
		{UserID: "u1", Lat: 14.5, Lon: -90.5, Intensity: 7},
		{UserID: "u2", Lat: 14.75, Lon: -90.2, Intensity: 5},
		{UserID: "u3", Lat: 14.2, Lon: -91.0, Intensity: 4},
		{UserID: "u4", Lat: 15.1, Lon: -89.9, Intensity: 2},
	}))
	return db
}

func TestGenerateFromSQLite(t *testing.T) {
	db := seedDatabase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	outDir := t.TempDir()

	g := pipeline.New(db, db, logger, observability.NewMetricsForTesting())
	result, err := g.Run(context.Background(), pipeline.Options{
		EventID:   "insi2025otmk",
		Zoom:      9,
		OutputDir: outDir,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.ReportCount)

	intensity, err := os.ReadFile(result.IntensityPath)
	require.NoError(t, err)
	residual, err := os.ReadFile(result.ResidualPath)
	require.NoError(t, err)

	t.Run("intensity artifact", func(t *testing.T) {
		doc := string(intensity)
		assert.True(t, strings.HasSuffix(result.IntensityPath, "mapa_insi2025otmk.html"))
		assert.Contains(t, doc, "Reported intensity")
		assert.Contains(t, doc, "R = 0.0 km | IMM obs = 7")
		assert.Contains(t, doc, "2025-02-10")
		assert.Contains(t, doc, "14:30:05")
	})

	t.Run("residual artifact", func(t *testing.T) {
		doc := string(residual)
		assert.True(t, strings.HasSuffix(result.ResidualPath, "mapa_diferencia_insi2025otmk.html"))
		assert.Contains(t, doc, "Residual level")
		assert.Contains(t, doc, "residual = 18") // epicenter report, predicted 25
	})
}

func TestGenerateUnknownEvent(t *testing.T) {
	db := seedDatabase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	g := pipeline.New(db, db, logger, observability.NewMetricsForTesting())
	_, err := g.Run(context.Background(), pipeline.Options{
		EventID:   "does-not-exist",
		Zoom:      9,
		OutputDir: t.TempDir(),
	})
	assert.ErrorIs(t, err, store.ErrEventNotFound)
}
