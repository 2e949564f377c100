// Package pipeline orchestrates the one-shot batch: load an event and its
// felt reports, enrich them, and render the two map artifacts.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/quakewatch/feltmaps/internal/domain"
	"github.com/quakewatch/feltmaps/internal/mapview"
	"github.com/quakewatch/feltmaps/internal/observability"
)

// ErrEmptyDataset is returned when the event exists but has zero usable
// reports. No map is written in that case.
var ErrEmptyDataset = errors.New("no felt reports with coordinates for this event")

// EventSource loads one event by id, or the first available when id is empty.
type EventSource interface {
	Event(ctx context.Context, id string) (domain.Event, error)
}

// ReportSource loads all usable reports for an event.
type ReportSource interface {
	ReportsForEvent(ctx context.Context, eventID string) ([]domain.Report, error)
}

// Options control one generation run.
type Options struct {
	EventID      string // empty selects the first stored event
	Zoom         int
	OutputPrefix string
	OutputDir    string
}

// Result describes the artifacts a successful run produced.
type Result struct {
	Event         domain.Event
	ReportCount   int
	IntensityPath string
	ResidualPath  string
}

// Generator runs the load-enrich-render batch for one event.
type Generator struct {
	events  EventSource
	reports ReportSource
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Generator with the given sources and observability.
func New(events EventSource, reports ReportSource, logger *slog.Logger, metrics *observability.Metrics) *Generator {
	return &Generator{
		events:  events,
		reports: reports,
		logger:  logger,
		metrics: metrics,
	}
}

// Run executes one complete generation. All errors abort before any
// artifact is written; there is no partial output.
func (g *Generator) Run(ctx context.Context, opts Options) (Result, error) {
	start := time.Now()

	event, err := g.events.Event(ctx, opts.EventID)
	if err != nil {
		return Result{}, fmt.Errorf("load event: %w", err)
	}
	g.logger.Info("event loaded",
		"event_id", event.ID,
		"magnitude", event.Magnitude,
		"origin_time", event.OriginTime,
	)

	reports, err := g.reports.ReportsForEvent(ctx, event.ID)
	if err != nil {
		return Result{}, fmt.Errorf("load reports: %w", err)
	}
	if len(reports) == 0 {
		return Result{}, fmt.Errorf("event %s: %w", event.ID, ErrEmptyDataset)
	}

	enriched := domain.EnrichReports(reports, event)
	g.metrics.ReportsProcessed.Add(float64(len(enriched)))
	for _, er := range enriched {
		g.metrics.ResidualBuckets.WithLabelValues(string(er.ResidualClass())).Inc()
	}

	intensityPath, err := g.writeIntensityMap(event, enriched, opts)
	if err != nil {
		return Result{}, err
	}
	residualPath, err := g.writeResidualMap(event, enriched, opts)
	if err != nil {
		return Result{}, err
	}

	g.metrics.MapsRendered.Add(2)
	g.metrics.GenerateDuration.Observe(time.Since(start).Seconds())
	g.logger.Info("maps generated",
		"event_id", event.ID,
		"reports", len(enriched),
		"intensity_map", intensityPath,
		"residual_map", residualPath,
	)

	return Result{
		Event:         event,
		ReportCount:   len(enriched),
		IntensityPath: intensityPath,
		ResidualPath:  residualPath,
	}, nil
}

func (g *Generator) writeIntensityMap(event domain.Event, enriched []domain.EnrichedReport, opts Options) (string, error) {
	legend, err := mapview.ComposeLegend(event, "Reported intensity", mapview.IntensityLegendItems())
	if err != nil {
		return "", err
	}

	m := mapview.Assemble(
		"Felt intensity map "+event.ID,
		event, opts.Zoom,
		mapview.BuildIntensityLayers(enriched),
		legend,
	)

	path := filepath.Join(opts.OutputDir, artifactName(opts.OutputPrefix, "mapa_"+event.ID+".html"))
	return path, writeArtifact(path, m)
}

func (g *Generator) writeResidualMap(event domain.Event, enriched []domain.EnrichedReport, opts Options) (string, error) {
	legend, err := mapview.ComposeLegend(event, "Residual level", mapview.ResidualLegendItems())
	if err != nil {
		return "", err
	}

	m := mapview.Assemble(
		"Residual map "+event.ID,
		event, opts.Zoom,
		mapview.BuildResidualLayers(enriched),
		legend,
	)

	path := filepath.Join(opts.OutputDir, artifactName(opts.OutputPrefix, "mapa_diferencia_"+event.ID+".html"))
	return path, writeArtifact(path, m)
}

// artifactName prepends the optional output prefix with an underscore.
func artifactName(prefix, base string) string {
	if prefix == "" {
		return base
	}
	return prefix + "_" + base
}

func writeArtifact(path string, m mapview.Map) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create map file: %w", err)
	}
	if err := m.Render(f); err != nil {
		f.Close() //nolint:errcheck,gosec // render error takes precedence
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close map file %s: %w", path, err)
	}
	return nil
}
