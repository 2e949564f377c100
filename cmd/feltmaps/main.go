// Command feltmaps reads an earthquake's crowd-sourced felt reports from a
// SQLite database and writes two interactive HTML maps: one colored by
// reported intensity, one by the residual against the attenuation model.
//
// Usage:
//
//	feltmaps sismo_insi2025otmk.db
//	feltmaps -event-id insi2025otmk -zoom 9 -output-prefix demo sismo_insi2025otmk.db
//	feltmaps -serve :8080 sismo_insi2025otmk.db
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quakewatch/feltmaps/internal/adapter/httpserve"
	"github.com/quakewatch/feltmaps/internal/config"
	"github.com/quakewatch/feltmaps/internal/observability"
	"github.com/quakewatch/feltmaps/internal/pipeline"
	"github.com/quakewatch/feltmaps/internal/store"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	if err := run(cfg, logger, metrics); err != nil {
		logger.Error("generation failed", "error", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) error {
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck // read-only connection

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g := pipeline.New(db, db, logger, metrics)
	result, err := g.Run(ctx, pipeline.Options{
		EventID:      cfg.EventID,
		Zoom:         cfg.Zoom,
		OutputPrefix: cfg.OutputPrefix,
		OutputDir:    cfg.OutputDir,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Generated files:\n- %s\n- %s\n", result.IntensityPath, result.ResidualPath)

	if cfg.ServeAddr == "" {
		return nil
	}
	return serve(ctx, cfg, logger)
}

// serve keeps the process alive exposing the output directory, /healthz
// and /metrics until interrupted.
func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	srv := httpserve.NewServer(cfg.ServeAddr, cfg.OutputDir, logger)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down preview server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
