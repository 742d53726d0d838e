package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hellasr/greekeval/internal/batch"
	"github.com/hellasr/greekeval/internal/config"
	"github.com/hellasr/greekeval/internal/observe"
	"github.com/hellasr/greekeval/pkg/greekeval"
)

// BatchCmd scores a TSV of reference/hypothesis pairs and writes a JSON
// report.
type BatchCmd struct {
	Input  string `arg:"" help:"TSV file of rows (id<TAB>reference<TAB>hypothesis), or - for stdin."`
	Output string `default:"-" help:"Report destination, or - for stdout."`
}

func (c *BatchCmd) Run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceVersion: version})
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			slog.Warn("telemetry shutdown", "err", err)
		}
	}()

	if cfg.MetricsAddr != "" {
		stopMetrics := serveMetrics(cfg.MetricsAddr)
		defer stopMetrics()
	}

	rows, err := c.readRows()
	if err != nil {
		return err
	}
	slog.Info("batch scoring", "rows", len(rows), "workers", cfg.Workers)

	eval := greekeval.New(
		greekeval.WithConfig(cfg.Normalization.Textnorm()),
		greekeval.WithRateCap(cfg.RateCap),
	)
	report, err := batch.NewRunner(eval, cfg.Workers).Run(ctx, rows)
	if err != nil {
		return err
	}

	return c.writeReport(report)
}

func (c *BatchCmd) readRows() ([]batch.Row, error) {
	if c.Input == "-" {
		return batch.ReadRows(os.Stdin)
	}
	f, err := os.Open(c.Input)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", c.Input, err)
	}
	defer f.Close()
	return batch.ReadRows(f)
}

func (c *BatchCmd) writeReport(report *batch.Report) error {
	var out io.Writer = os.Stdout
	if c.Output != "-" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("create %q: %w", c.Output, err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// serveMetrics exposes the Prometheus bridge on addr for the duration of
// the run and returns a function that stops the listener.
func serveMetrics(addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		slog.Info("metrics endpoint listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics endpoint", "err", err)
		}
	}()

	return func() {
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
	}
}
