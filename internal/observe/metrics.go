// Package observe provides observability primitives for the greekeval
// scorer: OpenTelemetry metrics, tracing helpers, and a Prometheus exporter
// bridge.
//
// Metrics are recorded through the OpenTelemetry Metrics API; [InitProvider]
// wires a Prometheus exporter so long batch runs can still be scraped via a
// standard /metrics endpoint. A package-level default [Metrics] instance
// ([Default]) is provided for convenience; tests should use [NewMetrics]
// with a custom [metric.MeterProvider] to avoid cross-test pollution.
package observe

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all scorer metrics.
const meterName = "github.com/hellasr/greekeval"

// Metrics holds all OpenTelemetry metric instruments for the scorer.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// EvaluationDuration tracks the latency of a single Evaluate call.
	EvaluationDuration metric.Float64Histogram

	// Evaluations counts scored pairs. Use with attribute:
	//   attribute.String("orthography", ...)
	Evaluations metric.Int64Counter

	// WERDistribution records the WER of every scored pair, giving a
	// quality histogram across a run.
	WERDistribution metric.Float64Histogram

	// BatchRuns counts completed batch runs.
	BatchRuns metric.Int64Counter

	// BatchRows counts rows scored across all batch runs.
	BatchRows metric.Int64Counter
}

// durationBuckets defines histogram bucket boundaries (in seconds) for
// evaluation latency; even long transcripts finish well under a second.
var durationBuckets = []float64{
	0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.5, 1,
}

// werBuckets defines histogram bucket boundaries (in WER percent).
var werBuckets = []float64{
	1, 2.5, 5, 10, 15, 20, 30, 50, 75, 100, 150, 200,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.EvaluationDuration, err = m.Float64Histogram("greekeval.evaluation.duration",
		metric.WithDescription("Latency of one reference/hypothesis evaluation."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(durationBuckets...),
	); err != nil {
		return nil, err
	}
	if met.WERDistribution, err = m.Float64Histogram("greekeval.evaluation.wer",
		metric.WithDescription("Word error rate of each scored pair, in percent."),
		metric.WithExplicitBucketBoundaries(werBuckets...),
	); err != nil {
		return nil, err
	}
	if met.Evaluations, err = m.Int64Counter("greekeval.evaluations",
		metric.WithDescription("Total scored pairs by detected orthography."),
	); err != nil {
		return nil, err
	}
	if met.BatchRuns, err = m.Int64Counter("greekeval.batch.runs",
		metric.WithDescription("Total completed batch runs."),
	); err != nil {
		return nil, err
	}
	if met.BatchRows, err = m.Int64Counter("greekeval.batch.rows",
		metric.WithDescription("Total rows scored across all batch runs."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// Default returns the package-level [Metrics] instance backed by the global
// meter provider, creating it on first use.
func Default() *Metrics {
	defaultMetricsOnce.Do(func() {
		m, err := NewMetrics(otel.GetMeterProvider())
		if err != nil {
			slog.Error("failed to initialise metrics; telemetry disabled", "err", err)
			m = &Metrics{}
		}
		defaultMetrics = m
	})
	return defaultMetrics
}

// RecordEvaluation records one scored pair. Safe to call on a nil or
// partially initialised Metrics.
func (m *Metrics) RecordEvaluation(ctx context.Context, orthography string, wer float64, elapsed time.Duration) {
	if m == nil || m.Evaluations == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("orthography", orthography))
	m.Evaluations.Add(ctx, 1, attrs)
	m.EvaluationDuration.Record(ctx, elapsed.Seconds(), attrs)
	m.WERDistribution.Record(ctx, wer, attrs)
}

// RecordBatchRun records one completed batch run of the given size.
func (m *Metrics) RecordBatchRun(ctx context.Context, rows int) {
	if m == nil || m.BatchRuns == nil {
		return
	}
	m.BatchRuns.Add(ctx, 1)
	m.BatchRows.Add(ctx, int64(rows))
}
