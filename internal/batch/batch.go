// Package batch scores many (reference, hypothesis) pairs concurrently and
// aggregates the per-pair records into one report.
//
// The evaluation engine is pure and allocation-local, so rows are scored in
// parallel without any synchronisation beyond the result slice, each worker
// writing its own index.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hellasr/greekeval/internal/observe"
	"github.com/hellasr/greekeval/pkg/greekeval"
)

// Row is one scoring task: a reference transcript and the ASR hypothesis to
// score against it.
type Row struct {
	ID         string
	Reference  string
	Hypothesis string
}

// RowResult pairs a row's ID with its evaluation record.
type RowResult struct {
	ID      string                  `json:"id"`
	Metrics greekeval.MetricsRecord `json:"metrics"`
}

// Summary aggregates the headline numbers of a run. Averages are
// unweighted means across rows.
type Summary struct {
	Rows                 int     `json:"rows"`
	AvgWER               float64 `json:"avg_wer"`
	AvgCER               float64 `json:"avg_cer"`
	AvgWordAccuracy      float64 `json:"avg_word_accuracy"`
	AvgDiacriticAccuracy float64 `json:"avg_diacritic_accuracy"`
	AvgGreekCharAccuracy float64 `json:"avg_greek_char_accuracy"`
	AvgSimilarity        float64 `json:"avg_similarity"`
}

// Report is the JSON-serializable outcome of one batch run.
type Report struct {
	RunID           string      `json:"run_id"`
	StartedAt       time.Time   `json:"started_at"`
	DurationSeconds float64     `json:"duration_seconds"`
	Summary         Summary     `json:"summary"`
	Results         []RowResult `json:"results"`
}

// ReadRows parses tab-separated scoring rows from r. Each line is either
// `reference<TAB>hypothesis` or `id<TAB>reference<TAB>hypothesis`; rows
// without an explicit ID are numbered from 1. Blank lines and lines
// starting with # are skipped.
func ReadRows(r io.Reader) ([]Row, error) {
	sc := bufio.NewScanner(r)
	// Transcripts of long recordings can exceed the default token size.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var rows []Row
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		switch len(fields) {
		case 2:
			rows = append(rows, Row{
				ID:         strconv.Itoa(len(rows) + 1),
				Reference:  fields[0],
				Hypothesis: fields[1],
			})
		case 3:
			rows = append(rows, Row{ID: fields[0], Reference: fields[1], Hypothesis: fields[2]})
		default:
			return nil, fmt.Errorf("batch: line %d: want 2 or 3 tab-separated fields, got %d", lineNo, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("batch: read rows: %w", err)
	}
	return rows, nil
}

// Runner scores rows with a fixed evaluator and worker count. It is
// read-only after construction and safe for concurrent use.
type Runner struct {
	eval    *greekeval.Evaluator
	workers int
	metrics *observe.Metrics
}

// NewRunner returns a Runner using the given evaluator. workers <= 0 means
// one worker per CPU.
func NewRunner(eval *greekeval.Evaluator, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		eval:    eval,
		workers: workers,
		metrics: observe.Default(),
	}
}

// Run scores every row and returns the assembled report. Row order is
// preserved in the results. Run fails only on context cancellation —
// individual evaluations cannot fail.
func (r *Runner) Run(ctx context.Context, rows []Row) (*Report, error) {
	ctx, span := observe.StartSpan(ctx, "batch.run")
	defer span.End()

	started := time.Now()
	results := make([]RowResult, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, row := range rows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			begin := time.Now()
			m := r.eval.Evaluate(row.Reference, row.Hypothesis)
			r.metrics.RecordEvaluation(gctx, string(m.Orthography), m.WER, time.Since(begin))
			results[i] = RowResult{ID: row.ID, Metrics: m}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:           uuid.NewString(),
		StartedAt:       started.UTC(),
		DurationSeconds: time.Since(started).Seconds(),
		Summary:         summarize(results),
		Results:         results,
	}
	r.metrics.RecordBatchRun(ctx, len(rows))
	observe.Logger(ctx).Info("batch run complete",
		"run_id", report.RunID,
		"rows", len(rows),
		"avg_wer", report.Summary.AvgWER,
		"avg_cer", report.Summary.AvgCER,
	)
	return report, nil
}

func summarize(results []RowResult) Summary {
	s := Summary{Rows: len(results)}
	if len(results) == 0 {
		return s
	}
	for _, res := range results {
		s.AvgWER += res.Metrics.WER
		s.AvgCER += res.Metrics.CER
		s.AvgWordAccuracy += res.Metrics.WordAccuracy
		s.AvgDiacriticAccuracy += res.Metrics.Diacritics.Accuracy
		s.AvgGreekCharAccuracy += res.Metrics.GreekCharAccuracy
		s.AvgSimilarity += res.Metrics.Similarity
	}
	n := float64(len(results))
	s.AvgWER /= n
	s.AvgCER /= n
	s.AvgWordAccuracy /= n
	s.AvgDiacriticAccuracy /= n
	s.AvgGreekCharAccuracy /= n
	s.AvgSimilarity /= n
	return s
}
