package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hellasr/greekeval/internal/config"
	"github.com/hellasr/greekeval/pkg/greekeval"
)

// ScoreCmd scores one reference/hypothesis pair and prints the record.
type ScoreCmd struct {
	Reference  string `arg:"" help:"Reference text, or a file path with --files."`
	Hypothesis string `arg:"" help:"Hypothesis text, or a file path with --files."`
	Files      bool   `help:"Treat the arguments as file paths instead of inline text."`
	JSON       bool   `help:"Emit the full metrics record as JSON."`
}

func (c *ScoreCmd) Run(cfg *config.Config) error {
	reference, hypothesis := c.Reference, c.Hypothesis
	if c.Files {
		var err error
		if reference, err = readTextFile(c.Reference); err != nil {
			return err
		}
		if hypothesis, err = readTextFile(c.Hypothesis); err != nil {
			return err
		}
	}

	eval := greekeval.New(
		greekeval.WithConfig(cfg.Normalization.Textnorm()),
		greekeval.WithRateCap(cfg.RateCap),
	)
	rec := eval.Evaluate(reference, hypothesis)

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	printRecord(rec)
	return nil
}

func readTextFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %q: %w", path, err)
	}
	return string(raw), nil
}

// printRecord writes a human-readable summary of one record to stdout.
func printRecord(rec greekeval.MetricsRecord) {
	fmt.Printf("WER:                  %6.2f%%  (%d sub, %d del, %d ins over %d words)\n",
		rec.WER, rec.WordOps.Substitutions, rec.WordOps.Deletions, rec.WordOps.Insertions, rec.ReferenceWords)
	fmt.Printf("CER:                  %6.2f%%  (%d reference characters)\n", rec.CER, rec.ReferenceChars)
	fmt.Printf("Word accuracy:        %6.2f%%\n", rec.WordAccuracy)
	fmt.Printf("Character accuracy:   %6.2f%%\n", rec.CharAccuracy)
	fmt.Printf("Greek char accuracy:  %6.2f%%\n", rec.GreekCharAccuracy)
	fmt.Printf("Diacritic accuracy:   %6.2f%%  (%d/%d correct, %d missed, %d extra)\n",
		rec.Diacritics.Accuracy, rec.Diacritics.CorrectDiacritics, rec.Diacritics.TotalDiacritics,
		rec.Diacritics.MissedDiacritics, rec.Diacritics.ExtraDiacritics)
	fmt.Printf("Similarity:           %6.3f\n", rec.Similarity)
	fmt.Printf("Orthography:          %s\n", rec.Orthography)
}
