// Command greekeval scores ASR hypotheses against Greek reference
// transcripts: WER, CER, edit-operation counts, diacritic accuracy, and
// orthography classification, one pair at a time or in bulk from a TSV.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hellasr/greekeval/internal/config"
)

const version = "0.3.1"

// CLI defines the command-line interface for greekeval.
var CLI struct {
	Config string `help:"Path to a YAML configuration file." type:"path"`

	Score   ScoreCmd   `cmd:"" help:"Score one reference/hypothesis pair."`
	Batch   BatchCmd   `cmd:"" help:"Score a TSV of pairs and write a JSON report."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

// VersionCmd prints the program version.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println("greekeval " + version)
	return nil
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("greekeval"),
		kong.Description("Greek ASR evaluation: WER, CER, and diacritic accuracy."),
		kong.UsageOnError(),
	)

	cfg := config.Default()
	if CLI.Config != "" {
		loaded, err := config.Load(CLI.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "greekeval: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	slog.SetDefault(newLogger(cfg.LogLevel))

	if err := kctx.Run(cfg); err != nil {
		slog.Error("run error", "err", err)
		os.Exit(1)
	}
}

// newLogger builds the default text logger at the configured level.
func newLogger(level config.LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level.Slog(),
	}))
}
