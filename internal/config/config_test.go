package config_test

import (
	"strings"
	"testing"

	"github.com/hellasr/greekeval/internal/config"
	"github.com/hellasr/greekeval/pkg/textnorm"
)

func TestLoadFromReader(t *testing.T) {
	t.Parallel()

	yml := `
log_level: debug
rate_cap: 100
workers: 8
metrics_addr: ":9090"
normalization:
  normalize_diacritics: false
`
	cfg, err := config.LoadFromReader(strings.NewReader(yml))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}

	if cfg.LogLevel != config.LogDebug {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.RateCap != 100 {
		t.Errorf("RateCap = %v, want 100", cfg.RateCap)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.MetricsAddr != ":9090" {
		t.Errorf("MetricsAddr = %q, want :9090", cfg.MetricsAddr)
	}

	norm := cfg.Normalization.Textnorm()
	if norm.NormalizeDiacritics {
		t.Error("NormalizeDiacritics = true, want overridden to false")
	}
	if !norm.Lowercase || !norm.RemovePunctuation || !norm.GreekSpecific {
		t.Errorf("unset normalization flags lost their defaults: %+v", norm)
	}
}

func TestLoadFromReaderEmpty(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader(empty): %v", err)
	}
	if cfg.LogLevel != config.LogInfo {
		t.Errorf("LogLevel = %q, want default info", cfg.LogLevel)
	}
	if got := cfg.Normalization.Textnorm(); got != textnorm.DefaultConfig() {
		t.Errorf("Textnorm() = %+v, want library defaults", got)
	}
}

func TestLoadFromReaderRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFromReader(strings.NewReader("rate_limit: 5\n"))
	if err == nil {
		t.Fatal("LoadFromReader accepted an unknown field, want error")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"defaults are valid", func(*config.Config) {}, false},
		{"bad log level", func(c *config.Config) { c.LogLevel = "loud" }, true},
		{"zero rate cap", func(c *config.Config) { c.RateCap = 0 }, true},
		{"rate cap below 100", func(c *config.Config) { c.RateCap = 50 }, true},
		{"negative workers", func(c *config.Config) { c.Workers = -1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := config.Default()
			tc.mutate(cfg)
			err := config.Validate(cfg)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
