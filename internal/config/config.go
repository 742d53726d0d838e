// Package config provides the configuration schema and loader for the
// greekeval scoring CLI.
package config

import (
	"log/slog"

	"github.com/hellasr/greekeval/pkg/greekeval"
	"github.com/hellasr/greekeval/pkg/textnorm"
)

// LogLevel controls log verbosity for the scorer.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Slog maps l onto the corresponding slog level. Unrecognised or empty
// levels map to info.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Config is the root configuration structure for the greekeval CLI.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`

	// RateCap is the ceiling applied to WER and CER percentages.
	RateCap float64 `yaml:"rate_cap"`

	// Workers is the number of concurrent scoring workers for batch runs.
	// Zero means one worker per CPU.
	Workers int `yaml:"workers"`

	// MetricsAddr, when set, is the TCP address on which batch runs expose
	// a Prometheus /metrics endpoint (e.g., ":9090").
	MetricsAddr string `yaml:"metrics_addr"`

	// Normalization overrides individual text-normalization flags. Flags
	// omitted from the YAML keep the library default (enabled).
	Normalization Normalization `yaml:"normalization"`
}

// Normalization mirrors [textnorm.Config] with optional fields so that a
// config file can override single flags without restating the rest.
type Normalization struct {
	Lowercase           *bool `yaml:"lowercase"`
	RemovePunctuation   *bool `yaml:"remove_punctuation"`
	NormalizeDiacritics *bool `yaml:"normalize_diacritics"`
	NormalizeNumbers    *bool `yaml:"normalize_numbers"`
	NormalizeWhitespace *bool `yaml:"normalize_whitespace"`
	GreekSpecific       *bool `yaml:"greek_specific"`
}

// Textnorm resolves the normalization section against the library defaults.
func (n Normalization) Textnorm() textnorm.Config {
	cfg := textnorm.DefaultConfig()
	override(&cfg.Lowercase, n.Lowercase)
	override(&cfg.RemovePunctuation, n.RemovePunctuation)
	override(&cfg.NormalizeDiacritics, n.NormalizeDiacritics)
	override(&cfg.NormalizeNumbers, n.NormalizeNumbers)
	override(&cfg.NormalizeWhitespace, n.NormalizeWhitespace)
	override(&cfg.GreekSpecific, n.GreekSpecific)
	return cfg
}

func override(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		LogLevel: LogInfo,
		RateCap:  greekeval.DefaultRateCap,
	}
}
