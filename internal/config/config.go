// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults, Load(ctx) to layer
//   file and environment sources on top.
// - External errors must be wrapped via this package's sentinel kinds.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// HistorySize caps the in-memory assessment history. Zero keeps the
	// history unbounded.
	HistorySize int `koanf:"history_size"`

	// DedupeSize bounds the fingerprint deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// MaxHistoryLimit caps GET /history?limit.
	MaxHistoryLimit int `koanf:"max_history_limit"`

	// MaxCompareBatch caps the number of reports accepted by POST /compare.
	MaxCompareBatch int `koanf:"max_compare_batch"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9090",
		HistorySize:     0, // unbounded, reference behavior
		DedupeSize:      50_000,
		MaxHistoryLimit: 500,
		MaxCompareBatch: 1_000,
	}
}
