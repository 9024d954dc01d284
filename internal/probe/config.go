// Package probe submits randomized assessments to a running service and
// verifies the ranking the service computes over them.
package probe

import (
	"flag"
	"time"
)

// Default probe settings.
const (
	defaultURL      = "http://localhost:9090"
	defaultSubjects = 25
	defaultTimeout  = 30 * time.Second
)

// Config holds probe run settings.
type Config struct {
	BaseURL  string
	Subjects int
	Timeout  time.Duration
	Seed     int64
	Verbose  bool
}

// ParseFlags builds a Config from command line flags.
func ParseFlags(args []string) (*Config, error) {
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	cfg := &Config{}
	fs.StringVar(&cfg.BaseURL, "url", defaultURL, "Base URL of the service")
	fs.IntVar(&cfg.Subjects, "subjects", defaultSubjects, "Number of subjects to assess")
	fs.DurationVar(&cfg.Timeout, "timeout", defaultTimeout, "HTTP request timeout")
	fs.Int64Var(&cfg.Seed, "seed", time.Now().UnixNano(), "Random seed for score generation")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}
