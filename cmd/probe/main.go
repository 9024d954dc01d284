package main

import (
	"context"
	"os"

	"github.com/okian/sentia/internal/probe"
	"github.com/okian/sentia/pkg/logger"
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	cfg, err := probe.ParseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if cfg.Verbose {
		_ = logger.SetLevelString("debug")
	}

	if err := probe.Run(context.Background(), cfg); err != nil {
		logger.Get().Error(context.Background(), "probe failed", logger.Error(err))
		os.Exit(1)
	}
}
