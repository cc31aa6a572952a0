package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/fabcar-web/internal/smoke"
	"github.com/okian/fabcar-web/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumCars     = 20
	defaultWorkers     = 4
	defaultTimeout     = 10 * time.Second
	defaultRunDeadline = 5 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8080", "Base URL of the front end")
		numCars = flag.Int("cars", defaultNumCars, "Number of cars to create")
		workers = flag.Int("workers", defaultWorkers, "Number of concurrent workers")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose = flag.Bool("verbose", false, "Log every created car")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smoke.ShowHelp()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunDeadline)
	defer cancel()

	cfg := &smoke.Config{
		BaseURL: *baseURL,
		NumCars: *numCars,
		Workers: *workers,
		Timeout: *timeout,
		Verbose: *verbose,
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	if _, err := smoke.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "smoke run failed", logger.Error(err))
		_ = logger.Sync()
		cancel()
		os.Exit(1) //nolint:gocritic // cancel called above
	}
	_ = logger.Sync()
}
