// Command ledger-stub serves an in-memory ledger API for local development.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okian/fabcar-web/internal/adapters/ledgerstub"
	"github.com/okian/fabcar-web/internal/adapters/repository"
	"github.com/okian/fabcar-web/pkg/logger"
)

const (
	defaultAddr       = ":8000"
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	var (
		addr   = flag.String("addr", envOr("LEDGER_STUB_ADDR", defaultAddr), "Listen address")
		noSeed = flag.Bool("empty", false, "Start without the demo cars")
		level  = flag.String("log-level", "info", "Log level: debug, info, warn, error")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Named("ledger-stub")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := logger.SetLevelString(*level); err != nil {
		log.Warn(ctx, "invalid log level; using info", logger.Error(err))
	}

	var opts []repository.Option
	if !*noSeed {
		opts = append(opts, repository.WithSeed(repository.DemoCars()))
	}
	store := repository.NewMemoryStore(opts...)

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              *addr,
		Handler:           ledgerstub.NewRouter(store, log),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting ledger stub",
			logger.String("addr", *addr),
			logger.Int("cars", store.Count(ctx)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "ledger stub failed", logger.Error(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "shutdown failed", logger.Error(err))
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
