// Package web serves the browser facing views of the car registry.
package web

import (
	"context"
	"net/http"

	"github.com/okian/fabcar-web/internal/config"
	"github.com/okian/fabcar-web/internal/domain/model"
	"github.com/okian/fabcar-web/internal/domain/types"
	"github.com/okian/fabcar-web/pkg/logger"
	"github.com/okian/fabcar-web/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies required by the view handlers.
type Dependencies interface {
	QueryAllCars(ctx context.Context) ([]model.Car, error)
	LookupCar(ctx context.Context, carNumber string) types.Lookup
	SubmitCar(ctx context.Context, car model.Car) types.Submission
	ChangeCarOwner(ctx context.Context, carNumber, newOwner string) (model.Car, error)
}

// Server wires HTTP routes for the views.
type Server struct {
	cfg    config.Config
	deps   Dependencies
	views  *views
	logger logger.Logger

	healthHandler *HealthHandler
	carsHandler   *CarsHandler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for access logs and failures.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a view server. cfg is copied and never modified.
func NewServer(cfg config.Config, deps Dependencies, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		deps:   deps,
		views:  mustParseViews(),
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.healthHandler = NewHealthHandler()
	s.carsHandler = NewCarsHandler(deps, s.views, s.logger)
	return s
}

// Register attaches all view and operational routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.Handle("/", s.chain(s.carsHandler.HandleIndex, "index"))
	mux.Handle("/queryAllCars", s.chain(s.carsHandler.HandleQueryAllCars, "queryAllCars"))
	mux.Handle("/queryCar", s.chain(s.carsHandler.HandleQueryCar, "queryCar"))
	mux.Handle("/createCar", s.chain(s.carsHandler.HandleCreateCar, "createCar"))
	mux.Handle("/changeCarOwner", s.chain(s.carsHandler.HandleChangeCarOwner, "changeCarOwner"))

	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	if s.cfg.MetricsEnabled {
		mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	}
}

// chain wraps a view handler with request id, access log, metrics and
// panic recovery, outermost first.
func (s *Server) chain(h http.HandlerFunc, endpoint string) http.Handler {
	return RequestIDMiddleware(
		AccessLogMiddleware(s.logger,
			MetricsMiddleware(
				RecoverMiddleware(s.logger, h),
				endpoint,
			),
		),
	)
}
