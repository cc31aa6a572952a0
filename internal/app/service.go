// Package service provides the car registry service that implements the
// dependencies required by the web views.
package service

import (
	"context"

	"github.com/okian/fabcar-web/internal/domain/model"
	"github.com/okian/fabcar-web/internal/domain/types"
	"github.com/okian/fabcar-web/pkg/logger"
	"github.com/okian/fabcar-web/pkg/metrics"
)

// Ledger is the subset of the ledger client the service calls.
type Ledger interface {
	QueryAllCars(ctx context.Context) ([]model.Car, error)
	QueryCar(ctx context.Context, carNumber string) (model.Car, error)
	CreateCar(ctx context.Context, car model.Car) error
	ChangeCarOwner(ctx context.Context, carNumber, newOwner string) (model.Car, error)
}

// Service maps view operations onto ledger calls. It holds no per-request
// state.
type Service struct {
	ledger Ledger
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service on top of ledger.
func New(ledger Ledger, opts ...Option) *Service {
	s := &Service{
		ledger: ledger,
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// QueryAllCars returns every car. Failures are returned to the caller.
func (s *Service) QueryAllCars(ctx context.Context) ([]model.Car, error) {
	return s.ledger.QueryAllCars(ctx)
}

// LookupCar returns the car stored under carNumber, or an absent lookup when
// the ledger call fails for any reason.
func (s *Service) LookupCar(ctx context.Context, carNumber string) types.Lookup {
	car, err := s.ledger.QueryCar(ctx, carNumber)
	if err != nil {
		metrics.RecordLookupAbsent()
		s.logger.Info(ctx, "car lookup absent",
			logger.String("carnumber", carNumber),
			logger.Error(err),
		)
		return types.Absent(err)
	}
	return types.Found(car)
}

// SubmitCar creates car on the ledger and reports the outcome without failing.
func (s *Service) SubmitCar(ctx context.Context, car model.Car) types.Submission {
	if err := s.ledger.CreateCar(ctx, car); err != nil {
		metrics.RecordSubmissionRejected()
		s.logger.Warn(ctx, "car submission rejected",
			logger.String("carnumber", car.CarNumber),
			logger.Error(err),
		)
		return types.Rejected(car.CarNumber, err)
	}
	s.logger.Info(ctx, "car submitted", logger.String("carnumber", car.CarNumber))
	return types.Accepted(car.CarNumber)
}

// ChangeCarOwner transfers a car and returns it as updated. Failures are
// returned to the caller.
func (s *Service) ChangeCarOwner(ctx context.Context, carNumber, newOwner string) (model.Car, error) {
	car, err := s.ledger.ChangeCarOwner(ctx, carNumber, newOwner)
	if err != nil {
		return model.Car{}, err
	}
	s.logger.Info(ctx, "car owner changed",
		logger.String("carnumber", carNumber),
		logger.String("owner", car.Owner),
	)
	return car, nil
}
