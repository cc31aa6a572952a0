package smoke

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/okian/fabcar-web/internal/domain/model"
	"github.com/okian/fabcar-web/pkg/logger"
)

// absentCarNumber is never created by a run.
const absentCarNumber = "SMOKE-ABSENT"

// Run executes a complete smoke run and returns its statistics.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "starting fabcar smoke run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("cars", cfg.NumCars),
		logger.Int("workers", cfg.Workers),
		logger.String("timeout", cfg.Timeout.String()),
	)

	b := newBrowser(cfg.BaseURL, cfg.Timeout)

	// Step 1: Check health
	if err := checkHealth(ctx, b); err != nil {
		return stats, err
	}

	// Step 2: Count the cars already listed
	before, err := listCars(ctx, b)
	if err != nil {
		return stats, err
	}

	// Step 3: Create cars concurrently
	cars := generateCars(cfg.NumCars)
	stats.CarsGenerated = len(cars)
	if err := submitCars(ctx, cfg, b, cars, stats); err != nil {
		return stats, fmt.Errorf("car submission failed: %w", err)
	}

	// Step 4: Look every car up
	if err := verifyLookups(ctx, b, cars, stats); err != nil {
		return stats, err
	}

	// Step 5: An unknown car renders an empty list
	if err := verifyAbsent(ctx, b); err != nil {
		return stats, err
	}
	stats.AbsentVerified = true

	// Step 6: Change owners
	if err := verifyOwnerChanges(ctx, b, cars, stats); err != nil {
		return stats, err
	}

	// Step 7: The list grew by the created cars
	after, err := listCars(ctx, b)
	if err != nil {
		return stats, err
	}
	stats.ListedCars = len(after)
	if len(after) != len(before)+len(cars) {
		return stats, fmt.Errorf("%w: listed %d cars, want %d", ErrMismatch, len(after), len(before)+len(cars))
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	log.Info(ctx, "smoke run completed",
		logger.Int("verified", stats.CarsVerified),
		logger.Int("ownersChanged", stats.OwnersChanged),
		logger.Int("listed", stats.ListedCars),
		logger.String("duration", stats.Duration.String()),
	)
	return stats, nil
}

// checkHealth verifies the front end is running.
func checkHealth(ctx context.Context, b *browser) error {
	p, err := b.get(ctx, "/healthz")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	if p.status != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, p.status)
	}
	return nil
}

func listCars(ctx context.Context, b *browser) ([]model.Car, error) {
	p, err := b.get(ctx, "/queryAllCars")
	if err != nil {
		return nil, err
	}
	if p.status != http.StatusOK {
		return nil, fmt.Errorf("%w: queryAllCars answered %d", ErrUnexpectedView, p.status)
	}
	return parseCars(p.body), nil
}

func lookup(ctx context.Context, b *browser, carNumber string) ([]model.Car, error) {
	p, err := b.get(ctx, "/queryCar?carnumber="+url.QueryEscape(carNumber))
	if err != nil {
		return nil, err
	}
	if p.status != http.StatusOK {
		return nil, fmt.Errorf("%w: queryCar answered %d", ErrUnexpectedView, p.status)
	}
	return parseCars(p.body), nil
}

func verifyLookups(ctx context.Context, b *browser, cars []model.Car, stats *Stats) error {
	for _, want := range cars {
		got, err := lookup(ctx, b, want.CarNumber)
		if err != nil {
			return err
		}
		if len(got) != 1 {
			stats.CarsMissing++
			continue
		}
		if got[0] != want {
			return fmt.Errorf("%w: lookup %s returned %+v", ErrMismatch, want.CarNumber, got[0])
		}
		stats.CarsVerified++
	}
	if stats.CarsMissing > 0 {
		return fmt.Errorf("%w: %d created cars not found", ErrMismatch, stats.CarsMissing)
	}
	return nil
}

func verifyAbsent(ctx context.Context, b *browser) error {
	got, err := lookup(ctx, b, absentCarNumber)
	if err != nil {
		return err
	}
	if len(got) != 0 {
		return fmt.Errorf("%w: unknown car rendered %d rows", ErrUnexpectedView, len(got))
	}
	return nil
}

// verifyOwnerChanges transfers every other car and checks that only the
// owner changed.
func verifyOwnerChanges(ctx context.Context, b *browser, cars []model.Car, stats *Stats) error {
	for i := 0; i < len(cars); i += 2 {
		want := cars[i]
		want.Owner = "Smoke Owner " + want.CarNumber[len(want.CarNumber)-4:]

		p, err := b.postForm(ctx, "/changeCarOwner", url.Values{
			"carnumber": {want.CarNumber},
			"newowner":  {want.Owner},
		})
		if err != nil {
			return err
		}
		if p.status != http.StatusOK {
			stats.OwnersFailed++
			return fmt.Errorf("%w: changeCarOwner %s answered %d", ErrUnexpectedView, want.CarNumber, p.status)
		}
		got := parseCars(p.body)
		if len(got) != 1 || got[0] != want {
			stats.OwnersFailed++
			return fmt.Errorf("%w: changeCarOwner %s rendered %+v", ErrMismatch, want.CarNumber, got)
		}
		stats.OwnersChanged++
	}
	return nil
}
