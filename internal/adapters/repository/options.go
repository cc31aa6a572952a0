package repository

import "github.com/okian/fabcar-web/internal/domain/model"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithSeed preloads cars, keyed by their car numbers. Later entries with the
// same number replace earlier ones.
func WithSeed(cars []model.Car) Option {
	return func(s *MemoryStore) {
		for _, c := range cars {
			if c.CarNumber == "" {
				continue
			}
			s.records[c.CarNumber] = c.Record()
		}
	}
}
