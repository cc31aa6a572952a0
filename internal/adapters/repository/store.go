// Package repository holds the world state behind the fake ledger: car
// records keyed by car number.
package repository

import (
	"context"

	"github.com/okian/fabcar-web/internal/domain/model"
)

// Store provides read/write access to ledger state.
type Store interface {
	// Get returns the record stored under key.
	// Returns ErrNotFound if the key is unknown.
	Get(ctx context.Context, key string) (model.CarRecord, error)

	// Create stores a new record. Returns ErrExists if key is taken.
	Create(ctx context.Context, key string, rec model.CarRecord) error

	// Put overwrites an existing record. Returns ErrNotFound if key is unknown.
	Put(ctx context.Context, key string, rec model.CarRecord) error

	// Range returns every record ordered by key ascending, like a ledger
	// range query over the whole key space.
	Range(ctx context.Context) ([]model.CarResponse, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) int
}
