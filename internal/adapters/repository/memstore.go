package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/okian/fabcar-web/internal/domain/model"
)

// MemoryStore is an in-memory Store guarded by a RWMutex.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]model.CarRecord
}

// NewMemoryStore creates an empty store, optionally seeded.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{records: make(map[string]model.CarRecord)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key string) (model.CarRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[key]
	if !ok {
		return model.CarRecord{}, ErrNotFound
	}
	return rec, nil
}

// Create implements Store.
func (s *MemoryStore) Create(_ context.Context, key string, rec model.CarRecord) error {
	if key == "" {
		return ErrInvalidKey
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; ok {
		return ErrExists
	}
	s.records[key] = rec
	return nil
}

// Put implements Store.
func (s *MemoryStore) Put(_ context.Context, key string, rec model.CarRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[key]; !ok {
		return ErrNotFound
	}
	s.records[key] = rec
	return nil
}

// Range implements Store.
func (s *MemoryStore) Range(_ context.Context) ([]model.CarResponse, error) {
	s.mu.RLock()
	out := make([]model.CarResponse, 0, len(s.records))
	for k, r := range s.records {
		out = append(out, model.CarResponse{Key: k, Record: r})
	}
	s.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Count implements Store.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
