// Package mock provides test doubles for the reservation system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, recorded writes).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/rail-reserve/railway-reservation-system/internal/adapter/storage/memory"
	"github.com/rail-reserve/railway-reservation-system/internal/domain"
)

// Store is a configurable domain.KeyValueStore backed by memory.Store.
// It can fail loads or saves, delay saves, and counts calls.
type Store struct {
	inner *memory.Store

	mu        sync.Mutex
	loadErr   error
	saveErr   error
	failSaves int
	delay     time.Duration
	loads     int
	saves     map[string]int
}

// NewStore creates a store that behaves like memory.Store until configured.
func NewStore() *Store {
	return &Store{inner: memory.New(), saves: make(map[string]int)}
}

// WithLoadError makes every Load fail with err.
func (s *Store) WithLoadError(err error) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
	return s
}

// WithSaveError makes every Save fail with err.
func (s *Store) WithSaveError(err error) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
	s.failSaves = -1
	return s
}

// FailNextSaves makes the next n saves fail with err, then succeed.
func (s *Store) FailNextSaves(n int, err error) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
	s.failSaves = n
	return s
}

// WithDelay makes Save wait d before writing, honouring ctx.
func (s *Store) WithDelay(d time.Duration) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
	return s
}

// Seed writes value under key without counting a save.
func (s *Store) Seed(key string, value []byte) *Store {
	_ = s.inner.Save(context.Background(), key, value)
	return s
}

// Load implements domain.KeyValueStore.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	s.loads++
	err := s.loadErr
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return s.inner.Load(ctx, key)
}

// Save implements domain.KeyValueStore.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.saves[key]++
	delay := s.delay
	var err error
	if s.failSaves != 0 {
		err = s.saveErr
		if s.failSaves > 0 {
			s.failSaves--
		}
	}
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	if err != nil {
		return err
	}
	return s.inner.Save(ctx, key, value)
}

// Stored returns the current value under key, if any.
func (s *Store) Stored(key string) ([]byte, bool) {
	v, err := s.inner.Load(context.Background(), key)
	return v, err == nil
}

// LoadCount returns the number of Load calls.
func (s *Store) LoadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

// SaveCount returns the number of Save calls for key, failed ones included.
func (s *Store) SaveCount(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves[key]
}

// Ensure Store implements domain.KeyValueStore at compile time.
var _ domain.KeyValueStore = (*Store)(nil)
