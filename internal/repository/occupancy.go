package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rail-reserve/railway-reservation-system/internal/domain"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/logger"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/retry"
)

// OccupancyStore records sold seats per occupancy key. Seats are only ever
// added; each key's list keeps first-sale order without duplicates.
type OccupancyStore struct {
	mu       sync.RWMutex
	saveMu   sync.Mutex
	kv       domain.KeyValueStore
	retry    retry.Config
	log      *logger.Logger
	occupied map[domain.OccupancyKey][]string
}

// NewOccupancyStore loads the occupancy map from kv. Absent or corrupt data
// gives an empty map; only a failing read is an error.
func NewOccupancyStore(ctx context.Context, kv domain.KeyValueStore, cfg *Config) (*OccupancyStore, error) {
	c := cfg.withDefaults()
	s := &OccupancyStore{
		kv:       kv,
		retry:    *c.Retry,
		log:      c.Logger,
		occupied: make(map[domain.OccupancyKey][]string),
	}

	var raw map[string][]string
	ok, err := loadJSON(ctx, kv, OccupiedKey, &raw, s.log)
	if err != nil {
		return nil, err
	}
	if ok {
		for k, seats := range raw {
			s.occupied[domain.OccupancyKey(k)] = dedupe(nil, seats)
		}
	}

	s.log.Info().Int("keys", len(s.occupied)).Msg("occupancy loaded")
	return s, nil
}

// Occupied returns a copy of the sold seats for key.
func (s *OccupancyStore) Occupied(key domain.OccupancyKey) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.occupied[key]...)
}

// Claim marks seats as sold under key and persists the whole map.
// If any seat is already sold nothing changes and the error wraps
// domain.ErrSeatOccupied. A persistence failure wraps domain.ErrStorage;
// the claim stays applied in memory. Readers are not blocked while the
// snapshot is written; saves are serialized so a newer snapshot is never
// overwritten by an older one.
func (s *OccupancyStore) Claim(ctx context.Context, key domain.OccupancyKey, seats []string) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	data, err := s.apply(key, seats)
	if err != nil {
		return err
	}
	return save(ctx, s.kv, OccupiedKey, data, s.retry)
}

// apply records seats under the write lock and returns the encoded map.
func (s *OccupancyStore) apply(key domain.OccupancyKey, seats []string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.occupied[key]
	var taken []string
	for _, id := range seats {
		if contains(current, id) {
			taken = append(taken, id)
		}
	}
	if len(taken) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrSeatOccupied, strings.Join(taken, ", "))
	}

	s.occupied[key] = dedupe(current, seats)
	return encodeJSON(OccupiedKey, s.occupied)
}

// dedupe appends the seats of add missing from base, preserving order.
func dedupe(base, add []string) []string {
	out := append([]string{}, base...)
	for _, id := range add {
		if !contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
