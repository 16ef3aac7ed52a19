package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/rail-reserve/railway-reservation-system/internal/domain"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/logger"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/retry"
)

// TicketStore holds issued tickets, most recent first.
type TicketStore struct {
	mu      sync.RWMutex
	saveMu  sync.Mutex
	kv      domain.KeyValueStore
	retry   retry.Config
	log     *logger.Logger
	tickets []domain.Ticket
}

// NewTicketStore loads the ticket list from kv. Absent or corrupt data gives
// an empty list; only a failing read is an error.
func NewTicketStore(ctx context.Context, kv domain.KeyValueStore, cfg *Config) (*TicketStore, error) {
	c := cfg.withDefaults()
	s := &TicketStore{
		kv:    kv,
		retry: *c.Retry,
		log:   c.Logger,
	}

	var tickets []domain.Ticket
	ok, err := loadJSON(ctx, kv, TicketsKey, &tickets, s.log)
	if err != nil {
		return nil, err
	}
	if ok {
		s.tickets = tickets
	}

	s.log.Info().Int("tickets", len(s.tickets)).Msg("tickets loaded")
	return s, nil
}

// Add prepends t and persists the whole list. A persistence failure wraps
// domain.ErrStorage; the ticket stays recorded in memory.
func (s *TicketStore) Add(ctx context.Context, t domain.Ticket) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	t.Seats = append([]string{}, t.Seats...)
	s.tickets = append([]domain.Ticket{t}, s.tickets...)
	data, err := encodeJSON(TicketsKey, s.tickets)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return save(ctx, s.kv, TicketsKey, data, s.retry)
}

// List returns a copy of the tickets, most recent first.
func (s *TicketStore) List() []domain.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// Get returns the most recent ticket with the given PNR.
func (s *TicketStore) Get(pnr string) (domain.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tickets {
		if t.PNR == pnr {
			return t, nil
		}
	}
	return domain.Ticket{}, fmt.Errorf("%w: %s", domain.ErrTicketNotFound, pnr)
}

// Len returns the number of tickets.
func (s *TicketStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tickets)
}
