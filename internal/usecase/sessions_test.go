package usecase

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rail-reserve/railway-reservation-system/internal/domain"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/timeutil"
)

func TestSessionRegistry_CreateAndDo(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	reg := NewSessionRegistry(clock, 0)

	created := reg.Create()
	require.NotEmpty(t, created.ID)
	assert.Equal(t, clock.Now(), created.CreatedAt)
	assert.Equal(t, domain.StateNoSelection, created.State())

	err := reg.Do(created.ID, func(s *domain.Session) error {
		s.Query = &domain.SearchQuery{From: "NDLS", To: "BCT", Date: "2026-11-02", Passengers: 2}
		return nil
	})
	require.NoError(t, err)

	var pax int
	require.NoError(t, reg.Do(created.ID, func(s *domain.Session) error {
		pax = s.Passengers()
		return nil
	}))
	assert.Equal(t, 2, pax)
}

func TestSessionRegistry_UnknownSession(t *testing.T) {
	reg := NewSessionRegistry(nil, 0)

	err := reg.Do("missing", func(*domain.Session) error { return nil })

	assert.True(t, errors.Is(err, domain.ErrSessionNotFound))
}

func TestSessionRegistry_ReturnsCallbackError(t *testing.T) {
	reg := NewSessionRegistry(nil, 0)
	sess := reg.Create()

	err := reg.Do(sess.ID, func(*domain.Session) error { return domain.ErrNoSelection })

	assert.ErrorIs(t, err, domain.ErrNoSelection)
}

func TestSessionRegistry_EvictsIdleSessions(t *testing.T) {
	clock := timeutil.NewMockClock(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	reg := NewSessionRegistry(clock, 30*time.Minute)

	old := reg.Create()
	clock.Advance(20 * time.Minute)
	active := reg.Create()
	clock.Advance(15 * time.Minute)
	require.NoError(t, reg.Do(active.ID, func(*domain.Session) error { return nil }))

	reg.Create()

	assert.Equal(t, 2, reg.Len())
	assert.ErrorIs(t, reg.Do(old.ID, func(*domain.Session) error { return nil }), domain.ErrSessionNotFound)
	assert.NoError(t, reg.Do(active.ID, func(*domain.Session) error { return nil }))
}

func TestSessionRegistry_SerializesAccess(t *testing.T) {
	reg := NewSessionRegistry(nil, 0)
	sess := reg.Create()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = reg.Do(sess.ID, func(s *domain.Session) error {
				s.Booking.Seats = append(s.Booking.Seats, "A1")
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, reg.Do(sess.ID, func(s *domain.Session) error {
		assert.Len(t, s.Booking.Seats, 50)
		return nil
	}))
}
