package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rail-reserve/railway-reservation-system/internal/domain"
	"github.com/rail-reserve/railway-reservation-system/internal/infrastructure/timeutil"
)

// SessionRegistry owns the live booking sessions. Sessions are kept in memory
// only and each one is used under its own lock.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	clock    timeutil.Clock
	ttl      time.Duration
	newID    func() string
}

type sessionEntry struct {
	mu       sync.Mutex
	session  *domain.Session
	lastUsed time.Time
}

// NewSessionRegistry creates a registry. Sessions idle for longer than ttl are
// evicted when new sessions are created; a zero ttl keeps them forever.
func NewSessionRegistry(clock timeutil.Clock, ttl time.Duration) *SessionRegistry {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &SessionRegistry{
		sessions: make(map[string]*sessionEntry),
		clock:    clock,
		ttl:      ttl,
		newID:    func() string { return uuid.New().String() },
	}
}

// Create starts a new empty session and returns a copy of it.
func (r *SessionRegistry) Create() domain.Session {
	now := r.clock.Now()
	sess := domain.NewSession(r.newID(), now)

	r.mu.Lock()
	r.evictIdleLocked(now)
	r.sessions[sess.ID] = &sessionEntry{session: sess, lastUsed: now}
	r.mu.Unlock()

	return *sess
}

// Do runs fn on the session with the given id while holding its lock.
// It returns domain.ErrSessionNotFound for an unknown id, otherwise fn's error.
func (r *SessionRegistry) Do(id string, fn func(*domain.Session) error) error {
	r.mu.Lock()
	entry, ok := r.sessions[id]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.lastUsed = r.clock.Now()
	return fn(entry.session)
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// evictIdleLocked drops sessions idle past the ttl. Entries busy in Do are
// skipped. r.mu must be held.
func (r *SessionRegistry) evictIdleLocked(now time.Time) {
	if r.ttl <= 0 {
		return
	}
	for id, entry := range r.sessions {
		if !entry.mu.TryLock() {
			continue
		}
		idle := now.Sub(entry.lastUsed) > r.ttl
		entry.mu.Unlock()
		if idle {
			delete(r.sessions, id)
		}
	}
}
