package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cinenyc-booking/internal/booking"
)

// SessionRepository tracks live booking flows by session ID. Sessions are
// in-memory only; bookings are not persisted.
type SessionRepository interface {
	Create(flow *booking.Flow) uuid.UUID
	Find(id uuid.UUID) (*booking.Flow, bool)
	Delete(id uuid.UUID)

	// PruneIdle drops sessions untouched for longer than ttl and returns how
	// many were removed.
	PruneIdle(ttl time.Duration) int
}

type sessionEntry struct {
	flow     *booking.Flow
	lastSeen time.Time
}

type sessionRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*sessionEntry
	log     *zap.Logger
}

func NewSessionRepository(log *zap.Logger) SessionRepository {
	return &sessionRepository{
		entries: make(map[uuid.UUID]*sessionEntry),
		log:     log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(flow *booking.Flow) uuid.UUID {
	id := uuid.New()

	r.mu.Lock()
	r.entries[id] = &sessionEntry{flow: flow, lastSeen: time.Now()}
	r.mu.Unlock()

	r.log.Info("Session created", zap.String("session_id", id.String()))
	return id
}

func (r *sessionRepository) Find(id uuid.UUID) (*booking.Flow, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	entry.lastSeen = time.Now()
	return entry.flow, true
}

func (r *sessionRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	delete(r.entries, id)
	r.mu.Unlock()
}

func (r *sessionRepository) PruneIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, entry := range r.entries {
		if entry.lastSeen.Before(cutoff) {
			// Revoke any in-flight payment before dropping the flow.
			entry.flow.Reset()
			delete(r.entries, id)
			removed++
		}
	}

	if removed > 0 {
		r.log.Info("Idle sessions pruned", zap.Int("count", removed))
	}
	return removed
}
