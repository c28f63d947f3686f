package session

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type memoryEntry struct {
	data      *Data
	expiresAt time.Time
}

// MemoryStore is an in-process session store with TTL expiry. It is the
// default when no Redis address is configured. Expired entries are swept by
// a background goroutine; Close stops the sweeper.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	logger  zerolog.Logger
	done    chan struct{}
	once    sync.Once

	// now is replaceable in tests.
	now func() time.Time
}

// NewMemoryStore creates an in-memory session store whose entries expire
// after ttl of inactivity.
func NewMemoryStore(ttl time.Duration, logger zerolog.Logger) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		logger:  logger.With().Str("component", "session-store").Logger(),
		done:    make(chan struct{}),
		now:     time.Now,
	}

	go s.sweep()

	return s
}

// Get returns a copy of the session data, or (nil, nil) if the session is
// unknown or expired.
func (s *MemoryStore) Get(_ context.Context, sessionID string) (*Data, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok || s.now().After(entry.expiresAt) {
		return nil, nil
	}

	return entry.data.Clone(), nil
}

// Save stores a copy of the session data and resets its expiry.
func (s *MemoryStore) Save(_ context.Context, sessionID string, data *Data) error {
	s.mu.Lock()
	s.entries[sessionID] = memoryEntry{
		data:      data.Clone(),
		expiresAt: s.now().Add(s.ttl),
	}
	s.mu.Unlock()
	return nil
}

// Delete removes the session data.
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.entries, sessionID)
	s.mu.Unlock()
	return nil
}

// Close stops the background sweeper.
func (s *MemoryStore) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.removeExpired()
		}
	}
}

func (s *MemoryStore) removeExpired() {
	now := s.now()

	s.mu.Lock()
	removed := 0
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("swept expired sessions")
	}
}
