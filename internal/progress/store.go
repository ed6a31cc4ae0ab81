package progress

import (
	"context"
	"sync"
	"time"
)

// Store persists the append-only attempt log.
type Store interface {
	// LogAttempt appends one attempt to the user's history.
	LogAttempt(ctx context.Context, a Attempt) error
	// Attempts returns a user's full history in insertion order.
	Attempts(ctx context.Context, userID string) ([]Attempt, error)
}

// MemoryStore is an in-memory Store. Appends are serialized behind the
// mutex, so concurrent writers for the same user cannot lose events.
type MemoryStore struct {
	mu       sync.RWMutex
	attempts map[string][]Attempt
}

// NewMemoryStore creates a new in-memory attempt store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		attempts: make(map[string][]Attempt),
	}
}

func (s *MemoryStore) LogAttempt(_ context.Context, a Attempt) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	s.mu.Lock()
	s.attempts[a.UserID] = append(s.attempts[a.UserID], a)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Attempts(_ context.Context, userID string) ([]Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Attempt{}, s.attempts[userID]...), nil
}
