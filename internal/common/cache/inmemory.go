package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// InMemoryClient is a process local Client for single instance runs and tests. Values are kept
// JSON encoded like in redis, so callers never share a slice with the cache.
type InMemoryClient[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	raw       []byte
	expiresAt time.Time
}

func (e entry) expiredAt(t time.Time) bool {
	return !e.expiresAt.IsZero() && !t.Before(e.expiresAt)
}

func NewInMemoryClient[T any]() *InMemoryClient[T] {
	return &InMemoryClient[T]{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get drops an expired entry on read instead of sweeping in the background.
func (m *InMemoryClient[T]) Get(_ context.Context, key string) (result T, err error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return result, ErrNotExists
	}
	if e.expiredAt(m.now()) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return result, ErrNotExists
	}

	err = json.Unmarshal(e.raw, &result)
	return result, err
}

// Set stores object; a zero ttl keeps it until deleted.
func (m *InMemoryClient[T]) Set(_ context.Context, key string, object T, ttl time.Duration) error {
	raw, err := json.Marshal(object)
	if err != nil {
		return err
	}

	e := entry{raw: raw}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()

	return nil
}

func (m *InMemoryClient[T]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()

	return nil
}

func (m *InMemoryClient[T]) GetOrSet(ctx context.Context, opts GetOrSetOpts[T]) (T, error) {
	return getOrSet[T](ctx, m, opts)
}
