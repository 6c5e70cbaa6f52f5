// Package redistest provides an in-memory RedisRepository for tests.
package redistest

import (
	"context"
	"posyandu-console/internal/app/contracts"
	"strconv"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// MemoryRepository mimics the JSON-encoding behaviour of the real repository.
type MemoryRepository struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time

	// Err, when set, is returned by every operation.
	Err error
}

var _ contracts.RedisRepository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]entry), now: time.Now}
}

// SetClock replaces the clock used for expiry.
func (m *MemoryRepository) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *MemoryRepository) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}

func (m *MemoryRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	return m.store(key, value, exp)
}

func (m *MemoryRepository) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	e, ok := m.live(key)
	if !ok {
		return "", nil
	}
	return e.value, nil
}

func (m *MemoryRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	if _, ok := m.live(key); ok {
		return false, nil
	}
	return true, m.store(key, value, exp)
}

func (m *MemoryRepository) IncrementWithTTL(ctx context.Context, key string, exp time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	e, ok := m.live(key)
	count := 1
	if ok {
		if err := json.Unmarshal([]byte(e.value), &count); err != nil {
			return 0, err
		}
		count++
		e.value = strconv.Itoa(count)
		m.entries[key] = e
		return count, nil
	}
	return count, m.store(key, count, exp)
}

func (m *MemoryRepository) Ping(ctx context.Context) error {
	return m.Err
}

// Has reports whether a live key exists.
func (m *MemoryRepository) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.live(key)
	return ok
}

func (m *MemoryRepository) store(key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	e := entry{value: string(raw)}
	if exp > 0 {
		e.expiresAt = m.now().Add(exp)
	}
	m.entries[key] = e
	return nil
}

func (m *MemoryRepository) live(key string) (entry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return entry{}, false
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		delete(m.entries, key)
		return entry{}, false
	}
	return e, true
}
