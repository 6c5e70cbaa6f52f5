// Package generation tags requests so that late responses for a view can be recognised and dropped.
package generation

import (
	"strings"
	"sync"
)

type Tracker struct {
	mu      sync.Mutex
	current map[string]uint64
}

func NewTracker() *Tracker {
	return &Tracker{current: make(map[string]uint64)}
}

// Next starts a new generation for key and returns its token.
func (t *Tracker) Next(key string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current[key]++
	return t.current[key]
}

// IsCurrent reports whether token is still the latest generation for key.
func (t *Tracker) IsCurrent(key string, token uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current[key] == token
}

// Forget drops the state for key, e.g. when its session ends.
func (t *Tracker) Forget(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.current, key)
}

// ForgetPrefix drops every key starting with prefix.
func (t *Tracker) ForgetPrefix(prefix string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for key := range t.current {
		if strings.HasPrefix(key, prefix) {
			delete(t.current, key)
		}
	}
}
