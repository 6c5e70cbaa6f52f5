// Package debounce delays keyed work until callers stop asking for it.
package debounce

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded is returned to a caller whose pending call was replaced by a newer one with the same key.
var ErrSuperseded = errors.New("debounce: superseded by a newer call")

type Debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	pending map[string]chan struct{}
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:   delay,
		pending: make(map[string]chan struct{}),
	}
}

// Do waits for the debounce delay and then runs fn. A newer Do with the same key
// cancels the wait with ErrSuperseded; cancelling ctx returns ctx.Err(). Once fn
// has started it is not interrupted by later calls.
func (d *Debouncer) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	superseded := make(chan struct{})

	d.mu.Lock()
	if previous, ok := d.pending[key]; ok {
		close(previous)
	}
	d.pending[key] = superseded
	d.mu.Unlock()

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-superseded:
		return ErrSuperseded
	case <-ctx.Done():
		d.release(key, superseded)
		return ctx.Err()
	case <-timer.C:
	}

	d.release(key, superseded)
	return fn(ctx)
}

// Pending reports how many keys are waiting.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

func (d *Debouncer) release(key string, mine chan struct{}) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending[key] == mine {
		delete(d.pending, key)
	}
}
