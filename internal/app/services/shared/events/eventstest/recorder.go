// Package eventstest provides an in-memory event sink for tests.
package eventstest

import (
	"context"
	"posyandu-console/internal/app/models"
	"sync"
)

// Recorder is both a publisher and a handler. It keeps every event it sees.
type Recorder struct {
	mu     sync.Mutex
	events []models.ConsoleEvent
	Err    error
}

func (r *Recorder) Publish(ctx context.Context, event models.ConsoleEvent) error {
	if r.Err != nil {
		return r.Err
	}
	r.HandleEvent(ctx, event)
	return nil
}

func (r *Recorder) HandleEvent(ctx context.Context, event models.ConsoleEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *Recorder) Events() []models.ConsoleEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.ConsoleEvent(nil), r.events...)
}
