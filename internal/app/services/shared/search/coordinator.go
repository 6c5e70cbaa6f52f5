// Package search serialises the type-ahead searches of one browser session per view.
package search

import (
	"context"
	"errors"
	"fmt"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/debounce"
	"posyandu-console/internal/pkg/exceptions"
	"posyandu-console/internal/pkg/generation"
	"time"
)

const anonymousSession = "anonymous"

type Coordinator struct {
	debouncer *debounce.Debouncer
	tracker   *generation.Tracker
}

func NewCoordinator(delay time.Duration) *Coordinator {
	return &Coordinator{
		debouncer: debounce.New(delay),
		tracker:   generation.NewTracker(),
	}
}

// Run waits out the debounce delay for view and then calls fn.
// A newer Run for the same session and view makes this one fail with ErrSearchSuperseded
// while it waits, or with ErrStaleResponse if fn was already running. Results written
// by fn must be ignored whenever Run returns an error.
func (c *Coordinator) Run(ctx context.Context, view string, fn func(ctx context.Context) error) error {
	key := viewKey(ctx, view)
	token := c.tracker.Next(key)

	err := c.debouncer.Do(ctx, key, fn)
	if errors.Is(err, debounce.ErrSuperseded) {
		return exceptions.ErrSearchSuperseded(err)
	}
	if err != nil {
		return err
	}
	if !c.tracker.IsCurrent(key, token) {
		return exceptions.ErrStaleResponse(nil)
	}
	return nil
}

// ForgetSession drops the generation state of a session that logged out.
func (c *Coordinator) ForgetSession(sessionID string) {
	c.tracker.ForgetPrefix(sessionID + ":")
}

func viewKey(ctx context.Context, view string) string {
	sessionID := anonymousSession
	if session := models.SessionFromContext(ctx); session != nil && session.SessionID != "" {
		sessionID = session.SessionID
	}
	return fmt.Sprintf("%s:%s", sessionID, view)
}
