package contracts

import (
	"context"
	"posyandu-console/internal/app/models"
)

type EventPublisher interface {
	Publish(ctx context.Context, event models.ConsoleEvent) error
}

// EventHandler reacts to an event delivered by the broker or published locally.
type EventHandler interface {
	HandleEvent(ctx context.Context, event models.ConsoleEvent)
}

type RealtimeHub interface {
	EventHandler
	ClientCount() int
}
