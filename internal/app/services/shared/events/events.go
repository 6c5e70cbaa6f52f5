// Package events carries console events between instances over RabbitMQ.
package events

import (
	"context"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

const (
	DirectionPublished = "published"
	DirectionConsumed  = "consumed"
)

// Observer counts events per type and direction.
type Observer interface {
	ObserveEvent(eventType, direction string)
}

// EntityChanged announces that a record was created, updated or deleted upstream.
func EntityChanged(resource, entityID, userID string) models.ConsoleEvent {
	return models.ConsoleEvent{
		ID:         uuid.NewString(),
		Type:       constvars.EventTypeEntityChanged,
		Entity:     resource,
		EntityID:   entityID,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
	}
}

// SessionLogout tells every open tab of userID that the session has ended.
func SessionLogout(userID, sessionID string) models.ConsoleEvent {
	return models.ConsoleEvent{
		ID:         uuid.NewString(),
		Type:       constvars.EventTypeSessionLogout,
		Entity:     constvars.ResourceSession,
		UserID:     userID,
		SessionID:  sessionID,
		OccurredAt: time.Now().UTC(),
	}
}

// Dispatcher fans one event out to several handlers in order.
type Dispatcher struct {
	handlers []contracts.EventHandler
}

func NewDispatcher(handlers ...contracts.EventHandler) *Dispatcher {
	return &Dispatcher{handlers: handlers}
}

func (d *Dispatcher) HandleEvent(ctx context.Context, event models.ConsoleEvent) {
	for _, handler := range d.handlers {
		handler.HandleEvent(ctx, event)
	}
}

type localPublisher struct {
	handler  contracts.EventHandler
	observer Observer
}

// NewLocalPublisher delivers events straight to handler. It is used when no broker is configured,
// so only the current instance sees them.
func NewLocalPublisher(handler contracts.EventHandler, observer Observer) contracts.EventPublisher {
	return &localPublisher{handler: handler, observer: observer}
}

func (p *localPublisher) Publish(ctx context.Context, event models.ConsoleEvent) error {
	if p.observer != nil {
		p.observer.ObserveEvent(event.Type, DirectionPublished)
	}
	p.handler.HandleEvent(ctx, event)
	return nil
}
