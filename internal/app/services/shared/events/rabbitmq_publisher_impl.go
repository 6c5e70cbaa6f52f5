package events

import (
	"context"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"posyandu-console/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher is the part of *amqp.Channel used to publish.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type rabbitPublisher struct {
	mu       sync.Mutex
	channel  Publisher
	exchange string
	observer Observer
	Log      *zap.Logger
}

func NewRabbitPublisher(channel Publisher, exchange string, observer Observer, logger *zap.Logger) contracts.EventPublisher {
	return &rabbitPublisher{
		channel:  channel,
		exchange: exchange,
		observer: observer,
		Log:      logger,
	}
}

// Publish sends event to the topic exchange with its type as routing key.
func (p *rabbitPublisher) Publish(ctx context.Context, event models.ConsoleEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("rabbitPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingEntityKey, event.Entity),
		zap.String(constvars.LoggingEntityIDKey, event.EntityID),
	)

	body, err := json.Marshal(envelope{ConsoleEvent: event, SessionID: event.SessionID})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	err = p.channel.PublishWithContext(ctx, p.exchange, event.Type, false, false, amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		DeliveryMode:  amqp.Transient,
		MessageId:     event.ID,
		CorrelationId: requestID,
		Timestamp:     event.OccurredAt,
		Type:          event.Type,
		Body:          body,
	})
	p.mu.Unlock()
	if err != nil {
		p.Log.Error("rabbitPublisher.Publish error calling PublishWithContext",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRoutingKey, event.Type),
			zap.Error(err),
		)
		return exceptions.ErrPublishEvent(err)
	}

	if p.observer != nil {
		p.observer.ObserveEvent(event.Type, DirectionPublished)
	}
	p.Log.Info("rabbitPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)
	return nil
}

// envelope keeps the session id on the wire; it is hidden from browser-facing JSON.
type envelope struct {
	models.ConsoleEvent
	SessionID string `json:"session_id,omitempty"`
}
