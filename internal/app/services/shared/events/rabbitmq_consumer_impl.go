package events

import (
	"context"
	"fmt"
	"posyandu-console/internal/app/contracts"
	"posyandu-console/internal/pkg/constvars"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer binds a private queue of this instance to the events exchange and hands every event to handler.
type Consumer struct {
	channel  *amqp.Channel
	exchange string
	handler  contracts.EventHandler
	observer Observer
	Log      *zap.Logger
	done     chan struct{}
}

func NewConsumer(channel *amqp.Channel, exchange string, handler contracts.EventHandler, observer Observer, logger *zap.Logger) *Consumer {
	return &Consumer{
		channel:  channel,
		exchange: exchange,
		handler:  handler,
		observer: observer,
		Log:      logger,
		done:     make(chan struct{}),
	}
}

// Start declares the queue and begins consuming in a goroutine that ends when ctx is cancelled
// or the broker closes the delivery channel.
func (c *Consumer) Start(ctx context.Context) error {
	queue, err := c.channel.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		return fmt.Errorf("declare events queue: %w", err)
	}
	if err := c.channel.QueueBind(queue.Name, "#", c.exchange, false, nil); err != nil {
		return fmt.Errorf("bind events queue: %w", err)
	}
	deliveries, err := c.channel.Consume(queue.Name, "", true, true, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume events queue: %w", err)
	}

	c.Log.Info("Consumer.Start listening for console events",
		zap.String(constvars.LoggingRoutingKey, "#"),
	)
	go c.run(ctx, deliveries)
	return nil
}

// Done is closed once the consume loop has returned.
func (c *Consumer) Done() <-chan struct{} {
	return c.done
}

func (c *Consumer) run(ctx context.Context, deliveries <-chan amqp.Delivery) {
	defer close(c.done)
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				c.Log.Warn("Consumer.run delivery channel closed")
				return
			}
			c.dispatch(ctx, delivery.Body)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, body []byte) {
	var event envelope
	if err := json.Unmarshal(body, &event); err != nil {
		c.Log.Warn("Consumer.dispatch dropping undecodable event", zap.Error(err))
		return
	}
	event.ConsoleEvent.SessionID = event.SessionID

	if c.observer != nil {
		c.observer.ObserveEvent(event.Type, DirectionConsumed)
	}
	c.handler.HandleEvent(ctx, event.ConsoleEvent)
}

// DeclareExchange makes sure the durable topic exchange shared by every console instance exists.
func DeclareExchange(channel *amqp.Channel, exchange string) error {
	return channel.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil)
}
