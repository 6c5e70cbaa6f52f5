package events

import (
	"context"
	"errors"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingHandler struct {
	mu     sync.Mutex
	events []models.ConsoleEvent
}

func (h *recordingHandler) HandleEvent(ctx context.Context, event models.ConsoleEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, event)
}

type fakeChannel struct {
	exchange, key string
	msg           amqp.Publishing
	err           error
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

type eventCounter struct {
	counts map[string]int
}

func (c *eventCounter) ObserveEvent(eventType, direction string) {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	c.counts[eventType+"/"+direction]++
}

func TestEventConstructors(t *testing.T) {
	changed := EntityChanged(constvars.ResourcePatient, "12", "7")
	assert.Equal(t, constvars.EventTypeEntityChanged, changed.Type)
	assert.Equal(t, "patient", changed.Entity)
	assert.Equal(t, "12", changed.EntityID)
	assert.NotEmpty(t, changed.ID)
	assert.False(t, changed.OccurredAt.IsZero())

	logout := SessionLogout("7", "sess-1")
	assert.Equal(t, constvars.EventTypeSessionLogout, logout.Type)
	assert.Equal(t, "sess-1", logout.SessionID)

	raw, err := json.Marshal(logout)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "sess-1", "session ids are not exposed to browsers")
}

func TestDispatcherAndLocalPublisher(t *testing.T) {
	first, second := &recordingHandler{}, &recordingHandler{}
	counter := &eventCounter{}
	publisher := NewLocalPublisher(NewDispatcher(first, second), counter)

	event := EntityChanged(constvars.ResourceKader, "3", "7")
	require.NoError(t, publisher.Publish(context.Background(), event))

	assert.Equal(t, []models.ConsoleEvent{event}, first.events)
	assert.Equal(t, []models.ConsoleEvent{event}, second.events)
	assert.Equal(t, 1, counter.counts["entity.changed/published"])
}

func TestRabbitPublisher(t *testing.T) {
	t.Run("Publishes JSON With Type As Routing Key", func(t *testing.T) {
		channel := &fakeChannel{}
		publisher := NewRabbitPublisher(channel, "posyandu.console.events", nil, zap.NewNop())
		event := SessionLogout("7", "sess-1")

		ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
		require.NoError(t, publisher.Publish(ctx, event))

		assert.Equal(t, "posyandu.console.events", channel.exchange)
		assert.Equal(t, constvars.EventTypeSessionLogout, channel.key)
		assert.Equal(t, event.ID, channel.msg.MessageId)
		assert.Equal(t, "req-1", channel.msg.CorrelationId)

		var decoded envelope
		require.NoError(t, json.Unmarshal(channel.msg.Body, &decoded))
		assert.Equal(t, "sess-1", decoded.SessionID, "session id travels between instances")
	})

	t.Run("Broker Failure Is Wrapped", func(t *testing.T) {
		publisher := NewRabbitPublisher(&fakeChannel{err: errors.New("channel closed")}, "x", nil, zap.NewNop())
		assert.Error(t, publisher.Publish(context.Background(), EntityChanged("patient", "1", "7")))
	})
}

func TestConsumerDispatch(t *testing.T) {
	handler := &recordingHandler{}
	counter := &eventCounter{}
	consumer := NewConsumer(nil, "x", handler, counter, zap.NewNop())

	body, err := json.Marshal(envelope{ConsoleEvent: SessionLogout("7", "sess-9"), SessionID: "sess-9"})
	require.NoError(t, err)

	consumer.dispatch(context.Background(), body)
	consumer.dispatch(context.Background(), []byte("not json"))

	require.Len(t, handler.events, 1)
	assert.Equal(t, "sess-9", handler.events[0].SessionID)
	assert.Equal(t, 1, counter.counts["session.logout/consumed"])
}
