// Package realtime pushes console events to open browser tabs over websockets.
package realtime

import (
	"context"
	"net/http"
	"posyandu-console/internal/app/models"
	"posyandu-console/internal/pkg/constvars"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 16
	broadcastSize  = 256
)

type client struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// Hub owns the set of connected tabs. Only the Run goroutine touches the set.
type Hub struct {
	upgrader   websocket.Upgrader
	register   chan *client
	unregister chan *client
	broadcast  chan models.ConsoleEvent
	clients    map[*client]struct{}
	done       chan struct{}
	count      atomic.Int64
	Log        *zap.Logger
}

// NewHub accepts upgrades from allowedOrigins. With no origins only same-host requests are accepted.
func NewHub(allowedOrigins []string, logger *zap.Logger) *Hub {
	hub := &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan models.ConsoleEvent, broadcastSize),
		clients:    make(map[*client]struct{}),
		done:       make(chan struct{}),
		Log:        logger,
	}
	hub.upgrader = websocket.Upgrader{ReadBufferSize: 1024, WriteBufferSize: 1024}
	if len(allowedOrigins) > 0 {
		allowed := make(map[string]struct{}, len(allowedOrigins))
		for _, origin := range allowedOrigins {
			allowed[origin] = struct{}{}
		}
		hub.upgrader.CheckOrigin = func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			_, ok := allowed[origin]
			return ok
		}
	}
	return hub
}

// Run serves registrations and broadcasts until ctx is cancelled, then closes every connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.count.Store(int64(len(h.clients)))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
			}
		case event := <-h.broadcast:
			h.deliver(event)
		}
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.count.Store(int64(len(h.clients)))
}

func (h *Hub) deliver(event models.ConsoleEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		h.Log.Error("Hub.deliver cannot marshal event", zap.Error(err))
		return
	}
	for c := range h.clients {
		if event.Type == constvars.EventTypeSessionLogout && c.userID != event.UserID {
			continue
		}
		select {
		case c.send <- message:
		default:
			h.Log.Warn("Hub.deliver dropping slow client",
				zap.String(constvars.LoggingUserIDKey, c.userID),
			)
			h.drop(c)
		}
	}
}

// HandleEvent queues event for delivery. Logout events reach only the tabs of the same user.
func (h *Hub) HandleEvent(ctx context.Context, event models.ConsoleEvent) {
	select {
	case h.broadcast <- event:
	default:
		h.Log.Warn("Hub.HandleEvent broadcast queue full",
			zap.String(constvars.LoggingEventTypeKey, event.Type),
		)
	}
}

func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// ServeWS upgrades the request and streams events to the tab until it disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, session *models.Session) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{userID: session.UserID, conn: conn, send: make(chan []byte, sendBufferSize)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return nil
	}
	h.Log.Info("Hub.ServeWS client connected",
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	go h.writePump(c)
	go h.readPump(c)
	return nil
}

// readPump only watches for the connection closing; tabs never send anything meaningful.
func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
