package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/lmsdash/internal/app/models"
)

// DefaultBuffer is the number of pending events the hub queues before dropping
const DefaultBuffer = 64

// Hub fans change events out to every connected client
type Hub struct {
	// Registered clients; only the Run goroutine mutates this map
	clients map[*Client]bool

	// Events waiting to be broadcast
	broadcast chan models.ChangeEvent

	register   chan *Client
	unregister chan *Client

	// Closed once Run returns
	done chan struct{}

	// Guards clients for readers outside Run
	mu sync.RWMutex

	logger zerolog.Logger
}

// NewHub creates a new Hub instance
func NewHub(buffer int, logger zerolog.Logger) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan models.ChangeEvent, buffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run handles registrations and broadcasts until ctx is cancelled, then
// disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)

		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return
		}
	}
}

// registerClient registers a new client to the hub
func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()

	h.logger.Info().
		Str("addr", client.remoteAddr()).
		Msg("Event subscriber registered")
}

// unregisterClient removes a client and closes its send channel
func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)

		h.logger.Info().
			Str("addr", client.remoteAddr()).
			Msg("Event subscriber unregistered")
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
	h.logger.Info().Msg("Event hub stopped")
}

// broadcastEvent sends an event to all clients. Clients whose buffer is full
// are dropped.
func (h *Hub) broadcastEvent(event models.ChangeEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("entity", event.Entity).
			Str("id", event.ID).
			Msg("Failed to marshal event for broadcast")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Slow or dead subscriber
			delete(h.clients, client)
			close(client.send)
			h.logger.Warn().Str("addr", client.remoteAddr()).Msg("Dropped slow event subscriber")
		}
	}

	h.logger.Debug().
		Str("type", string(event.Type)).
		Str("entity", event.Entity).
		Str("id", event.ID).
		Int("clientCount", len(h.clients)).
		Msg("Event broadcasted")
}

// subscribe hands client to the Run loop. It reports false once the hub has stopped.
func (h *Hub) subscribe(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// leave removes client unless the hub has already stopped
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Notify queues event for broadcast without blocking the caller. When the
// queue is full the event is dropped.
func (h *Hub) Notify(event models.ChangeEvent) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn().
			Str("entity", event.Entity).
			Str("id", event.ID).
			Msg("Event queue full, dropping event")
	}
}

// ClientCount returns the number of connected subscribers
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
