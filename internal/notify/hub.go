// internal/notify/hub.go
// Websocket hub so a connected client sees like/match events live.
// One connection per user; a newer connection replaces the old one.

package notify

import (
	"context"
	"encoding/json"
	"log"
	"sync"
)

// Hub maintains active websocket connections and implements Notifier
type Hub struct {
	clients    map[int64]*Client
	clientsMux sync.RWMutex

	register   chan *Client
	unregister chan *Client

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		clients:    make(map[int64]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case <-h.ctx.Done():
			h.cleanup()
			return
		}
	}
}

// Notify implements Notifier. Users without an open connection are
// skipped; the redis publisher covers offline delivery paths.
func (h *Hub) Notify(ctx context.Context, userID int64, event Event) {
	h.clientsMux.RLock()
	client, ok := h.clients[userID]
	h.clientsMux.RUnlock()

	if !ok {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("notify: failed to marshal event for user %d: %v", userID, err)
		return
	}

	if !client.deliver(payload) {
		// Closed or slow consumer; drop the connection rather than
		// block or crash the caller
		select {
		case h.unregister <- client:
		case <-h.ctx.Done():
		}
	}
}

func (h *Hub) Shutdown() {
	h.cancel()
}

func (h *Hub) registerClient(client *Client) {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	if old, exists := h.clients[client.userID]; exists {
		old.Close()
	}

	h.clients[client.userID] = client
	log.Printf("user %d connected to event stream, total clients: %d", client.userID, len(h.clients))
}

func (h *Hub) unregisterClient(client *Client) {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	if current, exists := h.clients[client.userID]; exists && current == client {
		client.Close()
		delete(h.clients, client.userID)
	}
}

func (h *Hub) cleanup() {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	for _, client := range h.clients {
		client.Close()
	}
	h.clients = make(map[int64]*Client)
}
