package realtime

import (
	"encoding/json"
	"sync"
)

// Client represents a single websocket client connection.
// We keep it minimal here; the actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Event describes an entity mutation pushed to connected clients.
type Event struct {
	Type   string `json:"type"`   // e.g. "task_created"
	Entity string `json:"entity"` // task, project or notification
	ID     uint   `json:"id"`
}

// Hub maintains active connections and fans entity events out to them.
// It is constructed once in main and injected where needed.
type Hub struct {
	mu      sync.RWMutex
	clients map[Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[Client]struct{})}
}

// Register adds a client.
func (h *Hub) Register(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

// Unregister removes a client.
func (h *Hub) Unregister(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

// Broadcast sends the event to every connected client. Failed writes
// are left for the owning handler to clean up.
func (h *Hub) Broadcast(event Event) {
	message, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		_ = client.Send(message)
	}
}
