package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Event is a live update pushed to connected stats pages whenever a
// profile's statistics are created or refreshed.
type Event struct {
	Type      string `json:"type"`
	ProfileID int64  `json:"profileId"`
	Username  string `json:"username"`
	Platform  string `json:"platform"`
}

// StatsRefreshed builds the event broadcast after a successful upstream
// stats fetch.
func StatsRefreshed(profileID int64, username, platform string) Event {
	return Event{
		Type:      "stats_refreshed",
		ProfileID: profileID,
		Username:  username,
		Platform:  platform,
	}
}

// Hub maintains the set of connected WebSocket clients and fans events out
// to all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// Register adds a client to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes a client and closes its send channel.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// Broadcast sends an event to every connected client. Slow clients whose
// buffers are full miss the event rather than blocking the sender.
func (h *Hub) Broadcast(ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("marshal event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
