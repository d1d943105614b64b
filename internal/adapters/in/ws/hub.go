// Package ws pushes committed order changes to staff watching a branch over
// WebSocket. Every branch is a room; a client joins exactly one room.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
)

const broadcastBuffer = 256

// Event is the envelope written to clients.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type branchEvent struct {
	branchID kernel.UUID
	message  []byte
	// report events reach only clients allowed to view the branch report.
	report bool
}

// Hub owns the rooms. All room mutations happen on the Run goroutine; mu only
// guards reads from other goroutines.
type Hub struct {
	rooms map[kernel.UUID]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	broadcast  chan branchEvent
	done       chan struct{}

	logger *slog.Logger
	mu     sync.RWMutex
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		rooms:      make(map[kernel.UUID]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan branchEvent, broadcastBuffer),
		done:       make(chan struct{}),
		logger:     logger.With("component", "ws_hub"),
	}
}

// Run serves the hub until ctx is done, then disconnects every client.
// A hub cannot be restarted.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			if h.rooms[client.branchID] == nil {
				h.rooms[client.branchID] = make(map[*Client]struct{})
			}
			h.rooms[client.branchID][client] = struct{}{}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.remove(client)
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.Lock()
			for client := range h.rooms[event.branchID] {
				if event.report && !client.reports {
					continue
				}
				select {
				case client.send <- event.message:
				default:
					h.logger.Warn("dropping slow client", "branch_id", event.branchID.String())
					h.remove(client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish queues an event for the branch room. It never blocks: when the
// queue is full the event is dropped and logged.
func (h *Hub) Publish(branchID kernel.UUID, eventType string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("marshal event payload", "type", eventType, "error", err)
		return
	}
	message, err := json.Marshal(Event{Type: eventType, Payload: raw})
	if err != nil {
		h.logger.Error("marshal event", "type", eventType, "error", err)
		return
	}

	select {
	case h.broadcast <- branchEvent{
		branchID: branchID,
		message:  message,
		report:   eventType == ports.EventBranchSummary,
	}:
	default:
		h.logger.Warn("broadcast queue full, event dropped", "type", eventType, "branch_id", branchID.String())
	}
}

func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Subscribers reports how many clients watch the branch.
func (h *Hub) Subscribers(branchID kernel.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[branchID])
}

// remove must be called with mu held.
func (h *Hub) remove(client *Client) {
	clients, ok := h.rooms[client.branchID]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.send)
	if len(clients) == 0 {
		delete(h.rooms, client.branchID)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for branchID, clients := range h.rooms {
		for client := range clients {
			close(client.send)
		}
		delete(h.rooms, branchID)
	}
}
