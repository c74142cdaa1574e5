// Package notifier delivers best-effort real-time events to users over
// their live WebSocket connections. Delivery is fire-and-forget: there is
// no outbox, no retry and no receipt, and a failed or impossible delivery
// never propagates to the caller.
package notifier

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// Hub maps a user identity to the set of live channels it currently
// holds. A user may hold zero or more connections at once (several open
// sessions); events are broadcast to all of them. The hub is constructed
// once at process start and injected where needed.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
	logger  zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
		logger:  logger.With().Str("component", "notifier").Logger(),
	}
}

// NotifyHired broadcasts the hired event to every live channel of the
// freelancer. No recipient online, or a recipient too slow to drain its
// buffer, drops the event silently.
func (h *Hub) NotifyHired(userId string, event HiredEvent) {
	payload, err := json.Marshal(envelope{Event: "hired", Data: event})
	if err != nil {
		h.logger.Error().Err(err).Msg("marshal hired event")

		return
	}

	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients[userId]))
	for client := range h.clients[userId] {
		targets = append(targets, client)
	}
	h.mu.RUnlock()

	if len(targets) == 0 {
		h.logger.Debug().Str("userId", userId).Msg("no live channels, event dropped")

		return
	}

	for _, client := range targets {
		if !client.trySend(payload) {
			h.logger.Debug().Str("userId", userId).Msg("channel buffer full, event dropped")
		}
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[c.userId] == nil {
		h.clients[c.userId] = make(map[*Client]struct{})
	}
	h.clients[c.userId][c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[c.userId]
	if !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.userId)
	}
}
