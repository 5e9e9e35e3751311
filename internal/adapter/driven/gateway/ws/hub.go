package ws

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Wyydra/ya-relay/internal/core/domain"
	"github.com/Wyydra/ya-relay/internal/observability"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Hub implements port.Gateway over the clients registered with it.
type Hub struct {
	mu      sync.RWMutex
	clients map[domain.ConnectionID]Client
	metrics *observability.Metrics
}

func NewHub(metrics *observability.Metrics) *Hub {
	return &Hub{
		clients: make(map[domain.ConnectionID]Client),
		metrics: metrics,
	}
}

func (h *Hub) Register(c Client) {
	h.mu.Lock()
	h.clients[c.ID()] = c
	h.mu.Unlock()
	log.Debug().Str("connection_id", c.ID().String()).Msg("Client registered")
}

// Unregister removes c if it is still the client registered under its ID.
func (h *Hub) Unregister(c Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cur, ok := h.clients[c.ID()]; ok && cur == c {
		delete(h.clients, c.ID())
		log.Debug().Str("connection_id", c.ID().String()).Msg("Client unregistered")
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Send queues event for connID. A client that already closed is just
// unregistered. A client whose queue is full is closed rather than allowed
// to slow everyone else down.
func (h *Hub) Send(_ context.Context, connID domain.ConnectionID, event domain.Event) error {
	frame, err := EncodeEvent(event)
	if err != nil {
		return err
	}

	h.mu.RLock()
	c, ok := h.clients[connID]
	h.mu.RUnlock()
	if !ok {
		h.metrics.DeliveryDropped()
		return fmt.Errorf("%w: %s", domain.ErrConnectionGone, connID)
	}

	err = c.Enqueue(frame)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrClientClosed):
		// The write pump gave up before the read loop noticed.
		h.metrics.DeliveryDropped()
		log.Debug().
			Str("connection_id", connID.String()).
			Str("event", string(event.Name)).
			Msg("Connection already closed, dropping event")
		h.Unregister(c)
		return fmt.Errorf("%w: %s", domain.ErrConnectionGone, connID)
	default:
		h.metrics.DeliveryDropped()
		log.Warn().
			Str("connection_id", connID.String()).
			Str("event", string(event.Name)).
			Msg("Outbound queue full, closing slow connection")
		h.Unregister(c)
		_ = c.CloseWith(websocket.ClosePolicyViolation, "slow consumer")
		return fmt.Errorf("%w: %s is not keeping up", domain.ErrConnectionGone, connID)
	}
}

// Stop closes every registered client.
func (h *Hub) Stop() {
	h.mu.Lock()
	clients := h.clients
	h.clients = make(map[domain.ConnectionID]Client)
	h.mu.Unlock()

	for _, c := range clients {
		_ = c.CloseWith(websocket.CloseGoingAway, "server shutting down")
	}
	log.Info().Int("clients", len(clients)).Msg("Hub stopped")
}
