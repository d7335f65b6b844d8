package websocket

import (
	"sync"

	"github.com/rs/zerolog/log"
)

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *ContentMessage
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *ContentMessage, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case message := <-h.broadcast:
			h.broadcastContent(message)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	log.Info().
		Str("adminId", client.admin.ID).
		Int("totalClients", len(h.clients)).
		Msg("[WS] Client registered")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}

	delete(h.clients, client)
	close(client.send)

	log.Info().
		Str("adminId", client.admin.ID).
		Int("totalClients", len(h.clients)).
		Msg("[WS] Client unregistered")
}

func (h *Hub) broadcastContent(msg *ContentMessage) {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.send <- msg:
		default:
			// Client buffer full, skip this message
			log.Warn().
				Str("adminId", client.admin.ID).
				Str("resource", msg.Resource).
				Msg("[WS] Client send buffer full, dropping message")
		}
	}

	log.Debug().
		Str("resource", msg.Resource).
		Str("action", msg.Action).
		Int("recipients", len(clients)).
		Msg("[WS] Content broadcast complete")
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// NotifyContentChanged queues a content change for all connected clients.
// Safe to call from any goroutine.
func (h *Hub) NotifyContentChanged(resource, action, id string) {
	select {
	case h.broadcast <- &ContentMessage{
		Type:     MessageTypeContent,
		Resource: resource,
		Action:   action,
		ID:       id,
	}:
	default:
		log.Warn().Str("resource", resource).Msg("[WS] Broadcast queue full, dropping notification")
	}
}

func (h *Hub) GetStats() (totalClients int) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
