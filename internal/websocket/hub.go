package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/model"
)

// Hub fans issuance events out to connected admin dashboards.
type Hub struct {
	clients map[*Client]bool

	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte, 16),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Run processes registrations and broadcasts until the process exits.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case message := <-h.Broadcast:
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// issuanceEvent is the wire shape of a live issuance notification.
type issuanceEvent struct {
	Type          string    `json:"type"`
	UniqueID      string    `json:"unique_id"`
	EventID       string    `json:"event_id"`
	EventName     string    `json:"event_name"`
	RecipientName string    `json:"recipient_name"`
	IssuedAt      time.Time `json:"issued_at"`
}

// CertificateIssued implements service.Notifier: pushes a live notification
// to every connected admin dashboard. Never blocks issuance.
func (h *Hub) CertificateIssued(cert *model.Certificate) {
	payload, err := json.Marshal(issuanceEvent{
		Type:          "certificate_issued",
		UniqueID:      cert.UniqueID,
		EventID:       cert.EventID,
		EventName:     cert.EventName,
		RecipientName: cert.RecipientName,
		IssuedAt:      cert.Date,
	})
	if err != nil {
		return
	}

	select {
	case h.Broadcast <- payload:
	default:
	}
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
