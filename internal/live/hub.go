// Package live serves filter sessions over websockets: each connection owns
// a session and receives its result sets as they change.
package live

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"flixhub/internal/session"
)

const writeTimeout = 2 * time.Second

var activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "flixhub_live_sessions",
	Help: "Number of connected live sessions",
})

// Client is one websocket connection and its session.
type Client struct {
	ID      string
	ws      *websocket.Conn
	writeMu sync.Mutex
	session *session.Session
}

func newClient(ws *websocket.Conn) *Client {
	return &Client{ID: uuid.NewString(), ws: ws}
}

// Send writes one event. Writes on a connection are serialized.
func (c *Client) Send(ev Event) error {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.ws.WriteJSON(ev)
}

type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
}

type Stats struct {
	Sessions int `json:"sessions"`
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Add(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	activeSessions.Inc()
}

func (h *Hub) Remove(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	h.mu.Unlock()
	if ok {
		activeSessions.Dec()
	}
	_ = c.ws.Close()
}

// Broadcast sends ev to every client. Clients that fail the write are
// dropped.
func (h *Hub) Broadcast(ev Event) {
	for _, c := range h.snapshot() {
		if err := c.Send(ev); err != nil {
			h.Remove(c)
		}
	}
}

// Reloaded tells every client the catalog changed and re-runs their
// searches against it.
func (h *Hub) Reloaded(records int) {
	h.Broadcast(Event{Type: EventReloaded, Records: records})
	for _, c := range h.snapshot() {
		if c.session != nil {
			c.session.Refresh()
		}
	}
}

func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) Stats() Stats {
	return Stats{Sessions: h.Count()}
}

func (h *Hub) snapshot() []*Client {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		out = append(out, c)
	}
	return out
}
