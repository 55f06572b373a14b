package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client is one live subscriber.
type Client struct {
	ID   uuid.UUID
	Conn Conn
}

// Event is the frame pushed to subscribers.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

const broadcastBuffer = 64

type Hub struct {
	clients    map[uuid.UUID]Conn
	Register   chan *Client
	Unregister chan uuid.UUID
	Broadcast  chan []byte
	mutex      sync.Mutex
	log        *slog.Logger

	// closed when Run returns
	done chan struct{}
}

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]Conn),
		Register:   make(chan *Client),
		Unregister: make(chan uuid.UUID),
		Broadcast:  make(chan []byte, broadcastBuffer),
		log:        log,
		done:       make(chan struct{}),
	}
}

// NewClient wraps a connection with a fresh identity.
func NewClient(conn Conn) *Client {
	return &Client{ID: uuid.New(), Conn: conn}
}

// Publish queues an event for every subscriber. It never blocks: when the
// broadcast buffer is full the event is dropped.
func (h *Hub) Publish(eventType string, payload interface{}) {
	msg, err := json.Marshal(Event{Type: eventType, Data: payload})
	if err != nil {
		h.log.Error("ws: marshal event", "type", eventType, "err", err)
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
		h.log.Warn("ws: broadcast buffer full, event dropped", "type", eventType)
	}
}

// ClientCount reports the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	return len(h.clients)
}

// Run serves register, unregister and broadcast until ctx is done, then
// closes every remaining connection. Run must be called at most once.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for id, conn := range h.clients {
				conn.Close()
				delete(h.clients, id)
			}
			h.mutex.Unlock()
			return

		case client := <-h.Register:
			h.mutex.Lock()
			h.clients[client.ID] = client.Conn
			h.mutex.Unlock()
			h.log.Debug("ws: client connected", "client", client.ID)

		case id := <-h.Unregister:
			h.mutex.Lock()
			if conn, ok := h.clients[id]; ok {
				delete(h.clients, id)
				conn.Close()
			}
			h.mutex.Unlock()
			h.log.Debug("ws: client disconnected", "client", id)

		case message := <-h.Broadcast:
			h.mutex.Lock()
			for id, conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, id)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Serve registers conn and blocks reading until the peer goes away.
func (h *Hub) Serve(conn *websocket.Conn) {
	h.serve(conn, conn)
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

type reader interface {
	ReadMessage() (messageType int, p []byte, err error)
}

func (h *Hub) serve(conn Conn, r reader) {
	client := NewClient(conn)
	select {
	case h.Register <- client:
	case <-h.done:
		conn.Close()
		return
	}
	defer func() {
		select {
		case h.Unregister <- client.ID:
		case <-h.done:
		}
	}()

	for {
		// Keep alive loop
		if _, _, err := r.ReadMessage(); err != nil {
			break
		}
	}
}
