// Package sse streams settled spins to spectators over server-sent events.
package sse

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/osse101/SlotsBot_Go/internal/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Event represents an event sent over SSE
type Event struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload"`
}

// Client is one connected stream
type Client struct {
	ID     string
	Events chan Event
	// filter is nil for all events
	filter map[string]bool
}

func (c *Client) wants(eventType string) bool {
	return c.filter == nil || c.filter[eventType]
}

// Hub fans broadcast events out to registered clients. Slow clients lose
// events rather than stalling the broadcaster.
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	now        func() time.Time
}

// NewHub creates a hub; call Start before registering clients
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
		now:        time.Now,
	}
}

// Start runs the broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the loop and closes every client channel, which ends their streams
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for id, client := range h.clients {
			close(client.Events)
			delete(h.clients, id)
		}
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case id := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[id]; ok {
				close(client.Events)
				delete(h.clients, id)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(event.Type) {
					continue
				}
				select {
				case client.Events <- event:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client interested in eventTypes (all when empty). It
// returns false once the hub is stopped.
func (h *Hub) Register(eventTypes []string) (*Client, bool) {
	client := &Client{
		ID:     uuid.NewString(),
		Events: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		client.filter = make(map[string]bool, len(eventTypes))
		for _, t := range eventTypes {
			if t = strings.TrimSpace(t); t != "" {
				client.filter[t] = true
			}
		}
	}

	select {
	case <-h.shutdown:
		return nil, false
	default:
	}

	select {
	case h.register <- client:
		return client, true
	case <-h.shutdown:
		return nil, false
	}
}

// Unregister removes a client and closes its channel
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for every interested client. It never blocks and
// reports false when the event was dropped.
func (h *Hub) Broadcast(eventType string, payload any) bool {
	event := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: h.now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
		return true
	default:
		logger.Debug(LogMsgEventDropped, "event_type", eventType)
		return false
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatMessage renders an event in the text/event-stream wire format
func FormatMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	if event.ID != "" {
		sb.WriteString("id: " + event.ID + "\n")
	}
	sb.WriteString("event: " + event.Type + "\n")
	sb.WriteString("data: ")
	sb.Write(data)
	sb.WriteString("\n\n")
	return []byte(sb.String()), nil
}
