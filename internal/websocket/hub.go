package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"eva-support-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

const clusterChannel = "cluster_events"

// Hub fans chat events out to every connected client. The app is
// single-user, so there is no per-user routing: each browser tab is just
// another client. Redis pub/sub carries events across instances when more
// than one replica serves the same state.
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"clients": len(h.clients)})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"clients": len(h.clients)})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends an event envelope to all connected clients and mirrors it
// to other instances through Redis.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": eventType,
		"data": payload,
	})

	h.broadcastLocal(data)

	if h.rdb != nil {
		envelope, _ := json.Marshal(map[string]interface{}{
			"message": json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), clusterChannel, envelope)
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	var stalled []*Client
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			stalled = append(stalled, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range stalled {
		h.logger.Warn("Hub", "Client Send buffer full, dropping client", nil)
		h.unregister <- client
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}
		h.broadcastLocal(payload.Message)
	}
}
