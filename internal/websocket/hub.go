package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"hr-assist-be/internal/dto"
	"hr-assist-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Hub fans escalation events out to connected HR dashboard clients.
type Hub struct {
	// Registered clients map: employee code -> list of clients (multi-device)
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance communication
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.EmployeeCode] = append(h.clients[client.EmployeeCode], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"employee_code": client.EmployeeCode})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.EmployeeCode]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.EmployeeCode] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.EmployeeCode]) == 0 {
					delete(h.clients, client.EmployeeCode)
					h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"employee_code": client.EmployeeCode})
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastEscalation sends an escalation event to ALL connected clients
// and relays it to other instances via Redis.
func (h *Hub) BroadcastEscalation(item dto.EscalationItem) {
	data, _ := json.Marshal(map[string]interface{}{
		"type": "escalation",
		"data": item,
	})

	h.sendToAllLocal(data)

	if h.rdb != nil {
		payload := map[string]interface{}{
			"target":  "*",
			"message": json.RawMessage(data),
		}
		jsonPayload, _ := json.Marshal(payload)
		h.rdb.Publish(context.Background(), "escalation_events", jsonPayload)
	}
}

func (h *Hub) sendToAllLocal(data []byte) {
	var dead []*Client
	h.mu.RLock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				dead = append(dead, client)
			}
		}
	}
	h.mu.RUnlock()

	// Unregister outside the lock; Run needs the write lock to remove them.
	for _, client := range dead {
		h.unregister <- client
	}
}

func (h *Hub) subscribeToRedis() {
	// All instances subscribe to "escalation_events"; each delivers the
	// payload to its own local clients.
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, "escalation_events")
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			Target  string          `json:"target"`
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		if payload.Target == "*" {
			h.sendToAllLocal(payload.Message)
		}
	}
}
