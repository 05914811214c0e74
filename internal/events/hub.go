package events

import (
	"encoding/json"
	"sync"
	"time"

	"atlas_inventory_server/internal/models"
	"atlas_inventory_server/pkg/colors"

	"github.com/gorilla/websocket"
)

// Hub fans element lifecycle events out to connected WebSocket clients.
// Emission is fire-and-forget: a slow or dead client is dropped, never
// waited on.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mutex      sync.RWMutex
}

// Message represents an event sent through the hub
type Message struct {
	Type      string      `json:"type"`
	Timestamp string      `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// ElementEvent carries the element payload of a lifecycle event
type ElementEvent struct {
	ElementID  string                     `json:"element_id"`
	Name       string                     `json:"name"`
	OperState  models.OperationalState    `json:"oper_state"`
	AdminState models.AdministrativeState `json:"admin_state"`
}

// WSHub is the global hub instance
var WSHub *Hub

// Initialize creates the global hub and starts its run loop
func Initialize() {
	WSHub = NewHub()
	go WSHub.Run()
	colors.PrintSuccess("Event hub initialized")
}

// NewHub creates a new event hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run processes hub registration and broadcast channels
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mutex.Lock()
			h.clients[conn] = true
			h.mutex.Unlock()
			colors.PrintDebug("WebSocket client connected (%d total)", h.ClientCount())

		case conn := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mutex.Unlock()

		case message := <-h.broadcast:
			h.mutex.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Register adds a client connection to the hub
func (h *Hub) Register(conn *websocket.Conn) {
	h.register <- conn
}

// Unregister removes a client connection from the hub
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// BroadcastElementEvent emits an element lifecycle event
// (element_added, element_updated, element_removed, element_detached)
func (h *Hub) BroadcastElementEvent(eventType string, element *models.Element) {
	h.emit(eventType, ElementEvent{
		ElementID:  element.ElementID,
		Name:       element.Name,
		OperState:  element.OperState,
		AdminState: element.AdminState,
	})
}

// BroadcastWatchdogSweep emits the result of a watchdog sweep that
// demoted at least one element
func (h *Hub) BroadcastWatchdogSweep(demoted int64) {
	h.emit("watchdog_sweep", map[string]interface{}{
		"demoted": demoted,
	})
}

func (h *Hub) emit(eventType string, data interface{}) {
	payload, err := json.Marshal(Message{
		Type:      eventType,
		Timestamp: time.Now().Format(time.RFC3339),
		Data:      data,
	})
	if err != nil {
		colors.PrintError("Failed to marshal %s event: %v", eventType, err)
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		// observers lag behind; drop rather than block a writer
		colors.PrintWarning("Event hub backlog full, dropping %s event", eventType)
	}
}
