// Package events pushes catalog and layout changes to connected admin
// dashboards over websockets, so lists refresh without polling.
package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

const (
	EventCategoryUpdate = "category_update"
	EventProductUpdate  = "product_update"
	EventHallUpdate     = "hall_update"
	EventTableCreate    = "table_create"
	EventTableUpdate    = "table_update"
	EventTableDelete    = "table_delete"
	EventSettingsUpdate = "settings_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

type hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var dashboardHub = hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a dashboard connection with its role.
func RegisterClient(conn *websocket.Conn, role string) {
	dashboardHub.mutex.Lock()
	defer dashboardHub.mutex.Unlock()
	dashboardHub.clients[conn] = role
}

// UnregisterClient drops and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	dashboardHub.mutex.Lock()
	defer dashboardHub.mutex.Unlock()
	delete(dashboardHub.clients, conn)
	conn.Close()
}

// Broadcast sends an event to every connected dashboard. Write failures drop
// only the failing client's message; the connection reaper is the read loop.
func Broadcast(event string, data interface{}) {
	dashboardHub.mutex.Lock()
	defer dashboardHub.mutex.Unlock()

	payload, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		log.Printf("events: marshal %s: %v", event, err)
		return
	}

	for conn := range dashboardHub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("events: send %s: %v", event, err)
		}
	}
}
