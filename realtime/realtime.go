package realtime

import (
	"log"
	"sync"

	"gamediary/models"

	"github.com/gorilla/websocket"
)

var (
	requestClients = make(map[*websocket.Conn]bool) // Connected administrator clients
	broadcast      = make(chan RequestUpdate)       // Broadcast channel for updates
	mutex          sync.Mutex                       // Mutex to protect requestClients map
)

// RequestUpdate represents a new or status-switched support request
type RequestUpdate struct {
	Request    models.PlayerRequest `json:"request"`
	UpdateType string               `json:"update_type"` // "new" or "status"
}

// RegisterClient adds a WebSocket client to the request stream
func RegisterClient(conn *websocket.Conn) {
	mutex.Lock()
	requestClients[conn] = true
	mutex.Unlock()
}

// UnregisterClient removes a WebSocket client from the request stream
func UnregisterClient(conn *websocket.Conn) {
	mutex.Lock()
	delete(requestClients, conn)
	mutex.Unlock()
}

// BroadcastRequestUpdate sends an update to all connected clients
func BroadcastRequestUpdate(update RequestUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		for client := range requestClients {
			if err := client.WriteJSON(update); err != nil {
				log.Printf("WebSocket write error: %v", err)
				client.Close()
				delete(requestClients, client)
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
