package http

import (
	"net/http"

	"atlas_inventory_server/internal/events"
	"atlas_inventory_server/pkg/colors"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin in development
		// In production, you should validate the origin
		return true
	},
}

// HandleWebSocket upgrades the connection and registers it with the
// event hub; the client receives element lifecycle events until it
// disconnects.
func HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		colors.PrintError("WebSocket upgrade failed: %v", err)
		return
	}

	events.WSHub.Register(conn)

	// the hub only pushes; drain reads to notice the close
	go func() {
		defer events.WSHub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
