package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gorillaWS "github.com/gorilla/websocket"

	"github.com/gianaibodev/gdg-bacolod-community-platform-sub000/internal/auth"
)

var upgrader = gorillaWS.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// the feed carries no secrets beyond what the admin API exposes
		return true
	},
}

// Handler upgrades an authenticated admin connection onto the issuance feed.
// Browsers cannot set headers on websocket dials, so the session token rides
// the query string.
func Handler(hub *Hub, adminAuth *auth.AdminAuth) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		if err := adminAuth.Validate(token); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upgrade connection"})
			return
		}

		client := NewClient(uuid.NewString(), hub, conn)
		hub.Register <- client

		go client.ReadPump()
		go client.WritePump()
	}
}
