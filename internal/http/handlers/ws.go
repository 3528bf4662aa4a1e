package handlers

import (
	"net/http"

	"taskmanager/internal/http/middleware"
	"taskmanager/internal/logger"
	"taskmanager/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WS upgrades the connection and streams task change events to the client.
func (h *Handler) WS(allowedOrigins []string) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				// non-browser clients (taskctl watch) send no Origin
				return true
			}
			return middleware.OriginAllowed(allowedOrigins, origin)
		},
	}

	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("ws upgrade failed", "error", err)
			return
		}

		client := ws.NewClient(conn, h.Hub)
		go client.Run()
	}
}
