package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// websocketHandler handles GET /api/v1/ws: upgrades the connection and
// hands it to the connection manager, which owns the subscribe/catchup
// protocol from there.
func (s *Server) websocketHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming not enabled"})
		return
	}

	opts := &websocket.AcceptOptions{}
	if len(s.cfg.AllowedWSOrigins) > 0 {
		opts.OriginPatterns = s.cfg.AllowedWSOrigins
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		// Accept already wrote the HTTP error response.
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn)
}
