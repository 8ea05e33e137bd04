package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarsy-labs/agentcore/pkg/version"
)

// systemInfoHandler handles GET /api/v1/system/info.
func (s *Server) systemInfoHandler(c *gin.Context) {
	stats := s.cfg.Stats()
	resp := SystemInfoResponse{
		Version:      version.Full(),
		Agents:       stats.Agents,
		Workflows:    stats.Workflows,
		ToolServers:  stats.ToolServers,
		LLMProviders: stats.LLMProviders,
	}

	if s.workerPool != nil {
		resp.PoolHealth = s.workerPool.Health()
	}
	if s.healthMonitor != nil {
		toolHealth := make(map[string]any)
		for id, status := range s.healthMonitor.GetStatuses() {
			toolHealth[id] = status
		}
		resp.ToolHealth = toolHealth
	}

	c.JSON(http.StatusOK, resp)
}

// systemWarningsHandler handles GET /api/v1/system/warnings.
func (s *Server) systemWarningsHandler(c *gin.Context) {
	if s.warningService == nil {
		c.JSON(http.StatusOK, gin.H{"warnings": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"warnings": s.warningService.GetWarnings()})
}
