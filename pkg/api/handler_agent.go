package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarsy-labs/agentcore/pkg/queue"
)

// AgentInvoker runs an agent's reasoning loop directly, outside any
// workflow. Implemented by the queue executor.
type AgentInvoker interface {
	InvokeAgentDirect(ctx context.Context, tenantID, agentName string, inputs map[string]any) (*queue.InvokeResult, error)
}

// invokeAgentRequest is the POST /api/v1/agents/:name/invoke body.
type invokeAgentRequest struct {
	Inputs map[string]any `json:"inputs"`
}

// listAgentsHandler handles GET /api/v1/agents.
func (s *Server) listAgentsHandler(c *gin.Context) {
	agents := make(map[string]any)
	for name, cfg := range s.cfg.AgentRegistry.GetAll() {
		agents[name] = gin.H{
			"role":         cfg.Role,
			"description":  cfg.Description,
			"capabilities": cfg.Capabilities,
			"tool_servers": cfg.ToolServers,
			"autonomy":     string(cfg.Autonomy),
		}
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

// invokeAgentHandler handles POST /api/v1/agents/:name/invoke.
// Runs synchronously: the response carries the final output plus the
// trace ID of the recorded execution.
func (s *Server) invokeAgentHandler(c *gin.Context) {
	if s.agentInvoker == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "agent execution not enabled"})
		return
	}

	var req invokeAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.agentInvoker.InvokeAgentDirect(
		c.Request.Context(), tenantFromRequest(c), unescapeParam(c.Param("name")), req.Inputs)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
