package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarsy-labs/agentcore/pkg/hooks/ginmw"
)

// engineSetupForTest wires a minimal router: the production middleware
// stack plus two probe routes, without the full service graph.
func engineSetupForTest(s *Server) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(securityHeaders())
	if s.hookReg != nil {
		engine.Use(ginmw.New(s.hookReg, tenantFromRequest))
	}
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/tenant", func(c *gin.Context) { c.String(http.StatusOK, tenantFromRequest(c)) })
	s.engine = engine
}
