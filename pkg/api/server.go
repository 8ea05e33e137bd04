// Package api provides the HTTP API: run submission, trace queries, gate
// evaluation, comparative endpoints, and the WebSocket event stream.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tarsy-labs/agentcore/pkg/compare"
	"github.com/tarsy-labs/agentcore/pkg/config"
	"github.com/tarsy-labs/agentcore/pkg/database"
	"github.com/tarsy-labs/agentcore/pkg/events"
	"github.com/tarsy-labs/agentcore/pkg/hooks"
	"github.com/tarsy-labs/agentcore/pkg/hooks/ginmw"
	"github.com/tarsy-labs/agentcore/pkg/mcp"
	"github.com/tarsy-labs/agentcore/pkg/queue"
	"github.com/tarsy-labs/agentcore/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	cfg        *config.Config
	dbClient   *database.Client
	hookReg    *hooks.Registry

	runService         *services.RunService
	stepService        *services.StepService
	traceService       *services.TraceService
	budgetService      *services.BudgetService
	gateService        *services.GateService
	sampleService      *services.SampleService
	interactionService *services.InteractionService
	timelineService    *services.TimelineService
	warningService     *services.SystemWarningsService

	workerPool    *queue.WorkerPool
	agentInvoker  AgentInvoker
	connManager   *events.ConnectionManager
	healthMonitor *mcp.HealthMonitor // nil if tool servers disabled
	eloTable      *compare.EloTable
	population    *compare.Population
}

// ServerDeps bundles the Server's collaborators.
type ServerDeps struct {
	Config       *config.Config
	DBClient     *database.Client
	HookRegistry *hooks.Registry

	RunService         *services.RunService
	StepService        *services.StepService
	TraceService       *services.TraceService
	BudgetService      *services.BudgetService
	GateService        *services.GateService
	SampleService      *services.SampleService
	InteractionService *services.InteractionService
	TimelineService    *services.TimelineService
	WarningService     *services.SystemWarningsService

	WorkerPool   *queue.WorkerPool
	AgentInvoker AgentInvoker
	ConnManager  *events.ConnectionManager
	EloTable    *compare.EloTable
	Population  *compare.Population
}

// NewServer creates a new API server.
func NewServer(deps ServerDeps) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:             engine,
		cfg:                deps.Config,
		dbClient:           deps.DBClient,
		hookReg:            deps.HookRegistry,
		runService:         deps.RunService,
		stepService:        deps.StepService,
		traceService:       deps.TraceService,
		budgetService:      deps.BudgetService,
		gateService:        deps.GateService,
		sampleService:      deps.SampleService,
		interactionService: deps.InteractionService,
		timelineService:    deps.TimelineService,
		warningService:     deps.WarningService,
		workerPool:         deps.WorkerPool,
		agentInvoker:       deps.AgentInvoker,
		connManager:        deps.ConnManager,
		eloTable:           deps.EloTable,
		population:         deps.Population,
	}

	s.setupRoutes()
	return s
}

// SetHealthMonitor sets the tool server health monitor for the system
// endpoint.
func (s *Server) SetHealthMonitor(monitor *mcp.HealthMonitor) {
	s.healthMonitor = monitor
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) setupRoutes() {
	s.engine.Use(securityHeaders())
	if s.hookReg != nil {
		s.engine.Use(ginmw.New(s.hookReg, tenantFromRequest))
	}

	s.engine.GET("/health", s.healthHandler)

	v1 := s.engine.Group("/api/v1")
	{
		v1.POST("/runs", s.submitRunHandler)
		v1.GET("/runs", s.listRunsHandler)
		v1.GET("/runs/:id", s.getRunHandler)
		v1.POST("/runs/:id/cancel", s.cancelRunHandler)
		v1.GET("/runs/:id/timeline", s.timelineHandler)
		v1.GET("/runs/:id/trace", s.runTraceHandler)

		v1.GET("/agents", s.listAgentsHandler)
		v1.POST("/agents/:name/invoke", s.invokeAgentHandler)

		v1.GET("/traces", s.listTracesHandler)
		v1.GET("/failures", s.listFailuresHandler)

		v1.POST("/gates/:gate/evaluate", s.evaluateGateHandler)
		v1.GET("/gates/reports", s.listGateReportsHandler)

		v1.POST("/budgets", s.createBudgetHandler)
		v1.GET("/budgets", s.listBudgetsHandler)
		v1.POST("/budgets/:id/transition", s.transitionBudgetHandler)

		v1.POST("/compare/samples", s.recordSampleHandler)
		v1.GET("/compare/leaderboard", s.leaderboardHandler)
		v1.GET("/compare/profile/:agent", s.agentProfileHandler)

		v1.GET("/system/info", s.systemInfoHandler)
		v1.GET("/system/warnings", s.systemWarningsHandler)

		v1.GET("/ws", s.websocketHandler)
	}
}

// Start begins serving on the given address, blocking until the listener
// fails or Stop is called.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server failed: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
