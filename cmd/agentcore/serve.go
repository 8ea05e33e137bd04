package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/tarsy-labs/agentcore/pkg/api"
	"github.com/tarsy-labs/agentcore/pkg/cleanup"
	"github.com/tarsy-labs/agentcore/pkg/compare"
	"github.com/tarsy-labs/agentcore/pkg/config"
	"github.com/tarsy-labs/agentcore/pkg/database"
	"github.com/tarsy-labs/agentcore/pkg/events"
	"github.com/tarsy-labs/agentcore/pkg/gate"
	"github.com/tarsy-labs/agentcore/pkg/governance"
	"github.com/tarsy-labs/agentcore/pkg/hooks"
	"github.com/tarsy-labs/agentcore/pkg/llm"
	"github.com/tarsy-labs/agentcore/pkg/masking"
	"github.com/tarsy-labs/agentcore/pkg/mcp"
	"github.com/tarsy-labs/agentcore/pkg/queue"
	"github.com/tarsy-labs/agentcore/pkg/services"
	"github.com/tarsy-labs/agentcore/pkg/trace"
)

// cmdServe wires the full dependency graph and blocks until shutdown.
func cmdServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	configDir := fs.String("config-dir", getEnv("CONFIG_DIR", "./deploy/config"), "Path to configuration directory")
	addr := fs.String("addr", ":"+getEnv("HTTP_PORT", "8080"), "HTTP listen address")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	// Load .env from the config directory before anything reads env vars.
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Info("No .env file loaded, using process environment", "path", envPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		return 1
	}

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Invalid database configuration", "error", err)
		return 1
	}
	dbClient, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return 1
	}
	defer dbClient.Close()

	// Services
	runService := services.NewRunService(dbClient.Client, cfg.WorkflowRegistry)
	stepService := services.NewStepService(dbClient.Client)
	interactionService := services.NewInteractionService(dbClient.Client)
	timelineService := services.NewTimelineService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	traceService := services.NewTraceService(dbClient.Client)
	budgetService := services.NewBudgetService(dbClient.Client)
	sampleService := services.NewSampleService(dbClient.Client)
	gateService := services.NewGateService(dbClient.Client, gate.NewEngine(cfg.EngineThresholds()))
	warningService := services.NewSystemWarningsService()

	// Masking + tool servers
	maskingService := masking.NewMaskingService(cfg.ToolServerRegistry, masking.InputMaskingConfig{
		Enabled:      cfg.Defaults.InputMasking.Enabled,
		PatternGroup: cfg.Defaults.InputMasking.PatternGroup,
	})
	mcpFactory := mcp.NewClientFactory(cfg.ToolServerRegistry, maskingService)
	healthMonitor := mcp.NewHealthMonitor(mcpFactory, cfg.ToolServerRegistry, warningService)
	healthMonitor.Start(ctx)
	defer healthMonitor.Stop()

	// Model router
	router := llm.AutoRegister(cfg.LLMProviderRegistry)

	// Governance, hooks, traces, comparative core
	gov := governance.NewEvaluator(cfg.Governance.CallsPerMinute, cfg.Governance.BurstPerSecond)
	hookRegistry := hooks.NewRegistry()
	collector := trace.NewCollector()
	eloTable := compare.NewEloTable()

	population, err := sampleService.LoadPopulation(ctx, "")
	if err != nil {
		slog.Warn("Failed to load comparative samples, starting empty", "error", err)
		population = compare.NewPopulation()
	}

	// Event delivery
	publisher := events.NewEventPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(events.NewEventServiceAdapter(eventService), 5*time.Second)
	listener := events.NewNotifyListener(databaseConnString(dbCfg), connManager)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		return 1
	}
	defer listener.Stop(context.Background())
	connManager.SetListener(listener)

	// Worker pool
	podID := getEnv("POD_ID", "pod-"+uuid.New().String()[:8])
	executor := queue.NewExecutor(queue.ExecutorDeps{
		Config:         cfg,
		Router:         router,
		MCPFactory:     mcpFactory,
		Hooks:          hookRegistry,
		Governance:     gov,
		Collector:      collector,
		StepService:    stepService,
		Interactions:   interactionService,
		TraceService:   traceService,
		BudgetService:  budgetService,
		SampleService:  sampleService,
		EventPublisher: publisher,
	})
	pool := queue.NewWorkerPool(podID, dbClient.Client, cfg.Queue, executor)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		return 1
	}
	defer pool.Stop()

	// Retention
	cleaner := cleanup.NewService(cfg.Retention, runService, eventService, budgetService)
	cleaner.Start(ctx)
	defer cleaner.Stop()

	// HTTP API
	server := api.NewServer(api.ServerDeps{
		Config:             cfg,
		DBClient:           dbClient,
		HookRegistry:       hookRegistry,
		RunService:         runService,
		StepService:        stepService,
		TraceService:       traceService,
		BudgetService:      budgetService,
		GateService:        gateService,
		SampleService:      sampleService,
		InteractionService: interactionService,
		TimelineService:    timelineService,
		WarningService:     warningService,
		WorkerPool:         pool,
		AgentInvoker:       executor,
		ConnManager:        connManager,
		EloTable:           eloTable,
		Population:         population,
	})
	server.SetHealthMonitor(healthMonitor)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start(*addr) }()

	slog.Info("agentcore serving", "addr", *addr, "pod_id", podID)

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			return 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		slog.Warn("Graceful shutdown incomplete", "error", err)
	}
	return 0
}

// databaseConnString renders the pgx connection string the NOTIFY
// listener needs (it holds its own dedicated connection).
func databaseConnString(cfg database.Config) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode)
}
