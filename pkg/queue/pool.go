package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/ent/workflowrun"
	"github.com/tarsy-labs/agentcore/pkg/config"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID       string
	client      *ent.Client
	config      *config.QueueConfig
	runExecutor RunExecutor
	workers     []*Worker
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup

	// Run cancel registry: run_id → cancel function
	activeRuns map[string]context.CancelFunc
	mu         sync.RWMutex
	started    bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool.
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor) *WorkerPool {
	return &WorkerPool{
		podID:       podID,
		client:      client,
		config:      cfg,
		runExecutor: executor,
		workers:     make([]*Worker, 0, cfg.WorkerCount),
		stopCh:      make(chan struct{}),
		activeRuns:  make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan sweep background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.runExecutor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan sweep
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanSweep(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current runs before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveRunIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active runs to complete",
			"count", len(active),
			"run_ids", active)
	}

	// Signal all workers to stop (they finish current runs)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal the orphan sweep to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterRun stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterRun(runID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeRuns[runID] = cancel
}

// UnregisterRun removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterRun(runID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeRuns, runID)
}

// CancelRun triggers context cancellation for a run on this pod.
// Returns true if the run was found and cancelled on this pod.
func (p *WorkerPool) CancelRun(runID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeRuns[runID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	health := &PoolHealth{
		IsHealthy:     true,
		PodID:         p.podID,
		TotalWorkers:  len(p.workers),
		MaxConcurrent: p.config.MaxConcurrentRuns,
	}

	if _, err := p.client.WorkflowRun.Query().Limit(1).Exist(ctx); err != nil {
		health.IsHealthy = false
		health.DBReachable = false
		health.DBError = err.Error()
	} else {
		health.DBReachable = true
	}

	queueDepth, err := p.client.WorkflowRun.Query().
		Where(workflowrun.StatusEQ(workflowrun.StatusPending)).
		Count(ctx)
	if err == nil {
		health.QueueDepth = queueDepth
	}

	for _, worker := range p.workers {
		wh := worker.Health()
		health.WorkerStats = append(health.WorkerStats, wh)
		if wh.Status == string(WorkerStatusWorking) {
			health.ActiveWorkers++
		}
	}

	p.mu.RLock()
	health.ActiveRuns = len(p.activeRuns)
	p.mu.RUnlock()

	p.orphans.mu.Lock()
	health.LastOrphanScan = p.orphans.lastOrphanScan
	health.OrphansRecovered = p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	return health
}

func (p *WorkerPool) getActiveRunIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeRuns))
	for id := range p.activeRuns {
		ids = append(ids, id)
	}
	return ids
}
