package queue

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/ent/event"
	"github.com/tarsy-labs/agentcore/ent/workflowrun"
	"github.com/tarsy-labs/agentcore/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// heartbeatInterval is how often a working worker refreshes its run's
// last_interaction_at so the orphan sweep leaves it alone.
const heartbeatInterval = 30 * time.Second

// eventCleanupDelay is how long terminal runs keep their event rows so
// late-reconnecting clients can still catch up.
const eventCleanupDelay = 5 * time.Minute

// Worker is a single queue worker that polls for and processes runs.
type Worker struct {
	id          string
	podID       string
	client      *ent.Client
	config      *config.QueueConfig
	runExecutor RunExecutor
	pool        RunRegistry
	stopCh      chan struct{}
	stopOnce    sync.Once
	wg          sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentRunID  string
	runsProcessed int
	lastActivity  time.Time
}

// RunRegistry is the subset of WorkerPool used by Worker for run
// registration.
type RunRegistry interface {
	RegisterRun(runID string, cancel context.CancelFunc)
	UnregisterRun(runID string)
}

// NewWorker creates a new queue worker.
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor RunExecutor, pool RunRegistry) *Worker {
	return &Worker{
		id:          id,
		podID:       podID,
		client:      client,
		config:      cfg,
		runExecutor: executor,
		pool:        pool,
		stopCh:      make(chan struct{}),
		status:      WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentRunID:  w.currentRunID,
		RunsProcessed: w.runsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				switch err {
				case ErrNoRunsAvailable, ErrAtCapacity:
					// Expected idle conditions — jittered backoff.
					w.sleep(w.pollDelay())
				default:
					log.Error("Worker poll failed", "error", err)
					w.sleep(w.pollDelay())
				}
			}
		}
	}
}

// pollDelay returns the poll interval with ±25% jitter so replicas don't
// hammer the table in lockstep.
func (w *Worker) pollDelay() time.Duration {
	base := w.config.PollInterval
	jitter := time.Duration(rand.Int64N(int64(base) / 2))
	return base*3/4 + jitter
}

func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims one pending run and drives it to a terminal state.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// Enforce the global concurrency cap before claiming.
	active, err := w.client.WorkflowRun.Query().
		Where(workflowrun.StatusEQ(workflowrun.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count active runs: %w", err)
	}
	if active >= w.config.MaxConcurrentRuns {
		return ErrAtCapacity
	}

	run, err := w.claimNextRun(ctx)
	if err != nil {
		return err
	}
	if run == nil {
		return ErrNoRunsAvailable
	}

	w.setWorking(run.ID)
	defer w.setIdle()

	w.process(ctx, run)
	return nil
}

// claimNextRun atomically claims the oldest pending run for this worker.
func (w *Worker) claimNextRun(ctx context.Context) (*ent.WorkflowRun, error) {
	run, err := w.client.WorkflowRun.Query().
		Where(workflowrun.StatusEQ(workflowrun.StatusPending)).
		Order(ent.Asc(workflowrun.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	now := time.Now()
	count, err := w.client.WorkflowRun.Update().
		Where(
			workflowrun.IDEQ(run.ID),
			workflowrun.StatusEQ(workflowrun.StatusPending),
		).
		SetStatus(workflowrun.StatusInProgress).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}
	if count == 0 {
		// Lost the race to another worker.
		return nil, nil
	}

	return w.client.WorkflowRun.Get(ctx, run.ID)
}

// process executes a claimed run, maintaining the heartbeat and writing
// the terminal state.
func (w *Worker) process(ctx context.Context, run *ent.WorkflowRun) {
	log := slog.With("worker_id", w.id, "run_id", run.ID, "workflow", run.WorkflowName)
	log.Info("Processing run")

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w.pool.RegisterRun(run.ID, cancel)
	defer w.pool.UnregisterRun(run.ID)

	// Heartbeat loop keeps last_interaction_at fresh during execution.
	heartbeatDone := make(chan struct{})
	var hbWg sync.WaitGroup
	hbWg.Add(1)
	go func() {
		defer hbWg.Done()
		ticker := time.NewTicker(heartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-heartbeatDone:
				return
			case <-ticker.C:
				err := w.client.WorkflowRun.UpdateOneID(run.ID).
					SetLastInteractionAt(time.Now()).
					Exec(ctx)
				if err != nil {
					log.Warn("Heartbeat update failed", "error", err)
				}
			}
		}
	}()

	result := w.runExecutor.Execute(runCtx, run)

	close(heartbeatDone)
	hbWg.Wait()

	w.finalize(ctx, run, result, log)

	w.mu.Lock()
	w.runsProcessed++
	w.mu.Unlock()
}

// finalize writes the run's terminal state and schedules event cleanup.
func (w *Worker) finalize(ctx context.Context, run *ent.WorkflowRun, result *ExecutionResult, log *slog.Logger) {
	now := time.Now()
	update := w.client.WorkflowRun.UpdateOneID(run.ID).
		SetStatus(result.Status).
		SetCompletedAt(now).
		SetLastInteractionAt(now)

	if run.StartedAt != nil {
		update = update.SetDurationMs(int(now.Sub(*run.StartedAt).Milliseconds()))
	}
	if result.Outputs != nil {
		update = update.SetOutputs(result.Outputs)
	}
	if result.Error != nil {
		update = update.SetErrorMessage(result.Error.Error())
	}

	// Terminal write uses a fresh context: the run context may already be
	// cancelled, and losing the terminal state would orphan the run.
	writeCtx, cancelWrite := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelWrite()
	if err := update.Exec(writeCtx); err != nil {
		log.Error("Failed to write terminal run state", "error", err)
		return
	}

	log.Info("Run finished", "status", result.Status)

	// Late cleanup of the run's event rows, leaving a catchup window.
	go func() {
		timer := time.NewTimer(eventCleanupDelay)
		defer timer.Stop()
		select {
		case <-w.stopCh:
			return
		case <-timer.C:
		}
		cleanupCtx, cancelCleanup := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelCleanup()
		if _, err := w.client.Event.Delete().
			Where(event.RunIDEQ(run.ID)).
			Exec(cleanupCtx); err != nil {
			log.Warn("Event cleanup failed", "error", err)
		}
	}()
}

func (w *Worker) setWorking(runID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = WorkerStatusWorking
	w.currentRunID = runID
	w.lastActivity = time.Now()
}

func (w *Worker) setIdle() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = WorkerStatusIdle
	w.currentRunID = ""
	w.lastActivity = time.Now()
}
