package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/ent/agentexecution"
	"github.com/tarsy-labs/agentcore/ent/steprun"
	"github.com/tarsy-labs/agentcore/ent/workflowrun"
)

// orphanState tracks orphan sweep metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanSweep periodically scans for orphaned runs.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanSweep(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan sweep failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress runs with stale heartbeats
// and marks them timed_out (terminal state).
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanTimeout)

	orphans, err := p.client.WorkflowRun.Query().
		Where(
			workflowrun.StatusEQ(workflowrun.StatusInProgress),
			workflowrun.LastInteractionAtNotNil(),
			workflowrun.LastInteractionAtLT(threshold),
			workflowrun.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned runs: %w", err)
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.mu.Unlock()

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Detected orphaned runs", "count", len(orphans))

	recovered := 0
	for _, run := range orphans {
		if err := p.recoverOrphanedRun(ctx, run); err != nil {
			slog.Error("Failed to recover orphaned run",
				"run_id", run.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedRun marks a run timed_out and closes its open steps and
// executions. Conditional on the run still being in_progress so a revived
// worker's writes are never clobbered.
func (p *WorkerPool) recoverOrphanedRun(ctx context.Context, run *ent.WorkflowRun) error {
	now := time.Now()

	count, err := p.client.WorkflowRun.Update().
		Where(
			workflowrun.IDEQ(run.ID),
			workflowrun.StatusEQ(workflowrun.StatusInProgress),
		).
		SetStatus(workflowrun.StatusTimedOut).
		SetCompletedAt(now).
		SetErrorMessage("run orphaned: worker heartbeat lost").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark run timed_out: %w", err)
	}
	if count == 0 {
		return nil // run moved on; nothing to recover
	}

	// Close any step runs and executions left open by the dead worker.
	_, err = p.client.StepRun.Update().
		Where(
			steprun.RunIDEQ(run.ID),
			steprun.StatusIn(steprun.StatusPending, steprun.StatusActive),
		).
		SetStatus(steprun.StatusTimedOut).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to close orphaned step runs: %w", err)
	}

	_, err = p.client.AgentExecution.Update().
		Where(
			agentexecution.RunIDEQ(run.ID),
			agentexecution.StatusIn(agentexecution.StatusPending, agentexecution.StatusActive),
		).
		SetStatus(agentexecution.StatusTimedOut).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to close orphaned executions: %w", err)
	}

	slog.Info("Recovered orphaned run", "run_id", run.ID)
	return nil
}
