package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/ent/workflowrun"
	"github.com/tarsy-labs/agentcore/pkg/config"
	"github.com/tarsy-labs/agentcore/pkg/models"
)

// RunService manages workflow run lifecycle.
type RunService struct {
	client    *ent.Client
	workflows *config.WorkflowRegistry
}

// NewRunService creates a new RunService.
func NewRunService(client *ent.Client, workflows *config.WorkflowRegistry) *RunService {
	return &RunService{client: client, workflows: workflows}
}

// SubmitRun creates a new workflow run in the pending state. The referenced
// workflow definition must exist; version is snapshotted at submission time.
func (s *RunService) SubmitRun(httpCtx context.Context, req models.SubmitRunRequest) (*ent.WorkflowRun, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if req.TenantID == "" {
		return nil, NewValidationError("tenant_id", "required")
	}
	if req.WorkflowName == "" {
		return nil, NewValidationError("workflow_name", "required")
	}

	wf, err := s.workflows.Get(req.WorkflowName)
	if err != nil {
		return nil, NewValidationError("workflow_name", fmt.Sprintf("unknown workflow %q", req.WorkflowName))
	}

	trigger := workflowrun.TriggerManual
	if req.Trigger != "" {
		trigger = workflowrun.Trigger(req.Trigger)
	}

	// Use background context with timeout for the critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.WorkflowRun.Create().
		SetID(req.RunID).
		SetTenantID(req.TenantID).
		SetWorkflowName(req.WorkflowName).
		SetWorkflowVersion(wf.Version).
		SetTrigger(trigger).
		SetStatus(workflowrun.StatusPending).
		SetCreatedAt(time.Now())

	if req.Inputs != nil {
		builder.SetInputs(req.Inputs)
	}
	if req.Author != "" {
		builder.SetAuthor(req.Author)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return run, nil
}

// GetRun retrieves a run by ID with optional edge loading.
func (s *RunService) GetRun(ctx context.Context, runID string, withEdges bool) (*ent.WorkflowRun, error) {
	query := s.client.WorkflowRun.Query().Where(workflowrun.IDEQ(runID))

	if withEdges {
		query = query.WithStepRuns(func(q *ent.StepRunQuery) {
			q.WithAgentExecutions()
		})
	}

	run, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns lists runs with filtering and pagination.
func (s *RunService) ListRuns(ctx context.Context, filters models.RunFilters) (*models.RunListResponse, error) {
	query := s.client.WorkflowRun.Query()

	if filters.TenantID != "" {
		query = query.Where(workflowrun.TenantIDEQ(filters.TenantID))
	}
	if filters.Status != "" {
		query = query.Where(workflowrun.StatusEQ(workflowrun.Status(filters.Status)))
	}
	if filters.WorkflowName != "" {
		query = query.Where(workflowrun.WorkflowNameEQ(filters.WorkflowName))
	}
	if filters.Author != "" {
		query = query.Where(workflowrun.AuthorEQ(filters.Author))
	}
	if filters.StartedAfter != nil {
		query = query.Where(workflowrun.CreatedAtGTE(*filters.StartedAfter))
	}
	if filters.StartedBefore != nil {
		query = query.Where(workflowrun.CreatedAtLT(*filters.StartedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(workflowrun.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count runs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	runs, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(workflowrun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	return &models.RunListResponse{
		Runs:       runs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateRunStatus updates a run's status, stamping completed_at and
// duration on terminal states.
func (s *RunService) UpdateRunStatus(ctx context.Context, runID string, status workflowrun.Status, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	run, err := s.client.WorkflowRun.Get(writeCtx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load run: %w", err)
	}

	update := run.Update().
		SetStatus(status).
		SetLastInteractionAt(time.Now())

	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}

	switch status {
	case workflowrun.StatusCompleted,
		workflowrun.StatusFailed,
		workflowrun.StatusCancelled,
		workflowrun.StatusTimedOut:
		now := time.Now()
		update = update.SetCompletedAt(now)
		if run.StartedAt != nil {
			update = update.SetDurationMs(int(now.Sub(*run.StartedAt).Milliseconds()))
		}
	}

	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to update run status: %w", err)
	}
	return nil
}

// SetRunOutputs records the workflow's final output map.
func (s *RunService) SetRunOutputs(ctx context.Context, runID string, outputs map[string]any) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.WorkflowRun.UpdateOneID(runID).
		SetOutputs(outputs).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set run outputs: %w", err)
	}
	return nil
}

// ClaimNextPendingRun atomically claims a pending run for a worker.
// Note: simple conditional-update claim. Under very high contention,
// UPDATE ... FOR UPDATE SKIP LOCKED via raw SQL would reduce retries.
func (s *RunService) ClaimNextPendingRun(ctx context.Context, podID string) (*ent.WorkflowRun, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	run, err := tx.WorkflowRun.Query().
		Where(workflowrun.StatusEQ(workflowrun.StatusPending)).
		Order(ent.Asc(workflowrun.FieldCreatedAt)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // no pending runs
		}
		return nil, fmt.Errorf("failed to query pending run: %w", err)
	}

	now := time.Now()
	count, err := tx.WorkflowRun.Update().
		Where(
			workflowrun.IDEQ(run.ID),
			workflowrun.StatusEQ(workflowrun.StatusPending),
		).
		SetStatus(workflowrun.StatusInProgress).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim run: %w", err)
	}
	if count == 0 {
		// Another worker claimed it between the query and the update.
		return nil, nil
	}

	run, err = tx.WorkflowRun.Get(claimCtx, run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return run, nil
}

// CountActiveRuns returns the number of in-progress runs across all pods.
func (s *RunService) CountActiveRuns(ctx context.Context) (int, error) {
	count, err := s.client.WorkflowRun.Query().
		Where(workflowrun.StatusEQ(workflowrun.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active runs: %w", err)
	}
	return count, nil
}

// TouchRun refreshes last_interaction_at so the orphan sweep leaves the
// run alone while its worker is alive.
func (s *RunService) TouchRun(ctx context.Context, runID string) error {
	return s.client.WorkflowRun.UpdateOneID(runID).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
}

// FindOrphanedRuns finds runs stuck in-progress past the timeout.
func (s *RunService) FindOrphanedRuns(ctx context.Context, timeoutDuration time.Duration) ([]*ent.WorkflowRun, error) {
	threshold := time.Now().Add(-timeoutDuration)

	runs, err := s.client.WorkflowRun.Query().
		Where(
			workflowrun.StatusEQ(workflowrun.StatusInProgress),
			workflowrun.LastInteractionAtNotNil(),
			workflowrun.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned runs: %w", err)
	}
	return runs, nil
}

// SoftDeleteOldRuns soft deletes runs whose completion is past retention.
func (s *RunService) SoftDeleteOldRuns(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.WorkflowRun.Update().
		Where(
			workflowrun.CompletedAtLT(cutoff),
			workflowrun.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete runs: %w", err)
	}
	return count, nil
}

// RestoreRun restores a soft-deleted run.
func (s *RunService) RestoreRun(ctx context.Context, runID string) error {
	restoreCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.WorkflowRun.UpdateOneID(runID).
		ClearDeletedAt().
		Exec(restoreCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to restore run: %w", err)
	}
	return nil
}

// SearchRuns performs full-text search over run error messages via the
// timeline content GIN index.
func (s *RunService) SearchRuns(ctx context.Context, query string, limit int) ([]*ent.WorkflowRun, error) {
	if limit <= 0 {
		limit = 20
	}

	runs, err := s.client.WorkflowRun.Query().
		Where(workflowrun.DeletedAtIsNil()).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.ExprP(
				"to_tsvector('english', COALESCE(error_message, '')) @@ plainto_tsquery($1)", query))
		}).
		Limit(limit).
		Order(ent.Desc(workflowrun.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search runs: %w", err)
	}
	return runs, nil
}
