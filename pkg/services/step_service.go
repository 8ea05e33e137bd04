package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/ent/agentexecution"
	"github.com/tarsy-labs/agentcore/ent/steprun"
	"github.com/tarsy-labs/agentcore/pkg/models"
)

// StepService manages step runs and the agent executions inside them.
type StepService struct {
	client *ent.Client
}

// NewStepService creates a new StepService.
func NewStepService(client *ent.Client) *StepService {
	return &StepService{client: client}
}

// CreateStepRun creates a pending step run.
func (s *StepService) CreateStepRun(httpCtx context.Context, req models.CreateStepRunRequest) (*ent.StepRun, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if req.StepID == "" {
		return nil, NewValidationError("step_id", "required")
	}
	if req.Action == "" {
		return nil, NewValidationError("action", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sr, err := s.client.StepRun.Create().
		SetID(uuid.New().String()).
		SetRunID(req.RunID).
		SetStepID(req.StepID).
		SetLayerIndex(req.LayerIndex).
		SetAction(req.Action).
		SetStatus(steprun.StatusPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create step run: %w", err)
	}
	return sr, nil
}

// StartStepRun marks a step run active and counts an attempt.
func (s *StepService) StartStepRun(ctx context.Context, stepRunID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.StepRun.UpdateOneID(stepRunID).
		SetStatus(steprun.StatusActive).
		SetStartedAt(time.Now()).
		AddAttempts(1).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to start step run: %w", err)
	}
	return nil
}

// CompleteStepRun stamps the terminal status, duration, and outputs.
func (s *StepService) CompleteStepRun(ctx context.Context, stepRunID string, status steprun.Status, outputs map[string]any, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sr, err := s.client.StepRun.Get(writeCtx, stepRunID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load step run: %w", err)
	}

	now := time.Now()
	update := sr.Update().
		SetStatus(status).
		SetCompletedAt(now)

	if sr.StartedAt != nil {
		update = update.SetDurationMs(int(now.Sub(*sr.StartedAt).Milliseconds()))
	}
	if outputs != nil {
		update = update.SetOutputs(outputs)
	}
	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}

	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to complete step run: %w", err)
	}
	return nil
}

// SetStepInputs records the step's resolved inputs for observability.
func (s *StepService) SetStepInputs(ctx context.Context, stepRunID string, inputs map[string]any) error {
	return s.client.StepRun.UpdateOneID(stepRunID).
		SetInputs(inputs).
		Exec(ctx)
}

// GetStepRuns returns a run's step runs in layer order.
func (s *StepService) GetStepRuns(ctx context.Context, runID string) ([]*ent.StepRun, error) {
	steps, err := s.client.StepRun.Query().
		Where(steprun.RunIDEQ(runID)).
		Order(ent.Asc(steprun.FieldLayerIndex), ent.Asc(steprun.FieldStepID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list step runs: %w", err)
	}
	return steps, nil
}

// CreateAgentExecution creates a pending agent execution inside a step run.
func (s *StepService) CreateAgentExecution(httpCtx context.Context, req models.CreateAgentExecutionRequest) (*ent.AgentExecution, error) {
	if req.StepRunID == "" {
		return nil, NewValidationError("step_run_id", "required")
	}
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if req.AgentName == "" {
		return nil, NewValidationError("agent_name", "required")
	}
	if req.AgentIndex < 1 {
		return nil, NewValidationError("agent_index", "must be >= 1")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exec, err := s.client.AgentExecution.Create().
		SetID(uuid.New().String()).
		SetStepRunID(req.StepRunID).
		SetRunID(req.RunID).
		SetAgentName(req.AgentName).
		SetAgentRole(req.AgentRole).
		SetModel(req.Model).
		SetAgentIndex(req.AgentIndex).
		SetStatus(agentexecution.StatusPending).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create agent execution: %w", err)
	}
	return exec, nil
}

// StartAgentExecution marks an execution active.
func (s *StepService) StartAgentExecution(ctx context.Context, executionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.AgentExecution.UpdateOneID(executionID).
		SetStatus(agentexecution.StatusActive).
		SetStartedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to start agent execution: %w", err)
	}
	return nil
}

// UpdateAgentStatus applies a terminal or intermediate status plus loop
// counters to an execution.
func (s *StepService) UpdateAgentStatus(ctx context.Context, executionID string, req models.UpdateAgentStatusRequest) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exec, err := s.client.AgentExecution.Get(writeCtx, executionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load agent execution: %w", err)
	}

	status := agentexecution.Status(req.Status)
	update := exec.Update().SetStatus(status)

	if req.TerminationReason != "" {
		update = update.SetTerminationReason(req.TerminationReason)
	}
	if req.Iterations > 0 {
		update = update.SetIterations(req.Iterations)
	}
	if req.ToolCalls > 0 {
		update = update.SetToolCalls(req.ToolCalls)
	}
	if req.ErrorMessage != "" {
		update = update.SetErrorMessage(req.ErrorMessage)
	}

	switch status {
	case agentexecution.StatusCompleted,
		agentexecution.StatusFailed,
		agentexecution.StatusCancelled,
		agentexecution.StatusTimedOut:
		now := time.Now()
		update = update.SetCompletedAt(now)
		if exec.StartedAt != nil {
			update = update.SetDurationMs(int(now.Sub(*exec.StartedAt).Milliseconds()))
		}
	}

	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to update agent execution: %w", err)
	}
	return nil
}

// GetAgentExecutions returns a step run's executions in agent-index order.
func (s *StepService) GetAgentExecutions(ctx context.Context, stepRunID string) ([]*ent.AgentExecution, error) {
	execs, err := s.client.AgentExecution.Query().
		Where(agentexecution.StepRunIDEQ(stepRunID)).
		Order(ent.Asc(agentexecution.FieldAgentIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent executions: %w", err)
	}
	return execs, nil
}
