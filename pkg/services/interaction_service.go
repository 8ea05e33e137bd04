package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tarsy-labs/agentcore/ent"
	"github.com/tarsy-labs/agentcore/ent/agentexecution"
	"github.com/tarsy-labs/agentcore/ent/llminteraction"
	"github.com/tarsy-labs/agentcore/ent/steprun"
	"github.com/tarsy-labs/agentcore/ent/toolinteraction"
	"github.com/tarsy-labs/agentcore/pkg/models"
)

// InteractionService records LLM and tool interaction detail rows for the
// observability trace view.
type InteractionService struct {
	client *ent.Client
}

// NewInteractionService creates a new InteractionService.
func NewInteractionService(client *ent.Client) *InteractionService {
	return &InteractionService{client: client}
}

// CreateLLMInteraction records one model-router call.
func (s *InteractionService) CreateLLMInteraction(httpCtx context.Context, req models.CreateLLMInteractionRequest) (*ent.LLMInteraction, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if req.ExecutionID == "" {
		return nil, NewValidationError("execution_id", "required")
	}
	if req.ModelName == "" {
		return nil, NewValidationError("model_name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	status := llminteraction.StatusCompleted
	if req.ErrorMessage != nil {
		status = llminteraction.StatusFailed
	}

	builder := s.client.LLMInteraction.Create().
		SetID(uuid.New().String()).
		SetRunID(req.RunID).
		SetStepRunID(req.StepRunID).
		SetExecutionID(req.ExecutionID).
		SetInteractionType(llminteraction.InteractionType(req.InteractionType)).
		SetModelName(req.ModelName).
		SetProvider(req.Provider).
		SetFinishReason(req.FinishReason).
		SetStatus(status)

	if req.InputTokens != nil {
		builder.SetInputTokens(*req.InputTokens)
	}
	if req.OutputTokens != nil {
		builder.SetOutputTokens(*req.OutputTokens)
	}
	if req.DurationMs != nil {
		builder.SetDurationMs(*req.DurationMs)
	}
	if req.ErrorMessage != nil {
		builder.SetErrorMessage(*req.ErrorMessage)
	}

	interaction, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm interaction: %w", err)
	}
	return interaction, nil
}

// CreateToolInteraction records one governed tool execution (including
// denials, which carry status "denied" and a denial reason).
func (s *InteractionService) CreateToolInteraction(httpCtx context.Context, req models.CreateToolInteractionRequest) (*ent.ToolInteraction, error) {
	if req.RunID == "" {
		return nil, NewValidationError("run_id", "required")
	}
	if req.ExecutionID == "" {
		return nil, NewValidationError("execution_id", "required")
	}
	if req.ToolName == "" {
		return nil, NewValidationError("tool_name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.ToolInteraction.Create().
		SetID(uuid.New().String()).
		SetRunID(req.RunID).
		SetStepRunID(req.StepRunID).
		SetExecutionID(req.ExecutionID).
		SetToolName(req.ToolName).
		SetServerID(req.ServerID).
		SetResult(req.Result).
		SetTruncated(req.Truncated).
		SetStatus(toolinteraction.Status(req.Status)).
		SetDenialReason(req.DenialReason)

	if req.Arguments != nil {
		builder.SetArguments(req.Arguments)
	}
	if req.ExitCode != nil {
		builder.SetExitCode(*req.ExitCode)
	}
	if req.DurationMs != nil {
		builder.SetDurationMs(*req.DurationMs)
	}

	interaction, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create tool interaction: %w", err)
	}
	return interaction, nil
}

// GetRunTrace assembles the per-run interaction listing grouped by step
// and agent execution, in creation order.
func (s *InteractionService) GetRunTrace(ctx context.Context, runID string) (*models.RunTraceResponse, error) {
	steps, err := s.client.StepRun.Query().
		Where(steprun.RunIDEQ(runID)).
		Order(ent.Asc(steprun.FieldLayerIndex), ent.Asc(steprun.FieldStepID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list step runs: %w", err)
	}

	resp := &models.RunTraceResponse{Steps: make([]models.StepTraceGroup, 0, len(steps))}
	for _, sr := range steps {
		execs, err := s.client.AgentExecution.Query().
			Where(agentexecution.StepRunIDEQ(sr.ID)).
			Order(ent.Asc(agentexecution.FieldAgentIndex)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list executions: %w", err)
		}

		group := models.StepTraceGroup{StepRunID: sr.ID, StepID: sr.StepID}
		for _, exec := range execs {
			eg := models.ExecutionTraceGroup{ExecutionID: exec.ID, AgentName: exec.AgentName}

			llms, err := s.client.LLMInteraction.Query().
				Where(llminteraction.ExecutionIDEQ(exec.ID)).
				Order(ent.Asc(llminteraction.FieldCreatedAt)).
				All(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to list llm interactions: %w", err)
			}
			for _, li := range llms {
				eg.LLMInteractions = append(eg.LLMInteractions, models.LLMInteractionListItem{
					ID:              li.ID,
					InteractionType: string(li.InteractionType),
					ModelName:       li.ModelName,
					Provider:        li.Provider,
					InputTokens:     li.InputTokens,
					OutputTokens:    li.OutputTokens,
					DurationMs:      li.DurationMs,
					ErrorMessage:    li.ErrorMessage,
					CreatedAt:       li.CreatedAt.Format(time.RFC3339Nano),
				})
			}

			tools, err := s.client.ToolInteraction.Query().
				Where(toolinteraction.ExecutionIDEQ(exec.ID)).
				Order(ent.Asc(toolinteraction.FieldCreatedAt)).
				All(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to list tool interactions: %w", err)
			}
			for _, ti := range tools {
				eg.ToolInteractions = append(eg.ToolInteractions, models.ToolInteractionListItem{
					ID:         ti.ID,
					ToolName:   ti.ToolName,
					ServerID:   ti.ServerID,
					Status:     string(ti.Status),
					DurationMs: ti.DurationMs,
					CreatedAt:  ti.CreatedAt.Format(time.RFC3339Nano),
				})
			}

			group.Executions = append(group.Executions, eg)
		}
		resp.Steps = append(resp.Steps, group)
	}
	return resp, nil
}
