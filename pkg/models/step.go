package models

import "github.com/tarsy-labs/agentcore/ent"

// CreateStepRunRequest contains fields for creating a new step run.
type CreateStepRunRequest struct {
	RunID      string `json:"run_id"`
	StepID     string `json:"step_id"`
	LayerIndex int    `json:"layer_index"`
	Action     string `json:"action"`
}

// CreateAgentExecutionRequest contains fields for creating a new agent execution.
type CreateAgentExecutionRequest struct {
	StepRunID  string `json:"step_run_id"`
	RunID      string `json:"run_id"`
	AgentName  string `json:"agent_name"`
	AgentRole  string `json:"agent_role"`
	Model      string `json:"model"`
	AgentIndex int    `json:"agent_index"`
}

// UpdateAgentStatusRequest contains fields for updating agent execution status.
type UpdateAgentStatusRequest struct {
	Status            string `json:"status"`
	TerminationReason string `json:"termination_reason,omitempty"`
	Iterations        int    `json:"iterations,omitempty"`
	ToolCalls         int    `json:"tool_calls,omitempty"`
	ErrorMessage      string `json:"error_message,omitempty"`
}

// StepRunResponse wraps a StepRun with optional loaded edges.
type StepRunResponse struct {
	*ent.StepRun
}

// AgentExecutionResponse wraps an AgentExecution with optional loaded edges.
type AgentExecutionResponse struct {
	*ent.AgentExecution
}
