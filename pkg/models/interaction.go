package models

// CreateLLMInteractionRequest contains fields for creating an LLM interaction.
type CreateLLMInteractionRequest struct {
	RunID           string  `json:"run_id"`
	StepRunID       string  `json:"step_run_id"`
	ExecutionID     string  `json:"execution_id"`
	InteractionType string  `json:"interaction_type"` // "iteration", "final_answer", "summarization", "scoring"
	ModelName       string  `json:"model_name"`
	Provider        string  `json:"provider"`
	FinishReason    string  `json:"finish_reason,omitempty"`
	InputTokens     *int    `json:"input_tokens,omitempty"`
	OutputTokens    *int    `json:"output_tokens,omitempty"`
	DurationMs      *int    `json:"duration_ms,omitempty"`
	ErrorMessage    *string `json:"error_message,omitempty"`
}

// CreateToolInteractionRequest contains fields for creating a tool interaction.
type CreateToolInteractionRequest struct {
	RunID        string         `json:"run_id"`
	StepRunID    string         `json:"step_run_id"`
	ExecutionID  string         `json:"execution_id"`
	ToolName     string         `json:"tool_name"`
	ServerID     string         `json:"server_id,omitempty"`
	Arguments    map[string]any `json:"arguments,omitempty"`
	Result       string         `json:"result,omitempty"`
	Truncated    bool           `json:"truncated,omitempty"`
	ExitCode     *int           `json:"exit_code,omitempty"`
	Status       string         `json:"status"`
	DenialReason string         `json:"denial_reason,omitempty"`
	DurationMs   *int           `json:"duration_ms,omitempty"`
}

// LLMInteractionListItem contains metadata for the collapsed trace list view.
type LLMInteractionListItem struct {
	ID              string  `json:"id"`
	InteractionType string  `json:"interaction_type"`
	ModelName       string  `json:"model_name"`
	Provider        string  `json:"provider"`
	InputTokens     *int    `json:"input_tokens,omitempty"`
	OutputTokens    *int    `json:"output_tokens,omitempty"`
	DurationMs      *int    `json:"duration_ms,omitempty"`
	ErrorMessage    *string `json:"error_message,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// ToolInteractionListItem contains metadata for the collapsed trace list view.
type ToolInteractionListItem struct {
	ID         string `json:"id"`
	ToolName   string `json:"tool_name"`
	ServerID   string `json:"server_id,omitempty"`
	Status     string `json:"status"`
	DurationMs *int   `json:"duration_ms,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// ExecutionTraceGroup contains interactions for one agent execution.
type ExecutionTraceGroup struct {
	ExecutionID      string                   `json:"execution_id"`
	AgentName        string                   `json:"agent_name"`
	LLMInteractions  []LLMInteractionListItem `json:"llm_interactions"`
	ToolInteractions []ToolInteractionListItem `json:"tool_interactions"`
}

// StepTraceGroup contains executions for one workflow step.
type StepTraceGroup struct {
	StepRunID  string                `json:"step_run_id"`
	StepID     string                `json:"step_id"`
	Executions []ExecutionTraceGroup `json:"executions"`
}

// RunTraceResponse is the per-run interaction trace listing.
type RunTraceResponse struct {
	Steps []StepTraceGroup `json:"steps"`
}
