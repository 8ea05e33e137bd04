package events

// TimelineCreatedPayload is the payload for timeline_event.created events.
// Published when a new timeline event is created (streaming or completed).
type TimelineCreatedPayload struct {
	Type           string         `json:"type"`                   // always EventTypeTimelineCreated
	EventID        string         `json:"event_id"`               // timeline event UUID
	RunID          string         `json:"run_id"`                 // owning run
	StepRunID      string         `json:"step_run_id,omitempty"`  // owning step run
	ExecutionID    string         `json:"execution_id,omitempty"` // owning agent execution
	EventType      string         `json:"event_type"`             // e.g. "llm_response", "tool_result"
	Status         string         `json:"status"`                 // "streaming" or "completed"
	Content        string         `json:"content"`                // event content (may be empty for streaming)
	Metadata       map[string]any `json:"metadata,omitempty"`
	SequenceNumber int            `json:"sequence_number"` // order in timeline
	Timestamp      string         `json:"timestamp"`       // RFC3339Nano
}

// TimelineCompletedPayload is the payload for timeline_event.completed events.
// Published when a streaming timeline event transitions to a terminal status.
type TimelineCompletedPayload struct {
	Type      string         `json:"type"`                 // always EventTypeTimelineCompleted
	EventID   string         `json:"event_id"`             // timeline event UUID
	EventType string         `json:"event_type,omitempty"` // timeline entry kind, e.g. "llm_response"
	Content   string         `json:"content"`              // final content
	Status    string         `json:"status"`               // "completed" or "failed"
	Metadata  map[string]any `json:"metadata,omitempty"`
	Timestamp string         `json:"timestamp"` // RFC3339Nano
}

// StreamChunkPayload is the payload for stream.chunk transient events.
// Published for each streaming token — high frequency, ephemeral.
type StreamChunkPayload struct {
	Type      string `json:"type"`      // always EventTypeStreamChunk
	EventID   string `json:"event_id"`  // parent timeline event UUID
	Delta     string `json:"delta"`     // incremental text chunk
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// RunStatusPayload is the payload for run.status events.
// Published when a run transitions between lifecycle states.
type RunStatusPayload struct {
	Type      string `json:"type"`      // always EventTypeRunStatus
	RunID     string `json:"run_id"`    // run UUID
	Status    string `json:"status"`    // new status (e.g. "in_progress", "completed")
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// StepStatusPayload is the payload for step.status events.
// Single event type for all step lifecycle transitions.
type StepStatusPayload struct {
	Type       string `json:"type"`                  // always EventTypeStepStatus
	RunID      string `json:"run_id"`                // run UUID
	StepRunID  string `json:"step_run_id,omitempty"` // may be empty on "started" if row creation hasn't happened yet
	StepID     string `json:"step_id"`               // step slug from the workflow definition
	LayerIndex int    `json:"layer_index"`           // scheduler layer, 0-based
	Status     string `json:"status"`                // started, completed, failed, timed_out, cancelled, skipped
	Timestamp  string `json:"timestamp"`             // RFC3339Nano
}

// InteractionCreatedPayload is the payload for interaction.created events.
// Fired when an LLM or tool interaction record is saved to the database.
type InteractionCreatedPayload struct {
	Type            string `json:"type"`             // always EventTypeInteractionCreated
	RunID           string `json:"run_id"`           // owning run
	InteractionID   string `json:"interaction_id"`   // detail row UUID
	InteractionKind string `json:"interaction_kind"` // "llm" or "tool"
	Timestamp       string `json:"timestamp"`        // RFC3339Nano
}

// RunProgressPayload is the payload for run.progress transient events.
// Published to the global runs channel for the active-runs panel.
type RunProgressPayload struct {
	Type           string `json:"type"`   // always EventTypeRunProgress
	RunID          string `json:"run_id"` // run UUID
	CompletedSteps int    `json:"completed_steps"`
	TotalSteps     int    `json:"total_steps"`
	Timestamp      string `json:"timestamp"` // RFC3339Nano
}

// ExecutionProgressPayload is the payload for execution.progress transient
// events. Published to the run channel for per-agent progress display.
type ExecutionProgressPayload struct {
	Type        string `json:"type"`         // always EventTypeExecutionProgress
	RunID       string `json:"run_id"`       // run UUID
	ExecutionID string `json:"execution_id"` // agent execution UUID
	Iteration   int    `json:"iteration"`    // current reasoning-loop iteration
	ToolCalls   int    `json:"tool_calls"`   // tool calls so far
	Timestamp   string `json:"timestamp"`    // RFC3339Nano
}
