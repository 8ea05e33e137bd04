// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// ════════════════════════════════════════════════════════════════
// Timeline Event Lifecycle Patterns
// ════════════════════════════════════════════════════════════════
//
// Timeline events follow one of two lifecycle patterns. Clients
// differentiate them by the "status" field in the created payload.
//
// Pattern 1 — STREAMING (status: "streaming"):
//
//	timeline_event.created   {status: "streaming", content: ""}
//	stream.chunk             {delta: "..."}  (repeated, not persisted)
//	timeline_event.completed {status: "completed", content: "full text"}
//
//	The event is created empty while the model is still producing
//	output. Deltas arrive via stream.chunk (transient — lost on
//	reconnect, but the final content is delivered by the completed
//	event). Clients concatenate deltas locally for a live typing effect.
//
//	Event types using this pattern:
//	  - llm_response  (assistant text streams)
//	  - llm_tool_call (tool execution in progress → completed with result)
//
// Pattern 2 — FIRE-AND-FORGET (status: "completed"):
//
//	timeline_event.created   {status: "completed", content: "full text"}
//
//	The event is created with its final content in a single message.
//	There is NO subsequent timeline_event.completed — this IS the
//	terminal state. Clients should render the content immediately.
//
//	Event types using this pattern:
//	  - final_answer      (the agent's terminal output)
//	  - governance_denial (recorded after the decision, never streams)
//	  - autonomy_event    (budget warnings, escalations, stops)
//
// ════════════════════════════════════════════════════════════════
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Timeline event lifecycle — see package doc for the two lifecycle patterns.
	EventTypeTimelineCreated   = "timeline_event.created"
	EventTypeTimelineCompleted = "timeline_event.completed"

	// Run lifecycle
	EventTypeRunStatus = "run.status"

	// Step lifecycle — single event type for all step status transitions
	EventTypeStepStatus = "step.status"

	// Interaction detail rows (LLM / tool) were persisted
	EventTypeInteractionCreated = "interaction.created"
)

// Step lifecycle status values (used in StepStatusPayload.Status).
const (
	StepStatusStarted   = "started"
	StepStatusCompleted = "completed"
	StepStatusFailed    = "failed"
	StepStatusTimedOut  = "timed_out"
	StepStatusCancelled = "cancelled"
	StepStatusSkipped   = "skipped"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// LLM streaming chunks — high-frequency, ephemeral.
	EventTypeStreamChunk = "stream.chunk"

	// Progress ticks for the dashboard's active-runs panel.
	EventTypeRunProgress       = "run.progress"
	EventTypeExecutionProgress = "execution.progress"
)

// GlobalRunsChannel is the channel for run-level status events.
// The run list page subscribes to this for real-time updates.
const GlobalRunsChannel = "runs"

// RunChannel returns the channel name for a specific run's events.
// Format: "run:{run_id}"
func RunChannel(runID string) string {
	return "run:" + runID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "run:abc-123")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
