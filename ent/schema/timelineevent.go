package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TimelineEvent holds the schema definition for the TimelineEvent entity.
// User-facing run timeline, streamed to dashboard subscribers in real time.
type TimelineEvent struct {
	ent.Schema
}

// Fields of the TimelineEvent.
func (TimelineEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("step_run_id").
			Immutable().
			Comment("Step grouping"),
		field.String("execution_id").
			Immutable().
			Comment("Which agent"),

		// Timeline Ordering
		field.Int("sequence_number").
			Comment("Order in timeline"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update (for streaming)"),

		// Event Details
		//
		// Event types and their semantics:
		//   llm_response     — assistant text produced during an iteration
		//                      or as the final answer. Streams while the
		//                      model is producing output.
		//   llm_tool_call    — the model proposed a tool call.
		//                      Metadata: tool_name, arguments.
		//   tool_result      — a governed tool execution finished.
		//                      Metadata: tool_name, server_id, status.
		//   governance_denial— a proposed call was denied pre-execution.
		//                      Metadata: tool_name, reason.
		//   autonomy_event   — budget warning, escalation, or stop.
		//   step_transition  — a workflow step changed state.
		//   final_answer     — the agent's terminal output for its step.
		field.Enum("event_type").
			Values(
				"llm_response",
				"llm_tool_call",
				"tool_result",
				"governance_denial",
				"autonomy_event",
				"step_transition",
				"final_answer",
			),
		field.Enum("status").
			Values("streaming", "completed", "failed", "cancelled", "timed_out").
			Default("streaming"),
		field.Text("content").
			Comment("Event content (grows during streaming, updateable on completion)"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Type-specific data (tool_name, server_id, etc.)"),

		// Debug Links (set on completion)
		field.String("llm_interaction_id").
			Optional().
			Nillable(),
		field.String("tool_interaction_id").
			Optional().
			Nillable(),
	}
}

// Edges of the TimelineEvent.
func (TimelineEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("timeline_events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("step_run", StepRun.Type).
			Ref("timeline_events").
			Field("step_run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("agent_execution", AgentExecution.Type).
			Ref("timeline_events").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
		edge.From("llm_interaction", LLMInteraction.Type).
			Ref("timeline_events").
			Field("llm_interaction_id").
			Unique(),
		edge.From("tool_interaction", ToolInteraction.Type).
			Ref("timeline_events").
			Field("tool_interaction_id").
			Unique(),
	}
}

// Indexes of the TimelineEvent.
func (TimelineEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "sequence_number"),
		index.Fields("step_run_id", "sequence_number"),
		index.Fields("execution_id", "sequence_number"),
		index.Fields("id"),
		index.Fields("created_at"),
	}
}
