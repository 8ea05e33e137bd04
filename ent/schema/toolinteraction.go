package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ToolInteraction holds the schema definition for the ToolInteraction entity.
// Full technical details for governed tool executions (observability).
type ToolInteraction struct {
	ent.Schema
}

// Fields of the ToolInteraction.
func (ToolInteraction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interaction_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.String("step_run_id").
			Immutable(),
		field.String("execution_id").
			Immutable().
			Comment("Which agent"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		// Call Details
		field.String("tool_name"),
		field.String("server_id").
			Optional().
			Comment("Tool server that provided the tool, when routed"),
		field.JSON("arguments", map[string]interface{}{}).
			Optional(),
		field.Text("result").
			Optional().
			Comment("Tool output after masking and truncation"),
		field.Bool("truncated").
			Default(false),
		field.Int("exit_code").
			Optional().
			Nillable().
			Comment("For run-command and execute-code calls"),

		field.Enum("status").
			Values("pending", "success", "failure", "timeout", "denied", "skipped").
			Default("pending"),
		field.String("denial_reason").
			Optional().
			Comment("Governance denial reason when status is denied"),
		field.Int("duration_ms").
			Optional().
			Nillable(),
	}
}

// Edges of the ToolInteraction.
func (ToolInteraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("tool_interactions").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("step_run", StepRun.Type).
			Ref("tool_interactions").
			Field("step_run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("agent_execution", AgentExecution.Type).
			Ref("tool_interactions").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
		edge.To("timeline_events", TimelineEvent.Type),
	}
}

// Indexes of the ToolInteraction.
func (ToolInteraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "created_at"),
		index.Fields("execution_id", "created_at"),
		index.Fields("tool_name"),
	}
}
