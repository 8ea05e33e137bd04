package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WorkflowRun holds the schema definition for the WorkflowRun entity.
// One row per submitted workflow execution, from intake to terminal state.
type WorkflowRun struct {
	ent.Schema
}

// Fields of the WorkflowRun.
func (WorkflowRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable().
			Comment("Owning tenant"),
		field.String("workflow_name").
			Comment("Workflow definition name (live lookup, no snapshot)"),
		field.String("workflow_version").
			Optional().
			Comment("Semver of the definition at submission time"),
		field.Enum("trigger").
			Values("manual", "on_change", "schedule", "on_event").
			Default("manual"),
		field.JSON("inputs", map[string]interface{}{}).
			Optional().
			Comment("Tenant-scoped input map"),
		field.JSON("outputs", map[string]interface{}{}).
			Optional().
			Comment("Workflow outputs, keyed per output parameter"),
		field.Enum("status").
			Values("pending", "in_progress", "cancelling", "completed", "failed", "cancelled", "timed_out").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the run was submitted"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the run (pending -> in_progress)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("author").
			Optional().
			Nillable().
			Comment("Submitting identity, when known"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the WorkflowRun.
func (WorkflowRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("step_runs", StepRun.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_executions", AgentExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("timeline_events", TimelineEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("llm_interactions", LLMInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tool_interactions", ToolInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("traces", TraceRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the WorkflowRun.
func (WorkflowRun) Indexes() []ent.Index {
	return []ent.Index{
		// Queue claiming: pending runs ordered by age
		index.Fields("status", "created_at"),
		// Tenant-scoped listings
		index.Fields("tenant_id", "created_at"),
		// Orphan detection sweep
		index.Fields("status", "last_interaction_at"),
	}
}
