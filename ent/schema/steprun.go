package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StepRun holds the schema definition for the StepRun entity.
// Represents one workflow step's execution within a run, including retries.
type StepRun struct {
	ent.Schema
}

// Fields of the StepRun.
func (StepRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_run_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),

		// Step identity within the workflow definition
		field.String("step_id").
			Comment("Slug from the workflow definition"),
		field.Int("layer_index").
			Comment("Parallel layer the scheduler placed this step in"),
		field.String("action").
			Comment("invoke-agent, run-command, validate, transform, conditional, parallel-group, wait, execute-code"),

		// Execution Status & Timing
		field.Enum("status").
			Values("pending", "active", "completed", "failed", "skipped", "cancelled", "timed_out").
			Default("pending"),
		field.Int("attempts").
			Default(0).
			Comment("Attempts consumed, bounded by retry.max_attempts"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),

		// Resolved IO
		field.JSON("inputs", map[string]interface{}{}).
			Optional().
			Comment("Inputs after reference resolution"),
		field.JSON("outputs", map[string]interface{}{}).
			Optional().
			Comment("Outputs published for downstream steps"),
	}
}

// Edges of the StepRun.
func (StepRun) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("step_runs").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("agent_executions", AgentExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("timeline_events", TimelineEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("llm_interactions", LLMInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tool_interactions", ToolInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the StepRun.
func (StepRun) Indexes() []ent.Index {
	return []ent.Index{
		// A step executes once per run
		index.Fields("run_id", "step_id").
			Unique(),
		index.Fields("id"),
	}
}
