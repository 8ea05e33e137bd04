package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentExecution holds the schema definition for the AgentExecution entity.
// Represents one agent invocation inside a step run (invoke-agent steps may
// fan out to several).
type AgentExecution struct {
	ent.Schema
}

// Fields of the AgentExecution.
func (AgentExecution) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("execution_id").
			Unique().
			Immutable(),
		field.String("step_run_id").
			Immutable(),
		field.String("run_id").
			Immutable().
			Comment("Denormalized for performance"),

		// Agent Details
		field.String("agent_name"),
		field.String("agent_role").
			Comment("Canonical role from the agent definition"),
		field.String("model").
			Comment("Model identifier actually used (for observability)"),
		field.Int("agent_index").
			Comment("1 for single, 1-N for parallel"),

		// Execution Status & Timing
		field.Enum("status").
			Values("pending", "active", "completed", "failed", "cancelled", "timed_out").
			Default("pending"),
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

		// Loop outcome
		field.String("termination_reason").
			Optional().
			Comment("completed, max_iterations, budget_exceeded, ..."),
		field.Int("iterations").
			Default(0),
		field.Int("tool_calls").
			Default(0),
	}
}

// Edges of the AgentExecution.
func (AgentExecution) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("step_run", StepRun.Type).
			Ref("agent_executions").
			Field("step_run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("run", WorkflowRun.Type).
			Ref("agent_executions").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("timeline_events", TimelineEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("llm_interactions", LLMInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("tool_interactions", ToolInteraction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the AgentExecution.
func (AgentExecution) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("step_run_id", "agent_index").
			Unique(),
		index.Fields("id"),
		index.Fields("run_id"),
	}
}
