package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMInteraction holds the schema definition for the LLMInteraction entity.
// Full technical details for model-router calls (observability).
type LLMInteraction struct {
	ent.Schema
}

// Fields of the LLMInteraction.
func (LLMInteraction) Fields() []ent.Field {
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

		// Interaction Details
		field.Enum("interaction_type").
			Values("iteration", "final_answer", "summarization", "scoring"),
		field.String("model_name"),
		field.String("provider").
			Comment("Provider resolved from the model prefix"),
		field.String("finish_reason").
			Optional(),

		// Usage accounting
		field.Int("input_tokens").
			Optional().
			Nillable(),
		field.Int("output_tokens").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),

		field.Enum("status").
			Values("pending", "completed", "failed", "timed_out").
			Default("pending"),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the LLMInteraction.
func (LLMInteraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("llm_interactions").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("step_run", StepRun.Type).
			Ref("llm_interactions").
			Field("step_run_id").
			Unique().
			Required().
			Immutable(),
		edge.From("agent_execution", AgentExecution.Type).
			Ref("llm_interactions").
			Field("execution_id").
			Unique().
			Required().
			Immutable(),
		edge.To("timeline_events", TimelineEvent.Type),
	}
}

// Indexes of the LLMInteraction.
func (LLMInteraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id", "created_at"),
		index.Fields("execution_id", "created_at"),
	}
}
