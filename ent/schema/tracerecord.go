package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TraceRecord holds the schema definition for the TraceRecord entity.
// Durable form of an execution trace: correlators, outcome, and the full
// step/action list as JSON. The in-memory collector owns a trace until
// completion; completed traces are flushed here.
type TraceRecord struct {
	ent.Schema
}

// Fields of the TraceRecord.
func (TraceRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trace_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("task_id").
			Optional(),
		field.String("session_id").
			Optional(),
		field.String("run_id").
			Immutable(),

		// Agent context
		field.String("agent_id"),
		field.String("agent_role"),
		field.String("model"),

		field.Enum("status").
			Values("running", "completed", "failed", "timeout", "cancelled").
			Default("running"),
		field.String("failure_code").
			Optional().
			Comment("Taxonomy subcode, e.g. F-EXE-TL02"),
		field.String("failure_message").
			Optional(),
		field.String("failure_category").
			Optional().
			Comment("validation, execution, resource, security, dependency, unknown"),

		field.Time("started_at"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("duration_ms").
			Optional().
			Nillable(),

		field.JSON("steps", []map[string]interface{}{}).
			Optional().
			Comment("Ordered steps, each with its ordered action list"),
	}
}

// Edges of the TraceRecord.
func (TraceRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("traces").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
		edge.To("failures", FailureRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TraceRecord.
func (TraceRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "started_at"),
		index.Fields("status"),
		index.Fields("task_id"),
	}
}
