package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FailureRecord holds the schema definition for the FailureRecord entity.
// A classified failure linked to a trace; multiple failures per trace are
// allowed.
type FailureRecord struct {
	ent.Schema
}

// Fields of the FailureRecord.
func (FailureRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("failure_id").
			Unique().
			Immutable(),
		field.String("trace_id").
			Immutable(),
		field.String("tenant_id").
			Immutable(),

		// Classification
		field.Enum("category").
			Values("validation", "execution", "resource", "security", "dependency", "unknown"),
		field.Enum("severity").
			Values("low", "medium", "high", "critical"),
		field.String("subcode").
			Comment("Stable subcode, e.g. F-EXE-TL02"),

		field.Text("message"),
		field.JSON("context", map[string]interface{}{}).
			Optional().
			Comment("Free-form diagnostic context"),

		// Resolution hints
		field.Bool("retryable").
			Default(false),
		field.Bool("escalation_required").
			Default(false),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the FailureRecord.
func (FailureRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("trace", TraceRecord.Type).
			Ref("failures").
			Field("trace_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the FailureRecord.
func (FailureRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("category"),
		index.Fields("subcode"),
	}
}
