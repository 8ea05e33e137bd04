package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ComparativeSample holds the schema definition for the ComparativeSample
// entity. One observed metric value for one agent, feeding the population
// tracker and Elo comparisons on restart.
type ComparativeSample struct {
	ent.Schema
}

// Fields of the ComparativeSample.
func (ComparativeSample) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("sample_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("agent_name"),
		field.String("metric").
			Comment("e.g. M-01"),
		field.Float("value"),
		field.String("task_id").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ComparativeSample.
func (ComparativeSample) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("metric", "agent_name"),
		index.Fields("tenant_id", "created_at"),
	}
}
