package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Transient pub/sub rows backing NOTIFY/LISTEN catchup: clients that
// reconnect replay events they missed by last-seen ID. Rows are pruned by
// per-run cleanup plus a TTL sweep.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Unique().
			Immutable().
			Comment("Serial; clients use it as a catchup cursor"),
		field.String("channel").
			Comment("Logical channel, e.g. runs or run:<id>"),
		field.String("run_id").
			Optional().
			Comment("Owning run, empty for global channels"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", WorkflowRun.Type).
			Ref("events").
			Field("run_id").
			Unique(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("created_at"),
	}
}
