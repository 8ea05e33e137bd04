package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AutonomyBudget holds the schema definition for the AutonomyBudget entity.
// Durable form of an approvable autonomy envelope; the declarative body
// (scope, permissions, limits, stop conditions, escalation) is stored as
// JSON and decoded by the autonomy service.
type AutonomyBudget struct {
	ent.Schema
}

// Fields of the AutonomyBudget.
func (AutonomyBudget) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("budget_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name"),
		field.String("agent_name").
			Optional().
			Comment("Agent this budget applies to, when bound"),

		field.Enum("state").
			Values("draft", "pending_approval", "active", "rejected", "suspended", "expired", "completed").
			Default("draft"),

		field.JSON("spec", map[string]interface{}{}).
			Comment("Scope, file/command/network permissions, limits, stop conditions, escalation"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("approved_at").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.String("approved_by").
			Optional(),
	}
}

// Indexes of the AutonomyBudget.
func (AutonomyBudget) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "name"),
		index.Fields("state"),
		index.Fields("agent_name"),
	}
}
