package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GateReport holds the schema definition for the GateReport entity.
// One row per gate evaluation: which gate ran, against which release,
// the metric values seen, and the per-threshold verdicts.
type GateReport struct {
	ent.Schema
}

// Fields of the GateReport.
func (GateReport) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("release_id").
			Optional().
			Comment("Release candidate this evaluation gates, when applicable"),

		field.String("gate").
			Comment("G-PR, G-MRG, G-REL, or G-MON"),
		field.Enum("overall").
			Values("pass", "warn", "fail"),

		field.JSON("metrics", map[string]interface{}{}).
			Comment("Metric ID -> observed value"),
		field.JSON("threshold_results", []map[string]interface{}{}).
			Optional().
			Comment("Per-threshold evaluation details"),
		field.JSON("task_results", []map[string]interface{}{}).
			Optional().
			Comment("Canonical task outcomes considered"),
		field.JSON("regressions", []map[string]interface{}{}).
			Optional().
			Comment("Regression indicators raised against the baseline"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the GateReport.
func (GateReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("gate"),
		index.Fields("release_id"),
	}
}
