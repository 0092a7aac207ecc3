package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptRecord stores one sealed attempt: a student's scored run
// through a case. Rows are written once at finalize time and never
// updated.
type AttemptRecord struct {
	ent.Schema
}

func (AttemptRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			Unique().
			Immutable(),
		field.String("student_id").
			Immutable(),
		field.String("case_id").
			Immutable(),
		field.Int("attempt_number").
			Immutable().
			Comment("1-based, strictly increasing per student+case, never reused"),
		field.Time("started_at").
			Immutable(),
		field.Int("total_messages").
			Default(0),
		field.Int("total_time_seconds").
			Default(0),
		field.JSON("node_path", []string{}).
			Optional(),
		field.Int("score").
			Optional().
			Nillable().
			Comment("Nil for abandoned attempts"),
		field.JSON("score_breakdown", map[string]int{}).
			Optional().
			Comment("Per-objective subscore, 0-100"),
		field.Bool("is_passing").
			Default(false),
		field.Bool("abandoned").
			Default(false),
	}
}

func (AttemptRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "case_id", "attempt_number").Unique(),
		index.Fields("case_id"),
	}
}
