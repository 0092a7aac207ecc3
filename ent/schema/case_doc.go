package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CaseDoc stores one version of an authored case as a JSON document.
// Published versions are immutable; edits create a new row with a
// bumped version.
type CaseDoc struct {
	ent.Schema
}

func (CaseDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("case_id").
			Comment("Author-visible case identifier"),
		field.Int("version").
			Comment("Effective version, bumped on publish"),
		field.String("title"),
		field.String("status").
			Comment("draft, published, or archived"),
		field.JSON("data", map[string]any{}).
			Comment("Full case document: nodes, edges, objectives, guardrails"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (CaseDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id", "version").Unique(),
		index.Fields("status"),
	}
}
