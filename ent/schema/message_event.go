package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MessageEvent records one transcript message of a live session.
type MessageEvent struct {
	ent.Schema
}

func (MessageEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MessageEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id"),
		field.String("attempt_id").
			Default(""),
		field.String("role").
			Comment("user or assistant"),
		field.Text("content"),
		field.String("node_id").
			Default("").
			Comment("Node that produced the message; empty for guardrail substitutes"),
	}
}

func (MessageEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("attempt_id"),
	}
}
