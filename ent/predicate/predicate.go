// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptRecord is the predicate function for attemptrecord builders.
type AttemptRecord func(*sql.Selector)

// CaseDoc is the predicate function for casedoc builders.
type CaseDoc func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// MessageEvent is the predicate function for messageevent builders.
type MessageEvent func(*sql.Selector)
