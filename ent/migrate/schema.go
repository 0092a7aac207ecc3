// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptRecordsColumns holds the columns for the "attempt_records" table.
	AttemptRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "case_id", Type: field.TypeString},
		{Name: "attempt_number", Type: field.TypeInt},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "total_messages", Type: field.TypeInt, Default: 0},
		{Name: "total_time_seconds", Type: field.TypeInt, Default: 0},
		{Name: "node_path", Type: field.TypeJSON, Nullable: true},
		{Name: "score", Type: field.TypeInt, Nullable: true},
		{Name: "score_breakdown", Type: field.TypeJSON, Nullable: true},
		{Name: "is_passing", Type: field.TypeBool, Default: false},
		{Name: "abandoned", Type: field.TypeBool, Default: false},
	}
	// AttemptRecordsTable holds the schema information for the "attempt_records" table.
	AttemptRecordsTable = &schema.Table{
		Name:       "attempt_records",
		Columns:    AttemptRecordsColumns,
		PrimaryKey: []*schema.Column{AttemptRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptrecord_student_id_case_id_attempt_number",
				Unique:  true,
				Columns: []*schema.Column{AttemptRecordsColumns[2], AttemptRecordsColumns[3], AttemptRecordsColumns[4]},
			},
			{
				Name:    "attemptrecord_case_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptRecordsColumns[3]},
			},
		},
	}
	// CaseDocsColumns holds the columns for the "case_docs" table.
	CaseDocsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "case_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "data", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CaseDocsTable holds the schema information for the "case_docs" table.
	CaseDocsTable = &schema.Table{
		Name:       "case_docs",
		Columns:    CaseDocsColumns,
		PrimaryKey: []*schema.Column{CaseDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "casedoc_case_id_version",
				Unique:  true,
				Columns: []*schema.Column{CaseDocsColumns[1], CaseDocsColumns[2]},
			},
			{
				Name:    "casedoc_status",
				Unique:  false,
				Columns: []*schema.Column{CaseDocsColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MessageEventsColumns holds the columns for the "message_events" table.
	MessageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "attempt_id", Type: field.TypeString, Default: ""},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "node_id", Type: field.TypeString, Default: ""},
	}
	// MessageEventsTable holds the schema information for the "message_events" table.
	MessageEventsTable = &schema.Table{
		Name:       "message_events",
		Columns:    MessageEventsColumns,
		PrimaryKey: []*schema.Column{MessageEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "messageevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[1]},
			},
			{
				Name:    "messageevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[2]},
			},
			{
				Name:    "messageevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[3]},
			},
			{
				Name:    "messageevent_attempt_id",
				Unique:  false,
				Columns: []*schema.Column{MessageEventsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptRecordsTable,
		CaseDocsTable,
		LlmRequestEventsTable,
		MessageEventsTable,
	}
)

func init() {
}
