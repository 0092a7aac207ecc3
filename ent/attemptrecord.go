// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/casetalk/casetalk/ent/attemptrecord"
)

// AttemptRecord is the model entity for the AttemptRecord schema.
type AttemptRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// AttemptID holds the value of the "attempt_id" field.
	AttemptID string `json:"attempt_id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// CaseID holds the value of the "case_id" field.
	CaseID string `json:"case_id,omitempty"`
	// 1-based, strictly increasing per student+case, never reused
	AttemptNumber int `json:"attempt_number,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// TotalMessages holds the value of the "total_messages" field.
	TotalMessages int `json:"total_messages,omitempty"`
	// TotalTimeSeconds holds the value of the "total_time_seconds" field.
	TotalTimeSeconds int `json:"total_time_seconds,omitempty"`
	// NodePath holds the value of the "node_path" field.
	NodePath []string `json:"node_path,omitempty"`
	// Nil for abandoned attempts
	Score *int `json:"score,omitempty"`
	// Per-objective subscore, 0-100
	ScoreBreakdown map[string]int `json:"score_breakdown,omitempty"`
	// IsPassing holds the value of the "is_passing" field.
	IsPassing bool `json:"is_passing,omitempty"`
	// Abandoned holds the value of the "abandoned" field.
	Abandoned    bool `json:"abandoned,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttemptRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attemptrecord.FieldNodePath, attemptrecord.FieldScoreBreakdown:
			values[i] = new([]byte)
		case attemptrecord.FieldIsPassing, attemptrecord.FieldAbandoned:
			values[i] = new(sql.NullBool)
		case attemptrecord.FieldID, attemptrecord.FieldAttemptNumber, attemptrecord.FieldTotalMessages, attemptrecord.FieldTotalTimeSeconds, attemptrecord.FieldScore:
			values[i] = new(sql.NullInt64)
		case attemptrecord.FieldAttemptID, attemptrecord.FieldStudentID, attemptrecord.FieldCaseID:
			values[i] = new(sql.NullString)
		case attemptrecord.FieldStartedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttemptRecord fields.
func (_m *AttemptRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attemptrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case attemptrecord.FieldAttemptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_id", values[i])
			} else if value.Valid {
				_m.AttemptID = value.String
			}
		case attemptrecord.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case attemptrecord.FieldCaseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field case_id", values[i])
			} else if value.Valid {
				_m.CaseID = value.String
			}
		case attemptrecord.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case attemptrecord.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case attemptrecord.FieldTotalMessages:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_messages", values[i])
			} else if value.Valid {
				_m.TotalMessages = int(value.Int64)
			}
		case attemptrecord.FieldTotalTimeSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_time_seconds", values[i])
			} else if value.Valid {
				_m.TotalTimeSeconds = int(value.Int64)
			}
		case attemptrecord.FieldNodePath:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field node_path", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.NodePath); err != nil {
					return fmt.Errorf("unmarshal field node_path: %w", err)
				}
			}
		case attemptrecord.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(int)
				*_m.Score = int(value.Int64)
			}
		case attemptrecord.FieldScoreBreakdown:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field score_breakdown", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ScoreBreakdown); err != nil {
					return fmt.Errorf("unmarshal field score_breakdown: %w", err)
				}
			}
		case attemptrecord.FieldIsPassing:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_passing", values[i])
			} else if value.Valid {
				_m.IsPassing = value.Bool
			}
		case attemptrecord.FieldAbandoned:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field abandoned", values[i])
			} else if value.Valid {
				_m.Abandoned = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttemptRecord.
// This includes values selected through modifiers, order, etc.
func (_m *AttemptRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AttemptRecord.
// Note that you need to call AttemptRecord.Unwrap() before calling this method if this AttemptRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AttemptRecord) Update() *AttemptRecordUpdateOne {
	return NewAttemptRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AttemptRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AttemptRecord) Unwrap() *AttemptRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttemptRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AttemptRecord) String() string {
	var builder strings.Builder
	builder.WriteString("AttemptRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("attempt_id=")
	builder.WriteString(_m.AttemptID)
	builder.WriteString(", ")
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("case_id=")
	builder.WriteString(_m.CaseID)
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_messages=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalMessages))
	builder.WriteString(", ")
	builder.WriteString("total_time_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTimeSeconds))
	builder.WriteString(", ")
	builder.WriteString("node_path=")
	builder.WriteString(fmt.Sprintf("%v", _m.NodePath))
	builder.WriteString(", ")
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("score_breakdown=")
	builder.WriteString(fmt.Sprintf("%v", _m.ScoreBreakdown))
	builder.WriteString(", ")
	builder.WriteString("is_passing=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPassing))
	builder.WriteString(", ")
	builder.WriteString("abandoned=")
	builder.WriteString(fmt.Sprintf("%v", _m.Abandoned))
	builder.WriteByte(')')
	return builder.String()
}

// AttemptRecords is a parsable slice of AttemptRecord.
type AttemptRecords []*AttemptRecord
