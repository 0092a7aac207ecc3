// Code generated by ent, DO NOT EDIT.

package attemptrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptrecord type in the database.
	Label = "attempt_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldAttemptID holds the string denoting the attempt_id field in the database.
	FieldAttemptID = "attempt_id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldCaseID holds the string denoting the case_id field in the database.
	FieldCaseID = "case_id"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldTotalMessages holds the string denoting the total_messages field in the database.
	FieldTotalMessages = "total_messages"
	// FieldTotalTimeSeconds holds the string denoting the total_time_seconds field in the database.
	FieldTotalTimeSeconds = "total_time_seconds"
	// FieldNodePath holds the string denoting the node_path field in the database.
	FieldNodePath = "node_path"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldScoreBreakdown holds the string denoting the score_breakdown field in the database.
	FieldScoreBreakdown = "score_breakdown"
	// FieldIsPassing holds the string denoting the is_passing field in the database.
	FieldIsPassing = "is_passing"
	// FieldAbandoned holds the string denoting the abandoned field in the database.
	FieldAbandoned = "abandoned"
	// Table holds the table name of the attemptrecord in the database.
	Table = "attempt_records"
)

// Columns holds all SQL columns for attemptrecord fields.
var Columns = []string{
	FieldID,
	FieldAttemptID,
	FieldStudentID,
	FieldCaseID,
	FieldAttemptNumber,
	FieldStartedAt,
	FieldTotalMessages,
	FieldTotalTimeSeconds,
	FieldNodePath,
	FieldScore,
	FieldScoreBreakdown,
	FieldIsPassing,
	FieldAbandoned,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTotalMessages holds the default value on creation for the "total_messages" field.
	DefaultTotalMessages int
	// DefaultTotalTimeSeconds holds the default value on creation for the "total_time_seconds" field.
	DefaultTotalTimeSeconds int
	// DefaultIsPassing holds the default value on creation for the "is_passing" field.
	DefaultIsPassing bool
	// DefaultAbandoned holds the default value on creation for the "abandoned" field.
	DefaultAbandoned bool
)

// OrderOption defines the ordering options for the AttemptRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByAttemptID orders the results by the attempt_id field.
func ByAttemptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByCaseID orders the results by the case_id field.
func ByCaseID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCaseID, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByTotalMessages orders the results by the total_messages field.
func ByTotalMessages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMessages, opts...).ToFunc()
}

// ByTotalTimeSeconds orders the results by the total_time_seconds field.
func ByTotalTimeSeconds(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTimeSeconds, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByIsPassing orders the results by the is_passing field.
func ByIsPassing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPassing, opts...).ToFunc()
}

// ByAbandoned orders the results by the abandoned field.
func ByAbandoned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbandoned, opts...).ToFunc()
}
