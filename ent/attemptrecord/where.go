// Code generated by ent, DO NOT EDIT.

package attemptrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/casetalk/casetalk/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldID, id))
}

// AttemptID applies equality check predicate on the "attempt_id" field. It's identical to AttemptIDEQ.
func AttemptID(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldAttemptID, v))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldStudentID, v))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldCaseID, v))
}

// AttemptNumber applies equality check predicate on the "attempt_number" field. It's identical to AttemptNumberEQ.
func AttemptNumber(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldAttemptNumber, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldStartedAt, v))
}

// TotalMessages applies equality check predicate on the "total_messages" field. It's identical to TotalMessagesEQ.
func TotalMessages(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldTotalMessages, v))
}

// TotalTimeSeconds applies equality check predicate on the "total_time_seconds" field. It's identical to TotalTimeSecondsEQ.
func TotalTimeSeconds(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldTotalTimeSeconds, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldScore, v))
}

// IsPassing applies equality check predicate on the "is_passing" field. It's identical to IsPassingEQ.
func IsPassing(v bool) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldIsPassing, v))
}

// Abandoned applies equality check predicate on the "abandoned" field. It's identical to AbandonedEQ.
func Abandoned(v bool) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldAbandoned, v))
}

// AttemptIDEQ applies the EQ predicate on the "attempt_id" field.
func AttemptIDEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldAttemptID, v))
}

// AttemptIDNEQ applies the NEQ predicate on the "attempt_id" field.
func AttemptIDNEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldAttemptID, v))
}

// AttemptIDIn applies the In predicate on the "attempt_id" field.
func AttemptIDIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldAttemptID, vs...))
}

// AttemptIDNotIn applies the NotIn predicate on the "attempt_id" field.
func AttemptIDNotIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldAttemptID, vs...))
}

// AttemptIDGT applies the GT predicate on the "attempt_id" field.
func AttemptIDGT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldAttemptID, v))
}

// AttemptIDGTE applies the GTE predicate on the "attempt_id" field.
func AttemptIDGTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldAttemptID, v))
}

// AttemptIDLT applies the LT predicate on the "attempt_id" field.
func AttemptIDLT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldAttemptID, v))
}

// AttemptIDLTE applies the LTE predicate on the "attempt_id" field.
func AttemptIDLTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldAttemptID, v))
}

// AttemptIDContains applies the Contains predicate on the "attempt_id" field.
func AttemptIDContains(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContains(FieldAttemptID, v))
}

// AttemptIDHasPrefix applies the HasPrefix predicate on the "attempt_id" field.
func AttemptIDHasPrefix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasPrefix(FieldAttemptID, v))
}

// AttemptIDHasSuffix applies the HasSuffix predicate on the "attempt_id" field.
func AttemptIDHasSuffix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasSuffix(FieldAttemptID, v))
}

// AttemptIDEqualFold applies the EqualFold predicate on the "attempt_id" field.
func AttemptIDEqualFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEqualFold(FieldAttemptID, v))
}

// AttemptIDContainsFold applies the ContainsFold predicate on the "attempt_id" field.
func AttemptIDContainsFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContainsFold(FieldAttemptID, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContainsFold(FieldStudentID, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldContainsFold(FieldCaseID, v))
}

// AttemptNumberEQ applies the EQ predicate on the "attempt_number" field.
func AttemptNumberEQ(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldAttemptNumber, v))
}

// AttemptNumberNEQ applies the NEQ predicate on the "attempt_number" field.
func AttemptNumberNEQ(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldAttemptNumber, v))
}

// AttemptNumberIn applies the In predicate on the "attempt_number" field.
func AttemptNumberIn(vs ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldAttemptNumber, vs...))
}

// AttemptNumberNotIn applies the NotIn predicate on the "attempt_number" field.
func AttemptNumberNotIn(vs ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldAttemptNumber, vs...))
}

// AttemptNumberGT applies the GT predicate on the "attempt_number" field.
func AttemptNumberGT(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldAttemptNumber, v))
}

// AttemptNumberGTE applies the GTE predicate on the "attempt_number" field.
func AttemptNumberGTE(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldAttemptNumber, v))
}

// AttemptNumberLT applies the LT predicate on the "attempt_number" field.
func AttemptNumberLT(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldAttemptNumber, v))
}

// AttemptNumberLTE applies the LTE predicate on the "attempt_number" field.
func AttemptNumberLTE(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldAttemptNumber, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldStartedAt, v))
}

// TotalMessagesEQ applies the EQ predicate on the "total_messages" field.
func TotalMessagesEQ(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldTotalMessages, v))
}

// TotalMessagesNEQ applies the NEQ predicate on the "total_messages" field.
func TotalMessagesNEQ(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldTotalMessages, v))
}

// TotalMessagesIn applies the In predicate on the "total_messages" field.
func TotalMessagesIn(vs ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldTotalMessages, vs...))
}

// TotalMessagesNotIn applies the NotIn predicate on the "total_messages" field.
func TotalMessagesNotIn(vs ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldTotalMessages, vs...))
}

// TotalMessagesGT applies the GT predicate on the "total_messages" field.
func TotalMessagesGT(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldTotalMessages, v))
}

// TotalMessagesGTE applies the GTE predicate on the "total_messages" field.
func TotalMessagesGTE(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldTotalMessages, v))
}

// TotalMessagesLT applies the LT predicate on the "total_messages" field.
func TotalMessagesLT(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldTotalMessages, v))
}

// TotalMessagesLTE applies the LTE predicate on the "total_messages" field.
func TotalMessagesLTE(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldTotalMessages, v))
}

// TotalTimeSecondsEQ applies the EQ predicate on the "total_time_seconds" field.
func TotalTimeSecondsEQ(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsNEQ applies the NEQ predicate on the "total_time_seconds" field.
func TotalTimeSecondsNEQ(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsIn applies the In predicate on the "total_time_seconds" field.
func TotalTimeSecondsIn(vs ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldTotalTimeSeconds, vs...))
}

// TotalTimeSecondsNotIn applies the NotIn predicate on the "total_time_seconds" field.
func TotalTimeSecondsNotIn(vs ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldTotalTimeSeconds, vs...))
}

// TotalTimeSecondsGT applies the GT predicate on the "total_time_seconds" field.
func TotalTimeSecondsGT(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsGTE applies the GTE predicate on the "total_time_seconds" field.
func TotalTimeSecondsGTE(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsLT applies the LT predicate on the "total_time_seconds" field.
func TotalTimeSecondsLT(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldTotalTimeSeconds, v))
}

// TotalTimeSecondsLTE applies the LTE predicate on the "total_time_seconds" field.
func TotalTimeSecondsLTE(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldTotalTimeSeconds, v))
}

// NodePathIsNil applies the IsNil predicate on the "node_path" field.
func NodePathIsNil() predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIsNull(FieldNodePath))
}

// NodePathNotNil applies the NotNil predicate on the "node_path" field.
func NodePathNotNil() predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotNull(FieldNodePath))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotNull(FieldScore))
}

// ScoreBreakdownIsNil applies the IsNil predicate on the "score_breakdown" field.
func ScoreBreakdownIsNil() predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldIsNull(FieldScoreBreakdown))
}

// ScoreBreakdownNotNil applies the NotNil predicate on the "score_breakdown" field.
func ScoreBreakdownNotNil() predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNotNull(FieldScoreBreakdown))
}

// IsPassingEQ applies the EQ predicate on the "is_passing" field.
func IsPassingEQ(v bool) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldIsPassing, v))
}

// IsPassingNEQ applies the NEQ predicate on the "is_passing" field.
func IsPassingNEQ(v bool) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldIsPassing, v))
}

// AbandonedEQ applies the EQ predicate on the "abandoned" field.
func AbandonedEQ(v bool) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldEQ(FieldAbandoned, v))
}

// AbandonedNEQ applies the NEQ predicate on the "abandoned" field.
func AbandonedNEQ(v bool) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.FieldNEQ(FieldAbandoned, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AttemptRecord) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AttemptRecord) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AttemptRecord) predicate.AttemptRecord {
	return predicate.AttemptRecord(sql.NotPredicates(p))
}
