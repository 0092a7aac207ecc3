// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/casetalk/casetalk/ent/attemptrecord"
	"github.com/casetalk/casetalk/ent/predicate"
)

// AttemptRecordUpdate is the builder for updating AttemptRecord entities.
type AttemptRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptRecordMutation
}

// Where appends a list predicates to the AttemptRecordUpdate builder.
func (_u *AttemptRecordUpdate) Where(ps ...predicate.AttemptRecord) *AttemptRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTotalMessages sets the "total_messages" field.
func (_u *AttemptRecordUpdate) SetTotalMessages(v int) *AttemptRecordUpdate {
	_u.mutation.ResetTotalMessages()
	_u.mutation.SetTotalMessages(v)
	return _u
}

// SetNillableTotalMessages sets the "total_messages" field if the given value is not nil.
func (_u *AttemptRecordUpdate) SetNillableTotalMessages(v *int) *AttemptRecordUpdate {
	if v != nil {
		_u.SetTotalMessages(*v)
	}
	return _u
}

// AddTotalMessages adds value to the "total_messages" field.
func (_u *AttemptRecordUpdate) AddTotalMessages(v int) *AttemptRecordUpdate {
	_u.mutation.AddTotalMessages(v)
	return _u
}

// SetTotalTimeSeconds sets the "total_time_seconds" field.
func (_u *AttemptRecordUpdate) SetTotalTimeSeconds(v int) *AttemptRecordUpdate {
	_u.mutation.ResetTotalTimeSeconds()
	_u.mutation.SetTotalTimeSeconds(v)
	return _u
}

// SetNillableTotalTimeSeconds sets the "total_time_seconds" field if the given value is not nil.
func (_u *AttemptRecordUpdate) SetNillableTotalTimeSeconds(v *int) *AttemptRecordUpdate {
	if v != nil {
		_u.SetTotalTimeSeconds(*v)
	}
	return _u
}

// AddTotalTimeSeconds adds value to the "total_time_seconds" field.
func (_u *AttemptRecordUpdate) AddTotalTimeSeconds(v int) *AttemptRecordUpdate {
	_u.mutation.AddTotalTimeSeconds(v)
	return _u
}

// SetNodePath sets the "node_path" field.
func (_u *AttemptRecordUpdate) SetNodePath(v []string) *AttemptRecordUpdate {
	_u.mutation.SetNodePath(v)
	return _u
}

// AppendNodePath appends value to the "node_path" field.
func (_u *AttemptRecordUpdate) AppendNodePath(v []string) *AttemptRecordUpdate {
	_u.mutation.AppendNodePath(v)
	return _u
}

// ClearNodePath clears the value of the "node_path" field.
func (_u *AttemptRecordUpdate) ClearNodePath() *AttemptRecordUpdate {
	_u.mutation.ClearNodePath()
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptRecordUpdate) SetScore(v int) *AttemptRecordUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptRecordUpdate) SetNillableScore(v *int) *AttemptRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptRecordUpdate) AddScore(v int) *AttemptRecordUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *AttemptRecordUpdate) ClearScore() *AttemptRecordUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetScoreBreakdown sets the "score_breakdown" field.
func (_u *AttemptRecordUpdate) SetScoreBreakdown(v map[string]int) *AttemptRecordUpdate {
	_u.mutation.SetScoreBreakdown(v)
	return _u
}

// ClearScoreBreakdown clears the value of the "score_breakdown" field.
func (_u *AttemptRecordUpdate) ClearScoreBreakdown() *AttemptRecordUpdate {
	_u.mutation.ClearScoreBreakdown()
	return _u
}

// SetIsPassing sets the "is_passing" field.
func (_u *AttemptRecordUpdate) SetIsPassing(v bool) *AttemptRecordUpdate {
	_u.mutation.SetIsPassing(v)
	return _u
}

// SetNillableIsPassing sets the "is_passing" field if the given value is not nil.
func (_u *AttemptRecordUpdate) SetNillableIsPassing(v *bool) *AttemptRecordUpdate {
	if v != nil {
		_u.SetIsPassing(*v)
	}
	return _u
}

// SetAbandoned sets the "abandoned" field.
func (_u *AttemptRecordUpdate) SetAbandoned(v bool) *AttemptRecordUpdate {
	_u.mutation.SetAbandoned(v)
	return _u
}

// SetNillableAbandoned sets the "abandoned" field if the given value is not nil.
func (_u *AttemptRecordUpdate) SetNillableAbandoned(v *bool) *AttemptRecordUpdate {
	if v != nil {
		_u.SetAbandoned(*v)
	}
	return _u
}

// Mutation returns the AttemptRecordMutation object of the builder.
func (_u *AttemptRecordUpdate) Mutation() *AttemptRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AttemptRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(attemptrecord.Table, attemptrecord.Columns, sqlgraph.NewFieldSpec(attemptrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalMessages(); ok {
		_spec.SetField(attemptrecord.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMessages(); ok {
		_spec.AddField(attemptrecord.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeSeconds(); ok {
		_spec.SetField(attemptrecord.FieldTotalTimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSeconds(); ok {
		_spec.AddField(attemptrecord.FieldTotalTimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NodePath(); ok {
		_spec.SetField(attemptrecord.FieldNodePath, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNodePath(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptrecord.FieldNodePath, value)
		})
	}
	if _u.mutation.NodePathCleared() {
		_spec.ClearField(attemptrecord.FieldNodePath, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptrecord.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(attemptrecord.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.ScoreBreakdown(); ok {
		_spec.SetField(attemptrecord.FieldScoreBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.ScoreBreakdownCleared() {
		_spec.ClearField(attemptrecord.FieldScoreBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsPassing(); ok {
		_spec.SetField(attemptrecord.FieldIsPassing, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Abandoned(); ok {
		_spec.SetField(attemptrecord.FieldAbandoned, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptRecordUpdateOne is the builder for updating a single AttemptRecord entity.
type AttemptRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptRecordMutation
}

// SetTotalMessages sets the "total_messages" field.
func (_u *AttemptRecordUpdateOne) SetTotalMessages(v int) *AttemptRecordUpdateOne {
	_u.mutation.ResetTotalMessages()
	_u.mutation.SetTotalMessages(v)
	return _u
}

// SetNillableTotalMessages sets the "total_messages" field if the given value is not nil.
func (_u *AttemptRecordUpdateOne) SetNillableTotalMessages(v *int) *AttemptRecordUpdateOne {
	if v != nil {
		_u.SetTotalMessages(*v)
	}
	return _u
}

// AddTotalMessages adds value to the "total_messages" field.
func (_u *AttemptRecordUpdateOne) AddTotalMessages(v int) *AttemptRecordUpdateOne {
	_u.mutation.AddTotalMessages(v)
	return _u
}

// SetTotalTimeSeconds sets the "total_time_seconds" field.
func (_u *AttemptRecordUpdateOne) SetTotalTimeSeconds(v int) *AttemptRecordUpdateOne {
	_u.mutation.ResetTotalTimeSeconds()
	_u.mutation.SetTotalTimeSeconds(v)
	return _u
}

// SetNillableTotalTimeSeconds sets the "total_time_seconds" field if the given value is not nil.
func (_u *AttemptRecordUpdateOne) SetNillableTotalTimeSeconds(v *int) *AttemptRecordUpdateOne {
	if v != nil {
		_u.SetTotalTimeSeconds(*v)
	}
	return _u
}

// AddTotalTimeSeconds adds value to the "total_time_seconds" field.
func (_u *AttemptRecordUpdateOne) AddTotalTimeSeconds(v int) *AttemptRecordUpdateOne {
	_u.mutation.AddTotalTimeSeconds(v)
	return _u
}

// SetNodePath sets the "node_path" field.
func (_u *AttemptRecordUpdateOne) SetNodePath(v []string) *AttemptRecordUpdateOne {
	_u.mutation.SetNodePath(v)
	return _u
}

// AppendNodePath appends value to the "node_path" field.
func (_u *AttemptRecordUpdateOne) AppendNodePath(v []string) *AttemptRecordUpdateOne {
	_u.mutation.AppendNodePath(v)
	return _u
}

// ClearNodePath clears the value of the "node_path" field.
func (_u *AttemptRecordUpdateOne) ClearNodePath() *AttemptRecordUpdateOne {
	_u.mutation.ClearNodePath()
	return _u
}

// SetScore sets the "score" field.
func (_u *AttemptRecordUpdateOne) SetScore(v int) *AttemptRecordUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *AttemptRecordUpdateOne) SetNillableScore(v *int) *AttemptRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *AttemptRecordUpdateOne) AddScore(v int) *AttemptRecordUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *AttemptRecordUpdateOne) ClearScore() *AttemptRecordUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetScoreBreakdown sets the "score_breakdown" field.
func (_u *AttemptRecordUpdateOne) SetScoreBreakdown(v map[string]int) *AttemptRecordUpdateOne {
	_u.mutation.SetScoreBreakdown(v)
	return _u
}

// ClearScoreBreakdown clears the value of the "score_breakdown" field.
func (_u *AttemptRecordUpdateOne) ClearScoreBreakdown() *AttemptRecordUpdateOne {
	_u.mutation.ClearScoreBreakdown()
	return _u
}

// SetIsPassing sets the "is_passing" field.
func (_u *AttemptRecordUpdateOne) SetIsPassing(v bool) *AttemptRecordUpdateOne {
	_u.mutation.SetIsPassing(v)
	return _u
}

// SetNillableIsPassing sets the "is_passing" field if the given value is not nil.
func (_u *AttemptRecordUpdateOne) SetNillableIsPassing(v *bool) *AttemptRecordUpdateOne {
	if v != nil {
		_u.SetIsPassing(*v)
	}
	return _u
}

// SetAbandoned sets the "abandoned" field.
func (_u *AttemptRecordUpdateOne) SetAbandoned(v bool) *AttemptRecordUpdateOne {
	_u.mutation.SetAbandoned(v)
	return _u
}

// SetNillableAbandoned sets the "abandoned" field if the given value is not nil.
func (_u *AttemptRecordUpdateOne) SetNillableAbandoned(v *bool) *AttemptRecordUpdateOne {
	if v != nil {
		_u.SetAbandoned(*v)
	}
	return _u
}

// Mutation returns the AttemptRecordMutation object of the builder.
func (_u *AttemptRecordUpdateOne) Mutation() *AttemptRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptRecordUpdate builder.
func (_u *AttemptRecordUpdateOne) Where(ps ...predicate.AttemptRecord) *AttemptRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptRecordUpdateOne) Select(field string, fields ...string) *AttemptRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptRecord entity.
func (_u *AttemptRecordUpdateOne) Save(ctx context.Context) (*AttemptRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptRecordUpdateOne) SaveX(ctx context.Context) *AttemptRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AttemptRecordUpdateOne) sqlSave(ctx context.Context) (_node *AttemptRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(attemptrecord.Table, attemptrecord.Columns, sqlgraph.NewFieldSpec(attemptrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptrecord.FieldID)
		for _, f := range fields {
			if !attemptrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalMessages(); ok {
		_spec.SetField(attemptrecord.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalMessages(); ok {
		_spec.AddField(attemptrecord.FieldTotalMessages, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalTimeSeconds(); ok {
		_spec.SetField(attemptrecord.FieldTotalTimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSeconds(); ok {
		_spec.AddField(attemptrecord.FieldTotalTimeSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NodePath(); ok {
		_spec.SetField(attemptrecord.FieldNodePath, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedNodePath(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptrecord.FieldNodePath, value)
		})
	}
	if _u.mutation.NodePathCleared() {
		_spec.ClearField(attemptrecord.FieldNodePath, field.TypeJSON)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(attemptrecord.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(attemptrecord.FieldScore, field.TypeInt, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(attemptrecord.FieldScore, field.TypeInt)
	}
	if value, ok := _u.mutation.ScoreBreakdown(); ok {
		_spec.SetField(attemptrecord.FieldScoreBreakdown, field.TypeJSON, value)
	}
	if _u.mutation.ScoreBreakdownCleared() {
		_spec.ClearField(attemptrecord.FieldScoreBreakdown, field.TypeJSON)
	}
	if value, ok := _u.mutation.IsPassing(); ok {
		_spec.SetField(attemptrecord.FieldIsPassing, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Abandoned(); ok {
		_spec.SetField(attemptrecord.FieldAbandoned, field.TypeBool, value)
	}
	_node = &AttemptRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
