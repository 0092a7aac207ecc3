// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/casetalk/casetalk/ent/attemptrecord"
)

// AttemptRecordCreate is the builder for creating a AttemptRecord entity.
type AttemptRecordCreate struct {
	config
	mutation *AttemptRecordMutation
	hooks    []Hook
}

// SetAttemptID sets the "attempt_id" field.
func (_c *AttemptRecordCreate) SetAttemptID(v string) *AttemptRecordCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *AttemptRecordCreate) SetStudentID(v string) *AttemptRecordCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetCaseID sets the "case_id" field.
func (_c *AttemptRecordCreate) SetCaseID(v string) *AttemptRecordCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *AttemptRecordCreate) SetAttemptNumber(v int) *AttemptRecordCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AttemptRecordCreate) SetStartedAt(v time.Time) *AttemptRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetTotalMessages sets the "total_messages" field.
func (_c *AttemptRecordCreate) SetTotalMessages(v int) *AttemptRecordCreate {
	_c.mutation.SetTotalMessages(v)
	return _c
}

// SetNillableTotalMessages sets the "total_messages" field if the given value is not nil.
func (_c *AttemptRecordCreate) SetNillableTotalMessages(v *int) *AttemptRecordCreate {
	if v != nil {
		_c.SetTotalMessages(*v)
	}
	return _c
}

// SetTotalTimeSeconds sets the "total_time_seconds" field.
func (_c *AttemptRecordCreate) SetTotalTimeSeconds(v int) *AttemptRecordCreate {
	_c.mutation.SetTotalTimeSeconds(v)
	return _c
}

// SetNillableTotalTimeSeconds sets the "total_time_seconds" field if the given value is not nil.
func (_c *AttemptRecordCreate) SetNillableTotalTimeSeconds(v *int) *AttemptRecordCreate {
	if v != nil {
		_c.SetTotalTimeSeconds(*v)
	}
	return _c
}

// SetNodePath sets the "node_path" field.
func (_c *AttemptRecordCreate) SetNodePath(v []string) *AttemptRecordCreate {
	_c.mutation.SetNodePath(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *AttemptRecordCreate) SetScore(v int) *AttemptRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *AttemptRecordCreate) SetNillableScore(v *int) *AttemptRecordCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetScoreBreakdown sets the "score_breakdown" field.
func (_c *AttemptRecordCreate) SetScoreBreakdown(v map[string]int) *AttemptRecordCreate {
	_c.mutation.SetScoreBreakdown(v)
	return _c
}

// SetIsPassing sets the "is_passing" field.
func (_c *AttemptRecordCreate) SetIsPassing(v bool) *AttemptRecordCreate {
	_c.mutation.SetIsPassing(v)
	return _c
}

// SetNillableIsPassing sets the "is_passing" field if the given value is not nil.
func (_c *AttemptRecordCreate) SetNillableIsPassing(v *bool) *AttemptRecordCreate {
	if v != nil {
		_c.SetIsPassing(*v)
	}
	return _c
}

// SetAbandoned sets the "abandoned" field.
func (_c *AttemptRecordCreate) SetAbandoned(v bool) *AttemptRecordCreate {
	_c.mutation.SetAbandoned(v)
	return _c
}

// SetNillableAbandoned sets the "abandoned" field if the given value is not nil.
func (_c *AttemptRecordCreate) SetNillableAbandoned(v *bool) *AttemptRecordCreate {
	if v != nil {
		_c.SetAbandoned(*v)
	}
	return _c
}

// Mutation returns the AttemptRecordMutation object of the builder.
func (_c *AttemptRecordCreate) Mutation() *AttemptRecordMutation {
	return _c.mutation
}

// Save creates the AttemptRecord in the database.
func (_c *AttemptRecordCreate) Save(ctx context.Context) (*AttemptRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptRecordCreate) SaveX(ctx context.Context) *AttemptRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptRecordCreate) defaults() {
	if _, ok := _c.mutation.TotalMessages(); !ok {
		v := attemptrecord.DefaultTotalMessages
		_c.mutation.SetTotalMessages(v)
	}
	if _, ok := _c.mutation.TotalTimeSeconds(); !ok {
		v := attemptrecord.DefaultTotalTimeSeconds
		_c.mutation.SetTotalTimeSeconds(v)
	}
	if _, ok := _c.mutation.IsPassing(); !ok {
		v := attemptrecord.DefaultIsPassing
		_c.mutation.SetIsPassing(v)
	}
	if _, ok := _c.mutation.Abandoned(); !ok {
		v := attemptrecord.DefaultAbandoned
		_c.mutation.SetAbandoned(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptRecordCreate) check() error {
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "AttemptRecord.attempt_id"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "AttemptRecord.student_id"`)}
	}
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "AttemptRecord.case_id"`)}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "AttemptRecord.attempt_number"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "AttemptRecord.started_at"`)}
	}
	if _, ok := _c.mutation.TotalMessages(); !ok {
		return &ValidationError{Name: "total_messages", err: errors.New(`ent: missing required field "AttemptRecord.total_messages"`)}
	}
	if _, ok := _c.mutation.TotalTimeSeconds(); !ok {
		return &ValidationError{Name: "total_time_seconds", err: errors.New(`ent: missing required field "AttemptRecord.total_time_seconds"`)}
	}
	if _, ok := _c.mutation.IsPassing(); !ok {
		return &ValidationError{Name: "is_passing", err: errors.New(`ent: missing required field "AttemptRecord.is_passing"`)}
	}
	if _, ok := _c.mutation.Abandoned(); !ok {
		return &ValidationError{Name: "abandoned", err: errors.New(`ent: missing required field "AttemptRecord.abandoned"`)}
	}
	return nil
}

func (_c *AttemptRecordCreate) sqlSave(ctx context.Context) (*AttemptRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AttemptRecordCreate) createSpec() (*AttemptRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptrecord.Table, sqlgraph.NewFieldSpec(attemptrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(attemptrecord.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(attemptrecord.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(attemptrecord.FieldCaseID, field.TypeString, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(attemptrecord.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(attemptrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.TotalMessages(); ok {
		_spec.SetField(attemptrecord.FieldTotalMessages, field.TypeInt, value)
		_node.TotalMessages = value
	}
	if value, ok := _c.mutation.TotalTimeSeconds(); ok {
		_spec.SetField(attemptrecord.FieldTotalTimeSeconds, field.TypeInt, value)
		_node.TotalTimeSeconds = value
	}
	if value, ok := _c.mutation.NodePath(); ok {
		_spec.SetField(attemptrecord.FieldNodePath, field.TypeJSON, value)
		_node.NodePath = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(attemptrecord.FieldScore, field.TypeInt, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.ScoreBreakdown(); ok {
		_spec.SetField(attemptrecord.FieldScoreBreakdown, field.TypeJSON, value)
		_node.ScoreBreakdown = value
	}
	if value, ok := _c.mutation.IsPassing(); ok {
		_spec.SetField(attemptrecord.FieldIsPassing, field.TypeBool, value)
		_node.IsPassing = value
	}
	if value, ok := _c.mutation.Abandoned(); ok {
		_spec.SetField(attemptrecord.FieldAbandoned, field.TypeBool, value)
		_node.Abandoned = value
	}
	return _node, _spec
}

// AttemptRecordCreateBulk is the builder for creating many AttemptRecord entities in bulk.
type AttemptRecordCreateBulk struct {
	config
	err      error
	builders []*AttemptRecordCreate
}

// Save creates the AttemptRecord entities in the database.
func (_c *AttemptRecordCreateBulk) Save(ctx context.Context) ([]*AttemptRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AttemptRecordCreateBulk) SaveX(ctx context.Context) []*AttemptRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
