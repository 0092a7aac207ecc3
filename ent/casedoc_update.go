// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/casetalk/casetalk/ent/casedoc"
	"github.com/casetalk/casetalk/ent/predicate"
)

// CaseDocUpdate is the builder for updating CaseDoc entities.
type CaseDocUpdate struct {
	config
	hooks    []Hook
	mutation *CaseDocMutation
}

// Where appends a list predicates to the CaseDocUpdate builder.
func (_u *CaseDocUpdate) Where(ps ...predicate.CaseDoc) *CaseDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *CaseDocUpdate) SetCaseID(v string) *CaseDocUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CaseDocUpdate) SetNillableCaseID(v *string) *CaseDocUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *CaseDocUpdate) SetVersion(v int) *CaseDocUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CaseDocUpdate) SetNillableVersion(v *int) *CaseDocUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CaseDocUpdate) AddVersion(v int) *CaseDocUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CaseDocUpdate) SetTitle(v string) *CaseDocUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CaseDocUpdate) SetNillableTitle(v *string) *CaseDocUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CaseDocUpdate) SetStatus(v string) *CaseDocUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CaseDocUpdate) SetNillableStatus(v *string) *CaseDocUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *CaseDocUpdate) SetData(v map[string]interface{}) *CaseDocUpdate {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CaseDocUpdate) SetUpdatedAt(v time.Time) *CaseDocUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CaseDocMutation object of the builder.
func (_u *CaseDocUpdate) Mutation() *CaseDocMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseDocUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CaseDocUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := casedoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CaseDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(casedoc.Table, casedoc.Columns, sqlgraph.NewFieldSpec(casedoc.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(casedoc.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(casedoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(casedoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(casedoc.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(casedoc.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(casedoc.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(casedoc.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{casedoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseDocUpdateOne is the builder for updating a single CaseDoc entity.
type CaseDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseDocMutation
}

// SetCaseID sets the "case_id" field.
func (_u *CaseDocUpdateOne) SetCaseID(v string) *CaseDocUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *CaseDocUpdateOne) SetNillableCaseID(v *string) *CaseDocUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *CaseDocUpdateOne) SetVersion(v int) *CaseDocUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *CaseDocUpdateOne) SetNillableVersion(v *int) *CaseDocUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *CaseDocUpdateOne) AddVersion(v int) *CaseDocUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CaseDocUpdateOne) SetTitle(v string) *CaseDocUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CaseDocUpdateOne) SetNillableTitle(v *string) *CaseDocUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CaseDocUpdateOne) SetStatus(v string) *CaseDocUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CaseDocUpdateOne) SetNillableStatus(v *string) *CaseDocUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *CaseDocUpdateOne) SetData(v map[string]interface{}) *CaseDocUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CaseDocUpdateOne) SetUpdatedAt(v time.Time) *CaseDocUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CaseDocMutation object of the builder.
func (_u *CaseDocUpdateOne) Mutation() *CaseDocMutation {
	return _u.mutation
}

// Where appends a list predicates to the CaseDocUpdate builder.
func (_u *CaseDocUpdateOne) Where(ps ...predicate.CaseDoc) *CaseDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseDocUpdateOne) Select(field string, fields ...string) *CaseDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseDoc entity.
func (_u *CaseDocUpdateOne) Save(ctx context.Context) (*CaseDoc, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseDocUpdateOne) SaveX(ctx context.Context) *CaseDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CaseDocUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := casedoc.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *CaseDocUpdateOne) sqlSave(ctx context.Context) (_node *CaseDoc, err error) {
	_spec := sqlgraph.NewUpdateSpec(casedoc.Table, casedoc.Columns, sqlgraph.NewFieldSpec(casedoc.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, casedoc.FieldID)
		for _, f := range fields {
			if !casedoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != casedoc.FieldID {
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
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(casedoc.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(casedoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(casedoc.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(casedoc.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(casedoc.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(casedoc.FieldData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(casedoc.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CaseDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{casedoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
