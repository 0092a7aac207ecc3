// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/casetalk/casetalk/ent/messageevent"
)

// MessageEventCreate is the builder for creating a MessageEvent entity.
type MessageEventCreate struct {
	config
	mutation *MessageEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *MessageEventCreate) SetSequence(v int64) *MessageEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *MessageEventCreate) SetTimestamp(v time.Time) *MessageEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *MessageEventCreate) SetNillableTimestamp(v *time.Time) *MessageEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *MessageEventCreate) SetSessionID(v string) *MessageEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetAttemptID sets the "attempt_id" field.
func (_c *MessageEventCreate) SetAttemptID(v string) *MessageEventCreate {
	_c.mutation.SetAttemptID(v)
	return _c
}

// SetNillableAttemptID sets the "attempt_id" field if the given value is not nil.
func (_c *MessageEventCreate) SetNillableAttemptID(v *string) *MessageEventCreate {
	if v != nil {
		_c.SetAttemptID(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *MessageEventCreate) SetRole(v string) *MessageEventCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *MessageEventCreate) SetContent(v string) *MessageEventCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *MessageEventCreate) SetNodeID(v string) *MessageEventCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_c *MessageEventCreate) SetNillableNodeID(v *string) *MessageEventCreate {
	if v != nil {
		_c.SetNodeID(*v)
	}
	return _c
}

// Mutation returns the MessageEventMutation object of the builder.
func (_c *MessageEventCreate) Mutation() *MessageEventMutation {
	return _c.mutation
}

// Save creates the MessageEvent in the database.
func (_c *MessageEventCreate) Save(ctx context.Context) (*MessageEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageEventCreate) SaveX(ctx context.Context) *MessageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := messageevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		v := messageevent.DefaultAttemptID
		_c.mutation.SetAttemptID(v)
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		v := messageevent.DefaultNodeID
		_c.mutation.SetNodeID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "MessageEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "MessageEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "MessageEvent.session_id"`)}
	}
	if _, ok := _c.mutation.AttemptID(); !ok {
		return &ValidationError{Name: "attempt_id", err: errors.New(`ent: missing required field "MessageEvent.attempt_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "MessageEvent.role"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "MessageEvent.content"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "MessageEvent.node_id"`)}
	}
	return nil
}

func (_c *MessageEventCreate) sqlSave(ctx context.Context) (*MessageEvent, error) {
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

func (_c *MessageEventCreate) createSpec() (*MessageEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &MessageEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(messageevent.Table, sqlgraph.NewFieldSpec(messageevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(messageevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(messageevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(messageevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.AttemptID(); ok {
		_spec.SetField(messageevent.FieldAttemptID, field.TypeString, value)
		_node.AttemptID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(messageevent.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(messageevent.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(messageevent.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	return _node, _spec
}

// MessageEventCreateBulk is the builder for creating many MessageEvent entities in bulk.
type MessageEventCreateBulk struct {
	config
	err      error
	builders []*MessageEventCreate
}

// Save creates the MessageEvent entities in the database.
func (_c *MessageEventCreateBulk) Save(ctx context.Context) ([]*MessageEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MessageEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageEventMutation)
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
func (_c *MessageEventCreateBulk) SaveX(ctx context.Context) []*MessageEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
