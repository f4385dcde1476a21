// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnpath/ent/behaviorevent"
)

// BehaviorEventCreate is the builder for creating a BehaviorEvent entity.
type BehaviorEventCreate struct {
	config
	mutation *BehaviorEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *BehaviorEventCreate) SetSequence(v int64) *BehaviorEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *BehaviorEventCreate) SetTimestamp(v time.Time) *BehaviorEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *BehaviorEventCreate) SetNillableTimestamp(v *time.Time) *BehaviorEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *BehaviorEventCreate) SetOwnerID(v string) *BehaviorEventCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *BehaviorEventCreate) SetKind(v string) *BehaviorEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetUnitID sets the "unit_id" field.
func (_c *BehaviorEventCreate) SetUnitID(v string) *BehaviorEventCreate {
	_c.mutation.SetUnitID(v)
	return _c
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_c *BehaviorEventCreate) SetNillableUnitID(v *string) *BehaviorEventCreate {
	if v != nil {
		_c.SetUnitID(*v)
	}
	return _c
}

// SetDetail sets the "detail" field.
func (_c *BehaviorEventCreate) SetDetail(v string) *BehaviorEventCreate {
	_c.mutation.SetDetail(v)
	return _c
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_c *BehaviorEventCreate) SetNillableDetail(v *string) *BehaviorEventCreate {
	if v != nil {
		_c.SetDetail(*v)
	}
	return _c
}

// Mutation returns the BehaviorEventMutation object of the builder.
func (_c *BehaviorEventCreate) Mutation() *BehaviorEventMutation {
	return _c.mutation
}

// Save creates the BehaviorEvent in the database.
func (_c *BehaviorEventCreate) Save(ctx context.Context) (*BehaviorEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BehaviorEventCreate) SaveX(ctx context.Context) *BehaviorEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BehaviorEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BehaviorEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BehaviorEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := behaviorevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.UnitID(); !ok {
		v := behaviorevent.DefaultUnitID
		_c.mutation.SetUnitID(v)
	}
	if _, ok := _c.mutation.Detail(); !ok {
		v := behaviorevent.DefaultDetail
		_c.mutation.SetDetail(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BehaviorEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "BehaviorEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "BehaviorEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "BehaviorEvent.owner_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "BehaviorEvent.kind"`)}
	}
	if _, ok := _c.mutation.UnitID(); !ok {
		return &ValidationError{Name: "unit_id", err: errors.New(`ent: missing required field "BehaviorEvent.unit_id"`)}
	}
	if _, ok := _c.mutation.Detail(); !ok {
		return &ValidationError{Name: "detail", err: errors.New(`ent: missing required field "BehaviorEvent.detail"`)}
	}
	return nil
}

func (_c *BehaviorEventCreate) sqlSave(ctx context.Context) (*BehaviorEvent, error) {
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

func (_c *BehaviorEventCreate) createSpec() (*BehaviorEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &BehaviorEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(behaviorevent.Table, sqlgraph.NewFieldSpec(behaviorevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(behaviorevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(behaviorevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(behaviorevent.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(behaviorevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.UnitID(); ok {
		_spec.SetField(behaviorevent.FieldUnitID, field.TypeString, value)
		_node.UnitID = value
	}
	if value, ok := _c.mutation.Detail(); ok {
		_spec.SetField(behaviorevent.FieldDetail, field.TypeString, value)
		_node.Detail = value
	}
	return _node, _spec
}

// BehaviorEventCreateBulk is the builder for creating many BehaviorEvent entities in bulk.
type BehaviorEventCreateBulk struct {
	config
	err      error
	builders []*BehaviorEventCreate
}

// Save creates the BehaviorEvent entities in the database.
func (_c *BehaviorEventCreateBulk) Save(ctx context.Context) ([]*BehaviorEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BehaviorEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BehaviorEventMutation)
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
func (_c *BehaviorEventCreateBulk) SaveX(ctx context.Context) []*BehaviorEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BehaviorEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BehaviorEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
