// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnpath/ent/savedsession"
)

// SavedSessionCreate is the builder for creating a SavedSession entity.
type SavedSessionCreate struct {
	config
	mutation *SavedSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SavedSessionCreate) SetSessionID(v string) *SavedSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *SavedSessionCreate) SetOwnerID(v string) *SavedSessionCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SavedSessionCreate) SetTitle(v string) *SavedSessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetLastModified sets the "last_modified" field.
func (_c *SavedSessionCreate) SetLastModified(v time.Time) *SavedSessionCreate {
	_c.mutation.SetLastModified(v)
	return _c
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (_c *SavedSessionCreate) SetNillableLastModified(v *time.Time) *SavedSessionCreate {
	if v != nil {
		_c.SetLastModified(*v)
	}
	return _c
}

// SetProgressPercent sets the "progress_percent" field.
func (_c *SavedSessionCreate) SetProgressPercent(v float64) *SavedSessionCreate {
	_c.mutation.SetProgressPercent(v)
	return _c
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_c *SavedSessionCreate) SetNillableProgressPercent(v *float64) *SavedSessionCreate {
	if v != nil {
		_c.SetProgressPercent(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *SavedSessionCreate) SetData(v map[string]interface{}) *SavedSessionCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the SavedSessionMutation object of the builder.
func (_c *SavedSessionCreate) Mutation() *SavedSessionMutation {
	return _c.mutation
}

// Save creates the SavedSession in the database.
func (_c *SavedSessionCreate) Save(ctx context.Context) (*SavedSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SavedSessionCreate) SaveX(ctx context.Context) *SavedSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SavedSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SavedSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SavedSessionCreate) defaults() {
	if _, ok := _c.mutation.LastModified(); !ok {
		v := savedsession.DefaultLastModified()
		_c.mutation.SetLastModified(v)
	}
	if _, ok := _c.mutation.ProgressPercent(); !ok {
		v := savedsession.DefaultProgressPercent
		_c.mutation.SetProgressPercent(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SavedSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SavedSession.session_id"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "SavedSession.owner_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "SavedSession.title"`)}
	}
	if _, ok := _c.mutation.LastModified(); !ok {
		return &ValidationError{Name: "last_modified", err: errors.New(`ent: missing required field "SavedSession.last_modified"`)}
	}
	if _, ok := _c.mutation.ProgressPercent(); !ok {
		return &ValidationError{Name: "progress_percent", err: errors.New(`ent: missing required field "SavedSession.progress_percent"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "SavedSession.data"`)}
	}
	return nil
}

func (_c *SavedSessionCreate) sqlSave(ctx context.Context) (*SavedSession, error) {
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

func (_c *SavedSessionCreate) createSpec() (*SavedSession, *sqlgraph.CreateSpec) {
	var (
		_node = &SavedSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(savedsession.Table, sqlgraph.NewFieldSpec(savedsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(savedsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(savedsession.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(savedsession.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.LastModified(); ok {
		_spec.SetField(savedsession.FieldLastModified, field.TypeTime, value)
		_node.LastModified = value
	}
	if value, ok := _c.mutation.ProgressPercent(); ok {
		_spec.SetField(savedsession.FieldProgressPercent, field.TypeFloat64, value)
		_node.ProgressPercent = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(savedsession.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// SavedSessionCreateBulk is the builder for creating many SavedSession entities in bulk.
type SavedSessionCreateBulk struct {
	config
	err      error
	builders []*SavedSessionCreate
}

// Save creates the SavedSession entities in the database.
func (_c *SavedSessionCreateBulk) Save(ctx context.Context) ([]*SavedSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SavedSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SavedSessionMutation)
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
func (_c *SavedSessionCreateBulk) SaveX(ctx context.Context) []*SavedSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SavedSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SavedSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
