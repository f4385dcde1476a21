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
	"github.com/abhisek/learnpath/ent/predicate"
	"github.com/abhisek/learnpath/ent/savedsession"
)

// SavedSessionUpdate is the builder for updating SavedSession entities.
type SavedSessionUpdate struct {
	config
	hooks    []Hook
	mutation *SavedSessionMutation
}

// Where appends a list predicates to the SavedSessionUpdate builder.
func (_u *SavedSessionUpdate) Where(ps ...predicate.SavedSession) *SavedSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SavedSessionUpdate) SetTitle(v string) *SavedSessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SavedSessionUpdate) SetNillableTitle(v *string) *SavedSessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLastModified sets the "last_modified" field.
func (_u *SavedSessionUpdate) SetLastModified(v time.Time) *SavedSessionUpdate {
	_u.mutation.SetLastModified(v)
	return _u
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (_u *SavedSessionUpdate) SetNillableLastModified(v *time.Time) *SavedSessionUpdate {
	if v != nil {
		_u.SetLastModified(*v)
	}
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *SavedSessionUpdate) SetProgressPercent(v float64) *SavedSessionUpdate {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *SavedSessionUpdate) SetNillableProgressPercent(v *float64) *SavedSessionUpdate {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *SavedSessionUpdate) AddProgressPercent(v float64) *SavedSessionUpdate {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetData sets the "data" field.
func (_u *SavedSessionUpdate) SetData(v map[string]interface{}) *SavedSessionUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the SavedSessionMutation object of the builder.
func (_u *SavedSessionUpdate) Mutation() *SavedSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SavedSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SavedSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SavedSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SavedSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SavedSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(savedsession.Table, savedsession.Columns, sqlgraph.NewFieldSpec(savedsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(savedsession.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastModified(); ok {
		_spec.SetField(savedsession.FieldLastModified, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(savedsession.FieldProgressPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(savedsession.FieldProgressPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(savedsession.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{savedsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SavedSessionUpdateOne is the builder for updating a single SavedSession entity.
type SavedSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SavedSessionMutation
}

// SetTitle sets the "title" field.
func (_u *SavedSessionUpdateOne) SetTitle(v string) *SavedSessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SavedSessionUpdateOne) SetNillableTitle(v *string) *SavedSessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLastModified sets the "last_modified" field.
func (_u *SavedSessionUpdateOne) SetLastModified(v time.Time) *SavedSessionUpdateOne {
	_u.mutation.SetLastModified(v)
	return _u
}

// SetNillableLastModified sets the "last_modified" field if the given value is not nil.
func (_u *SavedSessionUpdateOne) SetNillableLastModified(v *time.Time) *SavedSessionUpdateOne {
	if v != nil {
		_u.SetLastModified(*v)
	}
	return _u
}

// SetProgressPercent sets the "progress_percent" field.
func (_u *SavedSessionUpdateOne) SetProgressPercent(v float64) *SavedSessionUpdateOne {
	_u.mutation.ResetProgressPercent()
	_u.mutation.SetProgressPercent(v)
	return _u
}

// SetNillableProgressPercent sets the "progress_percent" field if the given value is not nil.
func (_u *SavedSessionUpdateOne) SetNillableProgressPercent(v *float64) *SavedSessionUpdateOne {
	if v != nil {
		_u.SetProgressPercent(*v)
	}
	return _u
}

// AddProgressPercent adds value to the "progress_percent" field.
func (_u *SavedSessionUpdateOne) AddProgressPercent(v float64) *SavedSessionUpdateOne {
	_u.mutation.AddProgressPercent(v)
	return _u
}

// SetData sets the "data" field.
func (_u *SavedSessionUpdateOne) SetData(v map[string]interface{}) *SavedSessionUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the SavedSessionMutation object of the builder.
func (_u *SavedSessionUpdateOne) Mutation() *SavedSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SavedSessionUpdate builder.
func (_u *SavedSessionUpdateOne) Where(ps ...predicate.SavedSession) *SavedSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SavedSessionUpdateOne) Select(field string, fields ...string) *SavedSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SavedSession entity.
func (_u *SavedSessionUpdateOne) Save(ctx context.Context) (*SavedSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SavedSessionUpdateOne) SaveX(ctx context.Context) *SavedSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SavedSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SavedSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SavedSessionUpdateOne) sqlSave(ctx context.Context) (_node *SavedSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(savedsession.Table, savedsession.Columns, sqlgraph.NewFieldSpec(savedsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SavedSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, savedsession.FieldID)
		for _, f := range fields {
			if !savedsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != savedsession.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(savedsession.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastModified(); ok {
		_spec.SetField(savedsession.FieldLastModified, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProgressPercent(); ok {
		_spec.SetField(savedsession.FieldProgressPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgressPercent(); ok {
		_spec.AddField(savedsession.FieldProgressPercent, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(savedsession.FieldData, field.TypeJSON, value)
	}
	_node = &SavedSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{savedsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
