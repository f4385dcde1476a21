// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/learnpath/ent/behaviorevent"
	"github.com/abhisek/learnpath/ent/predicate"
)

// BehaviorEventUpdate is the builder for updating BehaviorEvent entities.
type BehaviorEventUpdate struct {
	config
	hooks    []Hook
	mutation *BehaviorEventMutation
}

// Where appends a list predicates to the BehaviorEventUpdate builder.
func (_u *BehaviorEventUpdate) Where(ps ...predicate.BehaviorEvent) *BehaviorEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *BehaviorEventUpdate) SetOwnerID(v string) *BehaviorEventUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *BehaviorEventUpdate) SetNillableOwnerID(v *string) *BehaviorEventUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *BehaviorEventUpdate) SetKind(v string) *BehaviorEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *BehaviorEventUpdate) SetNillableKind(v *string) *BehaviorEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *BehaviorEventUpdate) SetUnitID(v string) *BehaviorEventUpdate {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *BehaviorEventUpdate) SetNillableUnitID(v *string) *BehaviorEventUpdate {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *BehaviorEventUpdate) SetDetail(v string) *BehaviorEventUpdate {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *BehaviorEventUpdate) SetNillableDetail(v *string) *BehaviorEventUpdate {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// Mutation returns the BehaviorEventMutation object of the builder.
func (_u *BehaviorEventUpdate) Mutation() *BehaviorEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BehaviorEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BehaviorEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BehaviorEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BehaviorEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BehaviorEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(behaviorevent.Table, behaviorevent.Columns, sqlgraph.NewFieldSpec(behaviorevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(behaviorevent.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(behaviorevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(behaviorevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(behaviorevent.FieldDetail, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{behaviorevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BehaviorEventUpdateOne is the builder for updating a single BehaviorEvent entity.
type BehaviorEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BehaviorEventMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *BehaviorEventUpdateOne) SetOwnerID(v string) *BehaviorEventUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *BehaviorEventUpdateOne) SetNillableOwnerID(v *string) *BehaviorEventUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *BehaviorEventUpdateOne) SetKind(v string) *BehaviorEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *BehaviorEventUpdateOne) SetNillableKind(v *string) *BehaviorEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetUnitID sets the "unit_id" field.
func (_u *BehaviorEventUpdateOne) SetUnitID(v string) *BehaviorEventUpdateOne {
	_u.mutation.SetUnitID(v)
	return _u
}

// SetNillableUnitID sets the "unit_id" field if the given value is not nil.
func (_u *BehaviorEventUpdateOne) SetNillableUnitID(v *string) *BehaviorEventUpdateOne {
	if v != nil {
		_u.SetUnitID(*v)
	}
	return _u
}

// SetDetail sets the "detail" field.
func (_u *BehaviorEventUpdateOne) SetDetail(v string) *BehaviorEventUpdateOne {
	_u.mutation.SetDetail(v)
	return _u
}

// SetNillableDetail sets the "detail" field if the given value is not nil.
func (_u *BehaviorEventUpdateOne) SetNillableDetail(v *string) *BehaviorEventUpdateOne {
	if v != nil {
		_u.SetDetail(*v)
	}
	return _u
}

// Mutation returns the BehaviorEventMutation object of the builder.
func (_u *BehaviorEventUpdateOne) Mutation() *BehaviorEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the BehaviorEventUpdate builder.
func (_u *BehaviorEventUpdateOne) Where(ps ...predicate.BehaviorEvent) *BehaviorEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BehaviorEventUpdateOne) Select(field string, fields ...string) *BehaviorEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BehaviorEvent entity.
func (_u *BehaviorEventUpdateOne) Save(ctx context.Context) (*BehaviorEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BehaviorEventUpdateOne) SaveX(ctx context.Context) *BehaviorEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BehaviorEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BehaviorEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *BehaviorEventUpdateOne) sqlSave(ctx context.Context) (_node *BehaviorEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(behaviorevent.Table, behaviorevent.Columns, sqlgraph.NewFieldSpec(behaviorevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BehaviorEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, behaviorevent.FieldID)
		for _, f := range fields {
			if !behaviorevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != behaviorevent.FieldID {
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
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(behaviorevent.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(behaviorevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitID(); ok {
		_spec.SetField(behaviorevent.FieldUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Detail(); ok {
		_spec.SetField(behaviorevent.FieldDetail, field.TypeString, value)
	}
	_node = &BehaviorEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{behaviorevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
