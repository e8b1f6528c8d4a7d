// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yumine/versia/sqlite/ent/predicate"
	"github.com/yumine/versia/sqlite/ent/relationship"
)

// RelationshipUpdate is the builder for updating Relationship entities.
type RelationshipUpdate struct {
	config
	hooks    []Hook
	mutation *RelationshipMutation
}

// Where appends a list predicates to the RelationshipUpdate builder.
func (ru *RelationshipUpdate) Where(ps ...predicate.Relationship) *RelationshipUpdate {
	ru.mutation.Where(ps...)
	return ru
}

// SetFollowing sets the "following" field.
func (ru *RelationshipUpdate) SetFollowing(b bool) *RelationshipUpdate {
	ru.mutation.SetFollowing(b)
	return ru
}

// SetNillableFollowing sets the "following" field if the given value is not nil.
func (ru *RelationshipUpdate) SetNillableFollowing(b *bool) *RelationshipUpdate {
	if b != nil {
		ru.SetFollowing(*b)
	}
	return ru
}

// SetRequested sets the "requested" field.
func (ru *RelationshipUpdate) SetRequested(b bool) *RelationshipUpdate {
	ru.mutation.SetRequested(b)
	return ru
}

// SetNillableRequested sets the "requested" field if the given value is not nil.
func (ru *RelationshipUpdate) SetNillableRequested(b *bool) *RelationshipUpdate {
	if b != nil {
		ru.SetRequested(*b)
	}
	return ru
}

// SetBlocking sets the "blocking" field.
func (ru *RelationshipUpdate) SetBlocking(b bool) *RelationshipUpdate {
	ru.mutation.SetBlocking(b)
	return ru
}

// SetNillableBlocking sets the "blocking" field if the given value is not nil.
func (ru *RelationshipUpdate) SetNillableBlocking(b *bool) *RelationshipUpdate {
	if b != nil {
		ru.SetBlocking(*b)
	}
	return ru
}

// SetMuting sets the "muting" field.
func (ru *RelationshipUpdate) SetMuting(b bool) *RelationshipUpdate {
	ru.mutation.SetMuting(b)
	return ru
}

// SetNillableMuting sets the "muting" field if the given value is not nil.
func (ru *RelationshipUpdate) SetNillableMuting(b *bool) *RelationshipUpdate {
	if b != nil {
		ru.SetMuting(*b)
	}
	return ru
}

// Mutation returns the RelationshipMutation object of the builder.
func (ru *RelationshipUpdate) Mutation() *RelationshipMutation {
	return ru.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ru *RelationshipUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ru.sqlSave, ru.mutation, ru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ru *RelationshipUpdate) SaveX(ctx context.Context) int {
	affected, err := ru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ru *RelationshipUpdate) Exec(ctx context.Context) error {
	_, err := ru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ru *RelationshipUpdate) ExecX(ctx context.Context) {
	if err := ru.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ru *RelationshipUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(relationship.Table, relationship.Columns, sqlgraph.NewFieldSpec(relationship.FieldID, field.TypeString))
	if ps := ru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ru.mutation.Following(); ok {
		_spec.SetField(relationship.FieldFollowing, field.TypeBool, value)
	}
	if value, ok := ru.mutation.Requested(); ok {
		_spec.SetField(relationship.FieldRequested, field.TypeBool, value)
	}
	if value, ok := ru.mutation.Blocking(); ok {
		_spec.SetField(relationship.FieldBlocking, field.TypeBool, value)
	}
	if value, ok := ru.mutation.Muting(); ok {
		_spec.SetField(relationship.FieldMuting, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{relationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ru.mutation.done = true
	return n, nil
}

// RelationshipUpdateOne is the builder for updating a single Relationship entity.
type RelationshipUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RelationshipMutation
}

// SetFollowing sets the "following" field.
func (ruo *RelationshipUpdateOne) SetFollowing(b bool) *RelationshipUpdateOne {
	ruo.mutation.SetFollowing(b)
	return ruo
}

// SetNillableFollowing sets the "following" field if the given value is not nil.
func (ruo *RelationshipUpdateOne) SetNillableFollowing(b *bool) *RelationshipUpdateOne {
	if b != nil {
		ruo.SetFollowing(*b)
	}
	return ruo
}

// SetRequested sets the "requested" field.
func (ruo *RelationshipUpdateOne) SetRequested(b bool) *RelationshipUpdateOne {
	ruo.mutation.SetRequested(b)
	return ruo
}

// SetNillableRequested sets the "requested" field if the given value is not nil.
func (ruo *RelationshipUpdateOne) SetNillableRequested(b *bool) *RelationshipUpdateOne {
	if b != nil {
		ruo.SetRequested(*b)
	}
	return ruo
}

// SetBlocking sets the "blocking" field.
func (ruo *RelationshipUpdateOne) SetBlocking(b bool) *RelationshipUpdateOne {
	ruo.mutation.SetBlocking(b)
	return ruo
}

// SetNillableBlocking sets the "blocking" field if the given value is not nil.
func (ruo *RelationshipUpdateOne) SetNillableBlocking(b *bool) *RelationshipUpdateOne {
	if b != nil {
		ruo.SetBlocking(*b)
	}
	return ruo
}

// SetMuting sets the "muting" field.
func (ruo *RelationshipUpdateOne) SetMuting(b bool) *RelationshipUpdateOne {
	ruo.mutation.SetMuting(b)
	return ruo
}

// SetNillableMuting sets the "muting" field if the given value is not nil.
func (ruo *RelationshipUpdateOne) SetNillableMuting(b *bool) *RelationshipUpdateOne {
	if b != nil {
		ruo.SetMuting(*b)
	}
	return ruo
}

// Mutation returns the RelationshipMutation object of the builder.
func (ruo *RelationshipUpdateOne) Mutation() *RelationshipMutation {
	return ruo.mutation
}

// Where appends a list predicates to the RelationshipUpdate builder.
func (ruo *RelationshipUpdateOne) Where(ps ...predicate.Relationship) *RelationshipUpdateOne {
	ruo.mutation.Where(ps...)
	return ruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ruo *RelationshipUpdateOne) Select(field string, fields ...string) *RelationshipUpdateOne {
	ruo.fields = append([]string{field}, fields...)
	return ruo
}

// Save executes the query and returns the updated Relationship entity.
func (ruo *RelationshipUpdateOne) Save(ctx context.Context) (*Relationship, error) {
	return withHooks(ctx, ruo.sqlSave, ruo.mutation, ruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ruo *RelationshipUpdateOne) SaveX(ctx context.Context) *Relationship {
	node, err := ruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ruo *RelationshipUpdateOne) Exec(ctx context.Context) error {
	_, err := ruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ruo *RelationshipUpdateOne) ExecX(ctx context.Context) {
	if err := ruo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ruo *RelationshipUpdateOne) sqlSave(ctx context.Context) (_node *Relationship, err error) {
	_spec := sqlgraph.NewUpdateSpec(relationship.Table, relationship.Columns, sqlgraph.NewFieldSpec(relationship.FieldID, field.TypeString))
	id, ok := ruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Relationship.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, relationship.FieldID)
		for _, f := range fields {
			if !relationship.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != relationship.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ruo.mutation.Following(); ok {
		_spec.SetField(relationship.FieldFollowing, field.TypeBool, value)
	}
	if value, ok := ruo.mutation.Requested(); ok {
		_spec.SetField(relationship.FieldRequested, field.TypeBool, value)
	}
	if value, ok := ruo.mutation.Blocking(); ok {
		_spec.SetField(relationship.FieldBlocking, field.TypeBool, value)
	}
	if value, ok := ruo.mutation.Muting(); ok {
		_spec.SetField(relationship.FieldMuting, field.TypeBool, value)
	}
	_node = &Relationship{config: ruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{relationship.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ruo.mutation.done = true
	return _node, nil
}
