// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yumine/versia/sqlite/ent/favourite"
	"github.com/yumine/versia/sqlite/ent/predicate"
)

// FavouriteUpdate is the builder for updating Favourite entities.
type FavouriteUpdate struct {
	config
	hooks    []Hook
	mutation *FavouriteMutation
}

// Where appends a list predicates to the FavouriteUpdate builder.
func (fu *FavouriteUpdate) Where(ps ...predicate.Favourite) *FavouriteUpdate {
	fu.mutation.Where(ps...)
	return fu
}

// SetURI sets the "uri" field.
func (fu *FavouriteUpdate) SetURI(s string) *FavouriteUpdate {
	fu.mutation.SetURI(s)
	return fu
}

// SetAccountURI sets the "account_uri" field.
func (fu *FavouriteUpdate) SetAccountURI(s string) *FavouriteUpdate {
	fu.mutation.SetAccountURI(s)
	return fu
}

// SetStatusID sets the "status_id" field.
func (fu *FavouriteUpdate) SetStatusID(s string) *FavouriteUpdate {
	fu.mutation.SetStatusID(s)
	return fu
}

// Mutation returns the FavouriteMutation object of the builder.
func (fu *FavouriteUpdate) Mutation() *FavouriteMutation {
	return fu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (fu *FavouriteUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, fu.sqlSave, fu.mutation, fu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (fu *FavouriteUpdate) SaveX(ctx context.Context) int {
	affected, err := fu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (fu *FavouriteUpdate) Exec(ctx context.Context) error {
	_, err := fu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fu *FavouriteUpdate) ExecX(ctx context.Context) {
	if err := fu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (fu *FavouriteUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(favourite.Table, favourite.Columns, sqlgraph.NewFieldSpec(favourite.FieldID, field.TypeString))
	if ps := fu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := fu.mutation.URI(); ok {
		_spec.SetField(favourite.FieldURI, field.TypeString, value)
	}
	if value, ok := fu.mutation.AccountURI(); ok {
		_spec.SetField(favourite.FieldAccountURI, field.TypeString, value)
	}
	if value, ok := fu.mutation.StatusID(); ok {
		_spec.SetField(favourite.FieldStatusID, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, fu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{favourite.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	fu.mutation.done = true
	return n, nil
}

// FavouriteUpdateOne is the builder for updating a single Favourite entity.
type FavouriteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FavouriteMutation
}

// SetURI sets the "uri" field.
func (fuo *FavouriteUpdateOne) SetURI(s string) *FavouriteUpdateOne {
	fuo.mutation.SetURI(s)
	return fuo
}

// SetAccountURI sets the "account_uri" field.
func (fuo *FavouriteUpdateOne) SetAccountURI(s string) *FavouriteUpdateOne {
	fuo.mutation.SetAccountURI(s)
	return fuo
}

// SetStatusID sets the "status_id" field.
func (fuo *FavouriteUpdateOne) SetStatusID(s string) *FavouriteUpdateOne {
	fuo.mutation.SetStatusID(s)
	return fuo
}

// Mutation returns the FavouriteMutation object of the builder.
func (fuo *FavouriteUpdateOne) Mutation() *FavouriteMutation {
	return fuo.mutation
}

// Where appends a list predicates to the FavouriteUpdate builder.
func (fuo *FavouriteUpdateOne) Where(ps ...predicate.Favourite) *FavouriteUpdateOne {
	fuo.mutation.Where(ps...)
	return fuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (fuo *FavouriteUpdateOne) Select(field string, fields ...string) *FavouriteUpdateOne {
	fuo.fields = append([]string{field}, fields...)
	return fuo
}

// Save executes the query and returns the updated Favourite entity.
func (fuo *FavouriteUpdateOne) Save(ctx context.Context) (*Favourite, error) {
	return withHooks(ctx, fuo.sqlSave, fuo.mutation, fuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (fuo *FavouriteUpdateOne) SaveX(ctx context.Context) *Favourite {
	node, err := fuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (fuo *FavouriteUpdateOne) Exec(ctx context.Context) error {
	_, err := fuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fuo *FavouriteUpdateOne) ExecX(ctx context.Context) {
	if err := fuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (fuo *FavouriteUpdateOne) sqlSave(ctx context.Context) (_node *Favourite, err error) {
	_spec := sqlgraph.NewUpdateSpec(favourite.Table, favourite.Columns, sqlgraph.NewFieldSpec(favourite.FieldID, field.TypeString))
	id, ok := fuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Favourite.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := fuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, favourite.FieldID)
		for _, f := range fields {
			if !favourite.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != favourite.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := fuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := fuo.mutation.URI(); ok {
		_spec.SetField(favourite.FieldURI, field.TypeString, value)
	}
	if value, ok := fuo.mutation.AccountURI(); ok {
		_spec.SetField(favourite.FieldAccountURI, field.TypeString, value)
	}
	if value, ok := fuo.mutation.StatusID(); ok {
		_spec.SetField(favourite.FieldStatusID, field.TypeString, value)
	}
	_node = &Favourite{config: fuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, fuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{favourite.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	fuo.mutation.done = true
	return _node, nil
}
