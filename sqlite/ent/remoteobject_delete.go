// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yumine/versia/sqlite/ent/predicate"
	"github.com/yumine/versia/sqlite/ent/remoteobject"
)

// RemoteObjectDelete is the builder for deleting a RemoteObject entity.
type RemoteObjectDelete struct {
	config
	hooks    []Hook
	mutation *RemoteObjectMutation
}

// Where appends a list predicates to the RemoteObjectDelete builder.
func (rod *RemoteObjectDelete) Where(ps ...predicate.RemoteObject) *RemoteObjectDelete {
	rod.mutation.Where(ps...)
	return rod
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (rod *RemoteObjectDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, rod.sqlExec, rod.mutation, rod.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (rod *RemoteObjectDelete) ExecX(ctx context.Context) int {
	n, err := rod.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (rod *RemoteObjectDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(remoteobject.Table, sqlgraph.NewFieldSpec(remoteobject.FieldID, field.TypeString))
	if ps := rod.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, rod.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	rod.mutation.done = true
	return affected, err
}

// RemoteObjectDeleteOne is the builder for deleting a single RemoteObject entity.
type RemoteObjectDeleteOne struct {
	rod *RemoteObjectDelete
}

// Where appends a list predicates to the RemoteObjectDelete builder.
func (rodo *RemoteObjectDeleteOne) Where(ps ...predicate.RemoteObject) *RemoteObjectDeleteOne {
	rodo.rod.mutation.Where(ps...)
	return rodo
}

// Exec executes the deletion query.
func (rodo *RemoteObjectDeleteOne) Exec(ctx context.Context) error {
	n, err := rodo.rod.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{remoteobject.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (rodo *RemoteObjectDeleteOne) ExecX(ctx context.Context) {
	if err := rodo.Exec(ctx); err != nil {
		panic(err)
	}
}
