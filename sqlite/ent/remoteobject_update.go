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
	"github.com/yumine/versia/sqlite/ent/predicate"
	"github.com/yumine/versia/sqlite/ent/remoteobject"
)

// RemoteObjectUpdate is the builder for updating RemoteObject entities.
type RemoteObjectUpdate struct {
	config
	hooks    []Hook
	mutation *RemoteObjectMutation
}

// Where appends a list predicates to the RemoteObjectUpdate builder.
func (rou *RemoteObjectUpdate) Where(ps ...predicate.RemoteObject) *RemoteObjectUpdate {
	rou.mutation.Where(ps...)
	return rou
}

// SetRemoteID sets the "remote_id" field.
func (rou *RemoteObjectUpdate) SetRemoteID(s string) *RemoteObjectUpdate {
	rou.mutation.SetRemoteID(s)
	return rou
}

// SetType sets the "type" field.
func (rou *RemoteObjectUpdate) SetType(s string) *RemoteObjectUpdate {
	rou.mutation.SetType(s)
	return rou
}

// SetURI sets the "uri" field.
func (rou *RemoteObjectUpdate) SetURI(s string) *RemoteObjectUpdate {
	rou.mutation.SetURI(s)
	return rou
}

// SetAuthorURI sets the "author_uri" field.
func (rou *RemoteObjectUpdate) SetAuthorURI(s string) *RemoteObjectUpdate {
	rou.mutation.SetAuthorURI(s)
	return rou
}

// SetNillableAuthorURI sets the "author_uri" field if the given value is not nil.
func (rou *RemoteObjectUpdate) SetNillableAuthorURI(s *string) *RemoteObjectUpdate {
	if s != nil {
		rou.SetAuthorURI(*s)
	}
	return rou
}

// ClearAuthorURI clears the value of the "author_uri" field.
func (rou *RemoteObjectUpdate) ClearAuthorURI() *RemoteObjectUpdate {
	rou.mutation.ClearAuthorURI()
	return rou
}

// SetCreatedAt sets the "created_at" field.
func (rou *RemoteObjectUpdate) SetCreatedAt(t time.Time) *RemoteObjectUpdate {
	rou.mutation.SetCreatedAt(t)
	return rou
}

// SetExtraData sets the "extra_data" field.
func (rou *RemoteObjectUpdate) SetExtraData(b []byte) *RemoteObjectUpdate {
	rou.mutation.SetExtraData(b)
	return rou
}

// ClearExtraData clears the value of the "extra_data" field.
func (rou *RemoteObjectUpdate) ClearExtraData() *RemoteObjectUpdate {
	rou.mutation.ClearExtraData()
	return rou
}

// SetExtensions sets the "extensions" field.
func (rou *RemoteObjectUpdate) SetExtensions(b []byte) *RemoteObjectUpdate {
	rou.mutation.SetExtensions(b)
	return rou
}

// ClearExtensions clears the value of the "extensions" field.
func (rou *RemoteObjectUpdate) ClearExtensions() *RemoteObjectUpdate {
	rou.mutation.ClearExtensions()
	return rou
}

// Mutation returns the RemoteObjectMutation object of the builder.
func (rou *RemoteObjectUpdate) Mutation() *RemoteObjectMutation {
	return rou.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (rou *RemoteObjectUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, rou.sqlSave, rou.mutation, rou.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rou *RemoteObjectUpdate) SaveX(ctx context.Context) int {
	affected, err := rou.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (rou *RemoteObjectUpdate) Exec(ctx context.Context) error {
	_, err := rou.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rou *RemoteObjectUpdate) ExecX(ctx context.Context) {
	if err := rou.Exec(ctx); err != nil {
		panic(err)
	}
}

func (rou *RemoteObjectUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(remoteobject.Table, remoteobject.Columns, sqlgraph.NewFieldSpec(remoteobject.FieldID, field.TypeString))
	if ps := rou.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := rou.mutation.RemoteID(); ok {
		_spec.SetField(remoteobject.FieldRemoteID, field.TypeString, value)
	}
	if value, ok := rou.mutation.GetType(); ok {
		_spec.SetField(remoteobject.FieldType, field.TypeString, value)
	}
	if value, ok := rou.mutation.URI(); ok {
		_spec.SetField(remoteobject.FieldURI, field.TypeString, value)
	}
	if value, ok := rou.mutation.AuthorURI(); ok {
		_spec.SetField(remoteobject.FieldAuthorURI, field.TypeString, value)
	}
	if rou.mutation.AuthorURICleared() {
		_spec.ClearField(remoteobject.FieldAuthorURI, field.TypeString)
	}
	if value, ok := rou.mutation.CreatedAt(); ok {
		_spec.SetField(remoteobject.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := rou.mutation.ExtraData(); ok {
		_spec.SetField(remoteobject.FieldExtraData, field.TypeBytes, value)
	}
	if rou.mutation.ExtraDataCleared() {
		_spec.ClearField(remoteobject.FieldExtraData, field.TypeBytes)
	}
	if value, ok := rou.mutation.Extensions(); ok {
		_spec.SetField(remoteobject.FieldExtensions, field.TypeBytes, value)
	}
	if rou.mutation.ExtensionsCleared() {
		_spec.ClearField(remoteobject.FieldExtensions, field.TypeBytes)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, rou.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{remoteobject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	rou.mutation.done = true
	return n, nil
}

// RemoteObjectUpdateOne is the builder for updating a single RemoteObject entity.
type RemoteObjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RemoteObjectMutation
}

// SetRemoteID sets the "remote_id" field.
func (rouo *RemoteObjectUpdateOne) SetRemoteID(s string) *RemoteObjectUpdateOne {
	rouo.mutation.SetRemoteID(s)
	return rouo
}

// SetType sets the "type" field.
func (rouo *RemoteObjectUpdateOne) SetType(s string) *RemoteObjectUpdateOne {
	rouo.mutation.SetType(s)
	return rouo
}

// SetURI sets the "uri" field.
func (rouo *RemoteObjectUpdateOne) SetURI(s string) *RemoteObjectUpdateOne {
	rouo.mutation.SetURI(s)
	return rouo
}

// SetAuthorURI sets the "author_uri" field.
func (rouo *RemoteObjectUpdateOne) SetAuthorURI(s string) *RemoteObjectUpdateOne {
	rouo.mutation.SetAuthorURI(s)
	return rouo
}

// SetNillableAuthorURI sets the "author_uri" field if the given value is not nil.
func (rouo *RemoteObjectUpdateOne) SetNillableAuthorURI(s *string) *RemoteObjectUpdateOne {
	if s != nil {
		rouo.SetAuthorURI(*s)
	}
	return rouo
}

// ClearAuthorURI clears the value of the "author_uri" field.
func (rouo *RemoteObjectUpdateOne) ClearAuthorURI() *RemoteObjectUpdateOne {
	rouo.mutation.ClearAuthorURI()
	return rouo
}

// SetCreatedAt sets the "created_at" field.
func (rouo *RemoteObjectUpdateOne) SetCreatedAt(t time.Time) *RemoteObjectUpdateOne {
	rouo.mutation.SetCreatedAt(t)
	return rouo
}

// SetExtraData sets the "extra_data" field.
func (rouo *RemoteObjectUpdateOne) SetExtraData(b []byte) *RemoteObjectUpdateOne {
	rouo.mutation.SetExtraData(b)
	return rouo
}

// ClearExtraData clears the value of the "extra_data" field.
func (rouo *RemoteObjectUpdateOne) ClearExtraData() *RemoteObjectUpdateOne {
	rouo.mutation.ClearExtraData()
	return rouo
}

// SetExtensions sets the "extensions" field.
func (rouo *RemoteObjectUpdateOne) SetExtensions(b []byte) *RemoteObjectUpdateOne {
	rouo.mutation.SetExtensions(b)
	return rouo
}

// ClearExtensions clears the value of the "extensions" field.
func (rouo *RemoteObjectUpdateOne) ClearExtensions() *RemoteObjectUpdateOne {
	rouo.mutation.ClearExtensions()
	return rouo
}

// Mutation returns the RemoteObjectMutation object of the builder.
func (rouo *RemoteObjectUpdateOne) Mutation() *RemoteObjectMutation {
	return rouo.mutation
}

// Where appends a list predicates to the RemoteObjectUpdate builder.
func (rouo *RemoteObjectUpdateOne) Where(ps ...predicate.RemoteObject) *RemoteObjectUpdateOne {
	rouo.mutation.Where(ps...)
	return rouo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (rouo *RemoteObjectUpdateOne) Select(field string, fields ...string) *RemoteObjectUpdateOne {
	rouo.fields = append([]string{field}, fields...)
	return rouo
}

// Save executes the query and returns the updated RemoteObject entity.
func (rouo *RemoteObjectUpdateOne) Save(ctx context.Context) (*RemoteObject, error) {
	return withHooks(ctx, rouo.sqlSave, rouo.mutation, rouo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rouo *RemoteObjectUpdateOne) SaveX(ctx context.Context) *RemoteObject {
	node, err := rouo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (rouo *RemoteObjectUpdateOne) Exec(ctx context.Context) error {
	_, err := rouo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rouo *RemoteObjectUpdateOne) ExecX(ctx context.Context) {
	if err := rouo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (rouo *RemoteObjectUpdateOne) sqlSave(ctx context.Context) (_node *RemoteObject, err error) {
	_spec := sqlgraph.NewUpdateSpec(remoteobject.Table, remoteobject.Columns, sqlgraph.NewFieldSpec(remoteobject.FieldID, field.TypeString))
	id, ok := rouo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RemoteObject.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := rouo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, remoteobject.FieldID)
		for _, f := range fields {
			if !remoteobject.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != remoteobject.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := rouo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := rouo.mutation.RemoteID(); ok {
		_spec.SetField(remoteobject.FieldRemoteID, field.TypeString, value)
	}
	if value, ok := rouo.mutation.GetType(); ok {
		_spec.SetField(remoteobject.FieldType, field.TypeString, value)
	}
	if value, ok := rouo.mutation.URI(); ok {
		_spec.SetField(remoteobject.FieldURI, field.TypeString, value)
	}
	if value, ok := rouo.mutation.AuthorURI(); ok {
		_spec.SetField(remoteobject.FieldAuthorURI, field.TypeString, value)
	}
	if rouo.mutation.AuthorURICleared() {
		_spec.ClearField(remoteobject.FieldAuthorURI, field.TypeString)
	}
	if value, ok := rouo.mutation.CreatedAt(); ok {
		_spec.SetField(remoteobject.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := rouo.mutation.ExtraData(); ok {
		_spec.SetField(remoteobject.FieldExtraData, field.TypeBytes, value)
	}
	if rouo.mutation.ExtraDataCleared() {
		_spec.ClearField(remoteobject.FieldExtraData, field.TypeBytes)
	}
	if value, ok := rouo.mutation.Extensions(); ok {
		_spec.SetField(remoteobject.FieldExtensions, field.TypeBytes, value)
	}
	if rouo.mutation.ExtensionsCleared() {
		_spec.ClearField(remoteobject.FieldExtensions, field.TypeBytes)
	}
	_node = &RemoteObject{config: rouo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, rouo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{remoteobject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	rouo.mutation.done = true
	return _node, nil
}
