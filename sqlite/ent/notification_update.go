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
	"github.com/yumine/versia/sqlite/ent/notification"
	"github.com/yumine/versia/sqlite/ent/predicate"
)

// NotificationUpdate is the builder for updating Notification entities.
type NotificationUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationMutation
}

// Where appends a list predicates to the NotificationUpdate builder.
func (nu *NotificationUpdate) Where(ps ...predicate.Notification) *NotificationUpdate {
	nu.mutation.Where(ps...)
	return nu
}

// SetNotifiedURI sets the "notified_uri" field.
func (nu *NotificationUpdate) SetNotifiedURI(s string) *NotificationUpdate {
	nu.mutation.SetNotifiedURI(s)
	return nu
}

// SetAccountURI sets the "account_uri" field.
func (nu *NotificationUpdate) SetAccountURI(s string) *NotificationUpdate {
	nu.mutation.SetAccountURI(s)
	return nu
}

// SetType sets the "type" field.
func (nu *NotificationUpdate) SetType(s string) *NotificationUpdate {
	nu.mutation.SetType(s)
	return nu
}

// SetStatusID sets the "status_id" field.
func (nu *NotificationUpdate) SetStatusID(s string) *NotificationUpdate {
	nu.mutation.SetStatusID(s)
	return nu
}

// SetNillableStatusID sets the "status_id" field if the given value is not nil.
func (nu *NotificationUpdate) SetNillableStatusID(s *string) *NotificationUpdate {
	if s != nil {
		nu.SetStatusID(*s)
	}
	return nu
}

// ClearStatusID clears the value of the "status_id" field.
func (nu *NotificationUpdate) ClearStatusID() *NotificationUpdate {
	nu.mutation.ClearStatusID()
	return nu
}

// SetCreatedAt sets the "created_at" field.
func (nu *NotificationUpdate) SetCreatedAt(t time.Time) *NotificationUpdate {
	nu.mutation.SetCreatedAt(t)
	return nu
}

// Mutation returns the NotificationMutation object of the builder.
func (nu *NotificationUpdate) Mutation() *NotificationMutation {
	return nu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (nu *NotificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, nu.sqlSave, nu.mutation, nu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (nu *NotificationUpdate) SaveX(ctx context.Context) int {
	affected, err := nu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (nu *NotificationUpdate) Exec(ctx context.Context) error {
	_, err := nu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (nu *NotificationUpdate) ExecX(ctx context.Context) {
	if err := nu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (nu *NotificationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(notification.Table, notification.Columns, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString))
	if ps := nu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := nu.mutation.NotifiedURI(); ok {
		_spec.SetField(notification.FieldNotifiedURI, field.TypeString, value)
	}
	if value, ok := nu.mutation.AccountURI(); ok {
		_spec.SetField(notification.FieldAccountURI, field.TypeString, value)
	}
	if value, ok := nu.mutation.GetType(); ok {
		_spec.SetField(notification.FieldType, field.TypeString, value)
	}
	if value, ok := nu.mutation.StatusID(); ok {
		_spec.SetField(notification.FieldStatusID, field.TypeString, value)
	}
	if nu.mutation.StatusIDCleared() {
		_spec.ClearField(notification.FieldStatusID, field.TypeString)
	}
	if value, ok := nu.mutation.CreatedAt(); ok {
		_spec.SetField(notification.FieldCreatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, nu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	nu.mutation.done = true
	return n, nil
}

// NotificationUpdateOne is the builder for updating a single Notification entity.
type NotificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationMutation
}

// SetNotifiedURI sets the "notified_uri" field.
func (nuo *NotificationUpdateOne) SetNotifiedURI(s string) *NotificationUpdateOne {
	nuo.mutation.SetNotifiedURI(s)
	return nuo
}

// SetAccountURI sets the "account_uri" field.
func (nuo *NotificationUpdateOne) SetAccountURI(s string) *NotificationUpdateOne {
	nuo.mutation.SetAccountURI(s)
	return nuo
}

// SetType sets the "type" field.
func (nuo *NotificationUpdateOne) SetType(s string) *NotificationUpdateOne {
	nuo.mutation.SetType(s)
	return nuo
}

// SetStatusID sets the "status_id" field.
func (nuo *NotificationUpdateOne) SetStatusID(s string) *NotificationUpdateOne {
	nuo.mutation.SetStatusID(s)
	return nuo
}

// SetNillableStatusID sets the "status_id" field if the given value is not nil.
func (nuo *NotificationUpdateOne) SetNillableStatusID(s *string) *NotificationUpdateOne {
	if s != nil {
		nuo.SetStatusID(*s)
	}
	return nuo
}

// ClearStatusID clears the value of the "status_id" field.
func (nuo *NotificationUpdateOne) ClearStatusID() *NotificationUpdateOne {
	nuo.mutation.ClearStatusID()
	return nuo
}

// SetCreatedAt sets the "created_at" field.
func (nuo *NotificationUpdateOne) SetCreatedAt(t time.Time) *NotificationUpdateOne {
	nuo.mutation.SetCreatedAt(t)
	return nuo
}

// Mutation returns the NotificationMutation object of the builder.
func (nuo *NotificationUpdateOne) Mutation() *NotificationMutation {
	return nuo.mutation
}

// Where appends a list predicates to the NotificationUpdate builder.
func (nuo *NotificationUpdateOne) Where(ps ...predicate.Notification) *NotificationUpdateOne {
	nuo.mutation.Where(ps...)
	return nuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (nuo *NotificationUpdateOne) Select(field string, fields ...string) *NotificationUpdateOne {
	nuo.fields = append([]string{field}, fields...)
	return nuo
}

// Save executes the query and returns the updated Notification entity.
func (nuo *NotificationUpdateOne) Save(ctx context.Context) (*Notification, error) {
	return withHooks(ctx, nuo.sqlSave, nuo.mutation, nuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (nuo *NotificationUpdateOne) SaveX(ctx context.Context) *Notification {
	node, err := nuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (nuo *NotificationUpdateOne) Exec(ctx context.Context) error {
	_, err := nuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (nuo *NotificationUpdateOne) ExecX(ctx context.Context) {
	if err := nuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (nuo *NotificationUpdateOne) sqlSave(ctx context.Context) (_node *Notification, err error) {
	_spec := sqlgraph.NewUpdateSpec(notification.Table, notification.Columns, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeString))
	id, ok := nuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Notification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := nuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notification.FieldID)
		for _, f := range fields {
			if !notification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notification.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := nuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := nuo.mutation.NotifiedURI(); ok {
		_spec.SetField(notification.FieldNotifiedURI, field.TypeString, value)
	}
	if value, ok := nuo.mutation.AccountURI(); ok {
		_spec.SetField(notification.FieldAccountURI, field.TypeString, value)
	}
	if value, ok := nuo.mutation.GetType(); ok {
		_spec.SetField(notification.FieldType, field.TypeString, value)
	}
	if value, ok := nuo.mutation.StatusID(); ok {
		_spec.SetField(notification.FieldStatusID, field.TypeString, value)
	}
	if nuo.mutation.StatusIDCleared() {
		_spec.ClearField(notification.FieldStatusID, field.TypeString)
	}
	if value, ok := nuo.mutation.CreatedAt(); ok {
		_spec.SetField(notification.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Notification{config: nuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, nuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	nuo.mutation.done = true
	return _node, nil
}
