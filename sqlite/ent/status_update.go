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
	"github.com/yumine/versia/sqlite/ent/status"
)

// StatusUpdate is the builder for updating Status entities.
type StatusUpdate struct {
	config
	hooks    []Hook
	mutation *StatusMutation
}

// Where appends a list predicates to the StatusUpdate builder.
func (su *StatusUpdate) Where(ps ...predicate.Status) *StatusUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetURI sets the "uri" field.
func (su *StatusUpdate) SetURI(s string) *StatusUpdate {
	su.mutation.SetURI(s)
	return su
}

// SetAuthorURI sets the "author_uri" field.
func (su *StatusUpdate) SetAuthorURI(s string) *StatusUpdate {
	su.mutation.SetAuthorURI(s)
	return su
}

// SetContent sets the "content" field.
func (su *StatusUpdate) SetContent(s string) *StatusUpdate {
	su.mutation.SetContent(s)
	return su
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (su *StatusUpdate) SetNillableContent(s *string) *StatusUpdate {
	if s != nil {
		su.SetContent(*s)
	}
	return su
}

// ClearContent clears the value of the "content" field.
func (su *StatusUpdate) ClearContent() *StatusUpdate {
	su.mutation.ClearContent()
	return su
}

// SetContentType sets the "content_type" field.
func (su *StatusUpdate) SetContentType(s string) *StatusUpdate {
	su.mutation.SetContentType(s)
	return su
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (su *StatusUpdate) SetNillableContentType(s *string) *StatusUpdate {
	if s != nil {
		su.SetContentType(*s)
	}
	return su
}

// ClearContentType clears the value of the "content_type" field.
func (su *StatusUpdate) ClearContentType() *StatusUpdate {
	su.mutation.ClearContentType()
	return su
}

// SetVisibility sets the "visibility" field.
func (su *StatusUpdate) SetVisibility(s string) *StatusUpdate {
	su.mutation.SetVisibility(s)
	return su
}

// SetNillableVisibility sets the "visibility" field if the given value is not nil.
func (su *StatusUpdate) SetNillableVisibility(s *string) *StatusUpdate {
	if s != nil {
		su.SetVisibility(*s)
	}
	return su
}

// SetSpoilerText sets the "spoiler_text" field.
func (su *StatusUpdate) SetSpoilerText(s string) *StatusUpdate {
	su.mutation.SetSpoilerText(s)
	return su
}

// SetNillableSpoilerText sets the "spoiler_text" field if the given value is not nil.
func (su *StatusUpdate) SetNillableSpoilerText(s *string) *StatusUpdate {
	if s != nil {
		su.SetSpoilerText(*s)
	}
	return su
}

// ClearSpoilerText clears the value of the "spoiler_text" field.
func (su *StatusUpdate) ClearSpoilerText() *StatusUpdate {
	su.mutation.ClearSpoilerText()
	return su
}

// SetSensitive sets the "sensitive" field.
func (su *StatusUpdate) SetSensitive(b bool) *StatusUpdate {
	su.mutation.SetSensitive(b)
	return su
}

// SetNillableSensitive sets the "sensitive" field if the given value is not nil.
func (su *StatusUpdate) SetNillableSensitive(b *bool) *StatusUpdate {
	if b != nil {
		su.SetSensitive(*b)
	}
	return su
}

// SetInReplyToID sets the "in_reply_to_id" field.
func (su *StatusUpdate) SetInReplyToID(s string) *StatusUpdate {
	su.mutation.SetInReplyToID(s)
	return su
}

// SetNillableInReplyToID sets the "in_reply_to_id" field if the given value is not nil.
func (su *StatusUpdate) SetNillableInReplyToID(s *string) *StatusUpdate {
	if s != nil {
		su.SetInReplyToID(*s)
	}
	return su
}

// ClearInReplyToID clears the value of the "in_reply_to_id" field.
func (su *StatusUpdate) ClearInReplyToID() *StatusUpdate {
	su.mutation.ClearInReplyToID()
	return su
}

// SetQuotingID sets the "quoting_id" field.
func (su *StatusUpdate) SetQuotingID(s string) *StatusUpdate {
	su.mutation.SetQuotingID(s)
	return su
}

// SetNillableQuotingID sets the "quoting_id" field if the given value is not nil.
func (su *StatusUpdate) SetNillableQuotingID(s *string) *StatusUpdate {
	if s != nil {
		su.SetQuotingID(*s)
	}
	return su
}

// ClearQuotingID clears the value of the "quoting_id" field.
func (su *StatusUpdate) ClearQuotingID() *StatusUpdate {
	su.mutation.ClearQuotingID()
	return su
}

// SetReblogOfID sets the "reblog_of_id" field.
func (su *StatusUpdate) SetReblogOfID(s string) *StatusUpdate {
	su.mutation.SetReblogOfID(s)
	return su
}

// SetNillableReblogOfID sets the "reblog_of_id" field if the given value is not nil.
func (su *StatusUpdate) SetNillableReblogOfID(s *string) *StatusUpdate {
	if s != nil {
		su.SetReblogOfID(*s)
	}
	return su
}

// ClearReblogOfID clears the value of the "reblog_of_id" field.
func (su *StatusUpdate) ClearReblogOfID() *StatusUpdate {
	su.mutation.ClearReblogOfID()
	return su
}

// SetInstanceHost sets the "instance_host" field.
func (su *StatusUpdate) SetInstanceHost(s string) *StatusUpdate {
	su.mutation.SetInstanceHost(s)
	return su
}

// SetNillableInstanceHost sets the "instance_host" field if the given value is not nil.
func (su *StatusUpdate) SetNillableInstanceHost(s *string) *StatusUpdate {
	if s != nil {
		su.SetInstanceHost(*s)
	}
	return su
}

// ClearInstanceHost clears the value of the "instance_host" field.
func (su *StatusUpdate) ClearInstanceHost() *StatusUpdate {
	su.mutation.ClearInstanceHost()
	return su
}

// SetCreatedAt sets the "created_at" field.
func (su *StatusUpdate) SetCreatedAt(t time.Time) *StatusUpdate {
	su.mutation.SetCreatedAt(t)
	return su
}

// Mutation returns the StatusMutation object of the builder.
func (su *StatusUpdate) Mutation() *StatusMutation {
	return su.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *StatusUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *StatusUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *StatusUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *StatusUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

func (su *StatusUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(status.Table, status.Columns, sqlgraph.NewFieldSpec(status.FieldID, field.TypeString))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.URI(); ok {
		_spec.SetField(status.FieldURI, field.TypeString, value)
	}
	if value, ok := su.mutation.AuthorURI(); ok {
		_spec.SetField(status.FieldAuthorURI, field.TypeString, value)
	}
	if value, ok := su.mutation.Content(); ok {
		_spec.SetField(status.FieldContent, field.TypeString, value)
	}
	if su.mutation.ContentCleared() {
		_spec.ClearField(status.FieldContent, field.TypeString)
	}
	if value, ok := su.mutation.ContentType(); ok {
		_spec.SetField(status.FieldContentType, field.TypeString, value)
	}
	if su.mutation.ContentTypeCleared() {
		_spec.ClearField(status.FieldContentType, field.TypeString)
	}
	if value, ok := su.mutation.Visibility(); ok {
		_spec.SetField(status.FieldVisibility, field.TypeString, value)
	}
	if value, ok := su.mutation.SpoilerText(); ok {
		_spec.SetField(status.FieldSpoilerText, field.TypeString, value)
	}
	if su.mutation.SpoilerTextCleared() {
		_spec.ClearField(status.FieldSpoilerText, field.TypeString)
	}
	if value, ok := su.mutation.Sensitive(); ok {
		_spec.SetField(status.FieldSensitive, field.TypeBool, value)
	}
	if value, ok := su.mutation.InReplyToID(); ok {
		_spec.SetField(status.FieldInReplyToID, field.TypeString, value)
	}
	if su.mutation.InReplyToIDCleared() {
		_spec.ClearField(status.FieldInReplyToID, field.TypeString)
	}
	if value, ok := su.mutation.QuotingID(); ok {
		_spec.SetField(status.FieldQuotingID, field.TypeString, value)
	}
	if su.mutation.QuotingIDCleared() {
		_spec.ClearField(status.FieldQuotingID, field.TypeString)
	}
	if value, ok := su.mutation.ReblogOfID(); ok {
		_spec.SetField(status.FieldReblogOfID, field.TypeString, value)
	}
	if su.mutation.ReblogOfIDCleared() {
		_spec.ClearField(status.FieldReblogOfID, field.TypeString)
	}
	if value, ok := su.mutation.InstanceHost(); ok {
		_spec.SetField(status.FieldInstanceHost, field.TypeString, value)
	}
	if su.mutation.InstanceHostCleared() {
		_spec.ClearField(status.FieldInstanceHost, field.TypeString)
	}
	if value, ok := su.mutation.CreatedAt(); ok {
		_spec.SetField(status.FieldCreatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{status.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// StatusUpdateOne is the builder for updating a single Status entity.
type StatusUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StatusMutation
}

// SetURI sets the "uri" field.
func (suo *StatusUpdateOne) SetURI(s string) *StatusUpdateOne {
	suo.mutation.SetURI(s)
	return suo
}

// SetAuthorURI sets the "author_uri" field.
func (suo *StatusUpdateOne) SetAuthorURI(s string) *StatusUpdateOne {
	suo.mutation.SetAuthorURI(s)
	return suo
}

// SetContent sets the "content" field.
func (suo *StatusUpdateOne) SetContent(s string) *StatusUpdateOne {
	suo.mutation.SetContent(s)
	return suo
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (suo *StatusUpdateOne) SetNillableContent(s *string) *StatusUpdateOne {
	if s != nil {
		suo.SetContent(*s)
	}
	return suo
}

// ClearContent clears the value of the "content" field.
func (suo *StatusUpdateOne) ClearContent() *StatusUpdateOne {
	suo.mutation.ClearContent()
	return suo
}

// SetContentType sets the "content_type" field.
func (suo *StatusUpdateOne) SetContentType(s string) *StatusUpdateOne {
	suo.mutation.SetContentType(s)
	return suo
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (suo *StatusUpdateOne) SetNillableContentType(s *string) *StatusUpdateOne {
	if s != nil {
		suo.SetContentType(*s)
	}
	return suo
}

// ClearContentType clears the value of the "content_type" field.
func (suo *StatusUpdateOne) ClearContentType() *StatusUpdateOne {
	suo.mutation.ClearContentType()
	return suo
}

// SetVisibility sets the "visibility" field.
func (suo *StatusUpdateOne) SetVisibility(s string) *StatusUpdateOne {
	suo.mutation.SetVisibility(s)
	return suo
}

// SetNillableVisibility sets the "visibility" field if the given value is not nil.
func (suo *StatusUpdateOne) SetNillableVisibility(s *string) *StatusUpdateOne {
	if s != nil {
		suo.SetVisibility(*s)
	}
	return suo
}

// SetSpoilerText sets the "spoiler_text" field.
func (suo *StatusUpdateOne) SetSpoilerText(s string) *StatusUpdateOne {
	suo.mutation.SetSpoilerText(s)
	return suo
}

// SetNillableSpoilerText sets the "spoiler_text" field if the given value is not nil.
func (suo *StatusUpdateOne) SetNillableSpoilerText(s *string) *StatusUpdateOne {
	if s != nil {
		suo.SetSpoilerText(*s)
	}
	return suo
}

// ClearSpoilerText clears the value of the "spoiler_text" field.
func (suo *StatusUpdateOne) ClearSpoilerText() *StatusUpdateOne {
	suo.mutation.ClearSpoilerText()
	return suo
}

// SetSensitive sets the "sensitive" field.
func (suo *StatusUpdateOne) SetSensitive(b bool) *StatusUpdateOne {
	suo.mutation.SetSensitive(b)
	return suo
}

// SetNillableSensitive sets the "sensitive" field if the given value is not nil.
func (suo *StatusUpdateOne) SetNillableSensitive(b *bool) *StatusUpdateOne {
	if b != nil {
		suo.SetSensitive(*b)
	}
	return suo
}

// SetInReplyToID sets the "in_reply_to_id" field.
func (suo *StatusUpdateOne) SetInReplyToID(s string) *StatusUpdateOne {
	suo.mutation.SetInReplyToID(s)
	return suo
}

// SetNillableInReplyToID sets the "in_reply_to_id" field if the given value is not nil.
func (suo *StatusUpdateOne) SetNillableInReplyToID(s *string) *StatusUpdateOne {
	if s != nil {
		suo.SetInReplyToID(*s)
	}
	return suo
}

// ClearInReplyToID clears the value of the "in_reply_to_id" field.
func (suo *StatusUpdateOne) ClearInReplyToID() *StatusUpdateOne {
	suo.mutation.ClearInReplyToID()
	return suo
}

// SetQuotingID sets the "quoting_id" field.
func (suo *StatusUpdateOne) SetQuotingID(s string) *StatusUpdateOne {
	suo.mutation.SetQuotingID(s)
	return suo
}

// SetNillableQuotingID sets the "quoting_id" field if the given value is not nil.
func (suo *StatusUpdateOne) SetNillableQuotingID(s *string) *StatusUpdateOne {
	if s != nil {
		suo.SetQuotingID(*s)
	}
	return suo
}

// ClearQuotingID clears the value of the "quoting_id" field.
func (suo *StatusUpdateOne) ClearQuotingID() *StatusUpdateOne {
	suo.mutation.ClearQuotingID()
	return suo
}

// SetReblogOfID sets the "reblog_of_id" field.
func (suo *StatusUpdateOne) SetReblogOfID(s string) *StatusUpdateOne {
	suo.mutation.SetReblogOfID(s)
	return suo
}

// SetNillableReblogOfID sets the "reblog_of_id" field if the given value is not nil.
func (suo *StatusUpdateOne) SetNillableReblogOfID(s *string) *StatusUpdateOne {
	if s != nil {
		suo.SetReblogOfID(*s)
	}
	return suo
}

// ClearReblogOfID clears the value of the "reblog_of_id" field.
func (suo *StatusUpdateOne) ClearReblogOfID() *StatusUpdateOne {
	suo.mutation.ClearReblogOfID()
	return suo
}

// SetInstanceHost sets the "instance_host" field.
func (suo *StatusUpdateOne) SetInstanceHost(s string) *StatusUpdateOne {
	suo.mutation.SetInstanceHost(s)
	return suo
}

// SetNillableInstanceHost sets the "instance_host" field if the given value is not nil.
func (suo *StatusUpdateOne) SetNillableInstanceHost(s *string) *StatusUpdateOne {
	if s != nil {
		suo.SetInstanceHost(*s)
	}
	return suo
}

// ClearInstanceHost clears the value of the "instance_host" field.
func (suo *StatusUpdateOne) ClearInstanceHost() *StatusUpdateOne {
	suo.mutation.ClearInstanceHost()
	return suo
}

// SetCreatedAt sets the "created_at" field.
func (suo *StatusUpdateOne) SetCreatedAt(t time.Time) *StatusUpdateOne {
	suo.mutation.SetCreatedAt(t)
	return suo
}

// Mutation returns the StatusMutation object of the builder.
func (suo *StatusUpdateOne) Mutation() *StatusMutation {
	return suo.mutation
}

// Where appends a list predicates to the StatusUpdate builder.
func (suo *StatusUpdateOne) Where(ps ...predicate.Status) *StatusUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *StatusUpdateOne) Select(field string, fields ...string) *StatusUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Status entity.
func (suo *StatusUpdateOne) Save(ctx context.Context) (*Status, error) {
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *StatusUpdateOne) SaveX(ctx context.Context) *Status {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *StatusUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *StatusUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (suo *StatusUpdateOne) sqlSave(ctx context.Context) (_node *Status, err error) {
	_spec := sqlgraph.NewUpdateSpec(status.Table, status.Columns, sqlgraph.NewFieldSpec(status.FieldID, field.TypeString))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Status.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, status.FieldID)
		for _, f := range fields {
			if !status.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != status.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.URI(); ok {
		_spec.SetField(status.FieldURI, field.TypeString, value)
	}
	if value, ok := suo.mutation.AuthorURI(); ok {
		_spec.SetField(status.FieldAuthorURI, field.TypeString, value)
	}
	if value, ok := suo.mutation.Content(); ok {
		_spec.SetField(status.FieldContent, field.TypeString, value)
	}
	if suo.mutation.ContentCleared() {
		_spec.ClearField(status.FieldContent, field.TypeString)
	}
	if value, ok := suo.mutation.ContentType(); ok {
		_spec.SetField(status.FieldContentType, field.TypeString, value)
	}
	if suo.mutation.ContentTypeCleared() {
		_spec.ClearField(status.FieldContentType, field.TypeString)
	}
	if value, ok := suo.mutation.Visibility(); ok {
		_spec.SetField(status.FieldVisibility, field.TypeString, value)
	}
	if value, ok := suo.mutation.SpoilerText(); ok {
		_spec.SetField(status.FieldSpoilerText, field.TypeString, value)
	}
	if suo.mutation.SpoilerTextCleared() {
		_spec.ClearField(status.FieldSpoilerText, field.TypeString)
	}
	if value, ok := suo.mutation.Sensitive(); ok {
		_spec.SetField(status.FieldSensitive, field.TypeBool, value)
	}
	if value, ok := suo.mutation.InReplyToID(); ok {
		_spec.SetField(status.FieldInReplyToID, field.TypeString, value)
	}
	if suo.mutation.InReplyToIDCleared() {
		_spec.ClearField(status.FieldInReplyToID, field.TypeString)
	}
	if value, ok := suo.mutation.QuotingID(); ok {
		_spec.SetField(status.FieldQuotingID, field.TypeString, value)
	}
	if suo.mutation.QuotingIDCleared() {
		_spec.ClearField(status.FieldQuotingID, field.TypeString)
	}
	if value, ok := suo.mutation.ReblogOfID(); ok {
		_spec.SetField(status.FieldReblogOfID, field.TypeString, value)
	}
	if suo.mutation.ReblogOfIDCleared() {
		_spec.ClearField(status.FieldReblogOfID, field.TypeString)
	}
	if value, ok := suo.mutation.InstanceHost(); ok {
		_spec.SetField(status.FieldInstanceHost, field.TypeString, value)
	}
	if suo.mutation.InstanceHostCleared() {
		_spec.ClearField(status.FieldInstanceHost, field.TypeString)
	}
	if value, ok := suo.mutation.CreatedAt(); ok {
		_spec.SetField(status.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Status{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{status.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
