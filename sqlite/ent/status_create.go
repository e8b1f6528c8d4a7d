// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yumine/versia/sqlite/ent/status"
)

// StatusCreate is the builder for creating a Status entity.
type StatusCreate struct {
	config
	mutation *StatusMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetURI sets the "uri" field.
func (sc *StatusCreate) SetURI(s string) *StatusCreate {
	sc.mutation.SetURI(s)
	return sc
}

// SetAuthorURI sets the "author_uri" field.
func (sc *StatusCreate) SetAuthorURI(s string) *StatusCreate {
	sc.mutation.SetAuthorURI(s)
	return sc
}

// SetContent sets the "content" field.
func (sc *StatusCreate) SetContent(s string) *StatusCreate {
	sc.mutation.SetContent(s)
	return sc
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (sc *StatusCreate) SetNillableContent(s *string) *StatusCreate {
	if s != nil {
		sc.SetContent(*s)
	}
	return sc
}

// SetContentType sets the "content_type" field.
func (sc *StatusCreate) SetContentType(s string) *StatusCreate {
	sc.mutation.SetContentType(s)
	return sc
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (sc *StatusCreate) SetNillableContentType(s *string) *StatusCreate {
	if s != nil {
		sc.SetContentType(*s)
	}
	return sc
}

// SetVisibility sets the "visibility" field.
func (sc *StatusCreate) SetVisibility(s string) *StatusCreate {
	sc.mutation.SetVisibility(s)
	return sc
}

// SetNillableVisibility sets the "visibility" field if the given value is not nil.
func (sc *StatusCreate) SetNillableVisibility(s *string) *StatusCreate {
	if s != nil {
		sc.SetVisibility(*s)
	}
	return sc
}

// SetSpoilerText sets the "spoiler_text" field.
func (sc *StatusCreate) SetSpoilerText(s string) *StatusCreate {
	sc.mutation.SetSpoilerText(s)
	return sc
}

// SetNillableSpoilerText sets the "spoiler_text" field if the given value is not nil.
func (sc *StatusCreate) SetNillableSpoilerText(s *string) *StatusCreate {
	if s != nil {
		sc.SetSpoilerText(*s)
	}
	return sc
}

// SetSensitive sets the "sensitive" field.
func (sc *StatusCreate) SetSensitive(b bool) *StatusCreate {
	sc.mutation.SetSensitive(b)
	return sc
}

// SetNillableSensitive sets the "sensitive" field if the given value is not nil.
func (sc *StatusCreate) SetNillableSensitive(b *bool) *StatusCreate {
	if b != nil {
		sc.SetSensitive(*b)
	}
	return sc
}

// SetInReplyToID sets the "in_reply_to_id" field.
func (sc *StatusCreate) SetInReplyToID(s string) *StatusCreate {
	sc.mutation.SetInReplyToID(s)
	return sc
}

// SetNillableInReplyToID sets the "in_reply_to_id" field if the given value is not nil.
func (sc *StatusCreate) SetNillableInReplyToID(s *string) *StatusCreate {
	if s != nil {
		sc.SetInReplyToID(*s)
	}
	return sc
}

// SetQuotingID sets the "quoting_id" field.
func (sc *StatusCreate) SetQuotingID(s string) *StatusCreate {
	sc.mutation.SetQuotingID(s)
	return sc
}

// SetNillableQuotingID sets the "quoting_id" field if the given value is not nil.
func (sc *StatusCreate) SetNillableQuotingID(s *string) *StatusCreate {
	if s != nil {
		sc.SetQuotingID(*s)
	}
	return sc
}

// SetReblogOfID sets the "reblog_of_id" field.
func (sc *StatusCreate) SetReblogOfID(s string) *StatusCreate {
	sc.mutation.SetReblogOfID(s)
	return sc
}

// SetNillableReblogOfID sets the "reblog_of_id" field if the given value is not nil.
func (sc *StatusCreate) SetNillableReblogOfID(s *string) *StatusCreate {
	if s != nil {
		sc.SetReblogOfID(*s)
	}
	return sc
}

// SetInstanceHost sets the "instance_host" field.
func (sc *StatusCreate) SetInstanceHost(s string) *StatusCreate {
	sc.mutation.SetInstanceHost(s)
	return sc
}

// SetNillableInstanceHost sets the "instance_host" field if the given value is not nil.
func (sc *StatusCreate) SetNillableInstanceHost(s *string) *StatusCreate {
	if s != nil {
		sc.SetInstanceHost(*s)
	}
	return sc
}

// SetCreatedAt sets the "created_at" field.
func (sc *StatusCreate) SetCreatedAt(t time.Time) *StatusCreate {
	sc.mutation.SetCreatedAt(t)
	return sc
}

// SetID sets the "id" field.
func (sc *StatusCreate) SetID(s string) *StatusCreate {
	sc.mutation.SetID(s)
	return sc
}

// Mutation returns the StatusMutation object of the builder.
func (sc *StatusCreate) Mutation() *StatusMutation {
	return sc.mutation
}

// Save creates the Status in the database.
func (sc *StatusCreate) Save(ctx context.Context) (*Status, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *StatusCreate) SaveX(ctx context.Context) *Status {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *StatusCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *StatusCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *StatusCreate) defaults() {
	if _, ok := sc.mutation.Visibility(); !ok {
		v := status.DefaultVisibility
		sc.mutation.SetVisibility(v)
	}
	if _, ok := sc.mutation.Sensitive(); !ok {
		v := status.DefaultSensitive
		sc.mutation.SetSensitive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *StatusCreate) check() error {
	if _, ok := sc.mutation.URI(); !ok {
		return &ValidationError{Name: "uri", err: errors.New(`ent: missing required field "Status.uri"`)}
	}
	if _, ok := sc.mutation.AuthorURI(); !ok {
		return &ValidationError{Name: "author_uri", err: errors.New(`ent: missing required field "Status.author_uri"`)}
	}
	if _, ok := sc.mutation.Visibility(); !ok {
		return &ValidationError{Name: "visibility", err: errors.New(`ent: missing required field "Status.visibility"`)}
	}
	if _, ok := sc.mutation.Sensitive(); !ok {
		return &ValidationError{Name: "sensitive", err: errors.New(`ent: missing required field "Status.sensitive"`)}
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Status.created_at"`)}
	}
	return nil
}

func (sc *StatusCreate) sqlSave(ctx context.Context) (*Status, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Status.ID type: %T", _spec.ID.Value)
		}
	}
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *StatusCreate) createSpec() (*Status, *sqlgraph.CreateSpec) {
	var (
		_node = &Status{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(status.Table, sqlgraph.NewFieldSpec(status.FieldID, field.TypeString))
	)
	_spec.OnConflict = sc.conflict
	if id, ok := sc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := sc.mutation.URI(); ok {
		_spec.SetField(status.FieldURI, field.TypeString, value)
		_node.URI = value
	}
	if value, ok := sc.mutation.AuthorURI(); ok {
		_spec.SetField(status.FieldAuthorURI, field.TypeString, value)
		_node.AuthorURI = value
	}
	if value, ok := sc.mutation.Content(); ok {
		_spec.SetField(status.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := sc.mutation.ContentType(); ok {
		_spec.SetField(status.FieldContentType, field.TypeString, value)
		_node.ContentType = value
	}
	if value, ok := sc.mutation.Visibility(); ok {
		_spec.SetField(status.FieldVisibility, field.TypeString, value)
		_node.Visibility = value
	}
	if value, ok := sc.mutation.SpoilerText(); ok {
		_spec.SetField(status.FieldSpoilerText, field.TypeString, value)
		_node.SpoilerText = value
	}
	if value, ok := sc.mutation.Sensitive(); ok {
		_spec.SetField(status.FieldSensitive, field.TypeBool, value)
		_node.Sensitive = value
	}
	if value, ok := sc.mutation.InReplyToID(); ok {
		_spec.SetField(status.FieldInReplyToID, field.TypeString, value)
		_node.InReplyToID = value
	}
	if value, ok := sc.mutation.QuotingID(); ok {
		_spec.SetField(status.FieldQuotingID, field.TypeString, value)
		_node.QuotingID = value
	}
	if value, ok := sc.mutation.ReblogOfID(); ok {
		_spec.SetField(status.FieldReblogOfID, field.TypeString, value)
		_node.ReblogOfID = value
	}
	if value, ok := sc.mutation.InstanceHost(); ok {
		_spec.SetField(status.FieldInstanceHost, field.TypeString, value)
		_node.InstanceHost = value
	}
	if value, ok := sc.mutation.CreatedAt(); ok {
		_spec.SetField(status.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Status.Create().
//		SetURI(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StatusUpsert) {
//			SetURI(v+v).
//		}).
//		Exec(ctx)
func (sc *StatusCreate) OnConflict(opts ...sql.ConflictOption) *StatusUpsertOne {
	sc.conflict = opts
	return &StatusUpsertOne{
		create: sc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Status.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (sc *StatusCreate) OnConflictColumns(columns ...string) *StatusUpsertOne {
	sc.conflict = append(sc.conflict, sql.ConflictColumns(columns...))
	return &StatusUpsertOne{
		create: sc,
	}
}

type (
	// StatusUpsertOne is the builder for "upsert"-ing
	//  one Status node.
	StatusUpsertOne struct {
		create *StatusCreate
	}

	// StatusUpsert is the "OnConflict" setter.
	StatusUpsert struct {
		*sql.UpdateSet
	}
)

// SetURI sets the "uri" field.
func (u *StatusUpsert) SetURI(v string) *StatusUpsert {
	u.Set(status.FieldURI, v)
	return u
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *StatusUpsert) UpdateURI() *StatusUpsert {
	u.SetExcluded(status.FieldURI)
	return u
}

// SetAuthorURI sets the "author_uri" field.
func (u *StatusUpsert) SetAuthorURI(v string) *StatusUpsert {
	u.Set(status.FieldAuthorURI, v)
	return u
}

// UpdateAuthorURI sets the "author_uri" field to the value that was provided on create.
func (u *StatusUpsert) UpdateAuthorURI() *StatusUpsert {
	u.SetExcluded(status.FieldAuthorURI)
	return u
}

// SetContent sets the "content" field.
func (u *StatusUpsert) SetContent(v string) *StatusUpsert {
	u.Set(status.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *StatusUpsert) UpdateContent() *StatusUpsert {
	u.SetExcluded(status.FieldContent)
	return u
}

// ClearContent clears the value of the "content" field.
func (u *StatusUpsert) ClearContent() *StatusUpsert {
	u.SetNull(status.FieldContent)
	return u
}

// SetContentType sets the "content_type" field.
func (u *StatusUpsert) SetContentType(v string) *StatusUpsert {
	u.Set(status.FieldContentType, v)
	return u
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *StatusUpsert) UpdateContentType() *StatusUpsert {
	u.SetExcluded(status.FieldContentType)
	return u
}

// ClearContentType clears the value of the "content_type" field.
func (u *StatusUpsert) ClearContentType() *StatusUpsert {
	u.SetNull(status.FieldContentType)
	return u
}

// SetVisibility sets the "visibility" field.
func (u *StatusUpsert) SetVisibility(v string) *StatusUpsert {
	u.Set(status.FieldVisibility, v)
	return u
}

// UpdateVisibility sets the "visibility" field to the value that was provided on create.
func (u *StatusUpsert) UpdateVisibility() *StatusUpsert {
	u.SetExcluded(status.FieldVisibility)
	return u
}

// SetSpoilerText sets the "spoiler_text" field.
func (u *StatusUpsert) SetSpoilerText(v string) *StatusUpsert {
	u.Set(status.FieldSpoilerText, v)
	return u
}

// UpdateSpoilerText sets the "spoiler_text" field to the value that was provided on create.
func (u *StatusUpsert) UpdateSpoilerText() *StatusUpsert {
	u.SetExcluded(status.FieldSpoilerText)
	return u
}

// ClearSpoilerText clears the value of the "spoiler_text" field.
func (u *StatusUpsert) ClearSpoilerText() *StatusUpsert {
	u.SetNull(status.FieldSpoilerText)
	return u
}

// SetSensitive sets the "sensitive" field.
func (u *StatusUpsert) SetSensitive(v bool) *StatusUpsert {
	u.Set(status.FieldSensitive, v)
	return u
}

// UpdateSensitive sets the "sensitive" field to the value that was provided on create.
func (u *StatusUpsert) UpdateSensitive() *StatusUpsert {
	u.SetExcluded(status.FieldSensitive)
	return u
}

// SetInReplyToID sets the "in_reply_to_id" field.
func (u *StatusUpsert) SetInReplyToID(v string) *StatusUpsert {
	u.Set(status.FieldInReplyToID, v)
	return u
}

// UpdateInReplyToID sets the "in_reply_to_id" field to the value that was provided on create.
func (u *StatusUpsert) UpdateInReplyToID() *StatusUpsert {
	u.SetExcluded(status.FieldInReplyToID)
	return u
}

// ClearInReplyToID clears the value of the "in_reply_to_id" field.
func (u *StatusUpsert) ClearInReplyToID() *StatusUpsert {
	u.SetNull(status.FieldInReplyToID)
	return u
}

// SetQuotingID sets the "quoting_id" field.
func (u *StatusUpsert) SetQuotingID(v string) *StatusUpsert {
	u.Set(status.FieldQuotingID, v)
	return u
}

// UpdateQuotingID sets the "quoting_id" field to the value that was provided on create.
func (u *StatusUpsert) UpdateQuotingID() *StatusUpsert {
	u.SetExcluded(status.FieldQuotingID)
	return u
}

// ClearQuotingID clears the value of the "quoting_id" field.
func (u *StatusUpsert) ClearQuotingID() *StatusUpsert {
	u.SetNull(status.FieldQuotingID)
	return u
}

// SetReblogOfID sets the "reblog_of_id" field.
func (u *StatusUpsert) SetReblogOfID(v string) *StatusUpsert {
	u.Set(status.FieldReblogOfID, v)
	return u
}

// UpdateReblogOfID sets the "reblog_of_id" field to the value that was provided on create.
func (u *StatusUpsert) UpdateReblogOfID() *StatusUpsert {
	u.SetExcluded(status.FieldReblogOfID)
	return u
}

// ClearReblogOfID clears the value of the "reblog_of_id" field.
func (u *StatusUpsert) ClearReblogOfID() *StatusUpsert {
	u.SetNull(status.FieldReblogOfID)
	return u
}

// SetInstanceHost sets the "instance_host" field.
func (u *StatusUpsert) SetInstanceHost(v string) *StatusUpsert {
	u.Set(status.FieldInstanceHost, v)
	return u
}

// UpdateInstanceHost sets the "instance_host" field to the value that was provided on create.
func (u *StatusUpsert) UpdateInstanceHost() *StatusUpsert {
	u.SetExcluded(status.FieldInstanceHost)
	return u
}

// ClearInstanceHost clears the value of the "instance_host" field.
func (u *StatusUpsert) ClearInstanceHost() *StatusUpsert {
	u.SetNull(status.FieldInstanceHost)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *StatusUpsert) SetCreatedAt(v time.Time) *StatusUpsert {
	u.Set(status.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StatusUpsert) UpdateCreatedAt() *StatusUpsert {
	u.SetExcluded(status.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Status.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(status.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StatusUpsertOne) UpdateNewValues() *StatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(status.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Status.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StatusUpsertOne) Ignore() *StatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StatusUpsertOne) DoNothing() *StatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StatusCreate.OnConflict
// documentation for more info.
func (u *StatusUpsertOne) Update(set func(*StatusUpsert)) *StatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetURI sets the "uri" field.
func (u *StatusUpsertOne) SetURI(v string) *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.SetURI(v)
	})
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *StatusUpsertOne) UpdateURI() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateURI()
	})
}

// SetAuthorURI sets the "author_uri" field.
func (u *StatusUpsertOne) SetAuthorURI(v string) *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.SetAuthorURI(v)
	})
}

// UpdateAuthorURI sets the "author_uri" field to the value that was provided on create.
func (u *StatusUpsertOne) UpdateAuthorURI() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateAuthorURI()
	})
}

// SetContent sets the "content" field.
func (u *StatusUpsertOne) SetContent(v string) *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *StatusUpsertOne) UpdateContent() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *StatusUpsertOne) ClearContent() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.ClearContent()
	})
}

// SetContentType sets the "content_type" field.
func (u *StatusUpsertOne) SetContentType(v string) *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *StatusUpsertOne) UpdateContentType() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateContentType()
	})
}

// ClearContentType clears the value of the "content_type" field.
func (u *StatusUpsertOne) ClearContentType() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.ClearContentType()
	})
}

// SetVisibility sets the "visibility" field.
func (u *StatusUpsertOne) SetVisibility(v string) *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.SetVisibility(v)
	})
}

// UpdateVisibility sets the "visibility" field to the value that was provided on create.
func (u *StatusUpsertOne) UpdateVisibility() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateVisibility()
	})
}

// SetSpoilerText sets the "spoiler_text" field.
func (u *StatusUpsertOne) SetSpoilerText(v string) *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.SetSpoilerText(v)
	})
}

// UpdateSpoilerText sets the "spoiler_text" field to the value that was provided on create.
func (u *StatusUpsertOne) UpdateSpoilerText() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateSpoilerText()
	})
}

// ClearSpoilerText clears the value of the "spoiler_text" field.
func (u *StatusUpsertOne) ClearSpoilerText() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.ClearSpoilerText()
	})
}

// SetSensitive sets the "sensitive" field.
func (u *StatusUpsertOne) SetSensitive(v bool) *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.SetSensitive(v)
	})
}

// UpdateSensitive sets the "sensitive" field to the value that was provided on create.
func (u *StatusUpsertOne) UpdateSensitive() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateSensitive()
	})
}

// SetInReplyToID sets the "in_reply_to_id" field.
func (u *StatusUpsertOne) SetInReplyToID(v string) *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.SetInReplyToID(v)
	})
}

// UpdateInReplyToID sets the "in_reply_to_id" field to the value that was provided on create.
func (u *StatusUpsertOne) UpdateInReplyToID() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateInReplyToID()
	})
}

// ClearInReplyToID clears the value of the "in_reply_to_id" field.
func (u *StatusUpsertOne) ClearInReplyToID() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.ClearInReplyToID()
	})
}

// SetQuotingID sets the "quoting_id" field.
func (u *StatusUpsertOne) SetQuotingID(v string) *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.SetQuotingID(v)
	})
}

// UpdateQuotingID sets the "quoting_id" field to the value that was provided on create.
func (u *StatusUpsertOne) UpdateQuotingID() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateQuotingID()
	})
}

// ClearQuotingID clears the value of the "quoting_id" field.
func (u *StatusUpsertOne) ClearQuotingID() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.ClearQuotingID()
	})
}

// SetReblogOfID sets the "reblog_of_id" field.
func (u *StatusUpsertOne) SetReblogOfID(v string) *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.SetReblogOfID(v)
	})
}

// UpdateReblogOfID sets the "reblog_of_id" field to the value that was provided on create.
func (u *StatusUpsertOne) UpdateReblogOfID() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateReblogOfID()
	})
}

// ClearReblogOfID clears the value of the "reblog_of_id" field.
func (u *StatusUpsertOne) ClearReblogOfID() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.ClearReblogOfID()
	})
}

// SetInstanceHost sets the "instance_host" field.
func (u *StatusUpsertOne) SetInstanceHost(v string) *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.SetInstanceHost(v)
	})
}

// UpdateInstanceHost sets the "instance_host" field to the value that was provided on create.
func (u *StatusUpsertOne) UpdateInstanceHost() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateInstanceHost()
	})
}

// ClearInstanceHost clears the value of the "instance_host" field.
func (u *StatusUpsertOne) ClearInstanceHost() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.ClearInstanceHost()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *StatusUpsertOne) SetCreatedAt(v time.Time) *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StatusUpsertOne) UpdateCreatedAt() *StatusUpsertOne {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *StatusUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StatusCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StatusUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StatusUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StatusUpsertOne.ID is not supported by MySQL driver. Use StatusUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StatusUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StatusCreateBulk is the builder for creating many Status entities in bulk.
type StatusCreateBulk struct {
	config
	builders []*StatusCreate
	conflict []sql.ConflictOption
}

// Save creates the Status entities in the database.
func (scb *StatusCreateBulk) Save(ctx context.Context) ([]*Status, error) {
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Status, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StatusMutation)
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
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = scb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
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
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *StatusCreateBulk) SaveX(ctx context.Context) []*Status {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *StatusCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *StatusCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Status.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StatusUpsert) {
//			SetURI(v+v).
//		}).
//		Exec(ctx)
func (scb *StatusCreateBulk) OnConflict(opts ...sql.ConflictOption) *StatusUpsertBulk {
	scb.conflict = opts
	return &StatusUpsertBulk{
		create: scb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Status.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (scb *StatusCreateBulk) OnConflictColumns(columns ...string) *StatusUpsertBulk {
	scb.conflict = append(scb.conflict, sql.ConflictColumns(columns...))
	return &StatusUpsertBulk{
		create: scb,
	}
}

// StatusUpsertBulk is the builder for "upsert"-ing
// a bulk of Status nodes.
type StatusUpsertBulk struct {
	create *StatusCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Status.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(status.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StatusUpsertBulk) UpdateNewValues() *StatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(status.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Status.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StatusUpsertBulk) Ignore() *StatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StatusUpsertBulk) DoNothing() *StatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StatusCreateBulk.OnConflict
// documentation for more info.
func (u *StatusUpsertBulk) Update(set func(*StatusUpsert)) *StatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetURI sets the "uri" field.
func (u *StatusUpsertBulk) SetURI(v string) *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.SetURI(v)
	})
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *StatusUpsertBulk) UpdateURI() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateURI()
	})
}

// SetAuthorURI sets the "author_uri" field.
func (u *StatusUpsertBulk) SetAuthorURI(v string) *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.SetAuthorURI(v)
	})
}

// UpdateAuthorURI sets the "author_uri" field to the value that was provided on create.
func (u *StatusUpsertBulk) UpdateAuthorURI() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateAuthorURI()
	})
}

// SetContent sets the "content" field.
func (u *StatusUpsertBulk) SetContent(v string) *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *StatusUpsertBulk) UpdateContent() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateContent()
	})
}

// ClearContent clears the value of the "content" field.
func (u *StatusUpsertBulk) ClearContent() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.ClearContent()
	})
}

// SetContentType sets the "content_type" field.
func (u *StatusUpsertBulk) SetContentType(v string) *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *StatusUpsertBulk) UpdateContentType() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateContentType()
	})
}

// ClearContentType clears the value of the "content_type" field.
func (u *StatusUpsertBulk) ClearContentType() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.ClearContentType()
	})
}

// SetVisibility sets the "visibility" field.
func (u *StatusUpsertBulk) SetVisibility(v string) *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.SetVisibility(v)
	})
}

// UpdateVisibility sets the "visibility" field to the value that was provided on create.
func (u *StatusUpsertBulk) UpdateVisibility() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateVisibility()
	})
}

// SetSpoilerText sets the "spoiler_text" field.
func (u *StatusUpsertBulk) SetSpoilerText(v string) *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.SetSpoilerText(v)
	})
}

// UpdateSpoilerText sets the "spoiler_text" field to the value that was provided on create.
func (u *StatusUpsertBulk) UpdateSpoilerText() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateSpoilerText()
	})
}

// ClearSpoilerText clears the value of the "spoiler_text" field.
func (u *StatusUpsertBulk) ClearSpoilerText() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.ClearSpoilerText()
	})
}

// SetSensitive sets the "sensitive" field.
func (u *StatusUpsertBulk) SetSensitive(v bool) *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.SetSensitive(v)
	})
}

// UpdateSensitive sets the "sensitive" field to the value that was provided on create.
func (u *StatusUpsertBulk) UpdateSensitive() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateSensitive()
	})
}

// SetInReplyToID sets the "in_reply_to_id" field.
func (u *StatusUpsertBulk) SetInReplyToID(v string) *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.SetInReplyToID(v)
	})
}

// UpdateInReplyToID sets the "in_reply_to_id" field to the value that was provided on create.
func (u *StatusUpsertBulk) UpdateInReplyToID() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateInReplyToID()
	})
}

// ClearInReplyToID clears the value of the "in_reply_to_id" field.
func (u *StatusUpsertBulk) ClearInReplyToID() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.ClearInReplyToID()
	})
}

// SetQuotingID sets the "quoting_id" field.
func (u *StatusUpsertBulk) SetQuotingID(v string) *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.SetQuotingID(v)
	})
}

// UpdateQuotingID sets the "quoting_id" field to the value that was provided on create.
func (u *StatusUpsertBulk) UpdateQuotingID() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateQuotingID()
	})
}

// ClearQuotingID clears the value of the "quoting_id" field.
func (u *StatusUpsertBulk) ClearQuotingID() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.ClearQuotingID()
	})
}

// SetReblogOfID sets the "reblog_of_id" field.
func (u *StatusUpsertBulk) SetReblogOfID(v string) *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.SetReblogOfID(v)
	})
}

// UpdateReblogOfID sets the "reblog_of_id" field to the value that was provided on create.
func (u *StatusUpsertBulk) UpdateReblogOfID() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateReblogOfID()
	})
}

// ClearReblogOfID clears the value of the "reblog_of_id" field.
func (u *StatusUpsertBulk) ClearReblogOfID() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.ClearReblogOfID()
	})
}

// SetInstanceHost sets the "instance_host" field.
func (u *StatusUpsertBulk) SetInstanceHost(v string) *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.SetInstanceHost(v)
	})
}

// UpdateInstanceHost sets the "instance_host" field to the value that was provided on create.
func (u *StatusUpsertBulk) UpdateInstanceHost() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateInstanceHost()
	})
}

// ClearInstanceHost clears the value of the "instance_host" field.
func (u *StatusUpsertBulk) ClearInstanceHost() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.ClearInstanceHost()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *StatusUpsertBulk) SetCreatedAt(v time.Time) *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *StatusUpsertBulk) UpdateCreatedAt() *StatusUpsertBulk {
	return u.Update(func(s *StatusUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *StatusUpsertBulk) Exec(ctx context.Context) error {
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StatusCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StatusCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StatusUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
