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
	"github.com/yumine/versia/sqlite/ent/remoteobject"
)

// RemoteObjectCreate is the builder for creating a RemoteObject entity.
type RemoteObjectCreate struct {
	config
	mutation *RemoteObjectMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetRemoteID sets the "remote_id" field.
func (roc *RemoteObjectCreate) SetRemoteID(s string) *RemoteObjectCreate {
	roc.mutation.SetRemoteID(s)
	return roc
}

// SetType sets the "type" field.
func (roc *RemoteObjectCreate) SetType(s string) *RemoteObjectCreate {
	roc.mutation.SetType(s)
	return roc
}

// SetURI sets the "uri" field.
func (roc *RemoteObjectCreate) SetURI(s string) *RemoteObjectCreate {
	roc.mutation.SetURI(s)
	return roc
}

// SetAuthorURI sets the "author_uri" field.
func (roc *RemoteObjectCreate) SetAuthorURI(s string) *RemoteObjectCreate {
	roc.mutation.SetAuthorURI(s)
	return roc
}

// SetNillableAuthorURI sets the "author_uri" field if the given value is not nil.
func (roc *RemoteObjectCreate) SetNillableAuthorURI(s *string) *RemoteObjectCreate {
	if s != nil {
		roc.SetAuthorURI(*s)
	}
	return roc
}

// SetCreatedAt sets the "created_at" field.
func (roc *RemoteObjectCreate) SetCreatedAt(t time.Time) *RemoteObjectCreate {
	roc.mutation.SetCreatedAt(t)
	return roc
}

// SetExtraData sets the "extra_data" field.
func (roc *RemoteObjectCreate) SetExtraData(b []byte) *RemoteObjectCreate {
	roc.mutation.SetExtraData(b)
	return roc
}

// SetExtensions sets the "extensions" field.
func (roc *RemoteObjectCreate) SetExtensions(b []byte) *RemoteObjectCreate {
	roc.mutation.SetExtensions(b)
	return roc
}

// SetID sets the "id" field.
func (roc *RemoteObjectCreate) SetID(s string) *RemoteObjectCreate {
	roc.mutation.SetID(s)
	return roc
}

// Mutation returns the RemoteObjectMutation object of the builder.
func (roc *RemoteObjectCreate) Mutation() *RemoteObjectMutation {
	return roc.mutation
}

// Save creates the RemoteObject in the database.
func (roc *RemoteObjectCreate) Save(ctx context.Context) (*RemoteObject, error) {
	return withHooks(ctx, roc.sqlSave, roc.mutation, roc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (roc *RemoteObjectCreate) SaveX(ctx context.Context) *RemoteObject {
	v, err := roc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (roc *RemoteObjectCreate) Exec(ctx context.Context) error {
	_, err := roc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (roc *RemoteObjectCreate) ExecX(ctx context.Context) {
	if err := roc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (roc *RemoteObjectCreate) check() error {
	if _, ok := roc.mutation.RemoteID(); !ok {
		return &ValidationError{Name: "remote_id", err: errors.New(`ent: missing required field "RemoteObject.remote_id"`)}
	}
	if _, ok := roc.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "RemoteObject.type"`)}
	}
	if _, ok := roc.mutation.URI(); !ok {
		return &ValidationError{Name: "uri", err: errors.New(`ent: missing required field "RemoteObject.uri"`)}
	}
	if _, ok := roc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RemoteObject.created_at"`)}
	}
	return nil
}

func (roc *RemoteObjectCreate) sqlSave(ctx context.Context) (*RemoteObject, error) {
	if err := roc.check(); err != nil {
		return nil, err
	}
	_node, _spec := roc.createSpec()
	if err := sqlgraph.CreateNode(ctx, roc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RemoteObject.ID type: %T", _spec.ID.Value)
		}
	}
	roc.mutation.id = &_node.ID
	roc.mutation.done = true
	return _node, nil
}

func (roc *RemoteObjectCreate) createSpec() (*RemoteObject, *sqlgraph.CreateSpec) {
	var (
		_node = &RemoteObject{config: roc.config}
		_spec = sqlgraph.NewCreateSpec(remoteobject.Table, sqlgraph.NewFieldSpec(remoteobject.FieldID, field.TypeString))
	)
	_spec.OnConflict = roc.conflict
	if id, ok := roc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := roc.mutation.RemoteID(); ok {
		_spec.SetField(remoteobject.FieldRemoteID, field.TypeString, value)
		_node.RemoteID = value
	}
	if value, ok := roc.mutation.GetType(); ok {
		_spec.SetField(remoteobject.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := roc.mutation.URI(); ok {
		_spec.SetField(remoteobject.FieldURI, field.TypeString, value)
		_node.URI = value
	}
	if value, ok := roc.mutation.AuthorURI(); ok {
		_spec.SetField(remoteobject.FieldAuthorURI, field.TypeString, value)
		_node.AuthorURI = value
	}
	if value, ok := roc.mutation.CreatedAt(); ok {
		_spec.SetField(remoteobject.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := roc.mutation.ExtraData(); ok {
		_spec.SetField(remoteobject.FieldExtraData, field.TypeBytes, value)
		_node.ExtraData = value
	}
	if value, ok := roc.mutation.Extensions(); ok {
		_spec.SetField(remoteobject.FieldExtensions, field.TypeBytes, value)
		_node.Extensions = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RemoteObject.Create().
//		SetRemoteID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RemoteObjectUpsert) {
//			SetRemoteID(v+v).
//		}).
//		Exec(ctx)
func (roc *RemoteObjectCreate) OnConflict(opts ...sql.ConflictOption) *RemoteObjectUpsertOne {
	roc.conflict = opts
	return &RemoteObjectUpsertOne{
		create: roc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RemoteObject.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (roc *RemoteObjectCreate) OnConflictColumns(columns ...string) *RemoteObjectUpsertOne {
	roc.conflict = append(roc.conflict, sql.ConflictColumns(columns...))
	return &RemoteObjectUpsertOne{
		create: roc,
	}
}

type (
	// RemoteObjectUpsertOne is the builder for "upsert"-ing
	//  one RemoteObject node.
	RemoteObjectUpsertOne struct {
		create *RemoteObjectCreate
	}

	// RemoteObjectUpsert is the "OnConflict" setter.
	RemoteObjectUpsert struct {
		*sql.UpdateSet
	}
)

// SetRemoteID sets the "remote_id" field.
func (u *RemoteObjectUpsert) SetRemoteID(v string) *RemoteObjectUpsert {
	u.Set(remoteobject.FieldRemoteID, v)
	return u
}

// UpdateRemoteID sets the "remote_id" field to the value that was provided on create.
func (u *RemoteObjectUpsert) UpdateRemoteID() *RemoteObjectUpsert {
	u.SetExcluded(remoteobject.FieldRemoteID)
	return u
}

// SetType sets the "type" field.
func (u *RemoteObjectUpsert) SetType(v string) *RemoteObjectUpsert {
	u.Set(remoteobject.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *RemoteObjectUpsert) UpdateType() *RemoteObjectUpsert {
	u.SetExcluded(remoteobject.FieldType)
	return u
}

// SetURI sets the "uri" field.
func (u *RemoteObjectUpsert) SetURI(v string) *RemoteObjectUpsert {
	u.Set(remoteobject.FieldURI, v)
	return u
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *RemoteObjectUpsert) UpdateURI() *RemoteObjectUpsert {
	u.SetExcluded(remoteobject.FieldURI)
	return u
}

// SetAuthorURI sets the "author_uri" field.
func (u *RemoteObjectUpsert) SetAuthorURI(v string) *RemoteObjectUpsert {
	u.Set(remoteobject.FieldAuthorURI, v)
	return u
}

// UpdateAuthorURI sets the "author_uri" field to the value that was provided on create.
func (u *RemoteObjectUpsert) UpdateAuthorURI() *RemoteObjectUpsert {
	u.SetExcluded(remoteobject.FieldAuthorURI)
	return u
}

// ClearAuthorURI clears the value of the "author_uri" field.
func (u *RemoteObjectUpsert) ClearAuthorURI() *RemoteObjectUpsert {
	u.SetNull(remoteobject.FieldAuthorURI)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *RemoteObjectUpsert) SetCreatedAt(v time.Time) *RemoteObjectUpsert {
	u.Set(remoteobject.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RemoteObjectUpsert) UpdateCreatedAt() *RemoteObjectUpsert {
	u.SetExcluded(remoteobject.FieldCreatedAt)
	return u
}

// SetExtraData sets the "extra_data" field.
func (u *RemoteObjectUpsert) SetExtraData(v []byte) *RemoteObjectUpsert {
	u.Set(remoteobject.FieldExtraData, v)
	return u
}

// UpdateExtraData sets the "extra_data" field to the value that was provided on create.
func (u *RemoteObjectUpsert) UpdateExtraData() *RemoteObjectUpsert {
	u.SetExcluded(remoteobject.FieldExtraData)
	return u
}

// ClearExtraData clears the value of the "extra_data" field.
func (u *RemoteObjectUpsert) ClearExtraData() *RemoteObjectUpsert {
	u.SetNull(remoteobject.FieldExtraData)
	return u
}

// SetExtensions sets the "extensions" field.
func (u *RemoteObjectUpsert) SetExtensions(v []byte) *RemoteObjectUpsert {
	u.Set(remoteobject.FieldExtensions, v)
	return u
}

// UpdateExtensions sets the "extensions" field to the value that was provided on create.
func (u *RemoteObjectUpsert) UpdateExtensions() *RemoteObjectUpsert {
	u.SetExcluded(remoteobject.FieldExtensions)
	return u
}

// ClearExtensions clears the value of the "extensions" field.
func (u *RemoteObjectUpsert) ClearExtensions() *RemoteObjectUpsert {
	u.SetNull(remoteobject.FieldExtensions)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RemoteObject.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(remoteobject.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RemoteObjectUpsertOne) UpdateNewValues() *RemoteObjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(remoteobject.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RemoteObject.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RemoteObjectUpsertOne) Ignore() *RemoteObjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RemoteObjectUpsertOne) DoNothing() *RemoteObjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RemoteObjectCreate.OnConflict
// documentation for more info.
func (u *RemoteObjectUpsertOne) Update(set func(*RemoteObjectUpsert)) *RemoteObjectUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RemoteObjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetRemoteID sets the "remote_id" field.
func (u *RemoteObjectUpsertOne) SetRemoteID(v string) *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.SetRemoteID(v)
	})
}

// UpdateRemoteID sets the "remote_id" field to the value that was provided on create.
func (u *RemoteObjectUpsertOne) UpdateRemoteID() *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.UpdateRemoteID()
	})
}

// SetType sets the "type" field.
func (u *RemoteObjectUpsertOne) SetType(v string) *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *RemoteObjectUpsertOne) UpdateType() *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.UpdateType()
	})
}

// SetURI sets the "uri" field.
func (u *RemoteObjectUpsertOne) SetURI(v string) *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.SetURI(v)
	})
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *RemoteObjectUpsertOne) UpdateURI() *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.UpdateURI()
	})
}

// SetAuthorURI sets the "author_uri" field.
func (u *RemoteObjectUpsertOne) SetAuthorURI(v string) *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.SetAuthorURI(v)
	})
}

// UpdateAuthorURI sets the "author_uri" field to the value that was provided on create.
func (u *RemoteObjectUpsertOne) UpdateAuthorURI() *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.UpdateAuthorURI()
	})
}

// ClearAuthorURI clears the value of the "author_uri" field.
func (u *RemoteObjectUpsertOne) ClearAuthorURI() *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.ClearAuthorURI()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *RemoteObjectUpsertOne) SetCreatedAt(v time.Time) *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RemoteObjectUpsertOne) UpdateCreatedAt() *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetExtraData sets the "extra_data" field.
func (u *RemoteObjectUpsertOne) SetExtraData(v []byte) *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.SetExtraData(v)
	})
}

// UpdateExtraData sets the "extra_data" field to the value that was provided on create.
func (u *RemoteObjectUpsertOne) UpdateExtraData() *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.UpdateExtraData()
	})
}

// ClearExtraData clears the value of the "extra_data" field.
func (u *RemoteObjectUpsertOne) ClearExtraData() *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.ClearExtraData()
	})
}

// SetExtensions sets the "extensions" field.
func (u *RemoteObjectUpsertOne) SetExtensions(v []byte) *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.SetExtensions(v)
	})
}

// UpdateExtensions sets the "extensions" field to the value that was provided on create.
func (u *RemoteObjectUpsertOne) UpdateExtensions() *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.UpdateExtensions()
	})
}

// ClearExtensions clears the value of the "extensions" field.
func (u *RemoteObjectUpsertOne) ClearExtensions() *RemoteObjectUpsertOne {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.ClearExtensions()
	})
}

// Exec executes the query.
func (u *RemoteObjectUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RemoteObjectCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RemoteObjectUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RemoteObjectUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RemoteObjectUpsertOne.ID is not supported by MySQL driver. Use RemoteObjectUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RemoteObjectUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RemoteObjectCreateBulk is the builder for creating many RemoteObject entities in bulk.
type RemoteObjectCreateBulk struct {
	config
	builders []*RemoteObjectCreate
	conflict []sql.ConflictOption
}

// Save creates the RemoteObject entities in the database.
func (rocb *RemoteObjectCreateBulk) Save(ctx context.Context) ([]*RemoteObject, error) {
	specs := make([]*sqlgraph.CreateSpec, len(rocb.builders))
	nodes := make([]*RemoteObject, len(rocb.builders))
	mutators := make([]Mutator, len(rocb.builders))
	for i := range rocb.builders {
		func(i int, root context.Context) {
			builder := rocb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RemoteObjectMutation)
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
					_, err = mutators[i+1].Mutate(root, rocb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = rocb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rocb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, rocb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rocb *RemoteObjectCreateBulk) SaveX(ctx context.Context) []*RemoteObject {
	v, err := rocb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rocb *RemoteObjectCreateBulk) Exec(ctx context.Context) error {
	_, err := rocb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rocb *RemoteObjectCreateBulk) ExecX(ctx context.Context) {
	if err := rocb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RemoteObject.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RemoteObjectUpsert) {
//			SetRemoteID(v+v).
//		}).
//		Exec(ctx)
func (rocb *RemoteObjectCreateBulk) OnConflict(opts ...sql.ConflictOption) *RemoteObjectUpsertBulk {
	rocb.conflict = opts
	return &RemoteObjectUpsertBulk{
		create: rocb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RemoteObject.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (rocb *RemoteObjectCreateBulk) OnConflictColumns(columns ...string) *RemoteObjectUpsertBulk {
	rocb.conflict = append(rocb.conflict, sql.ConflictColumns(columns...))
	return &RemoteObjectUpsertBulk{
		create: rocb,
	}
}

// RemoteObjectUpsertBulk is the builder for "upsert"-ing
// a bulk of RemoteObject nodes.
type RemoteObjectUpsertBulk struct {
	create *RemoteObjectCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RemoteObject.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(remoteobject.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RemoteObjectUpsertBulk) UpdateNewValues() *RemoteObjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(remoteobject.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RemoteObject.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RemoteObjectUpsertBulk) Ignore() *RemoteObjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RemoteObjectUpsertBulk) DoNothing() *RemoteObjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RemoteObjectCreateBulk.OnConflict
// documentation for more info.
func (u *RemoteObjectUpsertBulk) Update(set func(*RemoteObjectUpsert)) *RemoteObjectUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RemoteObjectUpsert{UpdateSet: update})
	}))
	return u
}

// SetRemoteID sets the "remote_id" field.
func (u *RemoteObjectUpsertBulk) SetRemoteID(v string) *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.SetRemoteID(v)
	})
}

// UpdateRemoteID sets the "remote_id" field to the value that was provided on create.
func (u *RemoteObjectUpsertBulk) UpdateRemoteID() *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.UpdateRemoteID()
	})
}

// SetType sets the "type" field.
func (u *RemoteObjectUpsertBulk) SetType(v string) *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *RemoteObjectUpsertBulk) UpdateType() *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.UpdateType()
	})
}

// SetURI sets the "uri" field.
func (u *RemoteObjectUpsertBulk) SetURI(v string) *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.SetURI(v)
	})
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *RemoteObjectUpsertBulk) UpdateURI() *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.UpdateURI()
	})
}

// SetAuthorURI sets the "author_uri" field.
func (u *RemoteObjectUpsertBulk) SetAuthorURI(v string) *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.SetAuthorURI(v)
	})
}

// UpdateAuthorURI sets the "author_uri" field to the value that was provided on create.
func (u *RemoteObjectUpsertBulk) UpdateAuthorURI() *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.UpdateAuthorURI()
	})
}

// ClearAuthorURI clears the value of the "author_uri" field.
func (u *RemoteObjectUpsertBulk) ClearAuthorURI() *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.ClearAuthorURI()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *RemoteObjectUpsertBulk) SetCreatedAt(v time.Time) *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RemoteObjectUpsertBulk) UpdateCreatedAt() *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetExtraData sets the "extra_data" field.
func (u *RemoteObjectUpsertBulk) SetExtraData(v []byte) *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.SetExtraData(v)
	})
}

// UpdateExtraData sets the "extra_data" field to the value that was provided on create.
func (u *RemoteObjectUpsertBulk) UpdateExtraData() *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.UpdateExtraData()
	})
}

// ClearExtraData clears the value of the "extra_data" field.
func (u *RemoteObjectUpsertBulk) ClearExtraData() *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.ClearExtraData()
	})
}

// SetExtensions sets the "extensions" field.
func (u *RemoteObjectUpsertBulk) SetExtensions(v []byte) *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.SetExtensions(v)
	})
}

// UpdateExtensions sets the "extensions" field to the value that was provided on create.
func (u *RemoteObjectUpsertBulk) UpdateExtensions() *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.UpdateExtensions()
	})
}

// ClearExtensions clears the value of the "extensions" field.
func (u *RemoteObjectUpsertBulk) ClearExtensions() *RemoteObjectUpsertBulk {
	return u.Update(func(s *RemoteObjectUpsert) {
		s.ClearExtensions()
	})
}

// Exec executes the query.
func (u *RemoteObjectUpsertBulk) Exec(ctx context.Context) error {
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RemoteObjectCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RemoteObjectCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RemoteObjectUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
