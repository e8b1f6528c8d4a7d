// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/yumine/versia/sqlite/ent/relationship"
)

// RelationshipCreate is the builder for creating a Relationship entity.
type RelationshipCreate struct {
	config
	mutation *RelationshipMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOwnerURI sets the "owner_uri" field.
func (rc *RelationshipCreate) SetOwnerURI(s string) *RelationshipCreate {
	rc.mutation.SetOwnerURI(s)
	return rc
}

// SetSubjectURI sets the "subject_uri" field.
func (rc *RelationshipCreate) SetSubjectURI(s string) *RelationshipCreate {
	rc.mutation.SetSubjectURI(s)
	return rc
}

// SetFollowing sets the "following" field.
func (rc *RelationshipCreate) SetFollowing(b bool) *RelationshipCreate {
	rc.mutation.SetFollowing(b)
	return rc
}

// SetNillableFollowing sets the "following" field if the given value is not nil.
func (rc *RelationshipCreate) SetNillableFollowing(b *bool) *RelationshipCreate {
	if b != nil {
		rc.SetFollowing(*b)
	}
	return rc
}

// SetRequested sets the "requested" field.
func (rc *RelationshipCreate) SetRequested(b bool) *RelationshipCreate {
	rc.mutation.SetRequested(b)
	return rc
}

// SetNillableRequested sets the "requested" field if the given value is not nil.
func (rc *RelationshipCreate) SetNillableRequested(b *bool) *RelationshipCreate {
	if b != nil {
		rc.SetRequested(*b)
	}
	return rc
}

// SetBlocking sets the "blocking" field.
func (rc *RelationshipCreate) SetBlocking(b bool) *RelationshipCreate {
	rc.mutation.SetBlocking(b)
	return rc
}

// SetNillableBlocking sets the "blocking" field if the given value is not nil.
func (rc *RelationshipCreate) SetNillableBlocking(b *bool) *RelationshipCreate {
	if b != nil {
		rc.SetBlocking(*b)
	}
	return rc
}

// SetMuting sets the "muting" field.
func (rc *RelationshipCreate) SetMuting(b bool) *RelationshipCreate {
	rc.mutation.SetMuting(b)
	return rc
}

// SetNillableMuting sets the "muting" field if the given value is not nil.
func (rc *RelationshipCreate) SetNillableMuting(b *bool) *RelationshipCreate {
	if b != nil {
		rc.SetMuting(*b)
	}
	return rc
}

// SetID sets the "id" field.
func (rc *RelationshipCreate) SetID(s string) *RelationshipCreate {
	rc.mutation.SetID(s)
	return rc
}

// Mutation returns the RelationshipMutation object of the builder.
func (rc *RelationshipCreate) Mutation() *RelationshipMutation {
	return rc.mutation
}

// Save creates the Relationship in the database.
func (rc *RelationshipCreate) Save(ctx context.Context) (*Relationship, error) {
	rc.defaults()
	return withHooks(ctx, rc.sqlSave, rc.mutation, rc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rc *RelationshipCreate) SaveX(ctx context.Context) *Relationship {
	v, err := rc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rc *RelationshipCreate) Exec(ctx context.Context) error {
	_, err := rc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rc *RelationshipCreate) ExecX(ctx context.Context) {
	if err := rc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (rc *RelationshipCreate) defaults() {
	if _, ok := rc.mutation.Following(); !ok {
		v := relationship.DefaultFollowing
		rc.mutation.SetFollowing(v)
	}
	if _, ok := rc.mutation.Requested(); !ok {
		v := relationship.DefaultRequested
		rc.mutation.SetRequested(v)
	}
	if _, ok := rc.mutation.Blocking(); !ok {
		v := relationship.DefaultBlocking
		rc.mutation.SetBlocking(v)
	}
	if _, ok := rc.mutation.Muting(); !ok {
		v := relationship.DefaultMuting
		rc.mutation.SetMuting(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rc *RelationshipCreate) check() error {
	if _, ok := rc.mutation.OwnerURI(); !ok {
		return &ValidationError{Name: "owner_uri", err: errors.New(`ent: missing required field "Relationship.owner_uri"`)}
	}
	if _, ok := rc.mutation.SubjectURI(); !ok {
		return &ValidationError{Name: "subject_uri", err: errors.New(`ent: missing required field "Relationship.subject_uri"`)}
	}
	if _, ok := rc.mutation.Following(); !ok {
		return &ValidationError{Name: "following", err: errors.New(`ent: missing required field "Relationship.following"`)}
	}
	if _, ok := rc.mutation.Requested(); !ok {
		return &ValidationError{Name: "requested", err: errors.New(`ent: missing required field "Relationship.requested"`)}
	}
	if _, ok := rc.mutation.Blocking(); !ok {
		return &ValidationError{Name: "blocking", err: errors.New(`ent: missing required field "Relationship.blocking"`)}
	}
	if _, ok := rc.mutation.Muting(); !ok {
		return &ValidationError{Name: "muting", err: errors.New(`ent: missing required field "Relationship.muting"`)}
	}
	return nil
}

func (rc *RelationshipCreate) sqlSave(ctx context.Context) (*Relationship, error) {
	if err := rc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Relationship.ID type: %T", _spec.ID.Value)
		}
	}
	rc.mutation.id = &_node.ID
	rc.mutation.done = true
	return _node, nil
}

func (rc *RelationshipCreate) createSpec() (*Relationship, *sqlgraph.CreateSpec) {
	var (
		_node = &Relationship{config: rc.config}
		_spec = sqlgraph.NewCreateSpec(relationship.Table, sqlgraph.NewFieldSpec(relationship.FieldID, field.TypeString))
	)
	_spec.OnConflict = rc.conflict
	if id, ok := rc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := rc.mutation.OwnerURI(); ok {
		_spec.SetField(relationship.FieldOwnerURI, field.TypeString, value)
		_node.OwnerURI = value
	}
	if value, ok := rc.mutation.SubjectURI(); ok {
		_spec.SetField(relationship.FieldSubjectURI, field.TypeString, value)
		_node.SubjectURI = value
	}
	if value, ok := rc.mutation.Following(); ok {
		_spec.SetField(relationship.FieldFollowing, field.TypeBool, value)
		_node.Following = value
	}
	if value, ok := rc.mutation.Requested(); ok {
		_spec.SetField(relationship.FieldRequested, field.TypeBool, value)
		_node.Requested = value
	}
	if value, ok := rc.mutation.Blocking(); ok {
		_spec.SetField(relationship.FieldBlocking, field.TypeBool, value)
		_node.Blocking = value
	}
	if value, ok := rc.mutation.Muting(); ok {
		_spec.SetField(relationship.FieldMuting, field.TypeBool, value)
		_node.Muting = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Relationship.Create().
//		SetOwnerURI(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RelationshipUpsert) {
//			SetOwnerURI(v+v).
//		}).
//		Exec(ctx)
func (rc *RelationshipCreate) OnConflict(opts ...sql.ConflictOption) *RelationshipUpsertOne {
	rc.conflict = opts
	return &RelationshipUpsertOne{
		create: rc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Relationship.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (rc *RelationshipCreate) OnConflictColumns(columns ...string) *RelationshipUpsertOne {
	rc.conflict = append(rc.conflict, sql.ConflictColumns(columns...))
	return &RelationshipUpsertOne{
		create: rc,
	}
}

type (
	// RelationshipUpsertOne is the builder for "upsert"-ing
	//  one Relationship node.
	RelationshipUpsertOne struct {
		create *RelationshipCreate
	}

	// RelationshipUpsert is the "OnConflict" setter.
	RelationshipUpsert struct {
		*sql.UpdateSet
	}
)

// SetFollowing sets the "following" field.
func (u *RelationshipUpsert) SetFollowing(v bool) *RelationshipUpsert {
	u.Set(relationship.FieldFollowing, v)
	return u
}

// UpdateFollowing sets the "following" field to the value that was provided on create.
func (u *RelationshipUpsert) UpdateFollowing() *RelationshipUpsert {
	u.SetExcluded(relationship.FieldFollowing)
	return u
}

// SetRequested sets the "requested" field.
func (u *RelationshipUpsert) SetRequested(v bool) *RelationshipUpsert {
	u.Set(relationship.FieldRequested, v)
	return u
}

// UpdateRequested sets the "requested" field to the value that was provided on create.
func (u *RelationshipUpsert) UpdateRequested() *RelationshipUpsert {
	u.SetExcluded(relationship.FieldRequested)
	return u
}

// SetBlocking sets the "blocking" field.
func (u *RelationshipUpsert) SetBlocking(v bool) *RelationshipUpsert {
	u.Set(relationship.FieldBlocking, v)
	return u
}

// UpdateBlocking sets the "blocking" field to the value that was provided on create.
func (u *RelationshipUpsert) UpdateBlocking() *RelationshipUpsert {
	u.SetExcluded(relationship.FieldBlocking)
	return u
}

// SetMuting sets the "muting" field.
func (u *RelationshipUpsert) SetMuting(v bool) *RelationshipUpsert {
	u.Set(relationship.FieldMuting, v)
	return u
}

// UpdateMuting sets the "muting" field to the value that was provided on create.
func (u *RelationshipUpsert) UpdateMuting() *RelationshipUpsert {
	u.SetExcluded(relationship.FieldMuting)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Relationship.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(relationship.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RelationshipUpsertOne) UpdateNewValues() *RelationshipUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(relationship.FieldID)
		}
		if _, exists := u.create.mutation.OwnerURI(); exists {
			s.SetIgnore(relationship.FieldOwnerURI)
		}
		if _, exists := u.create.mutation.SubjectURI(); exists {
			s.SetIgnore(relationship.FieldSubjectURI)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Relationship.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RelationshipUpsertOne) Ignore() *RelationshipUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RelationshipUpsertOne) DoNothing() *RelationshipUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RelationshipCreate.OnConflict
// documentation for more info.
func (u *RelationshipUpsertOne) Update(set func(*RelationshipUpsert)) *RelationshipUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RelationshipUpsert{UpdateSet: update})
	}))
	return u
}

// SetFollowing sets the "following" field.
func (u *RelationshipUpsertOne) SetFollowing(v bool) *RelationshipUpsertOne {
	return u.Update(func(s *RelationshipUpsert) {
		s.SetFollowing(v)
	})
}

// UpdateFollowing sets the "following" field to the value that was provided on create.
func (u *RelationshipUpsertOne) UpdateFollowing() *RelationshipUpsertOne {
	return u.Update(func(s *RelationshipUpsert) {
		s.UpdateFollowing()
	})
}

// SetRequested sets the "requested" field.
func (u *RelationshipUpsertOne) SetRequested(v bool) *RelationshipUpsertOne {
	return u.Update(func(s *RelationshipUpsert) {
		s.SetRequested(v)
	})
}

// UpdateRequested sets the "requested" field to the value that was provided on create.
func (u *RelationshipUpsertOne) UpdateRequested() *RelationshipUpsertOne {
	return u.Update(func(s *RelationshipUpsert) {
		s.UpdateRequested()
	})
}

// SetBlocking sets the "blocking" field.
func (u *RelationshipUpsertOne) SetBlocking(v bool) *RelationshipUpsertOne {
	return u.Update(func(s *RelationshipUpsert) {
		s.SetBlocking(v)
	})
}

// UpdateBlocking sets the "blocking" field to the value that was provided on create.
func (u *RelationshipUpsertOne) UpdateBlocking() *RelationshipUpsertOne {
	return u.Update(func(s *RelationshipUpsert) {
		s.UpdateBlocking()
	})
}

// SetMuting sets the "muting" field.
func (u *RelationshipUpsertOne) SetMuting(v bool) *RelationshipUpsertOne {
	return u.Update(func(s *RelationshipUpsert) {
		s.SetMuting(v)
	})
}

// UpdateMuting sets the "muting" field to the value that was provided on create.
func (u *RelationshipUpsertOne) UpdateMuting() *RelationshipUpsertOne {
	return u.Update(func(s *RelationshipUpsert) {
		s.UpdateMuting()
	})
}

// Exec executes the query.
func (u *RelationshipUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RelationshipCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RelationshipUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RelationshipUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RelationshipUpsertOne.ID is not supported by MySQL driver. Use RelationshipUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RelationshipUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RelationshipCreateBulk is the builder for creating many Relationship entities in bulk.
type RelationshipCreateBulk struct {
	config
	builders []*RelationshipCreate
	conflict []sql.ConflictOption
}

// Save creates the Relationship entities in the database.
func (rcb *RelationshipCreateBulk) Save(ctx context.Context) ([]*Relationship, error) {
	specs := make([]*sqlgraph.CreateSpec, len(rcb.builders))
	nodes := make([]*Relationship, len(rcb.builders))
	mutators := make([]Mutator, len(rcb.builders))
	for i := range rcb.builders {
		func(i int, root context.Context) {
			builder := rcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RelationshipMutation)
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
					_, err = mutators[i+1].Mutate(root, rcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = rcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, rcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rcb *RelationshipCreateBulk) SaveX(ctx context.Context) []*Relationship {
	v, err := rcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rcb *RelationshipCreateBulk) Exec(ctx context.Context) error {
	_, err := rcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rcb *RelationshipCreateBulk) ExecX(ctx context.Context) {
	if err := rcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Relationship.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RelationshipUpsert) {
//			SetOwnerURI(v+v).
//		}).
//		Exec(ctx)
func (rcb *RelationshipCreateBulk) OnConflict(opts ...sql.ConflictOption) *RelationshipUpsertBulk {
	rcb.conflict = opts
	return &RelationshipUpsertBulk{
		create: rcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Relationship.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (rcb *RelationshipCreateBulk) OnConflictColumns(columns ...string) *RelationshipUpsertBulk {
	rcb.conflict = append(rcb.conflict, sql.ConflictColumns(columns...))
	return &RelationshipUpsertBulk{
		create: rcb,
	}
}

// RelationshipUpsertBulk is the builder for "upsert"-ing
// a bulk of Relationship nodes.
type RelationshipUpsertBulk struct {
	create *RelationshipCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Relationship.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(relationship.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RelationshipUpsertBulk) UpdateNewValues() *RelationshipUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(relationship.FieldID)
			}
			if _, exists := b.mutation.OwnerURI(); exists {
				s.SetIgnore(relationship.FieldOwnerURI)
			}
			if _, exists := b.mutation.SubjectURI(); exists {
				s.SetIgnore(relationship.FieldSubjectURI)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Relationship.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RelationshipUpsertBulk) Ignore() *RelationshipUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RelationshipUpsertBulk) DoNothing() *RelationshipUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RelationshipCreateBulk.OnConflict
// documentation for more info.
func (u *RelationshipUpsertBulk) Update(set func(*RelationshipUpsert)) *RelationshipUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RelationshipUpsert{UpdateSet: update})
	}))
	return u
}

// SetFollowing sets the "following" field.
func (u *RelationshipUpsertBulk) SetFollowing(v bool) *RelationshipUpsertBulk {
	return u.Update(func(s *RelationshipUpsert) {
		s.SetFollowing(v)
	})
}

// UpdateFollowing sets the "following" field to the value that was provided on create.
func (u *RelationshipUpsertBulk) UpdateFollowing() *RelationshipUpsertBulk {
	return u.Update(func(s *RelationshipUpsert) {
		s.UpdateFollowing()
	})
}

// SetRequested sets the "requested" field.
func (u *RelationshipUpsertBulk) SetRequested(v bool) *RelationshipUpsertBulk {
	return u.Update(func(s *RelationshipUpsert) {
		s.SetRequested(v)
	})
}

// UpdateRequested sets the "requested" field to the value that was provided on create.
func (u *RelationshipUpsertBulk) UpdateRequested() *RelationshipUpsertBulk {
	return u.Update(func(s *RelationshipUpsert) {
		s.UpdateRequested()
	})
}

// SetBlocking sets the "blocking" field.
func (u *RelationshipUpsertBulk) SetBlocking(v bool) *RelationshipUpsertBulk {
	return u.Update(func(s *RelationshipUpsert) {
		s.SetBlocking(v)
	})
}

// UpdateBlocking sets the "blocking" field to the value that was provided on create.
func (u *RelationshipUpsertBulk) UpdateBlocking() *RelationshipUpsertBulk {
	return u.Update(func(s *RelationshipUpsert) {
		s.UpdateBlocking()
	})
}

// SetMuting sets the "muting" field.
func (u *RelationshipUpsertBulk) SetMuting(v bool) *RelationshipUpsertBulk {
	return u.Update(func(s *RelationshipUpsert) {
		s.SetMuting(v)
	})
}

// UpdateMuting sets the "muting" field to the value that was provided on create.
func (u *RelationshipUpsertBulk) UpdateMuting() *RelationshipUpsertBulk {
	return u.Update(func(s *RelationshipUpsert) {
		s.UpdateMuting()
	})
}

// Exec executes the query.
func (u *RelationshipUpsertBulk) Exec(ctx context.Context) error {
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RelationshipCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RelationshipCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RelationshipUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
