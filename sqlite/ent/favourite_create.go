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
	"github.com/yumine/versia/sqlite/ent/favourite"
)

// FavouriteCreate is the builder for creating a Favourite entity.
type FavouriteCreate struct {
	config
	mutation *FavouriteMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetURI sets the "uri" field.
func (fc *FavouriteCreate) SetURI(s string) *FavouriteCreate {
	fc.mutation.SetURI(s)
	return fc
}

// SetAccountURI sets the "account_uri" field.
func (fc *FavouriteCreate) SetAccountURI(s string) *FavouriteCreate {
	fc.mutation.SetAccountURI(s)
	return fc
}

// SetStatusID sets the "status_id" field.
func (fc *FavouriteCreate) SetStatusID(s string) *FavouriteCreate {
	fc.mutation.SetStatusID(s)
	return fc
}

// SetID sets the "id" field.
func (fc *FavouriteCreate) SetID(s string) *FavouriteCreate {
	fc.mutation.SetID(s)
	return fc
}

// Mutation returns the FavouriteMutation object of the builder.
func (fc *FavouriteCreate) Mutation() *FavouriteMutation {
	return fc.mutation
}

// Save creates the Favourite in the database.
func (fc *FavouriteCreate) Save(ctx context.Context) (*Favourite, error) {
	return withHooks(ctx, fc.sqlSave, fc.mutation, fc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (fc *FavouriteCreate) SaveX(ctx context.Context) *Favourite {
	v, err := fc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (fc *FavouriteCreate) Exec(ctx context.Context) error {
	_, err := fc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fc *FavouriteCreate) ExecX(ctx context.Context) {
	if err := fc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (fc *FavouriteCreate) check() error {
	if _, ok := fc.mutation.URI(); !ok {
		return &ValidationError{Name: "uri", err: errors.New(`ent: missing required field "Favourite.uri"`)}
	}
	if _, ok := fc.mutation.AccountURI(); !ok {
		return &ValidationError{Name: "account_uri", err: errors.New(`ent: missing required field "Favourite.account_uri"`)}
	}
	if _, ok := fc.mutation.StatusID(); !ok {
		return &ValidationError{Name: "status_id", err: errors.New(`ent: missing required field "Favourite.status_id"`)}
	}
	return nil
}

func (fc *FavouriteCreate) sqlSave(ctx context.Context) (*Favourite, error) {
	if err := fc.check(); err != nil {
		return nil, err
	}
	_node, _spec := fc.createSpec()
	if err := sqlgraph.CreateNode(ctx, fc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Favourite.ID type: %T", _spec.ID.Value)
		}
	}
	fc.mutation.id = &_node.ID
	fc.mutation.done = true
	return _node, nil
}

func (fc *FavouriteCreate) createSpec() (*Favourite, *sqlgraph.CreateSpec) {
	var (
		_node = &Favourite{config: fc.config}
		_spec = sqlgraph.NewCreateSpec(favourite.Table, sqlgraph.NewFieldSpec(favourite.FieldID, field.TypeString))
	)
	_spec.OnConflict = fc.conflict
	if id, ok := fc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := fc.mutation.URI(); ok {
		_spec.SetField(favourite.FieldURI, field.TypeString, value)
		_node.URI = value
	}
	if value, ok := fc.mutation.AccountURI(); ok {
		_spec.SetField(favourite.FieldAccountURI, field.TypeString, value)
		_node.AccountURI = value
	}
	if value, ok := fc.mutation.StatusID(); ok {
		_spec.SetField(favourite.FieldStatusID, field.TypeString, value)
		_node.StatusID = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Favourite.Create().
//		SetURI(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FavouriteUpsert) {
//			SetURI(v+v).
//		}).
//		Exec(ctx)
func (fc *FavouriteCreate) OnConflict(opts ...sql.ConflictOption) *FavouriteUpsertOne {
	fc.conflict = opts
	return &FavouriteUpsertOne{
		create: fc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Favourite.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (fc *FavouriteCreate) OnConflictColumns(columns ...string) *FavouriteUpsertOne {
	fc.conflict = append(fc.conflict, sql.ConflictColumns(columns...))
	return &FavouriteUpsertOne{
		create: fc,
	}
}

type (
	// FavouriteUpsertOne is the builder for "upsert"-ing
	//  one Favourite node.
	FavouriteUpsertOne struct {
		create *FavouriteCreate
	}

	// FavouriteUpsert is the "OnConflict" setter.
	FavouriteUpsert struct {
		*sql.UpdateSet
	}
)

// SetURI sets the "uri" field.
func (u *FavouriteUpsert) SetURI(v string) *FavouriteUpsert {
	u.Set(favourite.FieldURI, v)
	return u
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *FavouriteUpsert) UpdateURI() *FavouriteUpsert {
	u.SetExcluded(favourite.FieldURI)
	return u
}

// SetAccountURI sets the "account_uri" field.
func (u *FavouriteUpsert) SetAccountURI(v string) *FavouriteUpsert {
	u.Set(favourite.FieldAccountURI, v)
	return u
}

// UpdateAccountURI sets the "account_uri" field to the value that was provided on create.
func (u *FavouriteUpsert) UpdateAccountURI() *FavouriteUpsert {
	u.SetExcluded(favourite.FieldAccountURI)
	return u
}

// SetStatusID sets the "status_id" field.
func (u *FavouriteUpsert) SetStatusID(v string) *FavouriteUpsert {
	u.Set(favourite.FieldStatusID, v)
	return u
}

// UpdateStatusID sets the "status_id" field to the value that was provided on create.
func (u *FavouriteUpsert) UpdateStatusID() *FavouriteUpsert {
	u.SetExcluded(favourite.FieldStatusID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Favourite.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(favourite.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FavouriteUpsertOne) UpdateNewValues() *FavouriteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(favourite.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Favourite.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FavouriteUpsertOne) Ignore() *FavouriteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FavouriteUpsertOne) DoNothing() *FavouriteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FavouriteCreate.OnConflict
// documentation for more info.
func (u *FavouriteUpsertOne) Update(set func(*FavouriteUpsert)) *FavouriteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FavouriteUpsert{UpdateSet: update})
	}))
	return u
}

// SetURI sets the "uri" field.
func (u *FavouriteUpsertOne) SetURI(v string) *FavouriteUpsertOne {
	return u.Update(func(s *FavouriteUpsert) {
		s.SetURI(v)
	})
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *FavouriteUpsertOne) UpdateURI() *FavouriteUpsertOne {
	return u.Update(func(s *FavouriteUpsert) {
		s.UpdateURI()
	})
}

// SetAccountURI sets the "account_uri" field.
func (u *FavouriteUpsertOne) SetAccountURI(v string) *FavouriteUpsertOne {
	return u.Update(func(s *FavouriteUpsert) {
		s.SetAccountURI(v)
	})
}

// UpdateAccountURI sets the "account_uri" field to the value that was provided on create.
func (u *FavouriteUpsertOne) UpdateAccountURI() *FavouriteUpsertOne {
	return u.Update(func(s *FavouriteUpsert) {
		s.UpdateAccountURI()
	})
}

// SetStatusID sets the "status_id" field.
func (u *FavouriteUpsertOne) SetStatusID(v string) *FavouriteUpsertOne {
	return u.Update(func(s *FavouriteUpsert) {
		s.SetStatusID(v)
	})
}

// UpdateStatusID sets the "status_id" field to the value that was provided on create.
func (u *FavouriteUpsertOne) UpdateStatusID() *FavouriteUpsertOne {
	return u.Update(func(s *FavouriteUpsert) {
		s.UpdateStatusID()
	})
}

// Exec executes the query.
func (u *FavouriteUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FavouriteCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FavouriteUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FavouriteUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FavouriteUpsertOne.ID is not supported by MySQL driver. Use FavouriteUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FavouriteUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FavouriteCreateBulk is the builder for creating many Favourite entities in bulk.
type FavouriteCreateBulk struct {
	config
	builders []*FavouriteCreate
	conflict []sql.ConflictOption
}

// Save creates the Favourite entities in the database.
func (fcb *FavouriteCreateBulk) Save(ctx context.Context) ([]*Favourite, error) {
	specs := make([]*sqlgraph.CreateSpec, len(fcb.builders))
	nodes := make([]*Favourite, len(fcb.builders))
	mutators := make([]Mutator, len(fcb.builders))
	for i := range fcb.builders {
		func(i int, root context.Context) {
			builder := fcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FavouriteMutation)
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
					_, err = mutators[i+1].Mutate(root, fcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = fcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, fcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, fcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (fcb *FavouriteCreateBulk) SaveX(ctx context.Context) []*Favourite {
	v, err := fcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (fcb *FavouriteCreateBulk) Exec(ctx context.Context) error {
	_, err := fcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fcb *FavouriteCreateBulk) ExecX(ctx context.Context) {
	if err := fcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Favourite.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FavouriteUpsert) {
//			SetURI(v+v).
//		}).
//		Exec(ctx)
func (fcb *FavouriteCreateBulk) OnConflict(opts ...sql.ConflictOption) *FavouriteUpsertBulk {
	fcb.conflict = opts
	return &FavouriteUpsertBulk{
		create: fcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Favourite.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (fcb *FavouriteCreateBulk) OnConflictColumns(columns ...string) *FavouriteUpsertBulk {
	fcb.conflict = append(fcb.conflict, sql.ConflictColumns(columns...))
	return &FavouriteUpsertBulk{
		create: fcb,
	}
}

// FavouriteUpsertBulk is the builder for "upsert"-ing
// a bulk of Favourite nodes.
type FavouriteUpsertBulk struct {
	create *FavouriteCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Favourite.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(favourite.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FavouriteUpsertBulk) UpdateNewValues() *FavouriteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(favourite.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Favourite.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FavouriteUpsertBulk) Ignore() *FavouriteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FavouriteUpsertBulk) DoNothing() *FavouriteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FavouriteCreateBulk.OnConflict
// documentation for more info.
func (u *FavouriteUpsertBulk) Update(set func(*FavouriteUpsert)) *FavouriteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FavouriteUpsert{UpdateSet: update})
	}))
	return u
}

// SetURI sets the "uri" field.
func (u *FavouriteUpsertBulk) SetURI(v string) *FavouriteUpsertBulk {
	return u.Update(func(s *FavouriteUpsert) {
		s.SetURI(v)
	})
}

// UpdateURI sets the "uri" field to the value that was provided on create.
func (u *FavouriteUpsertBulk) UpdateURI() *FavouriteUpsertBulk {
	return u.Update(func(s *FavouriteUpsert) {
		s.UpdateURI()
	})
}

// SetAccountURI sets the "account_uri" field.
func (u *FavouriteUpsertBulk) SetAccountURI(v string) *FavouriteUpsertBulk {
	return u.Update(func(s *FavouriteUpsert) {
		s.SetAccountURI(v)
	})
}

// UpdateAccountURI sets the "account_uri" field to the value that was provided on create.
func (u *FavouriteUpsertBulk) UpdateAccountURI() *FavouriteUpsertBulk {
	return u.Update(func(s *FavouriteUpsert) {
		s.UpdateAccountURI()
	})
}

// SetStatusID sets the "status_id" field.
func (u *FavouriteUpsertBulk) SetStatusID(v string) *FavouriteUpsertBulk {
	return u.Update(func(s *FavouriteUpsert) {
		s.SetStatusID(v)
	})
}

// UpdateStatusID sets the "status_id" field to the value that was provided on create.
func (u *FavouriteUpsertBulk) UpdateStatusID() *FavouriteUpsertBulk {
	return u.Update(func(s *FavouriteUpsert) {
		s.UpdateStatusID()
	})
}

// Exec executes the query.
func (u *FavouriteUpsertBulk) Exec(ctx context.Context) error {
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FavouriteCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FavouriteCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FavouriteUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
