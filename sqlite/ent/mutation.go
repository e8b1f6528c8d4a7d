// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yumine/versia/sqlite/ent/account"
	"github.com/yumine/versia/sqlite/ent/favourite"
	"github.com/yumine/versia/sqlite/ent/notification"
	"github.com/yumine/versia/sqlite/ent/predicate"
	"github.com/yumine/versia/sqlite/ent/relationship"
	"github.com/yumine/versia/sqlite/ent/remoteobject"
	"github.com/yumine/versia/sqlite/ent/status"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount      = "Account"
	TypeFavourite    = "Favourite"
	TypeNotification = "Notification"
	TypeRelationship = "Relationship"
	TypeRemoteObject = "RemoteObject"
	TypeStatus       = "Status"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	username                    *string
	email                       *string
	password                    *string
	private_key                 *string
	manually_approves_followers *bool
	clearedFields               map[string]struct{}
	done                        bool
	oldValue                    func(context.Context) (*Account, error)
	predicates                  []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id string) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Account entities.
func (m *AccountMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *AccountMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *AccountMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *AccountMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *AccountMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AccountMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *AccountMutation) ResetEmail() {
	m.email = nil
}

// SetPassword sets the "password" field.
func (m *AccountMutation) SetPassword(s string) {
	m.password = &s
}

// Password returns the value of the "password" field in the mutation.
func (m *AccountMutation) Password() (r string, exists bool) {
	v := m.password
	if v == nil {
		return
	}
	return *v, true
}

// OldPassword returns the old "password" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPassword(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassword: %w", err)
	}
	return oldValue.Password, nil
}

// ResetPassword resets all changes to the "password" field.
func (m *AccountMutation) ResetPassword() {
	m.password = nil
}

// SetPrivateKey sets the "private_key" field.
func (m *AccountMutation) SetPrivateKey(s string) {
	m.private_key = &s
}

// PrivateKey returns the value of the "private_key" field in the mutation.
func (m *AccountMutation) PrivateKey() (r string, exists bool) {
	v := m.private_key
	if v == nil {
		return
	}
	return *v, true
}

// OldPrivateKey returns the old "private_key" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldPrivateKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrivateKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrivateKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrivateKey: %w", err)
	}
	return oldValue.PrivateKey, nil
}

// ResetPrivateKey resets all changes to the "private_key" field.
func (m *AccountMutation) ResetPrivateKey() {
	m.private_key = nil
}

// SetManuallyApprovesFollowers sets the "manually_approves_followers" field.
func (m *AccountMutation) SetManuallyApprovesFollowers(b bool) {
	m.manually_approves_followers = &b
}

// ManuallyApprovesFollowers returns the value of the "manually_approves_followers" field in the mutation.
func (m *AccountMutation) ManuallyApprovesFollowers() (r bool, exists bool) {
	v := m.manually_approves_followers
	if v == nil {
		return
	}
	return *v, true
}

// OldManuallyApprovesFollowers returns the old "manually_approves_followers" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldManuallyApprovesFollowers(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManuallyApprovesFollowers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManuallyApprovesFollowers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManuallyApprovesFollowers: %w", err)
	}
	return oldValue.ManuallyApprovesFollowers, nil
}

// ResetManuallyApprovesFollowers resets all changes to the "manually_approves_followers" field.
func (m *AccountMutation) ResetManuallyApprovesFollowers() {
	m.manually_approves_followers = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.username != nil {
		fields = append(fields, account.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, account.FieldEmail)
	}
	if m.password != nil {
		fields = append(fields, account.FieldPassword)
	}
	if m.private_key != nil {
		fields = append(fields, account.FieldPrivateKey)
	}
	if m.manually_approves_followers != nil {
		fields = append(fields, account.FieldManuallyApprovesFollowers)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldUsername:
		return m.Username()
	case account.FieldEmail:
		return m.Email()
	case account.FieldPassword:
		return m.Password()
	case account.FieldPrivateKey:
		return m.PrivateKey()
	case account.FieldManuallyApprovesFollowers:
		return m.ManuallyApprovesFollowers()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldUsername:
		return m.OldUsername(ctx)
	case account.FieldEmail:
		return m.OldEmail(ctx)
	case account.FieldPassword:
		return m.OldPassword(ctx)
	case account.FieldPrivateKey:
		return m.OldPrivateKey(ctx)
	case account.FieldManuallyApprovesFollowers:
		return m.OldManuallyApprovesFollowers(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case account.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case account.FieldPassword:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassword(v)
		return nil
	case account.FieldPrivateKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrivateKey(v)
		return nil
	case account.FieldManuallyApprovesFollowers:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManuallyApprovesFollowers(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldUsername:
		m.ResetUsername()
		return nil
	case account.FieldEmail:
		m.ResetEmail()
		return nil
	case account.FieldPassword:
		m.ResetPassword()
		return nil
	case account.FieldPrivateKey:
		m.ResetPrivateKey()
		return nil
	case account.FieldManuallyApprovesFollowers:
		m.ResetManuallyApprovesFollowers()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Account edge %s", name)
}

// FavouriteMutation represents an operation that mutates the Favourite nodes in the graph.
type FavouriteMutation struct {
	config
	op            Op
	typ           string
	id            *string
	uri           *string
	account_uri   *string
	status_id     *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Favourite, error)
	predicates    []predicate.Favourite
}

var _ ent.Mutation = (*FavouriteMutation)(nil)

// favouriteOption allows management of the mutation configuration using functional options.
type favouriteOption func(*FavouriteMutation)

// newFavouriteMutation creates new mutation for the Favourite entity.
func newFavouriteMutation(c config, op Op, opts ...favouriteOption) *FavouriteMutation {
	m := &FavouriteMutation{
		config:        c,
		op:            op,
		typ:           TypeFavourite,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFavouriteID sets the ID field of the mutation.
func withFavouriteID(id string) favouriteOption {
	return func(m *FavouriteMutation) {
		var (
			err   error
			once  sync.Once
			value *Favourite
		)
		m.oldValue = func(ctx context.Context) (*Favourite, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Favourite.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFavourite sets the old Favourite of the mutation.
func withFavourite(node *Favourite) favouriteOption {
	return func(m *FavouriteMutation) {
		m.oldValue = func(context.Context) (*Favourite, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FavouriteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FavouriteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Favourite entities.
func (m *FavouriteMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FavouriteMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FavouriteMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Favourite.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURI sets the "uri" field.
func (m *FavouriteMutation) SetURI(s string) {
	m.uri = &s
}

// URI returns the value of the "uri" field in the mutation.
func (m *FavouriteMutation) URI() (r string, exists bool) {
	v := m.uri
	if v == nil {
		return
	}
	return *v, true
}

// OldURI returns the old "uri" field's value of the Favourite entity.
// If the Favourite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FavouriteMutation) OldURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURI: %w", err)
	}
	return oldValue.URI, nil
}

// ResetURI resets all changes to the "uri" field.
func (m *FavouriteMutation) ResetURI() {
	m.uri = nil
}

// SetAccountURI sets the "account_uri" field.
func (m *FavouriteMutation) SetAccountURI(s string) {
	m.account_uri = &s
}

// AccountURI returns the value of the "account_uri" field in the mutation.
func (m *FavouriteMutation) AccountURI() (r string, exists bool) {
	v := m.account_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountURI returns the old "account_uri" field's value of the Favourite entity.
// If the Favourite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FavouriteMutation) OldAccountURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountURI: %w", err)
	}
	return oldValue.AccountURI, nil
}

// ResetAccountURI resets all changes to the "account_uri" field.
func (m *FavouriteMutation) ResetAccountURI() {
	m.account_uri = nil
}

// SetStatusID sets the "status_id" field.
func (m *FavouriteMutation) SetStatusID(s string) {
	m.status_id = &s
}

// StatusID returns the value of the "status_id" field in the mutation.
func (m *FavouriteMutation) StatusID() (r string, exists bool) {
	v := m.status_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusID returns the old "status_id" field's value of the Favourite entity.
// If the Favourite object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FavouriteMutation) OldStatusID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusID: %w", err)
	}
	return oldValue.StatusID, nil
}

// ResetStatusID resets all changes to the "status_id" field.
func (m *FavouriteMutation) ResetStatusID() {
	m.status_id = nil
}

// Where appends a list predicates to the FavouriteMutation builder.
func (m *FavouriteMutation) Where(ps ...predicate.Favourite) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FavouriteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FavouriteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Favourite, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FavouriteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FavouriteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Favourite).
func (m *FavouriteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FavouriteMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.uri != nil {
		fields = append(fields, favourite.FieldURI)
	}
	if m.account_uri != nil {
		fields = append(fields, favourite.FieldAccountURI)
	}
	if m.status_id != nil {
		fields = append(fields, favourite.FieldStatusID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FavouriteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case favourite.FieldURI:
		return m.URI()
	case favourite.FieldAccountURI:
		return m.AccountURI()
	case favourite.FieldStatusID:
		return m.StatusID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FavouriteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case favourite.FieldURI:
		return m.OldURI(ctx)
	case favourite.FieldAccountURI:
		return m.OldAccountURI(ctx)
	case favourite.FieldStatusID:
		return m.OldStatusID(ctx)
	}
	return nil, fmt.Errorf("unknown Favourite field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FavouriteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case favourite.FieldURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURI(v)
		return nil
	case favourite.FieldAccountURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountURI(v)
		return nil
	case favourite.FieldStatusID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusID(v)
		return nil
	}
	return fmt.Errorf("unknown Favourite field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FavouriteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FavouriteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FavouriteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Favourite numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FavouriteMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FavouriteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FavouriteMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Favourite nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FavouriteMutation) ResetField(name string) error {
	switch name {
	case favourite.FieldURI:
		m.ResetURI()
		return nil
	case favourite.FieldAccountURI:
		m.ResetAccountURI()
		return nil
	case favourite.FieldStatusID:
		m.ResetStatusID()
		return nil
	}
	return fmt.Errorf("unknown Favourite field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FavouriteMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FavouriteMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FavouriteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FavouriteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FavouriteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FavouriteMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FavouriteMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Favourite unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FavouriteMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Favourite edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	notified_uri  *string
	account_uri   *string
	_type         *string
	status_id     *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Notification, error)
	predicates    []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id string) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNotifiedURI sets the "notified_uri" field.
func (m *NotificationMutation) SetNotifiedURI(s string) {
	m.notified_uri = &s
}

// NotifiedURI returns the value of the "notified_uri" field in the mutation.
func (m *NotificationMutation) NotifiedURI() (r string, exists bool) {
	v := m.notified_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldNotifiedURI returns the old "notified_uri" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldNotifiedURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotifiedURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotifiedURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotifiedURI: %w", err)
	}
	return oldValue.NotifiedURI, nil
}

// ResetNotifiedURI resets all changes to the "notified_uri" field.
func (m *NotificationMutation) ResetNotifiedURI() {
	m.notified_uri = nil
}

// SetAccountURI sets the "account_uri" field.
func (m *NotificationMutation) SetAccountURI(s string) {
	m.account_uri = &s
}

// AccountURI returns the value of the "account_uri" field in the mutation.
func (m *NotificationMutation) AccountURI() (r string, exists bool) {
	v := m.account_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountURI returns the old "account_uri" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldAccountURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountURI: %w", err)
	}
	return oldValue.AccountURI, nil
}

// ResetAccountURI resets all changes to the "account_uri" field.
func (m *NotificationMutation) ResetAccountURI() {
	m.account_uri = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetStatusID sets the "status_id" field.
func (m *NotificationMutation) SetStatusID(s string) {
	m.status_id = &s
}

// StatusID returns the value of the "status_id" field in the mutation.
func (m *NotificationMutation) StatusID() (r string, exists bool) {
	v := m.status_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusID returns the old "status_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldStatusID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusID: %w", err)
	}
	return oldValue.StatusID, nil
}

// ClearStatusID clears the value of the "status_id" field.
func (m *NotificationMutation) ClearStatusID() {
	m.status_id = nil
	m.clearedFields[notification.FieldStatusID] = struct{}{}
}

// StatusIDCleared returns if the "status_id" field was cleared in this mutation.
func (m *NotificationMutation) StatusIDCleared() bool {
	_, ok := m.clearedFields[notification.FieldStatusID]
	return ok
}

// ResetStatusID resets all changes to the "status_id" field.
func (m *NotificationMutation) ResetStatusID() {
	m.status_id = nil
	delete(m.clearedFields, notification.FieldStatusID)
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.notified_uri != nil {
		fields = append(fields, notification.FieldNotifiedURI)
	}
	if m.account_uri != nil {
		fields = append(fields, notification.FieldAccountURI)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.status_id != nil {
		fields = append(fields, notification.FieldStatusID)
	}
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldNotifiedURI:
		return m.NotifiedURI()
	case notification.FieldAccountURI:
		return m.AccountURI()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldStatusID:
		return m.StatusID()
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldNotifiedURI:
		return m.OldNotifiedURI(ctx)
	case notification.FieldAccountURI:
		return m.OldAccountURI(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldStatusID:
		return m.OldStatusID(ctx)
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldNotifiedURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotifiedURI(v)
		return nil
	case notification.FieldAccountURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountURI(v)
		return nil
	case notification.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldStatusID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusID(v)
		return nil
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldStatusID) {
		fields = append(fields, notification.FieldStatusID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldStatusID:
		m.ClearStatusID()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldNotifiedURI:
		m.ResetNotifiedURI()
		return nil
	case notification.FieldAccountURI:
		m.ResetAccountURI()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldStatusID:
		m.ResetStatusID()
		return nil
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Notification edge %s", name)
}

// RelationshipMutation represents an operation that mutates the Relationship nodes in the graph.
type RelationshipMutation struct {
	config
	op            Op
	typ           string
	id            *string
	owner_uri     *string
	subject_uri   *string
	following     *bool
	requested     *bool
	blocking      *bool
	muting        *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Relationship, error)
	predicates    []predicate.Relationship
}

var _ ent.Mutation = (*RelationshipMutation)(nil)

// relationshipOption allows management of the mutation configuration using functional options.
type relationshipOption func(*RelationshipMutation)

// newRelationshipMutation creates new mutation for the Relationship entity.
func newRelationshipMutation(c config, op Op, opts ...relationshipOption) *RelationshipMutation {
	m := &RelationshipMutation{
		config:        c,
		op:            op,
		typ:           TypeRelationship,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRelationshipID sets the ID field of the mutation.
func withRelationshipID(id string) relationshipOption {
	return func(m *RelationshipMutation) {
		var (
			err   error
			once  sync.Once
			value *Relationship
		)
		m.oldValue = func(ctx context.Context) (*Relationship, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Relationship.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRelationship sets the old Relationship of the mutation.
func withRelationship(node *Relationship) relationshipOption {
	return func(m *RelationshipMutation) {
		m.oldValue = func(context.Context) (*Relationship, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RelationshipMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RelationshipMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Relationship entities.
func (m *RelationshipMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RelationshipMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RelationshipMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Relationship.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerURI sets the "owner_uri" field.
func (m *RelationshipMutation) SetOwnerURI(s string) {
	m.owner_uri = &s
}

// OwnerURI returns the value of the "owner_uri" field in the mutation.
func (m *RelationshipMutation) OwnerURI() (r string, exists bool) {
	v := m.owner_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerURI returns the old "owner_uri" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldOwnerURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerURI: %w", err)
	}
	return oldValue.OwnerURI, nil
}

// ResetOwnerURI resets all changes to the "owner_uri" field.
func (m *RelationshipMutation) ResetOwnerURI() {
	m.owner_uri = nil
}

// SetSubjectURI sets the "subject_uri" field.
func (m *RelationshipMutation) SetSubjectURI(s string) {
	m.subject_uri = &s
}

// SubjectURI returns the value of the "subject_uri" field in the mutation.
func (m *RelationshipMutation) SubjectURI() (r string, exists bool) {
	v := m.subject_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectURI returns the old "subject_uri" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldSubjectURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectURI: %w", err)
	}
	return oldValue.SubjectURI, nil
}

// ResetSubjectURI resets all changes to the "subject_uri" field.
func (m *RelationshipMutation) ResetSubjectURI() {
	m.subject_uri = nil
}

// SetFollowing sets the "following" field.
func (m *RelationshipMutation) SetFollowing(b bool) {
	m.following = &b
}

// Following returns the value of the "following" field in the mutation.
func (m *RelationshipMutation) Following() (r bool, exists bool) {
	v := m.following
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowing returns the old "following" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldFollowing(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowing: %w", err)
	}
	return oldValue.Following, nil
}

// ResetFollowing resets all changes to the "following" field.
func (m *RelationshipMutation) ResetFollowing() {
	m.following = nil
}

// SetRequested sets the "requested" field.
func (m *RelationshipMutation) SetRequested(b bool) {
	m.requested = &b
}

// Requested returns the value of the "requested" field in the mutation.
func (m *RelationshipMutation) Requested() (r bool, exists bool) {
	v := m.requested
	if v == nil {
		return
	}
	return *v, true
}

// OldRequested returns the old "requested" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequested: %w", err)
	}
	return oldValue.Requested, nil
}

// ResetRequested resets all changes to the "requested" field.
func (m *RelationshipMutation) ResetRequested() {
	m.requested = nil
}

// SetBlocking sets the "blocking" field.
func (m *RelationshipMutation) SetBlocking(b bool) {
	m.blocking = &b
}

// Blocking returns the value of the "blocking" field in the mutation.
func (m *RelationshipMutation) Blocking() (r bool, exists bool) {
	v := m.blocking
	if v == nil {
		return
	}
	return *v, true
}

// OldBlocking returns the old "blocking" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldBlocking(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlocking is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlocking requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlocking: %w", err)
	}
	return oldValue.Blocking, nil
}

// ResetBlocking resets all changes to the "blocking" field.
func (m *RelationshipMutation) ResetBlocking() {
	m.blocking = nil
}

// SetMuting sets the "muting" field.
func (m *RelationshipMutation) SetMuting(b bool) {
	m.muting = &b
}

// Muting returns the value of the "muting" field in the mutation.
func (m *RelationshipMutation) Muting() (r bool, exists bool) {
	v := m.muting
	if v == nil {
		return
	}
	return *v, true
}

// OldMuting returns the old "muting" field's value of the Relationship entity.
// If the Relationship object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RelationshipMutation) OldMuting(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMuting is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMuting requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMuting: %w", err)
	}
	return oldValue.Muting, nil
}

// ResetMuting resets all changes to the "muting" field.
func (m *RelationshipMutation) ResetMuting() {
	m.muting = nil
}

// Where appends a list predicates to the RelationshipMutation builder.
func (m *RelationshipMutation) Where(ps ...predicate.Relationship) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RelationshipMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RelationshipMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Relationship, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RelationshipMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RelationshipMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Relationship).
func (m *RelationshipMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RelationshipMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.owner_uri != nil {
		fields = append(fields, relationship.FieldOwnerURI)
	}
	if m.subject_uri != nil {
		fields = append(fields, relationship.FieldSubjectURI)
	}
	if m.following != nil {
		fields = append(fields, relationship.FieldFollowing)
	}
	if m.requested != nil {
		fields = append(fields, relationship.FieldRequested)
	}
	if m.blocking != nil {
		fields = append(fields, relationship.FieldBlocking)
	}
	if m.muting != nil {
		fields = append(fields, relationship.FieldMuting)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RelationshipMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case relationship.FieldOwnerURI:
		return m.OwnerURI()
	case relationship.FieldSubjectURI:
		return m.SubjectURI()
	case relationship.FieldFollowing:
		return m.Following()
	case relationship.FieldRequested:
		return m.Requested()
	case relationship.FieldBlocking:
		return m.Blocking()
	case relationship.FieldMuting:
		return m.Muting()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RelationshipMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case relationship.FieldOwnerURI:
		return m.OldOwnerURI(ctx)
	case relationship.FieldSubjectURI:
		return m.OldSubjectURI(ctx)
	case relationship.FieldFollowing:
		return m.OldFollowing(ctx)
	case relationship.FieldRequested:
		return m.OldRequested(ctx)
	case relationship.FieldBlocking:
		return m.OldBlocking(ctx)
	case relationship.FieldMuting:
		return m.OldMuting(ctx)
	}
	return nil, fmt.Errorf("unknown Relationship field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RelationshipMutation) SetField(name string, value ent.Value) error {
	switch name {
	case relationship.FieldOwnerURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerURI(v)
		return nil
	case relationship.FieldSubjectURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectURI(v)
		return nil
	case relationship.FieldFollowing:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowing(v)
		return nil
	case relationship.FieldRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequested(v)
		return nil
	case relationship.FieldBlocking:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlocking(v)
		return nil
	case relationship.FieldMuting:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMuting(v)
		return nil
	}
	return fmt.Errorf("unknown Relationship field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RelationshipMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RelationshipMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RelationshipMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Relationship numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RelationshipMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RelationshipMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RelationshipMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Relationship nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RelationshipMutation) ResetField(name string) error {
	switch name {
	case relationship.FieldOwnerURI:
		m.ResetOwnerURI()
		return nil
	case relationship.FieldSubjectURI:
		m.ResetSubjectURI()
		return nil
	case relationship.FieldFollowing:
		m.ResetFollowing()
		return nil
	case relationship.FieldRequested:
		m.ResetRequested()
		return nil
	case relationship.FieldBlocking:
		m.ResetBlocking()
		return nil
	case relationship.FieldMuting:
		m.ResetMuting()
		return nil
	}
	return fmt.Errorf("unknown Relationship field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RelationshipMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RelationshipMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RelationshipMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RelationshipMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RelationshipMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RelationshipMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RelationshipMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Relationship unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RelationshipMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Relationship edge %s", name)
}

// RemoteObjectMutation represents an operation that mutates the RemoteObject nodes in the graph.
type RemoteObjectMutation struct {
	config
	op            Op
	typ           string
	id            *string
	remote_id     *string
	_type         *string
	uri           *string
	author_uri    *string
	created_at    *time.Time
	extra_data    *[]byte
	extensions    *[]byte
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RemoteObject, error)
	predicates    []predicate.RemoteObject
}

var _ ent.Mutation = (*RemoteObjectMutation)(nil)

// remoteobjectOption allows management of the mutation configuration using functional options.
type remoteobjectOption func(*RemoteObjectMutation)

// newRemoteObjectMutation creates new mutation for the RemoteObject entity.
func newRemoteObjectMutation(c config, op Op, opts ...remoteobjectOption) *RemoteObjectMutation {
	m := &RemoteObjectMutation{
		config:        c,
		op:            op,
		typ:           TypeRemoteObject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRemoteObjectID sets the ID field of the mutation.
func withRemoteObjectID(id string) remoteobjectOption {
	return func(m *RemoteObjectMutation) {
		var (
			err   error
			once  sync.Once
			value *RemoteObject
		)
		m.oldValue = func(ctx context.Context) (*RemoteObject, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RemoteObject.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRemoteObject sets the old RemoteObject of the mutation.
func withRemoteObject(node *RemoteObject) remoteobjectOption {
	return func(m *RemoteObjectMutation) {
		m.oldValue = func(context.Context) (*RemoteObject, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RemoteObjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RemoteObjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RemoteObject entities.
func (m *RemoteObjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RemoteObjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RemoteObjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RemoteObject.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRemoteID sets the "remote_id" field.
func (m *RemoteObjectMutation) SetRemoteID(s string) {
	m.remote_id = &s
}

// RemoteID returns the value of the "remote_id" field in the mutation.
func (m *RemoteObjectMutation) RemoteID() (r string, exists bool) {
	v := m.remote_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRemoteID returns the old "remote_id" field's value of the RemoteObject entity.
// If the RemoteObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemoteObjectMutation) OldRemoteID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemoteID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemoteID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemoteID: %w", err)
	}
	return oldValue.RemoteID, nil
}

// ResetRemoteID resets all changes to the "remote_id" field.
func (m *RemoteObjectMutation) ResetRemoteID() {
	m.remote_id = nil
}

// SetType sets the "type" field.
func (m *RemoteObjectMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *RemoteObjectMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the RemoteObject entity.
// If the RemoteObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemoteObjectMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *RemoteObjectMutation) ResetType() {
	m._type = nil
}

// SetURI sets the "uri" field.
func (m *RemoteObjectMutation) SetURI(s string) {
	m.uri = &s
}

// URI returns the value of the "uri" field in the mutation.
func (m *RemoteObjectMutation) URI() (r string, exists bool) {
	v := m.uri
	if v == nil {
		return
	}
	return *v, true
}

// OldURI returns the old "uri" field's value of the RemoteObject entity.
// If the RemoteObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemoteObjectMutation) OldURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURI: %w", err)
	}
	return oldValue.URI, nil
}

// ResetURI resets all changes to the "uri" field.
func (m *RemoteObjectMutation) ResetURI() {
	m.uri = nil
}

// SetAuthorURI sets the "author_uri" field.
func (m *RemoteObjectMutation) SetAuthorURI(s string) {
	m.author_uri = &s
}

// AuthorURI returns the value of the "author_uri" field in the mutation.
func (m *RemoteObjectMutation) AuthorURI() (r string, exists bool) {
	v := m.author_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorURI returns the old "author_uri" field's value of the RemoteObject entity.
// If the RemoteObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemoteObjectMutation) OldAuthorURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorURI: %w", err)
	}
	return oldValue.AuthorURI, nil
}

// ClearAuthorURI clears the value of the "author_uri" field.
func (m *RemoteObjectMutation) ClearAuthorURI() {
	m.author_uri = nil
	m.clearedFields[remoteobject.FieldAuthorURI] = struct{}{}
}

// AuthorURICleared returns if the "author_uri" field was cleared in this mutation.
func (m *RemoteObjectMutation) AuthorURICleared() bool {
	_, ok := m.clearedFields[remoteobject.FieldAuthorURI]
	return ok
}

// ResetAuthorURI resets all changes to the "author_uri" field.
func (m *RemoteObjectMutation) ResetAuthorURI() {
	m.author_uri = nil
	delete(m.clearedFields, remoteobject.FieldAuthorURI)
}

// SetCreatedAt sets the "created_at" field.
func (m *RemoteObjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RemoteObjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RemoteObject entity.
// If the RemoteObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemoteObjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RemoteObjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExtraData sets the "extra_data" field.
func (m *RemoteObjectMutation) SetExtraData(b []byte) {
	m.extra_data = &b
}

// ExtraData returns the value of the "extra_data" field in the mutation.
func (m *RemoteObjectMutation) ExtraData() (r []byte, exists bool) {
	v := m.extra_data
	if v == nil {
		return
	}
	return *v, true
}

// OldExtraData returns the old "extra_data" field's value of the RemoteObject entity.
// If the RemoteObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemoteObjectMutation) OldExtraData(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtraData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtraData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtraData: %w", err)
	}
	return oldValue.ExtraData, nil
}

// ClearExtraData clears the value of the "extra_data" field.
func (m *RemoteObjectMutation) ClearExtraData() {
	m.extra_data = nil
	m.clearedFields[remoteobject.FieldExtraData] = struct{}{}
}

// ExtraDataCleared returns if the "extra_data" field was cleared in this mutation.
func (m *RemoteObjectMutation) ExtraDataCleared() bool {
	_, ok := m.clearedFields[remoteobject.FieldExtraData]
	return ok
}

// ResetExtraData resets all changes to the "extra_data" field.
func (m *RemoteObjectMutation) ResetExtraData() {
	m.extra_data = nil
	delete(m.clearedFields, remoteobject.FieldExtraData)
}

// SetExtensions sets the "extensions" field.
func (m *RemoteObjectMutation) SetExtensions(b []byte) {
	m.extensions = &b
}

// Extensions returns the value of the "extensions" field in the mutation.
func (m *RemoteObjectMutation) Extensions() (r []byte, exists bool) {
	v := m.extensions
	if v == nil {
		return
	}
	return *v, true
}

// OldExtensions returns the old "extensions" field's value of the RemoteObject entity.
// If the RemoteObject object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RemoteObjectMutation) OldExtensions(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtensions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtensions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtensions: %w", err)
	}
	return oldValue.Extensions, nil
}

// ClearExtensions clears the value of the "extensions" field.
func (m *RemoteObjectMutation) ClearExtensions() {
	m.extensions = nil
	m.clearedFields[remoteobject.FieldExtensions] = struct{}{}
}

// ExtensionsCleared returns if the "extensions" field was cleared in this mutation.
func (m *RemoteObjectMutation) ExtensionsCleared() bool {
	_, ok := m.clearedFields[remoteobject.FieldExtensions]
	return ok
}

// ResetExtensions resets all changes to the "extensions" field.
func (m *RemoteObjectMutation) ResetExtensions() {
	m.extensions = nil
	delete(m.clearedFields, remoteobject.FieldExtensions)
}

// Where appends a list predicates to the RemoteObjectMutation builder.
func (m *RemoteObjectMutation) Where(ps ...predicate.RemoteObject) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RemoteObjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RemoteObjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RemoteObject, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RemoteObjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RemoteObjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RemoteObject).
func (m *RemoteObjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RemoteObjectMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.remote_id != nil {
		fields = append(fields, remoteobject.FieldRemoteID)
	}
	if m._type != nil {
		fields = append(fields, remoteobject.FieldType)
	}
	if m.uri != nil {
		fields = append(fields, remoteobject.FieldURI)
	}
	if m.author_uri != nil {
		fields = append(fields, remoteobject.FieldAuthorURI)
	}
	if m.created_at != nil {
		fields = append(fields, remoteobject.FieldCreatedAt)
	}
	if m.extra_data != nil {
		fields = append(fields, remoteobject.FieldExtraData)
	}
	if m.extensions != nil {
		fields = append(fields, remoteobject.FieldExtensions)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RemoteObjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case remoteobject.FieldRemoteID:
		return m.RemoteID()
	case remoteobject.FieldType:
		return m.GetType()
	case remoteobject.FieldURI:
		return m.URI()
	case remoteobject.FieldAuthorURI:
		return m.AuthorURI()
	case remoteobject.FieldCreatedAt:
		return m.CreatedAt()
	case remoteobject.FieldExtraData:
		return m.ExtraData()
	case remoteobject.FieldExtensions:
		return m.Extensions()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RemoteObjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case remoteobject.FieldRemoteID:
		return m.OldRemoteID(ctx)
	case remoteobject.FieldType:
		return m.OldType(ctx)
	case remoteobject.FieldURI:
		return m.OldURI(ctx)
	case remoteobject.FieldAuthorURI:
		return m.OldAuthorURI(ctx)
	case remoteobject.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case remoteobject.FieldExtraData:
		return m.OldExtraData(ctx)
	case remoteobject.FieldExtensions:
		return m.OldExtensions(ctx)
	}
	return nil, fmt.Errorf("unknown RemoteObject field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RemoteObjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case remoteobject.FieldRemoteID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemoteID(v)
		return nil
	case remoteobject.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case remoteobject.FieldURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURI(v)
		return nil
	case remoteobject.FieldAuthorURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorURI(v)
		return nil
	case remoteobject.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case remoteobject.FieldExtraData:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtraData(v)
		return nil
	case remoteobject.FieldExtensions:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtensions(v)
		return nil
	}
	return fmt.Errorf("unknown RemoteObject field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RemoteObjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RemoteObjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RemoteObjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RemoteObject numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RemoteObjectMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(remoteobject.FieldAuthorURI) {
		fields = append(fields, remoteobject.FieldAuthorURI)
	}
	if m.FieldCleared(remoteobject.FieldExtraData) {
		fields = append(fields, remoteobject.FieldExtraData)
	}
	if m.FieldCleared(remoteobject.FieldExtensions) {
		fields = append(fields, remoteobject.FieldExtensions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RemoteObjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RemoteObjectMutation) ClearField(name string) error {
	switch name {
	case remoteobject.FieldAuthorURI:
		m.ClearAuthorURI()
		return nil
	case remoteobject.FieldExtraData:
		m.ClearExtraData()
		return nil
	case remoteobject.FieldExtensions:
		m.ClearExtensions()
		return nil
	}
	return fmt.Errorf("unknown RemoteObject nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RemoteObjectMutation) ResetField(name string) error {
	switch name {
	case remoteobject.FieldRemoteID:
		m.ResetRemoteID()
		return nil
	case remoteobject.FieldType:
		m.ResetType()
		return nil
	case remoteobject.FieldURI:
		m.ResetURI()
		return nil
	case remoteobject.FieldAuthorURI:
		m.ResetAuthorURI()
		return nil
	case remoteobject.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case remoteobject.FieldExtraData:
		m.ResetExtraData()
		return nil
	case remoteobject.FieldExtensions:
		m.ResetExtensions()
		return nil
	}
	return fmt.Errorf("unknown RemoteObject field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RemoteObjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RemoteObjectMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RemoteObjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RemoteObjectMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RemoteObjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RemoteObjectMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RemoteObjectMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RemoteObject unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RemoteObjectMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RemoteObject edge %s", name)
}

// StatusMutation represents an operation that mutates the Status nodes in the graph.
type StatusMutation struct {
	config
	op             Op
	typ            string
	id             *string
	uri            *string
	author_uri     *string
	content        *string
	content_type   *string
	visibility     *string
	spoiler_text   *string
	sensitive      *bool
	in_reply_to_id *string
	quoting_id     *string
	reblog_of_id   *string
	instance_host  *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*Status, error)
	predicates     []predicate.Status
}

var _ ent.Mutation = (*StatusMutation)(nil)

// statusOption allows management of the mutation configuration using functional options.
type statusOption func(*StatusMutation)

// newStatusMutation creates new mutation for the Status entity.
func newStatusMutation(c config, op Op, opts ...statusOption) *StatusMutation {
	m := &StatusMutation{
		config:        c,
		op:            op,
		typ:           TypeStatus,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStatusID sets the ID field of the mutation.
func withStatusID(id string) statusOption {
	return func(m *StatusMutation) {
		var (
			err   error
			once  sync.Once
			value *Status
		)
		m.oldValue = func(ctx context.Context) (*Status, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Status.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStatus sets the old Status of the mutation.
func withStatus(node *Status) statusOption {
	return func(m *StatusMutation) {
		m.oldValue = func(context.Context) (*Status, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StatusMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StatusMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Status entities.
func (m *StatusMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StatusMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StatusMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Status.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURI sets the "uri" field.
func (m *StatusMutation) SetURI(s string) {
	m.uri = &s
}

// URI returns the value of the "uri" field in the mutation.
func (m *StatusMutation) URI() (r string, exists bool) {
	v := m.uri
	if v == nil {
		return
	}
	return *v, true
}

// OldURI returns the old "uri" field's value of the Status entity.
// If the Status object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusMutation) OldURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURI: %w", err)
	}
	return oldValue.URI, nil
}

// ResetURI resets all changes to the "uri" field.
func (m *StatusMutation) ResetURI() {
	m.uri = nil
}

// SetAuthorURI sets the "author_uri" field.
func (m *StatusMutation) SetAuthorURI(s string) {
	m.author_uri = &s
}

// AuthorURI returns the value of the "author_uri" field in the mutation.
func (m *StatusMutation) AuthorURI() (r string, exists bool) {
	v := m.author_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorURI returns the old "author_uri" field's value of the Status entity.
// If the Status object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusMutation) OldAuthorURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorURI: %w", err)
	}
	return oldValue.AuthorURI, nil
}

// ResetAuthorURI resets all changes to the "author_uri" field.
func (m *StatusMutation) ResetAuthorURI() {
	m.author_uri = nil
}

// SetContent sets the "content" field.
func (m *StatusMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *StatusMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Status entity.
// If the Status object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *StatusMutation) ClearContent() {
	m.content = nil
	m.clearedFields[status.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *StatusMutation) ContentCleared() bool {
	_, ok := m.clearedFields[status.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *StatusMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, status.FieldContent)
}

// SetContentType sets the "content_type" field.
func (m *StatusMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *StatusMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the Status entity.
// If the Status object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ClearContentType clears the value of the "content_type" field.
func (m *StatusMutation) ClearContentType() {
	m.content_type = nil
	m.clearedFields[status.FieldContentType] = struct{}{}
}

// ContentTypeCleared returns if the "content_type" field was cleared in this mutation.
func (m *StatusMutation) ContentTypeCleared() bool {
	_, ok := m.clearedFields[status.FieldContentType]
	return ok
}

// ResetContentType resets all changes to the "content_type" field.
func (m *StatusMutation) ResetContentType() {
	m.content_type = nil
	delete(m.clearedFields, status.FieldContentType)
}

// SetVisibility sets the "visibility" field.
func (m *StatusMutation) SetVisibility(s string) {
	m.visibility = &s
}

// Visibility returns the value of the "visibility" field in the mutation.
func (m *StatusMutation) Visibility() (r string, exists bool) {
	v := m.visibility
	if v == nil {
		return
	}
	return *v, true
}

// OldVisibility returns the old "visibility" field's value of the Status entity.
// If the Status object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusMutation) OldVisibility(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisibility is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisibility requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisibility: %w", err)
	}
	return oldValue.Visibility, nil
}

// ResetVisibility resets all changes to the "visibility" field.
func (m *StatusMutation) ResetVisibility() {
	m.visibility = nil
}

// SetSpoilerText sets the "spoiler_text" field.
func (m *StatusMutation) SetSpoilerText(s string) {
	m.spoiler_text = &s
}

// SpoilerText returns the value of the "spoiler_text" field in the mutation.
func (m *StatusMutation) SpoilerText() (r string, exists bool) {
	v := m.spoiler_text
	if v == nil {
		return
	}
	return *v, true
}

// OldSpoilerText returns the old "spoiler_text" field's value of the Status entity.
// If the Status object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusMutation) OldSpoilerText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpoilerText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpoilerText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpoilerText: %w", err)
	}
	return oldValue.SpoilerText, nil
}

// ClearSpoilerText clears the value of the "spoiler_text" field.
func (m *StatusMutation) ClearSpoilerText() {
	m.spoiler_text = nil
	m.clearedFields[status.FieldSpoilerText] = struct{}{}
}

// SpoilerTextCleared returns if the "spoiler_text" field was cleared in this mutation.
func (m *StatusMutation) SpoilerTextCleared() bool {
	_, ok := m.clearedFields[status.FieldSpoilerText]
	return ok
}

// ResetSpoilerText resets all changes to the "spoiler_text" field.
func (m *StatusMutation) ResetSpoilerText() {
	m.spoiler_text = nil
	delete(m.clearedFields, status.FieldSpoilerText)
}

// SetSensitive sets the "sensitive" field.
func (m *StatusMutation) SetSensitive(b bool) {
	m.sensitive = &b
}

// Sensitive returns the value of the "sensitive" field in the mutation.
func (m *StatusMutation) Sensitive() (r bool, exists bool) {
	v := m.sensitive
	if v == nil {
		return
	}
	return *v, true
}

// OldSensitive returns the old "sensitive" field's value of the Status entity.
// If the Status object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusMutation) OldSensitive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSensitive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSensitive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSensitive: %w", err)
	}
	return oldValue.Sensitive, nil
}

// ResetSensitive resets all changes to the "sensitive" field.
func (m *StatusMutation) ResetSensitive() {
	m.sensitive = nil
}

// SetInReplyToID sets the "in_reply_to_id" field.
func (m *StatusMutation) SetInReplyToID(s string) {
	m.in_reply_to_id = &s
}

// InReplyToID returns the value of the "in_reply_to_id" field in the mutation.
func (m *StatusMutation) InReplyToID() (r string, exists bool) {
	v := m.in_reply_to_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInReplyToID returns the old "in_reply_to_id" field's value of the Status entity.
// If the Status object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusMutation) OldInReplyToID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInReplyToID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInReplyToID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInReplyToID: %w", err)
	}
	return oldValue.InReplyToID, nil
}

// ClearInReplyToID clears the value of the "in_reply_to_id" field.
func (m *StatusMutation) ClearInReplyToID() {
	m.in_reply_to_id = nil
	m.clearedFields[status.FieldInReplyToID] = struct{}{}
}

// InReplyToIDCleared returns if the "in_reply_to_id" field was cleared in this mutation.
func (m *StatusMutation) InReplyToIDCleared() bool {
	_, ok := m.clearedFields[status.FieldInReplyToID]
	return ok
}

// ResetInReplyToID resets all changes to the "in_reply_to_id" field.
func (m *StatusMutation) ResetInReplyToID() {
	m.in_reply_to_id = nil
	delete(m.clearedFields, status.FieldInReplyToID)
}

// SetQuotingID sets the "quoting_id" field.
func (m *StatusMutation) SetQuotingID(s string) {
	m.quoting_id = &s
}

// QuotingID returns the value of the "quoting_id" field in the mutation.
func (m *StatusMutation) QuotingID() (r string, exists bool) {
	v := m.quoting_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuotingID returns the old "quoting_id" field's value of the Status entity.
// If the Status object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusMutation) OldQuotingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuotingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuotingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuotingID: %w", err)
	}
	return oldValue.QuotingID, nil
}

// ClearQuotingID clears the value of the "quoting_id" field.
func (m *StatusMutation) ClearQuotingID() {
	m.quoting_id = nil
	m.clearedFields[status.FieldQuotingID] = struct{}{}
}

// QuotingIDCleared returns if the "quoting_id" field was cleared in this mutation.
func (m *StatusMutation) QuotingIDCleared() bool {
	_, ok := m.clearedFields[status.FieldQuotingID]
	return ok
}

// ResetQuotingID resets all changes to the "quoting_id" field.
func (m *StatusMutation) ResetQuotingID() {
	m.quoting_id = nil
	delete(m.clearedFields, status.FieldQuotingID)
}

// SetReblogOfID sets the "reblog_of_id" field.
func (m *StatusMutation) SetReblogOfID(s string) {
	m.reblog_of_id = &s
}

// ReblogOfID returns the value of the "reblog_of_id" field in the mutation.
func (m *StatusMutation) ReblogOfID() (r string, exists bool) {
	v := m.reblog_of_id
	if v == nil {
		return
	}
	return *v, true
}

// OldReblogOfID returns the old "reblog_of_id" field's value of the Status entity.
// If the Status object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusMutation) OldReblogOfID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReblogOfID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReblogOfID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReblogOfID: %w", err)
	}
	return oldValue.ReblogOfID, nil
}

// ClearReblogOfID clears the value of the "reblog_of_id" field.
func (m *StatusMutation) ClearReblogOfID() {
	m.reblog_of_id = nil
	m.clearedFields[status.FieldReblogOfID] = struct{}{}
}

// ReblogOfIDCleared returns if the "reblog_of_id" field was cleared in this mutation.
func (m *StatusMutation) ReblogOfIDCleared() bool {
	_, ok := m.clearedFields[status.FieldReblogOfID]
	return ok
}

// ResetReblogOfID resets all changes to the "reblog_of_id" field.
func (m *StatusMutation) ResetReblogOfID() {
	m.reblog_of_id = nil
	delete(m.clearedFields, status.FieldReblogOfID)
}

// SetInstanceHost sets the "instance_host" field.
func (m *StatusMutation) SetInstanceHost(s string) {
	m.instance_host = &s
}

// InstanceHost returns the value of the "instance_host" field in the mutation.
func (m *StatusMutation) InstanceHost() (r string, exists bool) {
	v := m.instance_host
	if v == nil {
		return
	}
	return *v, true
}

// OldInstanceHost returns the old "instance_host" field's value of the Status entity.
// If the Status object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusMutation) OldInstanceHost(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstanceHost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstanceHost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstanceHost: %w", err)
	}
	return oldValue.InstanceHost, nil
}

// ClearInstanceHost clears the value of the "instance_host" field.
func (m *StatusMutation) ClearInstanceHost() {
	m.instance_host = nil
	m.clearedFields[status.FieldInstanceHost] = struct{}{}
}

// InstanceHostCleared returns if the "instance_host" field was cleared in this mutation.
func (m *StatusMutation) InstanceHostCleared() bool {
	_, ok := m.clearedFields[status.FieldInstanceHost]
	return ok
}

// ResetInstanceHost resets all changes to the "instance_host" field.
func (m *StatusMutation) ResetInstanceHost() {
	m.instance_host = nil
	delete(m.clearedFields, status.FieldInstanceHost)
}

// SetCreatedAt sets the "created_at" field.
func (m *StatusMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StatusMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Status entity.
// If the Status object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StatusMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StatusMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StatusMutation builder.
func (m *StatusMutation) Where(ps ...predicate.Status) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StatusMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StatusMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Status, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StatusMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StatusMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Status).
func (m *StatusMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StatusMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.uri != nil {
		fields = append(fields, status.FieldURI)
	}
	if m.author_uri != nil {
		fields = append(fields, status.FieldAuthorURI)
	}
	if m.content != nil {
		fields = append(fields, status.FieldContent)
	}
	if m.content_type != nil {
		fields = append(fields, status.FieldContentType)
	}
	if m.visibility != nil {
		fields = append(fields, status.FieldVisibility)
	}
	if m.spoiler_text != nil {
		fields = append(fields, status.FieldSpoilerText)
	}
	if m.sensitive != nil {
		fields = append(fields, status.FieldSensitive)
	}
	if m.in_reply_to_id != nil {
		fields = append(fields, status.FieldInReplyToID)
	}
	if m.quoting_id != nil {
		fields = append(fields, status.FieldQuotingID)
	}
	if m.reblog_of_id != nil {
		fields = append(fields, status.FieldReblogOfID)
	}
	if m.instance_host != nil {
		fields = append(fields, status.FieldInstanceHost)
	}
	if m.created_at != nil {
		fields = append(fields, status.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StatusMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case status.FieldURI:
		return m.URI()
	case status.FieldAuthorURI:
		return m.AuthorURI()
	case status.FieldContent:
		return m.Content()
	case status.FieldContentType:
		return m.ContentType()
	case status.FieldVisibility:
		return m.Visibility()
	case status.FieldSpoilerText:
		return m.SpoilerText()
	case status.FieldSensitive:
		return m.Sensitive()
	case status.FieldInReplyToID:
		return m.InReplyToID()
	case status.FieldQuotingID:
		return m.QuotingID()
	case status.FieldReblogOfID:
		return m.ReblogOfID()
	case status.FieldInstanceHost:
		return m.InstanceHost()
	case status.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StatusMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case status.FieldURI:
		return m.OldURI(ctx)
	case status.FieldAuthorURI:
		return m.OldAuthorURI(ctx)
	case status.FieldContent:
		return m.OldContent(ctx)
	case status.FieldContentType:
		return m.OldContentType(ctx)
	case status.FieldVisibility:
		return m.OldVisibility(ctx)
	case status.FieldSpoilerText:
		return m.OldSpoilerText(ctx)
	case status.FieldSensitive:
		return m.OldSensitive(ctx)
	case status.FieldInReplyToID:
		return m.OldInReplyToID(ctx)
	case status.FieldQuotingID:
		return m.OldQuotingID(ctx)
	case status.FieldReblogOfID:
		return m.OldReblogOfID(ctx)
	case status.FieldInstanceHost:
		return m.OldInstanceHost(ctx)
	case status.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Status field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusMutation) SetField(name string, value ent.Value) error {
	switch name {
	case status.FieldURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURI(v)
		return nil
	case status.FieldAuthorURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorURI(v)
		return nil
	case status.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case status.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case status.FieldVisibility:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisibility(v)
		return nil
	case status.FieldSpoilerText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpoilerText(v)
		return nil
	case status.FieldSensitive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSensitive(v)
		return nil
	case status.FieldInReplyToID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInReplyToID(v)
		return nil
	case status.FieldQuotingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuotingID(v)
		return nil
	case status.FieldReblogOfID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReblogOfID(v)
		return nil
	case status.FieldInstanceHost:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstanceHost(v)
		return nil
	case status.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Status field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StatusMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StatusMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StatusMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Status numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StatusMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(status.FieldContent) {
		fields = append(fields, status.FieldContent)
	}
	if m.FieldCleared(status.FieldContentType) {
		fields = append(fields, status.FieldContentType)
	}
	if m.FieldCleared(status.FieldSpoilerText) {
		fields = append(fields, status.FieldSpoilerText)
	}
	if m.FieldCleared(status.FieldInReplyToID) {
		fields = append(fields, status.FieldInReplyToID)
	}
	if m.FieldCleared(status.FieldQuotingID) {
		fields = append(fields, status.FieldQuotingID)
	}
	if m.FieldCleared(status.FieldReblogOfID) {
		fields = append(fields, status.FieldReblogOfID)
	}
	if m.FieldCleared(status.FieldInstanceHost) {
		fields = append(fields, status.FieldInstanceHost)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StatusMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StatusMutation) ClearField(name string) error {
	switch name {
	case status.FieldContent:
		m.ClearContent()
		return nil
	case status.FieldContentType:
		m.ClearContentType()
		return nil
	case status.FieldSpoilerText:
		m.ClearSpoilerText()
		return nil
	case status.FieldInReplyToID:
		m.ClearInReplyToID()
		return nil
	case status.FieldQuotingID:
		m.ClearQuotingID()
		return nil
	case status.FieldReblogOfID:
		m.ClearReblogOfID()
		return nil
	case status.FieldInstanceHost:
		m.ClearInstanceHost()
		return nil
	}
	return fmt.Errorf("unknown Status nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StatusMutation) ResetField(name string) error {
	switch name {
	case status.FieldURI:
		m.ResetURI()
		return nil
	case status.FieldAuthorURI:
		m.ResetAuthorURI()
		return nil
	case status.FieldContent:
		m.ResetContent()
		return nil
	case status.FieldContentType:
		m.ResetContentType()
		return nil
	case status.FieldVisibility:
		m.ResetVisibility()
		return nil
	case status.FieldSpoilerText:
		m.ResetSpoilerText()
		return nil
	case status.FieldSensitive:
		m.ResetSensitive()
		return nil
	case status.FieldInReplyToID:
		m.ResetInReplyToID()
		return nil
	case status.FieldQuotingID:
		m.ResetQuotingID()
		return nil
	case status.FieldReblogOfID:
		m.ResetReblogOfID()
		return nil
	case status.FieldInstanceHost:
		m.ResetInstanceHost()
		return nil
	case status.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Status field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StatusMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StatusMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StatusMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StatusMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StatusMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StatusMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StatusMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Status unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StatusMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Status edge %s", name)
}
