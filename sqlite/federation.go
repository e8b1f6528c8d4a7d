package sqlite

import (
	"context"
	"fmt"

	"emperror.dev/errors"

	"github.com/yumine/versia"
	"github.com/yumine/versia/lib/array"
	"github.com/yumine/versia/sqlite/ent"
	"github.com/yumine/versia/sqlite/ent/favourite"
	"github.com/yumine/versia/sqlite/ent/notification"
	"github.com/yumine/versia/sqlite/ent/relationship"
	"github.com/yumine/versia/sqlite/ent/remoteobject"
	"github.com/yumine/versia/sqlite/ent/status"
)

// remote object

type RemoteObjectDB struct {
	*SQLite
}

func NewRemoteObjectDB(db *SQLite) versia.RemoteObjectStore {
	return &RemoteObjectDB{SQLite: db}
}

func (d *RemoteObjectDB) FindByURI(c context.Context, uri string) (*versia.RemoteObject, error) {
	object, err := d.cli.RemoteObject.Query().
		Where(remoteobject.URI(uri)).
		First(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, versia.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get object: %w", errors.WithStack(err))
	}
	return toRemoteObject(object), nil
}

func (d *RemoteObjectDB) FindByRemoteID(c context.Context, remoteID string) (*versia.RemoteObject, error) {
	object, err := d.cli.RemoteObject.Query().
		Where(remoteobject.RemoteID(remoteID)).
		First(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, versia.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get object: %w", errors.WithStack(err))
	}
	return toRemoteObject(object), nil
}

// Upsert is keyed by the unique uri column so two concurrent
// resolutions of the same uri settle on one row. The row is re-read
// after the write; the database is the source of truth.
func (d *RemoteObjectDB) Upsert(c context.Context, object *versia.RemoteObject) (*versia.RemoteObject, error) {
	err := d.cli.RemoteObject.Create().
		SetID(object.ID).
		SetRemoteID(object.RemoteID).
		SetType(string(object.Type)).
		SetURI(object.URI).
		SetAuthorURI(object.AuthorURI).
		SetCreatedAt(object.CreatedAt).
		SetExtraData(object.ExtraData).
		SetExtensions(object.Extensions).
		OnConflictColumns(remoteobject.FieldURI).
		UpdateNewValues().
		Exec(c)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert object: %w", errors.WithStack(err))
	}
	return d.FindByURI(c, object.URI)
}

func (d *RemoteObjectDB) DeleteByURI(c context.Context, uri string) error {
	_, err := d.cli.RemoteObject.Delete().
		Where(remoteobject.URI(uri)).
		Exec(c)
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", errors.WithStack(err))
	}
	return nil
}

func toRemoteObject(object *ent.RemoteObject) *versia.RemoteObject {
	return &versia.RemoteObject{
		ID:         object.ID,
		RemoteID:   object.RemoteID,
		Type:       versia.EntityType(object.Type),
		URI:        object.URI,
		AuthorURI:  object.AuthorURI,
		CreatedAt:  object.CreatedAt,
		ExtraData:  object.ExtraData,
		Extensions: object.Extensions,
	}
}

// status

type StatusDB struct {
	*SQLite
}

func NewStatusDB(db *SQLite) versia.StatusStore {
	return &StatusDB{SQLite: db}
}

func (d *StatusDB) Find(c context.Context, id string) (*versia.Status, error) {
	st, err := d.cli.Status.Get(c, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, versia.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get status: %w", errors.WithStack(err))
	}
	return toStatus(st), nil
}

func (d *StatusDB) FindByURI(c context.Context, uri string) (*versia.Status, error) {
	st, err := d.cli.Status.Query().
		Where(status.URI(uri)).
		First(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, versia.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get status: %w", errors.WithStack(err))
	}
	return toStatus(st), nil
}

func (d *StatusDB) Upsert(c context.Context, st *versia.Status) (*versia.Status, error) {
	err := d.cli.Status.Create().
		SetID(st.ID).
		SetURI(st.URI).
		SetAuthorURI(st.AuthorURI).
		SetContent(st.Content).
		SetContentType(st.ContentType).
		SetVisibility(string(st.Visibility)).
		SetSpoilerText(st.SpoilerText).
		SetSensitive(st.Sensitive).
		SetInReplyToID(st.InReplyToID).
		SetQuotingID(st.QuotingID).
		SetReblogOfID(st.ReblogOfID).
		SetInstanceHost(st.InstanceHost).
		SetCreatedAt(st.CreatedAt).
		OnConflictColumns(status.FieldURI).
		UpdateNewValues().
		Exec(c)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert status: %w", errors.WithStack(err))
	}
	return d.FindByURI(c, st.URI)
}

func (d *StatusDB) Update(c context.Context, st *versia.Status) error {
	err := d.cli.Status.UpdateOneID(st.ID).
		SetContent(st.Content).
		SetContentType(st.ContentType).
		SetVisibility(string(st.Visibility)).
		SetSpoilerText(st.SpoilerText).
		SetSensitive(st.Sensitive).
		SetInReplyToID(st.InReplyToID).
		SetQuotingID(st.QuotingID).
		Exec(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return versia.ErrNotFound
		}
		return fmt.Errorf("failed to update status: %w", errors.WithStack(err))
	}
	return nil
}

func (d *StatusDB) DeleteByURI(c context.Context, uri string) error {
	_, err := d.cli.Status.Delete().
		Where(status.URI(uri)).
		Exec(c)
	if err != nil {
		return fmt.Errorf("failed to delete status: %w", errors.WithStack(err))
	}
	return nil
}

func toStatus(st *ent.Status) *versia.Status {
	return &versia.Status{
		ID:           st.ID,
		URI:          st.URI,
		AuthorURI:    st.AuthorURI,
		Content:      st.Content,
		ContentType:  st.ContentType,
		Visibility:   versia.Visibility(st.Visibility),
		SpoilerText:  st.SpoilerText,
		Sensitive:    st.Sensitive,
		InReplyToID:  st.InReplyToID,
		QuotingID:    st.QuotingID,
		ReblogOfID:   st.ReblogOfID,
		InstanceHost: st.InstanceHost,
		CreatedAt:    st.CreatedAt,
	}
}

// favourite

type FavouriteDB struct {
	*SQLite
}

func NewFavouriteDB(db *SQLite) versia.FavouriteStore {
	return &FavouriteDB{SQLite: db}
}

// Insert is a no-op when the (account, status) pair already exists;
// duplicate likes must not error.
func (d *FavouriteDB) Insert(c context.Context, fav *versia.Favourite) error {
	err := d.cli.Favourite.Create().
		SetID(fav.ID).
		SetURI(fav.URI).
		SetAccountURI(fav.AccountURI).
		SetStatusID(fav.StatusID).
		OnConflict().
		Ignore().
		Exec(c)
	if err != nil {
		return fmt.Errorf("failed to create favourite: %w", errors.WithStack(err))
	}
	return nil
}

func (d *FavouriteDB) Find(c context.Context, accountURI string, statusID string) (*versia.Favourite, error) {
	fav, err := d.cli.Favourite.Query().
		Where(
			favourite.AccountURI(accountURI),
			favourite.StatusID(statusID),
		).
		First(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, versia.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get favourite: %w", errors.WithStack(err))
	}
	return &versia.Favourite{
		ID:         fav.ID,
		URI:        fav.URI,
		AccountURI: fav.AccountURI,
		StatusID:   fav.StatusID,
	}, nil
}

func (d *FavouriteDB) DeleteByURI(c context.Context, uri string) error {
	_, err := d.cli.Favourite.Delete().
		Where(favourite.URI(uri)).
		Exec(c)
	if err != nil {
		return fmt.Errorf("failed to delete favourite: %w", errors.WithStack(err))
	}
	return nil
}

// relationship

type RelationshipDB struct {
	*SQLite
}

func NewRelationshipDB(db *SQLite) versia.RelationshipStore {
	return &RelationshipDB{SQLite: db}
}

func (d *RelationshipDB) Find(c context.Context, ownerURI string, subjectURI string) (*versia.Relationship, error) {
	rel, err := d.cli.Relationship.Query().
		Where(
			relationship.OwnerURI(ownerURI),
			relationship.SubjectURI(subjectURI),
		).
		First(c)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, versia.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get relationship: %w", errors.WithStack(err))
	}
	return &versia.Relationship{
		OwnerURI:   rel.OwnerURI,
		SubjectURI: rel.SubjectURI,
		Following:  rel.Following,
		Requested:  rel.Requested,
		Blocking:   rel.Blocking,
		Muting:     rel.Muting,
	}, nil
}

func (d *RelationshipDB) Upsert(c context.Context, rel *versia.Relationship) error {
	err := d.cli.Relationship.Create().
		SetID(versia.GenerateSortableID()).
		SetOwnerURI(rel.OwnerURI).
		SetSubjectURI(rel.SubjectURI).
		SetFollowing(rel.Following).
		SetRequested(rel.Requested).
		SetBlocking(rel.Blocking).
		SetMuting(rel.Muting).
		OnConflictColumns(relationship.FieldOwnerURI, relationship.FieldSubjectURI).
		UpdateNewValues().
		Exec(c)
	if err != nil {
		return fmt.Errorf("failed to upsert relationship: %w", errors.WithStack(err))
	}
	return nil
}

func (d *RelationshipDB) Delete(c context.Context, ownerURI string, subjectURI string) error {
	_, err := d.cli.Relationship.Delete().
		Where(
			relationship.OwnerURI(ownerURI),
			relationship.SubjectURI(subjectURI),
		).
		Exec(c)
	if err != nil {
		return fmt.Errorf("failed to delete relationship: %w", errors.WithStack(err))
	}
	return nil
}

// notification

type NotificationDB struct {
	*SQLite
}

func NewNotificationDB(db *SQLite) versia.NotificationStore {
	return &NotificationDB{SQLite: db}
}

func (d *NotificationDB) Insert(c context.Context, n *versia.Notification) error {
	err := d.cli.Notification.Create().
		SetID(n.ID).
		SetNotifiedURI(n.NotifiedURI).
		SetAccountURI(n.AccountURI).
		SetType(string(n.Type)).
		SetStatusID(n.StatusID).
		SetCreatedAt(n.CreatedAt).
		Exec(c)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", errors.WithStack(err))
	}
	return nil
}

func (d *NotificationDB) ListForAccount(c context.Context, notifiedURI string) ([]*versia.Notification, error) {
	rows, err := d.cli.Notification.Query().
		Where(notification.NotifiedURI(notifiedURI)).
		Order(ent.Desc(notification.FieldCreatedAt)).
		All(c)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", errors.WithStack(err))
	}
	return array.Map(rows, func(n *ent.Notification) *versia.Notification {
		return &versia.Notification{
			ID:          n.ID,
			NotifiedURI: n.NotifiedURI,
			AccountURI:  n.AccountURI,
			Type:        versia.NotificationType(n.Type),
			StatusID:    n.StatusID,
			CreatedAt:   n.CreatedAt,
		}
	}), nil
}
