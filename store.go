package versia

import (
	"context"
	"time"
)

// RemoteObject is a cached mirror of a federation entity fetched from a
// remote origin. URI is the external primary key; re-resolving the same
// URI updates the existing row.
type RemoteObject struct {
	ID         string
	RemoteID   string
	Type       EntityType
	URI        string
	AuthorURI  string
	CreatedAt  time.Time
	ExtraData  []byte
	Extensions []byte
}

// Status is the local mutable projection of a Note/Patch chain. A
// status with a ReblogOfID is a pure wrapper and carries no content of
// its own. Author identity is the actor URI, local or remote.
type Status struct {
	ID           string
	URI          string
	AuthorURI    string
	Content      string
	ContentType  string
	Visibility   Visibility
	SpoilerText  string
	Sensitive    bool
	InReplyToID  string
	QuotingID    string
	ReblogOfID   string
	InstanceHost string
	CreatedAt    time.Time
}

// Favourite is the persisted record of a Like activity.
type Favourite struct {
	ID         string
	URI        string
	AccountURI string
	StatusID   string
}

// Relationship is the directional edge between two actors.
type Relationship struct {
	OwnerURI   string
	SubjectURI string
	Following  bool
	Requested  bool
	Blocking   bool
	Muting     bool
}

type Notification struct {
	ID          string
	NotifiedURI string
	AccountURI  string
	Type        NotificationType
	StatusID    string
	CreatedAt   time.Time
}

type AccountStore interface {
	Find(c context.Context, id string) (*Account, error)
	FindByEmail(c context.Context, email string) (*Account, error)
	FindByUsername(c context.Context, username string) (*Account, error)
	Save(c context.Context, account *Account) error
}

// RemoteObjectStore persists remote entity mirrors. Upsert is keyed by
// the unique uri column; concurrent upserts of the same uri must
// serialize at the database, never duplicate.
type RemoteObjectStore interface {
	FindByURI(c context.Context, uri string) (*RemoteObject, error)
	FindByRemoteID(c context.Context, remoteID string) (*RemoteObject, error)
	Upsert(c context.Context, object *RemoteObject) (*RemoteObject, error)
	DeleteByURI(c context.Context, uri string) error
}

type StatusStore interface {
	Find(c context.Context, id string) (*Status, error)
	FindByURI(c context.Context, uri string) (*Status, error)
	Upsert(c context.Context, status *Status) (*Status, error)
	Update(c context.Context, status *Status) error
	DeleteByURI(c context.Context, uri string) error
}

// FavouriteStore records likes. Insert is a no-op when the
// (account, status) pair already exists.
type FavouriteStore interface {
	Insert(c context.Context, favourite *Favourite) error
	Find(c context.Context, accountURI string, statusID string) (*Favourite, error)
	DeleteByURI(c context.Context, uri string) error
}

type RelationshipStore interface {
	Find(c context.Context, ownerURI string, subjectURI string) (*Relationship, error)
	Upsert(c context.Context, relationship *Relationship) error
	Delete(c context.Context, ownerURI string, subjectURI string) error
}

type NotificationStore interface {
	Insert(c context.Context, notification *Notification) error
	ListForAccount(c context.Context, notifiedURI string) ([]*Notification, error)
}
