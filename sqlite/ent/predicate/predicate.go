// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Favourite is the predicate function for favourite builders.
type Favourite func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Relationship is the predicate function for relationship builders.
type Relationship func(*sql.Selector)

// RemoteObject is the predicate function for remoteobject builders.
type RemoteObject func(*sql.Selector)

// Status is the predicate function for status builders.
type Status func(*sql.Selector)
