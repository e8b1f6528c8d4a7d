package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RemoteObject holds the schema definition for cached mirrors of
// federation entities. The uri column is the external primary key;
// the unique constraint is what serializes concurrent resolutions.
type RemoteObject struct {
	ent.Schema
}

// Fields of the RemoteObject.
func (RemoteObject) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Immutable().Unique(),
		field.String("remote_id"),
		field.String("type"),
		field.String("uri").Unique(),
		field.String("author_uri").Optional(),
		field.Time("created_at"),
		field.Bytes("extra_data").Optional(),
		field.Bytes("extensions").Optional(),
	}
}

// Edges of the RemoteObject.
func (RemoteObject) Edges() []ent.Edge {
	return nil
}

// Indexes of the RemoteObject.
func (RemoteObject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("remote_id"),
	}
}
