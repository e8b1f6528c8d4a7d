package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Favourite holds the schema definition for like records. The
// (account_uri, status_id) unique index makes duplicate likes a no-op.
type Favourite struct {
	ent.Schema
}

// Fields of the Favourite.
func (Favourite) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Immutable().Unique(),
		field.String("uri").Unique(),
		field.String("account_uri"),
		field.String("status_id"),
	}
}

// Edges of the Favourite.
func (Favourite) Edges() []ent.Edge {
	return nil
}

// Indexes of the Favourite.
func (Favourite) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_uri", "status_id").Unique(),
	}
}
