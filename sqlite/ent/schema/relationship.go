package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Relationship holds the schema definition for the directional edge
// between two actors, keyed by actor URI on both sides.
type Relationship struct {
	ent.Schema
}

// Fields of the Relationship.
func (Relationship) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Immutable().Unique(),
		field.String("owner_uri").Immutable(),
		field.String("subject_uri").Immutable(),
		field.Bool("following").Default(false),
		field.Bool("requested").Default(false),
		field.Bool("blocking").Default(false),
		field.Bool("muting").Default(false),
	}
}

// Edges of the Relationship.
func (Relationship) Edges() []ent.Edge {
	return nil
}

// Indexes of the Relationship.
func (Relationship) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_uri", "subject_uri").Unique(),
	}
}
