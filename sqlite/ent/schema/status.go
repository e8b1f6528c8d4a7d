package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Status holds the schema definition for the Status entity. The
// self-referential columns (in_reply_to_id, quoting_id, reblog_of_id)
// are plain lookup keys, resolved lazily through the store.
type Status struct {
	ent.Schema
}

// Fields of the Status.
func (Status) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Immutable().Unique(),
		field.String("uri").Unique(),
		field.String("author_uri"),
		field.String("content").Optional(),
		field.String("content_type").Optional(),
		field.String("visibility").Default("public"),
		field.String("spoiler_text").Optional(),
		field.Bool("sensitive").Default(false),
		field.String("in_reply_to_id").Optional(),
		field.String("quoting_id").Optional(),
		field.String("reblog_of_id").Optional(),
		field.String("instance_host").Optional(),
		field.Time("created_at"),
	}
}

// Edges of the Status.
func (Status) Edges() []ent.Edge {
	return nil
}
