package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity.
type Notification struct {
	ent.Schema
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Immutable().Unique(),
		field.String("notified_uri"),
		field.String("account_uri"),
		field.String("type"),
		field.String("status_id").Optional(),
		field.Time("created_at"),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return nil
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("notified_uri", "created_at"),
	}
}
