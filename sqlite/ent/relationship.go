// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yumine/versia/sqlite/ent/relationship"
)

// Relationship is the model entity for the Relationship schema.
type Relationship struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OwnerURI holds the value of the "owner_uri" field.
	OwnerURI string `json:"owner_uri,omitempty"`
	// SubjectURI holds the value of the "subject_uri" field.
	SubjectURI string `json:"subject_uri,omitempty"`
	// Following holds the value of the "following" field.
	Following bool `json:"following,omitempty"`
	// Requested holds the value of the "requested" field.
	Requested bool `json:"requested,omitempty"`
	// Blocking holds the value of the "blocking" field.
	Blocking bool `json:"blocking,omitempty"`
	// Muting holds the value of the "muting" field.
	Muting       bool `json:"muting,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Relationship) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case relationship.FieldFollowing, relationship.FieldRequested, relationship.FieldBlocking, relationship.FieldMuting:
			values[i] = new(sql.NullBool)
		case relationship.FieldID, relationship.FieldOwnerURI, relationship.FieldSubjectURI:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Relationship fields.
func (r *Relationship) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case relationship.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				r.ID = value.String
			}
		case relationship.FieldOwnerURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_uri", values[i])
			} else if value.Valid {
				r.OwnerURI = value.String
			}
		case relationship.FieldSubjectURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject_uri", values[i])
			} else if value.Valid {
				r.SubjectURI = value.String
			}
		case relationship.FieldFollowing:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field following", values[i])
			} else if value.Valid {
				r.Following = value.Bool
			}
		case relationship.FieldRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requested", values[i])
			} else if value.Valid {
				r.Requested = value.Bool
			}
		case relationship.FieldBlocking:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field blocking", values[i])
			} else if value.Valid {
				r.Blocking = value.Bool
			}
		case relationship.FieldMuting:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field muting", values[i])
			} else if value.Valid {
				r.Muting = value.Bool
			}
		default:
			r.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Relationship.
// This includes values selected through modifiers, order, etc.
func (r *Relationship) Value(name string) (ent.Value, error) {
	return r.selectValues.Get(name)
}

// Update returns a builder for updating this Relationship.
// Note that you need to call Relationship.Unwrap() before calling this method if this Relationship
// was returned from a transaction, and the transaction was committed or rolled back.
func (r *Relationship) Update() *RelationshipUpdateOne {
	return NewRelationshipClient(r.config).UpdateOne(r)
}

// Unwrap unwraps the Relationship entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (r *Relationship) Unwrap() *Relationship {
	_tx, ok := r.config.driver.(*txDriver)
	if !ok {
		panic("ent: Relationship is not a transactional entity")
	}
	r.config.driver = _tx.drv
	return r
}

// String implements the fmt.Stringer.
func (r *Relationship) String() string {
	var builder strings.Builder
	builder.WriteString("Relationship(")
	builder.WriteString(fmt.Sprintf("id=%v, ", r.ID))
	builder.WriteString("owner_uri=")
	builder.WriteString(r.OwnerURI)
	builder.WriteString(", ")
	builder.WriteString("subject_uri=")
	builder.WriteString(r.SubjectURI)
	builder.WriteString(", ")
	builder.WriteString("following=")
	builder.WriteString(fmt.Sprintf("%v", r.Following))
	builder.WriteString(", ")
	builder.WriteString("requested=")
	builder.WriteString(fmt.Sprintf("%v", r.Requested))
	builder.WriteString(", ")
	builder.WriteString("blocking=")
	builder.WriteString(fmt.Sprintf("%v", r.Blocking))
	builder.WriteString(", ")
	builder.WriteString("muting=")
	builder.WriteString(fmt.Sprintf("%v", r.Muting))
	builder.WriteByte(')')
	return builder.String()
}

// Relationships is a parsable slice of Relationship.
type Relationships []*Relationship
