// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yumine/versia/sqlite/ent/remoteobject"
)

// RemoteObject is the model entity for the RemoteObject schema.
type RemoteObject struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RemoteID holds the value of the "remote_id" field.
	RemoteID string `json:"remote_id,omitempty"`
	// Type holds the value of the "type" field.
	Type string `json:"type,omitempty"`
	// URI holds the value of the "uri" field.
	URI string `json:"uri,omitempty"`
	// AuthorURI holds the value of the "author_uri" field.
	AuthorURI string `json:"author_uri,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// ExtraData holds the value of the "extra_data" field.
	ExtraData []byte `json:"extra_data,omitempty"`
	// Extensions holds the value of the "extensions" field.
	Extensions   []byte `json:"extensions,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RemoteObject) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case remoteobject.FieldExtraData, remoteobject.FieldExtensions:
			values[i] = new([]byte)
		case remoteobject.FieldID, remoteobject.FieldRemoteID, remoteobject.FieldType, remoteobject.FieldURI, remoteobject.FieldAuthorURI:
			values[i] = new(sql.NullString)
		case remoteobject.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RemoteObject fields.
func (ro *RemoteObject) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case remoteobject.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				ro.ID = value.String
			}
		case remoteobject.FieldRemoteID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remote_id", values[i])
			} else if value.Valid {
				ro.RemoteID = value.String
			}
		case remoteobject.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				ro.Type = value.String
			}
		case remoteobject.FieldURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uri", values[i])
			} else if value.Valid {
				ro.URI = value.String
			}
		case remoteobject.FieldAuthorURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author_uri", values[i])
			} else if value.Valid {
				ro.AuthorURI = value.String
			}
		case remoteobject.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ro.CreatedAt = value.Time
			}
		case remoteobject.FieldExtraData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extra_data", values[i])
			} else if value != nil {
				ro.ExtraData = *value
			}
		case remoteobject.FieldExtensions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field extensions", values[i])
			} else if value != nil {
				ro.Extensions = *value
			}
		default:
			ro.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RemoteObject.
// This includes values selected through modifiers, order, etc.
func (ro *RemoteObject) Value(name string) (ent.Value, error) {
	return ro.selectValues.Get(name)
}

// Update returns a builder for updating this RemoteObject.
// Note that you need to call RemoteObject.Unwrap() before calling this method if this RemoteObject
// was returned from a transaction, and the transaction was committed or rolled back.
func (ro *RemoteObject) Update() *RemoteObjectUpdateOne {
	return NewRemoteObjectClient(ro.config).UpdateOne(ro)
}

// Unwrap unwraps the RemoteObject entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ro *RemoteObject) Unwrap() *RemoteObject {
	_tx, ok := ro.config.driver.(*txDriver)
	if !ok {
		panic("ent: RemoteObject is not a transactional entity")
	}
	ro.config.driver = _tx.drv
	return ro
}

// String implements the fmt.Stringer.
func (ro *RemoteObject) String() string {
	var builder strings.Builder
	builder.WriteString("RemoteObject(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ro.ID))
	builder.WriteString("remote_id=")
	builder.WriteString(ro.RemoteID)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(ro.Type)
	builder.WriteString(", ")
	builder.WriteString("uri=")
	builder.WriteString(ro.URI)
	builder.WriteString(", ")
	builder.WriteString("author_uri=")
	builder.WriteString(ro.AuthorURI)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ro.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("extra_data=")
	builder.WriteString(fmt.Sprintf("%v", ro.ExtraData))
	builder.WriteString(", ")
	builder.WriteString("extensions=")
	builder.WriteString(fmt.Sprintf("%v", ro.Extensions))
	builder.WriteByte(')')
	return builder.String()
}

// RemoteObjects is a parsable slice of RemoteObject.
type RemoteObjects []*RemoteObject
