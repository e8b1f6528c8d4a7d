// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/yumine/versia/sqlite/ent/status"
)

// Status is the model entity for the Status schema.
type Status struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// URI holds the value of the "uri" field.
	URI string `json:"uri,omitempty"`
	// AuthorURI holds the value of the "author_uri" field.
	AuthorURI string `json:"author_uri,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType string `json:"content_type,omitempty"`
	// Visibility holds the value of the "visibility" field.
	Visibility string `json:"visibility,omitempty"`
	// SpoilerText holds the value of the "spoiler_text" field.
	SpoilerText string `json:"spoiler_text,omitempty"`
	// Sensitive holds the value of the "sensitive" field.
	Sensitive bool `json:"sensitive,omitempty"`
	// InReplyToID holds the value of the "in_reply_to_id" field.
	InReplyToID string `json:"in_reply_to_id,omitempty"`
	// QuotingID holds the value of the "quoting_id" field.
	QuotingID string `json:"quoting_id,omitempty"`
	// ReblogOfID holds the value of the "reblog_of_id" field.
	ReblogOfID string `json:"reblog_of_id,omitempty"`
	// InstanceHost holds the value of the "instance_host" field.
	InstanceHost string `json:"instance_host,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Status) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case status.FieldSensitive:
			values[i] = new(sql.NullBool)
		case status.FieldID, status.FieldURI, status.FieldAuthorURI, status.FieldContent, status.FieldContentType, status.FieldVisibility, status.FieldSpoilerText, status.FieldInReplyToID, status.FieldQuotingID, status.FieldReblogOfID, status.FieldInstanceHost:
			values[i] = new(sql.NullString)
		case status.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Status fields.
func (s *Status) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case status.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				s.ID = value.String
			}
		case status.FieldURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field uri", values[i])
			} else if value.Valid {
				s.URI = value.String
			}
		case status.FieldAuthorURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author_uri", values[i])
			} else if value.Valid {
				s.AuthorURI = value.String
			}
		case status.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				s.Content = value.String
			}
		case status.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				s.ContentType = value.String
			}
		case status.FieldVisibility:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field visibility", values[i])
			} else if value.Valid {
				s.Visibility = value.String
			}
		case status.FieldSpoilerText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spoiler_text", values[i])
			} else if value.Valid {
				s.SpoilerText = value.String
			}
		case status.FieldSensitive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field sensitive", values[i])
			} else if value.Valid {
				s.Sensitive = value.Bool
			}
		case status.FieldInReplyToID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field in_reply_to_id", values[i])
			} else if value.Valid {
				s.InReplyToID = value.String
			}
		case status.FieldQuotingID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quoting_id", values[i])
			} else if value.Valid {
				s.QuotingID = value.String
			}
		case status.FieldReblogOfID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reblog_of_id", values[i])
			} else if value.Valid {
				s.ReblogOfID = value.String
			}
		case status.FieldInstanceHost:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instance_host", values[i])
			} else if value.Valid {
				s.InstanceHost = value.String
			}
		case status.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				s.CreatedAt = value.Time
			}
		default:
			s.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Status.
// This includes values selected through modifiers, order, etc.
func (s *Status) Value(name string) (ent.Value, error) {
	return s.selectValues.Get(name)
}

// Update returns a builder for updating this Status.
// Note that you need to call Status.Unwrap() before calling this method if this Status
// was returned from a transaction, and the transaction was committed or rolled back.
func (s *Status) Update() *StatusUpdateOne {
	return NewStatusClient(s.config).UpdateOne(s)
}

// Unwrap unwraps the Status entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (s *Status) Unwrap() *Status {
	_tx, ok := s.config.driver.(*txDriver)
	if !ok {
		panic("ent: Status is not a transactional entity")
	}
	s.config.driver = _tx.drv
	return s
}

// String implements the fmt.Stringer.
func (s *Status) String() string {
	var builder strings.Builder
	builder.WriteString("Status(")
	builder.WriteString(fmt.Sprintf("id=%v, ", s.ID))
	builder.WriteString("uri=")
	builder.WriteString(s.URI)
	builder.WriteString(", ")
	builder.WriteString("author_uri=")
	builder.WriteString(s.AuthorURI)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(s.Content)
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(s.ContentType)
	builder.WriteString(", ")
	builder.WriteString("visibility=")
	builder.WriteString(s.Visibility)
	builder.WriteString(", ")
	builder.WriteString("spoiler_text=")
	builder.WriteString(s.SpoilerText)
	builder.WriteString(", ")
	builder.WriteString("sensitive=")
	builder.WriteString(fmt.Sprintf("%v", s.Sensitive))
	builder.WriteString(", ")
	builder.WriteString("in_reply_to_id=")
	builder.WriteString(s.InReplyToID)
	builder.WriteString(", ")
	builder.WriteString("quoting_id=")
	builder.WriteString(s.QuotingID)
	builder.WriteString(", ")
	builder.WriteString("reblog_of_id=")
	builder.WriteString(s.ReblogOfID)
	builder.WriteString(", ")
	builder.WriteString("instance_host=")
	builder.WriteString(s.InstanceHost)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(s.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StatusSlice is a parsable slice of Status.
type StatusSlice []*Status
