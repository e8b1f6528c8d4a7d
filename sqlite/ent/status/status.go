// Code generated by ent, DO NOT EDIT.

package status

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the status type in the database.
	Label = "status"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldURI holds the string denoting the uri field in the database.
	FieldURI = "uri"
	// FieldAuthorURI holds the string denoting the author_uri field in the database.
	FieldAuthorURI = "author_uri"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldContentType holds the string denoting the content_type field in the database.
	FieldContentType = "content_type"
	// FieldVisibility holds the string denoting the visibility field in the database.
	FieldVisibility = "visibility"
	// FieldSpoilerText holds the string denoting the spoiler_text field in the database.
	FieldSpoilerText = "spoiler_text"
	// FieldSensitive holds the string denoting the sensitive field in the database.
	FieldSensitive = "sensitive"
	// FieldInReplyToID holds the string denoting the in_reply_to_id field in the database.
	FieldInReplyToID = "in_reply_to_id"
	// FieldQuotingID holds the string denoting the quoting_id field in the database.
	FieldQuotingID = "quoting_id"
	// FieldReblogOfID holds the string denoting the reblog_of_id field in the database.
	FieldReblogOfID = "reblog_of_id"
	// FieldInstanceHost holds the string denoting the instance_host field in the database.
	FieldInstanceHost = "instance_host"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the status in the database.
	Table = "status"
)

// Columns holds all SQL columns for status fields.
var Columns = []string{
	FieldID,
	FieldURI,
	FieldAuthorURI,
	FieldContent,
	FieldContentType,
	FieldVisibility,
	FieldSpoilerText,
	FieldSensitive,
	FieldInReplyToID,
	FieldQuotingID,
	FieldReblogOfID,
	FieldInstanceHost,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultVisibility holds the default value on creation for the "visibility" field.
	DefaultVisibility string
	// DefaultSensitive holds the default value on creation for the "sensitive" field.
	DefaultSensitive bool
)

// OrderOption defines the ordering options for the Status queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByURI orders the results by the uri field.
func ByURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURI, opts...).ToFunc()
}

// ByAuthorURI orders the results by the author_uri field.
func ByAuthorURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorURI, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByContentType orders the results by the content_type field.
func ByContentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentType, opts...).ToFunc()
}

// ByVisibility orders the results by the visibility field.
func ByVisibility(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisibility, opts...).ToFunc()
}

// BySpoilerText orders the results by the spoiler_text field.
func BySpoilerText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpoilerText, opts...).ToFunc()
}

// BySensitive orders the results by the sensitive field.
func BySensitive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSensitive, opts...).ToFunc()
}

// ByInReplyToID orders the results by the in_reply_to_id field.
func ByInReplyToID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInReplyToID, opts...).ToFunc()
}

// ByQuotingID orders the results by the quoting_id field.
func ByQuotingID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuotingID, opts...).ToFunc()
}

// ByReblogOfID orders the results by the reblog_of_id field.
func ByReblogOfID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReblogOfID, opts...).ToFunc()
}

// ByInstanceHost orders the results by the instance_host field.
func ByInstanceHost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstanceHost, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
