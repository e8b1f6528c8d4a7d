// Code generated by ent, DO NOT EDIT.

package remoteobject

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the remoteobject type in the database.
	Label = "remote_object"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRemoteID holds the string denoting the remote_id field in the database.
	FieldRemoteID = "remote_id"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldURI holds the string denoting the uri field in the database.
	FieldURI = "uri"
	// FieldAuthorURI holds the string denoting the author_uri field in the database.
	FieldAuthorURI = "author_uri"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldExtraData holds the string denoting the extra_data field in the database.
	FieldExtraData = "extra_data"
	// FieldExtensions holds the string denoting the extensions field in the database.
	FieldExtensions = "extensions"
	// Table holds the table name of the remoteobject in the database.
	Table = "remote_objects"
)

// Columns holds all SQL columns for remoteobject fields.
var Columns = []string{
	FieldID,
	FieldRemoteID,
	FieldType,
	FieldURI,
	FieldAuthorURI,
	FieldCreatedAt,
	FieldExtraData,
	FieldExtensions,
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

// OrderOption defines the ordering options for the RemoteObject queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRemoteID orders the results by the remote_id field.
func ByRemoteID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemoteID, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByURI orders the results by the uri field.
func ByURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURI, opts...).ToFunc()
}

// ByAuthorURI orders the results by the author_uri field.
func ByAuthorURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthorURI, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
