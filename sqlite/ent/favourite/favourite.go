// Code generated by ent, DO NOT EDIT.

package favourite

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the favourite type in the database.
	Label = "favourite"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldURI holds the string denoting the uri field in the database.
	FieldURI = "uri"
	// FieldAccountURI holds the string denoting the account_uri field in the database.
	FieldAccountURI = "account_uri"
	// FieldStatusID holds the string denoting the status_id field in the database.
	FieldStatusID = "status_id"
	// Table holds the table name of the favourite in the database.
	Table = "favourites"
)

// Columns holds all SQL columns for favourite fields.
var Columns = []string{
	FieldID,
	FieldURI,
	FieldAccountURI,
	FieldStatusID,
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

// OrderOption defines the ordering options for the Favourite queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByURI orders the results by the uri field.
func ByURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURI, opts...).ToFunc()
}

// ByAccountURI orders the results by the account_uri field.
func ByAccountURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountURI, opts...).ToFunc()
}

// ByStatusID orders the results by the status_id field.
func ByStatusID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatusID, opts...).ToFunc()
}
