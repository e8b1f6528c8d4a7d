// Code generated by ent, DO NOT EDIT.

package relationship

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the relationship type in the database.
	Label = "relationship"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerURI holds the string denoting the owner_uri field in the database.
	FieldOwnerURI = "owner_uri"
	// FieldSubjectURI holds the string denoting the subject_uri field in the database.
	FieldSubjectURI = "subject_uri"
	// FieldFollowing holds the string denoting the following field in the database.
	FieldFollowing = "following"
	// FieldRequested holds the string denoting the requested field in the database.
	FieldRequested = "requested"
	// FieldBlocking holds the string denoting the blocking field in the database.
	FieldBlocking = "blocking"
	// FieldMuting holds the string denoting the muting field in the database.
	FieldMuting = "muting"
	// Table holds the table name of the relationship in the database.
	Table = "relationships"
)

// Columns holds all SQL columns for relationship fields.
var Columns = []string{
	FieldID,
	FieldOwnerURI,
	FieldSubjectURI,
	FieldFollowing,
	FieldRequested,
	FieldBlocking,
	FieldMuting,
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
	// DefaultFollowing holds the default value on creation for the "following" field.
	DefaultFollowing bool
	// DefaultRequested holds the default value on creation for the "requested" field.
	DefaultRequested bool
	// DefaultBlocking holds the default value on creation for the "blocking" field.
	DefaultBlocking bool
	// DefaultMuting holds the default value on creation for the "muting" field.
	DefaultMuting bool
)

// OrderOption defines the ordering options for the Relationship queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerURI orders the results by the owner_uri field.
func ByOwnerURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerURI, opts...).ToFunc()
}

// BySubjectURI orders the results by the subject_uri field.
func BySubjectURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectURI, opts...).ToFunc()
}

// ByFollowing orders the results by the following field.
func ByFollowing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowing, opts...).ToFunc()
}

// ByRequested orders the results by the requested field.
func ByRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequested, opts...).ToFunc()
}

// ByBlocking orders the results by the blocking field.
func ByBlocking(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlocking, opts...).ToFunc()
}

// ByMuting orders the results by the muting field.
func ByMuting(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMuting, opts...).ToFunc()
}
