// Code generated by ent, DO NOT EDIT.

package remoteobject

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/yumine/versia/sqlite/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldContainsFold(FieldID, id))
}

// RemoteID applies equality check predicate on the "remote_id" field. It's identical to RemoteIDEQ.
func RemoteID(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldRemoteID, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldType, v))
}

// URI applies equality check predicate on the "uri" field. It's identical to URIEQ.
func URI(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldURI, v))
}

// AuthorURI applies equality check predicate on the "author_uri" field. It's identical to AuthorURIEQ.
func AuthorURI(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldAuthorURI, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldCreatedAt, v))
}

// ExtraData applies equality check predicate on the "extra_data" field. It's identical to ExtraDataEQ.
func ExtraData(v []byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldExtraData, v))
}

// Extensions applies equality check predicate on the "extensions" field. It's identical to ExtensionsEQ.
func Extensions(v []byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldExtensions, v))
}

// RemoteIDEQ applies the EQ predicate on the "remote_id" field.
func RemoteIDEQ(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldRemoteID, v))
}

// RemoteIDNEQ applies the NEQ predicate on the "remote_id" field.
func RemoteIDNEQ(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNEQ(FieldRemoteID, v))
}

// RemoteIDIn applies the In predicate on the "remote_id" field.
func RemoteIDIn(vs ...string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldIn(FieldRemoteID, vs...))
}

// RemoteIDNotIn applies the NotIn predicate on the "remote_id" field.
func RemoteIDNotIn(vs ...string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNotIn(FieldRemoteID, vs...))
}

// RemoteIDGT applies the GT predicate on the "remote_id" field.
func RemoteIDGT(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGT(FieldRemoteID, v))
}

// RemoteIDGTE applies the GTE predicate on the "remote_id" field.
func RemoteIDGTE(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGTE(FieldRemoteID, v))
}

// RemoteIDLT applies the LT predicate on the "remote_id" field.
func RemoteIDLT(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLT(FieldRemoteID, v))
}

// RemoteIDLTE applies the LTE predicate on the "remote_id" field.
func RemoteIDLTE(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLTE(FieldRemoteID, v))
}

// RemoteIDContains applies the Contains predicate on the "remote_id" field.
func RemoteIDContains(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldContains(FieldRemoteID, v))
}

// RemoteIDHasPrefix applies the HasPrefix predicate on the "remote_id" field.
func RemoteIDHasPrefix(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldHasPrefix(FieldRemoteID, v))
}

// RemoteIDHasSuffix applies the HasSuffix predicate on the "remote_id" field.
func RemoteIDHasSuffix(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldHasSuffix(FieldRemoteID, v))
}

// RemoteIDEqualFold applies the EqualFold predicate on the "remote_id" field.
func RemoteIDEqualFold(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEqualFold(FieldRemoteID, v))
}

// RemoteIDContainsFold applies the ContainsFold predicate on the "remote_id" field.
func RemoteIDContainsFold(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldContainsFold(FieldRemoteID, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldContainsFold(FieldType, v))
}

// URIEQ applies the EQ predicate on the "uri" field.
func URIEQ(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldURI, v))
}

// URINEQ applies the NEQ predicate on the "uri" field.
func URINEQ(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNEQ(FieldURI, v))
}

// URIIn applies the In predicate on the "uri" field.
func URIIn(vs ...string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldIn(FieldURI, vs...))
}

// URINotIn applies the NotIn predicate on the "uri" field.
func URINotIn(vs ...string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNotIn(FieldURI, vs...))
}

// URIGT applies the GT predicate on the "uri" field.
func URIGT(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGT(FieldURI, v))
}

// URIGTE applies the GTE predicate on the "uri" field.
func URIGTE(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGTE(FieldURI, v))
}

// URILT applies the LT predicate on the "uri" field.
func URILT(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLT(FieldURI, v))
}

// URILTE applies the LTE predicate on the "uri" field.
func URILTE(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLTE(FieldURI, v))
}

// URIContains applies the Contains predicate on the "uri" field.
func URIContains(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldContains(FieldURI, v))
}

// URIHasPrefix applies the HasPrefix predicate on the "uri" field.
func URIHasPrefix(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldHasPrefix(FieldURI, v))
}

// URIHasSuffix applies the HasSuffix predicate on the "uri" field.
func URIHasSuffix(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldHasSuffix(FieldURI, v))
}

// URIEqualFold applies the EqualFold predicate on the "uri" field.
func URIEqualFold(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEqualFold(FieldURI, v))
}

// URIContainsFold applies the ContainsFold predicate on the "uri" field.
func URIContainsFold(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldContainsFold(FieldURI, v))
}

// AuthorURIEQ applies the EQ predicate on the "author_uri" field.
func AuthorURIEQ(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldAuthorURI, v))
}

// AuthorURINEQ applies the NEQ predicate on the "author_uri" field.
func AuthorURINEQ(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNEQ(FieldAuthorURI, v))
}

// AuthorURIIn applies the In predicate on the "author_uri" field.
func AuthorURIIn(vs ...string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldIn(FieldAuthorURI, vs...))
}

// AuthorURINotIn applies the NotIn predicate on the "author_uri" field.
func AuthorURINotIn(vs ...string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNotIn(FieldAuthorURI, vs...))
}

// AuthorURIGT applies the GT predicate on the "author_uri" field.
func AuthorURIGT(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGT(FieldAuthorURI, v))
}

// AuthorURIGTE applies the GTE predicate on the "author_uri" field.
func AuthorURIGTE(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGTE(FieldAuthorURI, v))
}

// AuthorURILT applies the LT predicate on the "author_uri" field.
func AuthorURILT(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLT(FieldAuthorURI, v))
}

// AuthorURILTE applies the LTE predicate on the "author_uri" field.
func AuthorURILTE(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLTE(FieldAuthorURI, v))
}

// AuthorURIContains applies the Contains predicate on the "author_uri" field.
func AuthorURIContains(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldContains(FieldAuthorURI, v))
}

// AuthorURIHasPrefix applies the HasPrefix predicate on the "author_uri" field.
func AuthorURIHasPrefix(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldHasPrefix(FieldAuthorURI, v))
}

// AuthorURIHasSuffix applies the HasSuffix predicate on the "author_uri" field.
func AuthorURIHasSuffix(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldHasSuffix(FieldAuthorURI, v))
}

// AuthorURIIsNil applies the IsNil predicate on the "author_uri" field.
func AuthorURIIsNil() predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldIsNull(FieldAuthorURI))
}

// AuthorURINotNil applies the NotNil predicate on the "author_uri" field.
func AuthorURINotNil() predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNotNull(FieldAuthorURI))
}

// AuthorURIEqualFold applies the EqualFold predicate on the "author_uri" field.
func AuthorURIEqualFold(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEqualFold(FieldAuthorURI, v))
}

// AuthorURIContainsFold applies the ContainsFold predicate on the "author_uri" field.
func AuthorURIContainsFold(v string) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldContainsFold(FieldAuthorURI, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLTE(FieldCreatedAt, v))
}

// ExtraDataEQ applies the EQ predicate on the "extra_data" field.
func ExtraDataEQ(v []byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldExtraData, v))
}

// ExtraDataNEQ applies the NEQ predicate on the "extra_data" field.
func ExtraDataNEQ(v []byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNEQ(FieldExtraData, v))
}

// ExtraDataIn applies the In predicate on the "extra_data" field.
func ExtraDataIn(vs ...[]byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldIn(FieldExtraData, vs...))
}

// ExtraDataNotIn applies the NotIn predicate on the "extra_data" field.
func ExtraDataNotIn(vs ...[]byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNotIn(FieldExtraData, vs...))
}

// ExtraDataGT applies the GT predicate on the "extra_data" field.
func ExtraDataGT(v []byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGT(FieldExtraData, v))
}

// ExtraDataGTE applies the GTE predicate on the "extra_data" field.
func ExtraDataGTE(v []byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGTE(FieldExtraData, v))
}

// ExtraDataLT applies the LT predicate on the "extra_data" field.
func ExtraDataLT(v []byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLT(FieldExtraData, v))
}

// ExtraDataLTE applies the LTE predicate on the "extra_data" field.
func ExtraDataLTE(v []byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLTE(FieldExtraData, v))
}

// ExtraDataIsNil applies the IsNil predicate on the "extra_data" field.
func ExtraDataIsNil() predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldIsNull(FieldExtraData))
}

// ExtraDataNotNil applies the NotNil predicate on the "extra_data" field.
func ExtraDataNotNil() predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNotNull(FieldExtraData))
}

// ExtensionsEQ applies the EQ predicate on the "extensions" field.
func ExtensionsEQ(v []byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldEQ(FieldExtensions, v))
}

// ExtensionsNEQ applies the NEQ predicate on the "extensions" field.
func ExtensionsNEQ(v []byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNEQ(FieldExtensions, v))
}

// ExtensionsIn applies the In predicate on the "extensions" field.
func ExtensionsIn(vs ...[]byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldIn(FieldExtensions, vs...))
}

// ExtensionsNotIn applies the NotIn predicate on the "extensions" field.
func ExtensionsNotIn(vs ...[]byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNotIn(FieldExtensions, vs...))
}

// ExtensionsGT applies the GT predicate on the "extensions" field.
func ExtensionsGT(v []byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGT(FieldExtensions, v))
}

// ExtensionsGTE applies the GTE predicate on the "extensions" field.
func ExtensionsGTE(v []byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldGTE(FieldExtensions, v))
}

// ExtensionsLT applies the LT predicate on the "extensions" field.
func ExtensionsLT(v []byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLT(FieldExtensions, v))
}

// ExtensionsLTE applies the LTE predicate on the "extensions" field.
func ExtensionsLTE(v []byte) predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldLTE(FieldExtensions, v))
}

// ExtensionsIsNil applies the IsNil predicate on the "extensions" field.
func ExtensionsIsNil() predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldIsNull(FieldExtensions))
}

// ExtensionsNotNil applies the NotNil predicate on the "extensions" field.
func ExtensionsNotNil() predicate.RemoteObject {
	return predicate.RemoteObject(sql.FieldNotNull(FieldExtensions))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RemoteObject) predicate.RemoteObject {
	return predicate.RemoteObject(func(s *sql.Selector) {
		s1 := s.Clone().SetP(nil)
		for _, p := range predicates {
			p(s1)
		}
		s.Where(s1.P())
	})
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RemoteObject) predicate.RemoteObject {
	return predicate.RemoteObject(func(s *sql.Selector) {
		s1 := s.Clone().SetP(nil)
		for i, p := range predicates {
			if i > 0 {
				s1.Or()
			}
			p(s1)
		}
		s.Where(s1.P())
	})
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RemoteObject) predicate.RemoteObject {
	return predicate.RemoteObject(func(s *sql.Selector) {
		p(s.Not())
	})
}
