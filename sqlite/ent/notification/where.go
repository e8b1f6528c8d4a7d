// Code generated by ent, DO NOT EDIT.

package notification

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/yumine/versia/sqlite/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldID, id))
}

// NotifiedURI applies equality check predicate on the "notified_uri" field. It's identical to NotifiedURIEQ.
func NotifiedURI(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldNotifiedURI, v))
}

// AccountURI applies equality check predicate on the "account_uri" field. It's identical to AccountURIEQ.
func AccountURI(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldAccountURI, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldType, v))
}

// StatusID applies equality check predicate on the "status_id" field. It's identical to StatusIDEQ.
func StatusID(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldStatusID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldCreatedAt, v))
}

// NotifiedURIEQ applies the EQ predicate on the "notified_uri" field.
func NotifiedURIEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldNotifiedURI, v))
}

// NotifiedURINEQ applies the NEQ predicate on the "notified_uri" field.
func NotifiedURINEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldNotifiedURI, v))
}

// NotifiedURIIn applies the In predicate on the "notified_uri" field.
func NotifiedURIIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldNotifiedURI, vs...))
}

// NotifiedURINotIn applies the NotIn predicate on the "notified_uri" field.
func NotifiedURINotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldNotifiedURI, vs...))
}

// NotifiedURIGT applies the GT predicate on the "notified_uri" field.
func NotifiedURIGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldNotifiedURI, v))
}

// NotifiedURIGTE applies the GTE predicate on the "notified_uri" field.
func NotifiedURIGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldNotifiedURI, v))
}

// NotifiedURILT applies the LT predicate on the "notified_uri" field.
func NotifiedURILT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldNotifiedURI, v))
}

// NotifiedURILTE applies the LTE predicate on the "notified_uri" field.
func NotifiedURILTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldNotifiedURI, v))
}

// NotifiedURIContains applies the Contains predicate on the "notified_uri" field.
func NotifiedURIContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldNotifiedURI, v))
}

// NotifiedURIHasPrefix applies the HasPrefix predicate on the "notified_uri" field.
func NotifiedURIHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldNotifiedURI, v))
}

// NotifiedURIHasSuffix applies the HasSuffix predicate on the "notified_uri" field.
func NotifiedURIHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldNotifiedURI, v))
}

// NotifiedURIEqualFold applies the EqualFold predicate on the "notified_uri" field.
func NotifiedURIEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldNotifiedURI, v))
}

// NotifiedURIContainsFold applies the ContainsFold predicate on the "notified_uri" field.
func NotifiedURIContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldNotifiedURI, v))
}

// AccountURIEQ applies the EQ predicate on the "account_uri" field.
func AccountURIEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldAccountURI, v))
}

// AccountURINEQ applies the NEQ predicate on the "account_uri" field.
func AccountURINEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldAccountURI, v))
}

// AccountURIIn applies the In predicate on the "account_uri" field.
func AccountURIIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldAccountURI, vs...))
}

// AccountURINotIn applies the NotIn predicate on the "account_uri" field.
func AccountURINotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldAccountURI, vs...))
}

// AccountURIGT applies the GT predicate on the "account_uri" field.
func AccountURIGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldAccountURI, v))
}

// AccountURIGTE applies the GTE predicate on the "account_uri" field.
func AccountURIGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldAccountURI, v))
}

// AccountURILT applies the LT predicate on the "account_uri" field.
func AccountURILT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldAccountURI, v))
}

// AccountURILTE applies the LTE predicate on the "account_uri" field.
func AccountURILTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldAccountURI, v))
}

// AccountURIContains applies the Contains predicate on the "account_uri" field.
func AccountURIContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldAccountURI, v))
}

// AccountURIHasPrefix applies the HasPrefix predicate on the "account_uri" field.
func AccountURIHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldAccountURI, v))
}

// AccountURIHasSuffix applies the HasSuffix predicate on the "account_uri" field.
func AccountURIHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldAccountURI, v))
}

// AccountURIEqualFold applies the EqualFold predicate on the "account_uri" field.
func AccountURIEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldAccountURI, v))
}

// AccountURIContainsFold applies the ContainsFold predicate on the "account_uri" field.
func AccountURIContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldAccountURI, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldType, v))
}

// StatusIDEQ applies the EQ predicate on the "status_id" field.
func StatusIDEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldStatusID, v))
}

// StatusIDNEQ applies the NEQ predicate on the "status_id" field.
func StatusIDNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldStatusID, v))
}

// StatusIDIn applies the In predicate on the "status_id" field.
func StatusIDIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldStatusID, vs...))
}

// StatusIDNotIn applies the NotIn predicate on the "status_id" field.
func StatusIDNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldStatusID, vs...))
}

// StatusIDGT applies the GT predicate on the "status_id" field.
func StatusIDGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldStatusID, v))
}

// StatusIDGTE applies the GTE predicate on the "status_id" field.
func StatusIDGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldStatusID, v))
}

// StatusIDLT applies the LT predicate on the "status_id" field.
func StatusIDLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldStatusID, v))
}

// StatusIDLTE applies the LTE predicate on the "status_id" field.
func StatusIDLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldStatusID, v))
}

// StatusIDContains applies the Contains predicate on the "status_id" field.
func StatusIDContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldStatusID, v))
}

// StatusIDHasPrefix applies the HasPrefix predicate on the "status_id" field.
func StatusIDHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldStatusID, v))
}

// StatusIDHasSuffix applies the HasSuffix predicate on the "status_id" field.
func StatusIDHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldStatusID, v))
}

// StatusIDIsNil applies the IsNil predicate on the "status_id" field.
func StatusIDIsNil() predicate.Notification {
	return predicate.Notification(sql.FieldIsNull(FieldStatusID))
}

// StatusIDNotNil applies the NotNil predicate on the "status_id" field.
func StatusIDNotNil() predicate.Notification {
	return predicate.Notification(sql.FieldNotNull(FieldStatusID))
}

// StatusIDEqualFold applies the EqualFold predicate on the "status_id" field.
func StatusIDEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldStatusID, v))
}

// StatusIDContainsFold applies the ContainsFold predicate on the "status_id" field.
func StatusIDContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldStatusID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Notification) predicate.Notification {
	return predicate.Notification(func(s *sql.Selector) {
		s1 := s.Clone().SetP(nil)
		for _, p := range predicates {
			p(s1)
		}
		s.Where(s1.P())
	})
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Notification) predicate.Notification {
	return predicate.Notification(func(s *sql.Selector) {
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
func Not(p predicate.Notification) predicate.Notification {
	return predicate.Notification(func(s *sql.Selector) {
		p(s.Not())
	})
}
