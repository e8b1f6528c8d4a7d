// Code generated by ent, DO NOT EDIT.

package favourite

import (
	"entgo.io/ent/dialect/sql"
	"github.com/yumine/versia/sqlite/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Favourite {
	return predicate.Favourite(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Favourite {
	return predicate.Favourite(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Favourite {
	return predicate.Favourite(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Favourite {
	return predicate.Favourite(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Favourite {
	return predicate.Favourite(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Favourite {
	return predicate.Favourite(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Favourite {
	return predicate.Favourite(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Favourite {
	return predicate.Favourite(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Favourite {
	return predicate.Favourite(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Favourite {
	return predicate.Favourite(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Favourite {
	return predicate.Favourite(sql.FieldContainsFold(FieldID, id))
}

// URI applies equality check predicate on the "uri" field. It's identical to URIEQ.
func URI(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldEQ(FieldURI, v))
}

// AccountURI applies equality check predicate on the "account_uri" field. It's identical to AccountURIEQ.
func AccountURI(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldEQ(FieldAccountURI, v))
}

// StatusID applies equality check predicate on the "status_id" field. It's identical to StatusIDEQ.
func StatusID(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldEQ(FieldStatusID, v))
}

// URIEQ applies the EQ predicate on the "uri" field.
func URIEQ(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldEQ(FieldURI, v))
}

// URINEQ applies the NEQ predicate on the "uri" field.
func URINEQ(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldNEQ(FieldURI, v))
}

// URIIn applies the In predicate on the "uri" field.
func URIIn(vs ...string) predicate.Favourite {
	return predicate.Favourite(sql.FieldIn(FieldURI, vs...))
}

// URINotIn applies the NotIn predicate on the "uri" field.
func URINotIn(vs ...string) predicate.Favourite {
	return predicate.Favourite(sql.FieldNotIn(FieldURI, vs...))
}

// URIGT applies the GT predicate on the "uri" field.
func URIGT(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldGT(FieldURI, v))
}

// URIGTE applies the GTE predicate on the "uri" field.
func URIGTE(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldGTE(FieldURI, v))
}

// URILT applies the LT predicate on the "uri" field.
func URILT(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldLT(FieldURI, v))
}

// URILTE applies the LTE predicate on the "uri" field.
func URILTE(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldLTE(FieldURI, v))
}

// URIContains applies the Contains predicate on the "uri" field.
func URIContains(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldContains(FieldURI, v))
}

// URIHasPrefix applies the HasPrefix predicate on the "uri" field.
func URIHasPrefix(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldHasPrefix(FieldURI, v))
}

// URIHasSuffix applies the HasSuffix predicate on the "uri" field.
func URIHasSuffix(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldHasSuffix(FieldURI, v))
}

// URIEqualFold applies the EqualFold predicate on the "uri" field.
func URIEqualFold(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldEqualFold(FieldURI, v))
}

// URIContainsFold applies the ContainsFold predicate on the "uri" field.
func URIContainsFold(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldContainsFold(FieldURI, v))
}

// AccountURIEQ applies the EQ predicate on the "account_uri" field.
func AccountURIEQ(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldEQ(FieldAccountURI, v))
}

// AccountURINEQ applies the NEQ predicate on the "account_uri" field.
func AccountURINEQ(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldNEQ(FieldAccountURI, v))
}

// AccountURIIn applies the In predicate on the "account_uri" field.
func AccountURIIn(vs ...string) predicate.Favourite {
	return predicate.Favourite(sql.FieldIn(FieldAccountURI, vs...))
}

// AccountURINotIn applies the NotIn predicate on the "account_uri" field.
func AccountURINotIn(vs ...string) predicate.Favourite {
	return predicate.Favourite(sql.FieldNotIn(FieldAccountURI, vs...))
}

// AccountURIGT applies the GT predicate on the "account_uri" field.
func AccountURIGT(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldGT(FieldAccountURI, v))
}

// AccountURIGTE applies the GTE predicate on the "account_uri" field.
func AccountURIGTE(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldGTE(FieldAccountURI, v))
}

// AccountURILT applies the LT predicate on the "account_uri" field.
func AccountURILT(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldLT(FieldAccountURI, v))
}

// AccountURILTE applies the LTE predicate on the "account_uri" field.
func AccountURILTE(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldLTE(FieldAccountURI, v))
}

// AccountURIContains applies the Contains predicate on the "account_uri" field.
func AccountURIContains(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldContains(FieldAccountURI, v))
}

// AccountURIHasPrefix applies the HasPrefix predicate on the "account_uri" field.
func AccountURIHasPrefix(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldHasPrefix(FieldAccountURI, v))
}

// AccountURIHasSuffix applies the HasSuffix predicate on the "account_uri" field.
func AccountURIHasSuffix(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldHasSuffix(FieldAccountURI, v))
}

// AccountURIEqualFold applies the EqualFold predicate on the "account_uri" field.
func AccountURIEqualFold(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldEqualFold(FieldAccountURI, v))
}

// AccountURIContainsFold applies the ContainsFold predicate on the "account_uri" field.
func AccountURIContainsFold(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldContainsFold(FieldAccountURI, v))
}

// StatusIDEQ applies the EQ predicate on the "status_id" field.
func StatusIDEQ(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldEQ(FieldStatusID, v))
}

// StatusIDNEQ applies the NEQ predicate on the "status_id" field.
func StatusIDNEQ(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldNEQ(FieldStatusID, v))
}

// StatusIDIn applies the In predicate on the "status_id" field.
func StatusIDIn(vs ...string) predicate.Favourite {
	return predicate.Favourite(sql.FieldIn(FieldStatusID, vs...))
}

// StatusIDNotIn applies the NotIn predicate on the "status_id" field.
func StatusIDNotIn(vs ...string) predicate.Favourite {
	return predicate.Favourite(sql.FieldNotIn(FieldStatusID, vs...))
}

// StatusIDGT applies the GT predicate on the "status_id" field.
func StatusIDGT(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldGT(FieldStatusID, v))
}

// StatusIDGTE applies the GTE predicate on the "status_id" field.
func StatusIDGTE(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldGTE(FieldStatusID, v))
}

// StatusIDLT applies the LT predicate on the "status_id" field.
func StatusIDLT(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldLT(FieldStatusID, v))
}

// StatusIDLTE applies the LTE predicate on the "status_id" field.
func StatusIDLTE(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldLTE(FieldStatusID, v))
}

// StatusIDContains applies the Contains predicate on the "status_id" field.
func StatusIDContains(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldContains(FieldStatusID, v))
}

// StatusIDHasPrefix applies the HasPrefix predicate on the "status_id" field.
func StatusIDHasPrefix(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldHasPrefix(FieldStatusID, v))
}

// StatusIDHasSuffix applies the HasSuffix predicate on the "status_id" field.
func StatusIDHasSuffix(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldHasSuffix(FieldStatusID, v))
}

// StatusIDEqualFold applies the EqualFold predicate on the "status_id" field.
func StatusIDEqualFold(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldEqualFold(FieldStatusID, v))
}

// StatusIDContainsFold applies the ContainsFold predicate on the "status_id" field.
func StatusIDContainsFold(v string) predicate.Favourite {
	return predicate.Favourite(sql.FieldContainsFold(FieldStatusID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Favourite) predicate.Favourite {
	return predicate.Favourite(func(s *sql.Selector) {
		s1 := s.Clone().SetP(nil)
		for _, p := range predicates {
			p(s1)
		}
		s.Where(s1.P())
	})
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Favourite) predicate.Favourite {
	return predicate.Favourite(func(s *sql.Selector) {
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
func Not(p predicate.Favourite) predicate.Favourite {
	return predicate.Favourite(func(s *sql.Selector) {
		p(s.Not())
	})
}
