// Code generated by ent, DO NOT EDIT.

package relationship

import (
	"entgo.io/ent/dialect/sql"
	"github.com/yumine/versia/sqlite/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContainsFold(FieldID, id))
}

// OwnerURI applies equality check predicate on the "owner_uri" field. It's identical to OwnerURIEQ.
func OwnerURI(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldOwnerURI, v))
}

// SubjectURI applies equality check predicate on the "subject_uri" field. It's identical to SubjectURIEQ.
func SubjectURI(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldSubjectURI, v))
}

// Following applies equality check predicate on the "following" field. It's identical to FollowingEQ.
func Following(v bool) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldFollowing, v))
}

// Requested applies equality check predicate on the "requested" field. It's identical to RequestedEQ.
func Requested(v bool) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldRequested, v))
}

// Blocking applies equality check predicate on the "blocking" field. It's identical to BlockingEQ.
func Blocking(v bool) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldBlocking, v))
}

// Muting applies equality check predicate on the "muting" field. It's identical to MutingEQ.
func Muting(v bool) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldMuting, v))
}

// OwnerURIEQ applies the EQ predicate on the "owner_uri" field.
func OwnerURIEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldOwnerURI, v))
}

// OwnerURINEQ applies the NEQ predicate on the "owner_uri" field.
func OwnerURINEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldOwnerURI, v))
}

// OwnerURIIn applies the In predicate on the "owner_uri" field.
func OwnerURIIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldOwnerURI, vs...))
}

// OwnerURINotIn applies the NotIn predicate on the "owner_uri" field.
func OwnerURINotIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldOwnerURI, vs...))
}

// OwnerURIGT applies the GT predicate on the "owner_uri" field.
func OwnerURIGT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldOwnerURI, v))
}

// OwnerURIGTE applies the GTE predicate on the "owner_uri" field.
func OwnerURIGTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldOwnerURI, v))
}

// OwnerURILT applies the LT predicate on the "owner_uri" field.
func OwnerURILT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldOwnerURI, v))
}

// OwnerURILTE applies the LTE predicate on the "owner_uri" field.
func OwnerURILTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldOwnerURI, v))
}

// OwnerURIContains applies the Contains predicate on the "owner_uri" field.
func OwnerURIContains(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContains(FieldOwnerURI, v))
}

// OwnerURIHasPrefix applies the HasPrefix predicate on the "owner_uri" field.
func OwnerURIHasPrefix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasPrefix(FieldOwnerURI, v))
}

// OwnerURIHasSuffix applies the HasSuffix predicate on the "owner_uri" field.
func OwnerURIHasSuffix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasSuffix(FieldOwnerURI, v))
}

// OwnerURIEqualFold applies the EqualFold predicate on the "owner_uri" field.
func OwnerURIEqualFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEqualFold(FieldOwnerURI, v))
}

// OwnerURIContainsFold applies the ContainsFold predicate on the "owner_uri" field.
func OwnerURIContainsFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContainsFold(FieldOwnerURI, v))
}

// SubjectURIEQ applies the EQ predicate on the "subject_uri" field.
func SubjectURIEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldSubjectURI, v))
}

// SubjectURINEQ applies the NEQ predicate on the "subject_uri" field.
func SubjectURINEQ(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldSubjectURI, v))
}

// SubjectURIIn applies the In predicate on the "subject_uri" field.
func SubjectURIIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldIn(FieldSubjectURI, vs...))
}

// SubjectURINotIn applies the NotIn predicate on the "subject_uri" field.
func SubjectURINotIn(vs ...string) predicate.Relationship {
	return predicate.Relationship(sql.FieldNotIn(FieldSubjectURI, vs...))
}

// SubjectURIGT applies the GT predicate on the "subject_uri" field.
func SubjectURIGT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGT(FieldSubjectURI, v))
}

// SubjectURIGTE applies the GTE predicate on the "subject_uri" field.
func SubjectURIGTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldGTE(FieldSubjectURI, v))
}

// SubjectURILT applies the LT predicate on the "subject_uri" field.
func SubjectURILT(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLT(FieldSubjectURI, v))
}

// SubjectURILTE applies the LTE predicate on the "subject_uri" field.
func SubjectURILTE(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldLTE(FieldSubjectURI, v))
}

// SubjectURIContains applies the Contains predicate on the "subject_uri" field.
func SubjectURIContains(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContains(FieldSubjectURI, v))
}

// SubjectURIHasPrefix applies the HasPrefix predicate on the "subject_uri" field.
func SubjectURIHasPrefix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasPrefix(FieldSubjectURI, v))
}

// SubjectURIHasSuffix applies the HasSuffix predicate on the "subject_uri" field.
func SubjectURIHasSuffix(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldHasSuffix(FieldSubjectURI, v))
}

// SubjectURIEqualFold applies the EqualFold predicate on the "subject_uri" field.
func SubjectURIEqualFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldEqualFold(FieldSubjectURI, v))
}

// SubjectURIContainsFold applies the ContainsFold predicate on the "subject_uri" field.
func SubjectURIContainsFold(v string) predicate.Relationship {
	return predicate.Relationship(sql.FieldContainsFold(FieldSubjectURI, v))
}

// FollowingEQ applies the EQ predicate on the "following" field.
func FollowingEQ(v bool) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldFollowing, v))
}

// FollowingNEQ applies the NEQ predicate on the "following" field.
func FollowingNEQ(v bool) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldFollowing, v))
}

// RequestedEQ applies the EQ predicate on the "requested" field.
func RequestedEQ(v bool) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldRequested, v))
}

// RequestedNEQ applies the NEQ predicate on the "requested" field.
func RequestedNEQ(v bool) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldRequested, v))
}

// BlockingEQ applies the EQ predicate on the "blocking" field.
func BlockingEQ(v bool) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldBlocking, v))
}

// BlockingNEQ applies the NEQ predicate on the "blocking" field.
func BlockingNEQ(v bool) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldBlocking, v))
}

// MutingEQ applies the EQ predicate on the "muting" field.
func MutingEQ(v bool) predicate.Relationship {
	return predicate.Relationship(sql.FieldEQ(FieldMuting, v))
}

// MutingNEQ applies the NEQ predicate on the "muting" field.
func MutingNEQ(v bool) predicate.Relationship {
	return predicate.Relationship(sql.FieldNEQ(FieldMuting, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Relationship) predicate.Relationship {
	return predicate.Relationship(func(s *sql.Selector) {
		s1 := s.Clone().SetP(nil)
		for _, p := range predicates {
			p(s1)
		}
		s.Where(s1.P())
	})
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Relationship) predicate.Relationship {
	return predicate.Relationship(func(s *sql.Selector) {
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
func Not(p predicate.Relationship) predicate.Relationship {
	return predicate.Relationship(func(s *sql.Selector) {
		p(s.Not())
	})
}
