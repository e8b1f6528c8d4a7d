// Code generated by ent, DO NOT EDIT.

package status

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/yumine/versia/sqlite/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Status {
	return predicate.Status(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Status {
	return predicate.Status(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Status {
	return predicate.Status(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Status {
	return predicate.Status(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Status {
	return predicate.Status(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Status {
	return predicate.Status(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Status {
	return predicate.Status(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Status {
	return predicate.Status(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Status {
	return predicate.Status(sql.FieldContainsFold(FieldID, id))
}

// URI applies equality check predicate on the "uri" field. It's identical to URIEQ.
func URI(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldURI, v))
}

// AuthorURI applies equality check predicate on the "author_uri" field. It's identical to AuthorURIEQ.
func AuthorURI(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldAuthorURI, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldContent, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldContentType, v))
}

// Visibility applies equality check predicate on the "visibility" field. It's identical to VisibilityEQ.
func Visibility(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldVisibility, v))
}

// SpoilerText applies equality check predicate on the "spoiler_text" field. It's identical to SpoilerTextEQ.
func SpoilerText(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldSpoilerText, v))
}

// Sensitive applies equality check predicate on the "sensitive" field. It's identical to SensitiveEQ.
func Sensitive(v bool) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldSensitive, v))
}

// InReplyToID applies equality check predicate on the "in_reply_to_id" field. It's identical to InReplyToIDEQ.
func InReplyToID(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldInReplyToID, v))
}

// QuotingID applies equality check predicate on the "quoting_id" field. It's identical to QuotingIDEQ.
func QuotingID(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldQuotingID, v))
}

// ReblogOfID applies equality check predicate on the "reblog_of_id" field. It's identical to ReblogOfIDEQ.
func ReblogOfID(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldReblogOfID, v))
}

// InstanceHost applies equality check predicate on the "instance_host" field. It's identical to InstanceHostEQ.
func InstanceHost(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldInstanceHost, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldCreatedAt, v))
}

// URIEQ applies the EQ predicate on the "uri" field.
func URIEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldURI, v))
}

// URINEQ applies the NEQ predicate on the "uri" field.
func URINEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldNEQ(FieldURI, v))
}

// URIIn applies the In predicate on the "uri" field.
func URIIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldIn(FieldURI, vs...))
}

// URINotIn applies the NotIn predicate on the "uri" field.
func URINotIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldNotIn(FieldURI, vs...))
}

// URIGT applies the GT predicate on the "uri" field.
func URIGT(v string) predicate.Status {
	return predicate.Status(sql.FieldGT(FieldURI, v))
}

// URIGTE applies the GTE predicate on the "uri" field.
func URIGTE(v string) predicate.Status {
	return predicate.Status(sql.FieldGTE(FieldURI, v))
}

// URILT applies the LT predicate on the "uri" field.
func URILT(v string) predicate.Status {
	return predicate.Status(sql.FieldLT(FieldURI, v))
}

// URILTE applies the LTE predicate on the "uri" field.
func URILTE(v string) predicate.Status {
	return predicate.Status(sql.FieldLTE(FieldURI, v))
}

// URIContains applies the Contains predicate on the "uri" field.
func URIContains(v string) predicate.Status {
	return predicate.Status(sql.FieldContains(FieldURI, v))
}

// URIHasPrefix applies the HasPrefix predicate on the "uri" field.
func URIHasPrefix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasPrefix(FieldURI, v))
}

// URIHasSuffix applies the HasSuffix predicate on the "uri" field.
func URIHasSuffix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasSuffix(FieldURI, v))
}

// URIEqualFold applies the EqualFold predicate on the "uri" field.
func URIEqualFold(v string) predicate.Status {
	return predicate.Status(sql.FieldEqualFold(FieldURI, v))
}

// URIContainsFold applies the ContainsFold predicate on the "uri" field.
func URIContainsFold(v string) predicate.Status {
	return predicate.Status(sql.FieldContainsFold(FieldURI, v))
}

// AuthorURIEQ applies the EQ predicate on the "author_uri" field.
func AuthorURIEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldAuthorURI, v))
}

// AuthorURINEQ applies the NEQ predicate on the "author_uri" field.
func AuthorURINEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldNEQ(FieldAuthorURI, v))
}

// AuthorURIIn applies the In predicate on the "author_uri" field.
func AuthorURIIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldIn(FieldAuthorURI, vs...))
}

// AuthorURINotIn applies the NotIn predicate on the "author_uri" field.
func AuthorURINotIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldNotIn(FieldAuthorURI, vs...))
}

// AuthorURIGT applies the GT predicate on the "author_uri" field.
func AuthorURIGT(v string) predicate.Status {
	return predicate.Status(sql.FieldGT(FieldAuthorURI, v))
}

// AuthorURIGTE applies the GTE predicate on the "author_uri" field.
func AuthorURIGTE(v string) predicate.Status {
	return predicate.Status(sql.FieldGTE(FieldAuthorURI, v))
}

// AuthorURILT applies the LT predicate on the "author_uri" field.
func AuthorURILT(v string) predicate.Status {
	return predicate.Status(sql.FieldLT(FieldAuthorURI, v))
}

// AuthorURILTE applies the LTE predicate on the "author_uri" field.
func AuthorURILTE(v string) predicate.Status {
	return predicate.Status(sql.FieldLTE(FieldAuthorURI, v))
}

// AuthorURIContains applies the Contains predicate on the "author_uri" field.
func AuthorURIContains(v string) predicate.Status {
	return predicate.Status(sql.FieldContains(FieldAuthorURI, v))
}

// AuthorURIHasPrefix applies the HasPrefix predicate on the "author_uri" field.
func AuthorURIHasPrefix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasPrefix(FieldAuthorURI, v))
}

// AuthorURIHasSuffix applies the HasSuffix predicate on the "author_uri" field.
func AuthorURIHasSuffix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasSuffix(FieldAuthorURI, v))
}

// AuthorURIEqualFold applies the EqualFold predicate on the "author_uri" field.
func AuthorURIEqualFold(v string) predicate.Status {
	return predicate.Status(sql.FieldEqualFold(FieldAuthorURI, v))
}

// AuthorURIContainsFold applies the ContainsFold predicate on the "author_uri" field.
func AuthorURIContainsFold(v string) predicate.Status {
	return predicate.Status(sql.FieldContainsFold(FieldAuthorURI, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Status {
	return predicate.Status(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Status {
	return predicate.Status(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Status {
	return predicate.Status(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Status {
	return predicate.Status(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Status {
	return predicate.Status(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.Status {
	return predicate.Status(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.Status {
	return predicate.Status(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Status {
	return predicate.Status(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Status {
	return predicate.Status(sql.FieldContainsFold(FieldContent, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.Status {
	return predicate.Status(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.Status {
	return predicate.Status(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.Status {
	return predicate.Status(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.Status {
	return predicate.Status(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.Status {
	return predicate.Status(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeIsNil applies the IsNil predicate on the "content_type" field.
func ContentTypeIsNil() predicate.Status {
	return predicate.Status(sql.FieldIsNull(FieldContentType))
}

// ContentTypeNotNil applies the NotNil predicate on the "content_type" field.
func ContentTypeNotNil() predicate.Status {
	return predicate.Status(sql.FieldNotNull(FieldContentType))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.Status {
	return predicate.Status(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.Status {
	return predicate.Status(sql.FieldContainsFold(FieldContentType, v))
}

// VisibilityEQ applies the EQ predicate on the "visibility" field.
func VisibilityEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldVisibility, v))
}

// VisibilityNEQ applies the NEQ predicate on the "visibility" field.
func VisibilityNEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldNEQ(FieldVisibility, v))
}

// VisibilityIn applies the In predicate on the "visibility" field.
func VisibilityIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldIn(FieldVisibility, vs...))
}

// VisibilityNotIn applies the NotIn predicate on the "visibility" field.
func VisibilityNotIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldNotIn(FieldVisibility, vs...))
}

// VisibilityGT applies the GT predicate on the "visibility" field.
func VisibilityGT(v string) predicate.Status {
	return predicate.Status(sql.FieldGT(FieldVisibility, v))
}

// VisibilityGTE applies the GTE predicate on the "visibility" field.
func VisibilityGTE(v string) predicate.Status {
	return predicate.Status(sql.FieldGTE(FieldVisibility, v))
}

// VisibilityLT applies the LT predicate on the "visibility" field.
func VisibilityLT(v string) predicate.Status {
	return predicate.Status(sql.FieldLT(FieldVisibility, v))
}

// VisibilityLTE applies the LTE predicate on the "visibility" field.
func VisibilityLTE(v string) predicate.Status {
	return predicate.Status(sql.FieldLTE(FieldVisibility, v))
}

// VisibilityContains applies the Contains predicate on the "visibility" field.
func VisibilityContains(v string) predicate.Status {
	return predicate.Status(sql.FieldContains(FieldVisibility, v))
}

// VisibilityHasPrefix applies the HasPrefix predicate on the "visibility" field.
func VisibilityHasPrefix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasPrefix(FieldVisibility, v))
}

// VisibilityHasSuffix applies the HasSuffix predicate on the "visibility" field.
func VisibilityHasSuffix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasSuffix(FieldVisibility, v))
}

// VisibilityEqualFold applies the EqualFold predicate on the "visibility" field.
func VisibilityEqualFold(v string) predicate.Status {
	return predicate.Status(sql.FieldEqualFold(FieldVisibility, v))
}

// VisibilityContainsFold applies the ContainsFold predicate on the "visibility" field.
func VisibilityContainsFold(v string) predicate.Status {
	return predicate.Status(sql.FieldContainsFold(FieldVisibility, v))
}

// SpoilerTextEQ applies the EQ predicate on the "spoiler_text" field.
func SpoilerTextEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldSpoilerText, v))
}

// SpoilerTextNEQ applies the NEQ predicate on the "spoiler_text" field.
func SpoilerTextNEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldNEQ(FieldSpoilerText, v))
}

// SpoilerTextIn applies the In predicate on the "spoiler_text" field.
func SpoilerTextIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldIn(FieldSpoilerText, vs...))
}

// SpoilerTextNotIn applies the NotIn predicate on the "spoiler_text" field.
func SpoilerTextNotIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldNotIn(FieldSpoilerText, vs...))
}

// SpoilerTextGT applies the GT predicate on the "spoiler_text" field.
func SpoilerTextGT(v string) predicate.Status {
	return predicate.Status(sql.FieldGT(FieldSpoilerText, v))
}

// SpoilerTextGTE applies the GTE predicate on the "spoiler_text" field.
func SpoilerTextGTE(v string) predicate.Status {
	return predicate.Status(sql.FieldGTE(FieldSpoilerText, v))
}

// SpoilerTextLT applies the LT predicate on the "spoiler_text" field.
func SpoilerTextLT(v string) predicate.Status {
	return predicate.Status(sql.FieldLT(FieldSpoilerText, v))
}

// SpoilerTextLTE applies the LTE predicate on the "spoiler_text" field.
func SpoilerTextLTE(v string) predicate.Status {
	return predicate.Status(sql.FieldLTE(FieldSpoilerText, v))
}

// SpoilerTextContains applies the Contains predicate on the "spoiler_text" field.
func SpoilerTextContains(v string) predicate.Status {
	return predicate.Status(sql.FieldContains(FieldSpoilerText, v))
}

// SpoilerTextHasPrefix applies the HasPrefix predicate on the "spoiler_text" field.
func SpoilerTextHasPrefix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasPrefix(FieldSpoilerText, v))
}

// SpoilerTextHasSuffix applies the HasSuffix predicate on the "spoiler_text" field.
func SpoilerTextHasSuffix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasSuffix(FieldSpoilerText, v))
}

// SpoilerTextIsNil applies the IsNil predicate on the "spoiler_text" field.
func SpoilerTextIsNil() predicate.Status {
	return predicate.Status(sql.FieldIsNull(FieldSpoilerText))
}

// SpoilerTextNotNil applies the NotNil predicate on the "spoiler_text" field.
func SpoilerTextNotNil() predicate.Status {
	return predicate.Status(sql.FieldNotNull(FieldSpoilerText))
}

// SpoilerTextEqualFold applies the EqualFold predicate on the "spoiler_text" field.
func SpoilerTextEqualFold(v string) predicate.Status {
	return predicate.Status(sql.FieldEqualFold(FieldSpoilerText, v))
}

// SpoilerTextContainsFold applies the ContainsFold predicate on the "spoiler_text" field.
func SpoilerTextContainsFold(v string) predicate.Status {
	return predicate.Status(sql.FieldContainsFold(FieldSpoilerText, v))
}

// SensitiveEQ applies the EQ predicate on the "sensitive" field.
func SensitiveEQ(v bool) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldSensitive, v))
}

// SensitiveNEQ applies the NEQ predicate on the "sensitive" field.
func SensitiveNEQ(v bool) predicate.Status {
	return predicate.Status(sql.FieldNEQ(FieldSensitive, v))
}

// InReplyToIDEQ applies the EQ predicate on the "in_reply_to_id" field.
func InReplyToIDEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldInReplyToID, v))
}

// InReplyToIDNEQ applies the NEQ predicate on the "in_reply_to_id" field.
func InReplyToIDNEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldNEQ(FieldInReplyToID, v))
}

// InReplyToIDIn applies the In predicate on the "in_reply_to_id" field.
func InReplyToIDIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldIn(FieldInReplyToID, vs...))
}

// InReplyToIDNotIn applies the NotIn predicate on the "in_reply_to_id" field.
func InReplyToIDNotIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldNotIn(FieldInReplyToID, vs...))
}

// InReplyToIDGT applies the GT predicate on the "in_reply_to_id" field.
func InReplyToIDGT(v string) predicate.Status {
	return predicate.Status(sql.FieldGT(FieldInReplyToID, v))
}

// InReplyToIDGTE applies the GTE predicate on the "in_reply_to_id" field.
func InReplyToIDGTE(v string) predicate.Status {
	return predicate.Status(sql.FieldGTE(FieldInReplyToID, v))
}

// InReplyToIDLT applies the LT predicate on the "in_reply_to_id" field.
func InReplyToIDLT(v string) predicate.Status {
	return predicate.Status(sql.FieldLT(FieldInReplyToID, v))
}

// InReplyToIDLTE applies the LTE predicate on the "in_reply_to_id" field.
func InReplyToIDLTE(v string) predicate.Status {
	return predicate.Status(sql.FieldLTE(FieldInReplyToID, v))
}

// InReplyToIDContains applies the Contains predicate on the "in_reply_to_id" field.
func InReplyToIDContains(v string) predicate.Status {
	return predicate.Status(sql.FieldContains(FieldInReplyToID, v))
}

// InReplyToIDHasPrefix applies the HasPrefix predicate on the "in_reply_to_id" field.
func InReplyToIDHasPrefix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasPrefix(FieldInReplyToID, v))
}

// InReplyToIDHasSuffix applies the HasSuffix predicate on the "in_reply_to_id" field.
func InReplyToIDHasSuffix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasSuffix(FieldInReplyToID, v))
}

// InReplyToIDIsNil applies the IsNil predicate on the "in_reply_to_id" field.
func InReplyToIDIsNil() predicate.Status {
	return predicate.Status(sql.FieldIsNull(FieldInReplyToID))
}

// InReplyToIDNotNil applies the NotNil predicate on the "in_reply_to_id" field.
func InReplyToIDNotNil() predicate.Status {
	return predicate.Status(sql.FieldNotNull(FieldInReplyToID))
}

// InReplyToIDEqualFold applies the EqualFold predicate on the "in_reply_to_id" field.
func InReplyToIDEqualFold(v string) predicate.Status {
	return predicate.Status(sql.FieldEqualFold(FieldInReplyToID, v))
}

// InReplyToIDContainsFold applies the ContainsFold predicate on the "in_reply_to_id" field.
func InReplyToIDContainsFold(v string) predicate.Status {
	return predicate.Status(sql.FieldContainsFold(FieldInReplyToID, v))
}

// QuotingIDEQ applies the EQ predicate on the "quoting_id" field.
func QuotingIDEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldQuotingID, v))
}

// QuotingIDNEQ applies the NEQ predicate on the "quoting_id" field.
func QuotingIDNEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldNEQ(FieldQuotingID, v))
}

// QuotingIDIn applies the In predicate on the "quoting_id" field.
func QuotingIDIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldIn(FieldQuotingID, vs...))
}

// QuotingIDNotIn applies the NotIn predicate on the "quoting_id" field.
func QuotingIDNotIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldNotIn(FieldQuotingID, vs...))
}

// QuotingIDGT applies the GT predicate on the "quoting_id" field.
func QuotingIDGT(v string) predicate.Status {
	return predicate.Status(sql.FieldGT(FieldQuotingID, v))
}

// QuotingIDGTE applies the GTE predicate on the "quoting_id" field.
func QuotingIDGTE(v string) predicate.Status {
	return predicate.Status(sql.FieldGTE(FieldQuotingID, v))
}

// QuotingIDLT applies the LT predicate on the "quoting_id" field.
func QuotingIDLT(v string) predicate.Status {
	return predicate.Status(sql.FieldLT(FieldQuotingID, v))
}

// QuotingIDLTE applies the LTE predicate on the "quoting_id" field.
func QuotingIDLTE(v string) predicate.Status {
	return predicate.Status(sql.FieldLTE(FieldQuotingID, v))
}

// QuotingIDContains applies the Contains predicate on the "quoting_id" field.
func QuotingIDContains(v string) predicate.Status {
	return predicate.Status(sql.FieldContains(FieldQuotingID, v))
}

// QuotingIDHasPrefix applies the HasPrefix predicate on the "quoting_id" field.
func QuotingIDHasPrefix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasPrefix(FieldQuotingID, v))
}

// QuotingIDHasSuffix applies the HasSuffix predicate on the "quoting_id" field.
func QuotingIDHasSuffix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasSuffix(FieldQuotingID, v))
}

// QuotingIDIsNil applies the IsNil predicate on the "quoting_id" field.
func QuotingIDIsNil() predicate.Status {
	return predicate.Status(sql.FieldIsNull(FieldQuotingID))
}

// QuotingIDNotNil applies the NotNil predicate on the "quoting_id" field.
func QuotingIDNotNil() predicate.Status {
	return predicate.Status(sql.FieldNotNull(FieldQuotingID))
}

// QuotingIDEqualFold applies the EqualFold predicate on the "quoting_id" field.
func QuotingIDEqualFold(v string) predicate.Status {
	return predicate.Status(sql.FieldEqualFold(FieldQuotingID, v))
}

// QuotingIDContainsFold applies the ContainsFold predicate on the "quoting_id" field.
func QuotingIDContainsFold(v string) predicate.Status {
	return predicate.Status(sql.FieldContainsFold(FieldQuotingID, v))
}

// ReblogOfIDEQ applies the EQ predicate on the "reblog_of_id" field.
func ReblogOfIDEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldReblogOfID, v))
}

// ReblogOfIDNEQ applies the NEQ predicate on the "reblog_of_id" field.
func ReblogOfIDNEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldNEQ(FieldReblogOfID, v))
}

// ReblogOfIDIn applies the In predicate on the "reblog_of_id" field.
func ReblogOfIDIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldIn(FieldReblogOfID, vs...))
}

// ReblogOfIDNotIn applies the NotIn predicate on the "reblog_of_id" field.
func ReblogOfIDNotIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldNotIn(FieldReblogOfID, vs...))
}

// ReblogOfIDGT applies the GT predicate on the "reblog_of_id" field.
func ReblogOfIDGT(v string) predicate.Status {
	return predicate.Status(sql.FieldGT(FieldReblogOfID, v))
}

// ReblogOfIDGTE applies the GTE predicate on the "reblog_of_id" field.
func ReblogOfIDGTE(v string) predicate.Status {
	return predicate.Status(sql.FieldGTE(FieldReblogOfID, v))
}

// ReblogOfIDLT applies the LT predicate on the "reblog_of_id" field.
func ReblogOfIDLT(v string) predicate.Status {
	return predicate.Status(sql.FieldLT(FieldReblogOfID, v))
}

// ReblogOfIDLTE applies the LTE predicate on the "reblog_of_id" field.
func ReblogOfIDLTE(v string) predicate.Status {
	return predicate.Status(sql.FieldLTE(FieldReblogOfID, v))
}

// ReblogOfIDContains applies the Contains predicate on the "reblog_of_id" field.
func ReblogOfIDContains(v string) predicate.Status {
	return predicate.Status(sql.FieldContains(FieldReblogOfID, v))
}

// ReblogOfIDHasPrefix applies the HasPrefix predicate on the "reblog_of_id" field.
func ReblogOfIDHasPrefix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasPrefix(FieldReblogOfID, v))
}

// ReblogOfIDHasSuffix applies the HasSuffix predicate on the "reblog_of_id" field.
func ReblogOfIDHasSuffix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasSuffix(FieldReblogOfID, v))
}

// ReblogOfIDIsNil applies the IsNil predicate on the "reblog_of_id" field.
func ReblogOfIDIsNil() predicate.Status {
	return predicate.Status(sql.FieldIsNull(FieldReblogOfID))
}

// ReblogOfIDNotNil applies the NotNil predicate on the "reblog_of_id" field.
func ReblogOfIDNotNil() predicate.Status {
	return predicate.Status(sql.FieldNotNull(FieldReblogOfID))
}

// ReblogOfIDEqualFold applies the EqualFold predicate on the "reblog_of_id" field.
func ReblogOfIDEqualFold(v string) predicate.Status {
	return predicate.Status(sql.FieldEqualFold(FieldReblogOfID, v))
}

// ReblogOfIDContainsFold applies the ContainsFold predicate on the "reblog_of_id" field.
func ReblogOfIDContainsFold(v string) predicate.Status {
	return predicate.Status(sql.FieldContainsFold(FieldReblogOfID, v))
}

// InstanceHostEQ applies the EQ predicate on the "instance_host" field.
func InstanceHostEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldInstanceHost, v))
}

// InstanceHostNEQ applies the NEQ predicate on the "instance_host" field.
func InstanceHostNEQ(v string) predicate.Status {
	return predicate.Status(sql.FieldNEQ(FieldInstanceHost, v))
}

// InstanceHostIn applies the In predicate on the "instance_host" field.
func InstanceHostIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldIn(FieldInstanceHost, vs...))
}

// InstanceHostNotIn applies the NotIn predicate on the "instance_host" field.
func InstanceHostNotIn(vs ...string) predicate.Status {
	return predicate.Status(sql.FieldNotIn(FieldInstanceHost, vs...))
}

// InstanceHostGT applies the GT predicate on the "instance_host" field.
func InstanceHostGT(v string) predicate.Status {
	return predicate.Status(sql.FieldGT(FieldInstanceHost, v))
}

// InstanceHostGTE applies the GTE predicate on the "instance_host" field.
func InstanceHostGTE(v string) predicate.Status {
	return predicate.Status(sql.FieldGTE(FieldInstanceHost, v))
}

// InstanceHostLT applies the LT predicate on the "instance_host" field.
func InstanceHostLT(v string) predicate.Status {
	return predicate.Status(sql.FieldLT(FieldInstanceHost, v))
}

// InstanceHostLTE applies the LTE predicate on the "instance_host" field.
func InstanceHostLTE(v string) predicate.Status {
	return predicate.Status(sql.FieldLTE(FieldInstanceHost, v))
}

// InstanceHostContains applies the Contains predicate on the "instance_host" field.
func InstanceHostContains(v string) predicate.Status {
	return predicate.Status(sql.FieldContains(FieldInstanceHost, v))
}

// InstanceHostHasPrefix applies the HasPrefix predicate on the "instance_host" field.
func InstanceHostHasPrefix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasPrefix(FieldInstanceHost, v))
}

// InstanceHostHasSuffix applies the HasSuffix predicate on the "instance_host" field.
func InstanceHostHasSuffix(v string) predicate.Status {
	return predicate.Status(sql.FieldHasSuffix(FieldInstanceHost, v))
}

// InstanceHostIsNil applies the IsNil predicate on the "instance_host" field.
func InstanceHostIsNil() predicate.Status {
	return predicate.Status(sql.FieldIsNull(FieldInstanceHost))
}

// InstanceHostNotNil applies the NotNil predicate on the "instance_host" field.
func InstanceHostNotNil() predicate.Status {
	return predicate.Status(sql.FieldNotNull(FieldInstanceHost))
}

// InstanceHostEqualFold applies the EqualFold predicate on the "instance_host" field.
func InstanceHostEqualFold(v string) predicate.Status {
	return predicate.Status(sql.FieldEqualFold(FieldInstanceHost, v))
}

// InstanceHostContainsFold applies the ContainsFold predicate on the "instance_host" field.
func InstanceHostContainsFold(v string) predicate.Status {
	return predicate.Status(sql.FieldContainsFold(FieldInstanceHost, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Status {
	return predicate.Status(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Status {
	return predicate.Status(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Status {
	return predicate.Status(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Status {
	return predicate.Status(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Status {
	return predicate.Status(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Status {
	return predicate.Status(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Status {
	return predicate.Status(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Status {
	return predicate.Status(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Status) predicate.Status {
	return predicate.Status(func(s *sql.Selector) {
		s1 := s.Clone().SetP(nil)
		for _, p := range predicates {
			p(s1)
		}
		s.Where(s1.P())
	})
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Status) predicate.Status {
	return predicate.Status(func(s *sql.Selector) {
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
func Not(p predicate.Status) predicate.Status {
	return predicate.Status(func(s *sql.Selector) {
		p(s.Not())
	})
}
