// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/yumine/versia/sqlite/ent/account"
	"github.com/yumine/versia/sqlite/ent/relationship"
	"github.com/yumine/versia/sqlite/ent/schema"
	"github.com/yumine/versia/sqlite/ent/status"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescManuallyApprovesFollowers is the schema descriptor for manually_approves_followers field.
	accountDescManuallyApprovesFollowers := accountFields[5].Descriptor()
	// account.DefaultManuallyApprovesFollowers holds the default value on creation for the manually_approves_followers field.
	account.DefaultManuallyApprovesFollowers = accountDescManuallyApprovesFollowers.Default.(bool)
	relationshipFields := schema.Relationship{}.Fields()
	_ = relationshipFields
	// relationshipDescFollowing is the schema descriptor for following field.
	relationshipDescFollowing := relationshipFields[3].Descriptor()
	// relationship.DefaultFollowing holds the default value on creation for the following field.
	relationship.DefaultFollowing = relationshipDescFollowing.Default.(bool)
	// relationshipDescRequested is the schema descriptor for requested field.
	relationshipDescRequested := relationshipFields[4].Descriptor()
	// relationship.DefaultRequested holds the default value on creation for the requested field.
	relationship.DefaultRequested = relationshipDescRequested.Default.(bool)
	// relationshipDescBlocking is the schema descriptor for blocking field.
	relationshipDescBlocking := relationshipFields[5].Descriptor()
	// relationship.DefaultBlocking holds the default value on creation for the blocking field.
	relationship.DefaultBlocking = relationshipDescBlocking.Default.(bool)
	// relationshipDescMuting is the schema descriptor for muting field.
	relationshipDescMuting := relationshipFields[6].Descriptor()
	// relationship.DefaultMuting holds the default value on creation for the muting field.
	relationship.DefaultMuting = relationshipDescMuting.Default.(bool)
	statusFields := schema.Status{}.Fields()
	_ = statusFields
	// statusDescVisibility is the schema descriptor for visibility field.
	statusDescVisibility := statusFields[5].Descriptor()
	// status.DefaultVisibility holds the default value on creation for the visibility field.
	status.DefaultVisibility = statusDescVisibility.Default.(string)
	// statusDescSensitive is the schema descriptor for sensitive field.
	statusDescSensitive := statusFields[7].Descriptor()
	// status.DefaultSensitive holds the default value on creation for the sensitive field.
	status.DefaultSensitive = statusDescSensitive.Default.(bool)
}
