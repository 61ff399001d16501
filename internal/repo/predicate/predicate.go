// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DealPermissionOverride is the predicate function for dealpermissionoverride builders.
type DealPermissionOverride func(*sql.Selector)

// Fund is the predicate function for fund builders.
type Fund func(*sql.Selector)

// PermissionGrant is the predicate function for permissiongrant builders.
type PermissionGrant func(*sql.Selector)

// StakeholderRole is the predicate function for stakeholderrole builders.
type StakeholderRole func(*sql.Selector)
