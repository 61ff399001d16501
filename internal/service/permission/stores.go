package permission

import (
	"context"

	"github.com/google/uuid"
)

// ----------------------------
// Records
// ----------------------------

type RoleKind string

const (
	RoleKindSystem RoleKind = "system"
	RoleKindCustom RoleKind = "custom"
)

// Role is a fund-scoped stakeholder role. System roles are provisioned
// automatically, anchored to a stakeholder type, and immutable in name and
// existence. Custom roles are user-created and fully mutable.
type Role struct {
	ID        uuid.UUID       `json:"id"`
	FundID    uuid.UUID       `json:"fund_id"`
	Name      string          `json:"name"`
	Kind      RoleKind        `json:"kind"`
	BaseType  StakeholderType `json:"base_type,omitempty"`
	IsDefault bool            `json:"is_default"`
}

func (r Role) IsSystem() bool { return r.Kind == RoleKindSystem }

// Grant is an explicit boolean decision for one (role, path, type) key.
// Unique per key; writes fully replace the prior value.
type Grant struct {
	RoleID  uuid.UUID      `json:"role_id"`
	Path    Path           `json:"path"`
	Type    PermissionType `json:"type"`
	Granted bool           `json:"granted"`
}

// Override is a grant additionally scoped to one deal. Overrides are flat:
// only exact-path matches are consulted during resolution.
type Override struct {
	RoleID  uuid.UUID      `json:"role_id"`
	DealID  uuid.UUID      `json:"deal_id"`
	Path    Path           `json:"path"`
	Type    PermissionType `json:"type"`
	Granted bool           `json:"granted"`
}

// ----------------------------
// Store interfaces
// ----------------------------
//
// "Not found" conditions are signalled with the package sentinels
// (ErrRoleNotFound, ErrGrantNotFound, ErrOverrideNotFound) so callers can
// tell a valid miss from a genuine storage failure. Any other error is a
// storage failure and must be propagated, never converted to a deny.

type RoleStore interface {
	ListByFund(ctx context.Context, fundID uuid.UUID) ([]Role, error)
	Get(ctx context.Context, roleID uuid.UUID) (Role, error)
	GetByFundAndType(ctx context.Context, fundID uuid.UUID, t StakeholderType) (Role, error)
	Create(ctx context.Context, role Role) (Role, error)

	// FindOrCreate is the race-tolerant provisioning primitive, keyed on
	// (fund, base type). The bool reports whether this call created the
	// role. Backed by a storage uniqueness constraint, not read-then-write.
	FindOrCreate(ctx context.Context, role Role) (Role, bool, error)

	Rename(ctx context.Context, roleID uuid.UUID, name string) error
	Delete(ctx context.Context, roleID uuid.UUID) error
}

type GrantStore interface {
	ListByRole(ctx context.Context, roleID uuid.UUID) ([]Grant, error)
	Get(ctx context.Context, roleID uuid.UUID, path Path, t PermissionType) (Grant, error)
	Upsert(ctx context.Context, g Grant) error
	BulkUpsert(ctx context.Context, roleID uuid.UUID, grants []GrantSpec) error
	DeleteByRole(ctx context.Context, roleID uuid.UUID) error

	// Copy clears the destination role's grants, then duplicates every
	// source grant. A snapshot, not a live link.
	Copy(ctx context.Context, srcRoleID, dstRoleID uuid.UUID) error
}

type OverrideStore interface {
	ListByRoleAndDeal(ctx context.Context, roleID, dealID uuid.UUID) ([]Override, error)
	Get(ctx context.Context, roleID, dealID uuid.UUID, path Path, t PermissionType) (Override, error)
	BulkUpsert(ctx context.Context, roleID, dealID uuid.UUID, overrides []GrantSpec) error
	ClearByRoleAndDeal(ctx context.Context, roleID, dealID uuid.UUID) error
	DeleteByRole(ctx context.Context, roleID uuid.UUID) error
}
