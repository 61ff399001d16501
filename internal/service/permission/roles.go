package permission

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// CustomRoleSource selects where a new custom role's grants come from:
// a snapshot of another role's current grants, or a stakeholder type's
// preset. Exactly one field must be set.
type CustomRoleSource struct {
	CopyFromRoleID *uuid.UUID
	BaseType       *StakeholderType
}

// Invalidator is notified after any mutation that changes a role's
// resolution outcome, so decision caches can drop stale entries.
type Invalidator interface {
	InvalidateRole(ctx context.Context, roleID uuid.UUID) error
}

// NopInvalidator is used when no decision cache is wired.
type NopInvalidator struct{}

func (NopInvalidator) InvalidateRole(context.Context, uuid.UUID) error { return nil }

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Role queries
	ListRoles(ctx context.Context, fundID uuid.UUID) ([]Role, error)
	GetRole(ctx context.Context, roleID uuid.UUID) (Role, error)

	// Provisioning: find-or-create one system role per stakeholder type and
	// seed its grants from the type preset. Idempotent; roles that already
	// exist are returned untouched.
	InitializeRolesForFund(ctx context.Context, fundID uuid.UUID) ([]Role, error)

	// Custom role lifecycle
	CreateCustomRole(ctx context.Context, fundID uuid.UUID, name string, src CustomRoleSource) (Role, error)
	RenameRole(ctx context.Context, roleID uuid.UUID, name string) (Role, error)
	DeleteRole(ctx context.Context, roleID uuid.UUID) error
	ResetRoleToDefaults(ctx context.Context, roleID uuid.UUID) error

	// Grant and override management
	UpdateRolePermissions(ctx context.Context, roleID uuid.UUID, grants []GrantSpec) error
	CopyPermissions(ctx context.Context, srcRoleID, dstRoleID uuid.UUID) error
	ListDealOverrides(ctx context.Context, roleID, dealID uuid.UUID) ([]Override, error)
	UpdateDealOverrides(ctx context.Context, roleID, dealID uuid.UUID, overrides []GrantSpec) error
	ClearDealOverrides(ctx context.Context, roleID, dealID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type roleService struct {
	roles     RoleStore
	grants    GrantStore
	overrides OverrideStore
	inval     Invalidator
}

func NewService(roles RoleStore, grants GrantStore, overrides OverrideStore, inval Invalidator) Service {
	if inval == nil {
		inval = NopInvalidator{}
	}
	return &roleService{roles: roles, grants: grants, overrides: overrides, inval: inval}
}

func (s *roleService) ListRoles(ctx context.Context, fundID uuid.UUID) ([]Role, error) {
	return s.roles.ListByFund(ctx, fundID)
}

func (s *roleService) GetRole(ctx context.Context, roleID uuid.UUID) (Role, error) {
	return s.roles.Get(ctx, roleID)
}

func (s *roleService) InitializeRolesForFund(ctx context.Context, fundID uuid.UUID) ([]Role, error) {
	out := make([]Role, 0, len(SystemRoleTypes))

	for _, t := range SystemRoleTypes {
		role, created, err := s.roles.FindOrCreate(ctx, Role{
			FundID:    fundID,
			Name:      StakeholderTypeDisplayNames[t],
			Kind:      RoleKindSystem,
			BaseType:  t,
			IsDefault: true,
		})
		if err != nil {
			return nil, fmt.Errorf("provision role for %s: %w", t, err)
		}

		// Seed only freshly created roles; an existing role keeps whatever
		// grant customizations the fund has made. A concurrent initializer
		// may seed the same role twice, which is harmless: both writers
		// upsert identical preset values.
		if created {
			if err := s.grants.BulkUpsert(ctx, role.ID, DefaultPermissionsForType(t)); err != nil {
				return nil, fmt.Errorf("seed grants for %s: %w", t, err)
			}
			slog.Debug("provisioned system role",
				"fund_id", fundID, "role_id", role.ID, "base_type", string(t))
		}

		out = append(out, role)
	}

	slog.Info("fund roles initialized", "fund_id", fundID, "roles", len(out))
	return out, nil
}

func (s *roleService) CreateCustomRole(ctx context.Context, fundID uuid.UUID, name string, src CustomRoleSource) (Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Role{}, ErrInvalidRoleName
	}
	if (src.CopyFromRoleID == nil) == (src.BaseType == nil) {
		return Role{}, ErrInvalidRoleSource
	}

	role := Role{
		FundID: fundID,
		Name:   name,
		Kind:   RoleKindCustom,
	}

	var seed []GrantSpec
	switch {
	case src.CopyFromRoleID != nil:
		srcRole, err := s.roles.Get(ctx, *src.CopyFromRoleID)
		if err != nil {
			return Role{}, fmt.Errorf("source role: %w", err)
		}
		role.BaseType = srcRole.BaseType
	case src.BaseType != nil:
		if !src.BaseType.Valid() {
			return Role{}, fmt.Errorf("%w: %q", ErrUnknownType, *src.BaseType)
		}
		role.BaseType = *src.BaseType
		seed = DefaultPermissionsForType(*src.BaseType)
	}

	created, err := s.roles.Create(ctx, role)
	if err != nil {
		return Role{}, fmt.Errorf("create role: %w", err)
	}

	if src.CopyFromRoleID != nil {
		// Snapshot of the source role's grants at creation time.
		if err := s.grants.Copy(ctx, *src.CopyFromRoleID, created.ID); err != nil {
			return Role{}, fmt.Errorf("copy grants: %w", err)
		}
	} else if err := s.grants.BulkUpsert(ctx, created.ID, seed); err != nil {
		return Role{}, fmt.Errorf("seed grants: %w", err)
	}

	slog.Info("custom role created", "fund_id", fundID, "role_id", created.ID, "name", name)
	return created, nil
}

func (s *roleService) RenameRole(ctx context.Context, roleID uuid.UUID, name string) (Role, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Role{}, ErrInvalidRoleName
	}

	role, err := s.roles.Get(ctx, roleID)
	if err != nil {
		return Role{}, err
	}
	if role.IsSystem() {
		return Role{}, ErrImmutableRole
	}

	if err := s.roles.Rename(ctx, roleID, name); err != nil {
		return Role{}, fmt.Errorf("rename role: %w", err)
	}
	role.Name = name
	return role, nil
}

func (s *roleService) DeleteRole(ctx context.Context, roleID uuid.UUID) error {
	role, err := s.roles.Get(ctx, roleID)
	if err != nil {
		return err
	}
	if role.IsSystem() {
		return ErrImmutableRole
	}

	// Grants and overrides go with the role.
	if err := s.grants.DeleteByRole(ctx, roleID); err != nil {
		return fmt.Errorf("delete grants: %w", err)
	}
	if err := s.overrides.DeleteByRole(ctx, roleID); err != nil {
		return fmt.Errorf("delete overrides: %w", err)
	}
	if err := s.roles.Delete(ctx, roleID); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}

	slog.Info("role deleted", "role_id", roleID, "fund_id", role.FundID)
	return s.inval.InvalidateRole(ctx, roleID)
}

func (s *roleService) ResetRoleToDefaults(ctx context.Context, roleID uuid.UUID) error {
	role, err := s.roles.Get(ctx, roleID)
	if err != nil {
		return err
	}

	if err := s.grants.DeleteByRole(ctx, roleID); err != nil {
		return fmt.Errorf("clear grants: %w", err)
	}

	// Roles created by copy may carry no base type; the catalog maps those
	// to the most restrictive preset.
	preset := DefaultPermissionsForType(role.BaseType)
	if err := s.grants.BulkUpsert(ctx, roleID, preset); err != nil {
		return fmt.Errorf("restore preset: %w", err)
	}

	return s.inval.InvalidateRole(ctx, roleID)
}

func (s *roleService) UpdateRolePermissions(ctx context.Context, roleID uuid.UUID, grants []GrantSpec) error {
	if err := validateSpecs(grants); err != nil {
		return err
	}
	if _, err := s.roles.Get(ctx, roleID); err != nil {
		return err
	}

	if err := s.grants.BulkUpsert(ctx, roleID, grants); err != nil {
		return fmt.Errorf("upsert grants: %w", err)
	}
	return s.inval.InvalidateRole(ctx, roleID)
}

func (s *roleService) CopyPermissions(ctx context.Context, srcRoleID, dstRoleID uuid.UUID) error {
	if _, err := s.roles.Get(ctx, srcRoleID); err != nil {
		return fmt.Errorf("source role: %w", err)
	}
	if _, err := s.roles.Get(ctx, dstRoleID); err != nil {
		return fmt.Errorf("destination role: %w", err)
	}

	if err := s.grants.Copy(ctx, srcRoleID, dstRoleID); err != nil {
		return fmt.Errorf("copy grants: %w", err)
	}
	return s.inval.InvalidateRole(ctx, dstRoleID)
}

func (s *roleService) ListDealOverrides(ctx context.Context, roleID, dealID uuid.UUID) ([]Override, error) {
	if _, err := s.roles.Get(ctx, roleID); err != nil {
		return nil, err
	}
	return s.overrides.ListByRoleAndDeal(ctx, roleID, dealID)
}

func (s *roleService) UpdateDealOverrides(ctx context.Context, roleID, dealID uuid.UUID, overrides []GrantSpec) error {
	if err := validateSpecs(overrides); err != nil {
		return err
	}
	if _, err := s.roles.Get(ctx, roleID); err != nil {
		return err
	}

	if err := s.overrides.BulkUpsert(ctx, roleID, dealID, overrides); err != nil {
		return fmt.Errorf("upsert overrides: %w", err)
	}
	return s.inval.InvalidateRole(ctx, roleID)
}

func (s *roleService) ClearDealOverrides(ctx context.Context, roleID, dealID uuid.UUID) error {
	if _, err := s.roles.Get(ctx, roleID); err != nil {
		return err
	}

	if err := s.overrides.ClearByRoleAndDeal(ctx, roleID, dealID); err != nil {
		return fmt.Errorf("clear overrides: %w", err)
	}
	return s.inval.InvalidateRole(ctx, roleID)
}

func validateSpecs(specs []GrantSpec) error {
	for _, g := range specs {
		if !g.Path.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidPath, g.Path)
		}
		if !g.Type.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidPermType, g.Type)
		}
	}
	return nil
}
