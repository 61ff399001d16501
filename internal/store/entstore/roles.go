// Package entstore implements the permission store interfaces on the
// generated Ent client (internal/repo).
package entstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo"
	entrole "github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/stakeholderrole"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
)

type RoleStore struct {
	client *repo.Client
}

func NewRoleStore(client *repo.Client) *RoleStore {
	return &RoleStore{client: client}
}

var _ permission.RoleStore = (*RoleStore)(nil)

func (s *RoleStore) ListByFund(ctx context.Context, fundID uuid.UUID) ([]permission.Role, error) {
	rows, err := s.client.StakeholderRole.Query().
		Where(entrole.FundID(fundID)).
		Order(entrole.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}

	out := make([]permission.Role, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRole(r))
	}
	return out, nil
}

func (s *RoleStore) Get(ctx context.Context, roleID uuid.UUID) (permission.Role, error) {
	r, err := s.client.StakeholderRole.Get(ctx, roleID)
	if err != nil {
		if repo.IsNotFound(err) {
			return permission.Role{}, permission.ErrRoleNotFound
		}
		return permission.Role{}, fmt.Errorf("get role: %w", err)
	}
	return toRole(r), nil
}

func (s *RoleStore) GetByFundAndType(ctx context.Context, fundID uuid.UUID, t permission.StakeholderType) (permission.Role, error) {
	r, err := s.client.StakeholderRole.Query().
		Where(
			entrole.FundID(fundID),
			entrole.BaseType(string(t)),
			entrole.RoleKindEQ(entrole.RoleKindSystem),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return permission.Role{}, permission.ErrRoleNotFound
		}
		return permission.Role{}, fmt.Errorf("get role by type: %w", err)
	}
	return toRole(r), nil
}

func (s *RoleStore) Create(ctx context.Context, role permission.Role) (permission.Role, error) {
	r, err := s.client.StakeholderRole.Create().
		SetFundID(role.FundID).
		SetRoleName(role.Name).
		SetRoleKind(entrole.RoleKind(role.Kind)).
		SetBaseType(string(role.BaseType)).
		SetIsDefault(role.IsDefault).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return permission.Role{}, permission.ErrDuplicateRole
		}
		return permission.Role{}, fmt.Errorf("create role: %w", err)
	}
	return toRole(r), nil
}

// FindOrCreate relies on the partial unique index on (fund_id, base_type)
// for system roles: a lost creation race surfaces as a constraint error,
// after which the winner's row is returned.
func (s *RoleStore) FindOrCreate(ctx context.Context, role permission.Role) (permission.Role, bool, error) {
	existing, err := s.GetByFundAndType(ctx, role.FundID, role.BaseType)
	if err == nil {
		return existing, false, nil
	}
	if err != permission.ErrRoleNotFound {
		return permission.Role{}, false, err
	}

	created, err := s.Create(ctx, role)
	if err == nil {
		return created, true, nil
	}
	if err != permission.ErrDuplicateRole {
		return permission.Role{}, false, err
	}

	winner, err := s.GetByFundAndType(ctx, role.FundID, role.BaseType)
	if err != nil {
		return permission.Role{}, false, fmt.Errorf("re-fetch after create race: %w", err)
	}
	return winner, false, nil
}

func (s *RoleStore) Rename(ctx context.Context, roleID uuid.UUID, name string) error {
	err := s.client.StakeholderRole.UpdateOneID(roleID).
		SetRoleName(name).
		Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return permission.ErrRoleNotFound
		}
		if repo.IsConstraintError(err) {
			return permission.ErrDuplicateRole
		}
		return fmt.Errorf("rename role: %w", err)
	}
	return nil
}

func (s *RoleStore) Delete(ctx context.Context, roleID uuid.UUID) error {
	err := s.client.StakeholderRole.DeleteOneID(roleID).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return permission.ErrRoleNotFound
		}
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

func toRole(r *repo.StakeholderRole) permission.Role {
	return permission.Role{
		ID:        r.ID,
		FundID:    r.FundID,
		Name:      r.RoleName,
		Kind:      permission.RoleKind(r.RoleKind),
		BaseType:  permission.StakeholderType(r.BaseType),
		IsDefault: r.IsDefault,
	}
}
