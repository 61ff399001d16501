package entstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo"
	entoverride "github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/dealpermissionoverride"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
)

type OverrideStore struct {
	client *repo.Client
}

func NewOverrideStore(client *repo.Client) *OverrideStore {
	return &OverrideStore{client: client}
}

var _ permission.OverrideStore = (*OverrideStore)(nil)

func (s *OverrideStore) ListByRoleAndDeal(ctx context.Context, roleID, dealID uuid.UUID) ([]permission.Override, error) {
	rows, err := s.client.DealPermissionOverride.Query().
		Where(
			entoverride.RoleID(roleID),
			entoverride.DealID(dealID),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list overrides: %w", err)
	}

	out := make([]permission.Override, 0, len(rows))
	for _, o := range rows {
		out = append(out, toOverride(o))
	}
	return out, nil
}

func (s *OverrideStore) Get(ctx context.Context, roleID, dealID uuid.UUID, path permission.Path, t permission.PermissionType) (permission.Override, error) {
	o, err := s.client.DealPermissionOverride.Query().
		Where(
			entoverride.RoleID(roleID),
			entoverride.DealID(dealID),
			entoverride.Path(string(path)),
			entoverride.PermissionType(string(t)),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return permission.Override{}, permission.ErrOverrideNotFound
		}
		return permission.Override{}, fmt.Errorf("get override: %w", err)
	}
	return toOverride(o), nil
}

func (s *OverrideStore) BulkUpsert(ctx context.Context, roleID, dealID uuid.UUID, overrides []permission.GrantSpec) error {
	if len(overrides) == 0 {
		return nil
	}

	builders := make([]*repo.DealPermissionOverrideCreate, 0, len(overrides))
	for _, spec := range overrides {
		builders = append(builders, s.client.DealPermissionOverride.Create().
			SetRoleID(roleID).
			SetDealID(dealID).
			SetPath(string(spec.Path)).
			SetPermissionType(string(spec.Type)).
			SetGranted(spec.Granted))
	}

	err := s.client.DealPermissionOverride.CreateBulk(builders...).
		OnConflictColumns(
			entoverride.FieldRoleID,
			entoverride.FieldDealID,
			entoverride.FieldPath,
			entoverride.FieldPermissionType,
		).
		UpdateGranted().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("bulk upsert overrides: %w", err)
	}
	return nil
}

func (s *OverrideStore) ClearByRoleAndDeal(ctx context.Context, roleID, dealID uuid.UUID) error {
	_, err := s.client.DealPermissionOverride.Delete().
		Where(
			entoverride.RoleID(roleID),
			entoverride.DealID(dealID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("clear overrides: %w", err)
	}
	return nil
}

func (s *OverrideStore) DeleteByRole(ctx context.Context, roleID uuid.UUID) error {
	_, err := s.client.DealPermissionOverride.Delete().
		Where(entoverride.RoleID(roleID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete overrides: %w", err)
	}
	return nil
}

func toOverride(o *repo.DealPermissionOverride) permission.Override {
	return permission.Override{
		RoleID:  o.RoleID,
		DealID:  o.DealID,
		Path:    permission.Path(o.Path),
		Type:    permission.PermissionType(o.PermissionType),
		Granted: o.Granted,
	}
}
