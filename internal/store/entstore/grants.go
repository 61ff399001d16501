package entstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo"
	entgrant "github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/permissiongrant"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
)

type GrantStore struct {
	client *repo.Client
}

func NewGrantStore(client *repo.Client) *GrantStore {
	return &GrantStore{client: client}
}

var _ permission.GrantStore = (*GrantStore)(nil)

func (s *GrantStore) ListByRole(ctx context.Context, roleID uuid.UUID) ([]permission.Grant, error) {
	rows, err := s.client.PermissionGrant.Query().
		Where(entgrant.RoleID(roleID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list grants: %w", err)
	}

	out := make([]permission.Grant, 0, len(rows))
	for _, g := range rows {
		out = append(out, toGrant(g))
	}
	return out, nil
}

func (s *GrantStore) Get(ctx context.Context, roleID uuid.UUID, path permission.Path, t permission.PermissionType) (permission.Grant, error) {
	g, err := s.client.PermissionGrant.Query().
		Where(
			entgrant.RoleID(roleID),
			entgrant.Path(string(path)),
			entgrant.PermissionType(string(t)),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return permission.Grant{}, permission.ErrGrantNotFound
		}
		return permission.Grant{}, fmt.Errorf("get grant: %w", err)
	}
	return toGrant(g), nil
}

func (s *GrantStore) Upsert(ctx context.Context, g permission.Grant) error {
	err := s.client.PermissionGrant.Create().
		SetRoleID(g.RoleID).
		SetPath(string(g.Path)).
		SetPermissionType(string(g.Type)).
		SetGranted(g.Granted).
		OnConflictColumns(entgrant.FieldRoleID, entgrant.FieldPath, entgrant.FieldPermissionType).
		UpdateGranted().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert grant: %w", err)
	}
	return nil
}

func (s *GrantStore) BulkUpsert(ctx context.Context, roleID uuid.UUID, grants []permission.GrantSpec) error {
	if len(grants) == 0 {
		return nil
	}

	builders := make([]*repo.PermissionGrantCreate, 0, len(grants))
	for _, spec := range grants {
		builders = append(builders, s.client.PermissionGrant.Create().
			SetRoleID(roleID).
			SetPath(string(spec.Path)).
			SetPermissionType(string(spec.Type)).
			SetGranted(spec.Granted))
	}

	err := s.client.PermissionGrant.CreateBulk(builders...).
		OnConflictColumns(entgrant.FieldRoleID, entgrant.FieldPath, entgrant.FieldPermissionType).
		UpdateGranted().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("bulk upsert grants: %w", err)
	}
	return nil
}

func (s *GrantStore) DeleteByRole(ctx context.Context, roleID uuid.UUID) error {
	_, err := s.client.PermissionGrant.Delete().
		Where(entgrant.RoleID(roleID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete grants: %w", err)
	}
	return nil
}

func (s *GrantStore) Copy(ctx context.Context, srcRoleID, dstRoleID uuid.UUID) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin copy: %w", err)
	}

	if _, err := tx.PermissionGrant.Delete().
		Where(entgrant.RoleID(dstRoleID)).
		Exec(ctx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear destination grants: %w", err)
	}

	src, err := tx.PermissionGrant.Query().
		Where(entgrant.RoleID(srcRoleID)).
		All(ctx)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("read source grants: %w", err)
	}

	if len(src) > 0 {
		builders := make([]*repo.PermissionGrantCreate, 0, len(src))
		for _, g := range src {
			builders = append(builders, tx.PermissionGrant.Create().
				SetRoleID(dstRoleID).
				SetPath(g.Path).
				SetPermissionType(g.PermissionType).
				SetGranted(g.Granted))
		}
		if _, err := tx.PermissionGrant.CreateBulk(builders...).Save(ctx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("duplicate grants: %w", err)
		}
	}

	return tx.Commit()
}

func toGrant(g *repo.PermissionGrant) permission.Grant {
	return permission.Grant{
		RoleID:  g.RoleID,
		Path:    permission.Path(g.Path),
		Type:    permission.PermissionType(g.PermissionType),
		Granted: g.Granted,
	}
}
