// Package memstore provides in-memory implementations of the permission
// store interfaces, intended for tests and local development wiring.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/fund"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
)

type grantKey struct {
	roleID uuid.UUID
	path   permission.Path
	ptype  permission.PermissionType
}

type overrideKey struct {
	roleID uuid.UUID
	dealID uuid.UUID
	path   permission.Path
	ptype  permission.PermissionType
}

type fundTypeKey struct {
	fundID   uuid.UUID
	baseType permission.StakeholderType
}

// Store holds all collections behind one mutex, mirroring the uniqueness
// constraints the SQL layer enforces. The Funds, Roles, Grants and
// Overrides views expose the store interfaces.
type Store struct {
	mu sync.RWMutex

	funds     map[uuid.UUID]fund.Fund
	bySlug    map[string]uuid.UUID
	roles     map[uuid.UUID]permission.Role
	byType    map[fundTypeKey]uuid.UUID // system roles only
	grants    map[grantKey]permission.Grant
	overrides map[overrideKey]permission.Override
}

func New() *Store {
	return &Store{
		funds:     make(map[uuid.UUID]fund.Fund),
		bySlug:    make(map[string]uuid.UUID),
		roles:     make(map[uuid.UUID]permission.Role),
		byType:    make(map[fundTypeKey]uuid.UUID),
		grants:    make(map[grantKey]permission.Grant),
		overrides: make(map[overrideKey]permission.Override),
	}
}

func (s *Store) Funds() fund.Store                   { return fundView{s} }
func (s *Store) Roles() permission.RoleStore         { return roleView{s} }
func (s *Store) Grants() permission.GrantStore       { return grantView{s} }
func (s *Store) Overrides() permission.OverrideStore { return overrideView{s} }

// ----------------------------
// fund.Store
// ----------------------------

type fundView struct{ *Store }

var _ fund.Store = fundView{}

func (v fundView) List(_ context.Context) ([]fund.Fund, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]fund.Fund, 0, len(v.funds))
	for _, f := range v.funds {
		out = append(out, f)
	}
	return out, nil
}

func (v fundView) Get(_ context.Context, fundID uuid.UUID) (fund.Fund, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	f, ok := v.funds[fundID]
	if !ok {
		return fund.Fund{}, fund.ErrFundNotFound
	}
	return f, nil
}

func (v fundView) GetBySlug(_ context.Context, slug string) (fund.Fund, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	id, ok := v.bySlug[slug]
	if !ok {
		return fund.Fund{}, fund.ErrFundNotFound
	}
	return v.funds[id], nil
}

func (v fundView) Create(_ context.Context, f fund.Fund) (fund.Fund, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, taken := v.bySlug[f.Slug]; taken {
		return fund.Fund{}, fund.ErrSlugTaken
	}

	f.ID = uuid.Must(uuid.NewV7())
	f.CreatedAt = time.Now()
	v.funds[f.ID] = f
	v.bySlug[f.Slug] = f.ID
	return f, nil
}

func (v fundView) SetActive(_ context.Context, fundID uuid.UUID, active bool) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	f, ok := v.funds[fundID]
	if !ok {
		return fund.ErrFundNotFound
	}
	f.IsActive = active
	v.funds[fundID] = f
	return nil
}

// ----------------------------
// RoleStore
// ----------------------------

type roleView struct{ *Store }

var _ permission.RoleStore = roleView{}

func (v roleView) ListByFund(_ context.Context, fundID uuid.UUID) ([]permission.Role, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	var out []permission.Role
	for _, r := range v.roles {
		if r.FundID == fundID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (v roleView) Get(_ context.Context, roleID uuid.UUID) (permission.Role, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	r, ok := v.roles[roleID]
	if !ok {
		return permission.Role{}, permission.ErrRoleNotFound
	}
	return r, nil
}

func (v roleView) GetByFundAndType(_ context.Context, fundID uuid.UUID, t permission.StakeholderType) (permission.Role, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	id, ok := v.byType[fundTypeKey{fundID: fundID, baseType: t}]
	if !ok {
		return permission.Role{}, permission.ErrRoleNotFound
	}
	return v.roles[id], nil
}

func (v roleView) Create(_ context.Context, role permission.Role) (permission.Role, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, r := range v.roles {
		if r.FundID == role.FundID && r.Name == role.Name {
			return permission.Role{}, permission.ErrDuplicateRole
		}
	}

	role.ID = uuid.Must(uuid.NewV7())
	v.roles[role.ID] = role
	if role.Kind == permission.RoleKindSystem {
		v.byType[fundTypeKey{fundID: role.FundID, baseType: role.BaseType}] = role.ID
	}
	return role, nil
}

func (v roleView) FindOrCreate(_ context.Context, role permission.Role) (permission.Role, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	key := fundTypeKey{fundID: role.FundID, baseType: role.BaseType}
	if id, ok := v.byType[key]; ok {
		return v.roles[id], false, nil
	}

	role.ID = uuid.Must(uuid.NewV7())
	v.roles[role.ID] = role
	v.byType[key] = role.ID
	return role, true, nil
}

func (v roleView) Rename(_ context.Context, roleID uuid.UUID, name string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	r, ok := v.roles[roleID]
	if !ok {
		return permission.ErrRoleNotFound
	}
	r.Name = name
	v.roles[roleID] = r
	return nil
}

func (v roleView) Delete(_ context.Context, roleID uuid.UUID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	r, ok := v.roles[roleID]
	if !ok {
		return permission.ErrRoleNotFound
	}
	delete(v.roles, roleID)
	if r.Kind == permission.RoleKindSystem {
		delete(v.byType, fundTypeKey{fundID: r.FundID, baseType: r.BaseType})
	}
	return nil
}

// ----------------------------
// GrantStore
// ----------------------------

type grantView struct{ *Store }

var _ permission.GrantStore = grantView{}

func (v grantView) ListByRole(_ context.Context, roleID uuid.UUID) ([]permission.Grant, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	var out []permission.Grant
	for k, g := range v.grants {
		if k.roleID == roleID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (v grantView) Get(_ context.Context, roleID uuid.UUID, path permission.Path, t permission.PermissionType) (permission.Grant, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	g, ok := v.grants[grantKey{roleID: roleID, path: path, ptype: t}]
	if !ok {
		return permission.Grant{}, permission.ErrGrantNotFound
	}
	return g, nil
}

func (v grantView) Upsert(_ context.Context, g permission.Grant) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.grants[grantKey{roleID: g.RoleID, path: g.Path, ptype: g.Type}] = g
	return nil
}

func (v grantView) BulkUpsert(_ context.Context, roleID uuid.UUID, grants []permission.GrantSpec) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, spec := range grants {
		v.grants[grantKey{roleID: roleID, path: spec.Path, ptype: spec.Type}] = permission.Grant{
			RoleID: roleID, Path: spec.Path, Type: spec.Type, Granted: spec.Granted,
		}
	}
	return nil
}

func (v grantView) DeleteByRole(_ context.Context, roleID uuid.UUID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for k := range v.grants {
		if k.roleID == roleID {
			delete(v.grants, k)
		}
	}
	return nil
}

func (v grantView) Copy(_ context.Context, srcRoleID, dstRoleID uuid.UUID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for k := range v.grants {
		if k.roleID == dstRoleID {
			delete(v.grants, k)
		}
	}
	for k, g := range v.grants {
		if k.roleID == srcRoleID {
			dup := g
			dup.RoleID = dstRoleID
			v.grants[grantKey{roleID: dstRoleID, path: k.path, ptype: k.ptype}] = dup
		}
	}
	return nil
}

// ----------------------------
// OverrideStore
// ----------------------------

type overrideView struct{ *Store }

var _ permission.OverrideStore = overrideView{}

func (v overrideView) ListByRoleAndDeal(_ context.Context, roleID, dealID uuid.UUID) ([]permission.Override, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	var out []permission.Override
	for k, o := range v.overrides {
		if k.roleID == roleID && k.dealID == dealID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (v overrideView) Get(_ context.Context, roleID, dealID uuid.UUID, path permission.Path, t permission.PermissionType) (permission.Override, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	o, ok := v.overrides[overrideKey{roleID: roleID, dealID: dealID, path: path, ptype: t}]
	if !ok {
		return permission.Override{}, permission.ErrOverrideNotFound
	}
	return o, nil
}

func (v overrideView) BulkUpsert(_ context.Context, roleID, dealID uuid.UUID, overrides []permission.GrantSpec) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, spec := range overrides {
		k := overrideKey{roleID: roleID, dealID: dealID, path: spec.Path, ptype: spec.Type}
		v.overrides[k] = permission.Override{
			RoleID: roleID, DealID: dealID, Path: spec.Path, Type: spec.Type, Granted: spec.Granted,
		}
	}
	return nil
}

func (v overrideView) ClearByRoleAndDeal(_ context.Context, roleID, dealID uuid.UUID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for k := range v.overrides {
		if k.roleID == roleID && k.dealID == dealID {
			delete(v.overrides, k)
		}
	}
	return nil
}

func (v overrideView) DeleteByRole(_ context.Context, roleID uuid.UUID) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for k := range v.overrides {
		if k.roleID == roleID {
			delete(v.overrides, k)
		}
	}
	return nil
}
