package permission_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/store/memstore"
)

func newEngine(t *testing.T) (*permission.Engine, *memstore.Store) {
	t.Helper()
	st := memstore.New()
	return permission.NewEngine(st.Grants(), st.Overrides()), st
}

func mustGrant(t *testing.T, st *memstore.Store, roleID uuid.UUID, specs ...permission.GrantSpec) {
	t.Helper()
	if err := st.Grants().BulkUpsert(context.Background(), roleID, specs); err != nil {
		t.Fatalf("BulkUpsert() error = %v", err)
	}
}

func TestHasPermissionDenyByDefault(t *testing.T) {
	eng, _ := newEngine(t)
	roleID := uuid.Must(uuid.NewV7())

	allowed, err := eng.HasPermission(context.Background(), roleID, permission.PathDeals, permission.PermView, nil)
	if err != nil {
		t.Fatalf("HasPermission() error = %v", err)
	}
	if allowed {
		t.Error("role with no grants must resolve to deny")
	}
}

func TestHasPermissionExactGrant(t *testing.T) {
	eng, st := newEngine(t)
	roleID := uuid.Must(uuid.NewV7())

	mustGrant(t, st, roleID,
		permission.GrantSpec{Path: "deals", Type: permission.PermView, Granted: true},
		permission.GrantSpec{Path: "deals.financials", Type: permission.PermView, Granted: false},
	)

	tests := []struct {
		name  string
		path  permission.Path
		ptype permission.PermissionType
		want  bool
	}{
		{"exact allow", "deals", permission.PermView, true},
		{"exact deny beats ancestor allow", "deals.financials", permission.PermView, false},
		{"unrelated type stays denied", "deals", permission.PermDelete, false},
		{"unknown subtree stays denied", "reports", permission.PermView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := eng.HasPermission(context.Background(), roleID, tt.path, tt.ptype, nil)
			if err != nil {
				t.Fatalf("HasPermission() error = %v", err)
			}
			if allowed != tt.want {
				t.Errorf("HasPermission(%s, %s) = %v, want %v", tt.path, tt.ptype, allowed, tt.want)
			}
		})
	}
}

func TestHasPermissionNearestAncestorWins(t *testing.T) {
	eng, st := newEngine(t)
	roleID := uuid.Must(uuid.NewV7())

	// Allow at the root, deny one level down. The deeper entry decides for
	// everything beneath it, regardless of the friendlier grandparent.
	mustGrant(t, st, roleID,
		permission.GrantSpec{Path: "deals", Type: permission.PermView, Granted: true},
		permission.GrantSpec{Path: "deals.financials", Type: permission.PermView, Granted: false},
	)

	tests := []struct {
		name string
		path permission.Path
		want bool
	}{
		{"child of denied node", "deals.financials.rent_revenue", false},
		{"grandchild of denied node", "deals.financials.rent_revenue.q3", false},
		{"sibling subtree inherits the allow", "deals.milestones", true},
		{"deep descendant of allowed root", "deals.milestones.construction.phase_2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := eng.HasPermission(context.Background(), roleID, tt.path, permission.PermView, nil)
			if err != nil {
				t.Fatalf("HasPermission() error = %v", err)
			}
			if allowed != tt.want {
				t.Errorf("HasPermission(%s) = %v, want %v", tt.path, allowed, tt.want)
			}
		})
	}
}

func TestHasPermissionDealOverrideWins(t *testing.T) {
	eng, st := newEngine(t)
	roleID := uuid.Must(uuid.NewV7())
	dealID := uuid.Must(uuid.NewV7())
	otherDeal := uuid.Must(uuid.NewV7())

	mustGrant(t, st, roleID,
		permission.GrantSpec{Path: "deals.financials", Type: permission.PermView, Granted: false},
	)
	err := st.Overrides().BulkUpsert(context.Background(), roleID, dealID, []permission.GrantSpec{
		{Path: "deals.financials", Type: permission.PermView, Granted: true},
	})
	if err != nil {
		t.Fatalf("BulkUpsert() error = %v", err)
	}

	tests := []struct {
		name   string
		dealID *uuid.UUID
		path   permission.Path
		want   bool
	}{
		{"override flips the deny inside its deal", &dealID, "deals.financials", true},
		{"other deals keep the role-level deny", &otherDeal, "deals.financials", false},
		{"no deal context ignores overrides", nil, "deals.financials", false},
		{"override is exact-path only", &dealID, "deals.financials.rent_revenue", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := eng.HasPermission(context.Background(), roleID, tt.path, permission.PermView, tt.dealID)
			if err != nil {
				t.Fatalf("HasPermission() error = %v", err)
			}
			if allowed != tt.want {
				t.Errorf("HasPermission() = %v, want %v", allowed, tt.want)
			}
		})
	}
}

func TestHasPermissionTypesAreIndependent(t *testing.T) {
	eng, st := newEngine(t)
	roleID := uuid.Must(uuid.NewV7())

	mustGrant(t, st, roleID,
		permission.GrantSpec{Path: "documents", Type: permission.PermView, Granted: true},
		permission.GrantSpec{Path: "documents", Type: permission.PermEdit, Granted: true},
	)

	for _, tt := range []struct {
		ptype permission.PermissionType
		want  bool
	}{
		{permission.PermView, true},
		{permission.PermEdit, true},
		{permission.PermCreate, false},
		{permission.PermDelete, false},
	} {
		allowed, err := eng.HasPermission(context.Background(), roleID, "documents", tt.ptype, nil)
		if err != nil {
			t.Fatalf("HasPermission() error = %v", err)
		}
		if allowed != tt.want {
			t.Errorf("HasPermission(documents, %s) = %v, want %v", tt.ptype, allowed, tt.want)
		}
	}
}

func TestHasPermissionAcceptsAnyString(t *testing.T) {
	eng, st := newEngine(t)
	roleID := uuid.Must(uuid.NewV7())

	mustGrant(t, st, roleID,
		permission.GrantSpec{Path: "deals", Type: permission.PermView, Granted: true},
	)

	// The engine has no path registry and no type enum check; odd inputs
	// resolve through the normal walk and land on deny or an ancestor.
	tests := []struct {
		name  string
		path  permission.Path
		ptype permission.PermissionType
		want  bool
	}{
		{"empty segment falls back to ancestor", "deals..financials", permission.PermView, true},
		{"empty path denies", "", permission.PermView, false},
		{"unknown type denies", "deals", "execute", false},
		{"lone separator denies", ".", permission.PermView, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := eng.HasPermission(context.Background(), roleID, tt.path, tt.ptype, nil)
			if err != nil {
				t.Fatalf("HasPermission() error = %v", err)
			}
			if allowed != tt.want {
				t.Errorf("HasPermission(%q, %q) = %v, want %v", tt.path, tt.ptype, allowed, tt.want)
			}
		})
	}
}

// failingStores simulate a storage outage; every read fails.
type failingGrantStore struct{ err error }

func (f failingGrantStore) ListByRole(context.Context, uuid.UUID) ([]permission.Grant, error) {
	return nil, f.err
}
func (f failingGrantStore) Get(context.Context, uuid.UUID, permission.Path, permission.PermissionType) (permission.Grant, error) {
	return permission.Grant{}, f.err
}
func (f failingGrantStore) Upsert(context.Context, permission.Grant) error { return f.err }
func (f failingGrantStore) BulkUpsert(context.Context, uuid.UUID, []permission.GrantSpec) error {
	return f.err
}
func (f failingGrantStore) DeleteByRole(context.Context, uuid.UUID) error { return f.err }
func (f failingGrantStore) Copy(context.Context, uuid.UUID, uuid.UUID) error {
	return f.err
}

type failingOverrideStore struct{ err error }

func (f failingOverrideStore) ListByRoleAndDeal(context.Context, uuid.UUID, uuid.UUID) ([]permission.Override, error) {
	return nil, f.err
}
func (f failingOverrideStore) Get(context.Context, uuid.UUID, uuid.UUID, permission.Path, permission.PermissionType) (permission.Override, error) {
	return permission.Override{}, f.err
}
func (f failingOverrideStore) BulkUpsert(context.Context, uuid.UUID, uuid.UUID, []permission.GrantSpec) error {
	return f.err
}
func (f failingOverrideStore) ClearByRoleAndDeal(context.Context, uuid.UUID, uuid.UUID) error {
	return f.err
}
func (f failingOverrideStore) DeleteByRole(context.Context, uuid.UUID) error { return f.err }

func TestHasPermissionPropagatesStorageErrors(t *testing.T) {
	boom := errors.New("connection reset")
	st := memstore.New()
	roleID := uuid.Must(uuid.NewV7())
	dealID := uuid.Must(uuid.NewV7())

	t.Run("grant store outage", func(t *testing.T) {
		eng := permission.NewEngine(failingGrantStore{err: boom}, st.Overrides())
		_, err := eng.HasPermission(context.Background(), roleID, "deals", permission.PermView, nil)
		if !errors.Is(err, boom) {
			t.Errorf("error = %v, want wrapped storage error", err)
		}
	})

	t.Run("override store outage", func(t *testing.T) {
		eng := permission.NewEngine(st.Grants(), failingOverrideStore{err: boom})
		_, err := eng.HasPermission(context.Background(), roleID, "deals", permission.PermView, &dealID)
		if !errors.Is(err, boom) {
			t.Errorf("error = %v, want wrapped storage error", err)
		}
	})
}

func TestEffectivePermissionsSnapshot(t *testing.T) {
	eng, st := newEngine(t)
	roleID := uuid.Must(uuid.NewV7())

	mustGrant(t, st, roleID,
		permission.GrantSpec{Path: "deals", Type: permission.PermView, Granted: true},
		permission.GrantSpec{Path: "deals", Type: permission.PermEdit, Granted: false},
		permission.GrantSpec{Path: "reports", Type: permission.PermView, Granted: true},
	)

	eff, err := eng.EffectivePermissions(context.Background(), roleID)
	if err != nil {
		t.Fatalf("EffectivePermissions() error = %v", err)
	}

	if len(eff) != 2 {
		t.Fatalf("got %d paths, want 2", len(eff))
	}
	if !eff["deals"][permission.PermView] || eff["deals"][permission.PermEdit] {
		t.Errorf("deals entry = %v, want view=true edit=false", eff["deals"])
	}

	// Explicit entries only; nothing is synthesized for descendants.
	if _, ok := eff["deals.financials"]; ok {
		t.Error("snapshot must not expand inherited paths")
	}
}
