package permission_test

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/service/permission"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/store/memstore"
)

type recordingInvalidator struct {
	mu    sync.Mutex
	roles []uuid.UUID
}

func (r *recordingInvalidator) InvalidateRole(_ context.Context, roleID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles = append(r.roles, roleID)
	return nil
}

func (r *recordingInvalidator) saw(roleID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.roles {
		if id == roleID {
			return true
		}
	}
	return false
}

func newRoleService(t *testing.T) (permission.Service, *memstore.Store, *recordingInvalidator) {
	t.Helper()
	st := memstore.New()
	inval := &recordingInvalidator{}
	svc := permission.NewService(st.Roles(), st.Grants(), st.Overrides(), inval)
	return svc, st, inval
}

func TestInitializeRolesForFund(t *testing.T) {
	svc, st, _ := newRoleService(t)
	fundID := uuid.Must(uuid.NewV7())

	roles, err := svc.InitializeRolesForFund(context.Background(), fundID)
	if err != nil {
		t.Fatalf("InitializeRolesForFund() error = %v", err)
	}
	if len(roles) != len(permission.SystemRoleTypes) {
		t.Fatalf("got %d roles, want %d", len(roles), len(permission.SystemRoleTypes))
	}

	byType := make(map[permission.StakeholderType]permission.Role, len(roles))
	for _, r := range roles {
		if !r.IsSystem() {
			t.Errorf("role %q provisioned as %s, want system", r.Name, r.Kind)
		}
		if !r.IsDefault {
			t.Errorf("role %q should be marked default", r.Name)
		}
		if r.FundID != fundID {
			t.Errorf("role %q belongs to fund %s, want %s", r.Name, r.FundID, fundID)
		}
		byType[r.BaseType] = r
	}
	for _, st := range permission.SystemRoleTypes {
		if _, ok := byType[st]; !ok {
			t.Errorf("no role provisioned for %q", st)
		}
	}

	// Each role carries its full preset.
	for bt, role := range byType {
		grants, err := st.Grants().ListByRole(context.Background(), role.ID)
		if err != nil {
			t.Fatalf("ListByRole() error = %v", err)
		}
		if want := len(permission.DefaultPermissionsForType(bt)); len(grants) != want {
			t.Errorf("%s seeded with %d grants, want %d", bt, len(grants), want)
		}
	}
}

func TestInitializeRolesForFundIsIdempotent(t *testing.T) {
	svc, st, _ := newRoleService(t)
	fundID := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	first, err := svc.InitializeRolesForFund(ctx, fundID)
	if err != nil {
		t.Fatalf("InitializeRolesForFund() error = %v", err)
	}

	// The fund tightens one preset before a re-run happens.
	var attorney permission.Role
	for _, r := range first {
		if r.BaseType == permission.TypeAttorney {
			attorney = r
		}
	}
	custom := []permission.GrantSpec{{Path: permission.PathReports, Type: permission.PermView, Granted: false}}
	if err := svc.UpdateRolePermissions(ctx, attorney.ID, custom); err != nil {
		t.Fatalf("UpdateRolePermissions() error = %v", err)
	}

	second, err := svc.InitializeRolesForFund(ctx, fundID)
	if err != nil {
		t.Fatalf("InitializeRolesForFund() second run error = %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("second run returned %d roles, want %d", len(second), len(first))
	}

	ids := make(map[uuid.UUID]bool, len(first))
	for _, r := range first {
		ids[r.ID] = true
	}
	for _, r := range second {
		if !ids[r.ID] {
			t.Errorf("second run created a new role %s (%s)", r.ID, r.BaseType)
		}
	}

	// Customization survives the re-run.
	g, err := st.Grants().Get(ctx, attorney.ID, permission.PathReports, permission.PermView)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if g.Granted {
		t.Error("re-initialization must not reseed an existing role's grants")
	}
}

func TestCreateCustomRoleFromBaseType(t *testing.T) {
	svc, st, _ := newRoleService(t)
	fundID := uuid.Must(uuid.NewV7())
	base := permission.TypeAccountant

	role, err := svc.CreateCustomRole(context.Background(), fundID, "External Auditor",
		permission.CustomRoleSource{BaseType: &base})
	if err != nil {
		t.Fatalf("CreateCustomRole() error = %v", err)
	}
	if role.Kind != permission.RoleKindCustom {
		t.Errorf("Kind = %s, want custom", role.Kind)
	}
	if role.BaseType != base {
		t.Errorf("BaseType = %s, want %s", role.BaseType, base)
	}

	grants, err := st.Grants().ListByRole(context.Background(), role.ID)
	if err != nil {
		t.Fatalf("ListByRole() error = %v", err)
	}
	if want := len(permission.DefaultPermissionsForType(base)); len(grants) != want {
		t.Errorf("seeded %d grants, want %d", len(grants), want)
	}
}

func TestCreateCustomRoleCopyIsSnapshot(t *testing.T) {
	svc, st, _ := newRoleService(t)
	fundID := uuid.Must(uuid.NewV7())
	ctx := context.Background()
	eng := permission.NewEngine(st.Grants(), st.Overrides())

	base := permission.TypeFundManager
	src, err := svc.CreateCustomRole(ctx, fundID, "Ops Lead", permission.CustomRoleSource{BaseType: &base})
	if err != nil {
		t.Fatalf("CreateCustomRole() error = %v", err)
	}

	copied, err := svc.CreateCustomRole(ctx, fundID, "Ops Lead (Q4)",
		permission.CustomRoleSource{CopyFromRoleID: &src.ID})
	if err != nil {
		t.Fatalf("CreateCustomRole() copy error = %v", err)
	}

	// Mutate the source after the copy; the copy must not follow.
	revoke := []permission.GrantSpec{{Path: permission.PathDeals, Type: permission.PermView, Granted: false}}
	if err := svc.UpdateRolePermissions(ctx, src.ID, revoke); err != nil {
		t.Fatalf("UpdateRolePermissions() error = %v", err)
	}

	srcAllowed, err := eng.HasPermission(ctx, src.ID, permission.PathDeals, permission.PermView, nil)
	if err != nil {
		t.Fatalf("HasPermission() error = %v", err)
	}
	copyAllowed, err := eng.HasPermission(ctx, copied.ID, permission.PathDeals, permission.PermView, nil)
	if err != nil {
		t.Fatalf("HasPermission() error = %v", err)
	}
	if srcAllowed || !copyAllowed {
		t.Errorf("src = %v, copy = %v; want src revoked, copy untouched", srcAllowed, copyAllowed)
	}
}

func TestCopyPermissionsReplacesDestination(t *testing.T) {
	svc, st, inval := newRoleService(t)
	fundID := uuid.Must(uuid.NewV7())
	ctx := context.Background()
	eng := permission.NewEngine(st.Grants(), st.Overrides())

	attorney := permission.TypeAttorney
	viewer := permission.TypeViewer
	src, err := svc.CreateCustomRole(ctx, fundID, "Outside Counsel", permission.CustomRoleSource{BaseType: &attorney})
	if err != nil {
		t.Fatalf("CreateCustomRole() error = %v", err)
	}
	dst, err := svc.CreateCustomRole(ctx, fundID, "Counsel Trainee", permission.CustomRoleSource{BaseType: &viewer})
	if err != nil {
		t.Fatalf("CreateCustomRole() error = %v", err)
	}

	// A grant outside the source's surface; it must not survive the copy.
	stale := []permission.GrantSpec{{Path: permission.PathPipeline, Type: permission.PermDelete, Granted: true}}
	if err := svc.UpdateRolePermissions(ctx, dst.ID, stale); err != nil {
		t.Fatalf("UpdateRolePermissions() error = %v", err)
	}

	if err := svc.CopyPermissions(ctx, src.ID, dst.ID); err != nil {
		t.Fatalf("CopyPermissions() error = %v", err)
	}

	srcEff, err := eng.EffectivePermissions(ctx, src.ID)
	if err != nil {
		t.Fatalf("EffectivePermissions() error = %v", err)
	}
	dstEff, err := eng.EffectivePermissions(ctx, dst.ID)
	if err != nil {
		t.Fatalf("EffectivePermissions() error = %v", err)
	}
	if !reflect.DeepEqual(dstEff, srcEff) {
		t.Errorf("destination grants = %v, want the source's %v", dstEff, srcEff)
	}
	if _, ok := dstEff[permission.PathPipeline]; ok {
		t.Error("pre-existing destination grant survived the copy")
	}

	// The source is read, never written.
	if want := permission.DefaultPermissionsForType(attorney); len(srcEff) != countPaths(want) {
		t.Errorf("source has %d paths after copy, want its %d preset paths", len(srcEff), countPaths(want))
	}

	if !inval.saw(dst.ID) {
		t.Error("copy must invalidate the destination's cached decisions")
	}
}

func countPaths(specs []permission.GrantSpec) int {
	seen := make(map[permission.Path]bool, len(specs))
	for _, s := range specs {
		seen[s.Path] = true
	}
	return len(seen)
}

func TestCreateCustomRoleValidation(t *testing.T) {
	svc, _, _ := newRoleService(t)
	fundID := uuid.Must(uuid.NewV7())
	base := permission.TypeViewer
	bogus := permission.StakeholderType("janitor")
	srcID := uuid.Must(uuid.NewV7())

	tests := []struct {
		name    string
		role    string
		src     permission.CustomRoleSource
		wantErr error
	}{
		{"empty name", "  ", permission.CustomRoleSource{BaseType: &base}, permission.ErrInvalidRoleName},
		{"no source", "Auditor", permission.CustomRoleSource{}, permission.ErrInvalidRoleSource},
		{"both sources", "Auditor", permission.CustomRoleSource{BaseType: &base, CopyFromRoleID: &srcID}, permission.ErrInvalidRoleSource},
		{"unknown base type", "Auditor", permission.CustomRoleSource{BaseType: &bogus}, permission.ErrUnknownType},
		{"missing source role", "Auditor", permission.CustomRoleSource{CopyFromRoleID: &srcID}, permission.ErrRoleNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCustomRole(context.Background(), fundID, tt.role, tt.src)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateCustomRole() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSystemRolesAreImmutable(t *testing.T) {
	svc, _, _ := newRoleService(t)
	fundID := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	roles, err := svc.InitializeRolesForFund(ctx, fundID)
	if err != nil {
		t.Fatalf("InitializeRolesForFund() error = %v", err)
	}
	system := roles[0]

	if _, err := svc.RenameRole(ctx, system.ID, "House Rules"); !errors.Is(err, permission.ErrImmutableRole) {
		t.Errorf("RenameRole() error = %v, want ErrImmutableRole", err)
	}
	if err := svc.DeleteRole(ctx, system.ID); !errors.Is(err, permission.ErrImmutableRole) {
		t.Errorf("DeleteRole() error = %v, want ErrImmutableRole", err)
	}

	// Grants on system roles stay editable.
	spec := []permission.GrantSpec{{Path: permission.PathDashboard, Type: permission.PermView, Granted: false}}
	if err := svc.UpdateRolePermissions(ctx, system.ID, spec); err != nil {
		t.Errorf("UpdateRolePermissions() on system role error = %v", err)
	}
}

func TestRenameAndDeleteCustomRole(t *testing.T) {
	svc, st, inval := newRoleService(t)
	fundID := uuid.Must(uuid.NewV7())
	dealID := uuid.Must(uuid.NewV7())
	ctx := context.Background()
	base := permission.TypeViewer

	role, err := svc.CreateCustomRole(ctx, fundID, "Prospect", permission.CustomRoleSource{BaseType: &base})
	if err != nil {
		t.Fatalf("CreateCustomRole() error = %v", err)
	}

	renamed, err := svc.RenameRole(ctx, role.ID, "Prospective LP")
	if err != nil {
		t.Fatalf("RenameRole() error = %v", err)
	}
	if renamed.Name != "Prospective LP" {
		t.Errorf("Name = %q, want %q", renamed.Name, "Prospective LP")
	}

	overrides := []permission.GrantSpec{{Path: permission.PathDealsOverview, Type: permission.PermView, Granted: true}}
	if err := svc.UpdateDealOverrides(ctx, role.ID, dealID, overrides); err != nil {
		t.Fatalf("UpdateDealOverrides() error = %v", err)
	}

	if err := svc.DeleteRole(ctx, role.ID); err != nil {
		t.Fatalf("DeleteRole() error = %v", err)
	}
	if _, err := svc.GetRole(ctx, role.ID); !errors.Is(err, permission.ErrRoleNotFound) {
		t.Errorf("GetRole() after delete error = %v, want ErrRoleNotFound", err)
	}

	grants, err := st.Grants().ListByRole(ctx, role.ID)
	if err != nil {
		t.Fatalf("ListByRole() error = %v", err)
	}
	if len(grants) != 0 {
		t.Errorf("%d grants survive role deletion", len(grants))
	}
	ovs, err := st.Overrides().ListByRoleAndDeal(ctx, role.ID, dealID)
	if err != nil {
		t.Fatalf("ListByRoleAndDeal() error = %v", err)
	}
	if len(ovs) != 0 {
		t.Errorf("%d overrides survive role deletion", len(ovs))
	}
	if !inval.saw(role.ID) {
		t.Error("deletion must invalidate the role's cached decisions")
	}
}

func TestResetRoleToDefaults(t *testing.T) {
	svc, st, inval := newRoleService(t)
	fundID := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	roles, err := svc.InitializeRolesForFund(ctx, fundID)
	if err != nil {
		t.Fatalf("InitializeRolesForFund() error = %v", err)
	}
	var viewer permission.Role
	for _, r := range roles {
		if r.BaseType == permission.TypeViewer {
			viewer = r
		}
	}

	extra := []permission.GrantSpec{{Path: permission.PathSettings, Type: permission.PermEdit, Granted: true}}
	if err := svc.UpdateRolePermissions(ctx, viewer.ID, extra); err != nil {
		t.Fatalf("UpdateRolePermissions() error = %v", err)
	}

	if err := svc.ResetRoleToDefaults(ctx, viewer.ID); err != nil {
		t.Fatalf("ResetRoleToDefaults() error = %v", err)
	}

	grants, err := st.Grants().ListByRole(ctx, viewer.ID)
	if err != nil {
		t.Fatalf("ListByRole() error = %v", err)
	}
	preset := permission.DefaultPermissionsForType(permission.TypeViewer)
	if len(grants) != len(preset) {
		t.Errorf("reset left %d grants, want the %d preset entries", len(grants), len(preset))
	}
	if _, err := st.Grants().Get(ctx, viewer.ID, permission.PathSettings, permission.PermEdit); !errors.Is(err, permission.ErrGrantNotFound) {
		t.Errorf("custom grant survived reset, Get() error = %v", err)
	}
	if !inval.saw(viewer.ID) {
		t.Error("reset must invalidate the role's cached decisions")
	}
}

func TestUpdateRolePermissionsValidation(t *testing.T) {
	svc, _, _ := newRoleService(t)
	roleID := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	bad := []permission.GrantSpec{{Path: "deals..financials", Type: permission.PermView, Granted: true}}
	if err := svc.UpdateRolePermissions(ctx, roleID, bad); !errors.Is(err, permission.ErrInvalidPath) {
		t.Errorf("invalid path error = %v, want ErrInvalidPath", err)
	}

	badType := []permission.GrantSpec{{Path: "deals", Type: "execute", Granted: true}}
	if err := svc.UpdateRolePermissions(ctx, roleID, badType); !errors.Is(err, permission.ErrInvalidPermType) {
		t.Errorf("invalid type error = %v, want ErrInvalidPermType", err)
	}

	ok := []permission.GrantSpec{{Path: "deals", Type: permission.PermView, Granted: true}}
	if err := svc.UpdateRolePermissions(ctx, roleID, ok); !errors.Is(err, permission.ErrRoleNotFound) {
		t.Errorf("missing role error = %v, want ErrRoleNotFound", err)
	}
}

func TestDealOverrideLifecycle(t *testing.T) {
	svc, _, inval := newRoleService(t)
	fundID := uuid.Must(uuid.NewV7())
	dealID := uuid.Must(uuid.NewV7())
	ctx := context.Background()
	base := permission.TypeClassCInvestor

	role, err := svc.CreateCustomRole(ctx, fundID, "Deal 7 LP", permission.CustomRoleSource{BaseType: &base})
	if err != nil {
		t.Fatalf("CreateCustomRole() error = %v", err)
	}

	specs := []permission.GrantSpec{
		{Path: permission.PathDealsFinancials, Type: permission.PermView, Granted: true},
		{Path: permission.PathDealsDocuments, Type: permission.PermView, Granted: true},
	}
	if err := svc.UpdateDealOverrides(ctx, role.ID, dealID, specs); err != nil {
		t.Fatalf("UpdateDealOverrides() error = %v", err)
	}

	got, err := svc.ListDealOverrides(ctx, role.ID, dealID)
	if err != nil {
		t.Fatalf("ListDealOverrides() error = %v", err)
	}
	if len(got) != len(specs) {
		t.Fatalf("listed %d overrides, want %d", len(got), len(specs))
	}
	for _, o := range got {
		if o.RoleID != role.ID || o.DealID != dealID {
			t.Errorf("override scoped to (%s, %s), want (%s, %s)", o.RoleID, o.DealID, role.ID, dealID)
		}
	}

	if err := svc.ClearDealOverrides(ctx, role.ID, dealID); err != nil {
		t.Fatalf("ClearDealOverrides() error = %v", err)
	}
	got, err = svc.ListDealOverrides(ctx, role.ID, dealID)
	if err != nil {
		t.Fatalf("ListDealOverrides() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("%d overrides survive clear", len(got))
	}
	if !inval.saw(role.ID) {
		t.Error("override writes must invalidate the role's cached decisions")
	}
}

func TestFindOrCreateIsRaceSafe(t *testing.T) {
	st := memstore.New()
	fundID := uuid.Must(uuid.NewV7())
	ctx := context.Background()

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		ids     = make(map[uuid.UUID]bool)
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			role, fresh, err := st.Roles().FindOrCreate(ctx, permission.Role{
				FundID:   fundID,
				Name:     "Viewer",
				Kind:     permission.RoleKindSystem,
				BaseType: permission.TypeViewer,
			})
			if err != nil {
				t.Errorf("FindOrCreate() error = %v", err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if fresh {
				created++
			}
			ids[role.ID] = true
		}()
	}
	wg.Wait()

	if created != 1 {
		t.Errorf("created = %d, want exactly one winner", created)
	}
	if len(ids) != 1 {
		t.Errorf("%d distinct role IDs, want 1", len(ids))
	}
}
