package permission

import (
	"reflect"
	"testing"
)

func TestDefaultPermissionsForTypeTotal(t *testing.T) {
	all := append([]StakeholderType{TypeCustom, StakeholderType("something_new")}, SystemRoleTypes...)

	for _, st := range all {
		t.Run(string(st), func(t *testing.T) {
			preset := DefaultPermissionsForType(st)
			if len(preset) == 0 {
				t.Fatal("preset must not be empty")
			}

			seen := make(map[grantKey]bool, len(preset))
			for _, spec := range preset {
				if !spec.Path.Valid() {
					t.Errorf("invalid path %q in preset", spec.Path)
				}
				if !spec.Type.Valid() {
					t.Errorf("invalid permission type %q in preset", spec.Type)
				}
				k := grantKey{path: spec.Path, ptype: spec.Type}
				if seen[k] {
					t.Errorf("duplicate (%s, %s) in preset", spec.Path, spec.Type)
				}
				seen[k] = true
			}
		})
	}
}

type grantKey struct {
	path  Path
	ptype PermissionType
}

func TestDefaultPermissionsForTypeDeterministic(t *testing.T) {
	for _, st := range SystemRoleTypes {
		a := DefaultPermissionsForType(st)
		b := DefaultPermissionsForType(st)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("preset for %q is not deterministic", st)
		}
	}
}

func TestUnknownTypesGetViewerPreset(t *testing.T) {
	viewer := DefaultPermissionsForType(TypeViewer)

	for _, st := range []StakeholderType{TypeCustom, StakeholderType("intern")} {
		if got := DefaultPermissionsForType(st); !reflect.DeepEqual(got, viewer) {
			t.Errorf("preset for %q = %v, want viewer preset %v", st, got, viewer)
		}
	}
}

func presetValue(t *testing.T, preset []GrantSpec, p Path, pt PermissionType) (bool, bool) {
	t.Helper()
	for _, spec := range preset {
		if spec.Path == p && spec.Type == pt {
			return spec.Granted, true
		}
	}
	return false, false
}

func TestAttorneyPresetBlocksDeals(t *testing.T) {
	preset := DefaultPermissionsForType(TypeAttorney)

	tests := []struct {
		name    string
		path    Path
		ptype   PermissionType
		granted bool
	}{
		{"deal view blocked at subtree root", PathDeals, PermView, false},
		{"documents visible", PathDocuments, PermView, true},
		{"documents uploadable", PathDocuments, PermCreate, true},
		{"fund documents visible", PathFundDocuments, PermView, true},
		{"reports visible", PathReports, PermView, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			granted, ok := presetValue(t, preset, tt.path, tt.ptype)
			if !ok {
				t.Fatalf("no explicit entry for (%s, %s)", tt.path, tt.ptype)
			}
			if granted != tt.granted {
				t.Errorf("(%s, %s) = %v, want %v", tt.path, tt.ptype, granted, tt.granted)
			}
		})
	}

	if _, ok := presetValue(t, preset, PathInvestors, PermView); ok {
		t.Error("attorney preset should leave investors to the deny default")
	}
}

func TestPropertyManagerPresetDeniesFinancials(t *testing.T) {
	preset := DefaultPermissionsForType(TypePropertyManager)

	granted, ok := presetValue(t, preset, PathDealsFinancials, PermView)
	if !ok {
		t.Fatal("property manager preset must carry an explicit financials entry")
	}
	if granted {
		t.Error("deal financials must be explicitly denied")
	}

	for _, pt := range []PermissionType{PermView, PermEdit} {
		granted, ok := presetValue(t, preset, PathDealsMilestones, pt)
		if !ok || !granted {
			t.Errorf("milestones %s should be granted, got (%v, %v)", pt, granted, ok)
		}
	}
}

func TestClassBIsClassAMinusFinancialsAndReports(t *testing.T) {
	classB := DefaultPermissionsForType(TypeClassBInvestor)

	for _, spec := range classB {
		if spec.Path == PathDealsFinancials || spec.Path == PathReports {
			t.Errorf("class B preset must not mention %q", spec.Path)
		}
		if !spec.Granted {
			t.Errorf("class B preset is view-only allows, found deny at (%s, %s)", spec.Path, spec.Type)
		}
		if spec.Type != PermView {
			t.Errorf("class B preset is view-only, found %s at %s", spec.Type, spec.Path)
		}
	}
}
