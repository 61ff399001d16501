package permission

import (
	"reflect"
	"testing"
)

func TestPathValid(t *testing.T) {
	tests := []struct {
		path Path
		want bool
	}{
		{"deals", true},
		{"deals.financials", true},
		{"deals.financials.rent_revenue", true},
		{"", false},
		{".", false},
		{"deals.", false},
		{".deals", false},
		{"deals..financials", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			if got := tt.path.Valid(); got != tt.want {
				t.Errorf("Path(%q).Valid() = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestPathParent(t *testing.T) {
	tests := []struct {
		path   Path
		parent Path
		ok     bool
	}{
		{"deals.financials.rent_revenue", "deals.financials", true},
		{"deals.financials", "deals", true},
		{"deals", "", false},
	}

	for _, tt := range tests {
		parent, ok := tt.path.Parent()
		if parent != tt.parent || ok != tt.ok {
			t.Errorf("Path(%q).Parent() = (%q, %v), want (%q, %v)",
				tt.path, parent, ok, tt.parent, tt.ok)
		}
	}
}

func TestPathAncestors(t *testing.T) {
	tests := []struct {
		path Path
		want []Path
	}{
		{"a.b.c.d", []Path{"a.b.c", "a.b", "a"}},
		{"deals.financials", []Path{"deals"}},
		{"deals", nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			if got := tt.path.Ancestors(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Ancestors() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStakeholderTypeValid(t *testing.T) {
	for _, st := range SystemRoleTypes {
		if !st.Valid() {
			t.Errorf("system role type %q should be valid", st)
		}
	}
	if !TypeCustom.Valid() {
		t.Error("TypeCustom should be valid")
	}
	if StakeholderType("janitor").Valid() {
		t.Error("unknown type should not be valid")
	}
}

func TestSystemRoleTypesComplete(t *testing.T) {
	if len(SystemRoleTypes) != 12 {
		t.Fatalf("expected 12 system role types, got %d", len(SystemRoleTypes))
	}

	seen := make(map[StakeholderType]bool)
	for _, st := range SystemRoleTypes {
		if seen[st] {
			t.Errorf("duplicate system role type %q", st)
		}
		seen[st] = true
		if st == TypeCustom {
			t.Error("TypeCustom must never be provisioned as a system role")
		}
		if _, ok := StakeholderTypeDisplayNames[st]; !ok {
			t.Errorf("no display name for %q", st)
		}
	}
}

func TestPermissionTypeValid(t *testing.T) {
	for _, pt := range AllPermissionTypes {
		if !pt.Valid() {
			t.Errorf("permission type %q should be valid", pt)
		}
	}
	if PermissionType("execute").Valid() {
		t.Error("unknown permission type should not be valid")
	}
}
