package permission

import "strings"

type StakeholderType string

// ----------------------------
// Stakeholder types
// ----------------------------

const (
	TypeClassAInvestor  StakeholderType = "class_a_investor"
	TypeClassBInvestor  StakeholderType = "class_b_investor"
	TypeClassCInvestor  StakeholderType = "class_c_investor"
	TypeGeneralPartner  StakeholderType = "general_partner"
	TypeInstitutional   StakeholderType = "institutional"
	TypeFamilyOffice    StakeholderType = "family_office"
	TypeFundManager     StakeholderType = "fund_manager"
	TypeAccountant      StakeholderType = "accountant"
	TypeAttorney        StakeholderType = "attorney"
	TypePropertyManager StakeholderType = "property_manager"
	TypeTeamMember      StakeholderType = "team_member"
	TypeViewer          StakeholderType = "viewer"

	// TypeCustom is never provisioned automatically; it marks roles that
	// were created by a fund administrator without a base type.
	TypeCustom StakeholderType = "custom"
)

// SystemRoleTypes is the fixed list of stakeholder types that get a system
// role when a fund is provisioned. Order matters only for display.
var SystemRoleTypes = []StakeholderType{
	TypeClassAInvestor,
	TypeClassBInvestor,
	TypeClassCInvestor,
	TypeGeneralPartner,
	TypeInstitutional,
	TypeFamilyOffice,
	TypeFundManager,
	TypeAccountant,
	TypeAttorney,
	TypePropertyManager,
	TypeTeamMember,
	TypeViewer,
}

var KnownStakeholderTypes = map[StakeholderType]struct{}{
	TypeClassAInvestor: {}, TypeClassBInvestor: {}, TypeClassCInvestor: {},
	TypeGeneralPartner: {}, TypeInstitutional: {}, TypeFamilyOffice: {},
	TypeFundManager: {}, TypeAccountant: {}, TypeAttorney: {},
	TypePropertyManager: {}, TypeTeamMember: {}, TypeViewer: {},
	TypeCustom: {},
}

func (t StakeholderType) Valid() bool {
	_, ok := KnownStakeholderTypes[t]
	return ok
}

// Display names shown in the portal UI.
var StakeholderTypeDisplayNames = map[StakeholderType]string{
	TypeClassAInvestor:  "Class A Investor",
	TypeClassBInvestor:  "Class B Investor",
	TypeClassCInvestor:  "Class C Investor",
	TypeGeneralPartner:  "General Partner",
	TypeInstitutional:   "Institutional Investor",
	TypeFamilyOffice:    "Family Office",
	TypeFundManager:     "Fund Manager",
	TypeAccountant:      "Accountant",
	TypeAttorney:        "Attorney",
	TypePropertyManager: "Property Manager",
	TypeTeamMember:      "Team Member",
	TypeViewer:          "Viewer",
	TypeCustom:          "Custom",
}

// ----------------------------
// Permission types
// ----------------------------

type PermissionType string

const (
	PermView   PermissionType = "view"
	PermCreate PermissionType = "create"
	PermEdit   PermissionType = "edit"
	PermDelete PermissionType = "delete"
)

// AllPermissionTypes in resolution-independent order. Granting one type
// never implies another; each is resolved on its own.
var AllPermissionTypes = []PermissionType{PermView, PermCreate, PermEdit, PermDelete}

var KnownPermissionTypes = map[PermissionType]struct{}{
	PermView: {}, PermCreate: {}, PermEdit: {}, PermDelete: {},
}

func (p PermissionType) Valid() bool {
	_, ok := KnownPermissionTypes[p]
	return ok
}

// ----------------------------
// Permission paths
// ----------------------------

// Path is a dot-delimited locator in the implicit resource tree, e.g.
// "deals.financials.rent_revenue". There is no path registry at this
// layer; any non-empty string is a valid node and parent derivation is
// purely syntactic.
type Path string

const pathSep = "."

func (p Path) Valid() bool {
	if p == "" {
		return false
	}
	for _, seg := range strings.Split(string(p), pathSep) {
		if seg == "" {
			return false
		}
	}
	return true
}

// Parent strips the last segment. Returns false for root-level paths.
func (p Path) Parent() (Path, bool) {
	i := strings.LastIndex(string(p), pathSep)
	if i < 0 {
		return "", false
	}
	return p[:i], true
}

// Ancestors returns the ancestor chain from nearest to root, excluding p
// itself: "a.b.c" -> ["a.b", "a"].
func (p Path) Ancestors() []Path {
	var out []Path
	cur := p
	for {
		parent, ok := cur.Parent()
		if !ok {
			return out
		}
		out = append(out, parent)
		cur = parent
	}
}
