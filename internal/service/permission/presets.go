package permission

// GrantSpec is the (path, type, granted) tuple shape shared by presets,
// bulk grant updates and deal overrides.
type GrantSpec struct {
	Path    Path           `json:"path"`
	Type    PermissionType `json:"type"`
	Granted bool           `json:"granted"`
}

// DefaultPermissionsForType returns the default grant preset for a
// stakeholder type. It is pure and total: unknown or custom types resolve
// to the most restrictive preset. It never reads from the store layer;
// this catalog is the single source of truth for type defaults.
func DefaultPermissionsForType(t StakeholderType) []GrantSpec {
	switch t {
	case TypeTeamMember:
		return teamMemberPreset()
	case TypeFundManager:
		return fundManagerPreset()
	case TypeGeneralPartner:
		return generalPartnerPreset()
	case TypeClassAInvestor:
		return classAInvestorPreset()
	case TypeClassBInvestor:
		return classBInvestorPreset()
	case TypeClassCInvestor:
		return classCInvestorPreset()
	case TypeInstitutional:
		return institutionalPreset()
	case TypeFamilyOffice:
		return familyOfficePreset()
	case TypeAccountant:
		return accountantPreset()
	case TypeAttorney:
		return attorneyPreset()
	case TypePropertyManager:
		return propertyManagerPreset()
	default:
		// TypeViewer, TypeCustom and anything unrecognised.
		return viewerPreset()
	}
}

// ----------------------------
// Preset builders
// ----------------------------

func allow(p Path, types ...PermissionType) []GrantSpec {
	return specs(p, true, types...)
}

func deny(p Path, types ...PermissionType) []GrantSpec {
	return specs(p, false, types...)
}

func specs(p Path, granted bool, types ...PermissionType) []GrantSpec {
	out := make([]GrantSpec, 0, len(types))
	for _, t := range types {
		out = append(out, GrantSpec{Path: p, Type: t, Granted: granted})
	}
	return out
}

func join(groups ...[]GrantSpec) []GrantSpec {
	var out []GrantSpec
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// allTypes grants every permission type at each path. Subtree roots rely
// on nearest-ancestor inheritance to cover their children.
func allTypes(paths ...Path) []GrantSpec {
	var out []GrantSpec
	for _, p := range paths {
		out = append(out, allow(p, AllPermissionTypes...)...)
	}
	return out
}

func viewOnly(paths ...Path) []GrantSpec {
	var out []GrantSpec
	for _, p := range paths {
		out = append(out, allow(p, PermView)...)
	}
	return out
}

// ----------------------------
// The twelve canonical presets
// ----------------------------

// Internal team members get the full surface.
func teamMemberPreset() []GrantSpec {
	return allTypes(
		PathDashboard, PathDeals, PathInvestors, PathPipeline,
		PathCapitalCalls, PathDocuments, PathReports,
		PathCommunications, PathSettings,
	)
}

func fundManagerPreset() []GrantSpec {
	return join(
		allTypes(
			PathDashboard, PathDeals, PathInvestors, PathPipeline,
			PathCapitalCalls, PathDocuments, PathReports, PathCommunications,
		),
		allow(PathConnectorSettings, PermView, PermEdit),
	)
}

func generalPartnerPreset() []GrantSpec {
	return join(
		viewOnly(PathDashboard),
		allow(PathDeals, PermView, PermCreate, PermEdit),
		allow(PathInvestors, PermView, PermCreate, PermEdit),
		allow(PathPipeline, PermView, PermCreate, PermEdit),
		allow(PathCapitalCalls, PermView, PermCreate, PermEdit),
		allow(PathDocuments, AllPermissionTypes...),
		allow(PathReports, PermView, PermCreate),
		allow(PathCommunications, PermView, PermCreate, PermEdit),
		viewOnly(PathConnectorSettings),
	)
}

func classAInvestorPreset() []GrantSpec {
	return viewOnly(
		PathDashboard,
		PathDealsOverview, PathDealsFinancials, PathDealsMilestones, PathDealsDocuments,
		PathCapitalCalls,
		PathFundDocuments, PathInvestorDocuments,
		PathReports, PathCommunications,
	)
}

// Class B sees the same surface as Class A minus deal financials and reports.
func classBInvestorPreset() []GrantSpec {
	return viewOnly(
		PathDashboard,
		PathDealsOverview, PathDealsMilestones, PathDealsDocuments,
		PathCapitalCalls,
		PathFundDocuments, PathInvestorDocuments,
		PathCommunications,
	)
}

func classCInvestorPreset() []GrantSpec {
	return viewOnly(
		PathDashboard,
		PathDealsOverview,
		PathCapitalCalls,
		PathFundDocuments,
	)
}

func institutionalPreset() []GrantSpec {
	return join(
		classAInvestorPreset(),
		viewOnly(PathDealsInvestors, PathDealDocuments),
	)
}

func familyOfficePreset() []GrantSpec {
	return join(
		classAInvestorPreset(),
		viewOnly(PathDealDocuments),
	)
}

func accountantPreset() []GrantSpec {
	return join(
		viewOnly(
			PathDashboard,
			PathDealsFinancials,
			PathCapitalCalls,
			PathFundDocuments, PathDealDocuments,
		),
		allow(PathReports, PermView, PermCreate),
	)
}

// Attorneys get documents plus limited reporting only; deal data is
// explicitly blocked at the subtree root.
func attorneyPreset() []GrantSpec {
	return join(
		viewOnly(PathDashboard),
		deny(PathDeals, PermView),
		allow(PathDocuments, PermView, PermCreate),
		allow(PathFundDocuments, PermView),
		viewOnly(PathReports),
	)
}

// Property managers work deal milestones and documents, never financials.
func propertyManagerPreset() []GrantSpec {
	return join(
		viewOnly(PathDashboard),
		allow(PathDealsMilestones, PermView, PermEdit),
		allow(PathDealsDocuments, PermView, PermCreate),
		deny(PathDealsFinancials, PermView),
	)
}

// The floor every unknown type lands on.
func viewerPreset() []GrantSpec {
	return viewOnly(PathDashboard)
}
