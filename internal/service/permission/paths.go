package permission

// Canonical nodes of the portal's resource tree. Presets grant against
// these, but the engine itself accepts any syntactically valid path.
const (
	PathDashboard Path = "dashboard"

	PathDeals           Path = "deals"
	PathDealsOverview   Path = "deals.overview"
	PathDealsFinancials Path = "deals.financials"
	PathDealsMilestones Path = "deals.milestones"
	PathDealsDocuments  Path = "deals.documents"
	PathDealsInvestors  Path = "deals.investors"
	PathDealsOutliers   Path = "deals.outliers"

	PathInvestors    Path = "investors"
	PathPipeline     Path = "pipeline"
	PathCapitalCalls Path = "capital_calls"

	PathDocuments         Path = "documents"
	PathFundDocuments     Path = "documents.fund_documents"
	PathDealDocuments     Path = "documents.deal_documents"
	PathInvestorDocuments Path = "documents.investor_documents"
	PathValidationQueue   Path = "documents.validation_queue"

	PathReports        Path = "reports"
	PathCommunications Path = "communications"

	PathSettings          Path = "settings"
	PathConnectorSettings Path = "settings.connectors"
)

// CatalogPaths is the full preset surface, in portal navigation order.
var CatalogPaths = []Path{
	PathDashboard,
	PathDeals,
	PathDealsOverview,
	PathDealsFinancials,
	PathDealsMilestones,
	PathDealsDocuments,
	PathDealsInvestors,
	PathDealsOutliers,
	PathInvestors,
	PathPipeline,
	PathCapitalCalls,
	PathDocuments,
	PathFundDocuments,
	PathDealDocuments,
	PathInvestorDocuments,
	PathValidationQueue,
	PathReports,
	PathCommunications,
	PathSettings,
	PathConnectorSettings,
}
