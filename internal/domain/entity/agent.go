package entity

type AgentType string

const (
	AgentTypeSupervisor       AgentType = "supervisor"
	AgentTypeTickerValidation AgentType = "ticker_validation"
	AgentTypeStockPrice       AgentType = "stock_price"
	AgentTypeFinancialReports AgentType = "financial_reports"
	AgentTypeCompanyNews      AgentType = "company_news"
	AgentTypeMarketNews       AgentType = "market_news"
	AgentTypeFinancialSummary AgentType = "financial_summary"
	AgentTypeSentiment        AgentType = "sentiment"
)

func (t AgentType) String() string {
	return string(t)
}

// AnalysisRequest carries the validated user input handed to the workers.
type AnalysisRequest struct {
	Ticker      string
	CompanyName string
	WeekOffset  int
}
