package entity

type ToolName string

const (
	ToolValidateTicker      ToolName = "validate_ticker"
	ToolGetStockPrices      ToolName = "get_stock_prices"
	ToolSearchNews          ToolName = "search_news"
	ToolGetFinancialSummary ToolName = "get_financial_summary"
	ToolAnalyzeSentiment    ToolName = "analyze_sentiment"
)

func (t ToolName) String() string {
	return string(t)
}
