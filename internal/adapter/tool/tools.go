package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"finance-qa-agent/internal/application/port/output"
	"finance-qa-agent/internal/domain/dates"
	"finance-qa-agent/internal/domain/entity"
	"finance-qa-agent/internal/usecase/agents/financialsummary"
	"finance-qa-agent/internal/usecase/agents/stockprice"
	"finance-qa-agent/internal/usecase/agents/tickervalidation"
	"finance-qa-agent/internal/usecase/sentiment"
)

var (
	_ output.ToolPort = (*ValidateTickerTool)(nil)
	_ output.ToolPort = (*StockPricesTool)(nil)
	_ output.ToolPort = (*SearchNewsTool)(nil)
	_ output.ToolPort = (*FinancialSummaryTool)(nil)
	_ output.ToolPort = (*SentimentTool)(nil)
)

type ValidateTickerTool struct {
	validator *tickervalidation.Agent
}

func NewValidateTickerTool(validator *tickervalidation.Agent) *ValidateTickerTool {
	return &ValidateTickerTool{validator: validator}
}

func (t *ValidateTickerTool) Name() entity.ToolName { return entity.ToolValidateTicker }
func (t *ValidateTickerTool) Description() string {
	return "Validates a stock ticker symbol and returns the company it resolves to"
}
func (t *ValidateTickerTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"symbol": map[string]interface{}{
				"type":        "string",
				"description": "Ticker symbol, e.g. AAPL",
			},
		},
		"required": []string{"symbol"},
	}
}

func (t *ValidateTickerTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Symbol string `json:"symbol"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}

	company, err := t.validator.Validate(ctx, input.Symbol)
	if err != nil {
		return "", err
	}

	return marshalResult(company)
}

type StockPricesTool struct {
	prices *stockprice.Agent
	now    func() time.Time
}

func NewStockPricesTool(prices *stockprice.Agent) *StockPricesTool {
	return &StockPricesTool{prices: prices, now: time.Now}
}

func (t *StockPricesTool) Name() entity.ToolName { return entity.ToolGetStockPrices }
func (t *StockPricesTool) Description() string {
	return "Fetches daily OHLCV data for one Monday-to-Friday week, selected by week offset"
}
func (t *StockPricesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"symbol": map[string]interface{}{
				"type":        "string",
				"description": "Validated ticker symbol",
			},
			"week_offset": map[string]interface{}{
				"type":        "integer",
				"description": "0 for the current week, 1 for last week, and so on",
			},
		},
		"required": []string{"symbol", "week_offset"},
	}
}

func (t *StockPricesTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Symbol     string `json:"symbol"`
		WeekOffset int    `json:"week_offset"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}

	week, err := dates.WeekOf(t.now(), input.WeekOffset)
	if err != nil {
		return "", err
	}

	series, err := t.prices.GetPrices(ctx, input.Symbol, week)
	if err != nil {
		return "", err
	}

	return marshalResult(series)
}

type SearchNewsTool struct {
	search     output.SearchPort
	maxResults int
}

func NewSearchNewsTool(search output.SearchPort, maxResults int) *SearchNewsTool {
	return &SearchNewsTool{search: search, maxResults: maxResults}
}

func (t *SearchNewsTool) Name() entity.ToolName { return entity.ToolSearchNews }
func (t *SearchNewsTool) Description() string {
	return "Searches the web and returns result links with titles and snippets"
}
func (t *SearchNewsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Search query",
			},
			"max_results": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of results to return",
			},
		},
		"required": []string{"query"},
	}
}

func (t *SearchNewsTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Query      string `json:"query"`
		MaxResults int    `json:"max_results"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}

	maxResults := input.MaxResults
	if maxResults <= 0 || maxResults > t.maxResults {
		maxResults = t.maxResults
	}

	articles, err := t.search.Search(ctx, input.Query, maxResults)
	if err != nil {
		return "", err
	}

	return marshalResult(articles)
}

type FinancialSummaryTool struct {
	financials *financialsummary.Agent
}

func NewFinancialSummaryTool(financials *financialsummary.Agent) *FinancialSummaryTool {
	return &FinancialSummaryTool{financials: financials}
}

func (t *FinancialSummaryTool) Name() entity.ToolName { return entity.ToolGetFinancialSummary }
func (t *FinancialSummaryTool) Description() string {
	return "Fetches key statistics and recent quarterly earnings for a ticker"
}
func (t *FinancialSummaryTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"symbol": map[string]interface{}{
				"type":        "string",
				"description": "Validated ticker symbol",
			},
		},
		"required": []string{"symbol"},
	}
}

func (t *FinancialSummaryTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Symbol string `json:"symbol"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}

	summary, err := t.financials.GetSummary(ctx, input.Symbol)
	if err != nil {
		return "", err
	}

	return marshalResult(summary)
}

type SentimentTool struct {
	analyzer *sentiment.Analyzer
}

func NewSentimentTool(analyzer *sentiment.Analyzer) *SentimentTool {
	return &SentimentTool{analyzer: analyzer}
}

func (t *SentimentTool) Name() entity.ToolName { return entity.ToolAnalyzeSentiment }
func (t *SentimentTool) Description() string {
	return "Scores the sentiment of news text as positive, negative or neutral"
}
func (t *SentimentTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "News headlines and snippets to score",
			},
		},
		"required": []string{"text"},
	}
}

func (t *SentimentTool) Execute(ctx context.Context, args string) (string, error) {
	var input struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(args), &input); err != nil {
		return "", err
	}

	return marshalResult(t.analyzer.Analyze(input.Text))
}

func marshalResult(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal tool result: %w", err)
	}
	return string(data), nil
}
