package entity

// Company is the resolved identity behind a ticker symbol.
type Company struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortName,omitempty"`
	LongName  string `json:"longName,omitempty"`
}

// Name prefers the full legal name and falls back to the short display
// name, then to the symbol itself when the quote carries no name at all.
func (c *Company) Name() string {
	if c.LongName != "" {
		return c.LongName
	}
	if c.ShortName != "" {
		return c.ShortName
	}
	return c.Symbol
}

// AnalysisPeriod is the Monday-to-Friday window a report covers,
// both dates formatted as YYYY-MM-DD.
type AnalysisPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PricePoint is one daily OHLCV bar.
type PricePoint struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	Close  float64 `json:"close"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Volume int64   `json:"volume"`
}

// PriceSeries is the stock price section of a report: the daily bars
// plus a one-paragraph plain-language summary of the week.
type PriceSeries struct {
	Data    []PricePoint `json:"data"`
	Summary string       `json:"summary"`
}

// Article is one search result: a link with its title and snippet.
type Article struct {
	Title   string `json:"title"`
	URL     string `json:"url,omitempty"`
	Summary string `json:"summary,omitempty"`
}

type SentimentVerdict string

const (
	SentimentPositive SentimentVerdict = "positive"
	SentimentNegative SentimentVerdict = "negative"
	SentimentNeutral  SentimentVerdict = "neutral"
)

// Sentiment is a lexicon-based reading of the week's news. Score is the
// count of positive word hits minus negative word hits.
type Sentiment struct {
	Verdict SentimentVerdict `json:"verdict"`
	Score   int              `json:"score"`
}

// EarningsQuarter is one reported quarter of actual vs. estimated EPS.
type EarningsQuarter struct {
	Quarter  string  `json:"quarter"`
	Actual   float64 `json:"actual"`
	Estimate float64 `json:"estimate"`
}

// FinancialSummary carries key statistics and recent quarterly earnings.
type FinancialSummary struct {
	Currency          string            `json:"currency,omitempty"`
	ForwardPE         float64           `json:"forwardPE,omitempty"`
	PriceToBook       float64           `json:"priceToBook,omitempty"`
	EnterpriseValue   float64           `json:"enterpriseValue,omitempty"`
	TrailingEPS       float64           `json:"trailingEps,omitempty"`
	SharesOutstanding float64           `json:"sharesOutstanding,omitempty"`
	QuarterlyEarnings []EarningsQuarter `json:"quarterlyEarnings,omitempty"`
}

// Report is the consolidated output of one analysis run.
type Report struct {
	RunID            string            `json:"runId"`
	Ticker           string            `json:"ticker"`
	CompanyName      string            `json:"companyName"`
	AnalysisPeriod   AnalysisPeriod    `json:"analysisPeriod"`
	StockPrice       PriceSeries       `json:"stockPrice"`
	FinancialReports []Article         `json:"financialReports"`
	CompanyNews      []Article         `json:"companyNews"`
	MarketNews       []Article         `json:"marketNews"`
	Sentiment        Sentiment         `json:"sentiment"`
	FinancialSummary *FinancialSummary `json:"financialSummary,omitempty"`
	OverallSummary   string            `json:"overallSummary"`
}
