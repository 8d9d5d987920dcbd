package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"finance-qa-agent/internal/application/port/output"
	"finance-qa-agent/internal/domain/dates"
	"finance-qa-agent/internal/domain/entity"
)

// summaryModules are the quoteSummary sections the report consumes.
const summaryModules = "earnings,defaultKeyStatistics"

type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Logger    output.LoggerPort
}

func DefaultConfig() Config {
	return Config{
		BaseURL:   "https://query1.finance.yahoo.com",
		UserAgent: "Mozilla/5.0 (compatible; finance-qa-agent/1.0)",
		Timeout:   10 * time.Second,
	}
}

var _ output.MarketDataPort = (*Client)(nil)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     output.LoggerPort
}

func NewClient(cfg Config) *Client {
	// Yahoo throttles unauthenticated clients hard; stay well under the limit.
	limiter := rate.NewLimiter(rate.Limit(2), 4)

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		limiter:    limiter,
		logger:     cfg.Logger,
	}
}

func (c *Client) Quote(ctx context.Context, symbol string) (*entity.Company, error) {
	query := url.Values{"symbols": {symbol}}

	var resp quoteResponse
	if err := c.get(ctx, "/v7/finance/quote", query, &resp); err != nil {
		return nil, fmt.Errorf("quote request: %w", err)
	}

	results := resp.QuoteResponse.Result
	if len(results) == 0 {
		return nil, fmt.Errorf("quote %q: %w", symbol, output.ErrTickerNotFound)
	}

	q := results[0]
	return &entity.Company{
		Symbol:    q.Symbol,
		ShortName: q.ShortName,
		LongName:  q.LongName,
	}, nil
}

func (c *Client) DailyPrices(ctx context.Context, symbol string, start, end time.Time) ([]entity.PricePoint, error) {
	query := url.Values{
		"period1":  {fmt.Sprintf("%d", start.Unix())},
		"period2":  {fmt.Sprintf("%d", end.Unix())},
		"interval": {"1d"},
	}

	var resp chartResponse
	if err := c.get(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), query, &resp); err != nil {
		return nil, fmt.Errorf("chart request: %w", err)
	}

	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart %q: %s", symbol, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, nil
	}

	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	bars := result.Indicators.Quote[0]

	points := make([]entity.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		// Half-open bars come back as nulls; skip them.
		if i >= len(bars.Close) || bars.Close[i] == nil {
			continue
		}

		point := entity.PricePoint{
			Date:  time.Unix(ts, 0).UTC().Format(dates.Layout),
			Close: *bars.Close[i],
		}
		if i < len(bars.Open) && bars.Open[i] != nil {
			point.Open = *bars.Open[i]
		}
		if i < len(bars.High) && bars.High[i] != nil {
			point.High = *bars.High[i]
		}
		if i < len(bars.Low) && bars.Low[i] != nil {
			point.Low = *bars.Low[i]
		}
		if i < len(bars.Volume) && bars.Volume[i] != nil {
			point.Volume = *bars.Volume[i]
		}
		points = append(points, point)
	}

	return points, nil
}

func (c *Client) QuoteSummary(ctx context.Context, symbol string) (*entity.FinancialSummary, error) {
	query := url.Values{"modules": {summaryModules}}

	var resp quoteSummaryResponse
	if err := c.get(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(symbol), query, &resp); err != nil {
		return nil, fmt.Errorf("quoteSummary request: %w", err)
	}

	results := resp.QuoteSummary.Result
	if len(results) == 0 {
		return nil, fmt.Errorf("quoteSummary %q: no summary data", symbol)
	}

	r := results[0]
	summary := &entity.FinancialSummary{
		Currency:          r.Earnings.FinancialCurrency,
		ForwardPE:         r.DefaultKeyStatistics.ForwardPE.Raw,
		PriceToBook:       r.DefaultKeyStatistics.PriceToBook.Raw,
		EnterpriseValue:   r.DefaultKeyStatistics.EnterpriseValue.Raw,
		TrailingEPS:       r.DefaultKeyStatistics.TrailingEps.Raw,
		SharesOutstanding: r.DefaultKeyStatistics.SharesOutstanding.Raw,
	}

	for _, q := range r.Earnings.EarningsChart.Quarterly {
		summary.QuarterlyEarnings = append(summary.QuarterlyEarnings, entity.EarningsQuarter{
			Quarter:  q.Date,
			Actual:   q.Actual.Raw,
			Estimate: q.Estimate.Raw,
		})
	}

	return summary, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	if c.logger != nil {
		c.logger.Debug("Yahoo request", "url", reqURL)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol    string `json:"symbol"`
			ShortName string `json:"shortName"`
			LongName  string `json:"longName"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

type rawValue struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			Earnings struct {
				FinancialCurrency string `json:"financialCurrency"`
				EarningsChart     struct {
					Quarterly []struct {
						Date     string   `json:"date"`
						Actual   rawValue `json:"actual"`
						Estimate rawValue `json:"estimate"`
					} `json:"quarterly"`
				} `json:"earningsChart"`
			} `json:"earnings"`
			DefaultKeyStatistics struct {
				ForwardPE         rawValue `json:"forwardPE"`
				PriceToBook       rawValue `json:"priceToBook"`
				EnterpriseValue   rawValue `json:"enterpriseValue"`
				TrailingEps       rawValue `json:"trailingEps"`
				SharesOutstanding rawValue `json:"sharesOutstanding"`
			} `json:"defaultKeyStatistics"`
		} `json:"result"`
	} `json:"quoteSummary"`
}
