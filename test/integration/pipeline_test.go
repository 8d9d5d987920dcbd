package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-qa-agent/internal/application/port/output"
	"finance-qa-agent/internal/domain/dates"
	"finance-qa-agent/internal/domain/entity"
	"finance-qa-agent/internal/infrastructure/duckduckgo"
	"finance-qa-agent/internal/infrastructure/yahoo"
	"finance-qa-agent/internal/usecase/agents/companynews"
	"finance-qa-agent/internal/usecase/agents/financialreports"
	"finance-qa-agent/internal/usecase/agents/financialsummary"
	"finance-qa-agent/internal/usecase/agents/marketnews"
	"finance-qa-agent/internal/usecase/agents/stockprice"
	"finance-qa-agent/internal/usecase/agents/tickervalidation"
	"finance-qa-agent/internal/usecase/sentiment"
	"finance-qa-agent/internal/usecase/supervisor"
)

type scriptedUI struct {
	answers []string
	next    int
}

func (u *scriptedUI) AskQuestion(ctx context.Context, question string) (string, error) {
	if u.next >= len(u.answers) {
		return "", errors.New("no more scripted answers")
	}
	answer := u.answers[u.next]
	u.next++
	return answer, nil
}

func (u *scriptedUI) ShowMessage(ctx context.Context, message string)                   {}
func (u *scriptedUI) ShowError(ctx context.Context, message string)                     {}
func (u *scriptedUI) ShowStepStart(ctx context.Context, step string)                    {}
func (u *scriptedUI) ShowStepResult(ctx context.Context, step, result string, e bool)   {}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (l nopLogger) WithField(key string, v any) output.LoggerPort { return l }
func (nopLogger) Close() error                                    { return nil }

func newYahooServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/v7/finance/quote", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteResponse":{"result":[{"symbol":"AAPL","shortName":"Apple Inc.","longName":"Apple Inc."}]}}`)
	})

	mux.HandleFunc("/v8/finance/chart/AAPL", func(w http.ResponseWriter, r *http.Request) {
		period1, err := strconv.ParseInt(r.URL.Query().Get("period1"), 10, 64)
		require.NoError(t, err, "period1 must be a unix timestamp")

		// Two daily bars starting at the requested Monday.
		payload := map[string]any{
			"chart": map[string]any{
				"result": []map[string]any{{
					"timestamp": []int64{period1, period1 + 86400},
					"indicators": map[string]any{
						"quote": []map[string]any{{
							"open":   []float64{100, 102},
							"high":   []float64{103, 106},
							"low":    []float64{99, 101},
							"close":  []float64{102, 105},
							"volume": []int64{1000, 1100},
						}},
					},
				}},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	})

	mux.HandleFunc("/v10/finance/quoteSummary/AAPL", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"quoteSummary":{"result":[{
			"earnings":{"financialCurrency":"USD","earningsChart":{"quarterly":[
				{"date":"2Q2024","actual":{"raw":1.4,"fmt":"1.40"},"estimate":{"raw":1.35,"fmt":"1.35"}}
			]}},
			"defaultKeyStatistics":{"forwardPE":{"raw":28.5,"fmt":"28.50"}}
		}]}}`)
	})

	return httptest.NewServer(mux)
}

const searchResultsPage = `<html><body>
<div class="result results_links results_links_deep web-result">
  <div class="links_main links_deep result__body">
    <h2 class="result__title">
      <a rel="nofollow" class="result__a" href="https://example.com/growth">Apple reports strong growth</a>
    </h2>
    <a class="result__snippet" href="https://example.com/growth">Shares posted solid gains after the report.</a>
  </div>
</div>
<div class="result results_links results_links_deep web-result">
  <div class="links_main links_deep result__body">
    <h2 class="result__title">
      <a rel="nofollow" class="result__a" href="https://example.com/outlook">Market outlook stays positive</a>
    </h2>
    <a class="result__snippet" href="https://example.com/outlook">Analysts expect profit momentum to continue.</a>
  </div>
</div>
</body></html>`

func newSearchServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, searchResultsPage)
	}))
}

func newSupervisor(t *testing.T, yahooURL, searchURL string, ui *scriptedUI) *supervisor.UseCase {
	t.Helper()
	log := nopLogger{}

	yahooCfg := yahoo.DefaultConfig()
	yahooCfg.BaseURL = yahooURL
	market := yahoo.NewClient(yahooCfg)

	searchCfg := duckduckgo.DefaultConfig()
	searchCfg.BaseURL = searchURL
	search := duckduckgo.NewClient(searchCfg)

	return supervisor.New(
		tickervalidation.New(market, log),
		stockprice.New(market, log),
		financialreports.New(search, 5, log),
		companynews.New(search, 5, log),
		marketnews.New(search, 5, log),
		financialsummary.New(market, log),
		sentiment.NewAnalyzer(),
		ui,
		log,
	)
}

func TestPipeline_EndToEnd(t *testing.T) {
	yahooSrv := newYahooServer(t)
	defer yahooSrv.Close()
	searchSrv := newSearchServer(t)
	defer searchSrv.Close()

	ui := &scriptedUI{answers: []string{"aapl", "1"}}
	uc := newSupervisor(t, yahooSrv.URL, searchSrv.URL, ui)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := uc.Run(ctx)
	require.NoError(t, err, "Pipeline run failed")

	week, err := dates.WeekOf(time.Now(), 1)
	require.NoError(t, err)

	assert.Equal(t, "AAPL", report.Ticker)
	assert.Equal(t, "Apple Inc.", report.CompanyName)
	assert.Equal(t, week.Start(), report.AnalysisPeriod.Start)
	assert.Equal(t, week.End(), report.AnalysisPeriod.End)
	assert.NotEmpty(t, report.RunID)

	require.Len(t, report.StockPrice.Data, 2)
	assert.Equal(t, week.Start(), report.StockPrice.Data[0].Date)
	assert.Contains(t, report.StockPrice.Summary, "2 trading days")

	assert.Len(t, report.FinancialReports, 2)
	assert.Len(t, report.CompanyNews, 2)
	assert.Len(t, report.MarketNews, 2)
	assert.Equal(t, "https://example.com/growth", report.CompanyNews[0].URL)

	assert.Equal(t, entity.SentimentPositive, report.Sentiment.Verdict)

	require.NotNil(t, report.FinancialSummary)
	assert.Equal(t, "USD", report.FinancialSummary.Currency)
	assert.Equal(t, 28.5, report.FinancialSummary.ForwardPE)
	require.Len(t, report.FinancialSummary.QuarterlyEarnings, 1)
	assert.Equal(t, "2Q2024", report.FinancialSummary.QuarterlyEarnings[0].Quarter)

	assert.NotEmpty(t, report.OverallSummary)
}

func TestPipeline_OutputKeys(t *testing.T) {
	yahooSrv := newYahooServer(t)
	defer yahooSrv.Close()
	searchSrv := newSearchServer(t)
	defer searchSrv.Close()

	ui := &scriptedUI{answers: []string{"AAPL", "0"}}
	uc := newSupervisor(t, yahooSrv.URL, searchSrv.URL, ui)

	report, err := uc.Run(context.Background())
	require.NoError(t, err)

	data, err := json.Marshal(report)
	require.NoError(t, err)

	for _, key := range []string{
		`"runId"`, `"ticker"`, `"companyName"`, `"analysisPeriod"`,
		`"stockPrice"`, `"financialReports"`, `"companyNews"`,
		`"marketNews"`, `"sentiment"`, `"overallSummary"`,
	} {
		assert.Contains(t, string(data), key)
	}
}

func TestPipeline_SearchOutageDegrades(t *testing.T) {
	yahooSrv := newYahooServer(t)
	defer yahooSrv.Close()
	searchSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer searchSrv.Close()

	ui := &scriptedUI{answers: []string{"AAPL", "0"}}
	uc := newSupervisor(t, yahooSrv.URL, searchSrv.URL, ui)

	report, err := uc.Run(context.Background())
	require.NoError(t, err, "Search outage must not abort the run")

	require.Len(t, report.CompanyNews, 1)
	assert.True(t, strings.HasPrefix(report.CompanyNews[0].Title, "Failed to retrieve company news"))
	require.Len(t, report.StockPrice.Data, 2)
}
