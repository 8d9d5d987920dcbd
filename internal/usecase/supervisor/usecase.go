package supervisor

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"finance-qa-agent/internal/application/port/input"
	"finance-qa-agent/internal/application/port/output"
	"finance-qa-agent/internal/domain/dates"
	"finance-qa-agent/internal/domain/entity"
	"finance-qa-agent/internal/usecase/agents/companynews"
	"finance-qa-agent/internal/usecase/agents/financialreports"
	"finance-qa-agent/internal/usecase/agents/financialsummary"
	"finance-qa-agent/internal/usecase/agents/marketnews"
	"finance-qa-agent/internal/usecase/agents/stockprice"
	"finance-qa-agent/internal/usecase/agents/tickervalidation"
	"finance-qa-agent/internal/usecase/sentiment"
)

var _ input.Supervisor = (*UseCase)(nil)

// UseCase runs the linear analysis pipeline: prompt for input, validate the
// ticker, call each worker in turn and assemble the consolidated report.
// A failing worker never aborts the run; its section degrades to a
// placeholder and the overall summary mentions the failure.
type UseCase struct {
	validator   *tickervalidation.Agent
	prices      *stockprice.Agent
	reports     *financialreports.Agent
	companyNews *companynews.Agent
	marketNews  *marketnews.Agent
	financials  *financialsummary.Agent
	sentiment   *sentiment.Analyzer
	ui          output.UserInteractionPort
	logger      output.LoggerPort

	now func() time.Time
}

func New(
	validator *tickervalidation.Agent,
	prices *stockprice.Agent,
	reports *financialreports.Agent,
	companyNews *companynews.Agent,
	marketNews *marketnews.Agent,
	financials *financialsummary.Agent,
	sentimentAnalyzer *sentiment.Analyzer,
	ui output.UserInteractionPort,
	logger output.LoggerPort,
) *UseCase {
	return &UseCase{
		validator:   validator,
		prices:      prices,
		reports:     reports,
		companyNews: companyNews,
		marketNews:  marketNews,
		financials:  financials,
		sentiment:   sentimentAnalyzer,
		ui:          ui,
		logger:      logger,
		now:         time.Now,
	}
}

func (uc *UseCase) Run(ctx context.Context) (*entity.Report, error) {
	uc.ui.ShowMessage(ctx, "--- Financial Analysis Supervisor ---")

	company, err := uc.promptTicker(ctx)
	if err != nil {
		return nil, err
	}

	offset, err := uc.promptWeekOffset(ctx)
	if err != nil {
		return nil, err
	}

	return uc.analyze(ctx, entity.AnalysisRequest{
		Ticker:      company.Symbol,
		CompanyName: company.Name(),
		WeekOffset:  offset,
	})
}

func (uc *UseCase) analyze(ctx context.Context, req entity.AnalysisRequest) (*entity.Report, error) {
	week, err := dates.WeekOf(uc.now(), req.WeekOffset)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := uc.logger.WithField("agent", entity.AgentTypeSupervisor.String()).WithField("runId", runID)
	log.Info("Analysis started", "ticker", req.Ticker, "weekStart", week.Start())

	uc.ui.ShowMessage(ctx, fmt.Sprintf("\nAnalyzing %s (%s), %s", req.CompanyName, req.Ticker, week.Description()))

	report := &entity.Report{
		RunID:       runID,
		Ticker:      req.Ticker,
		CompanyName: req.CompanyName,
		AnalysisPeriod: entity.AnalysisPeriod{
			Start: week.Start(),
			End:   week.End(),
		},
	}

	uc.fetchStockPrices(ctx, report, req.Ticker, week, log)
	uc.fetchFinancialReports(ctx, report, req, week, log)
	uc.fetchCompanyNews(ctx, report, req, week, log)
	uc.fetchMarketNews(ctx, report, week, log)
	uc.fetchFinancialSummary(ctx, report, req.Ticker, log)
	uc.analyzeSentiment(ctx, report)

	uc.ui.ShowStepStart(ctx, "summary")
	report.OverallSummary = buildOverallSummary(report)
	uc.ui.ShowStepResult(ctx, "summary", "Report assembled", false)

	log.Info("Analysis completed", "ticker", report.Ticker)
	return report, nil
}

func (uc *UseCase) promptTicker(ctx context.Context) (*entity.Company, error) {
	for {
		answer, err := uc.ui.AskQuestion(ctx, "Enter the ticker symbol to analyze (e.g. AAPL, MSFT):")
		if err != nil {
			return nil, fmt.Errorf("read ticker input: %w", err)
		}

		if strings.TrimSpace(answer) == "" {
			uc.ui.ShowError(ctx, "No ticker symbol entered. Please try again.")
			continue
		}

		uc.ui.ShowStepStart(ctx, entity.AgentTypeTickerValidation.String())

		company, err := uc.validator.Validate(ctx, answer)
		if err != nil {
			uc.logger.Warn("Ticker validation failed", "input", answer, "error", err)
			uc.ui.ShowStepResult(ctx, entity.AgentTypeTickerValidation.String(), err.Error(), true)
			uc.ui.ShowError(ctx, "That ticker symbol could not be found. Please try again.")
			continue
		}

		uc.ui.ShowStepResult(ctx, entity.AgentTypeTickerValidation.String(),
			fmt.Sprintf("%s (%s)", company.Name(), company.Symbol), false)
		return company, nil
	}
}

func (uc *UseCase) promptWeekOffset(ctx context.Context) (int, error) {
	for {
		answer, err := uc.ui.AskQuestion(ctx, "Which week should be analyzed? (0 = this week, 1 = last week, 2 = two weeks ago):")
		if err != nil {
			return 0, fmt.Errorf("read week input: %w", err)
		}

		offset, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			uc.ui.ShowError(ctx, "Invalid input. Please enter the week offset as a whole number.")
			continue
		}

		if _, err := dates.WeekOf(uc.now(), offset); err != nil {
			uc.ui.ShowError(ctx, "The week offset must be zero or a positive number.")
			continue
		}

		return offset, nil
	}
}

func (uc *UseCase) fetchStockPrices(ctx context.Context, report *entity.Report, symbol string, week dates.Week, log output.LoggerPort) {
	step := entity.AgentTypeStockPrice.String()
	uc.ui.ShowStepStart(ctx, step)

	series, err := uc.prices.GetPrices(ctx, symbol, week)
	if err != nil {
		log.Error("Stock price fetch failed", "error", err)
		uc.ui.ShowStepResult(ctx, step, err.Error(), true)
		report.StockPrice = entity.PriceSeries{
			Data:    []entity.PricePoint{},
			Summary: fmt.Sprintf("Failed to retrieve stock price data: %v", err),
		}
		return
	}

	uc.ui.ShowStepResult(ctx, step, series.Summary, false)
	report.StockPrice = series
}

func (uc *UseCase) fetchFinancialReports(ctx context.Context, report *entity.Report, req entity.AnalysisRequest, week dates.Week, log output.LoggerPort) {
	step := entity.AgentTypeFinancialReports.String()
	uc.ui.ShowStepStart(ctx, step)

	articles, err := uc.reports.GetReports(ctx, req.CompanyName, req.Ticker, week.Year())
	if err != nil {
		log.Error("Financial report search failed", "error", err)
		uc.ui.ShowStepResult(ctx, step, err.Error(), true)
		report.FinancialReports = failureArticles("financial reports", err)
		return
	}

	uc.ui.ShowStepResult(ctx, step, fmt.Sprintf("%d results", len(articles)), false)
	report.FinancialReports = ensureArticles(articles)
}

func (uc *UseCase) fetchCompanyNews(ctx context.Context, report *entity.Report, req entity.AnalysisRequest, week dates.Week, log output.LoggerPort) {
	step := entity.AgentTypeCompanyNews.String()
	uc.ui.ShowStepStart(ctx, step)

	articles, err := uc.companyNews.GetNews(ctx, req.CompanyName, req.Ticker, week.Description())
	if err != nil {
		log.Error("Company news search failed", "error", err)
		uc.ui.ShowStepResult(ctx, step, err.Error(), true)
		report.CompanyNews = failureArticles("company news", err)
		return
	}

	uc.ui.ShowStepResult(ctx, step, fmt.Sprintf("%d results", len(articles)), false)
	report.CompanyNews = ensureArticles(articles)
}

func (uc *UseCase) fetchMarketNews(ctx context.Context, report *entity.Report, week dates.Week, log output.LoggerPort) {
	step := entity.AgentTypeMarketNews.String()
	uc.ui.ShowStepStart(ctx, step)

	// Market news is monthly context rather than week-precise.
	period := fmt.Sprintf("%s %s", week.MonthName(), week.Year())

	articles, err := uc.marketNews.GetNews(ctx, period)
	if err != nil {
		log.Error("Market news search failed", "error", err)
		uc.ui.ShowStepResult(ctx, step, err.Error(), true)
		report.MarketNews = failureArticles("market news", err)
		return
	}

	uc.ui.ShowStepResult(ctx, step, fmt.Sprintf("%d results", len(articles)), false)
	report.MarketNews = ensureArticles(articles)
}

func (uc *UseCase) fetchFinancialSummary(ctx context.Context, report *entity.Report, symbol string, log output.LoggerPort) {
	step := entity.AgentTypeFinancialSummary.String()
	uc.ui.ShowStepStart(ctx, step)

	summary, err := uc.financials.GetSummary(ctx, symbol)
	if err != nil {
		log.Error("Financial summary fetch failed", "error", err)
		uc.ui.ShowStepResult(ctx, step, err.Error(), true)
		return
	}

	uc.ui.ShowStepResult(ctx, step, "Key statistics fetched", false)
	report.FinancialSummary = summary
}

func (uc *UseCase) analyzeSentiment(ctx context.Context, report *entity.Report) {
	step := entity.AgentTypeSentiment.String()
	uc.ui.ShowStepStart(ctx, step)

	articles := make([]entity.Article, 0, len(report.CompanyNews)+len(report.MarketNews))
	articles = append(articles, report.CompanyNews...)
	articles = append(articles, report.MarketNews...)

	report.Sentiment = uc.sentiment.AnalyzeArticles(articles)
	uc.ui.ShowStepResult(ctx, step,
		fmt.Sprintf("%s (score %d)", report.Sentiment.Verdict, report.Sentiment.Score), false)
}

func buildOverallSummary(report *entity.Report) string {
	parts := []string{
		fmt.Sprintf("Analysis of %s (%s) for the week starting %s.",
			report.CompanyName, report.Ticker, report.AnalysisPeriod.Start),
		report.StockPrice.Summary,
		sectionSentence(report.FinancialReports, "financial report links"),
		sectionSentence(report.CompanyNews, "company news articles"),
		sectionSentence(report.MarketNews, "market news articles"),
		fmt.Sprintf("News sentiment for the week is %s (score %d).",
			report.Sentiment.Verdict, report.Sentiment.Score),
	}
	return strings.Join(parts, " ")
}

func sectionSentence(articles []entity.Article, what string) string {
	if len(articles) == 1 && strings.HasPrefix(articles[0].Title, "Failed to retrieve") {
		return fmt.Sprintf("The %s search failed. Details: %s", what, articles[0].Title)
	}
	if len(articles) == 0 {
		return fmt.Sprintf("No %s were found.", what)
	}
	return fmt.Sprintf("%d %s were found.", len(articles), what)
}

func failureArticles(what string, err error) []entity.Article {
	return []entity.Article{{
		Title: fmt.Sprintf("Failed to retrieve %s: %v", what, err),
	}}
}

// ensureArticles keeps report sections as JSON arrays, never null.
func ensureArticles(articles []entity.Article) []entity.Article {
	if articles == nil {
		return []entity.Article{}
	}
	return articles
}
