package di

import (
	"fmt"
	"time"

	"finance-qa-agent/internal/adapter/tool"
	"finance-qa-agent/internal/application/port/input"
	"finance-qa-agent/internal/application/port/output"
	"finance-qa-agent/internal/application/service"
	"finance-qa-agent/internal/domain/dates"
	"finance-qa-agent/internal/infrastructure/duckduckgo"
	"finance-qa-agent/internal/infrastructure/llm/openrouter"
	"finance-qa-agent/internal/infrastructure/logger"
	"finance-qa-agent/internal/infrastructure/prompts"
	"finance-qa-agent/internal/infrastructure/userinteraction"
	"finance-qa-agent/internal/infrastructure/yahoo"
	"finance-qa-agent/internal/usecase/agents/companynews"
	"finance-qa-agent/internal/usecase/agents/financialreports"
	"finance-qa-agent/internal/usecase/agents/financialsummary"
	"finance-qa-agent/internal/usecase/agents/marketnews"
	"finance-qa-agent/internal/usecase/agents/stockprice"
	"finance-qa-agent/internal/usecase/agents/tickervalidation"
	"finance-qa-agent/internal/usecase/executor"
	"finance-qa-agent/internal/usecase/sentiment"
	"finance-qa-agent/internal/usecase/supervisor"
)

// ModeLLM switches the supervisor from the deterministic pipeline to the
// LLM tool-calling loop.
const ModeLLM = "llm"

type Config struct {
	Mode             string
	OpenRouterAPIKey string
	OpenRouterModel  string
	SearchMaxResults int
	HTTPTimeout      time.Duration
}

type Container struct {
	Logger          output.LoggerPort
	UserInteraction output.UserInteractionPort
	Supervisor      input.Supervisor
	TaskExecutor    input.TaskExecutor
}

func NewContainer(cfg Config) (*Container, error) {
	log, err := logger.NewZapAdapter("analysis")
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	yahooCfg := yahoo.DefaultConfig()
	yahooCfg.Logger = log
	if cfg.HTTPTimeout > 0 {
		yahooCfg.Timeout = cfg.HTTPTimeout
	}
	market := yahoo.NewClient(yahooCfg)

	searchCfg := duckduckgo.DefaultConfig()
	searchCfg.Logger = log
	if cfg.HTTPTimeout > 0 {
		searchCfg.Timeout = cfg.HTTPTimeout
	}
	search := duckduckgo.NewClient(searchCfg)

	maxResults := cfg.SearchMaxResults
	if maxResults <= 0 {
		maxResults = 5
	}

	validator := tickervalidation.New(market, log)
	prices := stockprice.New(market, log)
	reports := financialreports.New(search, maxResults, log)
	company := companynews.New(search, maxResults, log)
	marketNews := marketnews.New(search, maxResults, log)
	financials := financialsummary.New(market, log)
	analyzer := sentiment.NewAnalyzer()

	ui := userinteraction.NewConsoleUserInteraction()

	container := &Container{
		Logger:          log,
		UserInteraction: ui,
		Supervisor: supervisor.New(
			validator, prices, reports, company, marketNews, financials,
			analyzer, ui, log,
		),
	}

	if cfg.Mode != ModeLLM {
		return container, nil
	}

	llmCfg := openrouter.DefaultConfig(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)
	llmCfg.Logger = log
	llm := openrouter.NewOpenRouterAdapter(llmCfg)

	tools := service.NewToolRegistry()
	registerFinanceTools(tools, validator, prices, search, financials, analyzer, maxResults)

	currentWeek, err := dates.WeekOf(time.Now(), 0)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to resolve current week: %w", err)
	}

	systemPrompt, err := prompts.GenerateSupervisorPrompt(
		prompts.SupervisorPromptTemplate,
		fmt.Sprintf("week_offset 0 is %s", currentWeek.Description()),
		tools,
	)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to render system prompt: %w", err)
	}

	container.TaskExecutor = executor.New(llm, tools, log, ui, systemPrompt)
	return container, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}

func registerFinanceTools(
	registry *service.ToolRegistryImpl,
	validator *tickervalidation.Agent,
	prices *stockprice.Agent,
	search output.SearchPort,
	financials *financialsummary.Agent,
	analyzer *sentiment.Analyzer,
	maxResults int,
) {
	registry.Register(tool.NewValidateTickerTool(validator))
	registry.Register(tool.NewStockPricesTool(prices))
	registry.Register(tool.NewSearchNewsTool(search, maxResults))
	registry.Register(tool.NewFinancialSummaryTool(financials))
	registry.Register(tool.NewSentimentTool(analyzer))
}
