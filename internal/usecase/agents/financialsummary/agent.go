package financialsummary

import (
	"context"
	"fmt"

	"finance-qa-agent/internal/application/port/output"
	"finance-qa-agent/internal/domain/entity"
)

// Agent fetches key statistics and quarterly earnings for a ticker.
type Agent struct {
	market output.MarketDataPort
	logger output.LoggerPort
}

func New(market output.MarketDataPort, logger output.LoggerPort) *Agent {
	return &Agent{
		market: market,
		logger: logger,
	}
}

func (a *Agent) GetSummary(ctx context.Context, symbol string) (*entity.FinancialSummary, error) {
	a.logger.Debug("Fetching financial summary", "symbol", symbol)

	summary, err := a.market.QuoteSummary(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch quote summary: %w", err)
	}

	a.logger.Info("Financial summary fetched", "symbol", symbol, "quarters", len(summary.QuarterlyEarnings))
	return summary, nil
}
