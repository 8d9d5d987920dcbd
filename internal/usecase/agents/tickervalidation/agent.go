package tickervalidation

import (
	"context"
	"fmt"
	"strings"

	"finance-qa-agent/internal/application/port/output"
	"finance-qa-agent/internal/domain/entity"
)

// Agent confirms a ticker symbol exists and resolves its company identity.
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

func (a *Agent) Validate(ctx context.Context, symbol string) (*entity.Company, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, fmt.Errorf("ticker symbol is empty")
	}

	a.logger.Debug("Validating ticker", "symbol", symbol)

	company, err := a.market.Quote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	// Quote endpoints occasionally return the bare symbol with no names;
	// the symbol itself then serves as the display name downstream.
	if company.Symbol == "" {
		company.Symbol = symbol
	}

	a.logger.Info("Ticker validated", "symbol", company.Symbol, "company", company.Name())
	return company, nil
}
