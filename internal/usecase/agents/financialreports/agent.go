package financialreports

import (
	"context"
	"fmt"

	"finance-qa-agent/internal/application/port/output"
	"finance-qa-agent/internal/domain/entity"
)

// Agent finds links to financial and earnings reports for a company and year.
type Agent struct {
	search     output.SearchPort
	maxResults int
	logger     output.LoggerPort
}

func New(search output.SearchPort, maxResults int, logger output.LoggerPort) *Agent {
	return &Agent{
		search:     search,
		maxResults: maxResults,
		logger:     logger,
	}
}

func (a *Agent) GetReports(ctx context.Context, companyName, symbol, year string) ([]entity.Article, error) {
	query := fmt.Sprintf(
		"%s OR %s financial results %s OR earnings report %s OR annual report %s investor relations %s",
		companyName, symbol, year, year, year, year,
	)

	a.logger.Debug("Searching financial reports", "symbol", symbol, "year", year)

	articles, err := a.search.Search(ctx, query, a.maxResults)
	if err != nil {
		return nil, fmt.Errorf("search financial reports: %w", err)
	}

	a.logger.Info("Financial reports search completed", "symbol", symbol, "results", len(articles))
	return articles, nil
}
