package companynews

import (
	"context"
	"fmt"

	"finance-qa-agent/internal/application/port/output"
	"finance-qa-agent/internal/domain/entity"
)

// Agent finds company-specific news for a described period. The query
// excludes earnings phrasing so routine report coverage does not crowd out
// actual news.
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

func (a *Agent) GetNews(ctx context.Context, companyName, symbol, periodDescription string) ([]entity.Article, error) {
	query := fmt.Sprintf(
		`%s OR %s company news %s -"earnings report" -"financial results" -"annual report"`,
		companyName, symbol, periodDescription,
	)

	a.logger.Debug("Searching company news", "symbol", symbol, "period", periodDescription)

	articles, err := a.search.Search(ctx, query, a.maxResults)
	if err != nil {
		return nil, fmt.Errorf("search company news: %w", err)
	}

	a.logger.Info("Company news search completed", "symbol", symbol, "results", len(articles))
	return articles, nil
}
