package marketnews

import (
	"context"
	"fmt"

	"finance-qa-agent/internal/application/port/output"
	"finance-qa-agent/internal/domain/entity"
)

// Agent finds general market news for a described period.
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

func (a *Agent) GetNews(ctx context.Context, periodDescription string) ([]entity.Article, error) {
	query := fmt.Sprintf(
		"financial market news %s OR stock market outlook %s OR economic trends %s",
		periodDescription, periodDescription, periodDescription,
	)

	a.logger.Debug("Searching market news", "period", periodDescription)

	articles, err := a.search.Search(ctx, query, a.maxResults)
	if err != nil {
		return nil, fmt.Errorf("search market news: %w", err)
	}

	a.logger.Info("Market news search completed", "period", periodDescription, "results", len(articles))
	return articles, nil
}
