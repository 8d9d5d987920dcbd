package output

import (
	"context"

	"finance-qa-agent/internal/domain/entity"
)

type SearchPort interface {
	// Search runs a web search and returns up to maxResults articles.
	Search(ctx context.Context, query string, maxResults int) ([]entity.Article, error)
}
