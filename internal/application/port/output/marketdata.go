package output

import (
	"context"
	"errors"
	"time"

	"finance-qa-agent/internal/domain/entity"
)

// ErrTickerNotFound is returned by Quote when the finance API knows nothing
// about the requested symbol.
var ErrTickerNotFound = errors.New("ticker not found")

type MarketDataPort interface {
	// Quote resolves a ticker symbol to its company identity.
	Quote(ctx context.Context, symbol string) (*entity.Company, error)

	// DailyPrices returns daily OHLCV bars for [start, end). The end date is
	// exclusive, matching the upstream chart API.
	DailyPrices(ctx context.Context, symbol string, start, end time.Time) ([]entity.PricePoint, error)

	// QuoteSummary returns key statistics and quarterly earnings for a symbol.
	QuoteSummary(ctx context.Context, symbol string) (*entity.FinancialSummary, error)
}
