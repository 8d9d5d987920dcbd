package stockprice

import (
	"context"
	"fmt"

	"finance-qa-agent/internal/application/port/output"
	"finance-qa-agent/internal/domain/dates"
	"finance-qa-agent/internal/domain/entity"
)

// Agent fetches daily OHLCV bars for one analysis week.
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

// GetPrices returns the week's price series. An empty week is not an error;
// the series carries an explanatory summary instead.
func (a *Agent) GetPrices(ctx context.Context, symbol string, week dates.Week) (entity.PriceSeries, error) {
	a.logger.Debug("Fetching stock prices", "symbol", symbol, "start", week.Start(), "end", week.End())

	points, err := a.market.DailyPrices(ctx, symbol, week.Monday, week.FetchEnd())
	if err != nil {
		return entity.PriceSeries{}, fmt.Errorf("fetch daily prices: %w", err)
	}

	if len(points) == 0 {
		return entity.PriceSeries{
			Data:    []entity.PricePoint{},
			Summary: "No stock price data found for the period.",
		}, nil
	}

	first := points[0]
	last := points[len(points)-1]
	summary := fmt.Sprintf("Retrieved %d trading days for %s (%s to %s).", len(points), symbol, first.Date, last.Date)
	if first.Open != 0 {
		change := (last.Close - first.Open) / first.Open * 100
		summary += fmt.Sprintf(" Moved from open %.2f to close %.2f (%+.2f%%).", first.Open, last.Close, change)
	}

	a.logger.Info("Stock prices fetched", "symbol", symbol, "days", len(points))

	return entity.PriceSeries{
		Data:    points,
		Summary: summary,
	}, nil
}
