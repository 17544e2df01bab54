package repository

import (
	"fmt"
	"time"

	"quantfolio/internal/domain"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
)

// HistoricalPriceRepository serves daily candles and quotes from the
// upstream market data API. One List call covers one ticker; callers fan
// out concurrently for multi-asset requests.
type HistoricalPriceRepository interface {
	List(ticker string, months int, ytd bool) ([]domain.HistoricalPricePoint, error)
	Quote(ticker string) (*domain.Quote, error)
}

func NewHistoricalPriceRepository() HistoricalPriceRepository {
	return historicalPriceRepositoryHandler{}
}

type historicalPriceRepositoryHandler struct{}

func (h historicalPriceRepositoryHandler) List(ticker string, months int, ytd bool) ([]domain.HistoricalPricePoint, error) {
	end := time.Now().UTC()
	var start time.Time
	if ytd {
		start = time.Date(end.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	} else {
		start = end.AddDate(0, -months, 0)
	}

	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   ticker,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	points := []domain.HistoricalPricePoint{}
	for iter.Next() {
		bar := iter.Bar()
		ts := time.Unix(int64(bar.Timestamp), 0).UTC()
		points = append(points, domain.HistoricalPricePoint{
			// truncate the exchange timestamp to the calendar day
			Date:     time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
			Open:     bar.Open.InexactFloat64(),
			High:     bar.High.InexactFloat64(),
			Low:      bar.Low.InexactFloat64(),
			Close:    bar.Close.InexactFloat64(),
			AdjClose: bar.AdjClose.InexactFloat64(),
			Volume:   int64(bar.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", ticker, err)
	}

	return points, nil
}

func (h historicalPriceRepositoryHandler) Quote(ticker string) (*domain.Quote, error) {
	q, err := equity.Get(ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", ticker, err)
	}
	if q == nil {
		return nil, fmt.Errorf("no quote found for %s", ticker)
	}

	return &domain.Quote{
		Ticker:        q.Symbol,
		Name:          q.ShortName,
		Price:         q.RegularMarketPrice,
		Change:        q.RegularMarketChange,
		ChangePercent: q.RegularMarketChangePercent,
		MarketCap:     q.MarketCap,
		Volume:        int64(q.RegularMarketVolume),
	}, nil
}
