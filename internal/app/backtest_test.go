package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"quantfolio/internal/domain"
	mock_repository "quantfolio/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stockItem(ticker string, weight float64) domain.PortfolioItem {
	return domain.PortfolioItem{
		Asset: domain.Asset{
			Ticker: ticker,
			Type:   domain.AssetType_Stock,
		},
		Weight: weight,
	}
}

func dailySeries(start time.Time, prices ...float64) []domain.HistoricalPricePoint {
	out := make([]domain.HistoricalPricePoint, len(prices))
	for i, p := range prices {
		out[i] = domain.HistoricalPricePoint{
			Date:     start.AddDate(0, 0, i),
			Close:    p,
			AdjClose: p,
		}
	}
	return out
}

func Test_Run(t *testing.T) {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	newHandler := func(ctrl *gomock.Controller) (BacktestHandler, *mock_repository.MockHistoricalPriceRepository, *mock_repository.MockSavedPortfolioRepository, *mock_repository.MockInterestRateRepository) {
		priceRepository := mock_repository.NewMockHistoricalPriceRepository(ctrl)
		savedPortfolioRepository := mock_repository.NewMockSavedPortfolioRepository(ctrl)
		interestRateRepository := mock_repository.NewMockInterestRateRepository(ctrl)
		handler := BacktestHandler{
			SavedPortfolioRepository: savedPortfolioRepository,
			PriceRepository:          priceRepository,
			InterestRateRepository:   interestRateRepository,
		}
		return handler, priceRepository, savedPortfolioRepository, interestRateRepository
	}

	t.Run("single benchmark end to end", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, priceRepository, _, interestRateRepository := newHandler(ctrl)

		priceRepository.EXPECT().List("AAPL", 12, false).Return(dailySeries(start, 100, 110, 121), nil)
		priceRepository.EXPECT().List("MSFT", 12, false).Return(dailySeries(start, 200, 200, 200), nil)
		priceRepository.EXPECT().List("SPY", 12, false).Return(dailySeries(start, 400, 404, 408), nil)
		interestRateRepository.EXPECT().GetRiskFreeRate().Return(0.04, nil)

		result, err := handler.Run(ctx, BacktestInput{
			Portfolio: []domain.PortfolioItem{
				stockItem("AAPL", 50),
				stockItem("MSFT", 50),
			},
			Months:          12,
			BenchmarkTicker: "SPY",
			ReturnType:      domain.ReturnType_Total,
		})
		require.NoError(t, err)

		require.Equal(t, []string{"2024-01-02", "2024-01-03", "2024-01-04"}, result.Dates)
		require.Equal(t, "SPY", result.BenchmarkTicker)

		// 50% AAPL doubles 21% over the window, 50% MSFT flat
		require.InDelta(t, 10000, result.PortfolioValues[0], 1e-9)
		require.InDelta(t, 10000*(1+0.21/2), result.PortfolioValues[2], 1e-9)
		require.InDelta(t, 10000*1.02, result.BenchmarkValues[2], 1e-9)

		require.InDelta(t, 0.21, result.AssetReturns["AAPL"], 1e-9)
		require.InDelta(t, 0, result.AssetReturns["MSFT"], 1e-9)

		require.InDelta(t, 1, result.CorrelationMatrix["AAPL"]["AAPL"], 1e-9)
		// MSFT never moves, so its correlation with anything is zero
		require.Zero(t, result.CorrelationMatrix["AAPL"]["MSFT"])

		require.InDelta(t, 10000, result.Metrics.TotalInvested, 1e-9)
		require.InDelta(t, 0.105, result.Metrics.TotalReturn, 1e-9)
		require.Greater(t, result.Metrics.CAGR, 0.0)
		require.Greater(t, result.Metrics.SharpeRatio, 0.0)
		require.Zero(t, result.Metrics.MaxDrawdown)
	})

	t.Run("unfetchable portfolio ticker is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, priceRepository, _, _ := newHandler(ctrl)

		priceRepository.EXPECT().List("AAPL", 12, false).Return(nil, fmt.Errorf("not found"))
		priceRepository.EXPECT().List("SPY", 12, false).Return(dailySeries(start, 400, 404), nil)

		_, err := handler.Run(ctx, BacktestInput{
			Portfolio:       []domain.PortfolioItem{stockItem("AAPL", 100)},
			Months:          12,
			BenchmarkTicker: "SPY",
		})
		require.ErrorContains(t, err, "failed to fetch data for: AAPL")
	})

	t.Run("unfetchable benchmark is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, priceRepository, _, _ := newHandler(ctrl)

		priceRepository.EXPECT().List("AAPL", 12, false).Return(dailySeries(start, 100, 110), nil)
		priceRepository.EXPECT().List("SPY", 12, false).Return(nil, fmt.Errorf("not found"))

		_, err := handler.Run(ctx, BacktestInput{
			Portfolio:       []domain.PortfolioItem{stockItem("AAPL", 100)},
			Months:          12,
			BenchmarkTicker: "SPY",
		})
		require.ErrorContains(t, err, "failed to fetch benchmark data for SPY")
	})

	t.Run("disjoint calendars are fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, priceRepository, _, _ := newHandler(ctrl)

		priceRepository.EXPECT().List("AAPL", 12, false).Return(dailySeries(start, 100, 110), nil)
		priceRepository.EXPECT().List("SPY", 12, false).Return(dailySeries(start.AddDate(0, 1, 0), 400, 404), nil)

		_, err := handler.Run(ctx, BacktestInput{
			Portfolio:       []domain.PortfolioItem{stockItem("AAPL", 100)},
			Months:          12,
			BenchmarkTicker: "SPY",
		})
		require.ErrorContains(t, err, "no overlapping trading days")
	})

	t.Run("empty portfolio is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _, _, _ := newHandler(ctrl)

		_, err := handler.Run(ctx, BacktestInput{
			Months:          12,
			BenchmarkTicker: "SPY",
		})
		require.ErrorContains(t, err, "empty portfolio")
	})

	t.Run("basket benchmark skips failed members", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, priceRepository, savedPortfolioRepository, interestRateRepository := newHandler(ctrl)

		id := uuid.New()
		savedPortfolioRepository.EXPECT().Get(id).Return(&domain.SavedPortfolio{
			ID: id,
			Assets: []domain.PortfolioItem{
				stockItem("VTI", 60),
				stockItem("DELISTED", 40),
			},
		}, nil)

		priceRepository.EXPECT().List("AAPL", 12, false).Return(dailySeries(start, 100, 110), nil)
		priceRepository.EXPECT().List("VTI", 12, false).Return(dailySeries(start, 200, 210), nil)
		priceRepository.EXPECT().List("DELISTED", 12, false).Return(nil, fmt.Errorf("no data"))
		interestRateRepository.EXPECT().GetRiskFreeRate().Return(0.04, nil)

		result, err := handler.Run(ctx, BacktestInput{
			Portfolio:       []domain.PortfolioItem{stockItem("AAPL", 100)},
			Months:          12,
			BenchmarkTicker: "PORT_" + id.String(),
		})
		require.NoError(t, err)

		require.Equal(t, "PORT_"+id.String(), result.BenchmarkTicker)
		// 60% of the basket in VTI, the failed member contributes nothing
		require.InDelta(t, 6000, result.BenchmarkValues[0], 1e-9)
		require.InDelta(t, 6300, result.BenchmarkValues[1], 1e-9)
	})

	t.Run("risk free rate falls back when the fetch fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, priceRepository, _, interestRateRepository := newHandler(ctrl)

		priceRepository.EXPECT().List("AAPL", 12, false).Return(dailySeries(start, 100, 110, 121), nil)
		priceRepository.EXPECT().List("SPY", 12, false).Return(dailySeries(start, 400, 404, 408), nil)
		interestRateRepository.EXPECT().GetRiskFreeRate().Return(0.0, fmt.Errorf("treasury api down"))

		result, err := handler.Run(ctx, BacktestInput{
			Portfolio:       []domain.PortfolioItem{stockItem("AAPL", 100)},
			Months:          12,
			BenchmarkTicker: "SPY",
		})
		require.NoError(t, err)

		expectedSharpe := (result.Metrics.CAGR - FallbackRiskFreeRate) / result.Metrics.Volatility
		require.InDelta(t, expectedSharpe, result.Metrics.SharpeRatio, 1e-9)
	})
}
