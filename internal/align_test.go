package internal

import (
	"testing"
	"time"

	"quantfolio/internal/domain"

	"github.com/stretchr/testify/require"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return d
}

func pricePoint(t *testing.T, date string, close, adjClose float64) domain.HistoricalPricePoint {
	return domain.HistoricalPricePoint{
		Date:     day(t, date),
		Close:    close,
		AdjClose: adjClose,
	}
}

func Test_AlignPriceSeries(t *testing.T) {
	t.Run("keeps only dates every series covers", func(t *testing.T) {
		series := map[string][]domain.HistoricalPricePoint{
			"AAPL": {
				pricePoint(t, "2024-01-02", 100, 100),
				pricePoint(t, "2024-01-03", 101, 101),
				pricePoint(t, "2024-01-04", 102, 102),
			},
			"TSM": {
				// missing 2024-01-03, a regional holiday
				pricePoint(t, "2024-01-02", 50, 50),
				pricePoint(t, "2024-01-04", 52, 52),
			},
		}
		benchmark := []domain.HistoricalPricePoint{
			pricePoint(t, "2024-01-02", 400, 400),
			pricePoint(t, "2024-01-03", 401, 401),
			pricePoint(t, "2024-01-04", 402, 402),
		}

		out := AlignPriceSeries(series, benchmark, domain.ReturnType_Total)

		require.Equal(t, []time.Time{day(t, "2024-01-02"), day(t, "2024-01-04")}, out.Dates)
		require.Equal(t, []float64{100, 102}, out.Prices["AAPL"])
		require.Equal(t, []float64{50, 52}, out.Prices["TSM"])
		require.Equal(t, []float64{400, 402}, out.BenchmarkPrices)
	})

	t.Run("benchmark calendar is the reference", func(t *testing.T) {
		series := map[string][]domain.HistoricalPricePoint{
			"AAPL": {
				pricePoint(t, "2024-01-02", 100, 100),
				pricePoint(t, "2024-01-03", 101, 101),
			},
		}
		// benchmark never traded on 2024-01-03
		benchmark := []domain.HistoricalPricePoint{
			pricePoint(t, "2024-01-02", 400, 400),
		}

		out := AlignPriceSeries(series, benchmark, domain.ReturnType_Total)

		require.Equal(t, []time.Time{day(t, "2024-01-02")}, out.Dates)
	})

	t.Run("price return type uses unadjusted close", func(t *testing.T) {
		series := map[string][]domain.HistoricalPricePoint{
			"AAPL": {pricePoint(t, "2024-01-02", 100, 95)},
		}
		benchmark := []domain.HistoricalPricePoint{
			pricePoint(t, "2024-01-02", 400, 390),
		}

		total := AlignPriceSeries(series, benchmark, domain.ReturnType_Total)
		require.Equal(t, []float64{95}, total.Prices["AAPL"])
		require.Equal(t, []float64{390}, total.BenchmarkPrices)

		price := AlignPriceSeries(series, benchmark, domain.ReturnType_Price)
		require.Equal(t, []float64{100}, price.Prices["AAPL"])
		require.Equal(t, []float64{400}, price.BenchmarkPrices)
	})

	t.Run("disjoint calendars produce empty result", func(t *testing.T) {
		series := map[string][]domain.HistoricalPricePoint{
			"AAPL": {pricePoint(t, "2024-01-02", 100, 100)},
		}
		benchmark := []domain.HistoricalPricePoint{
			pricePoint(t, "2024-01-03", 400, 400),
		}

		out := AlignPriceSeries(series, benchmark, domain.ReturnType_Total)

		require.Empty(t, out.Dates)
		require.Empty(t, out.BenchmarkPrices)
	})
}
