package internal

import (
	"sort"
	"time"

	"quantfolio/internal/domain"
)

// AlignedPrices is a gap-free trading calendar with parallel price
// slices per ticker. Prices[ticker][i] is the price on Dates[i].
type AlignedPrices struct {
	Dates           []time.Time
	Prices          map[string][]float64
	BenchmarkPrices []float64
}

// AlignPriceSeries intersects per-ticker daily series onto the
// benchmark's calendar, which is deliberately the reference set: the
// benchmark is presumed the most conservative data source. A date
// survives only when the benchmark and every ticker have a point on it;
// there is no forward-fill or interpolation. An empty calendar (e.g.
// mismatched regional trading calendars) yields an empty result.
func AlignPriceSeries(
	series map[string][]domain.HistoricalPricePoint,
	benchmark []domain.HistoricalPricePoint,
	returnType domain.ReturnType,
) *AlignedPrices {
	benchmarkByDate := map[time.Time]float64{}
	benchmarkDates := []time.Time{}
	for _, p := range benchmark {
		if _, ok := benchmarkByDate[p.Date]; !ok {
			benchmarkDates = append(benchmarkDates, p.Date)
		}
		benchmarkByDate[p.Date] = p.PriceFor(returnType)
	}
	sort.Slice(benchmarkDates, func(i, j int) bool {
		return benchmarkDates[i].Before(benchmarkDates[j])
	})

	pricesByDate := map[string]map[time.Time]float64{}
	for ticker, points := range series {
		pricesByDate[ticker] = map[time.Time]float64{}
		for _, p := range points {
			pricesByDate[ticker][p.Date] = p.PriceFor(returnType)
		}
	}

	out := &AlignedPrices{
		Prices: map[string][]float64{},
	}
	for ticker := range series {
		out.Prices[ticker] = []float64{}
	}

	for _, date := range benchmarkDates {
		allTickersHaveData := true
		for ticker := range series {
			if _, ok := pricesByDate[ticker][date]; !ok {
				allTickersHaveData = false
				break
			}
		}
		if !allTickersHaveData {
			continue
		}

		out.Dates = append(out.Dates, date)
		out.BenchmarkPrices = append(out.BenchmarkPrices, benchmarkByDate[date])
		for ticker := range series {
			out.Prices[ticker] = append(out.Prices[ticker], pricesByDate[ticker][date])
		}
	}

	return out
}
