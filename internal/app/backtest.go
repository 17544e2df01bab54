package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"quantfolio/internal"
	"quantfolio/internal/calculator"
	"quantfolio/internal/domain"
	"quantfolio/internal/logger"
	"quantfolio/internal/repository"
)

// FallbackRiskFreeRate is substituted when the rate fetch fails.
const FallbackRiskFreeRate = 0.04

type BacktestHandler struct {
	SavedPortfolioRepository repository.SavedPortfolioRepository
	PriceRepository          repository.HistoricalPriceRepository
	InterestRateRepository   repository.InterestRateRepository
}

type BacktestInput struct {
	Portfolio       []domain.PortfolioItem
	Months          int
	Ytd             bool
	BenchmarkTicker string
	ReturnType      domain.ReturnType
	DCA             domain.DCAConfig
	Rebalance       domain.RebalanceConfig
}

type fetchResult struct {
	points []domain.HistoricalPricePoint
	err    error
}

// Run executes one full simulation: expand the portfolio, resolve the
// benchmark, fetch all price histories concurrently, align calendars,
// replay the day loop, then derive metrics. Each call is a pure
// transformation of its inputs; nothing persists between runs.
func (h BacktestHandler) Run(ctx context.Context, in BacktestInput) (*domain.SimulationResult, error) {
	log := logger.FromContext(ctx)
	profile := domain.ProfileFromContext(ctx)

	expander := internal.PortfolioExpander{
		SavedPortfolioRepository: h.SavedPortfolioRepository,
	}
	expanded, err := expander.ExpandPortfolio(in.Portfolio, 0)
	if err != nil {
		return nil, err
	}
	if len(expanded) == 0 {
		return nil, fmt.Errorf("cannot simulate an empty portfolio")
	}
	profile.Mark("expandPortfolio")

	resolver := internal.BenchmarkResolver{
		SavedPortfolioRepository: h.SavedPortfolioRepository,
		Expander:                 expander,
	}
	benchmark, err := resolver.Resolve(in.BenchmarkTicker)
	if err != nil {
		return nil, err
	}
	profile.Mark("resolveBenchmark")

	results := h.fetchAll(expanded, benchmark, in.Months, in.Ytd)
	profile.Mark("fetchPrices")

	series := map[string][]domain.HistoricalPricePoint{}
	failedTickers := []string{}
	for _, item := range expanded {
		result := results[item.Ticker]
		if result.err != nil || len(result.points) == 0 {
			failedTickers = append(failedTickers, item.Ticker)
			continue
		}
		series[item.Ticker] = result.points
	}
	if len(failedTickers) > 0 {
		return nil, fmt.Errorf("failed to fetch data for: %s", strings.Join(failedTickers, ", "))
	}

	var benchmarkSeries []domain.HistoricalPricePoint
	if benchmark.IsBasket() {
		// a basket benchmark member that fails to fetch is skipped, not
		// fatal - only the primary portfolio demands complete data
		for _, item := range benchmark.Items {
			if _, ok := series[item.Ticker]; ok {
				continue
			}
			result := results[item.Ticker]
			if result.err != nil || len(result.points) == 0 {
				log.Warnf("skipping benchmark component %s: no data", item.Ticker)
				continue
			}
			series[item.Ticker] = result.points
		}
		if len(benchmark.Items) > 0 {
			benchmarkSeries = series[benchmark.Items[0].Ticker]
		}
	} else {
		result := results[benchmark.Ticker]
		if result.err != nil || len(result.points) == 0 {
			return nil, fmt.Errorf("failed to fetch benchmark data for %s", benchmark.Ticker)
		}
		benchmarkSeries = result.points
	}

	aligned := internal.AlignPriceSeries(series, benchmarkSeries, in.ReturnType)
	if len(aligned.Dates) == 0 {
		return nil, fmt.Errorf("no overlapping trading days found between assets and benchmark")
	}
	profile.Mark("alignPrices")

	curves, err := internal.Simulate(internal.SimulationInput{
		Portfolio: expanded,
		Benchmark: benchmark,
		Aligned:   aligned,
		DCA:       in.DCA,
		Rebalance: in.Rebalance,
	})
	if err != nil {
		return nil, err
	}
	profile.Mark("simulate")

	riskFreeRate, err := h.InterestRateRepository.GetRiskFreeRate()
	if err != nil {
		log.Warnf("falling back to %.2f risk free rate: %v", FallbackRiskFreeRate, err)
		riskFreeRate = FallbackRiskFreeRate
	}

	result := h.assembleResult(in, expanded, benchmark, aligned, curves, riskFreeRate)
	profile.Mark("metrics")

	return result, nil
}

// fetchAll issues one concurrent fetch per required ticker: every
// expanded portfolio asset, plus either the benchmark ticker or any
// basket members not already covered. All fetches are awaited before
// alignment begins; there are no retries.
func (h BacktestHandler) fetchAll(
	expanded []domain.PortfolioItem,
	benchmark *internal.ResolvedBenchmark,
	months int,
	ytd bool,
) map[string]fetchResult {
	tickers := []string{}
	seen := map[string]bool{}
	add := func(ticker string) {
		if !seen[ticker] {
			seen[ticker] = true
			tickers = append(tickers, ticker)
		}
	}

	for _, item := range expanded {
		add(item.Ticker)
	}
	if benchmark.IsBasket() {
		for _, item := range benchmark.Items {
			add(item.Ticker)
		}
	} else {
		add(benchmark.Ticker)
	}

	results := map[string]fetchResult{}
	mu := sync.Mutex{}
	wg := sync.WaitGroup{}
	for _, ticker := range tickers {
		wg.Add(1)
		go func(ticker string) {
			defer wg.Done()
			points, err := h.PriceRepository.List(ticker, months, ytd)
			mu.Lock()
			results[ticker] = fetchResult{points: points, err: err}
			mu.Unlock()
		}(ticker)
	}
	wg.Wait()

	return results
}

func (h BacktestHandler) assembleResult(
	in BacktestInput,
	expanded []domain.PortfolioItem,
	benchmark *internal.ResolvedBenchmark,
	aligned *internal.AlignedPrices,
	curves *internal.SimulationCurves,
	riskFreeRate float64,
) *domain.SimulationResult {
	dates := make([]string, 0, len(aligned.Dates))
	for _, d := range aligned.Dates {
		dates = append(dates, d.Format(time.DateOnly))
	}

	assetReturns := map[string]float64{}
	assetDailyReturns := map[string][]float64{}
	for _, item := range expanded {
		prices := aligned.Prices[item.Ticker]
		assetDailyReturns[item.Ticker] = calculator.DailyReturns(prices)
		if prices[0] != 0 {
			assetReturns[item.Ticker] = (prices[len(prices)-1] - prices[0]) / prices[0]
		} else {
			assetReturns[item.Ticker] = 0
		}
	}

	correlationMatrix := map[string]map[string]float64{}
	for _, a := range expanded {
		if len(assetDailyReturns[a.Ticker]) == 0 {
			continue
		}
		correlationMatrix[a.Ticker] = map[string]float64{}
		for _, b := range expanded {
			if len(assetDailyReturns[b.Ticker]) == 0 {
				continue
			}
			if a.Ticker == b.Ticker {
				correlationMatrix[a.Ticker][b.Ticker] = 1
				continue
			}
			correlationMatrix[a.Ticker][b.Ticker] = calculator.Correlation(
				assetDailyReturns[a.Ticker],
				assetDailyReturns[b.Ticker],
			)
		}
	}

	return &domain.SimulationResult{
		Dates:             dates,
		PortfolioValues:   curves.PortfolioValues,
		BenchmarkValues:   curves.BenchmarkValues,
		AssetReturns:      assetReturns,
		CorrelationMatrix: correlationMatrix,
		BenchmarkTicker:   in.BenchmarkTicker,
		ReturnType:        in.ReturnType,
		Metrics:           h.computeMetrics(in, curves.PortfolioValues, aligned.Dates, curves.TotalInvested, riskFreeRate),
		BenchmarkMetrics:  h.computeMetrics(in, curves.BenchmarkValues, aligned.Dates, curves.TotalInvested, riskFreeRate),
	}
}

func (h BacktestHandler) computeMetrics(
	in BacktestInput,
	values []float64,
	dates []time.Time,
	totalInvested float64,
	riskFreeRate float64,
) domain.Metrics {
	finalBalance := values[len(values)-1]
	totalReturn := 0.0
	if totalInvested != 0 {
		totalReturn = (finalBalance - totalInvested) / totalInvested
	}

	// compound CAGR assumes a fixed capital base; once recurring
	// contributions are on, the linear approximation is used instead
	var cagr float64
	if in.DCA.Enabled {
		cagr = calculator.ContributionAdjustedCAGR(totalReturn, in.Months)
	} else {
		cagr = calculator.CAGR(internal.InitialCapital, finalBalance, len(dates))
	}

	volatility := calculator.AnnualizedVolatility(values)
	drawdown := calculator.MaxDrawdown(values, dates)

	return domain.Metrics{
		CAGR:             cagr,
		MaxDrawdown:      drawdown.MaxDrawdown,
		MaxDrawdownStart: drawdown.Start.Format(time.DateOnly),
		MaxDrawdownEnd:   drawdown.End.Format(time.DateOnly),
		MaxDrawdownDays:  drawdown.Days,
		Volatility:       volatility,
		SharpeRatio:      calculator.SharpeRatio(cagr, riskFreeRate, volatility),
		TotalReturn:      totalReturn,
		FinalBalance:     finalBalance,
		TotalInvested:    totalInvested,
	}
}
