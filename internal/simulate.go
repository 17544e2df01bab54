package internal

import (
	"fmt"
	"strings"

	"quantfolio/internal/domain"
)

// InitialCapital is the notional starting balance for every simulation.
const InitialCapital = 10_000.0

type SimulationInput struct {
	Portfolio []domain.PortfolioItem
	Benchmark *ResolvedBenchmark
	Aligned   *AlignedPrices
	DCA       domain.DCAConfig
	Rebalance domain.RebalanceConfig
}

type SimulationCurves struct {
	PortfolioValues []float64
	BenchmarkValues []float64
	// TotalInvested is the capital contributed over the window: the
	// initial capital plus every recurring contribution that fired.
	TotalInvested float64
}

// simulationState is the fold state carried across the day loop:
// share counts per ticker (portfolio and benchmark tracked separately)
// plus total capital contributed so far.
type simulationState struct {
	shares                map[string]float64
	benchmarkShares       map[string]float64
	benchmarkSingleShares float64
	totalInvested         float64
}

type simulator struct {
	in                SimulationInput
	dcaInterval       int
	rebalanceInterval int
	state             simulationState
}

// Simulate replays the aligned calendar day by day. Each day applies, in
// order: the rebalance check, the contribution check, then valuation.
// Event timing is modulo the trading-day index; rebalancing applies to
// the primary portfolio only, contributions to both sides.
func Simulate(in SimulationInput) (*SimulationCurves, error) {
	missing := []string{}
	for _, item := range in.Portfolio {
		if _, ok := in.Aligned.Prices[item.Ticker]; !ok {
			missing = append(missing, item.Ticker)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing aligned price series for: %s", strings.Join(missing, ", "))
	}
	if len(in.Aligned.Dates) == 0 {
		return nil, fmt.Errorf("no trading days to simulate")
	}

	s := simulator{in: in}

	if in.DCA.Enabled {
		interval, err := in.DCA.Frequency.TradingDayInterval()
		if err != nil {
			return nil, fmt.Errorf("invalid contribution config: %w", err)
		}
		s.dcaInterval = interval
	}
	if in.Rebalance.Enabled {
		interval, err := in.Rebalance.Frequency.TradingDayInterval()
		if err != nil {
			return nil, fmt.Errorf("invalid rebalance config: %w", err)
		}
		s.rebalanceInterval = interval
	}

	s.initialize()

	curves := &SimulationCurves{
		PortfolioValues: make([]float64, 0, len(in.Aligned.Dates)),
		BenchmarkValues: make([]float64, 0, len(in.Aligned.Dates)),
	}
	for i := range in.Aligned.Dates {
		s.step(i)
		curves.PortfolioValues = append(curves.PortfolioValues, s.portfolioValue(i))
		curves.BenchmarkValues = append(curves.BenchmarkValues, s.benchmarkValue(i))
	}
	curves.TotalInvested = s.state.totalInvested

	return curves, nil
}

// initialize converts each asset's percentage weight of the initial
// capital into a share count at day-0 prices. The same conversion runs
// independently for the benchmark side.
func (s *simulator) initialize() {
	s.state = simulationState{
		shares:          map[string]float64{},
		benchmarkShares: map[string]float64{},
		totalInvested:   InitialCapital,
	}

	for _, item := range s.in.Portfolio {
		prices := s.in.Aligned.Prices[item.Ticker]
		allocation := InitialCapital * item.Weight / 100
		s.state.shares[item.Ticker] = allocation / prices[0]
	}

	if s.in.Benchmark.IsBasket() {
		for _, item := range s.in.Benchmark.Items {
			prices, ok := s.in.Aligned.Prices[item.Ticker]
			if !ok {
				continue
			}
			allocation := InitialCapital * item.Weight / 100
			s.state.benchmarkShares[item.Ticker] = allocation / prices[0]
		}
	} else {
		s.state.benchmarkSingleShares = InitialCapital / s.in.Aligned.BenchmarkPrices[0]
	}
}

func (s *simulator) step(i int) {
	if s.in.Rebalance.Enabled && i > 0 && i%s.rebalanceInterval == 0 {
		s.rebalance(i)
	}
	if s.in.DCA.Enabled && i > 0 && i%s.dcaInterval == 0 {
		s.contribute(i)
	}
}

// rebalance resets every asset's share count so its value fraction
// matches its target weight again, at day i's prices. No transaction
// costs are modeled.
func (s *simulator) rebalance(i int) {
	currentTotal := s.portfolioValue(i)
	for _, item := range s.in.Portfolio {
		targetValue := currentTotal * item.Weight / 100
		s.state.shares[item.Ticker] = targetValue / s.in.Aligned.Prices[item.Ticker][i]
	}
}

// contribute splits the configured deposit across assets by weight at
// day i's prices, on both the portfolio and benchmark sides.
func (s *simulator) contribute(i int) {
	deposit := s.in.DCA.Amount
	s.state.totalInvested += deposit

	for _, item := range s.in.Portfolio {
		amountToBuy := deposit * item.Weight / 100
		s.state.shares[item.Ticker] += amountToBuy / s.in.Aligned.Prices[item.Ticker][i]
	}

	if s.in.Benchmark.IsBasket() {
		for _, item := range s.in.Benchmark.Items {
			prices, ok := s.in.Aligned.Prices[item.Ticker]
			if !ok {
				continue
			}
			amountToBuy := deposit * item.Weight / 100
			s.state.benchmarkShares[item.Ticker] += amountToBuy / prices[i]
		}
	} else {
		s.state.benchmarkSingleShares += deposit / s.in.Aligned.BenchmarkPrices[i]
	}
}

func (s *simulator) portfolioValue(i int) float64 {
	total := 0.0
	for _, item := range s.in.Portfolio {
		total += s.state.shares[item.Ticker] * s.in.Aligned.Prices[item.Ticker][i]
	}
	return total
}

func (s *simulator) benchmarkValue(i int) float64 {
	if !s.in.Benchmark.IsBasket() {
		return s.state.benchmarkSingleShares * s.in.Aligned.BenchmarkPrices[i]
	}

	total := 0.0
	for _, item := range s.in.Benchmark.Items {
		prices, ok := s.in.Aligned.Prices[item.Ticker]
		if !ok {
			continue
		}
		total += s.state.benchmarkShares[item.Ticker] * prices[i]
	}
	return total
}
