package internal

import (
	"fmt"
	"strings"

	"quantfolio/internal/domain"
	"quantfolio/internal/repository"

	"github.com/google/uuid"
)

// SavedPortfolioBenchmarkPrefix marks a benchmark identifier as a saved
// portfolio used as a basket benchmark, rather than a market ticker.
const SavedPortfolioBenchmarkPrefix = "PORT_"

// ResolvedBenchmark is either a single market ticker (Items nil) or a
// basket of weighted assets the engine tracks like a second portfolio.
type ResolvedBenchmark struct {
	Ticker string
	Items  []domain.PortfolioItem
}

func (b ResolvedBenchmark) IsBasket() bool {
	return b.Items != nil
}

type BenchmarkResolver struct {
	SavedPortfolioRepository repository.SavedPortfolioRepository
	Expander                 PortfolioExpander
}

func (r BenchmarkResolver) Resolve(benchmarkTicker string) (*ResolvedBenchmark, error) {
	if !strings.HasPrefix(benchmarkTicker, SavedPortfolioBenchmarkPrefix) {
		return &ResolvedBenchmark{Ticker: benchmarkTicker}, nil
	}

	idStr := strings.TrimPrefix(benchmarkTicker, SavedPortfolioBenchmarkPrefix)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid saved portfolio benchmark %q: %w", benchmarkTicker, err)
	}

	saved, err := r.SavedPortfolioRepository.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve benchmark %q: %w", benchmarkTicker, err)
	}
	if saved == nil {
		return nil, fmt.Errorf("benchmark portfolio %s not found", id)
	}

	items, err := r.Expander.ExpandPortfolio(saved.Assets, 0)
	if err != nil {
		return nil, err
	}

	return &ResolvedBenchmark{
		Ticker: benchmarkTicker,
		Items:  items,
	}, nil
}
