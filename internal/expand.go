package internal

import (
	"fmt"

	"quantfolio/internal/domain"
	"quantfolio/internal/repository"
)

// maxExpansionDepth bounds nested portfolio expansion. Saved portfolios
// are not validated against cyclic references at save time, so anything
// deeper than legitimate nesting is treated as a cycle and contributes
// nothing.
const maxExpansionDepth = 5

type PortfolioExpander struct {
	SavedPortfolioRepository repository.SavedPortfolioRepository
}

// ExpandPortfolio resolves portfolio-as-asset references into a flat
// list of leaf tickers, recursively. Duplicate tickers are merged by
// summing weight, and nested leaf weights are scaled by the parent
// item's weight / 100. Call with depth 0.
func (e PortfolioExpander) ExpandPortfolio(items []domain.PortfolioItem, depth int) ([]domain.PortfolioItem, error) {
	if depth > maxExpansionDepth {
		return []domain.PortfolioItem{}, nil
	}

	expanded := []domain.PortfolioItem{}
	indexByTicker := map[string]int{}
	merge := func(item domain.PortfolioItem) {
		if i, ok := indexByTicker[item.Ticker]; ok {
			expanded[i].Weight += item.Weight
			return
		}
		indexByTicker[item.Ticker] = len(expanded)
		expanded = append(expanded, item)
	}

	for _, item := range items {
		if !item.IsPortfolioReference() {
			merge(item)
			continue
		}

		saved, err := e.SavedPortfolioRepository.Get(*item.PortfolioID)
		if err != nil {
			return nil, fmt.Errorf("failed to expand portfolio reference %s: %w", *item.PortfolioID, err)
		}
		if saved == nil {
			// missing reference contributes nothing for this branch
			continue
		}

		nested, err := e.ExpandPortfolio(saved.Assets, depth+1)
		if err != nil {
			return nil, err
		}
		for _, sub := range nested {
			sub.Weight = item.Weight / 100 * sub.Weight
			merge(sub)
		}
	}

	return expanded, nil
}
