package repository

import (
	"fmt"
	"time"

	treasury_client "quantfolio/pkg/treasury"
)

// tenYearMonths is the yield curve point used as the risk-free proxy.
const tenYearMonths = 120

type InterestRateRepository interface {
	// GetRiskFreeRate returns the current 10y treasury yield as a
	// decimal fraction, e.g. 0.042.
	GetRiskFreeRate() (float64, error)
}

type InterestRateRepositoryHandler struct{}

func (h InterestRateRepositoryHandler) GetRiskFreeRate() (float64, error) {
	// walk back a few days to cover weekends and market holidays
	var lastErr error
	for daysBack := 0; daysBack < 7; daysBack++ {
		date := time.Now().UTC().AddDate(0, 0, -daysBack)
		rates, err := treasury_client.GetInterestRatesOnDay(date)
		if err != nil {
			lastErr = err
			continue
		}
		rate, err := rates.GetRate(tenYearMonths)
		if err != nil {
			lastErr = err
			continue
		}
		return rate, nil
	}

	return 0, fmt.Errorf("failed to get risk free rate: %w", lastErr)
}
