package api

import (
	"testing"

	"quantfolio/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_toBacktestInput(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		input, err := toBacktestInput(BacktestRequest{
			Portfolio: []PortfolioItemRequest{
				{Ticker: "AAPL", Weight: 100},
			},
		})
		require.NoError(t, err)

		require.Equal(t, 12, input.Months)
		require.Equal(t, "SPY", input.BenchmarkTicker)
		require.Equal(t, domain.ReturnType_Total, input.ReturnType)
		require.False(t, input.DCA.Enabled)
		require.False(t, input.Rebalance.Enabled)
		require.Equal(t, domain.AssetType_Stock, input.Portfolio[0].Type)
	})

	t.Run("empty portfolio rejected", func(t *testing.T) {
		_, err := toBacktestInput(BacktestRequest{})
		require.ErrorContains(t, err, "at least one asset")
	})

	t.Run("unknown frequency rejected", func(t *testing.T) {
		_, err := toBacktestInput(BacktestRequest{
			Portfolio: []PortfolioItemRequest{{Ticker: "AAPL", Weight: 100}},
			DcaConfig: &FrequencyConfigRequest{
				Enabled:   true,
				Amount:    100,
				Frequency: "FORTNIGHTLY",
			},
		})
		require.ErrorContains(t, err, "invalid dca config")
	})

	t.Run("price return type", func(t *testing.T) {
		input, err := toBacktestInput(BacktestRequest{
			Portfolio:  []PortfolioItemRequest{{Ticker: "AAPL", Weight: 100}},
			ReturnType: "price",
		})
		require.NoError(t, err)
		require.Equal(t, domain.ReturnType_Price, input.ReturnType)
	})

	t.Run("disabled configs stay disabled", func(t *testing.T) {
		input, err := toBacktestInput(BacktestRequest{
			Portfolio: []PortfolioItemRequest{{Ticker: "AAPL", Weight: 100}},
			RebalanceConfig: &FrequencyConfigRequest{
				Enabled:   false,
				Frequency: "MONTHLY",
			},
		})
		require.NoError(t, err)
		require.False(t, input.Rebalance.Enabled)
	})
}
