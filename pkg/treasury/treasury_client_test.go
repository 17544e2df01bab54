package treasury_client

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_GetRate(t *testing.T) {
	m := InterestRateMap{
		Rates: map[int]float64{
			1:   0.05,
			12:  0.045,
			120: 0.04,
		},
	}

	t.Run("exact duration", func(t *testing.T) {
		rate, err := m.GetRate(120)
		require.NoError(t, err)
		require.InDelta(t, 0.04, rate, 1e-9)
	})

	t.Run("between durations", func(t *testing.T) {
		rate, err := m.GetRate(60)
		require.NoError(t, err)
		require.InDelta(t, (0.045+0.04)/2, rate, 1e-9)
	})

	t.Run("below shortest duration", func(t *testing.T) {
		rate, err := m.GetRate(0)
		require.NoError(t, err)
		require.InDelta(t, 0.05, rate, 1e-9)
	})

	t.Run("beyond longest duration", func(t *testing.T) {
		rate, err := m.GetRate(360)
		require.NoError(t, err)
		require.InDelta(t, 0.04, rate, 1e-9)
	})

	t.Run("empty map", func(t *testing.T) {
		_, err := InterestRateMap{Rates: map[int]float64{}}.GetRate(12)
		require.Error(t, err)
	})
}

func Test_interestRateMonthsFromApi(t *testing.T) {
	months, err := interestRateMonthsFromApi("yield_3m")
	require.NoError(t, err)
	require.Equal(t, 3, months)

	months, err = interestRateMonthsFromApi("yield_10y")
	require.NoError(t, err)
	require.Equal(t, 120, months)
}
