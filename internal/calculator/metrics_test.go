package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_DailyReturns(t *testing.T) {
	t.Run("basic series", func(t *testing.T) {
		returns := DailyReturns([]float64{100, 110, 99})
		require.Len(t, returns, 2)
		require.InDelta(t, 0.1, returns[0], 1e-9)
		require.InDelta(t, -0.1, returns[1], 1e-9)
	})

	t.Run("short series", func(t *testing.T) {
		require.Empty(t, DailyReturns([]float64{100}))
		require.Empty(t, DailyReturns(nil))
	})

	t.Run("zero previous value stays finite", func(t *testing.T) {
		returns := DailyReturns([]float64{0, 50})
		require.Len(t, returns, 1)
		require.False(t, math.IsInf(returns[0], 0))
	})
}

func Test_AnnualizedVolatility(t *testing.T) {
	t.Run("constant series has zero volatility", func(t *testing.T) {
		require.Zero(t, AnnualizedVolatility([]float64{100, 100, 100}))
	})

	t.Run("alternating series", func(t *testing.T) {
		// daily returns are +0.1, then -1/11; population stdev of the
		// pair is half their spread
		vol := AnnualizedVolatility([]float64{100, 110, 100})
		r1, r2 := 0.1, -1.0/11
		expected := (r1 - r2) / 2 * math.Sqrt(TradingDaysPerYear)
		require.InDelta(t, expected, vol, 1e-9)
	})

	t.Run("too short", func(t *testing.T) {
		require.Zero(t, AnnualizedVolatility([]float64{100}))
	})
}

func Test_Correlation(t *testing.T) {
	a := []float64{0.01, -0.02, 0.03, 0.01}

	t.Run("self correlation is one", func(t *testing.T) {
		require.InDelta(t, 1, Correlation(a, a), 1e-9)
	})

	t.Run("exact inverse is minus one", func(t *testing.T) {
		b := make([]float64, len(a))
		for i, v := range a {
			b[i] = -v
		}
		require.InDelta(t, -1, Correlation(a, b), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		b := []float64{0.02, 0.01, -0.01, 0.005}
		require.InDelta(t, Correlation(a, b), Correlation(b, a), 1e-12)
	})

	t.Run("zero variance resolves to zero", func(t *testing.T) {
		flat := []float64{0.01, 0.01, 0.01, 0.01}
		require.Zero(t, Correlation(a, flat))
	})

	t.Run("length mismatch resolves to zero", func(t *testing.T) {
		require.Zero(t, Correlation(a, a[:2]))
		require.Zero(t, Correlation(nil, nil))
	})
}

func Test_MaxDrawdown(t *testing.T) {
	datesFor := func(n int) []time.Time {
		out := make([]time.Time, n)
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := range out {
			out[i] = start.AddDate(0, 0, i)
		}
		return out
	}

	t.Run("monotone curve has zero drawdown", func(t *testing.T) {
		values := []float64{100, 105, 110, 120}
		dd := MaxDrawdown(values, datesFor(len(values)))
		require.Zero(t, dd.MaxDrawdown)
	})

	t.Run("deepest decline wins with peak and trough dates", func(t *testing.T) {
		values := []float64{100, 120, 90, 110, 100}
		dates := datesFor(len(values))

		dd := MaxDrawdown(values, dates)
		require.InDelta(t, 0.25, dd.MaxDrawdown, 1e-9)
		require.Equal(t, dates[1], dd.Start)
		require.Equal(t, dates[2], dd.End)
		require.Equal(t, 1, dd.Days)
	})

	t.Run("later deeper drawdown replaces earlier one", func(t *testing.T) {
		values := []float64{100, 90, 100, 150, 75}
		dates := datesFor(len(values))

		dd := MaxDrawdown(values, dates)
		require.InDelta(t, 0.5, dd.MaxDrawdown, 1e-9)
		require.Equal(t, dates[3], dd.Start)
		require.Equal(t, dates[4], dd.End)
	})

	t.Run("empty input", func(t *testing.T) {
		require.Zero(t, MaxDrawdown(nil, nil).MaxDrawdown)
	})
}

func Test_CAGR(t *testing.T) {
	t.Run("doubling over one trading year", func(t *testing.T) {
		require.InDelta(t, 1.0, CAGR(100, 200, TradingDaysPerYear), 1e-9)
	})

	t.Run("doubling over two trading years", func(t *testing.T) {
		require.InDelta(t, math.Sqrt(2)-1, CAGR(100, 200, 2*TradingDaysPerYear), 1e-9)
	})

	t.Run("degenerate input", func(t *testing.T) {
		require.Zero(t, CAGR(0, 200, 252))
		require.Zero(t, CAGR(100, 200, 0))
	})
}

func Test_ContributionAdjustedCAGR(t *testing.T) {
	t.Run("linear annualization", func(t *testing.T) {
		require.InDelta(t, 0.2, ContributionAdjustedCAGR(0.1, 6), 1e-9)
		require.InDelta(t, 0.05, ContributionAdjustedCAGR(0.1, 24), 1e-9)
	})

	t.Run("zero months", func(t *testing.T) {
		require.Zero(t, ContributionAdjustedCAGR(0.1, 0))
	})
}

func Test_SharpeRatio(t *testing.T) {
	t.Run("excess return over volatility", func(t *testing.T) {
		require.InDelta(t, 0.5, SharpeRatio(0.12, 0.04, 0.16), 1e-9)
	})

	t.Run("zero volatility", func(t *testing.T) {
		require.Zero(t, SharpeRatio(0.12, 0.04, 0))
	})
}
