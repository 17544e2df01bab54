package calculator

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"
)

// TradingDaysPerYear is the annualization basis used throughout.
const TradingDaysPerYear = 252

// DailyReturns computes r[i] = (v[i]-v[i-1])/v[i-1] over a value or
// price series. Output length is len(values)-1. A zero previous value
// is substituted with 0.01 so a degenerate series cannot produce Inf.
func DailyReturns(values []float64) []float64 {
	if len(values) < 2 {
		return []float64{}
	}

	returns := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev == 0 {
			prev = 0.01
		}
		returns = append(returns, (values[i]-prev)/prev)
	}
	return returns
}

// AnnualizedVolatility is the population stdev of daily returns scaled
// by sqrt(252). Returns 0 for series too short to have a return.
func AnnualizedVolatility(values []float64) float64 {
	returns := DailyReturns(values)
	if len(returns) == 0 {
		return 0
	}

	stdev, err := stats.StandardDeviation(returns)
	if err != nil || math.IsNaN(stdev) {
		return 0
	}
	return stdev * math.Sqrt(TradingDaysPerYear)
}

// Correlation is the Pearson correlation of two equal-length return
// series. Mismatched lengths, empty input, or zero variance on either
// side all resolve to 0 rather than an error.
func Correlation(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	r, err := stats.Pearson(a, b)
	if err != nil || math.IsNaN(r) {
		return 0
	}
	return r
}

// DrawdownDetails is the deepest peak-to-trough decline of a value
// curve. Start/End are the dates of the preceding peak and the trough;
// Days is their calendar-day difference, not a trading-day count.
type DrawdownDetails struct {
	MaxDrawdown float64
	Start       time.Time
	End         time.Time
	Days        int
}

// MaxDrawdown tracks the running peak and records the maximum
// (peak-value)/peak seen. A monotonically non-decreasing curve yields 0.
// dates must be parallel to values.
func MaxDrawdown(values []float64, dates []time.Time) DrawdownDetails {
	if len(values) == 0 || len(values) != len(dates) {
		return DrawdownDetails{}
	}

	peak := math.Inf(-1)
	peakIndex := 0
	maxDd := 0.0
	startIdx := 0
	endIdx := 0

	for i, v := range values {
		if v > peak {
			peak = v
			peakIndex = i
		}
		dd := (peak - v) / peak
		if dd > maxDd {
			maxDd = dd
			startIdx = peakIndex
			endIdx = i
		}
	}

	days := int(math.Ceil(dates[endIdx].Sub(dates[startIdx]).Hours() / 24))

	return DrawdownDetails{
		MaxDrawdown: maxDd,
		Start:       dates[startIdx],
		End:         dates[endIdx],
		Days:        days,
	}
}

// CAGR is the compound annual growth rate implied by initial/final
// value over numDays trading days. Degenerate input resolves to 0.
func CAGR(initial, final float64, numDays int) float64 {
	if initial == 0 || numDays == 0 {
		return 0
	}
	years := float64(numDays) / TradingDaysPerYear
	return math.Pow(final/initial, 1/years) - 1
}

// ContributionAdjustedCAGR linearly annualizes total return over the
// window. Compound CAGR is ill-defined once recurring contributions
// change the capital base mid-window, so the DCA path uses this
// approximation instead of the compound formula.
func ContributionAdjustedCAGR(totalReturn float64, months int) float64 {
	if months == 0 {
		return 0
	}
	return totalReturn / (float64(months) / 12)
}

// SharpeRatio is excess return per unit of volatility; 0 when the
// volatility is 0.
func SharpeRatio(cagr, riskFreeRate, volatility float64) float64 {
	if volatility == 0 {
		return 0
	}
	return (cagr - riskFreeRate) / volatility
}
