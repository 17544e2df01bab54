package domain

import "fmt"

// Frequency is the cadence for recurring contributions and rebalancing.
type Frequency string

const (
	Frequency_Weekly       Frequency = "WEEKLY"
	Frequency_BiWeekly     Frequency = "BI_WEEKLY"
	Frequency_Monthly      Frequency = "MONTHLY"
	Frequency_Quarterly    Frequency = "QUARTERLY"
	Frequency_SemiAnnually Frequency = "SEMI_ANNUALLY"
	Frequency_Annually     Frequency = "ANNUALLY"
)

func NewFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	switch f {
	case Frequency_Weekly, Frequency_BiWeekly, Frequency_Monthly,
		Frequency_Quarterly, Frequency_SemiAnnually, Frequency_Annually:
		return f, nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

// TradingDayInterval is the approximate number of trading days between
// events at this frequency. Event timing is modulo this interval against
// the trading-day index, not the calendar, so market holidays shift the
// effective event date.
func (f Frequency) TradingDayInterval() (int, error) {
	switch f {
	case Frequency_Weekly:
		return 5, nil
	case Frequency_BiWeekly:
		return 10, nil
	case Frequency_Monthly:
		return 21, nil
	case Frequency_Quarterly:
		return 63, nil
	case Frequency_SemiAnnually:
		return 126, nil
	case Frequency_Annually:
		return 252, nil
	}
	return 0, fmt.Errorf("unknown frequency %q", f)
}

// DCAConfig controls recurring fixed-amount contributions.
type DCAConfig struct {
	Enabled   bool      `json:"enabled"`
	Amount    float64   `json:"amount"`
	Frequency Frequency `json:"frequency"`
}

// RebalanceConfig controls periodic resets back to target weights.
type RebalanceConfig struct {
	Enabled   bool      `json:"enabled"`
	Frequency Frequency `json:"frequency"`
}
