package domain

import "time"

// HistoricalPricePoint is one daily candle for a ticker. AdjClose carries
// dividend/split adjustments; Close is the raw print.
type HistoricalPricePoint struct {
	Date     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjClose float64
	Volume   int64
}

// ReturnType selects which price field drives the simulation.
type ReturnType string

const (
	// ReturnType_Total uses adjusted close, i.e. dividends reinvested.
	ReturnType_Total ReturnType = "total"
	// ReturnType_Price uses the raw close.
	ReturnType_Price ReturnType = "price"
)

func (p HistoricalPricePoint) PriceFor(returnType ReturnType) float64 {
	if returnType == ReturnType_Price {
		return p.Close
	}
	return p.AdjClose
}

type Quote struct {
	Ticker        string  `json:"ticker"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
	MarketCap     int64   `json:"marketCap"`
	Volume        int64   `json:"volume"`
}
