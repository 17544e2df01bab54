package domain

// Metrics is the risk/return bundle for one value curve.
type Metrics struct {
	CAGR             float64 `json:"cagr"`
	MaxDrawdown      float64 `json:"maxDrawdown"`
	MaxDrawdownStart string  `json:"maxDrawdownStart,omitempty"`
	MaxDrawdownEnd   string  `json:"maxDrawdownEnd,omitempty"`
	MaxDrawdownDays  int     `json:"maxDrawdownDays"`
	Volatility       float64 `json:"volatility"`
	SharpeRatio      float64 `json:"sharpeRatio"`
	TotalReturn      float64 `json:"totalReturn"`
	FinalBalance     float64 `json:"finalBalance"`
	TotalInvested    float64 `json:"totalInvested"`
}

// SimulationResult is the full output of one backtest run. Dates is the
// aligned trading calendar in ISO form; the value slices are parallel
// to it.
type SimulationResult struct {
	Dates             []string                      `json:"dates"`
	PortfolioValues   []float64                     `json:"portfolioValues"`
	BenchmarkValues   []float64                     `json:"benchmarkValues"`
	AssetReturns      map[string]float64            `json:"assetReturns"`
	CorrelationMatrix map[string]map[string]float64 `json:"correlationMatrix"`
	BenchmarkTicker   string                        `json:"benchmarkTicker"`
	ReturnType        ReturnType                    `json:"returnType"`
	Metrics           Metrics                       `json:"metrics"`
	BenchmarkMetrics  Metrics                       `json:"benchmarkMetrics"`
}
