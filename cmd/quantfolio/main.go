package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"quantfolio/internal"
	"quantfolio/internal/app"
	"quantfolio/internal/domain"
	"quantfolio/internal/repository"
	"strings"

	"github.com/gocarina/gocsv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	portfolioFile string
	months        int
	ytd           bool
	benchmark     string
	priceOnly     bool
	dcaAmount     float64
	dcaFreq       string
	rebalanceFreq string
	csvOut        string
	jsonOut       bool
)

var rootCmd = &cobra.Command{
	Use:   "quantfolio",
	Short: "Portfolio backtesting toolkit",
}

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Simulate a portfolio against a benchmark over historical prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBacktest()
	},
}

// equityCurveRow is the csv export shape for one trading day.
type equityCurveRow struct {
	Date           string  `csv:"date"`
	PortfolioValue float64 `csv:"portfolio_value"`
	BenchmarkValue float64 `csv:"benchmark_value"`
}

func init() {
	backtestCmd.Flags().StringVarP(&portfolioFile, "portfolio", "p", "", "path to a json file with portfolio holdings (required)")
	backtestCmd.Flags().IntVarP(&months, "months", "m", 12, "lookback window in months")
	backtestCmd.Flags().BoolVar(&ytd, "ytd", false, "backtest from the start of the current year")
	backtestCmd.Flags().StringVarP(&benchmark, "benchmark", "b", "SPY", "benchmark ticker, or PORT_<id> for a saved portfolio")
	backtestCmd.Flags().BoolVar(&priceOnly, "price-only", false, "use unadjusted close prices instead of total return")
	backtestCmd.Flags().Float64Var(&dcaAmount, "dca-amount", 0, "recurring contribution amount")
	backtestCmd.Flags().StringVar(&dcaFreq, "dca-freq", "MONTHLY", "contribution frequency")
	backtestCmd.Flags().StringVar(&rebalanceFreq, "rebalance-freq", "", "rebalance frequency, empty disables rebalancing")
	backtestCmd.Flags().StringVar(&csvOut, "csv", "", "write the equity curves to a csv file")
	backtestCmd.Flags().BoolVar(&jsonOut, "json", false, "print the full result as json")
	backtestCmd.MarkFlagRequired("portfolio")

	rootCmd.AddCommand(backtestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBacktest() error {
	portfolio, err := readPortfolioFile(portfolioFile)
	if err != nil {
		return err
	}

	handler, cleanup, err := newBacktestHandler(portfolio)
	if err != nil {
		return err
	}
	defer cleanup()

	in := app.BacktestInput{
		Portfolio:       portfolio,
		Months:          months,
		Ytd:             ytd,
		BenchmarkTicker: benchmark,
		ReturnType:      domain.ReturnType_Total,
	}
	if priceOnly {
		in.ReturnType = domain.ReturnType_Price
	}
	if dcaAmount > 0 {
		freq, err := domain.NewFrequency(dcaFreq)
		if err != nil {
			return err
		}
		in.DCA = domain.DCAConfig{
			Enabled:   true,
			Amount:    dcaAmount,
			Frequency: freq,
		}
	}
	if rebalanceFreq != "" {
		freq, err := domain.NewFrequency(rebalanceFreq)
		if err != nil {
			return err
		}
		in.Rebalance = domain.RebalanceConfig{
			Enabled:   true,
			Frequency: freq,
		}
	}

	result, err := handler.Run(context.Background(), in)
	if err != nil {
		return err
	}

	if csvOut != "" {
		if err := writeEquityCurveCsv(csvOut, result); err != nil {
			return err
		}
	}

	if jsonOut {
		internal.Pprint(result)
		return nil
	}

	printSummary(result)
	return nil
}

func readPortfolioFile(path string) ([]domain.PortfolioItem, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio file: %w", err)
	}

	var portfolio []domain.PortfolioItem
	if err := json.Unmarshal(bytes, &portfolio); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio file: %w", err)
	}
	if len(portfolio) == 0 {
		return nil, fmt.Errorf("portfolio file %s has no holdings", path)
	}

	for i := range portfolio {
		if portfolio[i].Type == "" {
			portfolio[i].Type = domain.AssetType_Stock
		}
	}

	return portfolio, nil
}

// newBacktestHandler wires the handler with a database-backed saved
// portfolio repository when secrets are available. Plain ticker
// portfolios run without any database at all.
func newBacktestHandler(portfolio []domain.PortfolioItem) (app.BacktestHandler, func(), error) {
	handler := app.BacktestHandler{
		PriceRepository:        repository.NewHistoricalPriceRepository(),
		InterestRateRepository: repository.InterestRateRepositoryHandler{},
	}
	cleanup := func() {}

	needsDb := strings.HasPrefix(benchmark, internal.SavedPortfolioBenchmarkPrefix)
	for _, item := range portfolio {
		if item.IsPortfolioReference() {
			needsDb = true
		}
	}
	if !needsDb {
		return handler, cleanup, nil
	}

	secrets, err := internal.LoadSecrets()
	if err != nil {
		return handler, cleanup, fmt.Errorf("saved portfolio references require database secrets: %w", err)
	}
	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return handler, cleanup, fmt.Errorf("failed to connect to db: %w", err)
	}

	handler.SavedPortfolioRepository = repository.NewSavedPortfolioRepository(dbConn)
	cleanup = func() { dbConn.Close() }

	return handler, cleanup, nil
}

func writeEquityCurveCsv(path string, result *domain.SimulationResult) error {
	rows := make([]equityCurveRow, len(result.Dates))
	for i, date := range result.Dates {
		rows[i] = equityCurveRow{
			Date:           date,
			PortfolioValue: result.PortfolioValues[i],
			BenchmarkValue: result.BenchmarkValues[i],
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}

	return nil
}

func printSummary(result *domain.SimulationResult) {
	fmt.Printf("benchmark: %s\n", result.BenchmarkTicker)
	fmt.Printf("final balance: $%.2f\n", result.Metrics.FinalBalance)
	fmt.Printf("total invested: $%.2f\n", result.Metrics.TotalInvested)
	fmt.Printf("total return: %.2f%%\n", result.Metrics.TotalReturn*100)
	fmt.Printf("cagr: %.2f%% (benchmark %.2f%%)\n", result.Metrics.CAGR*100, result.BenchmarkMetrics.CAGR*100)
	fmt.Printf("volatility: %.2f%%\n", result.Metrics.Volatility*100)
	fmt.Printf("sharpe ratio: %.2f\n", result.Metrics.SharpeRatio)
	fmt.Printf("max drawdown: %.2f%% over %d days\n", result.Metrics.MaxDrawdown*100, result.Metrics.MaxDrawdownDays)
}
