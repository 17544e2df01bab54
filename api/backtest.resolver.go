package api

import (
	"context"
	"fmt"

	"quantfolio/internal/app"
	"quantfolio/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PortfolioItemRequest struct {
	Ticker      string     `json:"ticker"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	AssetClass  string     `json:"assetClass"`
	Weight      float64    `json:"weight"`
	Color       string     `json:"color"`
	PortfolioID *uuid.UUID `json:"portfolioId"`
}

type FrequencyConfigRequest struct {
	Enabled   bool    `json:"enabled"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
}

type BacktestRequest struct {
	Portfolio       []PortfolioItemRequest  `json:"portfolio"`
	Months          int                     `json:"months"`
	Ytd             bool                    `json:"ytd"`
	BenchmarkTicker string                  `json:"benchmarkTicker"`
	ReturnType      string                  `json:"returnType"`
	DcaConfig       *FrequencyConfigRequest `json:"dcaConfig"`
	RebalanceConfig *FrequencyConfigRequest `json:"rebalanceConfig"`
}

func (h ApiHandler) backtest(c *gin.Context) {
	var requestBody BacktestRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	input, err := toBacktestInput(requestBody)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	profile := domain.NewProfile()
	ctx := context.WithValue(c.Request.Context(), domain.ContextProfileKey, profile)

	result, err := h.BacktestHandler.Run(ctx, *input)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	profile.End()
	if bytes, err := profile.ToJsonBytes(); err == nil {
		fmt.Println(string(bytes))
	}

	c.JSON(200, result)
}

func toBacktestInput(requestBody BacktestRequest) (*app.BacktestInput, error) {
	if len(requestBody.Portfolio) == 0 {
		return nil, fmt.Errorf("portfolio must have at least one asset")
	}

	months := requestBody.Months
	if months == 0 {
		months = 12
	}
	benchmarkTicker := requestBody.BenchmarkTicker
	if benchmarkTicker == "" {
		benchmarkTicker = "SPY"
	}

	returnType := domain.ReturnType_Total
	if requestBody.ReturnType == string(domain.ReturnType_Price) {
		returnType = domain.ReturnType_Price
	}

	dca := domain.DCAConfig{}
	if requestBody.DcaConfig != nil && requestBody.DcaConfig.Enabled {
		frequency, err := domain.NewFrequency(requestBody.DcaConfig.Frequency)
		if err != nil {
			return nil, fmt.Errorf("invalid dca config: %w", err)
		}
		dca = domain.DCAConfig{
			Enabled:   true,
			Amount:    requestBody.DcaConfig.Amount,
			Frequency: frequency,
		}
	}

	rebalance := domain.RebalanceConfig{}
	if requestBody.RebalanceConfig != nil && requestBody.RebalanceConfig.Enabled {
		frequency, err := domain.NewFrequency(requestBody.RebalanceConfig.Frequency)
		if err != nil {
			return nil, fmt.Errorf("invalid rebalance config: %w", err)
		}
		rebalance = domain.RebalanceConfig{
			Enabled:   true,
			Frequency: frequency,
		}
	}

	return &app.BacktestInput{
		Portfolio:       toPortfolioItems(requestBody.Portfolio),
		Months:          months,
		Ytd:             requestBody.Ytd,
		BenchmarkTicker: benchmarkTicker,
		ReturnType:      returnType,
		DCA:             dca,
		Rebalance:       rebalance,
	}, nil
}

func toPortfolioItems(in []PortfolioItemRequest) []domain.PortfolioItem {
	items := []domain.PortfolioItem{}
	for _, item := range in {
		assetType := domain.AssetType(item.Type)
		if assetType == "" {
			assetType = domain.AssetType_Stock
		}
		items = append(items, domain.PortfolioItem{
			Asset: domain.Asset{
				Ticker:     item.Ticker,
				Name:       item.Name,
				Type:       assetType,
				AssetClass: item.AssetClass,
			},
			Weight:      item.Weight,
			Color:       item.Color,
			PortfolioID: item.PortfolioID,
		})
	}
	return items
}
