package api

import (
	"fmt"
	"strings"

	"quantfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type insightsRequest struct {
	Assets          []PortfolioItemRequest `json:"assets"`
	Metrics         domain.Metrics         `json:"metrics"`
	BenchmarkTicker string                 `json:"benchmarkTicker"`
}

func (h ApiHandler) insights(c *gin.Context) {
	if h.GptRepository == nil {
		returnErrorJsonCode(fmt.Errorf("insights are not configured on this server"), c, 503)
		return
	}

	var requestBody insightsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}
	if len(requestBody.Assets) == 0 {
		returnErrorJsonCode(fmt.Errorf("at least one asset is required"), c, 400)
		return
	}

	summary := buildPortfolioSummary(requestBody)
	insights, err := h.GptRepository.GeneratePortfolioInsights(c, summary)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"insights": insights})
}

func buildPortfolioSummary(r insightsRequest) string {
	sb := strings.Builder{}
	sb.WriteString("Portfolio holdings:\n")
	for _, a := range r.Assets {
		sb.WriteString(fmt.Sprintf("- %s: %.2f%%\n", a.Ticker, a.Weight))
	}
	if r.BenchmarkTicker != "" {
		sb.WriteString(fmt.Sprintf("Benchmark: %s\n", r.BenchmarkTicker))
	}
	sb.WriteString(fmt.Sprintf("CAGR: %.2f%%\n", r.Metrics.CAGR*100))
	sb.WriteString(fmt.Sprintf("Annualized volatility: %.2f%%\n", r.Metrics.Volatility*100))
	sb.WriteString(fmt.Sprintf("Sharpe ratio: %.2f\n", r.Metrics.SharpeRatio))
	sb.WriteString(fmt.Sprintf("Max drawdown: %.2f%%\n", r.Metrics.MaxDrawdown*100))
	sb.WriteString(fmt.Sprintf("Total return: %.2f%%\n", r.Metrics.TotalReturn*100))

	return sb.String()
}
