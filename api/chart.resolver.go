package api

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"quantfolio/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/wcharczuk/go-chart/v2"
)

// backtestChart runs the same simulation as /backtest but renders the
// portfolio and benchmark value curves as a PNG.
func (h ApiHandler) backtestChart(c *gin.Context) {
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

	result, err := h.BacktestHandler.Run(context.Background(), *input)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	png, err := renderEquityCurveChart(result)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Data(200, "image/png", png)
}

func renderEquityCurveChart(result *domain.SimulationResult) ([]byte, error) {
	dates := make([]time.Time, 0, len(result.Dates))
	for _, d := range result.Dates {
		t, err := time.Parse(time.DateOnly, d)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date %q: %w", d, err)
		}
		dates = append(dates, t)
	}

	graph := chart.Chart{
		Width:  1024,
		Height: 512,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Value",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Portfolio",
				XValues: dates,
				YValues: result.PortfolioValues,
			},
			chart.TimeSeries{
				Name:    fmt.Sprintf("Benchmark (%s)", result.BenchmarkTicker),
				XValues: dates,
				YValues: result.BenchmarkValues,
				Style: chart.Style{
					StrokeDashArray: []float64{5.0, 5.0},
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	buf := bytes.Buffer{}
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}

	return buf.Bytes(), nil
}
