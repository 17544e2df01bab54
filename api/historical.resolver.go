package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type historicalPricePointResponse struct {
	Date     string  `json:"date"`
	Open     float64 `json:"open"`
	High     float64 `json:"high"`
	Low      float64 `json:"low"`
	Close    float64 `json:"close"`
	AdjClose float64 `json:"adjClose"`
	Volume   int64   `json:"volume"`
}

type historicalResponse struct {
	Ticker string                         `json:"ticker"`
	Data   []historicalPricePointResponse `json:"data"`
}

func (h ApiHandler) historical(c *gin.Context) {
	ticker := c.Param("ticker")

	months := 12
	if monthsStr := c.Query("months"); monthsStr != "" {
		parsed, err := strconv.Atoi(monthsStr)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid months %q: %w", monthsStr, err), c, 400)
			return
		}
		months = parsed
	}
	ytd := c.Query("ytd") == "true"

	points, err := h.PriceRepository.List(ticker, months, ytd)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	data := []historicalPricePointResponse{}
	for _, p := range points {
		data = append(data, historicalPricePointResponse{
			Date:     p.Date.Format(time.DateOnly),
			Open:     p.Open,
			High:     p.High,
			Low:      p.Low,
			Close:    p.Close,
			AdjClose: p.AdjClose,
			Volume:   p.Volume,
		})
	}

	c.JSON(200, historicalResponse{
		Ticker: ticker,
		Data:   data,
	})
}

func (h ApiHandler) quote(c *gin.Context) {
	ticker := c.Param("ticker")

	quote, err := h.PriceRepository.Quote(ticker)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, quote)
}
