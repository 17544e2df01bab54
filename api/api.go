package api

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"time"

	"quantfolio/internal/app"
	"quantfolio/internal/db/models/postgres/public/model"
	"quantfolio/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                       *sql.DB
	BacktestHandler          app.BacktestHandler
	SavedPortfolioRepository repository.SavedPortfolioRepository
	PriceRepository          repository.HistoricalPriceRepository
	GptRepository            repository.GptRepository
	ApiRequestRepository     repository.ApiRequestRepository
}

func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to quantfolio"})
	})
	router.POST("/backtest", m.backtest)
	router.POST("/backtest/chart", m.backtestChart)
	router.GET("/historical/:ticker", m.historical)
	router.GET("/quote/:ticker", m.quote)
	router.GET("/portfolios", m.listPortfolios)
	router.GET("/portfolios/:id", m.getPortfolio)
	router.POST("/portfolios", m.createPortfolio)
	router.PUT("/portfolios/:id", m.updatePortfolio)
	router.DELETE("/portfolios/:id", m.deletePortfolio)
	router.POST("/insights", m.insights)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// logRequestMiddleware records every request to the api_request audit
// table and emits an access log line. Audit failures are logged and
// swallowed - the request must never fail because bookkeeping did.
func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		zap.S().Warnf("failed to read request body: %v", err)
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
	})
	if err != nil {
		zap.S().Warnf("failed to record api request: %v", err)
	} else {
		ctx.Set("requestID", req.APIRequestID.String())
	}

	ctx.Next()

	elapsed := time.Since(start)
	zap.S().Infow("request handled",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"elapsedMs", elapsed.Milliseconds(),
	)

	if req != nil {
		err = m.ApiRequestRepository.Complete(m.Db, req.APIRequestID, int32(ctx.Writer.Status()), elapsed)
		if err != nil {
			zap.S().Warnf("failed to complete api request: %v", err)
		}
	}
}
