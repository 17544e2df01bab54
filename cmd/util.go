package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"quantfolio/api"
	"quantfolio/internal"
	"quantfolio/internal/app"
	"quantfolio/internal/repository"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	var gptRepository repository.GptRepository
	if secrets.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPTApiKey)
		if err != nil {
			return nil, err
		}
	}

	savedPortfolioRepository := repository.NewSavedPortfolioRepository(dbConn)
	priceRepository := repository.NewHistoricalPriceRepository()

	backtestHandler := app.BacktestHandler{
		SavedPortfolioRepository: savedPortfolioRepository,
		PriceRepository:          priceRepository,
		InterestRateRepository:   repository.InterestRateRepositoryHandler{},
	}

	apiHandler := &api.ApiHandler{
		Db:                       dbConn,
		BacktestHandler:          backtestHandler,
		SavedPortfolioRepository: savedPortfolioRepository,
		PriceRepository:          priceRepository,
		GptRepository:            gptRepository,
		ApiRequestRepository:     repository.ApiRequestRepositoryHandler{},
	}

	return apiHandler, nil
}
