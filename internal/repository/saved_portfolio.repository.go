package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quantfolio/internal/db/models/postgres/public/model"
	. "quantfolio/internal/db/models/postgres/public/table"
	"quantfolio/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SavedPortfolioRepository interface {
	// Get returns (nil, nil) when the portfolio does not exist - a missing
	// reference is data, not an error, so nested expansion can skip it.
	Get(id uuid.UUID) (*domain.SavedPortfolio, error)
	List() ([]domain.SavedPortfolio, error)
	Add(name string, assets []domain.PortfolioItem) (*domain.SavedPortfolio, error)
	Update(id uuid.UUID, name string, assets []domain.PortfolioItem) (*domain.SavedPortfolio, error)
	Delete(id uuid.UUID) error
}

func NewSavedPortfolioRepository(db *sql.DB) SavedPortfolioRepository {
	return savedPortfolioRepositoryHandler{Db: db}
}

type savedPortfolioRepositoryHandler struct {
	Db *sql.DB
}

type savedPortfolioRow struct {
	model.SavedPortfolio
	Assets []model.SavedPortfolioAsset
}

func (h savedPortfolioRepositoryHandler) Get(id uuid.UUID) (*domain.SavedPortfolio, error) {
	query := SELECT(SavedPortfolio.AllColumns, SavedPortfolioAsset.AllColumns).
		FROM(
			SavedPortfolio.LEFT_JOIN(
				SavedPortfolioAsset,
				SavedPortfolioAsset.SavedPortfolioID.EQ(SavedPortfolio.SavedPortfolioID),
			),
		).
		WHERE(SavedPortfolio.SavedPortfolioID.EQ(UUID(id)))

	row := savedPortfolioRow{}
	err := query.Query(h.Db, &row)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get saved portfolio %s: %w", id, err)
	}

	out := savedPortfolioToDomain(row)
	return &out, nil
}

func (h savedPortfolioRepositoryHandler) List() ([]domain.SavedPortfolio, error) {
	query := SELECT(SavedPortfolio.AllColumns, SavedPortfolioAsset.AllColumns).
		FROM(
			SavedPortfolio.LEFT_JOIN(
				SavedPortfolioAsset,
				SavedPortfolioAsset.SavedPortfolioID.EQ(SavedPortfolio.SavedPortfolioID),
			),
		).
		ORDER_BY(SavedPortfolio.UpdatedAt.ASC())

	rows := []savedPortfolioRow{}
	err := query.Query(h.Db, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved portfolios: %w", err)
	}

	out := []domain.SavedPortfolio{}
	for _, row := range rows {
		out = append(out, savedPortfolioToDomain(row))
	}
	return out, nil
}

func (h savedPortfolioRepositoryHandler) Add(name string, assets []domain.PortfolioItem) (*domain.SavedPortfolio, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	portfolio := model.SavedPortfolio{
		SavedPortfolioID: uuid.New(),
		Name:             name,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	_, err = SavedPortfolio.INSERT(SavedPortfolio.AllColumns).MODEL(portfolio).Exec(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert saved portfolio: %w", err)
	}

	err = insertAssets(tx, portfolio.SavedPortfolioID, assets, now)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit saved portfolio: %w", err)
	}

	return h.Get(portfolio.SavedPortfolioID)
}

func (h savedPortfolioRepositoryHandler) Update(id uuid.UUID, name string, assets []domain.PortfolioItem) (*domain.SavedPortfolio, error) {
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	result, err := SavedPortfolio.
		UPDATE(SavedPortfolio.Name, SavedPortfolio.UpdatedAt).
		SET(name, now).
		WHERE(SavedPortfolio.SavedPortfolioID.EQ(UUID(id))).
		Exec(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to update saved portfolio %s: %w", id, err)
	}
	numRows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if numRows == 0 {
		return nil, nil
	}

	// assets are replaced wholesale on every update
	_, err = SavedPortfolioAsset.
		DELETE().
		WHERE(SavedPortfolioAsset.SavedPortfolioID.EQ(UUID(id))).
		Exec(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to clear assets for %s: %w", id, err)
	}

	err = insertAssets(tx, id, assets, now)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit saved portfolio update: %w", err)
	}

	return h.Get(id)
}

func (h savedPortfolioRepositoryHandler) Delete(id uuid.UUID) error {
	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = SavedPortfolioAsset.
		DELETE().
		WHERE(SavedPortfolioAsset.SavedPortfolioID.EQ(UUID(id))).
		Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete assets for %s: %w", id, err)
	}

	_, err = SavedPortfolio.
		DELETE().
		WHERE(SavedPortfolio.SavedPortfolioID.EQ(UUID(id))).
		Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete saved portfolio %s: %w", id, err)
	}

	return tx.Commit()
}

func insertAssets(tx *sql.Tx, portfolioID uuid.UUID, assets []domain.PortfolioItem, now time.Time) error {
	if len(assets) == 0 {
		return nil
	}

	models := []model.SavedPortfolioAsset{}
	for _, a := range assets {
		var color *string
		if a.Color != "" {
			c := a.Color
			color = &c
		}
		models = append(models, model.SavedPortfolioAsset{
			SavedPortfolioAssetID: uuid.New(),
			SavedPortfolioID:      portfolioID,
			Ticker:                a.Ticker,
			Name:                  a.Name,
			AssetType:             string(a.Type),
			AssetClass:            a.AssetClass,
			Weight:                decimal.NewFromFloat(a.Weight),
			Color:                 color,
			ReferencedPortfolioID: a.PortfolioID,
			CreatedAt:             now,
		})
	}

	_, err := SavedPortfolioAsset.INSERT(SavedPortfolioAsset.AllColumns).MODELS(models).Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to insert portfolio assets: %w", err)
	}
	return nil
}

func savedPortfolioToDomain(row savedPortfolioRow) domain.SavedPortfolio {
	assets := []domain.PortfolioItem{}
	for _, a := range row.Assets {
		color := ""
		if a.Color != nil {
			color = *a.Color
		}
		assets = append(assets, domain.PortfolioItem{
			Asset: domain.Asset{
				Ticker:     a.Ticker,
				Name:       a.Name,
				Type:       domain.AssetType(a.AssetType),
				AssetClass: a.AssetClass,
			},
			Weight:      a.Weight.InexactFloat64(),
			Color:       color,
			PortfolioID: a.ReferencedPortfolioID,
		})
	}

	return domain.SavedPortfolio{
		ID:        row.SavedPortfolioID,
		Name:      row.Name,
		Assets:    assets,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
