package domain

import (
	"time"

	"github.com/google/uuid"
)

type AssetType string

const (
	AssetType_Stock     AssetType = "STOCK"
	AssetType_ETF       AssetType = "ETF"
	AssetType_Portfolio AssetType = "PORTFOLIO"
)

// Asset is immutable reference data for a tradable instrument. A
// PORTFOLIO-typed asset is a pointer to another saved portfolio rather
// than a leaf ticker.
type Asset struct {
	Ticker     string    `json:"ticker"`
	Name       string    `json:"name"`
	Type       AssetType `json:"type"`
	AssetClass string    `json:"assetClass"`
	Sector     *string   `json:"sector,omitempty"`
}

// PortfolioItem is an asset plus its slice of the basket. Weight is in
// percentage points of total capital; the engine scales allocations
// proportionally whether or not the weights sum to 100.
type PortfolioItem struct {
	Asset
	Weight      float64    `json:"weight"`
	Color       string     `json:"color,omitempty"`
	PortfolioID *uuid.UUID `json:"portfolioId,omitempty"`
}

func (p PortfolioItem) IsPortfolioReference() bool {
	return p.Type == AssetType_Portfolio && p.PortfolioID != nil
}

type SavedPortfolio struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Assets    []PortfolioItem `json:"assets"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
