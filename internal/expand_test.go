package internal

import (
	"fmt"
	"testing"

	"quantfolio/internal/domain"
	mock_repository "quantfolio/internal/repository/mocks"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stockItem(ticker string, weight float64) domain.PortfolioItem {
	return domain.PortfolioItem{
		Asset: domain.Asset{
			Ticker: ticker,
			Type:   domain.AssetType_Stock,
		},
		Weight: weight,
	}
}

func portfolioItem(id uuid.UUID, weight float64) domain.PortfolioItem {
	return domain.PortfolioItem{
		Asset: domain.Asset{
			Ticker: "PORT_" + id.String(),
			Type:   domain.AssetType_Portfolio,
		},
		Weight:      weight,
		PortfolioID: &id,
	}
}

func Test_ExpandPortfolio(t *testing.T) {
	t.Run("leaf assets pass through, duplicates merged", func(t *testing.T) {
		e := PortfolioExpander{}

		out, err := e.ExpandPortfolio([]domain.PortfolioItem{
			stockItem("AAPL", 40),
			stockItem("MSFT", 35),
			stockItem("AAPL", 25),
		}, 0)
		require.NoError(t, err)

		expected := []domain.PortfolioItem{
			stockItem("AAPL", 65),
			stockItem("MSFT", 35),
		}
		require.True(t, cmp.Equal(expected, out), cmp.Diff(expected, out))
	})

	t.Run("nested portfolio weights scaled by parent weight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockSavedPortfolioRepository(ctrl)
		id := uuid.New()
		repo.EXPECT().Get(id).Return(&domain.SavedPortfolio{
			ID: id,
			Assets: []domain.PortfolioItem{
				stockItem("VTI", 60),
				stockItem("BND", 40),
			},
		}, nil)

		e := PortfolioExpander{SavedPortfolioRepository: repo}

		out, err := e.ExpandPortfolio([]domain.PortfolioItem{
			stockItem("AAPL", 50),
			portfolioItem(id, 50),
		}, 0)
		require.NoError(t, err)

		expected := []domain.PortfolioItem{
			stockItem("AAPL", 50),
			stockItem("VTI", 30),
			stockItem("BND", 20),
		}
		require.True(t, cmp.Equal(expected, out), cmp.Diff(expected, out))
	})

	t.Run("nested leaf merges into existing ticker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockSavedPortfolioRepository(ctrl)
		id := uuid.New()
		repo.EXPECT().Get(id).Return(&domain.SavedPortfolio{
			ID: id,
			Assets: []domain.PortfolioItem{
				stockItem("AAPL", 100),
			},
		}, nil)

		e := PortfolioExpander{SavedPortfolioRepository: repo}

		out, err := e.ExpandPortfolio([]domain.PortfolioItem{
			stockItem("AAPL", 80),
			portfolioItem(id, 20),
		}, 0)
		require.NoError(t, err)

		require.Len(t, out, 1)
		require.Equal(t, "AAPL", out[0].Ticker)
		require.InDelta(t, 100, out[0].Weight, 1e-9)
	})

	t.Run("missing saved portfolio contributes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockSavedPortfolioRepository(ctrl)
		id := uuid.New()
		repo.EXPECT().Get(id).Return(nil, nil)

		e := PortfolioExpander{SavedPortfolioRepository: repo}

		out, err := e.ExpandPortfolio([]domain.PortfolioItem{
			stockItem("AAPL", 50),
			portfolioItem(id, 50),
		}, 0)
		require.NoError(t, err)

		expected := []domain.PortfolioItem{
			stockItem("AAPL", 50),
		}
		require.True(t, cmp.Equal(expected, out), cmp.Diff(expected, out))
	})

	t.Run("self referencing portfolio terminates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockSavedPortfolioRepository(ctrl)
		id := uuid.New()
		// the cycle is visited once per depth level, then cut off
		repo.EXPECT().Get(id).Return(&domain.SavedPortfolio{
			ID: id,
			Assets: []domain.PortfolioItem{
				portfolioItem(id, 100),
			},
		}, nil).Times(maxExpansionDepth + 1)

		e := PortfolioExpander{SavedPortfolioRepository: repo}

		out, err := e.ExpandPortfolio([]domain.PortfolioItem{
			portfolioItem(id, 100),
		}, 0)
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockSavedPortfolioRepository(ctrl)
		id := uuid.New()
		repo.EXPECT().Get(id).Return(nil, fmt.Errorf("db down"))

		e := PortfolioExpander{SavedPortfolioRepository: repo}

		_, err := e.ExpandPortfolio([]domain.PortfolioItem{
			portfolioItem(id, 100),
		}, 0)
		require.ErrorContains(t, err, "db down")
	})
}
