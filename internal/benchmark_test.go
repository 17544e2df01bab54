package internal

import (
	"testing"

	"quantfolio/internal/domain"
	mock_repository "quantfolio/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Resolve(t *testing.T) {
	t.Run("market ticker resolves to itself", func(t *testing.T) {
		r := BenchmarkResolver{}

		out, err := r.Resolve("SPY")
		require.NoError(t, err)
		require.Equal(t, "SPY", out.Ticker)
		require.False(t, out.IsBasket())
	})

	t.Run("saved portfolio resolves to expanded basket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockSavedPortfolioRepository(ctrl)
		id := uuid.New()
		repo.EXPECT().Get(id).Return(&domain.SavedPortfolio{
			ID:   id,
			Name: "three fund",
			Assets: []domain.PortfolioItem{
				stockItem("VTI", 60),
				stockItem("VXUS", 20),
				stockItem("BND", 20),
			},
		}, nil)

		r := BenchmarkResolver{
			SavedPortfolioRepository: repo,
			Expander:                 PortfolioExpander{SavedPortfolioRepository: repo},
		}

		out, err := r.Resolve("PORT_" + id.String())
		require.NoError(t, err)
		require.True(t, out.IsBasket())
		require.Equal(t, "PORT_"+id.String(), out.Ticker)
		require.Len(t, out.Items, 3)
		require.Equal(t, "VTI", out.Items[0].Ticker)
	})

	t.Run("malformed portfolio id", func(t *testing.T) {
		r := BenchmarkResolver{}

		_, err := r.Resolve("PORT_not-a-uuid")
		require.ErrorContains(t, err, "invalid saved portfolio benchmark")
	})

	t.Run("unknown portfolio id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_repository.NewMockSavedPortfolioRepository(ctrl)
		id := uuid.New()
		repo.EXPECT().Get(id).Return(nil, nil)

		r := BenchmarkResolver{SavedPortfolioRepository: repo}

		_, err := r.Resolve("PORT_" + id.String())
		require.ErrorContains(t, err, "not found")
	})
}
