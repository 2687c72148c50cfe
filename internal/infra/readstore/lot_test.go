//go:build unit

package readstore

import (
	"context"
	"testing"

	"campus-parking/internal/infra"
	sqlc "campus-parking/internal/infra/sqlc/generated"
	"campus-parking/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLotReadQueries struct {
	mock.Mock
}

func (m *MockLotReadQueries) ListLotsWithStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListLotsWithStatusRow, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.ListLotsWithStatusRow), args.Error(1)
}

func (m *MockLotReadQueries) SearchLotsWithStatus(ctx context.Context, db sqlc.DBTX, term string) ([]sqlc.SearchLotsWithStatusRow, error) {
	args := m.Called(ctx, db, term)
	return args.Get(0).([]sqlc.SearchLotsWithStatusRow), args.Error(1)
}

func (m *MockLotReadQueries) GetLotWithStatus(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetLotWithStatusRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.GetLotWithStatusRow), args.Error(1)
}

func TestLotReadStore_List(t *testing.T) {
	withStatus := builder.NewLotBuilder().BuildInfraRow()
	withoutStatus := builder.NewLotBuilder().With(func(b *builder.LotBuilder) {
		b.ID = 2
		b.Name = "Student Union Lot"
		b.SpecialInfo = nil
	}).WithoutStatus().BuildInfraRow()

	t.Run("blank search lists every lot", func(t *testing.T) {
		mockQueries := new(MockLotReadQueries)
		mockQueries.On("ListLotsWithStatus", mock.Anything, mock.Anything).
			Return([]sqlc.ListLotsWithStatusRow{withStatus, withoutStatus}, nil)

		store := NewLotReadStore(mockQueries, nil)

		views, err := store.List(context.Background(), "   ")

		require.NoError(t, err)
		require.Len(t, views, 2)

		assert.Equal(t, "Great Hall", views[0].Name)
		assert.True(t, views[0].HasStatus)
		assert.Equal(t, 10, views[0].Occupied)
		require.NotNil(t, views[0].LastUpdated)
		require.NotNil(t, views[0].SpecialInfo)

		assert.False(t, views[1].HasStatus)
		assert.Zero(t, views[1].Occupied)
		assert.Nil(t, views[1].LastUpdated)
		assert.Nil(t, views[1].SpecialInfo)

		mockQueries.AssertExpectations(t)
		mockQueries.AssertNotCalled(t, "SearchLotsWithStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("search is trimmed and delegated", func(t *testing.T) {
		mockQueries := new(MockLotReadQueries)
		mockQueries.On("SearchLotsWithStatus", mock.Anything, mock.Anything, "science").
			Return([]sqlc.SearchLotsWithStatusRow{sqlc.SearchLotsWithStatusRow(withStatus)}, nil)

		store := NewLotReadStore(mockQueries, nil)

		views, err := store.List(context.Background(), " science ")

		require.NoError(t, err)
		assert.Len(t, views, 1)
		mockQueries.AssertExpectations(t)
	})

	t.Run("wildcards in the search match literally", func(t *testing.T) {
		tests := map[string]string{
			"%":          `\%`,
			"lot_a":      `lot\_a`,
			`50% off`:    `50\% off`,
			`back\slash`: `back\\slash`,
		}
		for search, term := range tests {
			mockQueries := new(MockLotReadQueries)
			mockQueries.On("SearchLotsWithStatus", mock.Anything, mock.Anything, term).
				Return([]sqlc.SearchLotsWithStatusRow{}, nil)

			store := NewLotReadStore(mockQueries, nil)

			views, err := store.List(context.Background(), search)

			require.NoError(t, err, search)
			assert.Empty(t, views, search)
			mockQueries.AssertExpectations(t)
		}
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockLotReadQueries)
		mockQueries.On("ListLotsWithStatus", mock.Anything, mock.Anything).
			Return([]sqlc.ListLotsWithStatusRow(nil), assert.AnError)

		store := NewLotReadStore(mockQueries, nil)

		views, err := store.List(context.Background(), "")

		assert.Nil(t, views)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestLotReadStore_FindByID(t *testing.T) {
	row := sqlc.GetLotWithStatusRow(builder.NewLotBuilder().BuildInfraRow())

	tests := []struct {
		name       string
		mockReturn sqlc.GetLotWithStatusRow
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "success", mockReturn: row},
		{name: "not found", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockLotReadQueries)
			mockQueries.On("GetLotWithStatus", mock.Anything, mock.Anything, int64(1)).Return(tt.mockReturn, tt.mockError)

			store := NewLotReadStore(mockQueries, nil)

			view, err := store.FindByID(context.Background(), 1)

			if tt.wantKind != "" {
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(1), view.ID)
				assert.Equal(t, 31, view.Capacity)
				assert.InDelta(t, 37.7749, view.Latitude, 1e-9)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
