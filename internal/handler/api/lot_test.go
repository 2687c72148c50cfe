//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"campus-parking/internal/handler/api"
	resdto "campus-parking/internal/handler/dto/response"
	"campus-parking/internal/infra"
	"campus-parking/internal/pkg/errs"
	"campus-parking/internal/usecase/queries"
	"campus-parking/tests/common/builder"
	"campus-parking/tests/common/httptest"
	queriesmock "campus-parking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LotHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockLotQueries
	handler     *api.LotHandler
}

func (s *LotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockLotQueries(s.mockCtrl)
	s.handler = api.NewLotHandler(s.mockQueries)

	s.router.GET("/api/lots", s.handler.List)
	s.router.GET("/api/lots/:id", s.handler.Get)
}

func (s *LotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLotHandlerSuite(t *testing.T) {
	suite.Run(t, new(LotHandlerTestSuite))
}

func (s *LotHandlerTestSuite) TestList() {
	views := []*queries.LotView{
		builder.NewLotBuilder().With(func(b *builder.LotBuilder) { b.ID = 4; b.Name = "Athletics Field Parking"; b.Capacity = 150 }).BuildDecoratedView(),
		builder.NewLotBuilder().BuildDecoratedView(),
	}

	s.Run("success: returns lots with availability", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "").Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/lots", nil, "")

		var body resdto.LotListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Count)
		s.Equal("Athletics Field Parking", body.Lots[0].Name)
		s.Equal(views[1].Available, body.Lots[1].Available)
		s.Equal(views[1].Status, body.Lots[1].Status)
		s.Equal(views[1].DirectionsURL, body.Lots[1].DirectionsURL)
	})

	s.Run("success: search is passed through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), "science").Return([]*queries.LotView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/lots?search=science", nil, "")

		var body resdto.LotListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(0, body.Count)
		s.NotNil(body.Lots)
	})

	s.Run("error: storage failure is 500", func() {
		storageErr := infra.WrapRepoErr("failed to list lots", errors.New("connection reset"))
		s.mockQueries.EXPECT().List(gomock.Any(), "").Return(nil, storageErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/lots", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *LotHandlerTestSuite) TestGet() {
	view := builder.NewLotBuilder().BuildDecoratedView()

	s.Run("success: returns the lot", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), int64(1)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/lots/1", nil, "")

		var body resdto.LotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal(view.Capacity, body.Capacity)
		s.Equal(view.Occupied, body.Occupied)
		s.InDelta(view.AvailableRatio, body.AvailableRatio, 1e-9)
	})

	s.Run("error: unknown lot is 404", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), int64(99)).Return(nil, errs.ErrLotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/lots/99", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	for _, id := range []string{"abc", "0", "-3"} {
		s.Run("error: invalid id "+id+" is 400", func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/lots/"+id, nil, "")

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid lot id")
		})
	}
}
