//go:build unit

package api_test

import (
	"bytes"
	"net/http"
	"testing"

	"campus-parking/internal/handler/api"
	"campus-parking/internal/handler/middleware"
	resdto "campus-parking/internal/handler/dto/response"
	"campus-parking/internal/pkg/errs"
	"campus-parking/internal/usecase/commands"
	"campus-parking/tests/common/httptest"
	commandsmock "campus-parking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// uploadBodyLimit mirrors the router: the image limit plus room for the
// multipart envelope.
const uploadBodyLimit = 11 << 20

type DetectionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDetectionCommands
}

func (s *DetectionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDetectionCommands(s.mockCtrl)
	h := api.NewDetectionHandler(s.mockCommands)

	s.router.POST("/api/detections", middleware.LimitBody(uploadBodyLimit), h.Detect)
}

func (s *DetectionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDetectionHandlerSuite(t *testing.T) {
	suite.Run(t, new(DetectionHandlerTestSuite))
}

func (s *DetectionHandlerTestSuite) TestDetect() {
	url := "/api/detections"
	image := []byte("\x89PNG fake image bytes")

	s.Run("success: returns label and confidence", func() {
		s.mockCommands.EXPECT().Detect(gomock.Any(), image).
			Return(&commands.DetectionResult{Label: "Occupied", Confidence: 0.87}, nil).Times(1)

		rec := httptest.PerformUpload(s.T(), s.router, url, "image", "spot.png", image)

		var body resdto.DetectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Occupied", body.Label)
		s.InDelta(0.87, body.Confidence, 1e-9)
	})

	s.Run("error: missing file is 400", func() {
		rec := httptest.PerformUpload(s.T(), s.router, url, "", "", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Image file is required")
	})

	s.Run("error: file above 10MB is 413", func() {
		big := bytes.Repeat([]byte{0xff}, 10<<20+1)

		rec := httptest.PerformUpload(s.T(), s.router, url, "image", "big.jpg", big)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, "too large")
	})

	s.Run("error: body above the request cap is 413", func() {
		huge := bytes.Repeat([]byte{0xff}, 12<<20)

		rec := httptest.PerformUpload(s.T(), s.router, url, "image", "huge.jpg", huge)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusRequestEntityTooLarge, "too large")
	})

	s.Run("error: undecodable image is 422", func() {
		s.mockCommands.EXPECT().Detect(gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(errs.ErrInvalidImage, "unknown format")).Times(1)

		rec := httptest.PerformUpload(s.T(), s.router, url, "image", "notes.txt", []byte("plain text"))

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "cannot be decoded")
	})

	s.Run("error: model unavailable is 503", func() {
		s.mockCommands.EXPECT().Detect(gomock.Any(), gomock.Any()).Return(nil, errs.ErrModelUnavailable).Times(1)

		rec := httptest.PerformUpload(s.T(), s.router, url, "image", "spot.png", image)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "unavailable")
	})
}
