//go:build e2e

package parking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"campus-parking/internal/handler/dto/request"
	resdto "campus-parking/internal/handler/dto/response"
	"campus-parking/internal/pkg/config"
	"campus-parking/tests/common/authtest"
	"campus-parking/tests/common/dbtest"
	"campus-parking/tests/common/httptest"
	"campus-parking/tests/e2e"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ParkingE2ESuite struct {
	e2e.SharedSuite
}

func TestParkingE2ESuite(t *testing.T) {
	suite.Run(t, new(ParkingE2ESuite))
}

func (s *ParkingE2ESuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func intPtr(v int) *int { return &v }

func reservationBody(plate string) request.CreateReservationRequest {
	return request.CreateReservationRequest{
		PermitType:   "Student",
		LicensePlate: plate,
		ArrivalTime:  "08:30",
	}
}

func (s *ParkingE2ESuite) TestListLots() {
	s.Run("sorted by name", func() {
		dbtest.InsertLot(s.T(), s.DB, "Zeta Garage", 50, intPtr(10))
		dbtest.InsertLot(s.T(), s.DB, "Alpha Lot", 31, intPtr(31))
		dbtest.InsertLot(s.T(), s.DB, "Mid Deck", 80, nil)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/lots", nil, "")

		var res resdto.LotListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		require.Equal(s.T(), 3, res.Count)
		names := []string{res.Lots[0].Name, res.Lots[1].Name, res.Lots[2].Name}
		assert.Equal(s.T(), []string{"Alpha Lot", "Mid Deck", "Zeta Garage"}, names)

		assert.Equal(s.T(), "Full", res.Lots[0].Status)
		assert.Equal(s.T(), 0, res.Lots[0].Available)
		assert.Equal(s.T(), 80, res.Lots[1].Available)
		assert.Equal(s.T(), "Good", res.Lots[1].Status)
		assert.Equal(s.T(), 40, res.Lots[2].Available)
	})

	s.Run("search matches name", func() {
		dbtest.InsertLot(s.T(), s.DB, "North Garage", 50, intPtr(0))
		dbtest.InsertLot(s.T(), s.DB, "South Lot", 50, intPtr(0))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/lots?search=garage", nil, "")

		var res resdto.LotListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		require.Equal(s.T(), 1, res.Count)
		assert.Equal(s.T(), "North Garage", res.Lots[0].Name)
	})

	s.Run("wildcard characters match literally", func() {
		dbtest.InsertLot(s.T(), s.DB, "North Garage", 50, intPtr(0))
		dbtest.InsertLot(s.T(), s.DB, "Lot_B", 50, intPtr(0))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/lots?search=%25", nil, "")
		var res resdto.LotListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		assert.Zero(s.T(), res.Count)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/lots?search=t_b", nil, "")
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		require.Equal(s.T(), 1, res.Count)
		assert.Equal(s.T(), "Lot_B", res.Lots[0].Name)
	})

	s.Run("unknown lot", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/lots/999999", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Parking lot not found")
	})
}

func (s *ParkingE2ESuite) TestReserve() {
	s.Run("until full", func() {
		lotID := dbtest.InsertLot(s.T(), s.DB, "Small Lot", 2, nil)
		path := fmt.Sprintf("/api/lots/%d/reservations", lotID)

		for i := 1; i <= 2; i++ {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, reservationBody(fmt.Sprintf("ABC-%d", i)), "")
			var res resdto.CreateReservationResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
			assert.Equal(s.T(), i, res.Occupancy.Occupied)
			assert.Equal(s.T(), "guest", res.Reservation.UserID)
		}

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, reservationBody("ABC-3"), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Lot full")

		assert.Equal(s.T(), 2, dbtest.Occupied(s.T(), s.DB, lotID))
		assert.Equal(s.T(), 2, dbtest.CountReservations(s.T(), s.DB, lotID))
	})

	s.Run("concurrent requests never exceed capacity", func() {
		const capacity, attempts = 5, 20
		lotID := dbtest.InsertLot(s.T(), s.DB, "Race Lot", capacity, intPtr(0))
		path := fmt.Sprintf("/api/lots/%d/reservations", lotID)

		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, reservationBody(fmt.Sprintf("RACE-%d", i)), "")
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		created, full := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				full++
			}
		}
		assert.Equal(s.T(), capacity, created)
		assert.Equal(s.T(), attempts-capacity, full)
		assert.Equal(s.T(), capacity, dbtest.Occupied(s.T(), s.DB, lotID))
		assert.Equal(s.T(), capacity, dbtest.CountReservations(s.T(), s.DB, lotID))
	})

	s.Run("invalid permit type", func() {
		lotID := dbtest.InsertLot(s.T(), s.DB, "Strict Lot", 10, nil)
		body := reservationBody("XYZ-1")
		body.PermitType = "Staff"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/lots/%d/reservations", lotID), body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request")
		assert.Equal(s.T(), 0, dbtest.CountReservations(s.T(), s.DB, lotID))
	})
}

func (s *ParkingE2ESuite) TestAdmin() {
	s.Run("occupancy requires a token", func() {
		lotID := dbtest.InsertLot(s.T(), s.DB, "Guarded Lot", 31, intPtr(5))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("/api/admin/lots/%d/occupancy", lotID),
			request.UpdateOccupancyRequest{Occupied: intPtr(0)}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Admin token required")
	})

	s.Run("expired token", func() {
		token := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(s.T(), "admin", "admin")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/analytics", nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("wrong password", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/admin/login",
			request.LoginRequest{Password: "nope"}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid password")
	})

	s.Run("update occupancy with session cookie", func() {
		lotID := dbtest.InsertLot(s.T(), s.DB, "Admin Lot", 31, intPtr(31))
		adminCookie := authtest.LoginAdmin(s.T(), s.Router, config.TestAdminPassword)
		path := fmt.Sprintf("/api/admin/lots/%d/occupancy", lotID)

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPut, path,
			request.UpdateOccupancyRequest{Occupied: intPtr(0)}, []*http.Cookie{adminCookie}, "")
		var res resdto.OccupancyResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		assert.Equal(s.T(), 31, res.Available)
		assert.Equal(s.T(), "Good", res.Status)
		assert.Equal(s.T(), 0, dbtest.Occupied(s.T(), s.DB, lotID))

		w = httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPut, path,
			request.UpdateOccupancyRequest{Occupied: intPtr(32)}, []*http.Cookie{adminCookie}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity,
			"Occupied count must be between 0 and capacity")
		assert.Equal(s.T(), 0, dbtest.Occupied(s.T(), s.DB, lotID))
	})

	s.Run("analytics and reservation log with bearer token", func() {
		lotA := dbtest.InsertLot(s.T(), s.DB, "A Lot", 100, intPtr(25))
		dbtest.InsertLot(s.T(), s.DB, "B Lot", 100, intPtr(75))
		token := authtest.NewJWTHelper(s.Config.JWT).GenerateAdminToken(s.T())

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/analytics", nil, token)
		var analytics resdto.AnalyticsResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &analytics)
		assert.Equal(s.T(), 2, analytics.TotalLots)
		assert.Equal(s.T(), 200, analytics.TotalCapacity)
		assert.Equal(s.T(), 100, analytics.TotalOccupied)
		assert.Equal(s.T(), 100, analytics.TotalAvailable)
		assert.InDelta(s.T(), 50.0, analytics.UtilizationPct, 0.001)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/lots/%d/reservations", lotA), reservationBody("LOG-1"), "")
		require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/admin/lots/%d/reservations", lotA), nil, token)
		var list resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		require.Equal(s.T(), 1, list.Count)
		assert.Equal(s.T(), "LOG-1", list.Reservations[0].LicensePlate)
	})
}

func (s *ParkingE2ESuite) TestDetection() {
	s.Run("no classifier configured", func() {
		w := httptest.PerformUpload(s.T(), s.Router, "/api/detections", "image", "spot.png", []byte("not really a png"))
		httptest.AssertErrorResponse(s.T(), w, http.StatusServiceUnavailable, "Classification is unavailable")
	})

	s.Run("body above the upload cap", func() {
		huge := make([]byte, 12<<20)
		w := httptest.PerformUpload(s.T(), s.Router, "/api/detections", "image", "huge.png", huge)
		httptest.AssertErrorResponse(s.T(), w, http.StatusRequestEntityTooLarge, "too large")
	})

	s.Run("missing file", func() {
		w := httptest.PerformUpload(s.T(), s.Router, "/api/detections", "", "", nil)
		assert.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}
