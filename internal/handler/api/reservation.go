package api

import (
	"fmt"
	"net/http"

	reqdto "campus-parking/internal/handler/dto/request"
	resdto "campus-parking/internal/handler/dto/response"
	"campus-parking/internal/handler/httperr"
	"campus-parking/internal/usecase/commands"
	"campus-parking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.OccupancyCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.OccupancyCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Reserve a spot
// @Description Record a reservation and take one spot, rejected with 409 when the lot is full
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path int true "Lot ID"
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/lots/{id}/reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	lotID, ok := lotIDParam(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Reserve(c.Request.Context(), req.ToInput(lotID))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/admin/lots/%d/reservations", lotID))
	c.JSON(http.StatusCreated, resdto.FromReserveResult(result))
}

// @Summary List recent reservations
// @Description Most recent reservations for a lot, newest first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Param limit query int false "Maximum rows (default 50, max 500)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/lots/{id}/reservations [get]
func (h *ReservationHandler) ListByLot(c *gin.Context) {
	lotID, ok := lotIDParam(c)
	if !ok {
		return
	}
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	items, err := h.q.ListByLot(c.Request.Context(), lotID, query.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationListItems(items))
}
