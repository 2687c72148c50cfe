package api

import (
	"net/http"

	reqdto "campus-parking/internal/handler/dto/request"
	resdto "campus-parking/internal/handler/dto/response"
	"campus-parking/internal/handler/httperr"
	"campus-parking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LotHandler struct {
	q queries.LotQueries
}

func NewLotHandler(q queries.LotQueries) *LotHandler {
	return &LotHandler{q: q}
}

// @Summary List parking lots
// @Description List lots sorted by name with live availability, optionally filtered by name or location
// @Tags lots
// @Produce json
// @Param search query string false "Case-insensitive name or location filter"
// @Success 200 {object} resdto.LotListResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/lots [get]
func (h *LotHandler) List(c *gin.Context) {
	var query reqdto.ListLotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	views, err := h.q.List(c.Request.Context(), query.Search)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLotViews(views))
}

// @Summary Get parking lot
// @Description Get a single lot with its availability
// @Tags lots
// @Produce json
// @Param id path int true "Lot ID"
// @Success 200 {object} resdto.LotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/lots/{id} [get]
func (h *LotHandler) Get(c *gin.Context) {
	id, ok := lotIDParam(c)
	if !ok {
		return
	}
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLotView(view))
}
