package api

import (
	"net/http"

	reqdto "campus-parking/internal/handler/dto/request"
	resdto "campus-parking/internal/handler/dto/response"
	"campus-parking/internal/handler/httperr"
	"campus-parking/internal/pkg/config"
	"campus-parking/internal/pkg/cookie"
	"campus-parking/internal/usecase/commands"
	"campus-parking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	auth      commands.AuthCommands
	occupancy commands.OccupancyCommands
	lots      queries.LotQueries
	cookieCfg config.CookieConfig
}

func NewAdminHandler(
	auth commands.AuthCommands,
	occupancy commands.OccupancyCommands,
	lots queries.LotQueries,
	cfg config.Config,
) *AdminHandler {
	return &AdminHandler{
		auth:      auth,
		occupancy: occupancy,
		lots:      lots,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Admin login
// @Description Check the admin password and issue a session token (also set as an http-only cookie)
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.auth.Login(c.Request.Context(), req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	cookie.SetAdminToken(c, h.cookieCfg, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Admin logout
// @Tags admin
// @Success 204 "No Content"
// @Router /api/admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	cookie.ClearAdminToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Set occupancy
// @Description Overwrite a lot's occupied count; must stay within 0..capacity
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lot ID"
// @Param request body reqdto.UpdateOccupancyRequest true "Occupancy"
// @Success 200 {object} resdto.OccupancyResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/lots/{id}/occupancy [put]
func (h *AdminHandler) UpdateOccupancy(c *gin.Context) {
	lotID, ok := lotIDParam(c)
	if !ok {
		return
	}
	var req reqdto.UpdateOccupancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.occupancy.SetOccupied(c.Request.Context(), lotID, *req.Occupied)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOccupancyResult(result))
}

// @Summary Campus analytics
// @Description Total capacity, occupancy and per-lot utilization
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AnalyticsResponse
// @Failure 401 {object} httperr.Response
// @Router /api/admin/analytics [get]
func (h *AdminHandler) Analytics(c *gin.Context) {
	analytics, err := h.lots.Analytics(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCampusAnalytics(analytics))
}
