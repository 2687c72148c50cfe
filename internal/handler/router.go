package handler

import (
	"net/http"

	"campus-parking/internal/handler/api"
	"campus-parking/internal/handler/middleware"
	"campus-parking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// image limit plus multipart framing
const maxUploadBytes = 11 << 20

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Lot          *api.LotHandler
	Reservation  *api.ReservationHandler
	Admin        *api.AdminHandler
	Detection    *api.DetectionHandler
	AuthRequired *middleware.AuthMiddleware
}

func NewHandlers(
	lot *api.LotHandler,
	reservation *api.ReservationHandler,
	admin *api.AdminHandler,
	detection *api.DetectionHandler,
	auth *middleware.AuthMiddleware,
) Handlers {
	return Handlers{
		Lot:          lot,
		Reservation:  reservation,
		Admin:        admin,
		Detection:    detection,
		AuthRequired: auth,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		lots := apiGroup.Group("/lots")
		addRoutes(lots, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Lot.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Lot.Get},
			{Method: http.MethodPost, Path: "/:id/reservations", Handler: h.Reservation.Create},
		})

		addRoutes(apiGroup, []route{
			{
				Method:  http.MethodPost,
				Path:    "/detections",
				Handler: h.Detection.Detect,
				Mw:      []gin.HandlerFunc{middleware.LimitBody(maxUploadBytes)},
			},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Admin.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Admin.Logout},
			})

			authRequired := admin.Group("")
			authRequired.Use(h.AuthRequired.RequireAdmin())
			addRoutes(authRequired, []route{
				{Method: http.MethodPut, Path: "/lots/:id/occupancy", Handler: h.Admin.UpdateOccupancy},
				{Method: http.MethodGet, Path: "/lots/:id/reservations", Handler: h.Reservation.ListByLot},
				{Method: http.MethodGet, Path: "/analytics", Handler: h.Admin.Analytics},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
