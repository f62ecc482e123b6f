package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/api"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	catalogHandler *api.CatalogHandler,
	commissionHandler *api.CommissionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, availabilityHandler, bookingHandler, catalogHandler, commissionHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	catalogHandler *api.CatalogHandler,
	commissionHandler *api.CommissionHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		public := apiGroup.Group("/public")
		{
			addRoutes(public, []route{
				{Method: http.MethodPost, Path: "/availability", Handler: availabilityHandler.GetAvailableSlots},
				{Method: http.MethodPost, Path: "/booking", Handler: bookingHandler.CreateBooking},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/auth/login", Handler: authHandler.Login},
			{Method: http.MethodGet, Path: "/services", Handler: catalogHandler.ListServices},
		})

		authRequired := apiGroup.Group("")
		authRequired.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/employees", Handler: catalogHandler.ListEmployees},
				{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: bookingHandler.CancelBooking},
			})

			adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/commissions", Handler: commissionHandler.ListCommissions, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/services/:id", Handler: catalogHandler.UpdateService, Mw: adminOnly},
			})
		}
	}
}

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
