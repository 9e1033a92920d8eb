package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rentdesk/internal/domain/user"
	"rentdesk/internal/handler/api"
	"rentdesk/internal/handler/middleware"
	"rentdesk/internal/pkg/config"
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
	bookingHandler *api.BookingHandler,
	vehicleHandler *api.VehicleHandler,
	dashboardHandler *api.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, vehicleHandler, dashboardHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	vehicleHandler *api.VehicleHandler,
	dashboardHandler *api.DashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// The booking form is public: catalog, quote and submission need
		// no account.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/vehicles", Handler: vehicleHandler.Catalog},
			{Method: http.MethodGet, Path: "/bookings/quote", Handler: bookingHandler.Quote},
			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.Create},
		})

		staff := apiGroup.Group("")
		staff.Use(authMiddleware.RequireAuth())
		{
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: bookingHandler.Get},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: bookingHandler.Transition},
				{Method: http.MethodGet, Path: "/fleet", Handler: vehicleHandler.Fleet},
				{Method: http.MethodGet, Path: "/customers", Handler: dashboardHandler.Customers},
				{Method: http.MethodGet, Path: "/drivers", Handler: dashboardHandler.Drivers},
			})

			admin := staff.Group("")
			admin.Use(authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/vehicles", Handler: vehicleHandler.Register},
				{Method: http.MethodGet, Path: "/finance/summary", Handler: dashboardHandler.FinancialSummary},
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
