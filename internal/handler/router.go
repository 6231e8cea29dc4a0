package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"flightdeals/internal/handler/api"
	"flightdeals/internal/handler/middleware"
	"flightdeals/internal/pkg/config"
	"flightdeals/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Promotions *api.PromotionHandler
	Bookmarks  *api.BookmarkHandler
	Admin      *api.AdminHandler
	Me         *api.MeHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter, m *metrics.Metrics) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, h, authMiddleware, limiter, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter, m *metrics.Metrics) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.Authenticate(), authMiddleware.RequireLogin())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/me", Handler: h.Me.Get},
			{Method: http.MethodPatch, Path: "/me", Handler: h.Me.Update},
			{Method: http.MethodGet, Path: "/bookmarks", Handler: h.Bookmarks.ListSaved},
		})

		promotions := apiGroup.Group("/promotions")
		{
			addRoutes(promotions, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Promotions.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Promotions.Get},
				{Method: http.MethodGet, Path: "/:id/bookmark", Handler: h.Bookmarks.Check},
				{Method: http.MethodPost, Path: "/:id/bookmark/toggle", Handler: h.Bookmarks.Toggle, Mw: []gin.HandlerFunc{limiter.Middleware()}},
			})
		}

		// is_admin is re-read from the store inside every admin use case
		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
				{Method: http.MethodGet, Path: "/promotions", Handler: h.Admin.ListPromotions},
				{Method: http.MethodGet, Path: "/orders", Handler: h.Admin.ListOrders},
			})

			mutations := admin.Group("")
			mutations.Use(limiter.Middleware())
			addRoutes(mutations, []route{
				{Method: http.MethodPost, Path: "/promotions", Handler: h.Admin.CreatePromotion},
				{Method: http.MethodPatch, Path: "/promotions/:id", Handler: h.Admin.UpdatePromotion},
				{Method: http.MethodDelete, Path: "/promotions/:id", Handler: h.Admin.DeletePromotion},
				{Method: http.MethodDelete, Path: "/users/:id", Handler: h.Admin.DeleteUser},
				{Method: http.MethodPost, Path: "/users/:id/admin", Handler: h.Admin.GrantAdmin},
				{Method: http.MethodPatch, Path: "/users/:id/subscription", Handler: h.Admin.UpdateSubscription},
				{Method: http.MethodPatch, Path: "/orders/:id/status", Handler: h.Admin.UpdateOrderStatus},
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
