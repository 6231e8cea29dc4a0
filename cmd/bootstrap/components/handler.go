package components

import (
	"flightdeals/internal/handler"
	"flightdeals/internal/handler/api"
	"flightdeals/internal/handler/middleware"
	"flightdeals/internal/pkg/config"
	"flightdeals/internal/pkg/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPromotionHandler,
		api.NewBookmarkHandler,
		api.NewAdminHandler,
		api.NewMeHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(cfg config.Config, m *metrics.Metrics) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, m)
}

func NewHandlers(p *api.PromotionHandler, b *api.BookmarkHandler, a *api.AdminHandler, me *api.MeHandler) handler.Handlers {
	return handler.Handlers{Promotions: p, Bookmarks: b, Admin: a, Me: me}
}
