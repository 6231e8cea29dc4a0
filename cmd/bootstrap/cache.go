package bootstrap

import (
	"context"
	"log/slog"

	"flightdeals/internal/infra/cache"
	"flightdeals/internal/pkg/config"
	"flightdeals/internal/pkg/metrics"
	"flightdeals/internal/usecase/commands"
	"flightdeals/internal/usecase/queries"
	"flightdeals/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCustomerDirectory,
	),
)

// CustomerDirectory is the order-customer lookup and the hook that keeps it
// fresh after profile writes.
type CustomerDirectory struct {
	fx.Out

	Directory   queries.CustomerDirectory
	Invalidator commands.CacheInvalidator
}

// NewCustomerDirectory falls back to direct profile lookups when redis is not
// configured or unreachable at startup.
func NewCustomerDirectory(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, m *metrics.Metrics) CustomerDirectory {
	direct := queries.NewProfileDirectory(uow)
	uncached := CustomerDirectory{Directory: direct, Invalidator: commands.NoopInvalidator{}}

	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		slog.Warn("customer cache disabled", "error", err)
		return uncached
	}
	if client == nil {
		return uncached
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	c := cache.NewCustomerCache(client, direct, cfg, m)
	return CustomerDirectory{Directory: c, Invalidator: c}
}
