package bootstrap

import (
	"context"
	"log/slog"

	"flightdeals/internal/infra/db"
	"flightdeals/internal/infra/memstore"
	"flightdeals/internal/infra/readstore"
	"flightdeals/internal/infra/sqlc"
	"flightdeals/internal/infra/uow"
	"flightdeals/internal/pkg/config"
	"flightdeals/internal/usecase/queries"
	"flightdeals/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewPersistence,
	),
)

// Persistence is the write side and the list sources of one storage driver.
type Persistence struct {
	fx.Out

	UoW     shared.UnitOfWork
	Sources queries.Sources
}

func NewPersistence(lc fx.Lifecycle, cfg config.Config) (Persistence, error) {
	if cfg.DB.Driver == config.DriverMemory {
		slog.Warn("using the in-memory store, data is lost on restart")
		store := memstore.New()
		return Persistence{UoW: store, Sources: store.Sources()}, nil
	}

	pool, err := NewDB(lc, cfg)
	if err != nil {
		return Persistence{}, err
	}
	return PostgresPersistence(pool, cfg), nil
}

func PostgresPersistence(pool *pgxpool.Pool, cfg config.Config) Persistence {
	return Persistence{
		UoW:     uow.NewPostgresUoW(pool, sqlc.New(), cfg),
		Sources: readstore.NewSources(pool),
	}
}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
