package bootstrap

import (
	"flightdeals/internal/pkg/config"
	"flightdeals/internal/pkg/metrics"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		metrics.New,
	),
)
