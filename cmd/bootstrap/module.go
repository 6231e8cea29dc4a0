package bootstrap

import (
	"flightdeals/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)
