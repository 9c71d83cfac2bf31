package bootstrap

import (
	"gin-auction-service/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule loads the environment once. The DB section is provided on its own
// so the pool does not depend on unrelated settings.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.DBConfig { return cfg.DB },
	),
)
