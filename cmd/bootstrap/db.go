package bootstrap

import (
	"context"
	"log/slog"

	"gin-auction-service/internal/infra/db"
	"gin-auction-service/internal/pkg/config"
	"gin-auction-service/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB owns the pool for the life of the app: it is pinged again on start and
// closed after the HTTP server and scheduler have stopped.
func NewDB(lc fx.Lifecycle, cfg config.DBConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to connect to postgres at %s:%s", cfg.Host, cfg.Port)
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := pool.Ping(ctx); err != nil {
				return errs.Wrap(err, "postgres not reachable")
			}
			stat := pool.Stat()
			logger.Info("database pool ready", "max_conns", stat.MaxConns(), "total_conns", stat.TotalConns())
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("closing database pool", "acquired_conns", pool.Stat().AcquiredConns())
			cleanup()
			return nil
		},
	})

	return pool, nil
}
