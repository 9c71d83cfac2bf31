package bootstrap

import (
	"context"
	"log/slog"

	"gin-auction-service/internal/infra/scheduler"
	"gin-auction-service/internal/pkg/config"
	"gin-auction-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(
		StartAuctionCloser,
	),
)

func StartAuctionCloser(lc fx.Lifecycle, cfg config.Config, cmds commands.AuctionCommands, logger *slog.Logger) {
	if !cfg.Scheduler.Enabled {
		return
	}

	closer := scheduler.NewCloser(cfg.Scheduler.CloseSpec, cmds, logger.With("component", "auction_closer"))
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return closer.Start()
		},
		OnStop: func(ctx context.Context) error {
			return closer.Stop(ctx)
		},
	})
}
