package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"gin-auction-service/internal/infra/events"
	"gin-auction-service/internal/pkg/config"
	"gin-auction-service/internal/pkg/errs"
	"gin-auction-service/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventBus,
	),
)

// EventBus: Subscriber is nil when Redis is disabled.
type EventBus struct {
	fx.Out

	Publisher  shared.EventPublisher
	Subscriber shared.EventSubscriber
}

func NewEventBus(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (EventBus, error) {
	if !cfg.Redis.Enabled {
		logger.Info("redis disabled, live auction events are off")
		return EventBus{Publisher: events.NewNopBus()}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return EventBus{}, errs.Wrapf(err, "failed to connect to redis at %s", cfg.Redis.Addr)
	}

	bus := events.NewRedisBus(client, cfg.Redis.Channel, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bus.Close()
		},
	})

	return EventBus{Publisher: bus, Subscriber: bus}, nil
}
