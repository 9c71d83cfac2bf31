package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"gin-auction-service/internal/pkg/errs"
	"gin-auction-service/internal/usecase/shared"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const subscriberBuffer = 16

// RedisBus fans auction events out over a single Redis pub/sub channel.
// Subscribers filter by auction id on their side.
type RedisBus struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

func NewRedisBus(client *redis.Client, channel string, logger *slog.Logger) *RedisBus {
	return &RedisBus{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

func (b *RedisBus) Publish(ctx context.Context, event shared.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode event")
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return errs.Wrapf(err, "failed to publish %s", event.Type)
	}
	return nil
}

func (b *RedisBus) Subscribe(ctx context.Context, auctionID uuid.UUID) (<-chan shared.Event, error) {
	pubsub := b.client.Subscribe(ctx, b.channel)
	// Receive blocks until the subscription is confirmed so no event published
	// after Subscribe returns can be missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errs.Wrap(err, "failed to subscribe to auction events")
	}

	out := make(chan shared.Event, subscriberBuffer)
	go func() {
		defer close(out)
		defer pubsub.Close()

		msgs := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				var ev shared.Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					b.logger.Warn("dropping malformed event", "error", err.Error())
					continue
				}
				if ev.AuctionID != auctionID {
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (b *RedisBus) Close() error {
	return b.client.Close()
}
