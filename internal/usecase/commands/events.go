package commands

import (
	"context"
	"log/slog"
	"time"

	"gin-auction-service/internal/usecase/shared"
)

const publishTimeout = 2 * time.Second

// publishAfterCommit is best effort: the change is already committed, so a
// failed publish is logged and never returned.
func publishAfterCommit(ctx context.Context, publisher shared.EventPublisher, logger *slog.Logger, event shared.Event) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish event",
			"type", string(event.Type),
			"auction_id", event.AuctionID.String(),
			"error", err.Error())
	}
}
