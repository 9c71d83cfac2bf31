package components

import (
	"log/slog"

	"gin-auction-service/internal/handler"
	"gin-auction-service/internal/handler/api"
	"gin-auction-service/internal/handler/middleware"
	"gin-auction-service/internal/pkg/config"
	"gin-auction-service/internal/usecase/queries"
	"gin-auction-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuctionHandler,
		api.NewBidHandler,
		NewStreamHandler,
		middleware.NewAuthMiddleware,
		func(a *api.AuctionHandler, b *api.BidHandler, s *api.StreamHandler) handler.Handlers {
			return handler.Handlers{Auctions: a, Bids: b, Stream: s}
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewStreamHandler(sub shared.EventSubscriber, q queries.AuctionQueries, cfg config.Config, logger *slog.Logger) *api.StreamHandler {
	return api.NewStreamHandler(sub, q, cfg.CORS.AllowOrigins, logger)
}
