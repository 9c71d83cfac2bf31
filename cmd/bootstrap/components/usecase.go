package components

import (
	"gin-auction-service/internal/pkg/clock"
	"gin-auction-service/internal/pkg/config"
	"gin-auction-service/internal/usecase"
	"gin-auction-service/internal/usecase/commands"
	"gin-auction-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	clock.NewRealSleeper,
	func(cfg config.Config) commands.BidPolicy {
		return commands.NewBidPolicy(cfg.Bid)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuctionUseCase,
		commands.NewBidUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAuctionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
