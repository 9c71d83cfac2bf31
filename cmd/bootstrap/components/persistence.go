package components

import (
	"gin-auction-service/internal/infra/db"
	"gin-auction-service/internal/infra/readstore"
	"gin-auction-service/internal/infra/uow"
	"gin-auction-service/internal/usecase/queries"
	"gin-auction-service/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewAuctionReadStore,
			fx.As(new(queries.AuctionReadStore)),
		),
		fx.Annotate(
			readstore.NewBidReadStore,
			fx.As(new(queries.BidReadStore)),
		),
	),
)

// Write-side repositories are created per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
