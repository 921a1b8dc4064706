package components

import (
	"skipass-api/internal/infra/readstore"
	"skipass-api/internal/infra/redisstore"
	sqlc "skipass-api/internal/infra/sqlc/generated"
	"skipass-api/internal/infra/uow"
	"skipass-api/internal/pkg/config"
	"skipass-api/internal/usecase/commands"
	"skipass-api/internal/usecase/queries"
	"skipass-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	cacheModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Purchase
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PurchaseReadQueries)),
		),
		fx.Annotate(
			readstore.NewPurchaseReadStore,
			fx.As(new(queries.PassReadStore)),
		),
		// Resort, wrapped by the catalog cache below
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ResortReadQueries)),
		),
		NewResortReadStore,
	),
)

var cacheModule = fx.Module("persistence/cache",
	fx.Provide(
		NewResortCache,
		func(c *redisstore.ResortCache) queries.ResortReadStore { return c },
		func(c *redisstore.ResortCache) commands.ResortLookup { return c },
		fx.Annotate(
			redisstore.NewFavoriteStore,
			fx.As(new(shared.FavoriteStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

// Catalog reads outside a transaction take their own read-only snapshot.
func NewResortReadStore(q readstore.ResortReadQueries, db sqlc.DBTX, u shared.UnitOfWork) *readstore.ResortReadStore {
	return readstore.NewResortReadStore(q, db).WithSnapshots(u)
}

func NewResortCache(inner *readstore.ResortReadStore, client redisstore.Client, cfg config.Config, metrics redisstore.CacheMetrics) *redisstore.ResortCache {
	return redisstore.NewResortCache(inner, client, cfg.Redis.CatalogTTL, metrics)
}
