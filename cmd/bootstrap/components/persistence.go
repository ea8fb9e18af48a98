package components

import (
	"gym-booking/internal/infra/readstore"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/infra/uow"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
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
		// Credit
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CreditReadQueries)),
		),
		fx.Annotate(
			readstore.NewCreditReadStore,
			fx.As(new(queries.CreditReadStore)),
		),
		// Catalog
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogReadQueries)),
		),
		fx.Annotate(
			NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		// Order
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.OrderReadQueries)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var repositoryModule = fx.Module("persistence/repository",
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

func NewCatalogReadStore(q readstore.CatalogReadQueries, db sqlc.DBTX, cfg config.Config) *readstore.CatalogReadStore {
	return readstore.NewCatalogReadStore(q, db, cfg.Credit.DefaultSessionPrice)
}
