package bootstrap

import (
	"context"

	"gym-booking/internal/infra/db"
	"gym-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB applies pending migrations (when enabled) before opening the pool.
func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	if cfg.Server.AutoMigrate {
		if err := db.Migrate(cfg.Server.MigrationsPath, cfg.DB.BuildDSN()); err != nil {
			return nil, err
		}
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
