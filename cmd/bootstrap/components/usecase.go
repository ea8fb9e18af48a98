package components

import (
	"time"

	"gym-booking/internal/infra/metrics"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/usecase"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"

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
	NewBusinessMetrics,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRedemptionCommands,
		commands.NewCheckoutCommands,
		commands.NewReconciler,
		commands.NewBookingAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		NewCreditQueries,
		NewCatalogQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBusinessMetrics(reg *metrics.Registry) commands.BusinessMetrics {
	return reg
}

func NewCreditQueries(rs queries.CreditReadStore, clk clock.Clock, cfg config.Config) queries.CreditQueries {
	window := time.Duration(cfg.Credit.ExpiringSoonWindowDays) * 24 * time.Hour
	return queries.NewCreditQueries(rs, clk, window, cfg.Credit.RecentUsageLimit)
}

func NewCatalogQueries(rs queries.CatalogReadStore, clk clock.Clock, cfg config.Config) (queries.CatalogQueries, error) {
	loc, err := time.LoadLocation(cfg.Credit.CatalogTimeZone)
	if err != nil {
		return nil, err
	}
	return queries.NewCatalogQueries(rs, clk, loc, cfg.Credit.CatalogWindowDays), nil
}
