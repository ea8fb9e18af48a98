package bootstrap

import (
	"context"

	"gym-booking/internal/infra/broker"
	"gym-booking/internal/infra/metrics"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/shared"
	"gym-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewOutboxDispatcher,
		NewPendingOrderSweeper,
	),
	fx.Invoke(StartWorkers),
)

func NewOutboxDispatcher(uow shared.UnitOfWork, pub broker.Publisher, reg *metrics.Registry, clk clock.Clock, cfg config.Config) *worker.OutboxDispatcher {
	return worker.NewOutboxDispatcher(uow, pub, reg, clk, cfg)
}

func NewPendingOrderSweeper(rec commands.Reconciler, reg *metrics.Registry, cfg config.Config) *worker.PendingOrderSweeper {
	return worker.NewPendingOrderSweeper(rec, reg, cfg)
}

func StartWorkers(lc fx.Lifecycle, cfg config.Config, outbox *worker.OutboxDispatcher, sweeper *worker.PendingOrderSweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Job context outlives the start hook; Stop cancels it.
			outbox.Start(context.Background())
			if cfg.Sweeper.Enabled {
				sweeper.Start(context.Background())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			outbox.Stop()
			return nil
		},
	})
}
