package worker

import (
	"context"
	"log/slog"

	"gym-booking/internal/pkg/config"
)

type StaleOrderReconciler interface {
	SweepStale(ctx context.Context) (int, error)
}

type SweepMetrics interface {
	SweepSettled(n int)
}

// PendingOrderSweeper settles PENDING orders whose webhook never arrived and
// whose buyer never came back to poll.
type PendingOrderSweeper struct {
	loop
	reconciler StaleOrderReconciler
	metrics    SweepMetrics
}

func NewPendingOrderSweeper(reconciler StaleOrderReconciler, metrics SweepMetrics, cfg config.Config) *PendingOrderSweeper {
	s := &PendingOrderSweeper{reconciler: reconciler, metrics: metrics}
	s.loop = loop{name: "pending-order-sweeper", interval: cfg.Sweeper.Interval, tick: s.tickOnce}
	return s
}

func (s *PendingOrderSweeper) tickOnce(ctx context.Context) {
	settled, err := s.reconciler.SweepStale(ctx)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error("pending order sweep failed", "error", err.Error())
		}
		return
	}
	if settled > 0 {
		s.metrics.SweepSettled(settled)
		slog.Info("pending orders settled by sweeper", "count", settled)
	}
}
