package worker

import (
	"context"
	"log/slog"
	"time"

	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/usecase/shared"
)

const (
	retryBase = 5 * time.Second
	retryCap  = 30 * time.Minute
)

type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

type OutboxMetrics interface {
	OutboxDelivered(topic string)
	OutboxFailed(topic string, final bool)
}

// OutboxDispatcher delivers jobs written in the same transaction as the state change
// they describe. Delivery is at-least-once; consumers dedupe on the payload ids.
type OutboxDispatcher struct {
	loop
	uow       shared.UnitOfWork
	publisher Publisher
	metrics   OutboxMetrics
	clock     clock.Clock
	batchSize int32
	maxTries  int32
}

func NewOutboxDispatcher(uow shared.UnitOfWork, publisher Publisher, metrics OutboxMetrics, clk clock.Clock, cfg config.Config) *OutboxDispatcher {
	d := &OutboxDispatcher{
		uow:       uow,
		publisher: publisher,
		metrics:   metrics,
		clock:     clk,
		batchSize: cfg.Outbox.BatchSize,
		maxTries:  cfg.Outbox.MaxAttempts,
	}
	d.loop = loop{name: "outbox", interval: cfg.Outbox.Interval, tick: d.tickOnce}
	return d
}

func (d *OutboxDispatcher) tickOnce(ctx context.Context) {
	if _, err := d.DispatchOnce(ctx); err != nil && ctx.Err() == nil {
		slog.Error("outbox dispatch failed", "error", err.Error())
	}
}

// DispatchOnce claims one batch of due jobs and returns how many were delivered.
func (d *OutboxDispatcher) DispatchOnce(ctx context.Context) (int, error) {
	delivered := 0
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		delivered = 0
		now := d.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, d.batchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			pubErr := d.publisher.Publish(ctx, job.Topic, job.Payload)
			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID, now); err != nil {
					return err
				}
				d.metrics.OutboxDelivered(job.Topic)
				delivered++
				continue
			}

			attempts := job.Attempts + 1
			if attempts >= d.maxTries {
				slog.Error("outbox job abandoned", "job_id", job.ID, "topic", job.Topic, "attempts", attempts, "error", pubErr.Error())
				if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, pubErr.Error(), now); err != nil {
					return err
				}
				d.metrics.OutboxFailed(job.Topic, true)
				continue
			}

			slog.Warn("outbox publish failed, will retry", "job_id", job.ID, "topic", job.Topic, "attempts", attempts, "error", pubErr.Error())
			if err := tx.Notifications().MarkRetry(ctx, tx.DB(), job.ID, pubErr.Error(), now.Add(Backoff(attempts))); err != nil {
				return err
			}
			d.metrics.OutboxFailed(job.Topic, false)
		}
		return nil
	})
	return delivered, err
}

// Backoff doubles from retryBase per attempt, capped at retryCap.
func Backoff(attempts int32) time.Duration {
	if attempts < 1 {
		return retryBase
	}
	d := retryBase
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= retryCap {
			return retryCap
		}
	}
	return d
}
