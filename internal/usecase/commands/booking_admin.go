package commands

import (
	"context"
	"log/slog"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/infra"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type CancelResult struct {
	BookingID       uuid.UUID
	CreditsRestored int
	RestoredBatchID *uuid.UUID
}

type BookingAdminCommands interface {
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*CancelResult, error)
}

type bookingAdminCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics BusinessMetrics
}

func NewBookingAdminCommands(uow shared.UnitOfWork, clk clock.Clock, metrics BusinessMetrics) BookingAdminCommands {
	return &bookingAdminCommandsImpl{
		uow:     uow,
		clock:   clk,
		metrics: metrics,
	}
}

// CancelBooking deletes a booking. A credit-funded booking gets its credit back on the
// exact batch it came from; an order-funded one is only deleted (refunds happen elsewhere).
func (uc *bookingAdminCommandsImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*CancelResult, error) {
	var result *CancelResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().LockByID(ctx, tx.DB(), bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBookingNotFound)
			}
			return err
		}

		result = &CancelResult{BookingID: b.ID()}
		if usageID, ok := b.Funding().CreditUsageID(); ok {
			batchID, used, rerr := tx.Credits().ReleaseUsage(ctx, tx.DB(), usageID)
			if rerr != nil {
				return rerr
			}
			if rerr = tx.Credits().Restore(ctx, tx.DB(), batchID, used); rerr != nil {
				return rerr
			}
			result.CreditsRestored = used
			result.RestoredBatchID = &batchID
		}

		if err = tx.Bookings().Delete(ctx, tx.DB(), b.ID()); err != nil {
			return err
		}

		now := uc.clock.Now()
		ev := BookingEvent{
			BookingID:  b.ID(),
			TemplateID: b.Slot().TemplateID(),
			Date:       b.Slot().DateString(),
			Funding:    string(b.Funding().Kind()),
			OccurredAt: now,
		}
		if orderID, ok := b.Funding().OrderID(); ok {
			ev.OrderID = &orderID
		}
		return enqueueEvent(ctx, tx, TopicBookingCancelled, ev, now)
	})
	if err != nil {
		return nil, err
	}

	if result.CreditsRestored > 0 {
		uc.metrics.CreditsRestored(result.CreditsRestored)
	}
	slog.Info("booking cancelled",
		"booking_id", bookingID,
		"funding", fundingLabel(result),
		"credits_restored", result.CreditsRestored)
	return result, nil
}

func fundingLabel(r *CancelResult) string {
	if r.RestoredBatchID != nil {
		return string(booking.FundedByCredit)
	}
	return string(booking.FundedByOrder)
}
