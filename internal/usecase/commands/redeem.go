package commands

import (
	"context"
	"log/slog"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/catalog"
	"gym-booking/internal/domain/credit"
	"gym-booking/internal/infra"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/pkg/ptr"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound     = errs.New("session not found")
	ErrAllSlotsTaken       = errs.New("all requested sessions are already booked")
	ErrAlreadyBooked       = errs.New("session already booked")
	ErrInsufficientCredits = credit.ErrInsufficientCredits
)

type SlotRequest struct {
	TemplateID uuid.UUID
	Date       string
}

type BookedSession struct {
	ID         uuid.UUID
	TemplateID uuid.UUID
	Date       string
}

type RedemptionResult struct {
	Bookings         []BookedSession
	CreditsUsed      int
	CreditsRemaining int
}

type RedemptionCommands interface {
	RedeemCredits(ctx context.Context, customerID uuid.UUID, requested []SlotRequest) (*RedemptionResult, error)
}

type redemptionCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics BusinessMetrics
}

func NewRedemptionCommands(uow shared.UnitOfWork, clk clock.Clock, metrics BusinessMetrics) RedemptionCommands {
	return &redemptionCommandsImpl{
		uow:     uow,
		clock:   clk,
		metrics: metrics,
	}
}

// RedeemCredits books the requested slots that are still free, one credit each,
// or nothing at all.
func (uc *redemptionCommandsImpl) RedeemCredits(ctx context.Context, customerID uuid.UUID, requested []SlotRequest) (*RedemptionResult, error) {
	slots, err := parseSlots(requested)
	if err != nil {
		return nil, err
	}
	if _, err = loadTemplates(ctx, uc.uow.CommandReads(), slots); err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	// Fast path only; the locked re-read inside the transaction is authoritative.
	batches, err := uc.uow.CommandReads().UsableBatches(ctx, customerID, now)
	if err != nil {
		return nil, err
	}
	if err = credit.EnsureSufficient(batches, len(slots), now); err != nil {
		uc.metrics.RedemptionRejected("insufficient_credits")
		return nil, err
	}

	var result *RedemptionResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, terr := tx.Reads().BookedSlots(ctx, slots)
		if terr != nil {
			return terr
		}
		toBook := booking.FilterTaken(slots, taken)
		if len(toBook) == 0 {
			return ErrAllSlotsTaken
		}

		locked, terr := tx.Credits().LockUsable(ctx, tx.DB(), customerID, now)
		if terr != nil {
			return terr
		}
		if terr = credit.EnsureSufficient(locked, len(toBook), now); terr != nil {
			return terr
		}

		cursor := credit.NewCursor(locked, now)
		created := make([]BookedSession, 0, len(toBook))
		for _, slot := range toBook {
			b, terr := uc.bookWithCredit(ctx, tx, cursor, slot, customerID, now)
			if terr != nil {
				return terr
			}
			created = append(created, BookedSession{
				ID:         b.ID(),
				TemplateID: slot.TemplateID(),
				Date:       slot.DateString(),
			})
		}

		result = &RedemptionResult{
			Bookings:         created,
			CreditsUsed:      len(created),
			CreditsRemaining: cursor.Remaining(),
		}
		return nil
	})
	if err != nil {
		switch {
		case errs.Is(err, ErrAllSlotsTaken):
			uc.metrics.RedemptionRejected("all_slots_taken")
		case errs.Is(err, ErrAlreadyBooked):
			uc.metrics.RedemptionRejected("already_booked")
		case errs.Is(err, credit.ErrInsufficientCredits):
			uc.metrics.RedemptionRejected("insufficient_credits")
		}
		return nil, err
	}

	uc.metrics.BookingsCreated(string(booking.FundedByCredit), result.CreditsUsed)
	uc.metrics.CreditsConsumed(result.CreditsUsed)
	slog.Info("credits redeemed",
		"customer_id", customerID,
		"bookings", result.CreditsUsed,
		"credits_remaining", result.CreditsRemaining)

	return result, nil
}

func (uc *redemptionCommandsImpl) bookWithCredit(
	ctx context.Context,
	tx shared.Tx,
	cursor *credit.Cursor,
	slot booking.Slot,
	customerID uuid.UUID,
	now time.Time,
) (*booking.Booking, error) {
	batch, err := cursor.Take()
	if err != nil {
		return nil, err
	}

	usageID := uuid.New()
	b, err := booking.New(slot, booking.CreditFunded(usageID), now)
	if err != nil {
		return nil, err
	}
	if err = tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrAlreadyBooked)
		}
		return nil, err
	}
	if err = tx.Credits().RecordUsage(ctx, tx.DB(), credit.NewUsage(usageID, batch.ID(), b.ID(), now)); err != nil {
		return nil, err
	}
	if err = tx.Credits().Debit(ctx, tx.DB(), batch.ID(), credit.CreditsPerSession); err != nil {
		return nil, err
	}

	return b, enqueueEvent(ctx, tx, TopicBookingCreated, BookingEvent{
		BookingID:  b.ID(),
		TemplateID: slot.TemplateID(),
		Date:       slot.DateString(),
		Funding:    string(booking.FundedByCredit),
		CustomerID: ptr.To(customerID),
		OccurredAt: now,
	}, now)
}

func parseSlots(requested []SlotRequest) ([]booking.Slot, error) {
	slots := make([]booking.Slot, 0, len(requested))
	for _, r := range requested {
		s, err := booking.ParseSlot(r.TemplateID, r.Date)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	if err := booking.ValidateRequest(slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// loadTemplates checks every slot names an active template running on that weekday.
func loadTemplates(ctx context.Context, reads shared.CommandReads, slots []booking.Slot) (map[uuid.UUID]catalog.Template, error) {
	ids := make([]uuid.UUID, 0, len(slots))
	seen := make(map[uuid.UUID]struct{}, len(slots))
	for _, s := range slots {
		if _, ok := seen[s.TemplateID()]; ok {
			continue
		}
		seen[s.TemplateID()] = struct{}{}
		ids = append(ids, s.TemplateID())
	}

	templates, err := reads.TemplatesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]catalog.Template, len(templates))
	for _, t := range templates {
		byID[t.ID] = t
	}
	for _, s := range slots {
		t, ok := byID[s.TemplateID()]
		if !ok {
			return nil, errs.Wrapf(ErrSessionNotFound, "template %s", s.TemplateID())
		}
		if err := t.CheckDate(s.Date()); err != nil {
			return nil, err
		}
	}
	return byID, nil
}

func enqueueEvent(ctx context.Context, tx shared.Tx, topic string, payload any, now time.Time) error {
	body, err := encodeEvent(payload)
	if err != nil {
		return errs.Wrapf(err, "encode %s", topic)
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), outboxKindEvent, topic, body, now)
}
