package commands

import (
	"context"
	"log/slog"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/credit"
	"gym-booking/internal/domain/order"
	"gym-booking/internal/domain/user"
	"gym-booking/internal/infra"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/pkg/password"
	"gym-booking/internal/pkg/ptr"
	"gym-booking/internal/usecase/queries"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrOrderNotFound    = errs.New("order not found")
	ErrMissingReference = errs.Validation(errs.New("checkout reference is required"))
)

type Trigger string

const (
	TriggerWebhook Trigger = "webhook"
	TriggerPoll    Trigger = "poll"
	TriggerSweeper Trigger = "sweeper"
)

// WebhookEvent is the provider callback. Its status is never trusted; the checkout is re-fetched.
type WebhookEvent struct {
	EventID   string
	EventType string
	Reference string
	Status    string
}

type Reconciler interface {
	HandleWebhook(ctx context.Context, ev WebhookEvent) error
	ReconcileByReference(ctx context.Context, reference string, actor *uuid.UUID) (*queries.OrderView, error)
	// AwaitSettlement polls until the order leaves PENDING or attempts run out.
	// Running out is not an error; the last observed view is returned.
	AwaitSettlement(ctx context.Context, reference string, actor *uuid.UUID) (*queries.OrderView, error)
	// SweepStale reconciles PENDING orders old enough that their webhook was likely lost.
	SweepStale(ctx context.Context) (int, error)
}

type reconcilerImpl struct {
	uow              shared.UnitOfWork
	provider         PaymentProvider
	orders           queries.OrderReadStore
	clock            clock.Clock
	metrics          BusinessMetrics
	tracer           trace.Tracer
	expirationMonths int
	pollInterval     time.Duration
	pollAttempts     int
	sweep            config.SweeperConfig
}

func NewReconciler(
	uow shared.UnitOfWork,
	provider PaymentProvider,
	orders queries.OrderReadStore,
	clk clock.Clock,
	metrics BusinessMetrics,
	cfg config.Config,
) Reconciler {
	months := cfg.Credit.ExpirationMonths
	if months <= 0 {
		months = credit.DefaultExpirationMonths
	}
	attempts := cfg.Poll.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	return &reconcilerImpl{
		uow:              uow,
		provider:         provider,
		orders:           orders,
		clock:            clk,
		metrics:          metrics,
		tracer:           otel.Tracer("gym-booking/reconcile"),
		expirationMonths: months,
		pollInterval:     cfg.Poll.Interval,
		pollAttempts:     attempts,
		sweep:            cfg.Sweeper,
	}
}

func (uc *reconcilerImpl) HandleWebhook(ctx context.Context, ev WebhookEvent) error {
	if ev.Reference == "" {
		return ErrMissingReference
	}

	o, err := uc.findOrder(ctx, ev.Reference)
	if err != nil {
		return err
	}

	observed, err := uc.observe(ctx, o)
	if err != nil {
		return err
	}

	_, err = uc.apply(ctx, ev.Reference, observed, TriggerWebhook, &ev)
	return err
}

func (uc *reconcilerImpl) ReconcileByReference(ctx context.Context, reference string, actor *uuid.UUID) (*queries.OrderView, error) {
	if reference == "" {
		return nil, ErrMissingReference
	}

	o, err := uc.findOrder(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !o.VisibleTo(actor) {
		return nil, errs.Wrapf(ErrOrderNotFound, "reference %s", reference)
	}

	switch o.Status() {
	case order.StatusPending:
		observed, oerr := uc.observe(ctx, o)
		if oerr != nil {
			return nil, oerr
		}
		if _, err = uc.apply(ctx, reference, observed, TriggerPoll, nil); err != nil {
			return nil, err
		}
	case order.StatusPaid:
		// Heal a paid order whose side effects were lost, without asking the provider again.
		if _, err = uc.apply(ctx, reference, order.ProviderPaid, TriggerPoll, nil); err != nil {
			return nil, err
		}
	}

	return uc.orders.ViewByReference(ctx, reference)
}

func (uc *reconcilerImpl) AwaitSettlement(ctx context.Context, reference string, actor *uuid.UUID) (*queries.OrderView, error) {
	var last *queries.OrderView
	for attempt := 1; attempt <= uc.pollAttempts; attempt++ {
		view, err := uc.ReconcileByReference(ctx, reference, actor)
		switch {
		case err == nil:
			last = view
			if view.Status != string(order.StatusPending) {
				return view, nil
			}
		case errs.Is(err, ErrProviderUnavailable):
			slog.Warn("provider unavailable while awaiting settlement",
				"reference", reference,
				"attempt", attempt,
				"error", err.Error())
		default:
			return nil, err
		}

		if attempt == uc.pollAttempts {
			break
		}
		timer := time.NewTimer(uc.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			if last != nil {
				return last, nil
			}
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if last != nil {
		return last, nil
	}
	// Every attempt hit a provider error; report the stored state rather than failing.
	return uc.orders.ViewByReference(ctx, reference)
}

func (uc *reconcilerImpl) SweepStale(ctx context.Context) (int, error) {
	now := uc.clock.Now()
	var refs []string
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var lerr error
		refs, lerr = tx.Orders().ListStalePending(ctx, tx.DB(), now.Add(-uc.sweep.MinAge), now.Add(-uc.sweep.MaxAge), uc.sweep.BatchSize)
		return lerr
	})
	if err != nil {
		return 0, err
	}

	settled := 0
	for _, ref := range refs {
		if ctx.Err() != nil {
			return settled, ctx.Err()
		}
		o, ferr := uc.findOrder(ctx, ref)
		if ferr != nil {
			slog.Warn("sweeper could not load order", "reference", ref, "error", ferr.Error())
			continue
		}
		observed, oerr := uc.observe(ctx, o)
		if oerr != nil {
			slog.Warn("sweeper could not reach provider", "reference", ref, "error", oerr.Error())
			continue
		}
		decision, aerr := uc.apply(ctx, ref, observed, TriggerSweeper, nil)
		if aerr != nil {
			slog.Error("sweeper failed to reconcile order", "reference", ref, "error", aerr.Error())
			continue
		}
		if decision == order.MarkPaid || decision == order.MarkFailed {
			settled++
		}
	}
	return settled, nil
}

func (uc *reconcilerImpl) findOrder(ctx context.Context, reference string) (*order.Order, error) {
	o, err := uc.uow.CommandReads().OrderByReference(ctx, reference)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, err
	}
	return o, nil
}

// observe asks the provider for the checkout status. Failures, including a status the
// provider should never report, leave the order untouched and reach the caller.
func (uc *reconcilerImpl) observe(ctx context.Context, o *order.Order) (order.ProviderStatus, error) {
	if o.ProviderCheckoutID() == "" {
		return order.ProviderPending, nil
	}

	ctx, span := uc.tracer.Start(ctx, "reconcile.observe", trace.WithAttributes(
		attribute.String("order.reference", o.Reference()),
		attribute.String("payment.provider", uc.provider.Name()),
	))
	defer span.End()

	status, err := uc.provider.GetCheckout(ctx, o.ProviderCheckoutID(), o.Reference())
	if err == nil && status.Status == order.ProviderUnknown {
		err = errs.Newf("unexpected provider status %q", status.Raw)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "provider lookup failed")
		return "", errs.Mark(err, ErrProviderUnavailable)
	}
	span.SetAttributes(attribute.String("payment.status", string(status.Status)))
	return status.Status, nil
}

// apply is the single state transition both triggers funnel into. It locks the order row,
// so concurrent webhook and poll calls serialise here and the loser sees a terminal state.
func (uc *reconcilerImpl) apply(ctx context.Context, reference string, observed order.ProviderStatus, trigger Trigger, ev *WebhookEvent) (order.Decision, error) {
	ctx, span := uc.tracer.Start(ctx, "reconcile.apply", trace.WithAttributes(
		attribute.String("order.reference", reference),
		attribute.String("reconcile.trigger", string(trigger)),
		attribute.String("payment.observed", string(observed)),
	))
	defer span.End()

	var (
		decision order.Decision
		from     order.Status
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		decision = order.NoChange
		now := uc.clock.Now()

		if ev != nil && ev.EventID != "" {
			fresh, rerr := tx.WebhookEvents().Record(ctx, tx.DB(), shared.WebhookEventRecord{
				Provider:          uc.provider.Name(),
				EventID:           ev.EventID,
				EventType:         ev.EventType,
				CheckoutReference: reference,
			})
			if rerr != nil {
				return rerr
			}
			if !fresh {
				slog.Info("duplicate webhook event ignored", "event_id", ev.EventID, "reference", reference)
				return nil
			}
		}

		o, lerr := tx.Orders().LockByReference(ctx, tx.DB(), reference)
		if lerr != nil {
			if infra.IsKind(lerr, infra.KindNotFound) {
				return errs.Mark(lerr, ErrOrderNotFound)
			}
			return lerr
		}
		from = o.Status()
		decision = o.Decide(observed)

		switch decision {
		case order.MarkFailed:
			if err := o.MarkFailed(); err != nil {
				return err
			}
			if _, err := tx.Orders().MarkFailed(ctx, tx.DB(), o.ID()); err != nil {
				return err
			}
			return enqueueEvent(ctx, tx, TopicOrderFailed, orderEvent(o, trigger, now), now)

		case order.MarkPaid:
			if err := o.MarkPaid(now); err != nil {
				return err
			}
			if err := uc.applyPaidEffects(ctx, tx, o, now); err != nil {
				return err
			}
			if _, err := tx.Orders().MarkPaid(ctx, tx.DB(), o.ID(), now); err != nil {
				return err
			}
			return enqueueEvent(ctx, tx, TopicOrderPaid, orderEvent(o, trigger, now), now)

		case order.EnsurePaidEffects:
			return uc.applyPaidEffects(ctx, tx, o, now)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reconcile failed")
		return order.NoChange, err
	}

	span.SetAttributes(attribute.String("reconcile.decision", decision.String()))
	switch decision {
	case order.MarkPaid:
		uc.metrics.OrderTransition(string(from), string(order.StatusPaid), string(trigger))
	case order.MarkFailed:
		uc.metrics.OrderTransition(string(from), string(order.StatusFailed), string(trigger))
	}
	if decision != order.NoChange {
		slog.Info("order reconciled",
			"reference", reference,
			"trigger", trigger,
			"decision", decision.String())
	}
	return decision, nil
}

// applyPaidEffects is safe to run any number of times: unique constraints decide
// whether a batch or booking already exists, so nothing is duplicated.
func (uc *reconcilerImpl) applyPaidEffects(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) error {
	if o.IsCreditPackage() {
		return uc.issueCredits(ctx, tx, o, now)
	}
	// Link first so booking events carry the new account.
	if o.IsGuest() {
		if err := uc.linkGuest(ctx, tx, o, now); err != nil {
			return err
		}
	}
	return uc.createOrderBookings(ctx, tx, o, now)
}

func (uc *reconcilerImpl) issueCredits(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) error {
	if o.OwnerID() == nil {
		return errs.Mark(errs.Newf("credit order %s has no owner", o.Reference()), errs.ErrIntegrity)
	}
	pkg, err := tx.Reads().PackageByID(ctx, *o.CreditPackageID())
	if err != nil {
		return err
	}

	batch, err := credit.Issue(*o.OwnerID(), o.ID(), o.CreditPackageID(), pkg.SessionCount, uc.expirationMonths, now)
	if err != nil {
		return err
	}
	issued, err := tx.Credits().Issue(ctx, tx.DB(), batch)
	if err != nil {
		return err
	}
	if !issued {
		return nil
	}

	uc.metrics.CreditsIssued(batch.Issued())
	slog.Info("credits issued",
		"reference", o.Reference(),
		"customer_id", batch.OwnerID(),
		"credits", batch.Issued(),
		"expires_at", batch.ExpiresAt())
	return enqueueEvent(ctx, tx, TopicCreditsIssued, CreditsIssuedEvent{
		BatchID:    batch.ID(),
		CustomerID: batch.OwnerID(),
		OrderID:    o.ID(),
		Credits:    batch.Issued(),
		ExpiresAt:  batch.ExpiresAt(),
		OccurredAt: now,
	}, now)
}

func (uc *reconcilerImpl) createOrderBookings(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) error {
	items := o.Items()
	existing, err := tx.Bookings().CountByOrder(ctx, tx.DB(), o.ID())
	if err != nil {
		return err
	}
	if existing >= len(items) {
		return nil
	}

	created := 0
	for _, it := range items {
		slot, serr := booking.NewSlot(it.TemplateID, it.Date)
		if serr != nil {
			return serr
		}
		b, berr := booking.New(slot, booking.OrderFunded(o.ID()), now)
		if berr != nil {
			return berr
		}
		ok, cerr := tx.Bookings().CreateIfFree(ctx, tx.DB(), b)
		if cerr != nil {
			return cerr
		}
		if !ok {
			continue
		}
		created++
		if err = enqueueEvent(ctx, tx, TopicBookingCreated, BookingEvent{
			BookingID:  b.ID(),
			TemplateID: slot.TemplateID(),
			Date:       slot.DateString(),
			Funding:    string(booking.FundedByOrder),
			CustomerID: o.OwnerID(),
			OrderID:    ptr.To(o.ID()),
			OccurredAt: now,
		}, now); err != nil {
			return err
		}
	}

	if created > 0 {
		uc.metrics.BookingsCreated(string(booking.FundedByOrder), created)
	}
	if missing := len(items) - existing - created; missing > 0 {
		// Either an earlier attempt already booked them or another customer holds the slot.
		slog.Warn("order items not booked",
			"reference", o.Reference(),
			"items", len(items),
			"existing", existing,
			"created", created)
	}
	return nil
}

func (uc *reconcilerImpl) linkGuest(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) error {
	guest := o.Guest()
	_, hash, err := password.GenerateTemporary()
	if err != nil {
		return err
	}

	u := user.NewGuestCustomer(guest.Email, guest.Name, hash)
	userID, created, err := tx.Users().FindOrCreate(ctx, tx.DB(), u)
	if err != nil {
		return err
	}
	if err = tx.Orders().LinkOwner(ctx, tx.DB(), o.ID(), userID); err != nil {
		return err
	}
	o.LinkOwner(userID)

	slog.Info("guest order linked to account",
		"reference", o.Reference(),
		"user_id", userID,
		"new_account", created)
	if !created {
		return nil
	}
	return enqueueEvent(ctx, tx, TopicGuestAccount, GuestAccountEvent{
		UserID:     userID,
		Email:      guest.Email.Value(),
		Name:       guest.Name,
		OrderID:    o.ID(),
		OccurredAt: now,
	}, now)
}

func orderEvent(o *order.Order, trigger Trigger, now time.Time) OrderEvent {
	return OrderEvent{
		OrderID:    o.ID(),
		Reference:  o.Reference(),
		Status:     string(o.Status()),
		TotalMinor: o.TotalMinor(),
		Currency:   o.Currency(),
		CustomerID: o.OwnerID(),
		Trigger:    string(trigger),
		OccurredAt: now,
	}
}
