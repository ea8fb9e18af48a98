//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/catalog"
	"gym-booking/internal/domain/credit"
	"gym-booking/internal/domain/order"
	"gym-booking/internal/domain/user"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/errs"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"
	"gym-booking/internal/usecase/shared"
	queriesmock "gym-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcileFixture struct {
	*harness
	views *queriesmock.MockOrderReadStore
	uc    commands.Reconciler
}

func newReconcileFixture(t *testing.T) *reconcileFixture {
	h := newHarness(t)
	views := queriesmock.NewMockOrderReadStore(h.ctrl)
	return &reconcileFixture{
		harness: h,
		views:   views,
		uc:      commands.NewReconciler(h.uow, h.provider, views, h.clock, h.metrics, config.NewTestConfig()),
	}
}

// givenOrder makes the order visible both to the unlocked lookup and to the locking read.
func (f *reconcileFixture) givenOrder(t *testing.T, fx orderFixture, reference string) uuid.UUID {
	id := uuid.New()
	f.reads.EXPECT().OrderByReference(gomock.Any(), reference).
		DoAndReturn(func(context.Context, string) (*order.Order, error) { return fx.build(t, id, reference), nil }).AnyTimes()
	f.orders.EXPECT().LockByReference(gomock.Any(), gomock.Any(), reference).
		DoAndReturn(func(context.Context, any, string) (*order.Order, error) { return fx.build(t, id, reference), nil }).AnyTimes()
	return id
}

func (f *reconcileFixture) providerSays(reference string, status order.ProviderStatus) {
	f.provider.EXPECT().GetCheckout(gomock.Any(), "chk_"+reference, reference).
		Return(&commands.CheckoutStatus{ID: "chk_" + reference, Reference: reference, Status: status}, nil)
}

func TestHandleWebhook(t *testing.T) {
	tpl := mondayTemplate()

	t.Run("paid session order books every item", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner := uuid.New()
		id := f.givenOrder(t, orderFixture{owner: &owner, items: sessionItems(tpl.ID, "2025-03-17", "2025-03-24")}, "HPT-A")
		f.providerSays("HPT-A", order.ProviderPaid)

		f.webhooks.EXPECT().Record(gomock.Any(), gomock.Any(), shared.WebhookEventRecord{
			Provider: "sumup", EventID: "evt_1", EventType: "checkout.status.updated", CheckoutReference: "HPT-A",
		}).Return(true, nil)
		f.bookings.EXPECT().CountByOrder(gomock.Any(), gomock.Any(), id).Return(0, nil)
		f.bookings.EXPECT().CreateIfFree(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) (bool, error) {
				orderID, ok := b.Funding().OrderID()
				assert.True(t, ok)
				assert.Equal(t, id, orderID)
				return true, nil
			}).Times(2)
		f.orders.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), id, now).Return(true, nil)
		f.expectEvents(commands.TopicBookingCreated, 2)
		f.expectEvents(commands.TopicOrderPaid, 1)
		f.metrics.EXPECT().BookingsCreated(string(booking.FundedByOrder), 2)
		f.metrics.EXPECT().OrderTransition("PENDING", "PAID", "webhook")

		err := f.uc.HandleWebhook(context.Background(), commands.WebhookEvent{
			EventID: "evt_1", EventType: "checkout.status.updated", Reference: "HPT-A", Status: "FAILED",
		})

		require.NoError(t, err)
	})

	t.Run("a replayed event changes nothing", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner := uuid.New()
		f.givenOrder(t, orderFixture{owner: &owner, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-B")
		f.providerSays("HPT-B", order.ProviderPaid)
		f.webhooks.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.orders.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := f.uc.HandleWebhook(context.Background(), commands.WebhookEvent{EventID: "evt_1", Reference: "HPT-B"})

		require.NoError(t, err)
	})

	t.Run("failed payment", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner := uuid.New()
		id := f.givenOrder(t, orderFixture{owner: &owner, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-C")
		f.providerSays("HPT-C", order.ProviderFailed)
		f.webhooks.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.orders.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), id).Return(true, nil)
		f.expectEvents(commands.TopicOrderFailed, 1)
		f.metrics.EXPECT().OrderTransition("PENDING", "FAILED", "webhook")

		err := f.uc.HandleWebhook(context.Background(), commands.WebhookEvent{EventID: "evt_2", Reference: "HPT-C"})

		require.NoError(t, err)
	})

	t.Run("provider outage leaves the order pending", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner := uuid.New()
		f.givenOrder(t, orderFixture{owner: &owner, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-D")
		f.provider.EXPECT().GetCheckout(gomock.Any(), "chk_HPT-D", "HPT-D").Return(nil, errors.New("timeout"))

		err := f.uc.HandleWebhook(context.Background(), commands.WebhookEvent{EventID: "evt_3", Reference: "HPT-D"})

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrProviderUnavailable))
		assert.Zero(t, f.withinCalls)
	})

	t.Run("unrecognised provider status is reported and nothing is recorded", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner := uuid.New()
		f.givenOrder(t, orderFixture{owner: &owner, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-U")
		f.provider.EXPECT().GetCheckout(gomock.Any(), "chk_HPT-U", "HPT-U").
			Return(&commands.CheckoutStatus{ID: "chk_HPT-U", Reference: "HPT-U", Status: order.ProviderUnknown, Raw: "EXPIRED"}, nil)

		err := f.uc.HandleWebhook(context.Background(), commands.WebhookEvent{EventID: "evt_8", Reference: "HPT-U"})

		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrProviderUnavailable))
		assert.Contains(t, err.Error(), "EXPIRED")
		assert.Zero(t, f.withinCalls)
	})

	t.Run("missing reference", func(t *testing.T) {
		f := newReconcileFixture(t)
		err := f.uc.HandleWebhook(context.Background(), commands.WebhookEvent{EventID: "evt_4"})
		require.ErrorIs(t, err, commands.ErrMissingReference)
	})

	t.Run("paid credit order issues one batch", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner, pkgID := uuid.New(), uuid.New()
		id := f.givenOrder(t, orderFixture{owner: &owner, packageID: &pkgID}, "CREDIT-HPT-E")
		f.providerSays("CREDIT-HPT-E", order.ProviderPaid)
		f.webhooks.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.reads.EXPECT().PackageByID(gomock.Any(), pkgID).
			Return(&catalog.Package{ID: pkgID, Name: "10 Pack", SessionCount: 10, PriceMinor: 12000}, nil)
		f.credits.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *credit.Batch) (bool, error) {
				assert.Equal(t, owner, b.OwnerID())
				assert.Equal(t, id, *b.SourceOrderID())
				assert.Equal(t, 10, b.Issued())
				assert.Equal(t, now.AddDate(0, 12, 0), b.ExpiresAt())
				return true, nil
			})
		f.orders.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), id, now).Return(true, nil)
		f.expectEvents(commands.TopicCreditsIssued, 1)
		f.expectEvents(commands.TopicOrderPaid, 1)
		f.metrics.EXPECT().CreditsIssued(10)
		f.metrics.EXPECT().OrderTransition("PENDING", "PAID", "webhook")

		err := f.uc.HandleWebhook(context.Background(), commands.WebhookEvent{EventID: "evt_5", Reference: "CREDIT-HPT-E"})

		require.NoError(t, err)
	})

	t.Run("paid guest order is linked to a new account", func(t *testing.T) {
		f := newReconcileFixture(t)
		email, name := "guest@example.com", "Jo Bloggs"
		id := f.givenOrder(t, orderFixture{guestEmail: &email, guestName: &name, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-F")
		f.providerSays("HPT-F", order.ProviderPaid)
		f.webhooks.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		accountID := uuid.New()
		linked := f.users.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, u *user.User) (uuid.UUID, bool, error) {
				assert.Equal(t, email, u.Email().Value())
				assert.Equal(t, "Jo", u.FirstName())
				assert.Equal(t, "Bloggs", u.LastName())
				assert.Equal(t, user.RoleCustomer, u.Role())
				assert.NotEmpty(t, u.PasswordHash())
				return accountID, true, nil
			})
		f.orders.EXPECT().LinkOwner(gomock.Any(), gomock.Any(), id, accountID).Return(nil)
		f.bookings.EXPECT().CountByOrder(gomock.Any(), gomock.Any(), id).Return(0, nil).After(linked)
		f.bookings.EXPECT().CreateIfFree(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.orders.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), id, now).Return(true, nil)
		f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), "event", commands.TopicBookingCreated, gomock.Any(), now).
			DoAndReturn(func(_ context.Context, _ any, _, _ string, payload []byte, _ time.Time) error {
				var ev commands.BookingEvent
				require.NoError(t, json.Unmarshal(payload, &ev))
				require.NotNil(t, ev.CustomerID)
				assert.Equal(t, accountID, *ev.CustomerID)
				return nil
			})
		f.expectEvents(commands.TopicGuestAccount, 1)
		f.expectEvents(commands.TopicOrderPaid, 1)
		f.metrics.EXPECT().BookingsCreated(string(booking.FundedByOrder), 1)
		f.metrics.EXPECT().OrderTransition("PENDING", "PAID", "webhook")

		err := f.uc.HandleWebhook(context.Background(), commands.WebhookEvent{EventID: "evt_6", Reference: "HPT-F"})

		require.NoError(t, err)
	})

	t.Run("account creation failure rolls the payment back", func(t *testing.T) {
		f := newReconcileFixture(t)
		email, name := "guest@example.com", "Jo"
		f.givenOrder(t, orderFixture{guestEmail: &email, guestName: &name, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-G")
		f.providerSays("HPT-G", order.ProviderPaid)
		f.webhooks.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		accountErr := errors.New("users insert failed")
		f.users.EXPECT().FindOrCreate(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, false, accountErr)
		f.bookings.EXPECT().CreateIfFree(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.orders.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := f.uc.HandleWebhook(context.Background(), commands.WebhookEvent{EventID: "evt_7", Reference: "HPT-G"})

		require.ErrorIs(t, err, accountErr)
	})
}

func TestReconcileByReference(t *testing.T) {
	tpl := mondayTemplate()

	t.Run("pending order is settled by polling", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner := uuid.New()
		id := f.givenOrder(t, orderFixture{owner: &owner, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-P")
		f.providerSays("HPT-P", order.ProviderPaid)
		f.bookings.EXPECT().CountByOrder(gomock.Any(), gomock.Any(), id).Return(0, nil)
		f.bookings.EXPECT().CreateIfFree(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.orders.EXPECT().MarkPaid(gomock.Any(), gomock.Any(), id, now).Return(true, nil)
		f.expectEvents(commands.TopicBookingCreated, 1)
		f.expectEvents(commands.TopicOrderPaid, 1)
		f.metrics.EXPECT().BookingsCreated(string(booking.FundedByOrder), 1)
		f.metrics.EXPECT().OrderTransition("PENDING", "PAID", "poll")
		f.views.EXPECT().ViewByReference(gomock.Any(), "HPT-P").
			Return(&queries.OrderView{Reference: "HPT-P", Status: "PAID"}, nil)

		view, err := f.uc.ReconcileByReference(context.Background(), "HPT-P", &owner)

		require.NoError(t, err)
		assert.Equal(t, "PAID", view.Status)
	})

	t.Run("paid order heals missing bookings without asking the provider", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner := uuid.New()
		id := f.givenOrder(t, orderFixture{owner: &owner, status: order.StatusPaid, items: sessionItems(tpl.ID, "2025-03-17", "2025-03-24")}, "HPT-H")
		f.bookings.EXPECT().CountByOrder(gomock.Any(), gomock.Any(), id).Return(1, nil)
		f.bookings.EXPECT().CreateIfFree(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.bookings.EXPECT().CreateIfFree(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.expectEvents(commands.TopicBookingCreated, 1)
		f.metrics.EXPECT().BookingsCreated(string(booking.FundedByOrder), 1)
		f.views.EXPECT().ViewByReference(gomock.Any(), "HPT-H").
			Return(&queries.OrderView{Reference: "HPT-H", Status: "PAID"}, nil)

		view, err := f.uc.ReconcileByReference(context.Background(), "HPT-H", &owner)

		require.NoError(t, err)
		assert.Equal(t, "PAID", view.Status)
	})

	t.Run("paid order with every booking present is a no-op", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner := uuid.New()
		id := f.givenOrder(t, orderFixture{owner: &owner, status: order.StatusPaid, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-I")
		f.bookings.EXPECT().CountByOrder(gomock.Any(), gomock.Any(), id).Return(1, nil)
		f.views.EXPECT().ViewByReference(gomock.Any(), "HPT-I").
			Return(&queries.OrderView{Reference: "HPT-I", Status: "PAID"}, nil)

		_, err := f.uc.ReconcileByReference(context.Background(), "HPT-I", &owner)

		require.NoError(t, err)
	})

	t.Run("failed order is reported as stored", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner := uuid.New()
		f.givenOrder(t, orderFixture{owner: &owner, status: order.StatusFailed, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-J")
		f.views.EXPECT().ViewByReference(gomock.Any(), "HPT-J").
			Return(&queries.OrderView{Reference: "HPT-J", Status: "FAILED"}, nil)

		view, err := f.uc.ReconcileByReference(context.Background(), "HPT-J", &owner)

		require.NoError(t, err)
		assert.Equal(t, "FAILED", view.Status)
		assert.Zero(t, f.withinCalls)
	})

	t.Run("unrecognised provider status fails the poll", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner := uuid.New()
		f.givenOrder(t, orderFixture{owner: &owner, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-V")
		f.provider.EXPECT().GetCheckout(gomock.Any(), "chk_HPT-V", "HPT-V").
			Return(&commands.CheckoutStatus{Status: order.ProviderUnknown, Raw: "REFUNDED"}, nil)

		view, err := f.uc.ReconcileByReference(context.Background(), "HPT-V", &owner)

		require.Error(t, err)
		assert.Nil(t, view)
		assert.True(t, errs.Is(err, commands.ErrProviderUnavailable))
		assert.Zero(t, f.withinCalls)
	})

	t.Run("owned orders are hidden from other callers", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner, stranger := uuid.New(), uuid.New()
		f.givenOrder(t, orderFixture{owner: &owner, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-K")

		_, err := f.uc.ReconcileByReference(context.Background(), "HPT-K", &stranger)
		require.ErrorIs(t, err, commands.ErrOrderNotFound)

		_, err = f.uc.ReconcileByReference(context.Background(), "HPT-K", nil)
		require.ErrorIs(t, err, commands.ErrOrderNotFound)
	})
}

func TestAwaitSettlement(t *testing.T) {
	tpl := mondayTemplate()

	t.Run("returns the pending view once attempts run out", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner := uuid.New()
		f.givenOrder(t, orderFixture{owner: &owner, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-W")
		f.provider.EXPECT().GetCheckout(gomock.Any(), "chk_HPT-W", "HPT-W").
			Return(&commands.CheckoutStatus{Status: order.ProviderPending}, nil).Times(3)
		f.views.EXPECT().ViewByReference(gomock.Any(), "HPT-W").
			Return(&queries.OrderView{Reference: "HPT-W", Status: "PENDING"}, nil).Times(3)

		view, err := f.uc.AwaitSettlement(context.Background(), "HPT-W", &owner)

		require.NoError(t, err)
		assert.Equal(t, "PENDING", view.Status)
	})

	t.Run("stops as soon as the order settles", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner := uuid.New()
		f.givenOrder(t, orderFixture{owner: &owner, status: order.StatusFailed, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-X")
		f.views.EXPECT().ViewByReference(gomock.Any(), "HPT-X").
			Return(&queries.OrderView{Reference: "HPT-X", Status: "FAILED"}, nil).Times(1)

		view, err := f.uc.AwaitSettlement(context.Background(), "HPT-X", &owner)

		require.NoError(t, err)
		assert.Equal(t, "FAILED", view.Status)
	})

	t.Run("provider outage falls back to the stored state", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner := uuid.New()
		f.givenOrder(t, orderFixture{owner: &owner, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-Y")
		f.provider.EXPECT().GetCheckout(gomock.Any(), "chk_HPT-Y", "HPT-Y").Return(nil, errors.New("503")).Times(3)
		f.views.EXPECT().ViewByReference(gomock.Any(), "HPT-Y").
			Return(&queries.OrderView{Reference: "HPT-Y", Status: "PENDING"}, nil).Times(1)

		view, err := f.uc.AwaitSettlement(context.Background(), "HPT-Y", &owner)

		require.NoError(t, err)
		assert.Equal(t, "PENDING", view.Status)
	})

	t.Run("cancelled context ends the wait", func(t *testing.T) {
		f := newReconcileFixture(t)
		owner := uuid.New()
		f.givenOrder(t, orderFixture{owner: &owner, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-Z")
		f.provider.EXPECT().GetCheckout(gomock.Any(), "chk_HPT-Z", "HPT-Z").
			Return(&commands.CheckoutStatus{Status: order.ProviderPending}, nil).MinTimes(1)
		f.views.EXPECT().ViewByReference(gomock.Any(), "HPT-Z").
			Return(&queries.OrderView{Reference: "HPT-Z", Status: "PENDING"}, nil).MinTimes(1)

		ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
		defer cancel()
		view, err := f.uc.AwaitSettlement(ctx, "HPT-Z", &owner)

		require.NoError(t, err)
		assert.Equal(t, "PENDING", view.Status)
	})
}

func TestSweepStale(t *testing.T) {
	tpl := mondayTemplate()
	f := newReconcileFixture(t)
	owner := uuid.New()

	f.orders.EXPECT().ListStalePending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]string{"HPT-S1", "HPT-S2", "HPT-S3"}, nil)

	failedID := f.givenOrder(t, orderFixture{owner: &owner, items: sessionItems(tpl.ID, "2025-03-17")}, "HPT-S1")
	f.providerSays("HPT-S1", order.ProviderFailed)
	f.orders.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), failedID).Return(true, nil)
	f.expectEvents(commands.TopicOrderFailed, 1)
	f.metrics.EXPECT().OrderTransition("PENDING", "FAILED", "sweeper")

	f.givenOrder(t, orderFixture{owner: &owner, items: sessionItems(tpl.ID, "2025-03-24")}, "HPT-S2")
	f.provider.EXPECT().GetCheckout(gomock.Any(), "chk_HPT-S2", "HPT-S2").Return(nil, errors.New("timeout"))

	f.givenOrder(t, orderFixture{owner: &owner, items: sessionItems(tpl.ID, "2025-03-31")}, "HPT-S3")
	f.providerSays("HPT-S3", order.ProviderPending)

	settled, err := f.uc.SweepStale(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, settled)
}
