//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/domain/catalog"
	"gym-booking/internal/domain/credit"
	"gym-booking/internal/domain/order"
	"gym-booking/internal/pkg/clock"
	"gym-booking/internal/usecase/shared"
	commandsmock "gym-booking/tests/mock/commands"
	sharedmock "gym-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// Monday 10 March 2025.
var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type harness struct {
	ctrl          *gomock.Controller
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	credits       *sharedmock.MockCreditRepository
	bookings      *sharedmock.MockBookingRepository
	orders        *sharedmock.MockOrderRepository
	users         *sharedmock.MockUserRepository
	notifications *sharedmock.MockNotificationRepository
	webhooks      *sharedmock.MockWebhookEventRepository
	metrics       *commandsmock.MockBusinessMetrics
	provider      *commandsmock.MockPaymentProvider
	clock         *clock.MockClock
	withinCalls   int
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		ctrl:          ctrl,
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		credits:       sharedmock.NewMockCreditRepository(ctrl),
		bookings:      sharedmock.NewMockBookingRepository(ctrl),
		orders:        sharedmock.NewMockOrderRepository(ctrl),
		users:         sharedmock.NewMockUserRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		webhooks:      sharedmock.NewMockWebhookEventRepository(ctrl),
		metrics:       commandsmock.NewMockBusinessMetrics(ctrl),
		provider:      commandsmock.NewMockPaymentProvider(ctrl),
		clock:         clock.NewMockClock(now),
	}

	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			h.withinCalls++
			return fn(ctx, h.tx)
		}).AnyTimes()

	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().Credits().Return(h.credits).AnyTimes()
	h.tx.EXPECT().Bookings().Return(h.bookings).AnyTimes()
	h.tx.EXPECT().Orders().Return(h.orders).AnyTimes()
	h.tx.EXPECT().Users().Return(h.users).AnyTimes()
	h.tx.EXPECT().Notifications().Return(h.notifications).AnyTimes()
	h.tx.EXPECT().WebhookEvents().Return(h.webhooks).AnyTimes()
	h.tx.EXPECT().DB().Return(nil).AnyTimes()

	h.provider.EXPECT().Name().Return("sumup").AnyTimes()
	return h
}

// expectEvents accepts n outbox jobs on topic.
func (h *harness) expectEvents(topic string, n int) {
	h.notifications.EXPECT().
		CreateJob(gomock.Any(), gomock.Any(), "event", topic, gomock.Any(), now).
		Return(nil).Times(n)
}

func mondayTemplate() catalog.Template {
	return catalog.Template{
		ID:          uuid.New(),
		TypeID:      uuid.New(),
		TypeName:    "Personal Training",
		DayOfWeek:   time.Monday,
		StartTime:   "18:00",
		EndTime:     "19:00",
		MaxCapacity: 1,
	}
}

func newBatch(t *testing.T, owner uuid.UUID, remaining int, expiresIn time.Duration) *credit.Batch {
	t.Helper()
	orderID := uuid.New()
	b, err := credit.Reconstruct(uuid.New(), owner, &orderID, nil, 10, remaining, now.Add(expiresIn), now.AddDate(0, -1, 0))
	require.NoError(t, err)
	return b
}

// copyBatch returns an independent batch with the same identity, as a second read would.
func copyBatch(t *testing.T, b *credit.Batch) *credit.Batch {
	t.Helper()
	c, err := credit.Reconstruct(b.ID(), b.OwnerID(), b.SourceOrderID(), b.PackageID(), b.Issued(), b.Remaining(), b.ExpiresAt(), b.IssuedAt())
	require.NoError(t, err)
	return c
}

func mustSlot(t *testing.T, templateID uuid.UUID, date string) booking.Slot {
	t.Helper()
	s, err := booking.ParseSlot(templateID, date)
	require.NoError(t, err)
	return s
}

type orderFixture struct {
	owner      *uuid.UUID
	guestEmail *string
	guestName  *string
	packageID  *uuid.UUID
	status     order.Status
	items      []order.Item
}

func (f orderFixture) build(t *testing.T, id uuid.UUID, reference string) *order.Order {
	t.Helper()
	status := f.status
	if status == "" {
		status = order.StatusPending
	}
	var total int64
	for _, it := range f.items {
		total += it.PriceMinor
	}
	if f.packageID != nil {
		total = 12000
	}
	o, err := order.Reconstruct(order.Snapshot{
		ID:                 id,
		OwnerID:            f.owner,
		GuestEmail:         f.guestEmail,
		GuestName:          f.guestName,
		TotalMinor:         total,
		Currency:           "GBP",
		ProviderCheckoutID: "chk_" + reference,
		Reference:          reference,
		Status:             string(status),
		CreditPackageID:    f.packageID,
		Items:              f.items,
		CreatedAt:          now.Add(-10 * time.Minute),
	})
	require.NoError(t, err)
	return o
}

func sessionItems(templateID uuid.UUID, dates ...string) []order.Item {
	out := make([]order.Item, 0, len(dates))
	for _, d := range dates {
		date, _ := booking.ParseDate(d)
		out = append(out, order.Item{TemplateID: templateID, Date: date, PriceMinor: 1500})
	}
	return out
}
