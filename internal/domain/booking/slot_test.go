//go:build unit

package booking_test

import (
	"testing"
	"time"

	"gym-booking/internal/domain/booking"
	"gym-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, templateID uuid.UUID, date string) booking.Slot {
	t.Helper()
	s, err := booking.ParseSlot(templateID, date)
	require.NoError(t, err)
	return s
}

func TestParseSlot(t *testing.T) {
	id := uuid.New()

	t.Run("normalises to a UTC calendar date", func(t *testing.T) {
		s := mustSlot(t, id, "2025-03-10")
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), s.Date())
		assert.Equal(t, "2025-03-10", s.DateString())
		assert.Equal(t, id.String()+":2025-03-10", s.Key())
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		for _, in := range []string{"", "10/03/2025", "2025-02-30", "2025-3-1"} {
			_, err := booking.ParseSlot(id, in)
			require.Error(t, err, in)
			assert.True(t, errs.Is(err, booking.ErrInvalidDate), in)
		}
	})

	t.Run("rejects nil template", func(t *testing.T) {
		_, err := booking.ParseSlot(uuid.Nil, "2025-03-10")
		require.ErrorIs(t, err, booking.ErrInvalidSlot)
	})
}

func TestNewSlot_DropsTimeOfDay(t *testing.T) {
	id := uuid.New()
	a, err := booking.NewSlot(id, time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	b := mustSlot(t, id, "2025-03-10")
	assert.Equal(t, b.Key(), a.Key())
}

func TestValidateRequest(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	require.ErrorIs(t, booking.ValidateRequest(nil), booking.ErrNoSlots)

	require.NoError(t, booking.ValidateRequest([]booking.Slot{
		mustSlot(t, a, "2025-03-10"),
		mustSlot(t, a, "2025-03-17"),
		mustSlot(t, b, "2025-03-10"),
	}))

	err := booking.ValidateRequest([]booking.Slot{
		mustSlot(t, a, "2025-03-10"),
		mustSlot(t, a, "2025-03-10"),
	})
	require.ErrorIs(t, err, booking.ErrDuplicateSlot)
	assert.True(t, errs.Is(err, errs.ErrDomainValidation))
}

func TestFilterTaken(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	s1 := mustSlot(t, a, "2025-03-10")
	s2 := mustSlot(t, b, "2025-03-11")
	s3 := mustSlot(t, a, "2025-03-17")

	taken := map[string]struct{}{s2.Key(): {}}
	got := booking.FilterTaken([]booking.Slot{s1, s2, s3}, taken)

	assert.Equal(t, []booking.Slot{s1, s3}, got)
	assert.Empty(t, booking.FilterTaken([]booking.Slot{s2}, taken))
	assert.Len(t, booking.FilterTaken([]booking.Slot{s1, s2}, nil), 2)
}

func TestFunding(t *testing.T) {
	orderID, usageID := uuid.New(), uuid.New()

	t.Run("order funded", func(t *testing.T) {
		f := booking.OrderFunded(orderID)
		id, ok := f.OrderID()
		assert.True(t, ok)
		assert.Equal(t, orderID, id)
		_, ok = f.CreditUsageID()
		assert.False(t, ok)
		assert.Equal(t, booking.FundedByOrder, f.Kind())
	})

	t.Run("credit funded", func(t *testing.T) {
		f := booking.CreditFunded(usageID)
		id, ok := f.CreditUsageID()
		assert.True(t, ok)
		assert.Equal(t, usageID, id)
		_, ok = f.OrderID()
		assert.False(t, ok)
	})

	t.Run("reconstruct requires exactly one reference", func(t *testing.T) {
		cases := []struct {
			name    string
			kind    string
			orderID *uuid.UUID
			usageID *uuid.UUID
			wantErr bool
		}{
			{name: "order", kind: "order", orderID: &orderID},
			{name: "credit", kind: "credit", usageID: &usageID},
			{name: "both set", kind: "order", orderID: &orderID, usageID: &usageID, wantErr: true},
			{name: "credit without usage", kind: "credit", orderID: &orderID, wantErr: true},
			{name: "neither", kind: "order", wantErr: true},
			{name: "unknown kind", kind: "voucher", orderID: &orderID, wantErr: true},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := booking.ReconstructFunding(tc.kind, tc.orderID, tc.usageID)
				if tc.wantErr {
					require.ErrorIs(t, err, booking.ErrInvalidFunding)
					assert.True(t, errs.Is(err, errs.ErrIntegrity))
				} else {
					require.NoError(t, err)
				}
			})
		}
	})
}

func TestNewBooking(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	slot := mustSlot(t, uuid.New(), "2025-03-17")

	b, err := booking.New(slot, booking.CreditFunded(uuid.New()), now)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, b.ID())
	assert.Equal(t, slot, b.Slot())
	assert.Equal(t, now, b.CreatedAt())

	_, err = booking.New(slot, booking.Funding{}, now)
	require.ErrorIs(t, err, booking.ErrInvalidFunding)

	_, err = booking.New(booking.Slot{}, booking.OrderFunded(uuid.New()), now)
	require.ErrorIs(t, err, booking.ErrInvalidSlot)
}
