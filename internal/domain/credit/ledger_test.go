//go:build unit

package credit_test

import (
	"testing"
	"time"

	"gym-booking/internal/domain/credit"
	"gym-booking/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func batch(t *testing.T, issued, remaining int, expiresAt, issuedAt time.Time) *credit.Batch {
	t.Helper()
	orderID := uuid.New()
	b, err := credit.Reconstruct(uuid.New(), uuid.New(), &orderID, nil, issued, remaining, expiresAt, issuedAt)
	require.NoError(t, err)
	return b
}

func TestIssue(t *testing.T) {
	owner, orderID, pkgID := uuid.New(), uuid.New(), uuid.New()

	t.Run("full batch expiring after the configured months", func(t *testing.T) {
		b, err := credit.Issue(owner, orderID, &pkgID, 10, 12, now)
		require.NoError(t, err)

		assert.Equal(t, 10, b.Issued())
		assert.Equal(t, 10, b.Remaining())
		assert.Equal(t, now.AddDate(1, 0, 0), b.ExpiresAt())
		assert.Equal(t, orderID, *b.SourceOrderID())
		assert.Equal(t, pkgID, *b.PackageID())
		assert.True(t, b.Usable(now))
	})

	t.Run("rejects non-positive session count", func(t *testing.T) {
		_, err := credit.Issue(owner, orderID, nil, 0, 12, now)
		require.ErrorIs(t, err, credit.ErrInvalidIssue)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("rejects non-positive expiry", func(t *testing.T) {
		_, err := credit.Issue(owner, orderID, nil, 5, 0, now)
		require.ErrorIs(t, err, credit.ErrInvalidExpiry)
	})
}

func TestReconstruct_RejectsCorruptBalance(t *testing.T) {
	cases := []struct {
		name              string
		issued, remaining int
	}{
		{name: "negative remaining", issued: 5, remaining: -1},
		{name: "remaining above issued", issued: 5, remaining: 6},
		{name: "zero issued", issued: 0, remaining: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := credit.Reconstruct(uuid.New(), uuid.New(), nil, nil, tc.issued, tc.remaining, now, now)
			require.ErrorIs(t, err, credit.ErrCorruptBatch)
		})
	}
}

func TestBatch_DebitRestore(t *testing.T) {
	b := batch(t, 3, 1, now.AddDate(0, 1, 0), now)

	require.NoError(t, b.Debit(1))
	assert.Equal(t, 0, b.Remaining())
	assert.True(t, b.Exhausted())
	assert.False(t, b.Usable(now))

	err := b.Debit(1)
	require.ErrorIs(t, err, credit.ErrBalanceUnderflow)
	assert.True(t, errs.Is(err, errs.ErrIntegrity))
	assert.Equal(t, 0, b.Remaining())

	require.NoError(t, b.Restore(3))
	assert.Equal(t, 3, b.Remaining())

	require.ErrorIs(t, b.Restore(1), credit.ErrBalanceOverflow)
	assert.Equal(t, 3, b.Remaining())
}

func TestBatch_UsableExcludesExpired(t *testing.T) {
	b := batch(t, 5, 5, now, now.AddDate(-1, 0, 0))
	assert.False(t, b.Usable(now), "a batch expiring exactly now is not usable")
	assert.True(t, b.Usable(now.Add(-time.Second)))
}

func TestAvailableBalance(t *testing.T) {
	batches := []*credit.Batch{
		batch(t, 10, 4, now.AddDate(0, 2, 0), now.AddDate(0, -1, 0)),
		batch(t, 5, 5, now.AddDate(0, -1, 0), now.AddDate(-1, 0, 0)), // expired
		batch(t, 5, 0, now.AddDate(0, 6, 0), now),                    // exhausted
		batch(t, 3, 2, now.AddDate(1, 0, 0), now),
	}
	assert.Equal(t, 6, credit.AvailableBalance(batches, now))
	assert.Equal(t, 0, credit.AvailableBalance(nil, now))
}

func TestConsumptionOrder(t *testing.T) {
	late := batch(t, 5, 5, now.AddDate(0, 6, 0), now.AddDate(0, -2, 0))
	soon := batch(t, 5, 5, now.AddDate(0, 1, 0), now)
	tieOld := batch(t, 5, 5, now.AddDate(0, 3, 0), now.AddDate(0, -3, 0))
	tieNew := batch(t, 5, 5, now.AddDate(0, 3, 0), now.AddDate(0, -1, 0))
	expired := batch(t, 5, 5, now.AddDate(0, 0, -1), now.AddDate(-1, 0, 0))

	got := credit.ConsumptionOrder([]*credit.Batch{late, tieNew, expired, soon, tieOld}, now)

	require.Len(t, got, 4)
	assert.Equal(t, []uuid.UUID{soon.ID(), tieOld.ID(), tieNew.ID(), late.ID()},
		[]uuid.UUID{got[0].ID(), got[1].ID(), got[2].ID(), got[3].ID()})
}

func TestEnsureSufficient(t *testing.T) {
	batches := []*credit.Batch{batch(t, 5, 2, now.AddDate(0, 1, 0), now)}

	require.NoError(t, credit.EnsureSufficient(batches, 2, now))

	err := credit.EnsureSufficient(batches, 3, now)
	require.ErrorIs(t, err, credit.ErrInsufficientCredits)

	var insufficient *credit.InsufficientCreditsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Available)
	assert.Equal(t, 3, insufficient.Required)
}

func TestCursor(t *testing.T) {
	t.Run("drains the soonest-expiring batch before moving on", func(t *testing.T) {
		first := batch(t, 5, 2, now.AddDate(0, 1, 0), now)
		second := batch(t, 5, 3, now.AddDate(0, 4, 0), now)
		c := credit.NewCursor([]*credit.Batch{second, first}, now)

		assert.Equal(t, 5, c.Remaining())

		var funded []uuid.UUID
		for range 3 {
			b, err := c.Take()
			require.NoError(t, err)
			funded = append(funded, b.ID())
		}

		assert.Equal(t, []uuid.UUID{first.ID(), first.ID(), second.ID()}, funded)
		assert.Equal(t, 0, first.Remaining())
		assert.Equal(t, 2, second.Remaining())
		assert.Equal(t, 2, c.Remaining())
	})

	t.Run("underflows once every batch is exhausted", func(t *testing.T) {
		only := batch(t, 1, 1, now.AddDate(0, 1, 0), now)
		c := credit.NewCursor([]*credit.Batch{only}, now)

		_, err := c.Take()
		require.NoError(t, err)

		_, err = c.Take()
		require.ErrorIs(t, err, credit.ErrBalanceUnderflow)
		assert.Equal(t, 0, c.Remaining())
	})

	t.Run("skips expired batches", func(t *testing.T) {
		expired := batch(t, 5, 5, now.AddDate(0, 0, -1), now.AddDate(-1, 0, 0))
		c := credit.NewCursor([]*credit.Batch{expired}, now)

		_, err := c.Take()
		require.ErrorIs(t, err, credit.ErrBalanceUnderflow)
		assert.Equal(t, 5, expired.Remaining())
	})
}

func TestNewUsage(t *testing.T) {
	id, batchID, bookingID := uuid.New(), uuid.New(), uuid.New()
	u := credit.NewUsage(id, batchID, bookingID, now)

	assert.Equal(t, id, u.ID())
	assert.Equal(t, batchID, u.BatchID())
	assert.Equal(t, bookingID, u.BookingID())
	assert.Equal(t, credit.CreditsPerSession, u.CreditsUsed())
	assert.Equal(t, now, u.CreatedAt())
}
