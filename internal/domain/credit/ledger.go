package credit

import (
	"fmt"
	"sort"
	"time"

	"gym-booking/internal/pkg/errs"
)

var ErrInsufficientCredits = errs.New("insufficient credits")

// InsufficientCreditsError carries the counts so callers can offer a mixed payment.
type InsufficientCreditsError struct {
	Available int
	Required  int
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: available %d, required %d", e.Available, e.Required)
}

func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// AvailableBalance sums remaining credits over unexpired, non-empty batches.
// Issuance date plays no part.
func AvailableBalance(batches []*Batch, now time.Time) int {
	total := 0
	for _, b := range batches {
		if b.Usable(now) {
			total += b.remaining
		}
	}
	return total
}

// ConsumptionOrder returns usable batches soonest-expiring first.
// Ties fall back to issuance time and then id so the order is deterministic.
func ConsumptionOrder(batches []*Batch, now time.Time) []*Batch {
	eligible := make([]*Batch, 0, len(batches))
	for _, b := range batches {
		if b.Usable(now) {
			eligible = append(eligible, b)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if !a.expiresAt.Equal(b.expiresAt) {
			return a.expiresAt.Before(b.expiresAt)
		}
		if !a.issuedAt.Equal(b.issuedAt) {
			return a.issuedAt.Before(b.issuedAt)
		}
		return a.id.String() < b.id.String()
	})
	return eligible
}

// EnsureSufficient fails with *InsufficientCreditsError when the balance cannot cover required.
func EnsureSufficient(batches []*Batch, required int, now time.Time) error {
	available := AvailableBalance(batches, now)
	if available < required {
		return &InsufficientCreditsError{Available: available, Required: required}
	}
	return nil
}

// Cursor walks the consumption order, debiting in memory and moving to the
// next batch once the head is exhausted. Batches are loaded once per transaction.
type Cursor struct {
	order []*Batch
	pos   int
}

func NewCursor(batches []*Batch, now time.Time) *Cursor {
	return &Cursor{order: ConsumptionOrder(batches, now)}
}

// Take debits one credit from the current head and returns that batch.
func (c *Cursor) Take() (*Batch, error) {
	for c.pos < len(c.order) && c.order[c.pos].Exhausted() {
		c.pos++
	}
	if c.pos >= len(c.order) {
		return nil, ErrBalanceUnderflow
	}
	head := c.order[c.pos]
	if err := head.Debit(CreditsPerSession); err != nil {
		return nil, err
	}
	return head, nil
}

// Remaining is the balance left across the batches the cursor was built from.
func (c *Cursor) Remaining() int {
	total := 0
	for _, b := range c.order[c.pos:] {
		total += b.remaining
	}
	return total
}
