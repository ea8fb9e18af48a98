package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking is one confirmed reservation of one slot. At most one exists per slot.
type Booking struct {
	id        uuid.UUID
	slot      Slot
	funding   Funding
	createdAt time.Time
}

func New(slot Slot, funding Funding, now time.Time) (*Booking, error) {
	if funding.IsZero() {
		return nil, ErrInvalidFunding
	}
	if slot.templateID == uuid.Nil {
		return nil, ErrInvalidSlot
	}
	return &Booking{
		id:        uuid.New(),
		slot:      slot,
		funding:   funding,
		createdAt: now,
	}, nil
}

func Reconstruct(id uuid.UUID, slot Slot, funding Funding, createdAt time.Time) *Booking {
	return &Booking{id: id, slot: slot, funding: funding, createdAt: createdAt}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) Slot() Slot           { return b.slot }
func (b *Booking) Funding() Funding     { return b.funding }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
