package credit

import (
	"time"

	"github.com/google/uuid"
)

// Usage records that one booking was funded by one batch.
type Usage struct {
	id          uuid.UUID
	batchID     uuid.UUID
	bookingID   uuid.UUID
	creditsUsed int
	createdAt   time.Time
}

func NewUsage(id, batchID, bookingID uuid.UUID, now time.Time) *Usage {
	return &Usage{
		id:          id,
		batchID:     batchID,
		bookingID:   bookingID,
		creditsUsed: CreditsPerSession,
		createdAt:   now,
	}
}

func ReconstructUsage(id, batchID, bookingID uuid.UUID, creditsUsed int, createdAt time.Time) *Usage {
	return &Usage{id: id, batchID: batchID, bookingID: bookingID, creditsUsed: creditsUsed, createdAt: createdAt}
}

func (u *Usage) ID() uuid.UUID        { return u.id }
func (u *Usage) BatchID() uuid.UUID   { return u.batchID }
func (u *Usage) BookingID() uuid.UUID { return u.bookingID }
func (u *Usage) CreditsUsed() int     { return u.creditsUsed }
func (u *Usage) CreatedAt() time.Time { return u.createdAt }
