package credit

import (
	"time"

	"gym-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultExpirationMonths = 12
	CreditsPerSession       = 1
)

var (
	ErrInvalidIssue     = errs.Validation(errs.New("credits issued must be positive"))
	ErrInvalidExpiry    = errs.Validation(errs.New("expiration months must be positive"))
	ErrBalanceUnderflow = errs.Mark(errs.New("credit batch balance would go negative"), errs.ErrIntegrity)
	ErrBalanceOverflow  = errs.Mark(errs.New("credit batch balance would exceed credits issued"), errs.ErrIntegrity)
	ErrCorruptBatch     = errs.Mark(errs.New("credit batch remaining out of range"), errs.ErrIntegrity)
)

// Batch is the remaining balance of one purchased credit package.
// Invariant: 0 <= remaining <= issued.
type Batch struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	sourceOrderID *uuid.UUID
	packageID     *uuid.UUID
	issued        int
	remaining     int
	expiresAt     time.Time
	issuedAt      time.Time
}

// Issue creates a full batch for a paid credit-package order.
func Issue(ownerID, sourceOrderID uuid.UUID, packageID *uuid.UUID, sessionCount, expirationMonths int, now time.Time) (*Batch, error) {
	if sessionCount <= 0 {
		return nil, ErrInvalidIssue
	}
	if expirationMonths <= 0 {
		return nil, ErrInvalidExpiry
	}
	orderID := sourceOrderID
	return &Batch{
		id:            uuid.New(),
		ownerID:       ownerID,
		sourceOrderID: &orderID,
		packageID:     packageID,
		issued:        sessionCount,
		remaining:     sessionCount,
		expiresAt:     now.AddDate(0, expirationMonths, 0),
		issuedAt:      now,
	}, nil
}

func Reconstruct(id, ownerID uuid.UUID, sourceOrderID, packageID *uuid.UUID, issued, remaining int, expiresAt, issuedAt time.Time) (*Batch, error) {
	if issued <= 0 || remaining < 0 || remaining > issued {
		return nil, ErrCorruptBatch
	}
	return &Batch{
		id:            id,
		ownerID:       ownerID,
		sourceOrderID: sourceOrderID,
		packageID:     packageID,
		issued:        issued,
		remaining:     remaining,
		expiresAt:     expiresAt,
		issuedAt:      issuedAt,
	}, nil
}

func (b *Batch) ID() uuid.UUID             { return b.id }
func (b *Batch) OwnerID() uuid.UUID        { return b.ownerID }
func (b *Batch) SourceOrderID() *uuid.UUID { return b.sourceOrderID }
func (b *Batch) PackageID() *uuid.UUID     { return b.packageID }
func (b *Batch) Issued() int               { return b.issued }
func (b *Batch) Remaining() int            { return b.remaining }
func (b *Batch) ExpiresAt() time.Time      { return b.expiresAt }
func (b *Batch) IssuedAt() time.Time       { return b.issuedAt }

// Usable reports whether the batch can fund a booking at now.
func (b *Batch) Usable(now time.Time) bool {
	return b.remaining > 0 && b.expiresAt.After(now)
}

func (b *Batch) Exhausted() bool {
	return b.remaining == 0
}

func (b *Batch) Debit(n int) error {
	if n <= 0 || b.remaining-n < 0 {
		return ErrBalanceUnderflow
	}
	b.remaining -= n
	return nil
}

func (b *Batch) Restore(n int) error {
	if n <= 0 || b.remaining+n > b.issued {
		return ErrBalanceOverflow
	}
	b.remaining += n
	return nil
}
