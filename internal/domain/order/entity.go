package order

import (
	"strings"
	"time"

	"gym-booking/internal/domain/user"
	"gym-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errs.Validation(errs.New("invalid order status"))
	ErrNonPositiveAmount   = errs.Validation(errs.New("order amount must be positive"))
	ErrGuestContactMissing = errs.Validation(errs.New("guest orders require both name and email"))
	ErrNoItems             = errs.Validation(errs.New("order must contain at least one session"))
	ErrMixedContents       = errs.Validation(errs.New("order cannot contain both sessions and a credit package"))
	ErrMissingOwner        = errs.Validation(errs.New("order requires a customer or guest contact"))
	ErrInvalidTransition   = errs.New("invalid order status transition")
)

// GuestContact identifies a buyer without an account.
type GuestContact struct {
	Email user.Email
	Name  string
}

func NewGuestContact(email, name string) (*GuestContact, error) {
	name = strings.TrimSpace(name)
	if strings.TrimSpace(email) == "" || name == "" {
		return nil, ErrGuestContactMissing
	}
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Validation(err)
	}
	return &GuestContact{Email: e, Name: name}, nil
}

// Item is one session purchased by card with its price snapshot.
type Item struct {
	TemplateID uuid.UUID
	Date       time.Time
	PriceMinor int64
}

type Order struct {
	id                 uuid.UUID
	ownerID            *uuid.UUID
	guest              *GuestContact
	totalMinor         int64
	currency           string
	providerCheckoutID string
	reference          string
	status             Status
	items              []Item
	creditPackageID    *uuid.UUID
	createdAt          time.Time
	paidAt             *time.Time
}

// NewSessionOrder builds a PENDING card order for sessions. Exactly one of owner or guest is used;
// an authenticated owner wins over guest details.
func NewSessionOrder(ownerID *uuid.UUID, guest *GuestContact, items []Item, currency string, now time.Time) (*Order, error) {
	if ownerID == nil && guest == nil {
		return nil, ErrMissingOwner
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	var total int64
	for _, it := range items {
		total += it.PriceMinor
	}
	if total <= 0 {
		return nil, ErrNonPositiveAmount
	}
	o := &Order{
		id:         uuid.New(),
		totalMinor: total,
		currency:   currency,
		reference:  NewReference(now),
		status:     StatusPending,
		items:      append([]Item(nil), items...),
		createdAt:  now,
	}
	if ownerID != nil {
		id := *ownerID
		o.ownerID = &id
	} else {
		o.guest = guest
	}
	return o, nil
}

// NewCreditPackageOrder builds a PENDING order for a credit package. Always owned.
func NewCreditPackageOrder(ownerID, packageID uuid.UUID, priceMinor int64, currency string, now time.Time) (*Order, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if priceMinor <= 0 {
		return nil, ErrNonPositiveAmount
	}
	owner, pkg := ownerID, packageID
	return &Order{
		id:              uuid.New(),
		ownerID:         &owner,
		totalMinor:      priceMinor,
		currency:        currency,
		reference:       NewCreditReference(now),
		status:          StatusPending,
		creditPackageID: &pkg,
		createdAt:       now,
	}, nil
}

type Snapshot struct {
	ID                 uuid.UUID
	OwnerID            *uuid.UUID
	GuestEmail         *string
	GuestName          *string
	TotalMinor         int64
	Currency           string
	ProviderCheckoutID string
	Reference          string
	Status             string
	CreditPackageID    *uuid.UUID
	Items              []Item
	CreatedAt          time.Time
	PaidAt             *time.Time
}

func Reconstruct(s Snapshot) (*Order, error) {
	status, err := ParseStatus(s.Status)
	if err != nil {
		return nil, err
	}
	if len(s.Items) > 0 && s.CreditPackageID != nil {
		return nil, ErrMixedContents
	}
	o := &Order{
		id:                 s.ID,
		ownerID:            s.OwnerID,
		totalMinor:         s.TotalMinor,
		currency:           s.Currency,
		providerCheckoutID: s.ProviderCheckoutID,
		reference:          s.Reference,
		status:             status,
		items:              s.Items,
		creditPackageID:    s.CreditPackageID,
		createdAt:          s.CreatedAt,
		paidAt:             s.PaidAt,
	}
	if s.GuestEmail != nil && s.GuestName != nil {
		if e, err := user.NewEmail(*s.GuestEmail); err == nil {
			o.guest = &GuestContact{Email: e, Name: *s.GuestName}
		}
	}
	return o, nil
}

func (o *Order) ID() uuid.UUID               { return o.id }
func (o *Order) OwnerID() *uuid.UUID         { return o.ownerID }
func (o *Order) Guest() *GuestContact        { return o.guest }
func (o *Order) TotalMinor() int64           { return o.totalMinor }
func (o *Order) Currency() string            { return o.currency }
func (o *Order) ProviderCheckoutID() string  { return o.providerCheckoutID }
func (o *Order) Reference() string           { return o.reference }
func (o *Order) Status() Status              { return o.status }
func (o *Order) Items() []Item               { return o.items }
func (o *Order) CreditPackageID() *uuid.UUID { return o.creditPackageID }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }
func (o *Order) PaidAt() *time.Time          { return o.paidAt }

func (o *Order) IsCreditPackage() bool { return o.creditPackageID != nil }
func (o *Order) IsGuest() bool         { return o.ownerID == nil && o.guest != nil }

func (o *Order) AttachCheckout(checkoutID string) {
	o.providerCheckoutID = checkoutID
}

// Decide maps an observed provider status onto the state machine.
// Terminal states never move, except that a PAID order seen as PAID again re-runs its
// idempotent side effects so a partially applied earlier attempt is completed.
func (o *Order) Decide(observed ProviderStatus) Decision {
	switch o.status {
	case StatusPending:
		switch observed {
		case ProviderPaid:
			return MarkPaid
		case ProviderFailed:
			return MarkFailed
		default:
			return NoChange
		}
	case StatusPaid:
		if observed == ProviderPaid {
			return EnsurePaidEffects
		}
		return NoChange
	default:
		return NoChange
	}
}

func (o *Order) MarkPaid(now time.Time) error {
	if o.status != StatusPending {
		return ErrInvalidTransition
	}
	o.status = StatusPaid
	t := now
	o.paidAt = &t
	return nil
}

func (o *Order) MarkFailed() error {
	if o.status != StatusPending {
		return ErrInvalidTransition
	}
	o.status = StatusFailed
	return nil
}

// Cancel and Refund are administrative overrides and apply from any state.
func (o *Order) Cancel() { o.status = StatusCancelled }
func (o *Order) Refund() { o.status = StatusRefunded }

// LinkOwner binds a guest order to the account created for it and clears the guest contact.
func (o *Order) LinkOwner(userID uuid.UUID) {
	id := userID
	o.ownerID = &id
	o.guest = nil
}

// VisibleTo reports whether actor may read or reconcile the order. Owned orders are
// private to their owner; guest orders are open to anyone holding the reference.
func (o *Order) VisibleTo(actor *uuid.UUID) bool {
	if o.ownerID == nil {
		return true
	}
	return actor != nil && *actor == *o.ownerID
}
