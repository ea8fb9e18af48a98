package booking

import (
	"time"

	"gym-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

var (
	ErrNoSlots        = errs.Validation(errs.New("at least one session is required"))
	ErrDuplicateSlot  = errs.Validation(errs.New("the same session was requested twice"))
	ErrInvalidSlot    = errs.Validation(errs.New("invalid session slot"))
	ErrInvalidDate    = errs.Validation(errs.New("invalid session date"))
	ErrInvalidFunding = errs.Mark(errs.New("booking must be funded by exactly one of order or credit"), errs.ErrIntegrity)
)

// Slot identifies a bookable session instance: one template on one calendar date.
type Slot struct {
	templateID uuid.UUID
	date       time.Time
}

func NewSlot(templateID uuid.UUID, date time.Time) (Slot, error) {
	if templateID == uuid.Nil || date.IsZero() {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{templateID: templateID, date: civilDate(date)}, nil
}

func ParseSlot(templateID uuid.UUID, date string) (Slot, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Slot{}, err
	}
	return NewSlot(templateID, d)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func (s Slot) TemplateID() uuid.UUID { return s.templateID }
func (s Slot) Date() time.Time       { return s.date }
func (s Slot) DateString() string    { return s.date.Format(DateLayout) }

func (s Slot) Key() string {
	return s.templateID.String() + ":" + s.DateString()
}

// ValidateRequest rejects empty requests and requests naming a slot twice.
func ValidateRequest(slots []Slot) error {
	if len(slots) == 0 {
		return ErrNoSlots
	}
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if _, ok := seen[s.Key()]; ok {
			return ErrDuplicateSlot
		}
		seen[s.Key()] = struct{}{}
	}
	return nil
}

// FilterTaken keeps request order and drops slots whose key is in taken.
func FilterTaken(slots []Slot, taken map[string]struct{}) []Slot {
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s.Key()]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
