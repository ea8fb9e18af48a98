package order

import "strings"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPaid      Status = "PAID"
	StatusFailed    Status = "FAILED"
	StatusRefunded  Status = "REFUNDED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string { return string(s) }

func (s Status) IsTerminal() bool {
	return s != StatusPending
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusPaid, StatusFailed, StatusRefunded, StatusCancelled:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// ProviderStatus is what the payment provider reports for a checkout.
type ProviderStatus string

const (
	ProviderPaid    ProviderStatus = "PAID"
	ProviderFailed  ProviderStatus = "FAILED"
	ProviderPending ProviderStatus = "PENDING"
	ProviderUnknown ProviderStatus = "UNKNOWN"
)

// ParseProviderStatus maps anything unrecognised to UNKNOWN, which reconciliation
// treats as a provider fault.
func ParseProviderStatus(s string) ProviderStatus {
	switch ProviderStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case ProviderPaid:
		return ProviderPaid
	case ProviderFailed:
		return ProviderFailed
	case ProviderPending:
		return ProviderPending
	default:
		return ProviderUnknown
	}
}

// Decision is the outcome of observing a provider status against an order.
type Decision int

const (
	NoChange Decision = iota
	MarkPaid
	MarkFailed
	// EnsurePaidEffects re-runs the idempotent side effects of an order that is already PAID.
	EnsurePaidEffects
)

func (d Decision) String() string {
	switch d {
	case MarkPaid:
		return "mark_paid"
	case MarkFailed:
		return "mark_failed"
	case EnsurePaidEffects:
		return "ensure_paid_effects"
	default:
		return "no_change"
	}
}
