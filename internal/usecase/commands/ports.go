package commands

import (
	"context"

	"gym-booking/internal/domain/order"
)

// CheckoutRequest is what the payment provider needs to open a hosted checkout.
type CheckoutRequest struct {
	Reference   string
	AmountMinor int64
	Currency    string
	Description string
}

// Checkout is the provider's handle for a hosted checkout.
type Checkout struct {
	ID  string
	URL string
}

type CheckoutStatus struct {
	ID        string
	Reference string
	Status    order.ProviderStatus
	Raw       string
}

type PaymentProvider interface {
	Name() string
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
	// GetCheckout fails when the checkout does not belong to reference.
	GetCheckout(ctx context.Context, checkoutID, reference string) (*CheckoutStatus, error)
}

// BusinessMetrics records domain outcomes. Implementations must be safe for concurrent use.
type BusinessMetrics interface {
	BookingsCreated(funding string, n int)
	CreditsConsumed(n int)
	CreditsIssued(n int)
	CreditsRestored(n int)
	OrderTransition(from, to string, trigger string)
	RedemptionRejected(reason string)
}

type noopMetrics struct{}

func (noopMetrics) BookingsCreated(string, int) {}
func (noopMetrics) CreditsConsumed(int) {}
func (noopMetrics) CreditsIssued(int) {}
func (noopMetrics) CreditsRestored(int) {}
func (noopMetrics) OrderTransition(string, string, string) {}
func (noopMetrics) RedemptionRejected(string) {}

// NoopMetrics discards everything; used by tests and when metrics are disabled.
func NoopMetrics() BusinessMetrics { return noopMetrics{} }
