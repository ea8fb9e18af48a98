package commands

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Outbox topics. The dispatcher publishes them on the broker with the topic as routing key.
const (
	TopicBookingCreated   = "booking.created"
	TopicBookingCancelled = "booking.cancelled"
	TopicCreditsIssued    = "credits.issued"
	TopicOrderPaid        = "order.paid"
	TopicOrderFailed      = "order.failed"
	TopicGuestAccount     = "account.guest_created"

	outboxKindEvent = "event"
)

type BookingEvent struct {
	BookingID  uuid.UUID  `json:"booking_id"`
	TemplateID uuid.UUID  `json:"session_template_id"`
	Date       string     `json:"session_date"`
	Funding    string     `json:"funding"`
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	OrderID    *uuid.UUID `json:"order_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

type CreditsIssuedEvent struct {
	BatchID    uuid.UUID `json:"batch_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	OrderID    uuid.UUID `json:"order_id"`
	Credits    int       `json:"credits"`
	ExpiresAt  time.Time `json:"expires_at"`
	OccurredAt time.Time `json:"occurred_at"`
}

type OrderEvent struct {
	OrderID    uuid.UUID  `json:"order_id"`
	Reference  string     `json:"reference"`
	Status     string     `json:"status"`
	TotalMinor int64      `json:"total_minor"`
	Currency   string     `json:"currency"`
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
	Trigger    string     `json:"trigger"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// GuestAccountEvent lets a mailer invite the guest to set a password.
type GuestAccountEvent struct {
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	OrderID    uuid.UUID `json:"order_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func encodeEvent(v any) ([]byte, error) {
	return json.Marshal(v)
}
