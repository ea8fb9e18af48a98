package shared

import (
	"github.com/google/uuid"
)

// UserSnapshot is the write-side view of an account, enough to authenticate.
type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	IsActive     bool
}

type NotificationJob struct {
	ID       uuid.UUID
	Kind     string
	Topic    string
	Payload  []byte
	Attempts int32
}

type WebhookEventRecord struct {
	Provider          string
	EventID           string
	EventType         string
	CheckoutReference string
}
