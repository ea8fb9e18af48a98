package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
}

type CreditPurchaseView struct {
	ID               uuid.UUID `json:"id"`
	PackageName      string    `json:"package_name"`
	CreditsIssued    int       `json:"credits_issued"`
	CreditsRemaining int       `json:"credits_remaining"`
	ExpiresAt        time.Time `json:"expires_at"`
	PurchasedAt      time.Time `json:"purchased_at"`
}

type CreditUsageView struct {
	ID          uuid.UUID `json:"id"`
	CreditsUsed int       `json:"credits_used"`
	UsedAt      time.Time `json:"used_at"`
	SessionType string    `json:"session_type"`
	SessionDate string    `json:"session_date"`
}

type ExpiringCreditsView struct {
	Count int       `json:"count"`
	Date  time.Time `json:"date"`
}

type CreditSummaryView struct {
	TotalCredits    int                  `json:"total_credits"`
	Purchases       []CreditPurchaseView `json:"purchases"`
	ExpiringCredits *ExpiringCreditsView `json:"expiring_credits"`
	RecentUsage     []CreditUsageView    `json:"recent_usage"`
}

type SessionTypeView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
}

type SessionView struct {
	TemplateID  uuid.UUID `json:"template_id"`
	TypeID      uuid.UUID `json:"type_id"`
	TypeName    string    `json:"type_name"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	StartsAt    time.Time `json:"starts_at"`
	MaxCapacity int       `json:"max_capacity"`
	IsPrivate   bool      `json:"is_private"`
	IsBooked    bool      `json:"is_booked"`
}

type SessionsView struct {
	SessionsByDate    map[string][]SessionView `json:"sessions_by_date"`
	SessionTypes      []SessionTypeView        `json:"session_types"`
	SessionPriceMinor int64                    `json:"session_price_minor"`
	StartDate         string                   `json:"start_date"`
	EndDate           string                   `json:"end_date"`
}

type CreditPackageView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	SessionCount   int       `json:"session_count"`
	PriceMinor     int64     `json:"price_minor"`
	StandardMinor  int64     `json:"standard_minor"`
	SavingsMinor   int64     `json:"savings_minor"`
	SavingsPercent int       `json:"savings_percent"`
}

// OrderView is what a buyer sees for one order reference.
type OrderView struct {
	ID              uuid.UUID  `json:"-"`
	OwnerID         *uuid.UUID `json:"-"`
	Reference       string     `json:"reference"`
	Status          string     `json:"status"`
	TotalMinor      int64      `json:"total_minor"`
	Currency        string     `json:"currency"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	IsCreditPackage bool       `json:"is_credit_package"`
	ContactEmail    string     `json:"contact_email"`
	ContactName     string     `json:"contact_name"`
}

// VisibleTo mirrors order.Order.VisibleTo for the read side.
func (v *OrderView) VisibleTo(actor *uuid.UUID) bool {
	if v.OwnerID == nil {
		return true
	}
	return actor != nil && *actor == *v.OwnerID
}
